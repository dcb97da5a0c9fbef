package dto

import (
	"strings"

	"github.com/PeteShepley/simple-point-of-sale/entity"
	"github.com/PeteShepley/simple-point-of-sale/pkg/money"
)

type CreateMenuRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
}

func (r CreateMenuRequest) Validate() error {
	return notBlank("name", &r.Name)
}

type UpdateMenuRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
}

func (r UpdateMenuRequest) Validate() error {
	return notBlank("name", r.Name)
}

// Fields lists the columns present in the request.
func (r UpdateMenuRequest) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	if r.Name != nil {
		f["name"] = *r.Name
	}
	if r.Description != nil {
		f["description"] = nullIfBlank(*r.Description)
	}
	return f
}

type CreateMenuItemRequest struct {
	// optional; the path decides, a different value is rejected
	MenuID      uint    `json:"menuId,omitempty"`
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	CostCents   int64   `json:"costCents" binding:"required,gt=0"`
	RecipeID    *uint   `json:"recipeId,omitempty"`
}

func (r CreateMenuItemRequest) Validate() error {
	return firstErr(
		notBlank("name", &r.Name),
		positiveInt("recipeId", r.RecipeID),
	)
}

type UpdateMenuItemRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	CostCents   *int64  `json:"costCents,omitempty"`
	RecipeID    *uint   `json:"recipeId,omitempty"`
}

func (r UpdateMenuItemRequest) Validate() error {
	return firstErr(
		notBlank("name", r.Name),
		positiveInt("costCents", r.CostCents),
		positiveInt("recipeId", r.RecipeID),
	)
}

func (r UpdateMenuItemRequest) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	if r.Name != nil {
		f["name"] = *r.Name
	}
	if r.Description != nil {
		f["description"] = nullIfBlank(*r.Description)
	}
	if r.CostCents != nil {
		f["cost_cents"] = *r.CostCents
	}
	if r.RecipeID != nil {
		f["recipe_id"] = *r.RecipeID
	}
	return f
}

// nullIfBlank maps an explicit "" to NULL so a description can be cleared.
func nullIfBlank(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

type MenuResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	// nil when not requested; an empty menu still renders "items": []
	Items *[]MenuItemResponse `json:"items,omitempty"`
}

type MenuItemResponse struct {
	ID          uint    `json:"id"`
	MenuID      uint    `json:"menuId"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CostCents   int64   `json:"costCents"`
	Cost        float64 `json:"cost"`
	RecipeID    *uint   `json:"recipeId,omitempty"`
}

func NewMenuResponse(m entity.Menu) MenuResponse {
	return MenuResponse{ID: m.ID, Name: m.Name, Description: m.Description}
}

// NewMenuResponseWithItems embeds items, always as a non-nil list.
func NewMenuResponseWithItems(m entity.Menu, items []entity.MenuItem) MenuResponse {
	res := NewMenuResponse(m)
	list := NewMenuItemResponses(items)
	res.Items = &list
	return res
}

func NewMenuResponses(menus []entity.Menu) []MenuResponse {
	out := make([]MenuResponse, 0, len(menus))
	for _, m := range menus {
		out = append(out, NewMenuResponse(m))
	}
	return out
}

func NewMenuItemResponse(i entity.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          i.ID,
		MenuID:      i.MenuID,
		Name:        i.Name,
		Description: i.Description,
		CostCents:   i.CostCents,
		Cost:        money.Dollars(i.CostCents),
		RecipeID:    i.RecipeID,
	}
}

func NewMenuItemResponses(items []entity.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, NewMenuItemResponse(i))
	}
	return out
}
