// Package views renders the point-of-sale pages as text and turns user input
// into API requests.
package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PeteShepley/simple-point-of-sale/dto"
	"github.com/PeteShepley/simple-point-of-sale/pkg/money"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// MenuForm is the create/edit menu form.
type MenuForm struct {
	Name        string `validate:"required,max=200"`
	Description string `validate:"max=2000"`
}

func (f MenuForm) CreateRequest() (dto.CreateMenuRequest, error) {
	f.Name = strings.TrimSpace(f.Name)
	if err := check(f); err != nil {
		return dto.CreateMenuRequest{}, err
	}
	return dto.CreateMenuRequest{Name: f.Name, Description: optional(f.Description)}, nil
}

// UpdateRequest sends every field on the form; an empty description clears it.
func (f MenuForm) UpdateRequest() (dto.UpdateMenuRequest, error) {
	f.Name = strings.TrimSpace(f.Name)
	if err := check(f); err != nil {
		return dto.UpdateMenuRequest{}, err
	}
	return dto.UpdateMenuRequest{Name: &f.Name, Description: clearable(f.Description)}, nil
}

// ItemForm edits a menu item; Price is a decimal-dollar string like "9.99".
type ItemForm struct {
	Name        string `validate:"required,max=200"`
	Description string `validate:"max=2000"`
	Price       string `validate:"required"`
	RecipeID    uint
}

// ItemFormFrom fills the form from an existing item.
func ItemFormFrom(it dto.MenuItemResponse) ItemForm {
	f := ItemForm{Name: it.Name, Price: money.Format(it.CostCents)}
	if it.Description != nil {
		f.Description = *it.Description
	}
	if it.RecipeID != nil {
		f.RecipeID = *it.RecipeID
	}
	return f
}

func (f ItemForm) cents() (int64, error) {
	f.Name = strings.TrimSpace(f.Name)
	if err := check(f); err != nil {
		return 0, err
	}
	cents, err := money.ParseDollars(f.Price)
	if err != nil {
		return 0, fmt.Errorf("price %q: %w", f.Price, err)
	}
	if cents <= 0 {
		return 0, fmt.Errorf("price %q: must be greater than zero", f.Price)
	}
	return cents, nil
}

func (f ItemForm) CreateRequest() (dto.CreateMenuItemRequest, error) {
	cents, err := f.cents()
	if err != nil {
		return dto.CreateMenuItemRequest{}, err
	}
	req := dto.CreateMenuItemRequest{
		Name:        strings.TrimSpace(f.Name),
		Description: optional(f.Description),
		CostCents:   cents,
	}
	if f.RecipeID != 0 {
		req.RecipeID = &f.RecipeID
	}
	return req, nil
}

func (f ItemForm) UpdateRequest() (dto.UpdateMenuItemRequest, error) {
	cents, err := f.cents()
	if err != nil {
		return dto.UpdateMenuItemRequest{}, err
	}
	name := strings.TrimSpace(f.Name)
	req := dto.UpdateMenuItemRequest{
		Name:        &name,
		Description: clearable(f.Description),
		CostCents:   &cents,
	}
	if f.RecipeID != 0 {
		req.RecipeID = &f.RecipeID
	}
	return req, nil
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}

// clearable always sends the description so a blank one reaches the server
// as "" and clears the stored value.
func clearable(s string) *string {
	s = strings.TrimSpace(s)
	return &s
}

// check runs the validate tags and flattens the result into one message.
func check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", field, fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
