package dto

import (
	"sort"

	"github.com/PeteShepley/simple-point-of-sale/entity"
)

const MaxStepOrder = 10000

type CreateRecipeRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

func (r CreateRecipeRequest) Validate() error {
	return notBlank("name", &r.Name)
}

type UpdateRecipeRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,max=200"`
}

func (r UpdateRecipeRequest) Validate() error {
	return notBlank("name", r.Name)
}

func (r UpdateRecipeRequest) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	if r.Name != nil {
		f["name"] = *r.Name
	}
	return f
}

type CreateIngredientRequest struct {
	RecipeID uint    `json:"recipeId" binding:"required,gt=0"`
	Name     string  `json:"name" binding:"required,max=200"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Unit     string  `json:"unit" binding:"required,max=50"`
}

func (r CreateIngredientRequest) Validate() error {
	return firstErr(
		notBlank("name", &r.Name),
		notBlank("unit", &r.Unit),
	)
}

type UpdateIngredientRequest struct {
	Name   *string  `json:"name,omitempty" binding:"omitempty,max=200"`
	Amount *float64 `json:"amount,omitempty"`
	Unit   *string  `json:"unit,omitempty" binding:"omitempty,max=50"`
}

func (r UpdateIngredientRequest) Validate() error {
	if r.Amount != nil && *r.Amount <= 0 {
		return fieldError("amount", "must be positive")
	}
	return firstErr(
		notBlank("name", r.Name),
		notBlank("unit", r.Unit),
	)
}

func (r UpdateIngredientRequest) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	if r.Name != nil {
		f["name"] = *r.Name
	}
	if r.Amount != nil {
		f["amount"] = *r.Amount
	}
	if r.Unit != nil {
		f["unit"] = *r.Unit
	}
	return f
}

type CreateMethodStepRequest struct {
	RecipeID    uint   `json:"recipeId" binding:"required,gt=0"`
	Order       int    `json:"order" binding:"required,gt=0,lte=10000"`
	Instruction string `json:"instruction" binding:"required,max=4000"`
}

func (r CreateMethodStepRequest) Validate() error {
	return notBlank("instruction", &r.Instruction)
}

type UpdateMethodStepRequest struct {
	Order       *int    `json:"order,omitempty"`
	Instruction *string `json:"instruction,omitempty" binding:"omitempty,max=4000"`
}

func (r UpdateMethodStepRequest) Validate() error {
	if r.Order != nil && *r.Order > MaxStepOrder {
		return fieldError("order", "must be at most 10000")
	}
	return firstErr(
		positiveInt("order", r.Order),
		notBlank("instruction", r.Instruction),
	)
}

func (r UpdateMethodStepRequest) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	if r.Order != nil {
		f["step_order"] = *r.Order
	}
	if r.Instruction != nil {
		f["instruction"] = *r.Instruction
	}
	return f
}

type RecipeResponse struct {
	ID          uint                  `json:"id"`
	Name        string                `json:"name"`
	Ingredients *[]IngredientResponse `json:"ingredients,omitempty"`
	Steps       *[]MethodStepResponse `json:"steps,omitempty"`
}

type IngredientResponse struct {
	ID       uint    `json:"id"`
	RecipeID uint    `json:"recipeId"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
}

type MethodStepResponse struct {
	ID          uint   `json:"id"`
	RecipeID    uint   `json:"recipeId"`
	Order       int    `json:"order"`
	Instruction string `json:"instruction"`
}

func NewRecipeResponse(r entity.Recipe) RecipeResponse {
	return RecipeResponse{ID: r.ID, Name: r.Name}
}

func NewRecipeResponses(rows []entity.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, NewRecipeResponse(r))
	}
	return out
}

// WithIngredients embeds the recipe's ingredients.
func (res RecipeResponse) WithIngredients(rows []entity.Ingredient) RecipeResponse {
	list := NewIngredientResponses(rows)
	res.Ingredients = &list
	return res
}

// WithSteps embeds the recipe's steps sorted by order.
func (res RecipeResponse) WithSteps(rows []entity.MethodStep) RecipeResponse {
	list := NewMethodStepResponses(rows)
	sort.SliceStable(list, func(i, j int) bool { return list[i].Order < list[j].Order })
	res.Steps = &list
	return res
}

func NewIngredientResponse(i entity.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:       i.ID,
		RecipeID: i.RecipeID,
		Name:     i.Name,
		Amount:   i.Amount,
		Unit:     i.Unit,
	}
}

func NewIngredientResponses(rows []entity.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, 0, len(rows))
	for _, i := range rows {
		out = append(out, NewIngredientResponse(i))
	}
	return out
}

func NewMethodStepResponse(s entity.MethodStep) MethodStepResponse {
	return MethodStepResponse{
		ID:          s.ID,
		RecipeID:    s.RecipeID,
		Order:       s.Order,
		Instruction: s.Instruction,
	}
}

func NewMethodStepResponses(rows []entity.MethodStep) []MethodStepResponse {
	out := make([]MethodStepResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, NewMethodStepResponse(s))
	}
	return out
}
