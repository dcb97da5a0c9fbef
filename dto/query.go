package dto

// PageQuery is the raw ?limit&offset pair; clamping happens in repository.NewPage.
type PageQuery struct {
	Limit  *int `form:"limit" json:"limit,omitempty"`
	Offset *int `form:"offset" json:"offset,omitempty"`
}

// RecipeFilterQuery is ?recipeId&limit&offset for the flat ingredient and step lists.
type RecipeFilterQuery struct {
	RecipeID *uint `form:"recipeId"`
	Limit    *int  `form:"limit"`
	Offset   *int  `form:"offset"`
}

func (q RecipeFilterQuery) Page() PageQuery {
	return PageQuery{Limit: q.Limit, Offset: q.Offset}
}

func (q RecipeFilterQuery) Validate() error {
	if q.RecipeID != nil && *q.RecipeID == 0 {
		return fieldError("recipeId", "must be positive")
	}
	return nil
}

const (
	IncludeItems       = "items"
	IncludeIngredients = "ingredients"
	IncludeSteps       = "steps"
	IncludeAll         = "all"
)

type MenuDetailQuery struct {
	Include string `form:"include" binding:"omitempty,oneof=items all"`
}

func (q MenuDetailQuery) WantItems() bool {
	return q.Include == IncludeItems || q.Include == IncludeAll
}

type RecipeDetailQuery struct {
	Include string `form:"include" binding:"omitempty,oneof=ingredients steps all"`
}

func (q RecipeDetailQuery) WantIngredients() bool {
	return q.Include == IncludeIngredients || q.Include == IncludeAll
}

func (q RecipeDetailQuery) WantSteps() bool {
	return q.Include == IncludeSteps || q.Include == IncludeAll
}
