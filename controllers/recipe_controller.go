package controllers

import (
	"github.com/PeteShepley/simple-point-of-sale/dto"
	"github.com/PeteShepley/simple-point-of-sale/pkg/resp"
	"github.com/PeteShepley/simple-point-of-sale/services"
	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	Service *services.RecipeService
}

func NewRecipeController(s *services.RecipeService) *RecipeController {
	return &RecipeController{Service: s}
}

func toRecipeResponse(d *services.RecipeDetail) dto.RecipeResponse {
	res := dto.NewRecipeResponse(d.Recipe)
	if d.Ingredients != nil {
		res = res.WithIngredients(d.Ingredients)
	}
	if d.Steps != nil {
		res = res.WithSteps(d.Steps)
	}
	return res
}

// GET /api/recipes?limit&offset
func (ctl *RecipeController) List(c *gin.Context) {
	var q dto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	rows, err := ctl.Service.List(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dto.NewRecipeResponses(rows))
}

// GET /api/recipes/:recipeId?include=ingredients|steps|all
func (ctl *RecipeController) Get(c *gin.Context) {
	id, ok := paramID(c, "recipeId")
	if !ok {
		return
	}
	var q dto.RecipeDetailQuery
	if !bindQuery(c, &q) {
		return
	}
	detail, err := ctl.Service.Get(c.Request.Context(), id, q)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toRecipeResponse(detail))
}

// POST /api/recipes
func (ctl *RecipeController) Create(c *gin.Context) {
	var req dto.CreateRecipeRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := ctl.Service.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, dto.NewRecipeResponse(*r))
}

// PUT /api/recipes/:recipeId
func (ctl *RecipeController) Update(c *gin.Context) {
	id, ok := paramID(c, "recipeId")
	if !ok {
		return
	}
	var req dto.UpdateRecipeRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := ctl.Service.Update(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dto.NewRecipeResponse(*r))
}

// DELETE /api/recipes/:recipeId
func (ctl *RecipeController) Delete(c *gin.Context) {
	id, ok := paramID(c, "recipeId")
	if !ok {
		return
	}
	if err := ctl.Service.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}

// ---------- Ingredients ----------

// GET /api/ingredients?recipeId&limit&offset
func (ctl *RecipeController) ListIngredients(c *gin.Context) {
	var q dto.RecipeFilterQuery
	if !bindQuery(c, &q) {
		return
	}
	rows, err := ctl.Service.ListIngredients(c.Request.Context(), q.RecipeID, q.Page())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dto.NewIngredientResponses(rows))
}

// GET /api/recipes/:recipeId/ingredients?limit&offset
func (ctl *RecipeController) ListRecipeIngredients(c *gin.Context) {
	recipeID, ok := paramID(c, "recipeId")
	if !ok {
		return
	}
	var q dto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	rows, err := ctl.Service.ListIngredients(c.Request.Context(), &recipeID, q)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dto.NewIngredientResponses(rows))
}

// GET /api/ingredients/:id
func (ctl *RecipeController) GetIngredient(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	row, err := ctl.Service.GetIngredient(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dto.NewIngredientResponse(*row))
}

// GET /api/recipes/:recipeId/ingredients/:id
func (ctl *RecipeController) GetRecipeIngredient(c *gin.Context) {
	recipeID, ok := paramID(c, "recipeId")
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	row, err := ctl.Service.GetRecipeIngredient(c.Request.Context(), recipeID, id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dto.NewIngredientResponse(*row))
}

// POST /api/ingredients
func (ctl *RecipeController) CreateIngredient(c *gin.Context) {
	var req dto.CreateIngredientRequest
	if !bindJSON(c, &req) {
		return
	}
	row, err := ctl.Service.CreateIngredient(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, dto.NewIngredientResponse(*row))
}

// PUT /api/ingredients/:id
func (ctl *RecipeController) UpdateIngredient(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateIngredientRequest
	if !bindJSON(c, &req) {
		return
	}
	row, err := ctl.Service.UpdateIngredient(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dto.NewIngredientResponse(*row))
}

// DELETE /api/ingredients/:id
func (ctl *RecipeController) DeleteIngredient(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ctl.Service.DeleteIngredient(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}

// ---------- Steps ----------

// GET /api/steps?recipeId&limit&offset
func (ctl *RecipeController) ListSteps(c *gin.Context) {
	var q dto.RecipeFilterQuery
	if !bindQuery(c, &q) {
		return
	}
	rows, err := ctl.Service.ListSteps(c.Request.Context(), q.RecipeID, q.Page())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dto.NewMethodStepResponses(rows))
}

// GET /api/steps/:id
func (ctl *RecipeController) GetStep(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	row, err := ctl.Service.GetStep(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dto.NewMethodStepResponse(*row))
}

// POST /api/steps
func (ctl *RecipeController) CreateStep(c *gin.Context) {
	var req dto.CreateMethodStepRequest
	if !bindJSON(c, &req) {
		return
	}
	row, err := ctl.Service.CreateStep(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, dto.NewMethodStepResponse(*row))
}

// PUT /api/steps/:id
func (ctl *RecipeController) UpdateStep(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateMethodStepRequest
	if !bindJSON(c, &req) {
		return
	}
	row, err := ctl.Service.UpdateStep(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dto.NewMethodStepResponse(*row))
}

// DELETE /api/steps/:id
func (ctl *RecipeController) DeleteStep(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ctl.Service.DeleteStep(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}
