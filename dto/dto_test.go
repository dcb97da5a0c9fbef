package dto

import (
	"encoding/json"
	"testing"

	"github.com/PeteShepley/simple-point-of-sale/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestMenuItemResponse_Cost(t *testing.T) {
	res := NewMenuItemResponse(entity.MenuItem{Model: entity.Model{ID: 3}, MenuID: 1, Name: "Burger", CostCents: 1050})

	assert.Equal(t, 10.5, res.Cost)
	assert.Equal(t, int64(1050), res.CostCents)
	assert.Equal(t, uint(1), res.MenuID)
}

func TestMenuResponse_ItemsOnlyWhenIncluded(t *testing.T) {
	menu := entity.Menu{Model: entity.Model{ID: 1}, Name: "Lunch"}

	plain, err := json.Marshal(NewMenuResponse(menu))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Lunch"}`, string(plain))

	withItems, err := json.Marshal(NewMenuResponseWithItems(menu, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Lunch","items":[]}`, string(withItems))
}

func TestRecipeResponse_StepsSortedByOrder(t *testing.T) {
	res := NewRecipeResponse(entity.Recipe{Model: entity.Model{ID: 2}, Name: "Soup"}).
		WithSteps([]entity.MethodStep{
			{Model: entity.Model{ID: 1}, RecipeID: 2, Order: 3, Instruction: "serve"},
			{Model: entity.Model{ID: 2}, RecipeID: 2, Order: 1, Instruction: "chop"},
			{Model: entity.Model{ID: 3}, RecipeID: 2, Order: 2, Instruction: "boil"},
		})

	require.NotNil(t, res.Steps)
	require.Nil(t, res.Ingredients)
	var orders []int
	for _, s := range *res.Steps {
		orders = append(orders, s.Order)
	}
	assert.Equal(t, []int{1, 2, 3}, orders)
}

func TestUpdateRequests_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     Validator
		wantErr bool
	}{
		{"menu empty body", UpdateMenuRequest{}, false},
		{"menu blank name", UpdateMenuRequest{Name: ptr("  ")}, true},
		{"item zero cost", UpdateMenuItemRequest{CostCents: ptr(int64(0))}, true},
		{"item negative cost", UpdateMenuItemRequest{CostCents: ptr(int64(-5))}, true},
		{"item cost ok", UpdateMenuItemRequest{CostCents: ptr(int64(5))}, false},
		{"item zero recipe", UpdateMenuItemRequest{RecipeID: ptr(uint(0))}, true},
		{"ingredient zero amount", UpdateIngredientRequest{Amount: ptr(0.0)}, true},
		{"ingredient amount ok", UpdateIngredientRequest{Amount: ptr(0.25)}, false},
		{"ingredient blank unit", UpdateIngredientRequest{Unit: ptr(" ")}, true},
		{"create ingredient blank unit", CreateIngredientRequest{RecipeID: 1, Name: "salt", Amount: 1, Unit: "  "}, true},
		{"create ingredient ok", CreateIngredientRequest{RecipeID: 1, Name: "salt", Amount: 1, Unit: "g"}, false},
		{"step order zero", UpdateMethodStepRequest{Order: ptr(0)}, true},
		{"step order too big", UpdateMethodStepRequest{Order: ptr(10001)}, true},
		{"step order max", UpdateMethodStepRequest{Order: ptr(10000)}, false},
		{"step blank instruction", UpdateMethodStepRequest{Instruction: ptr("")}, true},
		{"create menu blank", CreateMenuRequest{Name: " "}, true},
		{"create item zero recipe", CreateMenuItemRequest{Name: "x", CostCents: 1, RecipeID: ptr(uint(0))}, true},
		{"filter zero recipe", RecipeFilterQuery{RecipeID: ptr(uint(0))}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				var fe *FieldError
				assert.ErrorAs(t, err, &fe)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateRequests_FieldsOnlyProvided(t *testing.T) {
	assert.Empty(t, UpdateMenuRequest{}.Fields())
	assert.Equal(t, map[string]interface{}{"description": nil}, UpdateMenuRequest{Description: ptr("")}.Fields())
	assert.Equal(t, map[string]interface{}{"description": nil}, UpdateMenuItemRequest{Description: ptr("  ")}.Fields())
	assert.Equal(t,
		map[string]interface{}{"cost_cents": int64(250), "name": "Fries"},
		UpdateMenuItemRequest{Name: ptr("Fries"), CostCents: ptr(int64(250))}.Fields(),
	)
	assert.Equal(t, map[string]interface{}{"step_order": 4}, UpdateMethodStepRequest{Order: ptr(4)}.Fields())
}

func TestDetailQueries(t *testing.T) {
	assert.False(t, MenuDetailQuery{}.WantItems())
	assert.True(t, MenuDetailQuery{Include: "items"}.WantItems())
	assert.True(t, MenuDetailQuery{Include: "all"}.WantItems())

	q := RecipeDetailQuery{Include: "steps"}
	assert.True(t, q.WantSteps())
	assert.False(t, q.WantIngredients())
	all := RecipeDetailQuery{Include: "all"}
	assert.True(t, all.WantSteps() && all.WantIngredients())
}
