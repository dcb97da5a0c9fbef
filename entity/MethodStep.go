package entity

type MethodStep struct {
	Model
	RecipeID uint `gorm:"not null;uniqueIndex:idx_method_steps_recipe_order" json:"recipeId"`
	// 1-based; "order" is reserved in SQL so the column is step_order
	Order       int    `gorm:"column:step_order;not null;uniqueIndex:idx_method_steps_recipe_order" json:"order"`
	Instruction string `gorm:"size:4000;not null" json:"instruction"`
}
