package entity

type Ingredient struct {
	Model
	RecipeID uint    `gorm:"not null;index" json:"recipeId"`
	Name     string  `gorm:"size:200;not null" json:"name"`
	Amount   float64 `gorm:"not null" json:"amount"`
	Unit     string  `gorm:"size:50;not null" json:"unit"`
}
