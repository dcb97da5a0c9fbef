package entity

type MenuItem struct {
	Model
	MenuID      uint    `gorm:"not null;index" json:"menuId"`
	Name        string  `gorm:"size:200;not null" json:"name"`
	Description *string `gorm:"size:2000" json:"description,omitempty"`
	// money is kept in integer cents, dollars are derived on the way out
	CostCents int64 `gorm:"not null" json:"costCents"`
	RecipeID  *uint `gorm:"index" json:"recipeId,omitempty"`
}
