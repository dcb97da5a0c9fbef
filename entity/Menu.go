package entity

type Menu struct {
	Model
	Name        string  `gorm:"size:200;not null" json:"name"`
	Description *string `gorm:"size:2000" json:"description,omitempty"`
}
