package entity

type Recipe struct {
	Model
	Name string `gorm:"size:200;not null" json:"name"`
}
