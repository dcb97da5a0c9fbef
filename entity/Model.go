package entity

import "time"

// Model is gorm.Model without DeletedAt: rows are removed for real so a
// step order freed by a delete can be taken again.
type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
