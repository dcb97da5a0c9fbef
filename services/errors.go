package services

import (
	"errors"

	"gorm.io/gorm"
)

// errors the controllers switch on
var (
	ErrMenuNotFound       = errors.New("menu not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrStepNotFound       = errors.New("method step not found")
	ErrStepOrderTaken     = errors.New("step order already exists for recipe")
	ErrMenuMismatch       = errors.New("menuId in body does not match path")
)

// notFound swaps gorm.ErrRecordNotFound for the entity's own error.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// orderConflict maps a unique-index hit on method_steps to ErrStepOrderTaken.
func orderConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrStepOrderTaken
	}
	return err
}
