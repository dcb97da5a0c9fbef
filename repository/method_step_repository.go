// repository/method_step_repository.go
package repository

import (
	"context"

	"github.com/PeteShepley/simple-point-of-sale/entity"
	"gorm.io/gorm"
)

type MethodStepRepository struct {
	DB *gorm.DB
}

func NewMethodStepRepository(db *gorm.DB) *MethodStepRepository {
	return &MethodStepRepository{DB: db}
}

// List returns steps sorted by recipe then order, optionally for one recipe.
func (r *MethodStepRepository) List(ctx context.Context, recipeID *uint, page Page) ([]entity.MethodStep, error) {
	q := r.DB.WithContext(ctx)
	if recipeID != nil {
		q = q.Where("recipe_id = ?", *recipeID)
	}
	var rows []entity.MethodStep
	err := page.apply(q).
		Order("recipe_id").
		Order("step_order").
		Order("id").
		Find(&rows).Error
	return rows, err
}

func (r *MethodStepRepository) AllByRecipe(ctx context.Context, recipeID uint) ([]entity.MethodStep, error) {
	var rows []entity.MethodStep
	err := r.DB.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("step_order").
		Order("id").
		Find(&rows).Error
	return rows, err
}

func (r *MethodStepRepository) FindByID(ctx context.Context, id uint) (*entity.MethodStep, error) {
	return findByID[entity.MethodStep](ctx, r.DB, id)
}

// OrderTaken reports whether another step of the recipe already holds order.
// excludeID is the step being updated (0 on create).
func (r *MethodStepRepository) OrderTaken(ctx context.Context, recipeID uint, order int, excludeID uint) (bool, error) {
	q := r.DB.WithContext(ctx).
		Model(&entity.MethodStep{}).
		Where("recipe_id = ? AND step_order = ?", recipeID, order)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *MethodStepRepository) Create(ctx context.Context, step *entity.MethodStep) error {
	return r.DB.WithContext(ctx).Create(step).Error
}

// Update accepts "step_order" and "instruction".
func (r *MethodStepRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*entity.MethodStep, error) {
	return updateFields[entity.MethodStep](ctx, r.DB, id, fields)
}

func (r *MethodStepRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[entity.MethodStep](ctx, r.DB, id)
}

func (r *MethodStepRepository) DeleteByRecipe(ctx context.Context, recipeID uint) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&entity.MethodStep{})
	return res.RowsAffected, res.Error
}
