// repository/recipe_repository.go
package repository

import (
	"context"

	"github.com/PeteShepley/simple-point-of-sale/entity"
	"gorm.io/gorm"
)

type RecipeRepository struct {
	DB *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{DB: db}
}

func (r *RecipeRepository) List(ctx context.Context, page Page) ([]entity.Recipe, error) {
	var recipes []entity.Recipe
	err := page.apply(r.DB.WithContext(ctx)).
		Order("id").
		Find(&recipes).Error
	return recipes, err
}

func (r *RecipeRepository) FindByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	return findByID[entity.Recipe](ctx, r.DB, id)
}

func (r *RecipeRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists[entity.Recipe](ctx, r.DB, id)
}

func (r *RecipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	return r.DB.WithContext(ctx).Create(recipe).Error
}

func (r *RecipeRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*entity.Recipe, error) {
	return updateFields[entity.Recipe](ctx, r.DB, id, fields)
}

func (r *RecipeRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[entity.Recipe](ctx, r.DB, id)
}
