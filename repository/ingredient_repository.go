// repository/ingredient_repository.go
package repository

import (
	"context"

	"github.com/PeteShepley/simple-point-of-sale/entity"
	"gorm.io/gorm"
)

type IngredientRepository struct {
	DB *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{DB: db}
}

// List pages through ingredients, narrowed to one recipe when recipeID is set.
func (r *IngredientRepository) List(ctx context.Context, recipeID *uint, page Page) ([]entity.Ingredient, error) {
	q := r.DB.WithContext(ctx)
	if recipeID != nil {
		q = q.Where("recipe_id = ?", *recipeID)
	}
	var rows []entity.Ingredient
	err := page.apply(q).Order("id").Find(&rows).Error
	return rows, err
}

func (r *IngredientRepository) AllByRecipe(ctx context.Context, recipeID uint) ([]entity.Ingredient, error) {
	var rows []entity.Ingredient
	err := r.DB.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("id").
		Find(&rows).Error
	return rows, err
}

func (r *IngredientRepository) FindByID(ctx context.Context, id uint) (*entity.Ingredient, error) {
	return findByID[entity.Ingredient](ctx, r.DB, id)
}

func (r *IngredientRepository) FindInRecipe(ctx context.Context, recipeID, id uint) (*entity.Ingredient, error) {
	return findScoped[entity.Ingredient](ctx, r.DB, "recipe_id", recipeID, id)
}

func (r *IngredientRepository) Create(ctx context.Context, row *entity.Ingredient) error {
	return r.DB.WithContext(ctx).Create(row).Error
}

func (r *IngredientRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*entity.Ingredient, error) {
	return updateFields[entity.Ingredient](ctx, r.DB, id, fields)
}

func (r *IngredientRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[entity.Ingredient](ctx, r.DB, id)
}

func (r *IngredientRepository) DeleteByRecipe(ctx context.Context, recipeID uint) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&entity.Ingredient{})
	return res.RowsAffected, res.Error
}
