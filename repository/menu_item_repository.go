// repository/menu_item_repository.go
package repository

import (
	"context"

	"github.com/PeteShepley/simple-point-of-sale/entity"
	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

// ListByMenu pages through one menu's items in insertion order.
func (r *MenuItemRepository) ListByMenu(ctx context.Context, menuID uint, page Page) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := page.apply(r.DB.WithContext(ctx)).
		Where("menu_id = ?", menuID).
		Order("id").
		Find(&items).Error
	return items, err
}

// AllByMenu is the unpaged variant used for include=items.
func (r *MenuItemRepository) AllByMenu(ctx context.Context, menuID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.WithContext(ctx).
		Where("menu_id = ?", menuID).
		Order("id").
		Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindInMenu(ctx context.Context, menuID, id uint) (*entity.MenuItem, error) {
	return findScoped[entity.MenuItem](ctx, r.DB, "menu_id", menuID, id)
}

func (r *MenuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *MenuItemRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*entity.MenuItem, error) {
	return updateFields[entity.MenuItem](ctx, r.DB, id, fields)
}

func (r *MenuItemRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[entity.MenuItem](ctx, r.DB, id)
}

// DeleteByMenu drops every item of a menu and reports how many went.
func (r *MenuItemRepository) DeleteByMenu(ctx context.Context, menuID uint) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("menu_id = ?", menuID).
		Delete(&entity.MenuItem{})
	return res.RowsAffected, res.Error
}

// ClearRecipe unlinks items from a recipe that is going away.
func (r *MenuItemRepository) ClearRecipe(ctx context.Context, recipeID uint) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&entity.MenuItem{}).
		Where("recipe_id = ?", recipeID).
		Update("recipe_id", nil)
	return res.RowsAffected, res.Error
}
