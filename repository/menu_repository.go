// repository/menu_repository.go
package repository

import (
	"context"

	"github.com/PeteShepley/simple-point-of-sale/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) List(ctx context.Context, page Page) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := page.apply(r.DB.WithContext(ctx)).
		Order("id").
		Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FindByID(ctx context.Context, id uint) (*entity.Menu, error) {
	return findByID[entity.Menu](ctx, r.DB, id)
}

func (r *MenuRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists[entity.Menu](ctx, r.DB, id)
}

func (r *MenuRepository) Create(ctx context.Context, menu *entity.Menu) error {
	return r.DB.WithContext(ctx).Create(menu).Error
}

// Update writes the provided columns only ("name", "description").
func (r *MenuRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*entity.Menu, error) {
	return updateFields[entity.Menu](ctx, r.DB, id, fields)
}

// Delete removes the menu row only; items are the caller's business.
func (r *MenuRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[entity.Menu](ctx, r.DB, id)
}
