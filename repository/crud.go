package repository

import (
	"context"

	"gorm.io/gorm"
)

// shared helpers for the per-entity repositories; missing rows come back as
// gorm.ErrRecordNotFound everywhere, including deletes

func findByID[T any](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// findScoped loads id only when parentCol matches parentID.
func findScoped[T any](ctx context.Context, db *gorm.DB, parentCol string, parentID, id uint) (*T, error) {
	var row T
	err := db.WithContext(ctx).
		Where(parentCol+" = ?", parentID).
		First(&row, id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// updateFields writes only the given columns and returns the fresh row.
func updateFields[T any](ctx context.Context, db *gorm.DB, id uint, fields map[string]interface{}) (*T, error) {
	row, err := findByID[T](ctx, db, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return row, nil
	}
	if err := db.WithContext(ctx).Model(row).Updates(fields).Error; err != nil {
		return nil, err
	}
	return findByID[T](ctx, db, id)
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, id uint) error {
	var row T
	res := db.WithContext(ctx).Delete(&row, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func exists[T any](ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	var n int64
	var row T
	if err := db.WithContext(ctx).Model(&row).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
