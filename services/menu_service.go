// services/menu_service.go
package services

import (
	"context"

	"github.com/PeteShepley/simple-point-of-sale/dto"
	"github.com/PeteShepley/simple-point-of-sale/entity"
	"github.com/PeteShepley/simple-point-of-sale/repository"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type MenuService struct {
	DB    *gorm.DB
	Menus *repository.MenuRepository
	Items *repository.MenuItemRepository
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{
		DB:    db,
		Menus: repository.NewMenuRepository(db),
		Items: repository.NewMenuItemRepository(db),
	}
}

// ----- Menus -----

func (s *MenuService) List(ctx context.Context, q dto.PageQuery) ([]entity.Menu, error) {
	return s.Menus.List(ctx, repository.NewPage(q.Limit, q.Offset))
}

func (s *MenuService) Get(ctx context.Context, id uint) (*entity.Menu, error) {
	m, err := s.Menus.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrMenuNotFound)
	}
	return m, nil
}

// GetWithItems loads a menu and all of its items.
func (s *MenuService) GetWithItems(ctx context.Context, id uint) (*entity.Menu, []entity.MenuItem, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.Items.AllByMenu(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return m, items, nil
}

func (s *MenuService) Create(ctx context.Context, req dto.CreateMenuRequest) (*entity.Menu, error) {
	m := &entity.Menu{Name: req.Name, Description: req.Description}
	if err := s.Menus.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Update(ctx context.Context, id uint, req dto.UpdateMenuRequest) (*entity.Menu, error) {
	var out *entity.Menu
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := repository.NewMenuRepository(tx).Update(ctx, id, req.Fields())
		if err != nil {
			return notFound(err, ErrMenuNotFound)
		}
		out = m
		return nil
	})
	return out, err
}

// Delete removes the menu together with its items.
func (s *MenuService) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		menus := repository.NewMenuRepository(tx)
		ok, err := menus.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrMenuNotFound
		}
		n, err := repository.NewMenuItemRepository(tx).DeleteByMenu(ctx, id)
		if err != nil {
			return err
		}
		if err := menus.Delete(ctx, id); err != nil {
			return notFound(err, ErrMenuNotFound)
		}
		zerolog.Ctx(ctx).Info().Uint("menu_id", id).Int64("items", n).Msg("menu deleted")
		return nil
	})
}

// ----- Menu items -----

func (s *MenuService) ListItems(ctx context.Context, menuID uint, q dto.PageQuery) ([]entity.MenuItem, error) {
	ok, err := s.Menus.Exists(ctx, menuID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMenuNotFound
	}
	return s.Items.ListByMenu(ctx, menuID, repository.NewPage(q.Limit, q.Offset))
}

func (s *MenuService) GetItem(ctx context.Context, menuID, id uint) (*entity.MenuItem, error) {
	item, err := s.Items.FindInMenu(ctx, menuID, id)
	if err != nil {
		return nil, notFound(err, ErrMenuItemNotFound)
	}
	return item, nil
}

func (s *MenuService) CreateItem(ctx context.Context, menuID uint, req dto.CreateMenuItemRequest) (*entity.MenuItem, error) {
	if req.MenuID != 0 && req.MenuID != menuID {
		return nil, ErrMenuMismatch
	}
	item := &entity.MenuItem{
		MenuID:      menuID,
		Name:        req.Name,
		Description: req.Description,
		CostCents:   req.CostCents,
		RecipeID:    req.RecipeID,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := repository.NewMenuRepository(tx).Exists(ctx, menuID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrMenuNotFound
		}
		if err := requireRecipe(ctx, tx, req.RecipeID); err != nil {
			return err
		}
		return repository.NewMenuItemRepository(tx).Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) UpdateItem(ctx context.Context, menuID, id uint, req dto.UpdateMenuItemRequest) (*entity.MenuItem, error) {
	var out *entity.MenuItem
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := repository.NewMenuItemRepository(tx)
		if _, err := items.FindInMenu(ctx, menuID, id); err != nil {
			return notFound(err, ErrMenuItemNotFound)
		}
		if err := requireRecipe(ctx, tx, req.RecipeID); err != nil {
			return err
		}
		item, err := items.Update(ctx, id, req.Fields())
		if err != nil {
			return notFound(err, ErrMenuItemNotFound)
		}
		out = item
		return nil
	})
	return out, err
}

func (s *MenuService) DeleteItem(ctx context.Context, menuID, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := repository.NewMenuItemRepository(tx)
		if _, err := items.FindInMenu(ctx, menuID, id); err != nil {
			return notFound(err, ErrMenuItemNotFound)
		}
		return notFound(items.Delete(ctx, id), ErrMenuItemNotFound)
	})
}

// requireRecipe checks an optional recipe link inside tx.
func requireRecipe(ctx context.Context, tx *gorm.DB, recipeID *uint) error {
	if recipeID == nil {
		return nil
	}
	ok, err := repository.NewRecipeRepository(tx).Exists(ctx, *recipeID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRecipeNotFound
	}
	return nil
}
