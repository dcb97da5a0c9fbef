// services/recipe_service.go
package services

import (
	"context"

	"github.com/PeteShepley/simple-point-of-sale/dto"
	"github.com/PeteShepley/simple-point-of-sale/entity"
	"github.com/PeteShepley/simple-point-of-sale/repository"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type RecipeService struct {
	DB          *gorm.DB
	Recipes     *repository.RecipeRepository
	Ingredients *repository.IngredientRepository
	Steps       *repository.MethodStepRepository
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{
		DB:          db,
		Recipes:     repository.NewRecipeRepository(db),
		Ingredients: repository.NewIngredientRepository(db),
		Steps:       repository.NewMethodStepRepository(db),
	}
}

// RecipeDetail is a recipe plus whichever child lists were asked for; a nil
// slice means "not loaded".
type RecipeDetail struct {
	Recipe      entity.Recipe
	Ingredients []entity.Ingredient
	Steps       []entity.MethodStep
}

// ----- Recipes -----

func (s *RecipeService) List(ctx context.Context, q dto.PageQuery) ([]entity.Recipe, error) {
	return s.Recipes.List(ctx, repository.NewPage(q.Limit, q.Offset))
}

func (s *RecipeService) Get(ctx context.Context, id uint, q dto.RecipeDetailQuery) (*RecipeDetail, error) {
	r, err := s.Recipes.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrRecipeNotFound)
	}
	out := &RecipeDetail{Recipe: *r}
	if q.WantIngredients() {
		if out.Ingredients, err = s.Ingredients.AllByRecipe(ctx, id); err != nil {
			return nil, err
		}
		if out.Ingredients == nil {
			out.Ingredients = []entity.Ingredient{}
		}
	}
	if q.WantSteps() {
		if out.Steps, err = s.Steps.AllByRecipe(ctx, id); err != nil {
			return nil, err
		}
		if out.Steps == nil {
			out.Steps = []entity.MethodStep{}
		}
	}
	return out, nil
}

func (s *RecipeService) Create(ctx context.Context, req dto.CreateRecipeRequest) (*entity.Recipe, error) {
	r := &entity.Recipe{Name: req.Name}
	if err := s.Recipes.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RecipeService) Update(ctx context.Context, id uint, req dto.UpdateRecipeRequest) (*entity.Recipe, error) {
	var out *entity.Recipe
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, err := repository.NewRecipeRepository(tx).Update(ctx, id, req.Fields())
		if err != nil {
			return notFound(err, ErrRecipeNotFound)
		}
		out = r
		return nil
	})
	return out, err
}

// Delete removes the recipe, its ingredients and steps, and unlinks menu
// items that pointed at it.
func (s *RecipeService) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipes := repository.NewRecipeRepository(tx)
		ok, err := recipes.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrRecipeNotFound
		}
		ingredients, err := repository.NewIngredientRepository(tx).DeleteByRecipe(ctx, id)
		if err != nil {
			return err
		}
		steps, err := repository.NewMethodStepRepository(tx).DeleteByRecipe(ctx, id)
		if err != nil {
			return err
		}
		unlinked, err := repository.NewMenuItemRepository(tx).ClearRecipe(ctx, id)
		if err != nil {
			return err
		}
		if err := recipes.Delete(ctx, id); err != nil {
			return notFound(err, ErrRecipeNotFound)
		}
		zerolog.Ctx(ctx).Info().
			Uint("recipe_id", id).
			Int64("ingredients", ingredients).
			Int64("steps", steps).
			Int64("unlinked_items", unlinked).
			Msg("recipe deleted")
		return nil
	})
}

func (s *RecipeService) requireRecipe(ctx context.Context, recipeID *uint) error {
	if recipeID == nil {
		return nil
	}
	ok, err := s.Recipes.Exists(ctx, *recipeID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRecipeNotFound
	}
	return nil
}

// ----- Ingredients -----

// ListIngredients pages ingredients; with recipeID set the recipe must exist.
func (s *RecipeService) ListIngredients(ctx context.Context, recipeID *uint, q dto.PageQuery) ([]entity.Ingredient, error) {
	if err := s.requireRecipe(ctx, recipeID); err != nil {
		return nil, err
	}
	return s.Ingredients.List(ctx, recipeID, repository.NewPage(q.Limit, q.Offset))
}

func (s *RecipeService) GetIngredient(ctx context.Context, id uint) (*entity.Ingredient, error) {
	row, err := s.Ingredients.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrIngredientNotFound)
	}
	return row, nil
}

func (s *RecipeService) GetRecipeIngredient(ctx context.Context, recipeID, id uint) (*entity.Ingredient, error) {
	row, err := s.Ingredients.FindInRecipe(ctx, recipeID, id)
	if err != nil {
		return nil, notFound(err, ErrIngredientNotFound)
	}
	return row, nil
}

func (s *RecipeService) CreateIngredient(ctx context.Context, req dto.CreateIngredientRequest) (*entity.Ingredient, error) {
	row := &entity.Ingredient{
		RecipeID: req.RecipeID,
		Name:     req.Name,
		Amount:   req.Amount,
		Unit:     req.Unit,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRecipe(ctx, tx, &req.RecipeID); err != nil {
			return err
		}
		return repository.NewIngredientRepository(tx).Create(ctx, row)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *RecipeService) UpdateIngredient(ctx context.Context, id uint, req dto.UpdateIngredientRequest) (*entity.Ingredient, error) {
	var out *entity.Ingredient
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := repository.NewIngredientRepository(tx).Update(ctx, id, req.Fields())
		if err != nil {
			return notFound(err, ErrIngredientNotFound)
		}
		out = row
		return nil
	})
	return out, err
}

func (s *RecipeService) DeleteIngredient(ctx context.Context, id uint) error {
	return notFound(s.Ingredients.Delete(ctx, id), ErrIngredientNotFound)
}

// ----- Method steps -----

// ListSteps pages steps sorted by order; with recipeID set the recipe must exist.
func (s *RecipeService) ListSteps(ctx context.Context, recipeID *uint, q dto.PageQuery) ([]entity.MethodStep, error) {
	if err := s.requireRecipe(ctx, recipeID); err != nil {
		return nil, err
	}
	return s.Steps.List(ctx, recipeID, repository.NewPage(q.Limit, q.Offset))
}

func (s *RecipeService) GetStep(ctx context.Context, id uint) (*entity.MethodStep, error) {
	row, err := s.Steps.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrStepNotFound)
	}
	return row, nil
}

// CreateStep rejects an order already used within the recipe.
func (s *RecipeService) CreateStep(ctx context.Context, req dto.CreateMethodStepRequest) (*entity.MethodStep, error) {
	step := &entity.MethodStep{
		RecipeID:    req.RecipeID,
		Order:       req.Order,
		Instruction: req.Instruction,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRecipe(ctx, tx, &req.RecipeID); err != nil {
			return err
		}
		steps := repository.NewMethodStepRepository(tx)
		taken, err := steps.OrderTaken(ctx, req.RecipeID, req.Order, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrStepOrderTaken
		}
		return orderConflict(steps.Create(ctx, step))
	})
	if err != nil {
		return nil, err
	}
	return step, nil
}

// UpdateStep rejects moving a step onto a sibling's order; keeping its own
// order is fine.
func (s *RecipeService) UpdateStep(ctx context.Context, id uint, req dto.UpdateMethodStepRequest) (*entity.MethodStep, error) {
	var out *entity.MethodStep
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := repository.NewMethodStepRepository(tx)
		cur, err := steps.FindByID(ctx, id)
		if err != nil {
			return notFound(err, ErrStepNotFound)
		}
		if req.Order != nil {
			taken, err := steps.OrderTaken(ctx, cur.RecipeID, *req.Order, cur.ID)
			if err != nil {
				return err
			}
			if taken {
				return ErrStepOrderTaken
			}
		}
		row, err := steps.Update(ctx, id, req.Fields())
		if err != nil {
			return orderConflict(notFound(err, ErrStepNotFound))
		}
		out = row
		return nil
	})
	return out, err
}

func (s *RecipeService) DeleteStep(ctx context.Context, id uint) error {
	return notFound(s.Steps.Delete(ctx, id), ErrStepNotFound)
}
