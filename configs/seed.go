package configs

import (
	"github.com/PeteShepley/simple-point-of-sale/entity"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SeedSample fills an empty database with one menu and one recipe so the
// client has something to show. Running it twice changes nothing.
func SeedSample(db *gorm.DB, log zerolog.Logger) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		// Recipe
		var recipe entity.Recipe
		if err := tx.FirstOrCreate(&recipe, entity.Recipe{Name: "Classic Burger"}).Error; err != nil {
			return err
		}
		ingredients := []entity.Ingredient{
			{RecipeID: recipe.ID, Name: "Beef patty", Amount: 1, Unit: "pc"},
			{RecipeID: recipe.ID, Name: "Bun", Amount: 1, Unit: "pc"},
			{RecipeID: recipe.ID, Name: "Cheddar", Amount: 30, Unit: "g"},
		}
		for _, in := range ingredients {
			if err := tx.FirstOrCreate(&entity.Ingredient{}, in).Error; err != nil {
				return err
			}
		}
		steps := []entity.MethodStep{
			{RecipeID: recipe.ID, Order: 1, Instruction: "Grill the patty for 4 minutes a side."},
			{RecipeID: recipe.ID, Order: 2, Instruction: "Melt the cheddar on top."},
			{RecipeID: recipe.ID, Order: 3, Instruction: "Assemble in the toasted bun."},
		}
		for _, st := range steps {
			row := entity.MethodStep{RecipeID: st.RecipeID, Order: st.Order}
			if err := tx.Where(row).
				Attrs(entity.MethodStep{Instruction: st.Instruction}).
				FirstOrCreate(&row).Error; err != nil {
				return err
			}
		}

		// Menu
		var menu entity.Menu
		if err := tx.FirstOrCreate(&menu, entity.Menu{Name: "Lunch"}).Error; err != nil {
			return err
		}
		item := entity.MenuItem{MenuID: menu.ID, Name: "Burger"}
		return tx.Where(item).
			Attrs(entity.MenuItem{CostCents: 999, RecipeID: &recipe.ID}).
			FirstOrCreate(&item).Error
	})
	if err != nil {
		return err
	}
	log.Info().Msg("sample data seeded")
	return nil
}
