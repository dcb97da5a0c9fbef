package main

import (
	"fmt"
	"slices"

	"github.com/PeteShepley/simple-point-of-sale/client/views"
	"github.com/PeteShepley/simple-point-of-sale/dto"
	"github.com/spf13/cobra"
)

func newItemsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "items", Short: "Add, edit and remove menu items"}
	cmd.AddCommand(itemsAddCmd(a), itemsEditCmd(a), itemsDeleteCmd(a))
	return cmd
}

func itemFlags(cmd *cobra.Command, f *views.ItemForm) {
	cmd.Flags().StringVar(&f.Name, "name", "", "item name")
	cmd.Flags().StringVar(&f.Description, "description", "", "item description")
	cmd.Flags().StringVar(&f.Price, "price", "", "price in dollars, e.g. 9.99")
	cmd.Flags().UintVar(&f.RecipeID, "recipe", 0, "linked recipe id")
}

func itemsAddCmd(a *app) *cobra.Command {
	var form views.ItemForm
	cmd := &cobra.Command{
		Use:   "add MENU_ID",
		Short: "Add an item to a menu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			menuID, err := parseID("menu id", args[0])
			if err != nil {
				return err
			}
			req, err := form.CreateRequest()
			if err != nil {
				return err
			}
			ctx := a.ctx(cmd)
			if res := a.store.CreateMenuItem(ctx, menuID, req); !res.OK() {
				return a.failed()
			}
			if res := a.store.GetMenu(ctx, menuID, true); !res.OK() {
				return a.failed()
			}
			return views.MenuEdit(a.out, a.store.State(), menuID)
		},
	}
	itemFlags(cmd, &form)
	return cmd
}

func itemsEditCmd(a *app) *cobra.Command {
	var flags views.ItemForm
	cmd := &cobra.Command{
		Use:   "edit MENU_ID ITEM_ID",
		Short: "Change an item's name, description, price or recipe",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			menuID, err := parseID("menu id", args[0])
			if err != nil {
				return err
			}
			itemID, err := parseID("item id", args[1])
			if err != nil {
				return err
			}
			ctx := a.ctx(cmd)
			if res := a.store.GetMenu(ctx, menuID, true); !res.OK() {
				return a.failed()
			}
			items := a.store.Items(menuID)
			i := slices.IndexFunc(items, func(it dto.MenuItemResponse) bool { return it.ID == itemID })
			if i < 0 {
				return fmt.Errorf("item %d not found in menu %d", itemID, menuID)
			}

			form := views.ItemFormFrom(items[i])
			if cmd.Flags().Changed("name") {
				form.Name = flags.Name
			}
			if cmd.Flags().Changed("description") {
				form.Description = flags.Description
			}
			if cmd.Flags().Changed("price") {
				form.Price = flags.Price
			}
			if cmd.Flags().Changed("recipe") {
				form.RecipeID = flags.RecipeID
			}
			req, err := form.UpdateRequest()
			if err != nil {
				return err
			}
			if res := a.store.UpdateMenuItem(ctx, menuID, itemID, req); !res.OK() {
				return a.failed()
			}
			return views.MenuEdit(a.out, a.store.State(), menuID)
		},
	}
	itemFlags(cmd, &flags)
	return cmd
}

func itemsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete MENU_ID ITEM_ID",
		Short: "Remove an item from a menu",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			menuID, err := parseID("menu id", args[0])
			if err != nil {
				return err
			}
			itemID, err := parseID("item id", args[1])
			if err != nil {
				return err
			}
			ctx := a.ctx(cmd)
			if res := a.store.DeleteMenuItem(ctx, menuID, itemID); !res.OK() {
				return a.failed()
			}
			if res := a.store.GetMenu(ctx, menuID, true); !res.OK() {
				return a.failed()
			}
			return views.MenuEdit(a.out, a.store.State(), menuID)
		},
	}
}
