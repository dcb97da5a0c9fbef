package views

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/PeteShepley/simple-point-of-sale/client/store"
	"github.com/PeteShepley/simple-point-of-sale/dto"
	"github.com/PeteShepley/simple-point-of-sale/pkg/money"
)

// DeletePrompt is the confirmation asked before a menu is removed.
func DeletePrompt(name string) string {
	return fmt.Sprintf("Delete menu %q? This will also delete all its items.", name)
}

func status(w io.Writer, s store.Status) {
	switch s.Phase {
	case store.PhaseLoading:
		fmt.Fprintln(w, "Loading…")
	case store.PhaseError:
		fmt.Fprintf(w, "error: %s\n", s.Err)
	}
}

// MenuList renders every known menu.
func MenuList(w io.Writer, st store.State) error {
	fmt.Fprintln(w, "Menus")
	status(w, st.Status)
	if len(st.Menus) == 0 {
		fmt.Fprintln(w, "No menus found.")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
	for _, m := range st.Menus {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", m.ID, m.Name, deref(m.Description))
	}
	return tw.Flush()
}

// MenuDetail renders one menu with its items and prices.
func MenuDetail(w io.Writer, st store.State, menuID uint) error {
	m, ok := st.ByID[menuID]
	if !ok {
		status(w, st.Status)
		fmt.Fprintf(w, "Menu #%d not found.\n", menuID)
		return nil
	}
	fmt.Fprintln(w, m.Name)
	status(w, st.Status)
	if m.Description != nil && *m.Description != "" {
		fmt.Fprintln(w, *m.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Items")
	return itemTable(w, st.ItemsByMenuID[menuID], false)
}

// MenuEdit renders the item editing page: items with their ids and the
// prices as they would be typed back into an ItemForm.
func MenuEdit(w io.Writer, st store.State, menuID uint) error {
	m, ok := st.ByID[menuID]
	if !ok {
		status(w, st.Status)
		fmt.Fprintf(w, "Menu #%d not found.\n", menuID)
		return nil
	}
	fmt.Fprintf(w, "Edit %s\n", m.Name)
	status(w, st.Status)
	if err := itemTable(w, st.ItemsByMenuID[menuID], true); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nAdd an item:    posctl items add %d --name NAME --price 9.99\n", menuID)
	fmt.Fprintf(w, "Edit an item:   posctl items edit %d ITEM_ID --price 10.50\n", menuID)
	fmt.Fprintf(w, "Remove an item: posctl items delete %d ITEM_ID\n", menuID)
	return nil
}

// NewMenu renders the create page with the form as entered so far.
func NewMenu(w io.Writer, st store.State, f MenuForm) error {
	fmt.Fprintln(w, "New Menu")
	status(w, st.Status)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", f.Name)
	fmt.Fprintf(tw, "Description:\t%s\n", f.Description)
	return tw.Flush()
}

func itemTable(w io.Writer, items []dto.MenuItemResponse, withRecipe bool) error {
	if len(items) == 0 {
		fmt.Fprintln(w, "No items found.")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if withRecipe {
		fmt.Fprintln(tw, "ID\tNAME\tPRICE\tRECIPE\tDESCRIPTION")
	} else {
		fmt.Fprintln(tw, "ID\tNAME\tPRICE\tDESCRIPTION")
	}
	for _, it := range items {
		price := "$" + money.Format(it.CostCents)
		if withRecipe {
			recipe := "-"
			if it.RecipeID != nil {
				recipe = fmt.Sprint(*it.RecipeID)
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", it.ID, it.Name, price, recipe, deref(it.Description))
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", it.ID, it.Name, price, deref(it.Description))
	}
	return tw.Flush()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
