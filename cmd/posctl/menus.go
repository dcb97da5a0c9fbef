package main

import (
	"fmt"

	"github.com/PeteShepley/simple-point-of-sale/client/api"
	"github.com/PeteShepley/simple-point-of-sale/client/views"
	"github.com/spf13/cobra"
)

func newMenusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "menus", Short: "List, show and change menus"}
	cmd.AddCommand(
		menusListCmd(a),
		menusShowCmd(a),
		menusCreateCmd(a),
		menusEditCmd(a),
		menusDeleteCmd(a),
	)
	return cmd
}

func menusListCmd(a *app) *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List menus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var p api.Page
			if cmd.Flags().Changed("limit") {
				p.Limit = &limit
			}
			if cmd.Flags().Changed("offset") {
				p.Offset = &offset
			}
			res := a.store.FetchMenus(a.ctx(cmd), p)
			if err := views.MenuList(a.out, a.store.State()); err != nil {
				return err
			}
			if !res.OK() {
				return a.failed()
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 25, "page size (1-100)")
	cmd.Flags().IntVar(&offset, "offset", 0, "rows to skip")
	return cmd
}

func menusShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show MENU_ID",
		Short: "Show a menu and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("menu id", args[0])
			if err != nil {
				return err
			}
			if res := a.store.GetMenu(a.ctx(cmd), id, true); !res.OK() {
				return a.failed()
			}
			return views.MenuDetail(a.out, a.store.State(), id)
		},
	}
}

func menusCreateCmd(a *app) *cobra.Command {
	var form views.MenuForm
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := form.CreateRequest()
			if err != nil {
				return err
			}
			res := a.store.CreateMenu(a.ctx(cmd), req)
			if !res.OK() {
				_ = views.NewMenu(a.out, a.store.State(), form)
				return a.failed()
			}
			return views.MenuDetail(a.out, a.store.State(), res.Data.ID)
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "menu name")
	cmd.Flags().StringVar(&form.Description, "description", "", "menu description")
	return cmd
}

func menusEditCmd(a *app) *cobra.Command {
	var name, description string
	cmd := &cobra.Command{
		Use:   "edit MENU_ID",
		Short: "Rename or redescribe a menu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("menu id", args[0])
			if err != nil {
				return err
			}
			ctx := a.ctx(cmd)
			cur := a.store.GetMenu(ctx, id, true)
			if !cur.OK() {
				return a.failed()
			}
			form := views.MenuForm{Name: cur.Data.Name}
			if cur.Data.Description != nil {
				form.Description = *cur.Data.Description
			}
			if cmd.Flags().Changed("name") {
				form.Name = name
			}
			if cmd.Flags().Changed("description") {
				form.Description = description
			}
			req, err := form.UpdateRequest()
			if err != nil {
				return err
			}
			if res := a.store.UpdateMenu(ctx, id, req); !res.OK() {
				return a.failed()
			}
			return views.MenuEdit(a.out, a.store.State(), id)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	return cmd
}

func menusDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete MENU_ID",
		Short: "Delete a menu and all its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("menu id", args[0])
			if err != nil {
				return err
			}
			ctx := a.ctx(cmd)
			name := fmt.Sprintf("Menu #%d", id)
			if res := a.store.GetMenu(ctx, id, false); res.OK() {
				name = res.Data.Name
			} else if api.IsNotFound(res.Err) {
				return a.failed()
			}
			if !yes && !a.confirm(views.DeletePrompt(name)) {
				fmt.Fprintln(a.out, "Cancelled.")
				return nil
			}
			if res := a.store.DeleteMenu(ctx, id); !res.OK() {
				return a.failed()
			}
			fmt.Fprintf(a.out, "Deleted %s.\n", name)
			// refresh so the list reflects the server
			if res := a.store.FetchMenus(ctx, api.Page{}); !res.OK() {
				return a.failed()
			}
			return views.MenuList(a.out, a.store.State())
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
