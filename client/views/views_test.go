package views_test

import (
	"bytes"
	"testing"

	"github.com/PeteShepley/simple-point-of-sale/client/store"
	"github.com/PeteShepley/simple-point-of-sale/client/views"
	"github.com/PeteShepley/simple-point-of-sale/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestItemForm_CreateRequest(t *testing.T) {
	cases := []struct {
		price string
		want  int64
	}{
		{"9.99", 999},
		{"$10.50", 1050},
		{"10.5", 1050},
		{"3", 300},
		{"0.125", 13},
	}
	for _, tc := range cases {
		t.Run(tc.price, func(t *testing.T) {
			req, err := views.ItemForm{Name: " Burger ", Price: tc.price}.CreateRequest()
			require.NoError(t, err)
			assert.Equal(t, tc.want, req.CostCents)
			assert.Equal(t, "Burger", req.Name)
			assert.Nil(t, req.Description)
			assert.Nil(t, req.RecipeID)
		})
	}
}

func TestItemForm_Rejects(t *testing.T) {
	cases := map[string]views.ItemForm{
		"no name":        {Price: "1.00"},
		"blank name":     {Name: "   ", Price: "1.00"},
		"no price":       {Name: "Burger"},
		"not a number":   {Name: "Burger", Price: "abc"},
		"zero":           {Name: "Burger", Price: "0"},
		"negative":       {Name: "Burger", Price: "-2.00"},
		"rounds to zero": {Name: "Burger", Price: "0.004"},
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.CreateRequest()
			assert.Error(t, err)
		})
	}
}

func TestItemForm_UpdateRoundTrip(t *testing.T) {
	it := dto.MenuItemResponse{ID: 3, MenuID: 1, Name: "Burger", Description: ptr("beef"), CostCents: 999, RecipeID: ptr(uint(7))}
	f := views.ItemFormFrom(it)
	assert.Equal(t, "9.99", f.Price)

	req, err := f.UpdateRequest()
	require.NoError(t, err)
	assert.Equal(t, int64(999), *req.CostCents)
	assert.Equal(t, "beef", *req.Description)
	assert.Equal(t, uint(7), *req.RecipeID)

	f.Description = ""
	req, err = f.UpdateRequest()
	require.NoError(t, err)
	require.NotNil(t, req.Description)
	assert.Equal(t, "", *req.Description)
}

func TestMenuForm(t *testing.T) {
	req, err := views.MenuForm{Name: "Lunch", Description: "  "}.CreateRequest()
	require.NoError(t, err)
	assert.Equal(t, "Lunch", req.Name)
	assert.Nil(t, req.Description)

	upd, err := views.MenuForm{Name: "Lunch", Description: " "}.UpdateRequest()
	require.NoError(t, err)
	require.NotNil(t, upd.Description)
	assert.Equal(t, "", *upd.Description, "blank description is sent so it clears")

	_, err = views.MenuForm{Name: " "}.CreateRequest()
	assert.EqualError(t, err, "name is required")

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'x'
	}
	_, err = views.MenuForm{Name: string(long)}.UpdateRequest()
	assert.EqualError(t, err, "name must be at most 200 characters")
}

func state() store.State {
	s := store.NewState()
	items := []dto.MenuItemResponse{{ID: 10, MenuID: 1, Name: "Burger", CostCents: 999, Description: ptr("beef")}}
	s = store.Reduce(s, store.Action{Op: store.OpGetMenu, Stage: store.Fulfilled,
		Menu: &dto.MenuResponse{ID: 1, Name: "Lunch", Description: ptr("weekdays"), Items: &items}})
	return s
}

func TestMenuList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, views.MenuList(&buf, state()))
	out := buf.String()
	assert.Contains(t, out, "Lunch")
	assert.Contains(t, out, "weekdays")

	buf.Reset()
	empty := store.Reduce(store.NewState(), store.Action{Op: store.OpFetchMenus, Stage: store.Rejected, Err: "connection refused"})
	require.NoError(t, views.MenuList(&buf, empty))
	assert.Contains(t, buf.String(), "error: connection refused")
	assert.Contains(t, buf.String(), "No menus found.")
}

func TestMenuDetailAndEdit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, views.MenuDetail(&buf, state(), 1))
	assert.Contains(t, buf.String(), "Burger")
	assert.Contains(t, buf.String(), "$9.99")

	buf.Reset()
	require.NoError(t, views.MenuEdit(&buf, state(), 1))
	assert.Contains(t, buf.String(), "Edit Lunch")
	assert.Contains(t, buf.String(), "posctl items add 1")

	buf.Reset()
	require.NoError(t, views.MenuDetail(&buf, state(), 2))
	assert.Contains(t, buf.String(), "Menu #2 not found.")
}

func TestNewMenuAndPrompt(t *testing.T) {
	var buf bytes.Buffer
	loading := store.Reduce(store.NewState(), store.Action{Op: store.OpCreateMenu, Stage: store.Pending})
	require.NoError(t, views.NewMenu(&buf, loading, views.MenuForm{Name: "Dinner"}))
	assert.Contains(t, buf.String(), "Loading…")
	assert.Contains(t, buf.String(), "Dinner")

	assert.Equal(t, `Delete menu "Lunch"? This will also delete all its items.`, views.DeletePrompt("Lunch"))
}
