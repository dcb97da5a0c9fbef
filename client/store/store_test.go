package store_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/PeteShepley/simple-point-of-sale/client/api"
	"github.com/PeteShepley/simple-point-of-sale/client/store"
	"github.com/PeteShepley/simple-point-of-sale/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI keeps menus in memory; err, when set, fails every call.
type fakeAPI struct {
	nextID uint
	menus  []dto.MenuResponse
	items  map[uint][]dto.MenuItemResponse
	err    error
}

func newFake() *fakeAPI {
	return &fakeAPI{nextID: 1, items: map[uint][]dto.MenuItemResponse{}}
}

func (f *fakeAPI) id() uint { f.nextID++; return f.nextID - 1 }

func (f *fakeAPI) ListMenus(ctx context.Context, p api.Page) ([]dto.MenuResponse, error) {
	return append([]dto.MenuResponse(nil), f.menus...), f.err
}

func (f *fakeAPI) GetMenu(ctx context.Context, id uint, withItems bool) (*dto.MenuResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.menus {
		if m.ID == id {
			if withItems {
				items := append([]dto.MenuItemResponse{}, f.items[id]...)
				m.Items = &items
			}
			return &m, nil
		}
	}
	return nil, &api.APIError{Status: http.StatusNotFound, Message: "menu not found"}
}

func (f *fakeAPI) CreateMenu(ctx context.Context, req dto.CreateMenuRequest) (*dto.MenuResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	m := dto.MenuResponse{ID: f.id(), Name: req.Name, Description: req.Description}
	f.menus = append(f.menus, m)
	return &m, nil
}

func (f *fakeAPI) UpdateMenu(ctx context.Context, id uint, req dto.UpdateMenuRequest) (*dto.MenuResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.menus {
		if f.menus[i].ID == id {
			if req.Name != nil {
				f.menus[i].Name = *req.Name
			}
			m := f.menus[i]
			return &m, nil
		}
	}
	return nil, &api.APIError{Status: http.StatusNotFound, Message: "menu not found"}
}

func (f *fakeAPI) DeleteMenu(ctx context.Context, id uint) error {
	return f.err
}

func (f *fakeAPI) ListMenuItems(ctx context.Context, menuID uint, p api.Page) ([]dto.MenuItemResponse, error) {
	return f.items[menuID], f.err
}

func (f *fakeAPI) CreateMenuItem(ctx context.Context, menuID uint, req dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	i := dto.MenuItemResponse{ID: f.id(), MenuID: menuID, Name: req.Name, CostCents: req.CostCents}
	f.items[menuID] = append(f.items[menuID], i)
	return &i, nil
}

func (f *fakeAPI) UpdateMenuItem(ctx context.Context, menuID, id uint, req dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	i := dto.MenuItemResponse{ID: id, MenuID: menuID}
	if req.Name != nil {
		i.Name = *req.Name
	}
	return &i, nil
}

func (f *fakeAPI) DeleteMenuItem(ctx context.Context, menuID, id uint) error {
	return f.err
}

func TestReduce_Lifecycle(t *testing.T) {
	s := store.NewState()

	s = store.Reduce(s, store.Action{Op: store.OpFetchMenus, Stage: store.Rejected, Err: "boom"})
	assert.Equal(t, store.Status{Phase: store.PhaseError, Err: "boom"}, s.Status)

	s = store.Reduce(s, store.Action{Op: store.OpFetchMenus, Stage: store.Pending})
	assert.Equal(t, store.PhaseLoading, s.Status.Phase)
	assert.Empty(t, s.Status.Err, "pending clears the previous error")

	s = store.Reduce(s, store.Action{Op: store.OpFetchMenus, Stage: store.Fulfilled,
		Menus: []dto.MenuResponse{{ID: 1, Name: "Lunch"}}})
	assert.Equal(t, store.PhaseOK, s.Status.Phase)
	assert.Len(t, s.Menus, 1)
	assert.Equal(t, "Lunch", s.ByID[1].Name)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := store.Reduce(store.NewState(), store.Action{Op: store.OpFetchMenus, Stage: store.Fulfilled,
		Menus: []dto.MenuResponse{{ID: 1, Name: "Lunch"}}})

	after := store.Reduce(before, store.Action{Op: store.OpUpdateMenu, Stage: store.Fulfilled,
		Menu: &dto.MenuResponse{ID: 1, Name: "Brunch"}})

	assert.Equal(t, "Lunch", before.Menus[0].Name)
	assert.Equal(t, "Lunch", before.ByID[1].Name)
	assert.Equal(t, "Brunch", after.Menus[0].Name)
}

func TestReduce_UpsertAndDelete(t *testing.T) {
	s := store.NewState()
	items := []dto.MenuItemResponse{{ID: 10, MenuID: 1, Name: "Burger"}}
	s = store.Reduce(s, store.Action{Op: store.OpGetMenu, Stage: store.Fulfilled,
		Menu: &dto.MenuResponse{ID: 1, Name: "Lunch", Items: &items}})
	s = store.Reduce(s, store.Action{Op: store.OpCreateMenu, Stage: store.Fulfilled,
		Menu: &dto.MenuResponse{ID: 2, Name: "Dinner"}})

	require.Len(t, s.Menus, 2)
	assert.Nil(t, s.ByID[1].Items, "items live in ItemsByMenuID")
	assert.Len(t, s.ItemsByMenuID[1], 1)

	s = store.Reduce(s, store.Action{Op: store.OpCreateMenuItem, Stage: store.Fulfilled, MenuID: 2,
		Item: &dto.MenuItemResponse{ID: 11, MenuID: 2, Name: "Steak"}})
	s = store.Reduce(s, store.Action{Op: store.OpUpdateMenuItem, Stage: store.Fulfilled, MenuID: 1,
		Item: &dto.MenuItemResponse{ID: 10, MenuID: 1, Name: "Cheeseburger"}})
	assert.Equal(t, "Cheeseburger", s.ItemsByMenuID[1][0].Name)
	assert.Len(t, s.ItemsByMenuID[2], 1)

	s = store.Reduce(s, store.Action{Op: store.OpDeleteMenuItem, Stage: store.Fulfilled, MenuID: 1, ItemID: 10})
	assert.Empty(t, s.ItemsByMenuID[1])
	assert.Len(t, s.ItemsByMenuID[2], 1, "other menus untouched")

	s = store.Reduce(s, store.Action{Op: store.OpDeleteMenu, Stage: store.Fulfilled, MenuID: 2})
	require.Len(t, s.Menus, 1)
	assert.Equal(t, uint(1), s.Menus[0].ID)
	_, ok := s.ByID[2]
	assert.False(t, ok)
	_, ok = s.ItemsByMenuID[2]
	assert.False(t, ok)
}

func TestStore_Thunks(t *testing.T) {
	ctx := context.Background()
	fake := newFake()
	st := store.New(fake)

	created := st.CreateMenu(ctx, dto.CreateMenuRequest{Name: "Lunch"})
	require.True(t, created.OK())
	lunch := created.Data
	assert.False(t, st.Loading())

	item := st.CreateMenuItem(ctx, lunch.ID, dto.CreateMenuItemRequest{Name: "Burger", CostCents: 999})
	require.True(t, item.OK())
	assert.Len(t, st.Items(lunch.ID), 1)

	got := st.GetMenu(ctx, lunch.ID, true)
	require.True(t, got.OK())
	m, ok := st.Menu(lunch.ID)
	require.True(t, ok)
	assert.Equal(t, "Lunch", m.Name)

	fetched := st.FetchMenus(ctx, api.Page{})
	require.True(t, fetched.OK())
	assert.Len(t, st.Menus(), 1)

	del := st.DeleteMenu(ctx, lunch.ID)
	require.True(t, del.OK())
	assert.Empty(t, st.Menus())
	assert.Empty(t, st.Items(lunch.ID))
}

func TestStore_Rejected(t *testing.T) {
	ctx := context.Background()
	fake := newFake()
	st := store.New(fake)

	res := st.GetMenu(ctx, 99, false)
	assert.Equal(t, store.PhaseError, res.Status)
	assert.True(t, api.IsNotFound(res.Err))
	assert.Equal(t, "menu not found", st.Error())

	fake.err = errors.New("connection refused")
	res2 := st.FetchMenus(ctx, api.Page{})
	assert.False(t, res2.OK())
	assert.Equal(t, "connection refused", st.Error())

	fake.err = nil
	require.True(t, st.FetchMenus(ctx, api.Page{}).OK())
	assert.Empty(t, st.Error())
}
