package store

import (
	"context"
	"errors"
	"sync"

	"github.com/PeteShepley/simple-point-of-sale/client/api"
	"github.com/PeteShepley/simple-point-of-sale/dto"
)

// API is the slice of *api.Client the store calls.
type API interface {
	ListMenus(ctx context.Context, p api.Page) ([]dto.MenuResponse, error)
	GetMenu(ctx context.Context, id uint, withItems bool) (*dto.MenuResponse, error)
	CreateMenu(ctx context.Context, req dto.CreateMenuRequest) (*dto.MenuResponse, error)
	UpdateMenu(ctx context.Context, id uint, req dto.UpdateMenuRequest) (*dto.MenuResponse, error)
	DeleteMenu(ctx context.Context, id uint) error
	ListMenuItems(ctx context.Context, menuID uint, p api.Page) ([]dto.MenuItemResponse, error)
	CreateMenuItem(ctx context.Context, menuID uint, req dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error)
	UpdateMenuItem(ctx context.Context, menuID, id uint, req dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error)
	DeleteMenuItem(ctx context.Context, menuID, id uint) error
}

type Store struct {
	mu    sync.RWMutex
	state State
	api   API
}

func New(client API) *Store {
	return &Store{state: NewState(), api: client}
}

func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	s.mu.Unlock()
}

// State returns a copy safe to read without the lock.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// ----- selectors -----

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Status.Phase == PhaseLoading
}

// Error is the message of the last failed request, empty once a new one starts.
func (s *Store) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Status.Err
}

func (s *Store) Menus() []dto.MenuResponse {
	return s.State().Menus
}

func (s *Store) Menu(id uint) (dto.MenuResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.state.ByID[id]
	return m, ok
}

func (s *Store) Items(menuID uint) []dto.MenuItemResponse {
	return s.State().ItemsByMenuID[menuID]
}

// Result is what a thunk hands back to its caller.
type Result[T any] struct {
	Status Phase
	Data   T
	Err    error
}

func (r Result[T]) OK() bool { return r.Status == PhaseOK }

// run dispatches pending, calls fn and dispatches fulfilled or rejected.
func run[T any](ctx context.Context, s *Store, op Op, fn func(context.Context) (T, error), done func(T) Action) Result[T] {
	s.Dispatch(Action{Op: op, Stage: Pending})
	data, err := fn(ctx)
	if err != nil {
		s.Dispatch(Action{Op: op, Stage: Rejected, Err: message(err)})
		return Result[T]{Status: PhaseError, Data: data, Err: err}
	}
	a := done(data)
	a.Op, a.Stage = op, Fulfilled
	s.Dispatch(a)
	return Result[T]{Status: PhaseOK, Data: data}
}

func message(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// ----- thunks -----

func (s *Store) FetchMenus(ctx context.Context, p api.Page) Result[[]dto.MenuResponse] {
	return run(ctx, s, OpFetchMenus,
		func(ctx context.Context) ([]dto.MenuResponse, error) { return s.api.ListMenus(ctx, p) },
		func(m []dto.MenuResponse) Action { return Action{Menus: m} })
}

func (s *Store) GetMenu(ctx context.Context, id uint, withItems bool) Result[*dto.MenuResponse] {
	return run(ctx, s, OpGetMenu,
		func(ctx context.Context) (*dto.MenuResponse, error) { return s.api.GetMenu(ctx, id, withItems) },
		func(m *dto.MenuResponse) Action { return Action{Menu: m} })
}

func (s *Store) CreateMenu(ctx context.Context, req dto.CreateMenuRequest) Result[*dto.MenuResponse] {
	return run(ctx, s, OpCreateMenu,
		func(ctx context.Context) (*dto.MenuResponse, error) { return s.api.CreateMenu(ctx, req) },
		func(m *dto.MenuResponse) Action { return Action{Menu: m} })
}

func (s *Store) UpdateMenu(ctx context.Context, id uint, req dto.UpdateMenuRequest) Result[*dto.MenuResponse] {
	return run(ctx, s, OpUpdateMenu,
		func(ctx context.Context) (*dto.MenuResponse, error) { return s.api.UpdateMenu(ctx, id, req) },
		func(m *dto.MenuResponse) Action { return Action{Menu: m} })
}

func (s *Store) DeleteMenu(ctx context.Context, id uint) Result[uint] {
	return run(ctx, s, OpDeleteMenu,
		func(ctx context.Context) (uint, error) { return id, s.api.DeleteMenu(ctx, id) },
		func(id uint) Action { return Action{MenuID: id} })
}

func (s *Store) FetchMenuItems(ctx context.Context, menuID uint, p api.Page) Result[[]dto.MenuItemResponse] {
	return run(ctx, s, OpFetchMenuItems,
		func(ctx context.Context) ([]dto.MenuItemResponse, error) { return s.api.ListMenuItems(ctx, menuID, p) },
		func(items []dto.MenuItemResponse) Action { return Action{MenuID: menuID, Items: items} })
}

func (s *Store) CreateMenuItem(ctx context.Context, menuID uint, req dto.CreateMenuItemRequest) Result[*dto.MenuItemResponse] {
	return run(ctx, s, OpCreateMenuItem,
		func(ctx context.Context) (*dto.MenuItemResponse, error) { return s.api.CreateMenuItem(ctx, menuID, req) },
		func(i *dto.MenuItemResponse) Action { return Action{MenuID: menuID, Item: i} })
}

func (s *Store) UpdateMenuItem(ctx context.Context, menuID, id uint, req dto.UpdateMenuItemRequest) Result[*dto.MenuItemResponse] {
	return run(ctx, s, OpUpdateMenuItem,
		func(ctx context.Context) (*dto.MenuItemResponse, error) {
			return s.api.UpdateMenuItem(ctx, menuID, id, req)
		},
		func(i *dto.MenuItemResponse) Action { return Action{MenuID: menuID, Item: i} })
}

func (s *Store) DeleteMenuItem(ctx context.Context, menuID, id uint) Result[uint] {
	return run(ctx, s, OpDeleteMenuItem,
		func(ctx context.Context) (uint, error) { return id, s.api.DeleteMenuItem(ctx, menuID, id) },
		func(id uint) Action { return Action{MenuID: menuID, ItemID: id} })
}
