// Package store keeps the client's view of menus and their items and tracks
// the status of the request in flight.
package store

import (
	"slices"

	"github.com/PeteShepley/simple-point-of-sale/dto"
)

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseOK      Phase = "ok"
	PhaseError   Phase = "error"
)

type Status struct {
	Phase Phase
	Err   string
}

// State is a value; Reduce never mutates its input.
type State struct {
	Menus         []dto.MenuResponse
	ByID          map[uint]dto.MenuResponse
	ItemsByMenuID map[uint][]dto.MenuItemResponse
	Status        Status
}

func NewState() State {
	return State{
		ByID:          map[uint]dto.MenuResponse{},
		ItemsByMenuID: map[uint][]dto.MenuItemResponse{},
		Status:        Status{Phase: PhaseIdle},
	}
}

func (s State) clone() State {
	out := State{
		Menus:         slices.Clone(s.Menus),
		ByID:          make(map[uint]dto.MenuResponse, len(s.ByID)),
		ItemsByMenuID: make(map[uint][]dto.MenuItemResponse, len(s.ItemsByMenuID)),
		Status:        s.Status,
	}
	for k, v := range s.ByID {
		out.ByID[k] = v
	}
	for k, v := range s.ItemsByMenuID {
		out.ItemsByMenuID[k] = slices.Clone(v)
	}
	return out
}

type Op string

const (
	OpFetchMenus     Op = "menus/fetch"
	OpGetMenu        Op = "menus/get"
	OpCreateMenu     Op = "menus/create"
	OpUpdateMenu     Op = "menus/update"
	OpDeleteMenu     Op = "menus/delete"
	OpFetchMenuItems Op = "items/fetch"
	OpCreateMenuItem Op = "items/create"
	OpUpdateMenuItem Op = "items/update"
	OpDeleteMenuItem Op = "items/delete"
)

type Stage int

const (
	Pending Stage = iota
	Fulfilled
	Rejected
)

// Action carries one lifecycle step of an Op. Only the payload fields the
// Op needs are set.
type Action struct {
	Op    Op
	Stage Stage

	MenuID uint
	ItemID uint
	Menus  []dto.MenuResponse
	Menu   *dto.MenuResponse
	Items  []dto.MenuItemResponse
	Item   *dto.MenuItemResponse
	Err    string
}

// Reduce applies a to state and returns the new state.
func Reduce(state State, a Action) State {
	next := state.clone()
	if next.ByID == nil {
		next.ByID = map[uint]dto.MenuResponse{}
	}
	if next.ItemsByMenuID == nil {
		next.ItemsByMenuID = map[uint][]dto.MenuItemResponse{}
	}

	switch a.Stage {
	case Pending:
		next.Status = Status{Phase: PhaseLoading}
		return next
	case Rejected:
		next.Status = Status{Phase: PhaseError, Err: a.Err}
		return next
	}

	next.Status = Status{Phase: PhaseOK}
	switch a.Op {
	case OpFetchMenus:
		next.Menus = slices.Clone(a.Menus)
		for _, m := range a.Menus {
			next.ByID[m.ID] = m
		}
	case OpGetMenu, OpCreateMenu, OpUpdateMenu:
		if a.Menu == nil {
			break
		}
		m := *a.Menu
		if m.Items != nil {
			next.ItemsByMenuID[m.ID] = slices.Clone(*m.Items)
			m.Items = nil
		}
		next.Menus = upsert(next.Menus, m, func(x dto.MenuResponse) uint { return x.ID })
		next.ByID[m.ID] = m
	case OpDeleteMenu:
		next.Menus = slices.DeleteFunc(next.Menus, func(x dto.MenuResponse) bool { return x.ID == a.MenuID })
		delete(next.ByID, a.MenuID)
		delete(next.ItemsByMenuID, a.MenuID)
	case OpFetchMenuItems:
		next.ItemsByMenuID[a.MenuID] = slices.Clone(a.Items)
	case OpCreateMenuItem, OpUpdateMenuItem:
		if a.Item == nil {
			break
		}
		id := a.Item.MenuID
		next.ItemsByMenuID[id] = upsert(next.ItemsByMenuID[id], *a.Item, func(x dto.MenuItemResponse) uint { return x.ID })
	case OpDeleteMenuItem:
		if items, ok := next.ItemsByMenuID[a.MenuID]; ok {
			next.ItemsByMenuID[a.MenuID] = slices.DeleteFunc(items, func(x dto.MenuItemResponse) bool { return x.ID == a.ItemID })
		}
	}
	return next
}

func upsert[T any](list []T, v T, id func(T) uint) []T {
	if i := slices.IndexFunc(list, func(x T) bool { return id(x) == id(v) }); i >= 0 {
		list[i] = v
		return list
	}
	return append(list, v)
}
