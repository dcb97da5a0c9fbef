package controllers

import (
	"github.com/PeteShepley/simple-point-of-sale/dto"
	"github.com/PeteShepley/simple-point-of-sale/pkg/resp"
	"github.com/PeteShepley/simple-point-of-sale/services"
	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

// GET /api/menus?limit&offset
func (ctl *MenuController) List(c *gin.Context) {
	var q dto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	menus, err := ctl.Service.List(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dto.NewMenuResponses(menus))
}

// GET /api/menus/:menuId?include=items|all
func (ctl *MenuController) Get(c *gin.Context) {
	id, ok := paramID(c, "menuId")
	if !ok {
		return
	}
	var q dto.MenuDetailQuery
	if !bindQuery(c, &q) {
		return
	}
	ctx := c.Request.Context()
	if q.WantItems() {
		menu, items, err := ctl.Service.GetWithItems(ctx, id)
		if err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, dto.NewMenuResponseWithItems(*menu, items))
		return
	}
	menu, err := ctl.Service.Get(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dto.NewMenuResponse(*menu))
}

// POST /api/menus
func (ctl *MenuController) Create(c *gin.Context) {
	var req dto.CreateMenuRequest
	if !bindJSON(c, &req) {
		return
	}
	menu, err := ctl.Service.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, dto.NewMenuResponse(*menu))
}

// PUT /api/menus/:menuId
func (ctl *MenuController) Update(c *gin.Context) {
	id, ok := paramID(c, "menuId")
	if !ok {
		return
	}
	var req dto.UpdateMenuRequest
	if !bindJSON(c, &req) {
		return
	}
	menu, err := ctl.Service.Update(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dto.NewMenuResponse(*menu))
}

// DELETE /api/menus/:menuId
func (ctl *MenuController) Delete(c *gin.Context) {
	id, ok := paramID(c, "menuId")
	if !ok {
		return
	}
	if err := ctl.Service.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}

// GET /api/menus/:menuId/items?limit&offset
func (ctl *MenuController) ListItems(c *gin.Context) {
	menuID, ok := paramID(c, "menuId")
	if !ok {
		return
	}
	var q dto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := ctl.Service.ListItems(c.Request.Context(), menuID, q)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dto.NewMenuItemResponses(items))
}

// GET /api/menus/:menuId/items/:id
func (ctl *MenuController) GetItem(c *gin.Context) {
	menuID, ok := paramID(c, "menuId")
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	item, err := ctl.Service.GetItem(c.Request.Context(), menuID, id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dto.NewMenuItemResponse(*item))
}

// POST /api/menus/:menuId/items
func (ctl *MenuController) CreateItem(c *gin.Context) {
	menuID, ok := paramID(c, "menuId")
	if !ok {
		return
	}
	var req dto.CreateMenuItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := ctl.Service.CreateItem(c.Request.Context(), menuID, req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, dto.NewMenuItemResponse(*item))
}

// PUT /api/menus/:menuId/items/:id
func (ctl *MenuController) UpdateItem(c *gin.Context) {
	menuID, ok := paramID(c, "menuId")
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateMenuItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := ctl.Service.UpdateItem(c.Request.Context(), menuID, id, req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dto.NewMenuItemResponse(*item))
}

// DELETE /api/menus/:menuId/items/:id
func (ctl *MenuController) DeleteItem(c *gin.Context) {
	menuID, ok := paramID(c, "menuId")
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ctl.Service.DeleteItem(c.Request.Context(), menuID, id); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}
