package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/harborline/catalog_api/dto"
	"github.com/harborline/catalog_api/shared"
)

type ItemHandler struct {
	itemSvc ItemServiceInterface
}

func NewItemHandler(itemSvc ItemServiceInterface) *ItemHandler {
	return &ItemHandler{
		itemSvc: itemSvc,
	}
}

// @Summary List Items
// @Description Get one page of the item collection in insertion order
// @Tags items
// @Accept json
// @Produce json
// @Param page query int false "Page number, starting at 1" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Param x-api-key header string true "API key"
// @Success 200 {object} shared.Response{data=dto.ItemListResponse}
// @Failure 400 {object} shared.Response
// @Failure 401 {object} shared.Response
// @Failure 429 {object} shared.Response
// @Router /v1/items [get]
func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 10)

	result, err := h.itemSvc.List(page, pageSize)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, result)
}

// @Summary Get Item
// @Description Get a single item by identifier
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param x-api-key header string true "API key"
// @Success 200 {object} shared.Response{data=model.Item}
// @Failure 404 {object} shared.Response
// @Failure 401 {object} shared.Response
// @Failure 429 {object} shared.Response
// @Router /v1/items/{id} [get]
func (h *ItemHandler) GetItem(c *fiber.Ctx) error {
	id, err := parseItemID(c)
	if err != nil {
		return err
	}

	item, err := h.itemSvc.Get(id)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, item)
}

// @Summary Create Item
// @Description Create an item from a draft; the identifier is assigned by the service
// @Tags items
// @Accept json
// @Produce json
// @Param item body dto.ItemRequest true "Item draft"
// @Param x-api-key header string true "API key"
// @Success 201 {object} shared.Response{data=model.Item}
// @Failure 400 {object} shared.Response
// @Failure 401 {object} shared.Response
// @Failure 429 {object} shared.Response
// @Router /v1/items [post]
func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var req dto.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ErrBadRequest("invalid request body")
	}

	item, err := h.itemSvc.Create(req)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/v1/items/%d", item.ID))
	return shared.ResponseCreated(c, item)
}

// @Summary Update Item
// @Description Replace an item's name and price; identifier and position are preserved
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body dto.ItemRequest true "Item draft"
// @Param x-api-key header string true "API key"
// @Success 200 {object} shared.Response{data=model.Item}
// @Failure 400 {object} shared.Response
// @Failure 404 {object} shared.Response
// @Failure 401 {object} shared.Response
// @Failure 429 {object} shared.Response
// @Router /v1/items/{id} [put]
func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseItemID(c)
	if err != nil {
		return err
	}

	var req dto.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ErrBadRequest("invalid request body")
	}

	item, err := h.itemSvc.Update(id, req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, item)
}

// @Summary Delete Item
// @Description Remove an item from the collection
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param x-api-key header string true "API key"
// @Success 204 "No Content"
// @Failure 404 {object} shared.Response
// @Failure 401 {object} shared.Response
// @Failure 429 {object} shared.Response
// @Router /v1/items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseItemID(c)
	if err != nil {
		return err
	}

	if err := h.itemSvc.Delete(id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseItemID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return 0, shared.ErrBadRequest("item id must be a positive integer")
	}
	return id, nil
}
