package services

import (
	"fmt"
	"sync"

	"github.com/alphabatem/common/context"

	"github.com/harborline/catalog_api/dto"
	"github.com/harborline/catalog_api/model"
	"github.com/harborline/catalog_api/shared"
)

// ItemService owns the item collection. It is the sole mutator: every read
// and write runs under one mutex so concurrent creates never share an id and
// readers never observe a half-applied update.
type ItemService struct {
	context.DefaultService

	mutex  sync.Mutex
	items  []model.Item
	nextID int
}

const ITEM_SVC = "item_svc"

func (svc *ItemService) Id() string {
	return ITEM_SVC
}

func (svc *ItemService) Configure(ctx *context.Context) error {
	svc.items = []model.Item{}
	svc.nextID = 1
	return svc.DefaultService.Configure(ctx)
}

func (svc *ItemService) Start() error {
	return nil
}

// List returns one page of the collection in insertion order. The page may
// be shorter than pageSize at the end, and empty past the end.
func (svc *ItemService) List(page, pageSize int) (*dto.ItemListResponse, error) {
	if page < 1 || pageSize < 1 {
		return nil, shared.ErrBadRequest("page and pageSize must be >= 1")
	}

	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	total := len(svc.items)
	offset := (page - 1) * pageSize

	items := []model.Item{}
	if offset < total {
		end := offset + pageSize
		if end > total {
			end = total
		}
		items = append(items, svc.items[offset:end]...)
	}

	return &dto.ItemListResponse{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Items:    items,
	}, nil
}

func (svc *ItemService) Get(id int) (*model.Item, error) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	for _, item := range svc.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}

	return nil, shared.ErrNotFound(fmt.Sprintf("item %d not found", id))
}

// Create validates the draft, assigns the next identifier and appends.
// Identifiers are strictly increasing and never reused, even after deletes.
func (svc *ItemService) Create(req dto.ItemRequest) (*model.Item, error) {
	if problems := dto.ValidateItemRequest(req); len(problems) > 0 {
		return nil, shared.ErrValidation(problems)
	}

	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	item := model.Item{
		ID:    svc.nextID,
		Name:  req.Name,
		Price: req.Price,
	}
	svc.nextID++
	svc.items = append(svc.items, item)
	itemsInStore.Set(float64(len(svc.items)))

	return &item, nil
}

// Update replaces name and price in place; identifier and position in the
// collection are unchanged.
func (svc *ItemService) Update(id int, req dto.ItemRequest) (*model.Item, error) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	idx := -1
	for i, item := range svc.items {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, shared.ErrNotFound(fmt.Sprintf("item %d not found", id))
	}

	if problems := dto.ValidateItemRequest(req); len(problems) > 0 {
		return nil, shared.ErrValidation(problems)
	}

	svc.items[idx].Name = req.Name
	svc.items[idx].Price = req.Price

	updated := svc.items[idx]
	return &updated, nil
}

func (svc *ItemService) Delete(id int) error {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	for i, item := range svc.items {
		if item.ID == id {
			svc.items = append(svc.items[:i], svc.items[i+1:]...)
			itemsInStore.Set(float64(len(svc.items)))
			return nil
		}
	}

	return shared.ErrNotFound(fmt.Sprintf("item %d not found", id))
}
