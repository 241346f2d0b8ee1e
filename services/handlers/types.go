package handlers

import (
	"github.com/harborline/catalog_api/dto"
	"github.com/harborline/catalog_api/model"
)

type ItemServiceInterface interface {
	List(page, pageSize int) (*dto.ItemListResponse, error)
	Get(id int) (*model.Item, error)
	Create(req dto.ItemRequest) (*model.Item, error)
	Update(id int, req dto.ItemRequest) (*model.Item, error)
	Delete(id int) error
}
