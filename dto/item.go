package dto

import "github.com/harborline/catalog_api/model"

// ItemRequest is the caller-supplied draft for create and replace. The
// identifier is never accepted from the caller.
type ItemRequest struct {
	Name  string  `json:"name" validate:"notblank"`
	Price float64 `json:"price" validate:"gt=0"`
}

type ItemListResponse struct {
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
	Total    int          `json:"total"`
	Items    []model.Item `json:"items"`
}
