package model

// Item is a catalog entry. The identifier is assigned by the item service
// and never changes or gets reused once assigned.
type Item struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
