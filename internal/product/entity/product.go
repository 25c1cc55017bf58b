package entity

import "time"

// Product is a sellable item. Price is kept in minor currency units.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       int64
	Stock       int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NewProduct struct {
	Name        string
	Description string
	Price       int64
	Stock       int32
}

// PatchProduct carries a partial update; nil fields are left untouched.
type PatchProduct struct {
	ID          int64
	Name        *string
	Description *string
	Price       *int64
	Stock       *int32
}

type ProductListFilter struct {
	Search string
	Limit  int32
	Offset int64
}
