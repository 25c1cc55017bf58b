package entity

import (
	"fmt"
	"time"

	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
)

// Both wrap goerror.ErrReference, raised when an insert names a missing row.
var (
	ErrOrderUserMissing    = fmt.Errorf("order: user does not exist: %w", goerror.ErrReference)
	ErrOrderProductMissing = fmt.Errorf("order: product does not exist: %w", goerror.ErrReference)
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// Order is one product line bought by a user.
type Order struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int32
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewOrder struct {
	UserID    int64
	ProductID int64
	Quantity  int32
}

// PatchOrder carries a partial update; nil fields are left untouched.
type PatchOrder struct {
	ID       int64
	Quantity *int32
	Status   *Status
}

// OrderListFilter narrows the listing to one user when UserID is set.
type OrderListFilter struct {
	UserID *int64
	Limit  int32
	Offset int64
}
