package repository

import (
	"context"

	"github.com/apextheme/apexstore/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create inserts the order and fills its CreatedAt/UpdatedAt from the store.
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	GetByToken(ctx context.Context, token string) (*model.Order, error)
	// List returns all orders, newest first.
	List(ctx context.Context) ([]model.Order, error)
	MarkRejected(ctx context.Context, id string) error
	MarkApproved(ctx context.Context, id string, approval model.Approval) error
	// RegisterDownload increments the download counter by one.
	RegisterDownload(ctx context.Context, id string) error
}
