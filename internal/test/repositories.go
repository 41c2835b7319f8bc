package test

import (
	"context"
	"sync"

	domainErrors "github.com/apextheme/apexstore/internal/domain/errors"
	"github.com/apextheme/apexstore/internal/domain/model"
)

// OrderRepositoryStub stores orders in-memory and allows overrides per method.
type OrderRepositoryStub struct {
	CreateFn           func(context.Context, *model.Order) error
	GetByIDFn          func(context.Context, string) (*model.Order, error)
	GetByTokenFn       func(context.Context, string) (*model.Order, error)
	ListFn             func(context.Context) ([]model.Order, error)
	MarkRejectedFn     func(context.Context, string) error
	MarkApprovedFn     func(context.Context, string, model.Approval) error
	RegisterDownloadFn func(context.Context, string) error

	mu        sync.Mutex
	Orders    map[string]*model.Order
	Created   []*model.Order
	Rejected  []string
	Approvals map[string]model.Approval
	Downloads []string
}

// NewOrderRepositoryStub constructs a stub with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Orders:    make(map[string]*model.Order),
		Approvals: make(map[string]model.Approval),
	}
}

// Put seeds an order into the stub.
func (s *OrderRepositoryStub) Put(order *model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Orders == nil {
		s.Orders = make(map[string]*model.Order)
	}
	s.Orders[order.ID] = order
}

// Create records the order, delegating to the override when set.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Orders == nil {
		s.Orders = make(map[string]*model.Order)
	}
	s.Orders[order.ID] = order
	s.Created = append(s.Created, order)
	return nil
}

// GetByID fetches a seeded order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.Orders[id]; ok {
		return order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByToken fetches the order carrying the given download token.
func (s *OrderRepositoryStub) GetByToken(ctx context.Context, token string) (*model.Order, error) {
	if s.GetByTokenFn != nil {
		return s.GetByTokenFn(ctx, token)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.Orders {
		if order.DownloadToken != nil && *order.DownloadToken == token {
			return order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns seeded orders in map order.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Order, 0, len(s.Orders))
	for _, order := range s.Orders {
		result = append(result, *order)
	}
	return result, nil
}

// MarkRejected records the rejection.
func (s *OrderRepositoryStub) MarkRejected(ctx context.Context, id string) error {
	if s.MarkRejectedFn != nil {
		return s.MarkRejectedFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.Status = model.OrderStatusRejected
	s.Rejected = append(s.Rejected, id)
	return nil
}

// MarkApproved records the approval fields.
func (s *OrderRepositoryStub) MarkApproved(ctx context.Context, id string, approval model.Approval) error {
	if s.MarkApprovedFn != nil {
		return s.MarkApprovedFn(ctx, id, approval)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.Status = model.OrderStatusApproved
	token := approval.Token
	expires := approval.ExpiresAt
	approvedAt := approval.ApprovedAt
	order.DownloadToken = &token
	order.DownloadExpiresAt = &expires
	order.ApprovedAt = &approvedAt
	if approval.FileURL != "" {
		fileURL := approval.FileURL
		order.WatermarkedFileURL = &fileURL
	}
	if s.Approvals == nil {
		s.Approvals = make(map[string]model.Approval)
	}
	s.Approvals[id] = approval
	return nil
}

// RegisterDownload increments the persisted counter.
func (s *OrderRepositoryStub) RegisterDownload(ctx context.Context, id string) error {
	if s.RegisterDownloadFn != nil {
		return s.RegisterDownloadFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.DownloadCount++
	s.Downloads = append(s.Downloads, id)
	return nil
}
