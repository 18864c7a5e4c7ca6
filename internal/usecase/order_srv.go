package usecase

import (
	"context"
	"fmt"
	"time"

	"marketplace-admin/internal/data/entity"
	"marketplace-admin/internal/data/repository"
	"marketplace-admin/internal/dto/response"
	"marketplace-admin/pkg/broker"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	GetOrders(ctx context.Context) ([]response.OrderResponse, error)
	GetOrderDetail(ctx context.Context, orderID string) (*response.OrderDetailResponse, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) (*response.OrderStatusResponse, error)
	UpdatePaymentStatus(ctx context.Context, orderID, status string) (*response.OrderStatusResponse, error)
	DeleteOrder(ctx context.Context, orderID string) error
}

type orderService struct {
	repo      *repository.Repository
	publisher broker.Publisher
	stats     StatsStore
	log       *zap.Logger
}

func NewOrderService(repo *repository.Repository, publisher broker.Publisher, stats StatsStore, log *zap.Logger) OrderService {
	return &orderService{
		repo:      repo,
		publisher: publisher,
		stats:     stats,
		log:       log.With(zap.String("service", "order")),
	}
}

func (s *orderService) GetOrders(ctx context.Context) ([]response.OrderResponse, error) {
	orders, err := s.repo.Order.FindAllWithRelations(ctx)
	if err != nil {
		s.log.Error("Failed to get orders", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch orders")
	}

	orderResponses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		orderResponses[i] = response.OrderToResponse(order)
	}

	s.log.Info("Orders retrieved", zap.Int("count", len(orders)))
	return orderResponses, nil
}

func (s *orderService) GetOrderDetail(ctx context.Context, orderID string) (*response.OrderDetailResponse, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		s.log.Warn("Invalid order ID format", zap.String("order_id", orderID), zap.Error(err))
		return nil, fmt.Errorf("invalid order id")
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get order detail", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to fetch order")
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	customer, err := s.repo.User.FindByID(ctx, order.CustomerID)
	if err != nil {
		s.log.Error("Failed to get order customer", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to fetch order")
	}

	store, err := s.repo.Store.FindByID(ctx, order.StoreID)
	if err != nil {
		s.log.Error("Failed to get order store", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to fetch order")
	}

	if customer == nil || store == nil {
		// Referenced rows exist at order creation; a missing one here means
		// a cascade raced this read.
		return nil, fmt.Errorf("order relations not found")
	}

	items, err := s.repo.Order.FindItems(ctx, id)
	if err != nil {
		s.log.Error("Failed to get order items", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to fetch order")
	}

	return response.OrderToDetailResponse(order, customer, store, items), nil
}

// UpdateOrderStatus writes the given status string verbatim. Values outside
// the known set are allowed and persisted.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID, status string) (*response.OrderStatusResponse, error) {
	return s.updateStatus(ctx, orderID, status, broker.KeyOrderStatusChanged, s.repo.Order.UpdateStatus)
}

func (s *orderService) UpdatePaymentStatus(ctx context.Context, orderID, status string) (*response.OrderStatusResponse, error) {
	return s.updateStatus(ctx, orderID, status, broker.KeyOrderPaymentChanged, s.repo.Order.UpdatePaymentStatus)
}

func (s *orderService) updateStatus(
	ctx context.Context,
	orderID, status, routingKey string,
	write func(context.Context, uuid.UUID, string) (*entity.Order, error),
) (*response.OrderStatusResponse, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		s.log.Warn("Invalid order ID format", zap.String("order_id", orderID), zap.Error(err))
		return nil, fmt.Errorf("invalid order id")
	}

	order, err := write(ctx, id, status)
	if err != nil {
		s.log.Error("Failed to update order", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to update order")
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	s.log.Info("Order updated",
		zap.String("order_id", orderID),
		zap.String("routing_key", routingKey),
		zap.String("status", status))

	s.publishStatusEvent(ctx, routingKey, orderID, status)
	invalidateStats(ctx, s.stats, s.log)

	return response.OrderToStatusResponse(order), nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	id, err := uuid.Parse(orderID)
	if err != nil {
		s.log.Warn("Invalid order ID format", zap.String("order_id", orderID), zap.Error(err))
		return fmt.Errorf("invalid order id")
	}

	if err := s.repo.Order.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete order", zap.Error(err), zap.String("order_id", orderID))
		return err
	}

	invalidateStats(ctx, s.stats, s.log)
	return nil
}

func (s *orderService) publishStatusEvent(ctx context.Context, key, entityID, status string) {
	if s.publisher == nil {
		return
	}

	event := broker.StatusChangedEvent{
		EntityID:  entityID,
		Status:    status,
		ChangedAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, key, event); err != nil {
		s.log.Warn("Failed to publish status event",
			zap.Error(err),
			zap.String("routing_key", key),
			zap.String("entity_id", entityID))
	}
}
