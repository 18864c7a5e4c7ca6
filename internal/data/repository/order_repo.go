package repository

import (
	"context"
	"fmt"
	"time"

	"marketplace-admin/internal/data/entity"
	"marketplace-admin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindAllWithRelations(ctx context.Context) ([]*entity.OrderWithRelations, error)
	FindItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)
	FindRecentWithCustomer(ctx context.Context, limit int) ([]*entity.OrderWithRelations, error)
	FindRecentByStore(ctx context.Context, storeID uuid.UUID, limit int) ([]*entity.StoreOrder, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	SumRevenue(ctx context.Context) (float64, error)
	SumRevenueBetween(ctx context.Context, from, to time.Time) (float64, error)
	SumRevenueByStatus(ctx context.Context, status string) (float64, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderColumns = `o.id, o.customer_id, o.store_id, o.total_price, o.order_status, o.payment_status, o.created_at`

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT id, customer_id, store_id, total_price, order_status,
		       payment_status, created_at
		FROM orders
		WHERE id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.CustomerID,
		&order.StoreID,
		&order.TotalPrice,
		&order.OrderStatus,
		&order.PaymentStatus,
		&order.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return &order, nil
}

// FindAllWithRelations retrieves every order ordered by creation time
// descending, each with customer and store display fields and its line items.
func (r *orderRepository) FindAllWithRelations(ctx context.Context) ([]*entity.OrderWithRelations, error) {
	query := `
		SELECT ` + orderColumns + `,
		       u.username, u.full_name, s.store_name
		FROM orders o
		JOIN users u ON u.id = o.customer_id
		JOIN stores s ON s.id = o.store_id
		ORDER BY o.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all orders", zap.Error(err))
		return nil, fmt.Errorf("find all orders: %w", err)
	}

	orders, err := scanOrdersWithRelations(rows, r.log)
	if err != nil {
		return nil, err
	}

	// Attach line items per order. One query per order keeps the row
	// scanning simple; listing volume is admin-scale.
	for _, order := range orders {
		items, err := r.FindItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = itemValues(items)
	}

	return orders, nil
}

func (r *orderRepository) FindItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, menu_name, quantity, price, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to get order items",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("find order items %s: %w", orderID.String(), err)
	}
	defer rows.Close()

	var items []*entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.MenuName,
			&item.Quantity,
			&item.Price,
			&item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order item row", zap.Error(err))
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order items rows: %w", err)
	}

	return items, nil
}

// FindRecentWithCustomer retrieves the most recent orders with customer
// display fields, for the dashboard card.
func (r *orderRepository) FindRecentWithCustomer(ctx context.Context, limit int) ([]*entity.OrderWithRelations, error) {
	query := `
		SELECT ` + orderColumns + `,
		       u.username, u.full_name, s.store_name
		FROM orders o
		JOIN users u ON u.id = o.customer_id
		JOIN stores s ON s.id = o.store_id
		ORDER BY o.created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to get recent orders",
			zap.Error(err),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find recent orders limit %d: %w", limit, err)
	}

	return scanOrdersWithRelations(rows, r.log)
}

// FindRecentByStore retrieves the most recent orders of a store with
// customer display fields and item counts, for the store detail view.
func (r *orderRepository) FindRecentByStore(ctx context.Context, storeID uuid.UUID, limit int) ([]*entity.StoreOrder, error) {
	query := `
		SELECT ` + orderColumns + `,
		       u.username, u.full_name,
		       (SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count
		FROM orders o
		JOIN users u ON u.id = o.customer_id
		WHERE o.store_id = $1
		ORDER BY o.created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, storeID, limit)
	if err != nil {
		r.log.Error("Failed to get orders by store",
			zap.Error(err),
			zap.String("store_id", storeID.String()),
		)
		return nil, fmt.Errorf("find orders by store %s: %w", storeID.String(), err)
	}
	defer rows.Close()

	var orders []*entity.StoreOrder
	for rows.Next() {
		var order entity.StoreOrder
		err := rows.Scan(
			&order.ID,
			&order.CustomerID,
			&order.StoreID,
			&order.TotalPrice,
			&order.OrderStatus,
			&order.PaymentStatus,
			&order.CreatedAt,
			&order.CustomerUsername,
			&order.CustomerFullName,
			&order.ItemCount,
		)
		if err != nil {
			r.log.Error("Failed to scan store order row", zap.Error(err))
			return nil, fmt.Errorf("scan store order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate store orders rows: %w", err)
	}

	return orders, nil
}

// UpdateStatus writes the order status and returns the updated row. The
// value is stored as given, no enum check.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error) {
	return r.updateField(ctx, id, "order_status", status)
}

// UpdatePaymentStatus writes the payment status and returns the updated
// row. The value is stored as given, no enum check.
func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error) {
	return r.updateField(ctx, id, "payment_status", status)
}

func (r *orderRepository) updateField(ctx context.Context, id uuid.UUID, column, value string) (*entity.Order, error) {
	query := fmt.Sprintf(`
		UPDATE orders
		SET %s = $2
		WHERE id = $1
		RETURNING id, customer_id, store_id, total_price, order_status,
		          payment_status, created_at
	`, column)

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id, value).Scan(
		&order.ID,
		&order.CustomerID,
		&order.StoreID,
		&order.TotalPrice,
		&order.OrderStatus,
		&order.PaymentStatus,
		&order.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update order",
			zap.Error(err),
			zap.String("order_id", id.String()),
			zap.String("column", column),
			zap.String("value", value),
		)
		return nil, fmt.Errorf("update order %s %s: %w", column, id.String(), err)
	}

	return &order, nil
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete order %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", id.String())
	}

	r.log.Info("Order deleted", zap.String("id", id.String()))
	return nil
}

func (r *orderRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM orders`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count orders", zap.Error(err))
		return 0, fmt.Errorf("count all orders: %w", err)
	}

	return count, nil
}

// CountByStatus counts orders whose status matches exactly.
func (r *orderRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE order_status = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		r.log.Error("Failed to count orders by status",
			zap.Error(err),
			zap.String("status", status),
		)
		return 0, fmt.Errorf("count orders by status %s: %w", status, err)
	}

	return count, nil
}

// SumRevenue sums total_price over every order, any status.
func (r *orderRepository) SumRevenue(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(total_price), 0) FROM orders`

	var sum float64
	if err := r.db.QueryRow(ctx, query).Scan(&sum); err != nil {
		r.log.Error("Failed to sum revenue", zap.Error(err))
		return 0, fmt.Errorf("sum revenue: %w", err)
	}

	return sum, nil
}

// SumRevenueBetween sums total_price over orders created in [from, to).
func (r *orderRepository) SumRevenueBetween(ctx context.Context, from, to time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(total_price), 0)
		FROM orders
		WHERE created_at >= $1 AND created_at < $2
	`

	var sum float64
	if err := r.db.QueryRow(ctx, query, from, to).Scan(&sum); err != nil {
		r.log.Error("Failed to sum revenue between dates",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return 0, fmt.Errorf("sum revenue between %s and %s: %w", from, to, err)
	}

	return sum, nil
}

func (r *orderRepository) SumRevenueByStatus(ctx context.Context, status string) (float64, error) {
	query := `SELECT COALESCE(SUM(total_price), 0) FROM orders WHERE order_status = $1`

	var sum float64
	if err := r.db.QueryRow(ctx, query, status).Scan(&sum); err != nil {
		r.log.Error("Failed to sum revenue by status",
			zap.Error(err),
			zap.String("status", status),
		)
		return 0, fmt.Errorf("sum revenue by status %s: %w", status, err)
	}

	return sum, nil
}

func scanOrdersWithRelations(rows pgx.Rows, log *zap.Logger) ([]*entity.OrderWithRelations, error) {
	defer rows.Close()

	var orders []*entity.OrderWithRelations
	for rows.Next() {
		var order entity.OrderWithRelations
		err := rows.Scan(
			&order.ID,
			&order.CustomerID,
			&order.StoreID,
			&order.TotalPrice,
			&order.OrderStatus,
			&order.PaymentStatus,
			&order.CreatedAt,
			&order.CustomerUsername,
			&order.CustomerFullName,
			&order.StoreName,
		)
		if err != nil {
			log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate orders rows: %w", err)
	}

	return orders, nil
}

func itemValues(items []*entity.OrderItem) []entity.OrderItem {
	out := make([]entity.OrderItem, len(items))
	for i, item := range items {
		out[i] = *item
	}
	return out
}
