package repository

import (
	"context"
	"fmt"

	"marketplace-admin/internal/data/entity"
	"marketplace-admin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindAllWithCounts(ctx context.Context) ([]*entity.UserWithCounts, error)
	FindStoresByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.StoreSummary, error)
	FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.OrderSummary, error)
	CountAll(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, username, full_name, email, phone, user_type, created_at
		FROM users
		WHERE id = $1
	`

	var user entity.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.FullName,
		&user.Email,
		&user.Phone,
		&user.UserType,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return &user, nil
}

// FindAllWithCounts retrieves every user ordered by creation time descending,
// each with its owned-store and placed-order counts.
func (r *userRepository) FindAllWithCounts(ctx context.Context) ([]*entity.UserWithCounts, error) {
	query := `
		SELECT u.id, u.username, u.full_name, u.email, u.phone, u.user_type, u.created_at,
		       (SELECT COUNT(*) FROM stores s WHERE s.merchant_id = u.id) AS store_count,
		       (SELECT COUNT(*) FROM orders o WHERE o.customer_id = u.id) AS order_count
		FROM users u
		ORDER BY u.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close()

	var users []*entity.UserWithCounts
	for rows.Next() {
		var user entity.UserWithCounts
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.FullName,
			&user.Email,
			&user.Phone,
			&user.UserType,
			&user.CreatedAt,
			&user.StoreCount,
			&user.OrderCount,
		)
		if err != nil {
			r.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

// FindStoresByMerchant retrieves the stores owned by a user, each with its
// menu and order counts, for the user detail view.
func (r *userRepository) FindStoresByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.StoreSummary, error) {
	query := `
		SELECT s.id, s.merchant_id, s.store_name, s.description, s.address, s.city,
		       s.phone, s.latitude, s.longitude, s.category, s.opening_time,
		       s.closing_time, s.is_active, s.created_at,
		       (SELECT COUNT(*) FROM menus m WHERE m.store_id = s.id) AS menu_count,
		       (SELECT COUNT(*) FROM orders o WHERE o.store_id = s.id) AS order_count
		FROM stores s
		WHERE s.merchant_id = $1
		ORDER BY s.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, merchantID)
	if err != nil {
		r.log.Error("Failed to get stores by merchant",
			zap.Error(err),
			zap.String("merchant_id", merchantID.String()),
		)
		return nil, fmt.Errorf("find stores by merchant %s: %w", merchantID.String(), err)
	}
	defer rows.Close()

	var stores []*entity.StoreSummary
	for rows.Next() {
		var store entity.StoreSummary
		err := rows.Scan(
			&store.ID,
			&store.MerchantID,
			&store.StoreName,
			&store.Description,
			&store.Address,
			&store.City,
			&store.Phone,
			&store.Latitude,
			&store.Longitude,
			&store.Category,
			&store.OpeningTime,
			&store.ClosingTime,
			&store.IsActive,
			&store.CreatedAt,
			&store.MenuCount,
			&store.OrderCount,
		)
		if err != nil {
			r.log.Error("Failed to scan store row", zap.Error(err))
			return nil, fmt.Errorf("scan store row: %w", err)
		}
		stores = append(stores, &store)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate stores rows: %w", err)
	}

	return stores, nil
}

// FindOrdersByCustomer retrieves the orders placed by a user with the store
// name of each, newest first.
func (r *userRepository) FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.OrderSummary, error) {
	query := `
		SELECT o.id, o.customer_id, o.store_id, o.total_price, o.order_status,
		       o.payment_status, o.created_at, s.store_name
		FROM orders o
		JOIN stores s ON s.id = o.store_id
		WHERE o.customer_id = $1
		ORDER BY o.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to get orders by customer",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find orders by customer %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	var orders []*entity.OrderSummary
	for rows.Next() {
		var order entity.OrderSummary
		err := rows.Scan(
			&order.ID,
			&order.CustomerID,
			&order.StoreID,
			&order.TotalPrice,
			&order.OrderStatus,
			&order.PaymentStatus,
			&order.CreatedAt,
			&order.StoreName,
		)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate orders rows: %w", err)
	}

	return orders, nil
}

func (r *userRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM users`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count users", zap.Error(err))
		return 0, fmt.Errorf("count all users: %w", err)
	}

	return count, nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	r.log.Info("User deleted", zap.String("id", id.String()))
	return nil
}
