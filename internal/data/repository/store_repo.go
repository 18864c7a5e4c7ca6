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

type StoreRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	FindAllWithMerchant(ctx context.Context) ([]*entity.StoreWithMerchant, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*entity.Store, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type storeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStoreRepository(db database.PgxIface, log *zap.Logger) StoreRepository {
	return &storeRepository{
		db:  db,
		log: log.With(zap.String("repository", "store")),
	}
}

func (r *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	query := `
		SELECT id, merchant_id, store_name, description, address, city, phone,
		       latitude, longitude, category, opening_time, closing_time,
		       is_active, created_at
		FROM stores
		WHERE id = $1
	`

	var store entity.Store
	err := r.db.QueryRow(ctx, query, id).Scan(
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
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find store by ID",
			zap.Error(err),
			zap.String("store_id", id.String()),
		)
		return nil, fmt.Errorf("find store by ID %s: %w", id.String(), err)
	}

	return &store, nil
}

// FindAllWithMerchant retrieves every store ordered by creation time
// descending, each with its merchant display fields and menu count.
func (r *storeRepository) FindAllWithMerchant(ctx context.Context) ([]*entity.StoreWithMerchant, error) {
	query := `
		SELECT s.id, s.merchant_id, s.store_name, s.description, s.address, s.city,
		       s.phone, s.latitude, s.longitude, s.category, s.opening_time,
		       s.closing_time, s.is_active, s.created_at,
		       u.username, u.full_name, u.email,
		       (SELECT COUNT(*) FROM menus m WHERE m.store_id = s.id) AS menu_count
		FROM stores s
		JOIN users u ON u.id = s.merchant_id
		ORDER BY s.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all stores", zap.Error(err))
		return nil, fmt.Errorf("find all stores: %w", err)
	}
	defer rows.Close()

	var stores []*entity.StoreWithMerchant
	for rows.Next() {
		var store entity.StoreWithMerchant
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
			&store.MerchantUsername,
			&store.MerchantFullName,
			&store.MerchantEmail,
			&store.MenuCount,
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

// UpdateStatus flips the active flag and returns the updated row.
func (r *storeRepository) UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*entity.Store, error) {
	query := `
		UPDATE stores
		SET is_active = $2
		WHERE id = $1
		RETURNING id, merchant_id, store_name, description, address, city, phone,
		          latitude, longitude, category, opening_time, closing_time,
		          is_active, created_at
	`

	var store entity.Store
	err := r.db.QueryRow(ctx, query, id, isActive).Scan(
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
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update store status",
			zap.Error(err),
			zap.String("store_id", id.String()),
			zap.Bool("is_active", isActive),
		)
		return nil, fmt.Errorf("update store status %s: %w", id.String(), err)
	}

	return &store, nil
}

func (r *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM stores WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete store",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete store %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("store %s not found", id.String())
	}

	r.log.Info("Store deleted", zap.String("id", id.String()))
	return nil
}
