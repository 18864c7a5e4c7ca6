package repository

import (
	"context"
	"fmt"
	"strings"

	"marketplace-admin/internal/data/entity"
	"marketplace-admin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MenuRepository interface {
	FindAll(ctx context.Context, storeID *uuid.UUID) ([]*entity.Menu, error)
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Menu, error)
	UpdateAvailability(ctx context.Context, id uuid.UUID, isAvailable bool) (*entity.Menu, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type menuRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMenuRepository(db database.PgxIface, log *zap.Logger) MenuRepository {
	return &menuRepository{
		db:  db,
		log: log.With(zap.String("repository", "menu")),
	}
}

// FindAll retrieves menu items ordered by creation time descending, with an
// optional store filter.
func (r *menuRepository) FindAll(ctx context.Context, storeID *uuid.UUID) ([]*entity.Menu, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, store_id, menu_name, description, price, category,
		       is_available, image_url, created_at
		FROM menus
	`)

	args := []interface{}{}
	if storeID != nil {
		queryBuilder.WriteString(` WHERE store_id = $1`)
		args = append(args, *storeID)
	}
	queryBuilder.WriteString(` ORDER BY created_at DESC`)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to get menus", zap.Error(err))
		return nil, fmt.Errorf("find all menus: %w", err)
	}
	defer rows.Close()

	return scanMenus(rows, r.log)
}

func (r *menuRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Menu, error) {
	return r.FindAll(ctx, &storeID)
}

// UpdateAvailability flips the availability flag and returns the updated row.
func (r *menuRepository) UpdateAvailability(ctx context.Context, id uuid.UUID, isAvailable bool) (*entity.Menu, error) {
	query := `
		UPDATE menus
		SET is_available = $2
		WHERE id = $1
		RETURNING id, store_id, menu_name, description, price, category,
		          is_available, image_url, created_at
	`

	var menu entity.Menu
	err := r.db.QueryRow(ctx, query, id, isAvailable).Scan(
		&menu.ID,
		&menu.StoreID,
		&menu.MenuName,
		&menu.Description,
		&menu.Price,
		&menu.Category,
		&menu.IsAvailable,
		&menu.ImageURL,
		&menu.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update menu availability",
			zap.Error(err),
			zap.String("menu_id", id.String()),
			zap.Bool("is_available", isAvailable),
		)
		return nil, fmt.Errorf("update menu availability %s: %w", id.String(), err)
	}

	return &menu, nil
}

func (r *menuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM menus WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete menu",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete menu %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("menu %s not found", id.String())
	}

	r.log.Info("Menu deleted", zap.String("id", id.String()))
	return nil
}

func scanMenus(rows pgx.Rows, log *zap.Logger) ([]*entity.Menu, error) {
	var menus []*entity.Menu
	for rows.Next() {
		var menu entity.Menu
		err := rows.Scan(
			&menu.ID,
			&menu.StoreID,
			&menu.MenuName,
			&menu.Description,
			&menu.Price,
			&menu.Category,
			&menu.IsAvailable,
			&menu.ImageURL,
			&menu.CreatedAt,
		)
		if err != nil {
			log.Error("Failed to scan menu row", zap.Error(err))
			return nil, fmt.Errorf("scan menu row: %w", err)
		}
		menus = append(menus, &menu)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate menus rows: %w", err)
	}

	return menus, nil
}
