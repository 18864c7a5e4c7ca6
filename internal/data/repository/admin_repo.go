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

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	FindByUsername(ctx context.Context, username string) (*entity.Admin, error)
	CountAll(ctx context.Context) (int64, error)
}

type adminRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdminRepository(db database.PgxIface, log *zap.Logger) AdminRepository {
	return &adminRepository{
		db:  db,
		log: log.With(zap.String("repository", "admin")),
	}
}

func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	query := `
		INSERT INTO admins (id, username, password, full_name, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		admin.ID,
		admin.Username,
		admin.PasswordHash,
		admin.FullName,
		admin.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create admin",
			zap.Error(err),
			zap.String("username", admin.Username),
		)
		return fmt.Errorf("create admin %s: %w", admin.Username, err)
	}

	return nil
}

func (r *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	query := `
		SELECT id, username, password, full_name, created_at
		FROM admins
		WHERE id = $1
	`

	var admin entity.Admin
	err := r.db.QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.FullName,
		&admin.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find admin by ID",
			zap.Error(err),
			zap.String("admin_id", id.String()),
		)
		return nil, fmt.Errorf("find admin by ID %s: %w", id.String(), err)
	}

	return &admin, nil
}

func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	query := `
		SELECT id, username, password, full_name, created_at
		FROM admins
		WHERE username = $1
	`

	var admin entity.Admin
	err := r.db.QueryRow(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.FullName,
		&admin.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find admin by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find admin by username %s: %w", username, err)
	}

	return &admin, nil
}

func (r *adminRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM admins`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count admins", zap.Error(err))
		return 0, fmt.Errorf("count admins: %w", err)
	}

	return count, nil
}
