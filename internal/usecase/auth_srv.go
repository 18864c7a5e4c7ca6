package usecase

import (
	"context"
	"fmt"
	"time"

	"marketplace-admin/internal/data/entity"
	"marketplace-admin/internal/data/repository"
	"marketplace-admin/internal/dto/request"
	"marketplace-admin/internal/dto/response"
	"marketplace-admin/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Bootstrap admin created on first login against an empty admins table.
// Development convenience; the password is stored bcrypt-hashed.
const (
	bootstrapUsername = "admin"
	bootstrapPassword = "admin123"
	bootstrapFullName = "Super Admin"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.AdminResponse, error)
	GetProfile(ctx context.Context, adminID uuid.UUID) (*response.AdminResponse, error)
}

type authService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAuthService(repo *repository.Repository, log *zap.Logger) AuthService {
	return &authService{
		repo: repo,
		log:  log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AdminResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Seed the bootstrap admin when the table is empty
	if err := s.seedBootstrapAdmin(ctx); err != nil {
		s.log.Error("Failed to seed bootstrap admin", zap.Error(err))
		return nil, fmt.Errorf("failed to process login")
	}

	// 3. Find admin by username
	admin, err := s.repo.Admin.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find admin", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to process login")
	}

	// 4. Unknown username and wrong password yield the same message, so
	// usernames cannot be enumerated.
	if admin == nil {
		s.log.Warn("Admin not found for login", zap.String("username", req.Username))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, admin.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("admin_id", admin.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	s.log.Info("Admin logged in",
		zap.String("admin_id", admin.ID.String()),
		zap.String("username", admin.Username))

	return response.AdminToResponse(admin), nil
}

func (s *authService) GetProfile(ctx context.Context, adminID uuid.UUID) (*response.AdminResponse, error) {
	admin, err := s.repo.Admin.FindByID(ctx, adminID)
	if err != nil {
		s.log.Error("Failed to get admin profile", zap.Error(err), zap.String("admin_id", adminID.String()))
		return nil, fmt.Errorf("failed to get profile")
	}
	if admin == nil {
		return nil, fmt.Errorf("admin not found")
	}

	return response.AdminToResponse(admin), nil
}

// seedBootstrapAdmin creates the default admin if the table is empty. A
// concurrent first login can race the insert; the unique constraint on
// username resolves it, so a conflict here is only logged.
func (s *authService) seedBootstrapAdmin(ctx context.Context) error {
	count, err := s.repo.Admin.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := utils.HashPassword(bootstrapPassword)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	admin := &entity.Admin{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Username:     bootstrapUsername,
		PasswordHash: hashedPassword,
		FullName:     bootstrapFullName,
	}

	if err := s.repo.Admin.Create(ctx, admin); err != nil {
		existing, findErr := s.repo.Admin.FindByUsername(ctx, bootstrapUsername)
		if findErr == nil && existing != nil {
			s.log.Warn("Bootstrap admin already seeded concurrently")
			return nil
		}
		return fmt.Errorf("create bootstrap admin: %w", err)
	}

	s.log.Info("Bootstrap admin seeded", zap.String("username", bootstrapUsername))
	return nil
}
