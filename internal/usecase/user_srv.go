package usecase

import (
	"context"
	"fmt"

	"marketplace-admin/internal/data/repository"
	"marketplace-admin/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetUsers(ctx context.Context) ([]response.UserResponse, error)
	GetUserDetail(ctx context.Context, userID string) (*response.UserDetailResponse, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	repo  *repository.Repository
	stats StatsStore
	log   *zap.Logger
}

func NewUserService(repo *repository.Repository, stats StatsStore, log *zap.Logger) UserService {
	return &userService{
		repo:  repo,
		stats: stats,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.repo.User.FindAllWithCounts(ctx)
	if err != nil {
		s.log.Error("Failed to get users", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch users")
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	s.log.Info("Users retrieved", zap.Int("count", len(users)))
	return userResponses, nil
}

func (s *userService) GetUserDetail(ctx context.Context, userID string) (*response.UserDetailResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		s.log.Warn("Invalid user ID format", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("invalid user id")
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get user detail", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to fetch user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	stores, err := s.repo.User.FindStoresByMerchant(ctx, id)
	if err != nil {
		s.log.Error("Failed to get user stores", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to fetch user")
	}

	orders, err := s.repo.User.FindOrdersByCustomer(ctx, id)
	if err != nil {
		s.log.Error("Failed to get user orders", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to fetch user")
	}

	return response.UserToDetailResponse(user, stores, orders), nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		s.log.Warn("Invalid user ID format", zap.String("user_id", userID), zap.Error(err))
		return fmt.Errorf("invalid user id")
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", userID))
		return err
	}

	// The user count and, through the cascade to orders, the revenue
	// aggregates just changed.
	invalidateStats(ctx, s.stats, s.log)
	return nil
}
