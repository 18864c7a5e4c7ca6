package usecase

import (
	"context"
	"fmt"

	"marketplace-admin/internal/data/repository"
	"marketplace-admin/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MenuService interface {
	GetMenus(ctx context.Context, storeID *string) ([]response.MenuResponse, error)
	UpdateMenuAvailability(ctx context.Context, menuID string, isAvailable bool) (*response.MenuResponse, error)
	DeleteMenu(ctx context.Context, menuID string) error
}

type menuService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMenuService(repo *repository.Repository, log *zap.Logger) MenuService {
	return &menuService{
		repo: repo,
		log:  log.With(zap.String("service", "menu")),
	}
}

func (s *menuService) GetMenus(ctx context.Context, storeID *string) ([]response.MenuResponse, error) {
	var filter *uuid.UUID
	if storeID != nil && *storeID != "" {
		id, err := uuid.Parse(*storeID)
		if err != nil {
			s.log.Warn("Invalid store ID format", zap.String("store_id", *storeID), zap.Error(err))
			return nil, fmt.Errorf("invalid store id")
		}
		filter = &id
	}

	menus, err := s.repo.Menu.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to get menus", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch menus")
	}

	s.log.Info("Menus retrieved", zap.Int("count", len(menus)))
	return response.MenusToResponse(menus), nil
}

func (s *menuService) UpdateMenuAvailability(ctx context.Context, menuID string, isAvailable bool) (*response.MenuResponse, error) {
	id, err := uuid.Parse(menuID)
	if err != nil {
		s.log.Warn("Invalid menu ID format", zap.String("menu_id", menuID), zap.Error(err))
		return nil, fmt.Errorf("invalid menu id")
	}

	menu, err := s.repo.Menu.UpdateAvailability(ctx, id, isAvailable)
	if err != nil {
		s.log.Error("Failed to update menu availability", zap.Error(err), zap.String("menu_id", menuID))
		return nil, fmt.Errorf("failed to update menu")
	}
	if menu == nil {
		return nil, fmt.Errorf("menu not found")
	}

	s.log.Info("Menu availability updated",
		zap.String("menu_id", menuID),
		zap.Bool("is_available", isAvailable))

	resp := response.MenuToResponse(menu)
	return &resp, nil
}

func (s *menuService) DeleteMenu(ctx context.Context, menuID string) error {
	id, err := uuid.Parse(menuID)
	if err != nil {
		s.log.Warn("Invalid menu ID format", zap.String("menu_id", menuID), zap.Error(err))
		return fmt.Errorf("invalid menu id")
	}

	if err := s.repo.Menu.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete menu", zap.Error(err), zap.String("menu_id", menuID))
		return err
	}

	return nil
}
