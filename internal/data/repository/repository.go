package repository

import (
	"marketplace-admin/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Admin AdminRepository
	User  UserRepository
	Store StoreRepository
	Menu  MenuRepository
	Order OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Admin: NewAdminRepository(db, log),
		User:  NewUserRepository(db, log),
		Store: NewStoreRepository(db, log),
		Menu:  NewMenuRepository(db, log),
		Order: NewOrderRepository(db, log),
	}
}
