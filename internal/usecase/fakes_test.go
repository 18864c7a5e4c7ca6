package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"marketplace-admin/internal/data/entity"
	"marketplace-admin/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. Every fake fails all methods when err is set,
// which is enough to exercise the degraded paths.

type fakeAdminRepo struct {
	admins    []*entity.Admin
	err       error
	createErr error
	creates   int
}

func (f *fakeAdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	if f.err != nil {
		return f.err
	}
	if f.createErr != nil {
		return f.createErr
	}
	for _, a := range f.admins {
		if a.Username == admin.Username {
			return fmt.Errorf("duplicate key value violates unique constraint")
		}
	}
	f.creates++
	f.admins = append(f.admins, admin)
	return nil
}

func (f *fakeAdminRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) CountAll(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.admins)), nil
}

type fakeUserRepo struct {
	users  []*entity.UserWithCounts
	stores []*entity.StoreSummary
	orders []*entity.OrderSummary
	err    error
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return &u.User, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAllWithCounts(ctx context.Context) ([]*entity.UserWithCounts, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

func (f *fakeUserRepo) FindStoresByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.StoreSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.StoreSummary
	for _, s := range f.stores {
		if s.MerchantID == merchantID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.OrderSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.OrderSummary
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("user %s not found", id.String())
}

type fakeStoreRepo struct {
	stores []*entity.StoreWithMerchant
	err    error
}

func (f *fakeStoreRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.stores {
		if s.ID == id {
			return &s.Store, nil
		}
	}
	return nil, nil
}

func (f *fakeStoreRepo) FindAllWithMerchant(ctx context.Context) ([]*entity.StoreWithMerchant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stores, nil
}

func (f *fakeStoreRepo) UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*entity.Store, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.stores {
		if s.ID == id {
			s.IsActive = isActive
			return &s.Store, nil
		}
	}
	return nil, nil
}

func (f *fakeStoreRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, s := range f.stores {
		if s.ID == id {
			f.stores = append(f.stores[:i], f.stores[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("store %s not found", id.String())
}

type fakeMenuRepo struct {
	menus []*entity.Menu
	err   error
}

func (f *fakeMenuRepo) FindAll(ctx context.Context, storeID *uuid.UUID) ([]*entity.Menu, error) {
	if f.err != nil {
		return nil, f.err
	}
	if storeID == nil {
		return f.menus, nil
	}
	var out []*entity.Menu
	for _, m := range f.menus {
		if m.StoreID == *storeID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMenuRepo) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Menu, error) {
	return f.FindAll(ctx, &storeID)
}

func (f *fakeMenuRepo) UpdateAvailability(ctx context.Context, id uuid.UUID, isAvailable bool) (*entity.Menu, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.menus {
		if m.ID == id {
			m.IsAvailable = isAvailable
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMenuRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, m := range f.menus {
		if m.ID == id {
			f.menus = append(f.menus[:i], f.menus[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("menu %s not found", id.String())
}

type fakeOrderRepo struct {
	orders      []*entity.OrderWithRelations
	storeOrders []*entity.StoreOrder
	err         error
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, o := range f.orders {
		if o.ID == id {
			return &o.Order, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindAllWithRelations(ctx context.Context) ([]*entity.OrderWithRelations, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.orders, nil
}

func (f *fakeOrderRepo) FindItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, o := range f.orders {
		if o.ID == orderID {
			items := make([]*entity.OrderItem, len(o.Items))
			for i := range o.Items {
				items[i] = &o.Items[i]
			}
			return items, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindRecentWithCustomer(ctx context.Context, limit int) ([]*entity.OrderWithRelations, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > len(f.orders) {
		limit = len(f.orders)
	}
	return f.orders[:limit], nil
}

func (f *fakeOrderRepo) FindRecentByStore(ctx context.Context, storeID uuid.UUID, limit int) ([]*entity.StoreOrder, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.StoreOrder
	for _, o := range f.storeOrders {
		if o.StoreID == storeID {
			out = append(out, o)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, o := range f.orders {
		if o.ID == id {
			o.OrderStatus = status
			return &o.Order, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, o := range f.orders {
		if o.ID == id {
			o.PaymentStatus = status
			return &o.Order, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, o := range f.orders {
		if o.ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("order %s not found", id.String())
}

func (f *fakeOrderRepo) CountAll(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, o := range f.orders {
		if o.OrderStatus == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeOrderRepo) SumRevenue(ctx context.Context) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var sum float64
	for _, o := range f.orders {
		sum += o.TotalPrice
	}
	return sum, nil
}

func (f *fakeOrderRepo) SumRevenueBetween(ctx context.Context, from, to time.Time) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var sum float64
	for _, o := range f.orders {
		if !o.CreatedAt.Before(from) && o.CreatedAt.Before(to) {
			sum += o.TotalPrice
		}
	}
	return sum, nil
}

func (f *fakeOrderRepo) SumRevenueByStatus(ctx context.Context, status string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var sum float64
	for _, o := range f.orders {
		if o.OrderStatus == status {
			sum += o.TotalPrice
		}
	}
	return sum, nil
}

// fakeRepos bundles one fake per repository so a test can seed only the
// pieces it needs.
type fakeRepos struct {
	admin *fakeAdminRepo
	user  *fakeUserRepo
	store *fakeStoreRepo
	menu  *fakeMenuRepo
	order *fakeOrderRepo
}

func newFakeRepos() *fakeRepos {
	return &fakeRepos{
		admin: &fakeAdminRepo{},
		user:  &fakeUserRepo{},
		store: &fakeStoreRepo{},
		menu:  &fakeMenuRepo{},
		order: &fakeOrderRepo{},
	}
}

func (f *fakeRepos) repository() *repository.Repository {
	return &repository.Repository{
		Admin: f.admin,
		User:  f.user,
		Store: f.store,
		Menu:  f.menu,
		Order: f.order,
	}
}

// fakeStatsCache records snapshot writes and invalidations in memory.
type fakeStatsCache struct {
	data        map[string][]byte
	invalidated []string
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{data: map[string][]byte{}}
}

func (f *fakeStatsCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakeStatsCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeStatsCache) Invalidate(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
		f.invalidated = append(f.invalidated, key)
	}
	return nil
}

type publishedEvent struct {
	key   string
	event any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (f *fakePublisher) Publish(ctx context.Context, routingKey string, event any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, publishedEvent{key: routingKey, event: event})
	return nil
}

func (f *fakePublisher) Close() {}
