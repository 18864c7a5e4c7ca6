package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"marketplace-admin/internal/data/entity"
	"marketplace-admin/pkg/broker"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func seedStore(merchantID uuid.UUID, name string, active bool) *entity.StoreWithMerchant {
	return &entity.StoreWithMerchant{
		Store: entity.Store{
			Base:       entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
			MerchantID: merchantID,
			StoreName:  name,
			IsActive:   active,
		},
		MerchantUsername: "siti",
		MenuCount:        3,
	}
}

func TestGetStores(t *testing.T) {
	repos := newFakeRepos()
	repos.store.stores = []*entity.StoreWithMerchant{
		seedStore(uuid.New(), "Warung Sederhana", true),
		seedStore(uuid.New(), "Bakso Pak Min", false),
	}

	svc := NewStoreService(repos.repository(), nil, nil, zap.NewNop())
	stores, err := svc.GetStores(context.Background())
	if err != nil {
		t.Fatalf("GetStores() error = %v", err)
	}
	if len(stores) != 2 {
		t.Fatalf("GetStores() = %d rows, want 2", len(stores))
	}
	if stores[0].Merchant.Username != "siti" {
		t.Errorf("Merchant.Username = %q, want %q", stores[0].Merchant.Username, "siti")
	}
	if stores[0].MenuCount != 3 {
		t.Errorf("MenuCount = %d, want 3", stores[0].MenuCount)
	}
}

func TestGetStoreDetail(t *testing.T) {
	repos := newFakeRepos()
	merchantID := uuid.New()
	store := seedStore(merchantID, "Warung Sederhana", true)
	repos.store.stores = []*entity.StoreWithMerchant{store}

	repos.user.users = []*entity.UserWithCounts{{
		User: entity.User{
			Base:     entity.Base{ID: merchantID},
			Username: "siti",
			UserType: entity.UserTypeMerchant,
		},
	}}
	repos.menu.menus = []*entity.Menu{
		{Base: entity.Base{ID: uuid.New()}, StoreID: store.ID, MenuName: "Nasi Goreng", Price: 20000, IsAvailable: true},
	}
	// More store orders than the detail view shows.
	for i := 0; i < storeDetailOrderLimit+5; i++ {
		repos.order.storeOrders = append(repos.order.storeOrders, &entity.StoreOrder{
			Order: entity.Order{
				Base:        entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
				StoreID:     store.ID,
				TotalPrice:  10000,
				OrderStatus: entity.OrderStatusCompleted,
			},
			CustomerUsername: "budi",
			ItemCount:        2,
		})
	}

	svc := NewStoreService(repos.repository(), nil, nil, zap.NewNop())
	detail, err := svc.GetStoreDetail(context.Background(), store.ID.String())
	if err != nil {
		t.Fatalf("GetStoreDetail() error = %v", err)
	}

	if detail.Merchant.Username != "siti" {
		t.Errorf("Merchant.Username = %q, want %q", detail.Merchant.Username, "siti")
	}
	if len(detail.Menus) != 1 {
		t.Errorf("Menus = %d rows, want 1", len(detail.Menus))
	}
	if len(detail.Orders) != storeDetailOrderLimit {
		t.Errorf("Orders = %d rows, want %d", len(detail.Orders), storeDetailOrderLimit)
	}
}

func TestGetStoreDetailNotFound(t *testing.T) {
	repos := newFakeRepos()
	svc := NewStoreService(repos.repository(), nil, nil, zap.NewNop())

	_, err := svc.GetStoreDetail(context.Background(), uuid.New().String())
	if err == nil || err.Error() != "store not found" {
		t.Errorf("GetStoreDetail() error = %v, want store not found", err)
	}
}

func TestUpdateStoreStatus(t *testing.T) {
	repos := newFakeRepos()
	store := seedStore(uuid.New(), "Warung Sederhana", true)
	repos.store.stores = []*entity.StoreWithMerchant{store}

	pub := &fakePublisher{}
	svc := NewStoreService(repos.repository(), pub, nil, zap.NewNop())

	resp, err := svc.UpdateStoreStatus(context.Background(), store.ID.String(), false)
	if err != nil {
		t.Fatalf("UpdateStoreStatus() error = %v", err)
	}
	if resp.IsActive {
		t.Error("IsActive = true, want false")
	}
	if store.IsActive {
		t.Error("persisted IsActive = true, want false")
	}

	if len(pub.events) != 1 || pub.events[0].key != broker.KeyStoreStatusChanged {
		t.Fatalf("events = %+v, want one %s event", pub.events, broker.KeyStoreStatusChanged)
	}
	event := pub.events[0].event.(broker.StatusChangedEvent)
	if event.Status != "inactive" {
		t.Errorf("event.Status = %q, want %q", event.Status, "inactive")
	}
}

func TestUpdateStoreStatusNotFound(t *testing.T) {
	repos := newFakeRepos()
	svc := NewStoreService(repos.repository(), nil, nil, zap.NewNop())

	_, err := svc.UpdateStoreStatus(context.Background(), uuid.New().String(), true)
	if err == nil || err.Error() != "store not found" {
		t.Errorf("UpdateStoreStatus() error = %v, want store not found", err)
	}
}

func TestDeleteStore(t *testing.T) {
	repos := newFakeRepos()
	store := seedStore(uuid.New(), "Warung Sederhana", true)
	repos.store.stores = []*entity.StoreWithMerchant{store}

	svc := NewStoreService(repos.repository(), nil, nil, zap.NewNop())
	if err := svc.DeleteStore(context.Background(), store.ID.String()); err != nil {
		t.Fatalf("DeleteStore() error = %v", err)
	}
	if len(repos.store.stores) != 0 {
		t.Errorf("stores = %d rows after delete, want 0", len(repos.store.stores))
	}

	err := svc.DeleteStore(context.Background(), store.ID.String())
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("DeleteStore() error = %v, want not found", err)
	}
}
