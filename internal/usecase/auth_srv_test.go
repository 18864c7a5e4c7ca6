package usecase

import (
	"context"
	"testing"
	"time"

	"marketplace-admin/internal/data/entity"
	"marketplace-admin/internal/dto/request"
	"marketplace-admin/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestLoginSeedsBootstrapAdmin(t *testing.T) {
	repos := newFakeRepos()
	svc := NewAuthService(repos.repository(), zap.NewNop())

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Username != "admin" {
		t.Errorf("Username = %q, want %q", resp.Username, "admin")
	}
	if resp.FullName != "Super Admin" {
		t.Errorf("FullName = %q, want %q", resp.FullName, "Super Admin")
	}

	if len(repos.admin.admins) != 1 {
		t.Fatalf("admins = %d rows, want 1", len(repos.admin.admins))
	}
	// Stored credential is a hash, never the raw password.
	stored := repos.admin.admins[0].PasswordHash
	if stored == "admin123" {
		t.Error("bootstrap password stored in plaintext")
	}
	if !utils.CheckPasswordHash("admin123", stored) {
		t.Error("stored hash does not verify against the bootstrap password")
	}
}

func TestLoginSeedsOnlyOnce(t *testing.T) {
	repos := newFakeRepos()
	svc := NewAuthService(repos.repository(), zap.NewNop())

	req := &request.LoginRequest{Username: "admin", Password: "admin123"}
	if _, err := svc.Login(context.Background(), req); err != nil {
		t.Fatalf("first Login() error = %v", err)
	}
	if _, err := svc.Login(context.Background(), req); err != nil {
		t.Fatalf("second Login() error = %v", err)
	}

	if repos.admin.creates != 1 {
		t.Errorf("Create called %d times, want 1", repos.admin.creates)
	}
}

func TestLoginNoSeedWhenAdminsExist(t *testing.T) {
	repos := newFakeRepos()
	hash, err := utils.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	repos.admin.admins = []*entity.Admin{{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Username:     "root",
		PasswordHash: hash,
		FullName:     "Root",
	}}

	svc := NewAuthService(repos.repository(), zap.NewNop())
	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	if err == nil || err.Error() != "invalid credentials" {
		t.Errorf("Login() error = %v, want invalid credentials", err)
	}
	if repos.admin.creates != 0 {
		t.Errorf("Create called %d times, want 0", repos.admin.creates)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	repos := newFakeRepos()
	hash, err := utils.HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	repos.admin.admins = []*entity.Admin{{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Username:     "admin",
		PasswordHash: hash,
		FullName:     "Super Admin",
	}}

	svc := NewAuthService(repos.repository(), zap.NewNop())

	// Unknown username and wrong password return the same message.
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"unknown username", "nobody", "correct-password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &request.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})
			if err == nil || err.Error() != "invalid credentials" {
				t.Errorf("Login() error = %v, want invalid credentials", err)
			}
		})
	}
}

func TestLoginValidation(t *testing.T) {
	repos := newFakeRepos()
	svc := NewAuthService(repos.repository(), zap.NewNop())

	_, err := svc.Login(context.Background(), &request.LoginRequest{Username: "", Password: ""})
	if err == nil {
		t.Fatal("Login() error = nil, want validation error")
	}
	if repos.admin.creates != 0 {
		t.Error("validation failure must not seed the bootstrap admin")
	}
}

func TestGetProfile(t *testing.T) {
	repos := newFakeRepos()
	adminID := uuid.New()
	repos.admin.admins = []*entity.Admin{{
		Base:         entity.Base{ID: adminID, CreatedAt: time.Now()},
		Username:     "admin",
		PasswordHash: "x",
		FullName:     "Super Admin",
	}}

	svc := NewAuthService(repos.repository(), zap.NewNop())

	resp, err := svc.GetProfile(context.Background(), adminID)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if resp.AdminID != adminID.String() {
		t.Errorf("AdminID = %q, want %q", resp.AdminID, adminID.String())
	}

	if _, err := svc.GetProfile(context.Background(), uuid.New()); err == nil {
		t.Error("GetProfile() with unknown id: error = nil, want admin not found")
	}
}
