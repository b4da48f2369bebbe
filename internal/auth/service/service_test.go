package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/featureblastlabs/featureblast/internal/auth/domain"
	"github.com/featureblastlabs/featureblast/internal/auth/repository"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_loc=auto", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Session{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}

	repo, sessions := repository.New(db)
	return New(repo, sessions, node)
}

func TestCreateUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, domain.CreateUserRequest{
		Username: "maker",
		Email:    "Maker@Example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Email != "maker@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.PasswordHash == "" || !strings.HasPrefix(user.PasswordHash, "$argon2id$") {
		t.Errorf("unexpected password hash: %q", user.PasswordHash)
	}
}

func TestCreateUserShortPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateUser(context.Background(), domain.CreateUserRequest{
		Username: "maker",
		Email:    "maker@example.com",
		Password: "short",
	})
	if err != domain.ErrWeakPassword {
		t.Fatalf("want ErrWeakPassword, got %v", err)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := domain.CreateUserRequest{Username: "maker", Email: "maker@example.com", Password: "correct-horse"}
	if _, err := svc.CreateUser(ctx, req); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	req.Username = "othermaker"
	if _, err := svc.CreateUser(ctx, req); err != domain.ErrEmailTaken {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestLoginAndAuthenticate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, domain.CreateUserRequest{
		Username: "maker",
		Email:    "maker@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	result, err := svc.Login(ctx, domain.LoginRequest{Email: "maker@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("empty session token")
	}
	if got := time.Until(result.Session.ExpiresAt); got < 6*24*time.Hour {
		t.Errorf("session TTL too short: %v", got)
	}

	user, _, err := svc.Authenticate(ctx, result.Token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("authenticated wrong user: %d != %d", user.ID, created.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, domain.CreateUserRequest{
		Username: "maker",
		Email:    "maker@example.com",
		Password: "correct-horse",
	}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if _, err := svc.Login(ctx, domain.LoginRequest{Email: "maker@example.com", Password: "wrong-horse"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "whatever1"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("want ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, domain.CreateUserRequest{
		Username: "maker",
		Email:    "maker@example.com",
		Password: "correct-horse",
	}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	result, err := svc.Login(ctx, domain.LoginRequest{Email: "maker@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(ctx, result.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, _, err := svc.Authenticate(ctx, result.Token); err != domain.ErrSessionExpired {
		t.Fatalf("want ErrSessionExpired after logout, got %v", err)
	}
}
