package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	authdomain "github.com/featureblastlabs/featureblast/internal/auth/domain"
	"github.com/featureblastlabs/featureblast/internal/auth/session"
	"github.com/featureblastlabs/featureblast/internal/config"
)

type fakeAuthService struct {
	user            *authdomain.User
	authErr         error
	createUserCalls int
	loginCalls      int
	logoutCalls     int
	lastToken       string
}

func (f *fakeAuthService) CreateUser(ctx context.Context, req authdomain.CreateUserRequest) (*authdomain.User, error) {
	_ = ctx
	f.createUserCalls++
	return &authdomain.User{
		ID:       f.user.ID,
		Username: req.Username,
		Email:    req.Email,
	}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, req authdomain.LoginRequest) (*authdomain.LoginResult, error) {
	_ = ctx
	_ = req
	f.loginCalls++
	return &authdomain.LoginResult{
		User:  f.user,
		Token: "raw-session-token",
		Session: &authdomain.Session{
			ID:        1,
			UserID:    f.user.ID,
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, rawToken string) error {
	_ = ctx
	f.logoutCalls++
	f.lastToken = rawToken
	return nil
}

func (f *fakeAuthService) Authenticate(ctx context.Context, rawToken string) (*authdomain.User, *authdomain.Session, error) {
	_ = ctx
	f.lastToken = rawToken
	if f.authErr != nil {
		return nil, nil, f.authErr
	}
	return f.user, &authdomain.Session{UserID: f.user.ID}, nil
}

func newAuthServer(svc authdomain.Service) (*Server, *gin.Engine) {
	gin.SetMode(gin.TestMode)

	srv := &Server{
		authsvc:  svc,
		sessions: session.NewManager(config.Config{}),
	}
	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	return srv, router
}

func TestSignupCreatesSession(t *testing.T) {
	svc := &fakeAuthService{user: &authdomain.User{ID: 10, Username: "alice", Email: "alice@example.com"}}
	srv, router := newAuthServer(svc)
	router.POST("/auth/signup", srv.Signup)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBufferString(`{"username":"alice","email":"alice@example.com","password":"hunter22"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.createUserCalls != 1 || svc.loginCalls != 1 {
		t.Fatalf("expected create+login, got %d creates %d logins", svc.createUserCalls, svc.loginCalls)
	}

	cookie := resp.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "_sid=raw-session-token") {
		t.Fatalf("expected session cookie, got %q", cookie)
	}
	if !strings.Contains(cookie, "HttpOnly") {
		t.Fatalf("expected HttpOnly cookie, got %q", cookie)
	}
}

func TestSignupRejectsMalformedBody(t *testing.T) {
	svc := &fakeAuthService{user: &authdomain.User{ID: 10}}
	srv, router := newAuthServer(svc)
	router.POST("/auth/signup", srv.Signup)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBufferString(`{"username":`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if svc.createUserCalls != 0 {
		t.Fatal("expected service not to be called")
	}
}

func TestWebAuthRequiredNoCookie(t *testing.T) {
	svc := &fakeAuthService{user: &authdomain.User{ID: 10}}
	srv, router := newAuthServer(svc)
	router.GET("/api/ping", srv.WebAuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": currentUserID(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestWebAuthRequiredExpiredSession(t *testing.T) {
	svc := &fakeAuthService{
		user:    &authdomain.User{ID: 10},
		authErr: authdomain.ErrSessionExpired,
	}
	srv, router := newAuthServer(svc)
	router.GET("/api/ping", srv.WebAuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.AddCookie(&http.Cookie{Name: "_sid", Value: "stale-token"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestWebAuthRequiredSetsUser(t *testing.T) {
	svc := &fakeAuthService{user: &authdomain.User{ID: 77, Username: "bob"}}
	srv, router := newAuthServer(svc)

	var gotID int64
	router.GET("/api/ping", srv.WebAuthRequired(), func(c *gin.Context) {
		gotID = currentUserID(c)
		c.JSON(http.StatusOK, gin.H{})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.AddCookie(&http.Cookie{Name: "_sid", Value: "good-token"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotID != 77 {
		t.Fatalf("expected user id 77 on context, got %d", gotID)
	}
	if svc.lastToken != "good-token" {
		t.Fatalf("expected token to reach the service, got %q", svc.lastToken)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	svc := &fakeAuthService{user: &authdomain.User{ID: 10}}
	srv, router := newAuthServer(svc)
	router.POST("/auth/logout", srv.Logout)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "_sid", Value: "raw-session-token"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if svc.logoutCalls != 1 || svc.lastToken != "raw-session-token" {
		t.Fatalf("expected logout with raw token, got %d calls token %q", svc.logoutCalls, svc.lastToken)
	}

	cookie := resp.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "_sid=;") && !strings.Contains(cookie, "Max-Age=0") {
		t.Fatalf("expected cleared cookie, got %q", cookie)
	}
}
