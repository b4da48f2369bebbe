package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	embeddomain "github.com/featureblastlabs/featureblast/internal/embed/domain"
)

type fakeEmbedService struct {
	script string
	err    error
	last   embeddomain.RenderRequest
}

func (f *fakeEmbedService) Render(ctx context.Context, req embeddomain.RenderRequest) (string, error) {
	_ = ctx
	f.last = req
	return f.script, f.err
}

func newEmbedRouter(svc embeddomain.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	srv := &Server{embedSvc: svc}
	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.GET("/embed.js", srv.EmbedScript)
	return router
}

func TestEmbedScriptServesJavascript(t *testing.T) {
	svc := &fakeEmbedService{script: "(function(){})();"}
	router := newEmbedRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/embed.js?uid=7&color=%23ff0000", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/javascript") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if resp.Body.String() != svc.script {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
	if svc.last.UserID != 7 {
		t.Fatalf("expected user id 7, got %d", svc.last.UserID)
	}
	if svc.last.Color != "#ff0000" {
		t.Fatalf("expected color to be forwarded, got %q", svc.last.Color)
	}
}

func TestEmbedScriptDataAttributeParams(t *testing.T) {
	svc := &fakeEmbedService{script: "(function(){})();"}
	router := newEmbedRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/embed.js?data-uid=9&data-color=%2300ff00", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if svc.last.UserID != 9 || svc.last.Color != "#00ff00" {
		t.Fatalf("expected data-* params to be honored, got %+v", svc.last)
	}
}

func TestEmbedScriptMissingUID(t *testing.T) {
	for _, path := range []string{"/embed.js", "/embed.js?uid=0", "/embed.js?uid=abc"} {
		router := newEmbedRouter(&fakeEmbedService{})

		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", path, resp.Code)
		}
	}
}
