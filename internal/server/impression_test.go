package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	impressiondomain "github.com/featureblastlabs/featureblast/internal/impression/domain"
)

type fakeImpressionService struct {
	err  error
	last impressiondomain.TrackRequest
}

func (f *fakeImpressionService) Track(ctx context.Context, req impressiondomain.TrackRequest) error {
	_ = ctx
	f.last = req
	return f.err
}

func newTrackRouter(svc impressiondomain.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	srv := &Server{impressionSvc: svc}
	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.POST("/track", srv.TrackImpression)
	return router
}

func TestTrackImpressionSuccess(t *testing.T) {
	svc := &fakeImpressionService{}
	router := newTrackRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/track", bytes.NewBufferString(`{"featureId":"42","uid":"7","type":"view"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success {
		t.Fatal("expected success true")
	}
	if svc.last.FeatureID != 42 || svc.last.UID != 7 || svc.last.Type != impressiondomain.TypeView {
		t.Fatalf("unexpected request forwarded to service: %+v", svc.last)
	}
}

func TestTrackImpressionMalformedBody(t *testing.T) {
	router := newTrackRouter(&fakeImpressionService{})

	req := httptest.NewRequest(http.MethodPost, "/track", bytes.NewBufferString(`{"featureId":`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestTrackImpressionErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"missing fields", impressiondomain.ErrMissingFields, http.StatusBadRequest},
		{"invalid type", impressiondomain.ErrInvalidType, http.StatusBadRequest},
		{"unauthorized feature", impressiondomain.ErrFeatureUnauthorized, http.StatusForbidden},
		{"tracking failed", impressiondomain.ErrTrackingFailed, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTrackRouter(&fakeImpressionService{err: tc.err})

			req := httptest.NewRequest(http.MethodPost, "/track", bytes.NewBufferString(`{"featureId":"42","uid":"7","type":"view"}`))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d: %s", tc.status, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestTrackImpressionUnauthorizedMessage(t *testing.T) {
	router := newTrackRouter(&fakeImpressionService{err: impressiondomain.ErrFeatureUnauthorized})

	req := httptest.NewRequest(http.MethodPost, "/track", bytes.NewBufferString(`{"featureId":"42","uid":"999","type":"click"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", resp.Code)
	}

	var body errorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error.Message != "invalid feature or unauthorized" {
		t.Fatalf("unexpected error message %q", body.Error.Message)
	}
}
