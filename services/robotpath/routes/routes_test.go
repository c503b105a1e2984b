package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubPathHandler struct{ called bool }

func (s *stubPathHandler) HandleEnterPath(c *gin.Context) {
	s.called = true
	c.Status(http.StatusCreated)
}

func TestSetupRoutes_RegistersExpectedPaths(t *testing.T) {
	router := gin.New()
	stub := &stubPathHandler{}
	SetupRoutes(router, stub)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health"},
		{http.MethodGet, "/metrics"},
		{http.MethodPost, "/tibber-developer-test/enter-path"},
	}

	for _, tt := range cases {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code == http.StatusNotFound {
			t.Errorf("%s %s: route not registered", tt.method, tt.path)
		}
	}
}

func TestSetupRoutes_EnterPathDelegatesToHandler(t *testing.T) {
	router := gin.New()
	stub := &stubPathHandler{}
	SetupRoutes(router, stub)

	req := httptest.NewRequest(http.MethodPost, "/tibber-developer-test/enter-path", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if !stub.called {
		t.Error("expected enter-path route to delegate to PathHandler.HandleEnterPath")
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
}
