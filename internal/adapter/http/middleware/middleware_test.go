package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func okRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.POST("/clients", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestBearerAuth(t *testing.T) {
	t.Run("empty token leaves the gate open", func(t *testing.T) {
		router := okRouter(BearerAuth(""))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/clients", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		router := okRouter(BearerAuth("secret"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/clients", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong token is rejected", func(t *testing.T) {
		router := okRouter(BearerAuth("secret"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/clients", nil)
		req.Header.Set("Authorization", "Bearer nope")
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("matching token passes", func(t *testing.T) {
		router := okRouter(BearerAuth("secret"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/clients", nil)
		req.Header.Set("Authorization", "Bearer secret")
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCORS(t *testing.T) {
	t.Run("preflight answers 204", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(CORS("http://localhost:5173"))
		r.POST("/clients", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/clients", nil))

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Fatalf("unexpected allow-origin: %q", got)
		}
	})

	t.Run("empty origin defaults to wildcard", func(t *testing.T) {
		router := okRouter(CORS(""))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/clients", nil))
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("unexpected allow-origin: %q", got)
		}
	})
}

func TestRequestID(t *testing.T) {
	t.Run("generates an id when absent", func(t *testing.T) {
		router := okRouter(RequestID())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/clients", nil))
		id := w.Header().Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected uuid request id, got %q: %v", id, err)
		}
	})

	t.Run("propagates a caller id", func(t *testing.T) {
		router := okRouter(RequestID())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/clients", nil)
		req.Header.Set(RequestIDHeader, "trace-42")
		router.ServeHTTP(w, req)
		if got := w.Header().Get(RequestIDHeader); got != "trace-42" {
			t.Fatalf("expected caller id echoed, got %q", got)
		}
	})
}
