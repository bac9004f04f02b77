package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis"
	"github.com/go-redis/redis/v8"

	httputil "github.com/hushsocial/hush/pkg/http"
	"github.com/hushsocial/hush/pkg/http/middlewares"
	"github.com/hushsocial/hush/pkg/sessions"
)

func TestAuthenticationHandler_WithoutAuth(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	sm := sessions.NewSessionManager(rdb)
	mw := middlewares.NewAuthenticationMiddleware(sm)

	r, err := http.NewRequest("GET", "/v1/feed", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	handler := mw.Middleware(nil)

	handler.ServeHTTP(rr, r)

	if status := rr.Code; status != http.StatusUnauthorized {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusUnauthorized)
	}
}

func TestAuthenticationHandler_WithoutActiveSession(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	sm := sessions.NewSessionManager(rdb)
	mw := middlewares.NewAuthenticationMiddleware(sm)

	r, err := http.NewRequest("GET", "/v1/feed", nil)
	if err != nil {
		t.Fatal(err)
	}

	r.Header.Set("Authorization", "123")

	rr := httptest.NewRecorder()
	handler := mw.Middleware(nil)

	handler.ServeHTTP(rr, r)

	if status := rr.Code; status != http.StatusUnauthorized {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusUnauthorized)
	}
}

func TestAuthenticationHandler_WithSession(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	sm := sessions.NewSessionManager(rdb)
	mw := middlewares.NewAuthenticationMiddleware(sm)

	err = sm.NewSession("123", 12)
	if err != nil {
		t.Fatal(err)
	}

	r, err := http.NewRequest("GET", "/v1/feed", nil)
	if err != nil {
		t.Fatal(err)
	}

	r.Header.Set("Authorization", "123")

	rr := httptest.NewRecorder()
	handler := mw.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := httputil.GetViewerIDFromContext(r.Context())
		if !ok || id != 12 {
			t.Errorf("viewer id missing from context")
		}
	}))

	handler.ServeHTTP(rr, r)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}
}
