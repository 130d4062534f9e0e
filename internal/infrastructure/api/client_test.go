package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/salonova/booking-client/internal/core/ports"
)

type staticCred struct{ token string }

func (s staticCred) Token() string { return s.token }

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL}, staticCred{token: token}, zerolog.Nop())
}

func TestClient_AttachesBearerCredential(t *testing.T) {
	var gotAuth, gotContentType string
	c := newTestClient(t, "T1", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte("[]"))
	})

	if _, err := c.ListServices(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer T1" {
		t.Errorf("expected Authorization %q, got %q", "Bearer T1", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %q", gotContentType)
	}
}

func TestClient_NoCredentialNoAuthorizationHeader(t *testing.T) {
	var hasAuth bool
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte("[]"))
	})

	if _, err := c.ListServices(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hasAuth {
		t.Error("no Authorization header must be sent without a credential")
	}
}

func TestClient_NonSuccessBecomesAPIError(t *testing.T) {
	c := newTestClient(t, "T1", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.ListBookings(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T", err)
	}
	if apiErr.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", apiErr.Status)
	}
	if got := apiErr.Error(); got != "API Error: 500 Internal Server Error" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestClient_NoContentSkipsDecoding(t *testing.T) {
	c := newTestClient(t, "T1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	if err := c.DeleteBooking(context.Background(), "7"); err != nil {
		t.Fatalf("204 must be a success: %v", err)
	}
}

func TestClient_Login(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody ports.Credentials
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"token": "T1"})
	})

	token, err := c.Login(context.Background(), ports.Credentials{Email: "a@b.com", Password: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "T1" {
		t.Errorf("expected token T1, got %q", token)
	}
	if gotMethod != http.MethodPost || gotPath != "/users/login" {
		t.Errorf("expected POST /users/login, got %s %s", gotMethod, gotPath)
	}
	if gotBody.Email != "a@b.com" || gotBody.Password != "x" {
		t.Errorf("credentials not forwarded: %+v", gotBody)
	}
}

func TestClient_UpdateServiceBodyCarriesID(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	c := newTestClient(t, "T1", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	})

	in := ports.ServiceInput{ServiceName: "Haircut", Description: "d", DurationMinutes: 45, PriceEUR: 28.5}
	if err := c.UpdateService(context.Background(), "9", in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/services/9" {
		t.Errorf("expected /services/9, got %q", gotPath)
	}
	if gotBody["id"] != "9" {
		t.Errorf("update body must carry the id, got %v", gotBody["id"])
	}
	if gotBody["service_name"] != "Haircut" {
		t.Errorf("update body must carry the patch, got %v", gotBody["service_name"])
	}
}

func TestClient_BookingTransitionEndpoints(t *testing.T) {
	var paths []string
	var methods []string
	c := newTestClient(t, "T1", func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		methods = append(methods, r.Method)
		w.WriteHeader(http.StatusOK)
	})

	if err := c.AcceptBooking(context.Background(), "3"); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if err := c.CancelBooking(context.Background(), "3"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	want := []string{"/bookings/3/accept", "/bookings/3/cancel"}
	for i, p := range want {
		if paths[i] != p || methods[i] != http.MethodPut {
			t.Errorf("call %d: expected PUT %s, got %s %s", i, p, methods[i], paths[i])
		}
	}
}
