package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/turgho/aluguei-cli/pkg/domain"
)

// staticToken is a TokenSource with a fixed value.
type staticToken string

func (t staticToken) Token() string { return string(t) }

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Email != "a@b.com" || req.Password != "x" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"}) //nolint:errcheck
			return
		}
		json.NewEncoder(w).Encode(domain.LoginResponse{ //nolint:errcheck
			Token: "t1",
			Owner: domain.Owner{ID: uuid.New(), Name: "Ana"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken(""))
	resp, err := c.Login(context.Background(), "a@b.com", "x")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if resp.Token != "t1" {
		t.Errorf("Token = %q, want %q", resp.Token, "t1")
	}
	if resp.Owner.Name != "Ana" {
		t.Errorf("Owner.Name = %q, want %q", resp.Owner.Name, "Ana")
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken(""))
	_, err := c.Login(context.Background(), "a@b.com", "wrong")
	if err == nil {
		t.Fatal("expected error for bad credentials")
	}
	// The resolved message is the backend's, with no status code leaking in.
	if got := err.Error(); got != "client.Login: invalid credentials" {
		t.Errorf("error = %q, want backend message only", got)
	}
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Error("IsStatus(err, 401) = false, want true")
	}
}

func TestErrorBodyUnparseableFallsBackToGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>oops</html>")) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken(""))
	_, err := c.GetDashboard(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %v is not an *APIError", err)
	}
	if apiErr.Message != networkErrorMessage {
		t.Errorf("Message = %q, want generic network message", apiErr.Message)
	}
}

func TestAuthorizationHeaderAttachedWhenTokenPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(domain.Dashboard{}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("t1"))
	if _, err := c.GetDashboard(context.Background(), uuid.New()); err != nil {
		t.Fatalf("GetDashboard() error: %v", err)
	}
	if gotAuth != "Bearer t1" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer t1")
	}
}

func TestAuthorizationHeaderOmittedWhenAnonymous(t *testing.T) {
	headerSet := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, headerSet = r.Header["Authorization"]
		json.NewEncoder(w).Encode(domain.Owner{ID: uuid.New()}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken(""))
	_, err := c.CreateOwner(context.Background(), CreateOwnerRequest{Name: "Ana"})
	if err != nil {
		t.Fatalf("CreateOwner() error: %v", err)
	}
	if headerSet {
		t.Error("Authorization header sent for anonymous request, want omitted")
	}
}

func TestCreateProperty(t *testing.T) {
	ownerID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/properties" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req CreatePropertyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.State != "SP" || req.Status != domain.PropertyStatusAvailable {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "bad payload"}) //nolint:errcheck
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.Property{ //nolint:errcheck
			ID:      uuid.New(),
			OwnerID: req.OwnerID,
			Title:   req.Title,
			State:   req.State,
			Status:  req.Status,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("t1"))
	prop, err := c.CreateProperty(context.Background(), CreatePropertyRequest{
		OwnerID:    ownerID,
		Title:      "Apartamento Centro",
		State:      "SP",
		RentAmount: 1500,
		Status:     domain.PropertyStatusAvailable,
	})
	if err != nil {
		t.Fatalf("CreateProperty() error: %v", err)
	}
	if prop.OwnerID != ownerID {
		t.Errorf("OwnerID = %s, want %s", prop.OwnerID, ownerID)
	}
}

func TestNetworkFailureReturnsGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, staticToken(""))
	_, err := c.Login(context.Background(), "a@b.com", "x")
	if err == nil {
		t.Fatal("expected error for unreachable backend")
	}
	if got := err.Error(); got != "client.Login: "+networkErrorMessage {
		t.Errorf("error = %q, want generic network message", got)
	}
}
