// Package client is the Aluguei API gateway: a single HTTP entry point that
// attaches the session token, serializes JSON bodies, and normalizes error
// responses into one error shape.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/turgho/aluguei-cli/pkg/domain"
)

// TokenSource supplies the current session token. An empty token means
// anonymous: no Authorization header is sent at all.
type TokenSource interface {
	Token() string
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateOwnerRequest is the payload for POST /owners. Phone carries the +55
// country prefix and CPF is bare digits; the screens strip the masks before
// building this.
type CreateOwnerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	CPF       string `json:"cpf"`
	BirthDate string `json:"birth_date,omitempty"`
}

// CreatePropertyRequest is the payload for POST /properties.
type CreatePropertyRequest struct {
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	ZipCode     string    `json:"zip_code"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	Area        float64   `json:"area"`
	RentAmount  float64   `json:"rent_amount"`
	Status      string    `json:"status"`
}

// Client is the Aluguei API client. The base URL already carries the
// /api/v1 prefix.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// New creates a new API client reading its token through tokens.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Login authenticates an owner by email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	var resp domain.LoginResponse
	if err := c.post(ctx, "/auth/login", LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	return &resp, nil
}

// CreateOwner registers a new owner account.
func (c *Client) CreateOwner(ctx context.Context, req CreateOwnerRequest) (*domain.Owner, error) {
	var owner domain.Owner
	if err := c.post(ctx, "/owners", req, &owner); err != nil {
		return nil, fmt.Errorf("client.CreateOwner: %w", err)
	}
	return &owner, nil
}

// CreateProperty creates a new rental property for the authenticated owner.
func (c *Client) CreateProperty(ctx context.Context, req CreatePropertyRequest) (*domain.Property, error) {
	var prop domain.Property
	if err := c.post(ctx, "/properties", req, &prop); err != nil {
		return nil, fmt.Errorf("client.CreateProperty: %w", err)
	}
	return &prop, nil
}

// GetDashboard fetches the owner's aggregated dashboard snapshot.
func (c *Client) GetDashboard(ctx context.Context, ownerID uuid.UUID) (*domain.Dashboard, error) {
	var dash domain.Dashboard
	if err := c.get(ctx, "/dashboard/owner/"+url.PathEscape(ownerID.String()), &dash); err != nil {
		return nil, fmt.Errorf("client.GetDashboard: %w", err)
	}
	return &dash, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: networkErrorMessage}
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &APIError{StatusCode: resp.StatusCode, Message: networkErrorMessage}
		}
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: networkErrorMessage}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
