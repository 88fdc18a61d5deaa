// Package viacep resolves Brazilian postal codes (CEP) to street, city and
// state through the public ViaCEP service. It is used to prefill the
// add-property form once eight digits are typed.
package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/turgho/aluguei-cli/internal/mask"
)

// DefaultBaseURL is the public ViaCEP host.
const DefaultBaseURL = "https://viacep.com.br"

// Address is the lookup result. ViaCEP signals an unknown CEP with an
// `erro` field that has shipped both as a bool and as the string "true",
// so it is decoded leniently; use Found to test it.
type Address struct {
	Logradouro string          `json:"logradouro"`
	Localidade string          `json:"localidade"`
	UF         string          `json:"uf"`
	Erro       json.RawMessage `json:"erro,omitempty"`
}

// Found reports whether the lookup matched a real CEP.
func (a *Address) Found() bool {
	return len(a.Erro) == 0 || string(a.Erro) == "false" || string(a.Erro) == `"false"`
}

// Client calls the ViaCEP lookup endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a lookup client. An empty baseURL selects the public host.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Lookup resolves a CEP. Mask characters are stripped first; anything other
// than eight digits is rejected before touching the network.
func (c *Client) Lookup(ctx context.Context, cep string) (*Address, error) {
	digits := mask.Digits(cep)
	if len(digits) != 8 {
		return nil, fmt.Errorf("viacep.Lookup: cep %q is not 8 digits", cep)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ws/"+digits+"/json/", nil)
	if err != nil {
		return nil, fmt.Errorf("viacep.Lookup: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("viacep.Lookup: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("viacep.Lookup: HTTP %d", resp.StatusCode)
	}

	var addr Address
	if err := json.NewDecoder(resp.Body).Decode(&addr); err != nil {
		return nil, fmt.Errorf("viacep.Lookup: decode response: %w", err)
	}
	return &addr, nil
}
