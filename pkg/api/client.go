package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cbodonnell/flagmaster/pkg/countries"
	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/cbodonnell/flagmaster/pkg/messages"
	"github.com/cbodonnell/flagmaster/pkg/stats"
)

const (
	// DefaultClientTimeout bounds every request made by Client
	DefaultClientTimeout = 10 * time.Second
)

// Client talks to an APIServer. It serves as both the country source and the
// stats backend of a game client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ countries.Provider = &Client{}
var _ stats.Store = &Client{}

type NewClientOptions struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(opts NewClientOptions) (*Client, error) {
	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse API URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported API URL scheme: %q", u.Scheme)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultClientTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: httpClient,
	}, nil
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API returned %d: %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to %s %s: %v", method, path, err)
	}
	if resp.StatusCode >= 300 {
		defer resp.Body.Close()
		apiErr := &APIError{StatusCode: resp.StatusCode}
		errResp := &messages.ErrorResponse{}
		if err := json.NewDecoder(resp.Body).Decode(errResp); err == nil {
			apiErr.Message = errResp.Error
		}
		return nil, apiErr
	}
	return resp, nil
}

// GetRandomCountries fetches count countries from GET /countries.
func (c *Client) GetRandomCountries(ctx context.Context, count int) ([]countries.Country, error) {
	resp, err := c.do(ctx, http.MethodGet, "/countries?count="+strconv.Itoa(count), nil)
	if err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusUnprocessableEntity {
			return nil, &countries.ErrPoolTooSmall{Requested: count}
		}
		return nil, err
	}
	defer resp.Body.Close()

	body := &messages.CountriesResponse{}
	if err := json.NewDecoder(resp.Body).Decode(body); err != nil {
		return nil, fmt.Errorf("failed to decode countries: %v", err)
	}
	return body.Countries, nil
}

// Load fetches the stats for mode, returning nil when the server has none.
func (c *Client) Load(ctx context.Context, mode types.Mode) (*stats.Stats, error) {
	resp, err := c.do(ctx, http.MethodGet, "/stats/"+url.PathEscape(mode.String()), nil)
	if err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s stats: %v", mode, err)
	}
	return stats.Decode(b)
}

// Save stores the stats for mode with PUT /stats/{mode}.
func (c *Client) Save(ctx context.Context, mode types.Mode, s *stats.Stats) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal %s stats: %v", mode, err)
	}
	resp, err := c.do(ctx, http.MethodPut, "/stats/"+url.PathEscape(mode.String()), bytes.NewReader(b))
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
