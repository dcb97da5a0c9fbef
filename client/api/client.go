// Package api is the HTTP client the point-of-sale front ends use to talk to
// the menu service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PeteShepley/simple-point-of-sale/dto"
)

const DefaultBaseURL = "http://localhost:8080"

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the default client (tests).
	HTTPClient *http.Client
}

func New(cfg Config) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{baseURL: base + "/api", httpClient: hc}
}

// Page is an optional limit/offset pair; nil fields are left to the server.
type Page struct {
	Limit  *int
	Offset *int
}

func (p Page) values() url.Values {
	v := url.Values{}
	if p.Limit != nil {
		v.Set("limit", strconv.Itoa(*p.Limit))
	}
	if p.Offset != nil {
		v.Set("offset", strconv.Itoa(*p.Offset))
	}
	return v
}

// =============================================================================
// Menus
// =============================================================================

func (c *Client) ListMenus(ctx context.Context, p Page) ([]dto.MenuResponse, error) {
	var out []dto.MenuResponse
	err := c.do(ctx, http.MethodGet, withQuery("/menus", p.values()), nil, &out)
	return out, err
}

// GetMenu fetches one menu; withItems embeds its items.
func (c *Client) GetMenu(ctx context.Context, id uint, withItems bool) (*dto.MenuResponse, error) {
	q := url.Values{}
	if withItems {
		q.Set("include", dto.IncludeItems)
	}
	var out dto.MenuResponse
	if err := c.do(ctx, http.MethodGet, withQuery(fmt.Sprintf("/menus/%d", id), q), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMenu(ctx context.Context, req dto.CreateMenuRequest) (*dto.MenuResponse, error) {
	var out dto.MenuResponse
	if err := c.do(ctx, http.MethodPost, "/menus", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMenu(ctx context.Context, id uint, req dto.UpdateMenuRequest) (*dto.MenuResponse, error) {
	var out dto.MenuResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/menus/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMenu(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/menus/%d", id), nil, nil)
}

// =============================================================================
// Menu items
// =============================================================================

func (c *Client) ListMenuItems(ctx context.Context, menuID uint, p Page) ([]dto.MenuItemResponse, error) {
	var out []dto.MenuItemResponse
	err := c.do(ctx, http.MethodGet, withQuery(fmt.Sprintf("/menus/%d/items", menuID), p.values()), nil, &out)
	return out, err
}

func (c *Client) CreateMenuItem(ctx context.Context, menuID uint, req dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	var out dto.MenuItemResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/menus/%d/items", menuID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, menuID, id uint, req dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	var out dto.MenuItemResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/menus/%d/items/%d", menuID, id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, menuID, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/menus/%d/items/%d", menuID, id), nil, nil)
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// do sends body as JSON (when non-nil) and decodes a 2xx answer into out
// (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return newAPIError(res.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func newAPIError(status int, raw []byte) *APIError {
	var body struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		msg = body.Error
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{Status: status, Message: msg}
}
