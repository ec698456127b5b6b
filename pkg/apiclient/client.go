/**
 * @description
 * This package provides the client for the Ziganya association REST API. It
 * encapsulates authenticated HTTP calls to one resource endpoint per record
 * kind, request body construction, and normalization of backend error
 * payloads into a single human-readable message.
 *
 * @dependencies
 * - net/http, encoding/json, bytes, io: Standard Go libraries.
 * - github.com/google/uuid: Per-request correlation ids.
 * - github.com/golang-jwt/jwt/v5: Unverified bearer-token expiry inspection.
 *
 * @notes
 * - No retries: every failure surfaces immediately to the caller.
 * - No caching: every List call re-fetches the resource in full.
 */

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Client carries the connection settings shared by every resource.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient creates a Ziganya API client for the given base URL and bearer
// token. An expired token is logged at startup but not rejected; the server
// remains the authority on authentication.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: &http.Client{Timeout: timeout},
	}
	if token != "" {
		if exp, ok := tokenExpiry(token); ok && exp.Before(time.Now()) {
			log.Printf("level=warn component=api_client msg=\"bearer token already expired\" expired_at=%s", exp.Format(time.RFC3339))
		}
	}
	return c
}

// tokenExpiry decodes the token without verifying its signature and returns
// the exp claim when present.
func tokenExpiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s %s payload: %w", method, path, err)
		}
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s %s request: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: method + " " + path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		serverErr := newServerError(resp.StatusCode, bodyBytes)
		log.Printf("level=warn component=api_client op=%q status=%d msg=%q", method+" "+path, resp.StatusCode, serverErr.Message)
		return nil, serverErr
	}

	return bodyBytes, nil
}

// Resource wraps the list/create/update/delete calls of one REST resource.
type Resource[T any] struct {
	client *Client
	path   string
}

// NewResource binds a record type to its endpoint path, e.g. "/members".
func NewResource[T any](client *Client, path string) *Resource[T] {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return &Resource[T]{client: client, path: path}
}

// Path returns the endpoint path this resource is bound to.
func (r *Resource[T]) Path() string { return r.path }

// List fetches the full collection.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	body, err := r.client.do(ctx, http.MethodGet, r.path, nil)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s list response: %w", r.path, err)
	}
	return out, nil
}

// One fetches the resource as a single object. Used for singleton resources
// such as the report snapshot.
func (r *Resource[T]) One(ctx context.Context) (*T, error) {
	body, err := r.client.do(ctx, http.MethodGet, r.path, nil)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", r.path, err)
	}
	return &out, nil
}

// Get fetches a single record by id.
func (r *Resource[T]) Get(ctx context.Context, id int64) (*T, error) {
	body, err := r.client.do(ctx, http.MethodGet, r.path+"/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", r.path, err)
	}
	return &out, nil
}

// Create posts a new record payload and returns the stored record.
func (r *Resource[T]) Create(ctx context.Context, payload any) (*T, error) {
	body, err := r.client.do(ctx, http.MethodPost, r.path, payload)
	if err != nil {
		return nil, err
	}
	var out T
	if len(body) > 0 {
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("failed to decode %s create response: %w", r.path, err)
		}
	}
	return &out, nil
}

// Update replaces the record with the given id and returns the stored record.
func (r *Resource[T]) Update(ctx context.Context, id int64, payload any) (*T, error) {
	body, err := r.client.do(ctx, http.MethodPut, r.path+"/"+strconv.FormatInt(id, 10), payload)
	if err != nil {
		return nil, err
	}
	var out T
	if len(body) > 0 {
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("failed to decode %s update response: %w", r.path, err)
		}
	}
	return &out, nil
}

// Delete removes the record with the given id.
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	_, err := r.client.do(ctx, http.MethodDelete, r.path+"/"+strconv.FormatInt(id, 10), nil)
	return err
}
