package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// DefaultBaseURL is the production host and versioned path prefix.
const DefaultBaseURL = "https://api.kingtime.jp/v1.0"

// Transport handles low-level HTTP and authentication. It stores no
// credentials: the access token is an argument to every call, so a single
// Transport can serve any number of callers.
type Transport struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewTransport creates a transport for the given base URL. An empty base
// URL means the production API.
func NewTransport(baseURL string) *Transport {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Transport{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}
}

// helper: build full URL with query params
func (t *Transport) buildURL(path string, query map[string]string) string {
	u, _ := url.Parse(t.BaseURL + path)
	q := u.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func (t *Transport) do(req *http.Request, token string) ([]byte, error) {
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// Get sends a GET request and returns the raw response body.
func (t *Transport) Get(ctx context.Context, token, path string) ([]byte, error) {
	return t.GetWithQuery(ctx, token, path, nil)
}

// GetWithQuery sends a GET request with URL-encoded query parameters.
func (t *Transport) GetWithQuery(ctx context.Context, token, path string, query map[string]string) ([]byte, error) {
	fullURL := t.buildURL(path, query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	return t.do(req, token)
}

// Post sends a POST request with a JSON body.
func (t *Transport) Post(ctx context.Context, token, path string, payload any) ([]byte, error) {
	fullURL := t.buildURL(path, nil)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	return t.do(req, token)
}
