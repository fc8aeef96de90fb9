package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/aravindan888/opsml/internal/domain"
)

// RegistryClient wraps a Hertz client for HTTP communication with the
// registry server. Every method issues exactly one GET and decodes the JSON
// body; retries, caching, and timeouts belong to the transport layer.
type RegistryClient struct {
	client *client.Client
	server string
	token  string
}

// NewRegistryClient creates a new registry API client.
func NewRegistryClient(server, token string) (*RegistryClient, error) {
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
		client.WithDialer(standard.NewDialer()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &RegistryClient{
		client: c,
		server: normalizedServer,
		token:  token,
	}, nil
}

// normalizeServerURL normalizes server URL to ensure it has a scheme and no trailing slash
func normalizeServerURL(server string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// getJSON issues one GET against path with the given query and decodes the
// response body into out.
func (c *RegistryClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	uri := c.server + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(uri)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	switch code := resp.StatusCode(); {
	case code == consts.StatusNotFound:
		return domain.NewNotFoundError("route", path)
	case code != consts.StatusOK:
		return fmt.Errorf("GET %s failed with HTTP status: %d, body: %s", path, code, string(resp.Body()))
	}

	if err := sonic.Unmarshal(resp.Body(), out); err != nil {
		return domain.NewDecodeError(path, err)
	}

	return nil
}
