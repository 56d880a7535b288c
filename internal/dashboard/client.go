package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

const defaultTimeout = 10 * time.Second

// StatusError is a non-2xx answer of the admin API. Body is the plain-text
// message of the server.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api responded %d: %s", e.Code, e.Body)
}

// Client talks to the admin API with a bearer token.
type Client struct {
	baseURL string
	token   string
	http    *fiber.Client
}

// NewClient returns a client for the API at baseURL. token may be empty for
// public endpoints.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http: &fiber.Client{
			UserAgent:   "toko-admin-dashboard",
			JSONEncoder: json.Marshal,
			JSONDecoder: json.Unmarshal,
		},
	}
}

// Get decodes the JSON answer of a GET request into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, c.http.Get(c.baseURL+path), nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}) error {
	return c.do(ctx, c.http.Post(c.baseURL+path), body, nil)
}

func (c *Client) Patch(ctx context.Context, path string, body interface{}) error {
	return c.do(ctx, c.http.Patch(c.baseURL+path), body, nil)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, c.http.Delete(c.baseURL+path), nil, nil)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, c.http.Post(c.baseURL+"/api/auth/login"), body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.New("login response carries no token")
	}
	return resp.Token, nil
}

func (c *Client) do(ctx context.Context, agent *fiber.Agent, body, out interface{}) error {
	if err := ctx.Err(); err != nil {
		fiber.ReleaseAgent(agent)
		return err
	}

	timeout := defaultTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	agent.Timeout(timeout)

	if c.token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}
	if body != nil {
		agent.JSON(body)
	}

	code, raw, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("request failed: %w", errors.Join(errs...))
	}
	if code < 200 || code >= 300 {
		return &StatusError{Code: code, Body: string(raw)}
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
