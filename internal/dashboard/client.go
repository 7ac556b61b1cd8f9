package dashboard

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Requester issues dashboard requests. The UI only depends on this
// interface, so tests can script responses.
type Requester interface {
	Get(path string, query url.Values) ([]byte, error)
	PostForm(path string, form url.Values) ([]byte, error)
}

var _ Requester = (*Client)(nil)

type Client struct {
	base   *url.URL
	client *http.Client
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	return &Client{
		base:   base,
		client: &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) Get(path string, query url.Values) ([]byte, error) {
	target := c.resolve(path)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) PostForm(path string, form url.Values) ([]byte, error) {
	target := c.resolve(path)
	req, err := http.NewRequest(http.MethodPost, target.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("X-Request-Id", uuid.NewString())
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%s %s: %s", req.Method, req.URL.Path, resp.Status)
	}
	return body, nil
}

// resolve interprets path against the configured base. Server-supplied URLs
// may be absolute paths or fully qualified; both resolve correctly.
func (c *Client) resolve(path string) *url.URL {
	ref, err := url.Parse(path)
	if err != nil {
		return c.base.JoinPath(path)
	}
	return c.base.ResolveReference(ref)
}
