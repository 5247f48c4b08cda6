// Package apiclient fetches posts from the remote blog REST API.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/beyondui/internal/blog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the public mock API that serves the blog collection.
const DefaultBaseURL = "https://688daee0a459d5566b12e6ed.mockapi.io/api/v1"

const (
	postsPath       = "blog"
	maxResponseSize = 8 << 20
	tracerName      = "github.com/louisbranch/beyondui/internal/blog/apiclient"
)

// Client talks to the blog REST API.
type Client struct {
	baseURL string
	http    *http.Client
	tracer  trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithTimeout bounds each request. Zero leaves requests unbounded apart
// from the caller context.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout <= 0 {
			return
		}
		clone := *c.http
		clone.Timeout = timeout
		c.http = &clone
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

// New builds a client rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("blog api base url is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse blog api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("blog api base url must be http or https, got %q", baseURL)
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListPosts returns every post in API order.
func (c *Client) ListPosts(ctx context.Context) ([]blog.Post, error) {
	ctx, span := c.tracer.Start(ctx, "blog.api.list_posts")
	defer span.End()

	endpoint := c.baseURL + "/" + postsPath
	var posts []blog.Post
	if err := c.getJSON(ctx, endpoint, &posts); err != nil {
		recordError(span, err)
		return nil, err
	}
	if posts == nil {
		posts = []blog.Post{}
	}
	span.SetAttributes(attribute.Int("blog.posts.count", len(posts)))
	return posts, nil
}

// GetPost returns one post. A 404 from the API becomes *blog.NotFoundError.
func (c *Client) GetPost(ctx context.Context, id string) (blog.Post, error) {
	ctx, span := c.tracer.Start(ctx, "blog.api.get_post", trace.WithAttributes(attribute.String("blog.post_id", id)))
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		err := fmt.Errorf("%w: post id is required", blog.ErrInvalidInput)
		recordError(span, err)
		return blog.Post{}, err
	}
	endpoint := c.baseURL + "/" + postsPath + "/" + url.PathEscape(id)
	var post blog.Post
	if err := c.getJSON(ctx, endpoint, &post); err != nil {
		var fetchErr *blog.FetchError
		if errors.As(err, &fetchErr) && fetchErr.StatusCode == http.StatusNotFound {
			err = &blog.NotFoundError{ID: id}
		}
		recordError(span, err)
		return blog.Post{}, err
	}
	return post, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &blog.FetchError{URL: endpoint, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &blog.FetchError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4<<10)
		return &blog.FetchError{URL: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return &blog.FetchError{URL: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(body) > maxResponseSize {
		return &blog.DecodeError{URL: endpoint, Err: fmt.Errorf("response exceeds %d bytes", maxResponseSize)}
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &blog.DecodeError{URL: endpoint, Err: err}
	}
	return nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
