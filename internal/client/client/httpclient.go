package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/usermgmt/internal/client/models"
	"github.com/dmitrijs2005/usermgmt/internal/common"
	"github.com/dmitrijs2005/usermgmt/internal/logging"
	"github.com/dmitrijs2005/usermgmt/internal/netx"
	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
)

// HTTPClient talks to the user collection over JSON/HTTP.
type HTTPClient struct {
	endpoint *url.URL
	hc       *http.Client
	logger   logging.Logger
	newID    func() string
}

// idQuery is the query string scoping update and delete calls.
type idQuery struct {
	ID string `url:"id"`
}

// NewHTTPClient binds a client to the collection endpoint, e.g.
// "http://localhost:3000/api/user". A zero timeout leaves the transport
// default in place.
func NewHTTPClient(endpoint string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse endpoint: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint: missing host in %q", endpoint)
	}

	return &HTTPClient{
		endpoint: u,
		hc:       &http.Client{Timeout: timeout},
		logger:   logger,
		newID:    uuid.NewString,
	}, nil
}

// Endpoint returns the collection URL the client is bound to.
func (c *HTTPClient) Endpoint() string {
	return c.endpoint.String()
}

func (c *HTTPClient) List(ctx context.Context) ([]models.UserRecord, error) {
	var out []models.UserRecord
	if err := c.do(ctx, http.MethodGet, c.endpoint.String(), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.UserRecord{}
	}
	return out, nil
}

func (c *HTTPClient) Create(ctx context.Context, p models.CreatePayload) error {
	return c.do(ctx, http.MethodPost, c.endpoint.String(), p, nil)
}

func (c *HTTPClient) Update(ctx context.Context, id string, p models.UpdatePayload) error {
	target, err := c.recordURL(id)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, target, p, nil)
}

func (c *HTTPClient) Delete(ctx context.Context, id string) error {
	target, err := c.recordURL(id)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, target, nil, nil)
}

// recordURL scopes the collection endpoint to one record via ?id=.
func (c *HTTPClient) recordURL(id string) (string, error) {
	if id == "" {
		return "", ErrEmptyID
	}
	v, err := query.Values(idQuery{ID: id})
	if err != nil {
		return "", err
	}

	u := *c.endpoint
	q := u.Query()
	for k, vals := range v {
		q[k] = vals
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *HTTPClient) do(ctx context.Context, method, target string, body, out any) error {
	req, err := netx.NewJSONRequest(ctx, method, target, body)
	if err != nil {
		return err
	}
	reqID := c.newID()
	req.Header.Set(common.RequestIDHeaderName, reqID)

	started := time.Now()
	code, err := netx.Do(c.hc, req, out)
	c.logger.Debug(ctx, "directory call",
		"method", method,
		"url", target,
		"status", code,
		"request_id", reqID,
		"elapsed", time.Since(started),
	)
	return mapError(err)
}
