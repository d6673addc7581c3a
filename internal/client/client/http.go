package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/common"
	"github.com/dmitrijs2005/userdesk/internal/logging"
	"github.com/dmitrijs2005/userdesk/internal/netx"
	"github.com/google/uuid"
)

// maxDetail bounds how much of an error body ends up in a StatusError.
const maxDetail = 200

// TokenSource yields the saved session token, if any.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

type HTTPClient struct {
	baseURL string
	apiKey  string
	tokens  TokenSource
	http    *http.Client
	logger  logging.Logger
}

// NewHTTPClient returns a Directory talking to baseURL (for example
// "https://reqres.in/api"). A zero timeout disables the per-request limit.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse directory url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: directory url must be http(s), got %q", ErrInvalidArgument, baseURL)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With("module", "directory_client"),
	}, nil
}

// UseTokens makes every request carry the token from ts as a bearer
// credential.
func (c *HTTPClient) UseTokens(ts TokenSource) {
	c.tokens = ts
}

func (c *HTTPClient) do(ctx context.Context, op, method, path string, in any) (*netx.Response, error) {
	reqID := uuid.NewString()

	h := http.Header{}
	h.Set(common.RequestIDHeaderName, reqID)
	if c.apiKey != "" {
		h.Set(common.APIKeyHeaderName, c.apiKey)
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(ctx); ok {
			h.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	started := time.Now()
	resp, err := netx.SendJSON(ctx, c.http, method, c.baseURL+path, h, in)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn(ctx, "request failed", "op", op, "request_id", reqID, "error", err)
		return nil, fmt.Errorf("%s: %w: %w", op, ErrNetwork, err)
	}

	c.logger.Debug(ctx, "request done", "op", op, "method", method, "path", path,
		"status", resp.StatusCode, "request_id", reqID, "elapsed", time.Since(started))

	return resp, nil
}

// statusError maps a non-2xx response onto the error taxonomy.
func statusError(op string, resp *netx.Response) error {
	e := &StatusError{Op: op, Code: resp.StatusCode, kind: ErrRemote}

	var body struct {
		Error string `json:"error"`
	}
	if resp.Decode(&body) == nil && body.Error != "" {
		e.Detail = body.Error
	} else if len(resp.Body) > 0 {
		e.Detail = strings.TrimSpace(string(resp.Body))
	}
	e.Detail = truncate(e.Detail, maxDetail)

	switch resp.StatusCode {
	case http.StatusNotFound:
		e.kind = ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		e.kind = ErrUnauthorized
	}
	return e
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func (c *HTTPClient) ListUsers(ctx context.Context, page int) (*models.UserPage, error) {
	const op = "list users"
	if page < 1 {
		return nil, fmt.Errorf("%s: %w: page must be positive, got %d", op, ErrInvalidArgument, page)
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))

	resp, err := c.do(ctx, op, http.MethodGet, "/users?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, statusError(op, resp)
	}

	var result models.UserPage
	if err := resp.Decode(&result); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrRemote, err)
	}
	if result.Page == 0 {
		result.Page = page
	}
	return &result, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id int) (*models.User, error) {
	const op = "get user"

	resp, err := c.do(ctx, op, http.MethodGet, "/users/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, statusError(op, resp)
	}

	var result struct {
		Data *models.User `json:"data"`
	}
	if err := resp.Decode(&result); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrRemote, err)
	}
	if result.Data == nil || result.Data.ID == 0 {
		return nil, fmt.Errorf("%s %d: %w", op, id, ErrNotFound)
	}
	return result.Data, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id int, patch models.UserPatch) error {
	const op = "update user"

	resp, err := c.do(ctx, op, http.MethodPut, "/users/"+strconv.Itoa(id), patch)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return statusError(op, resp)
	}
	return nil
}

// DeleteUser treats any 2xx, 204 No Content included, as success.
func (c *HTTPClient) DeleteUser(ctx context.Context, id int) error {
	const op = "delete user"

	resp, err := c.do(ctx, op, http.MethodDelete, "/users/"+strconv.Itoa(id), nil)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return statusError(op, resp)
	}
	return nil
}

// Login exchanges credentials for an opaque session token.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	const op = "login"

	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	resp, err := c.do(ctx, op, http.MethodPost, "/login", in)
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		err := statusError(op, resp)
		var se *StatusError
		if resp.StatusCode == http.StatusBadRequest && errors.As(err, &se) {
			se.kind = ErrUnauthorized
		}
		return "", err
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := resp.Decode(&out); err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, ErrRemote, err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("%s: %w: empty token", op, ErrUnauthorized)
	}
	return out.Token, nil
}
