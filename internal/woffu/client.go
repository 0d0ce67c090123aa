// Package woffu is an authenticated, read-mostly client for the Woffu
// attendance API. Responses are cached in memory for the lifetime of the
// client instance.
package woffu

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/rubenboadana/WoffuAutomatizer/internal/model"
	"github.com/rubenboadana/WoffuAutomatizer/internal/timecalc"
)

const defaultBaseURL = "https://aetion.woffu.com/api"

// Client talks to the Woffu API on behalf of one bearer token.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	cache      *cache
	log        *zap.Logger

	userID int64 // resolved once, 0 until then
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API origin. Intended for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTransport replaces the transport underneath the bearer layer, so fakes
// still observe the Authorization header. Intended for tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		if tr, ok := c.httpClient.Transport.(*oauth2.Transport); ok {
			tr.Base = rt
			return
		}
		c.httpClient = &http.Client{Transport: rt}
	}
}

// NewClient creates a Woffu API client authenticating with the given bearer
// token. When insecureTLS is true, server certificate verification is
// disabled; this matches a Woffu deployment behind a proxy with an untrusted
// certificate and must be requested explicitly by the operator.
func NewClient(token string, insecureTLS bool, log *zap.Logger, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("bearer token is required for API authentication")
	}
	if log == nil {
		log = zap.NewNop()
	}

	base := &http.Client{Timeout: 30 * time.Second}
	if insecureTLS {
		log.Warn("TLS certificate verification is disabled")
		base.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	// Wrap the base client with an oauth2 bearer transport so every request
	// carries the Authorization header.
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})

	c := &Client{
		httpClient: oauth2.NewClient(ctx, ts),
		baseURL:    defaultBaseURL,
		token:      token,
		cache:      newCache(),
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Token returns the raw bearer token the client was created with.
func (c *Client) Token() string {
	return c.token
}

// ResolveUserID returns the id of the authenticated user. It first attempts
// a local decode of the token's payload segment (no network); on any
// structural failure it falls back to GET /users/self. The result is cached
// for the client lifetime.
func (c *Client) ResolveUserID(ctx context.Context) (int64, error) {
	if c.userID != 0 {
		return c.userID, nil
	}

	if id, ok := UserIDFromToken(c.token); ok {
		c.log.Debug("extracted user id from token", zap.Int64("user_id", id))
		c.userID = id
		return id, nil
	}

	c.log.Info("token did not yield a user id, querying the API")
	var self struct {
		ID     int64 `json:"id"`
		UserID int64 `json:"UserId"`
	}
	if err := c.get(ctx, "/users/self", nil, &self); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUserIDUnresolved, err)
	}

	id := self.ID
	if id == 0 {
		id = self.UserID
	}
	if id == 0 {
		return 0, ErrUserIDUnresolved
	}

	c.log.Info("retrieved user id from API", zap.Int64("user_id", id))
	c.userID = id
	return id, nil
}

// MonthlyDiaries fetches the presence diary summary for one user and month.
// A failed request or a response without a diaries field degrades to an
// empty slice rather than an error, so the caller can distinguish "no data"
// from a crashed run.
func (c *Client) MonthlyDiaries(ctx context.Context, userID int64, year int, month time.Month) ([]model.DiaryEntry, error) {
	key := fmt.Sprintf("monthly_diaries_%d_%d_%d", userID, year, int(month))
	if v, ok := c.cache.get(key); ok {
		return v.([]model.DiaryEntry), nil
	}

	first, last := timecalc.MonthRange(year, month)
	q := url.Values{}
	q.Set("userId", strconv.FormatInt(userID, 10))
	q.Set("fromDate", timecalc.FormatDate(first))
	q.Set("toDate", timecalc.FormatDate(last))
	q.Set("pageSize", strconv.Itoa(timecalc.DaysIn(year, month)))
	q.Set("includeHourTypes", "true")
	q.Set("includeNotHourTypes", "true")
	q.Set("includeDifference", "true")

	endpoint := fmt.Sprintf("/svc/core/diariesquery/users/%d/diaries/summary/presence", userID)

	var payload struct {
		Diaries []model.DiaryEntry `json:"diaries"`
	}
	if err := c.get(ctx, endpoint, q, &payload); err != nil {
		c.log.Error("fetching monthly diaries failed", zap.Error(err))
		return []model.DiaryEntry{}, nil
	}
	if payload.Diaries == nil {
		c.log.Error("diary summary response has no diaries field")
		return []model.DiaryEntry{}, nil
	}

	c.log.Debug("fetched monthly diaries", zap.Int("count", len(payload.Diaries)))
	c.cache.put(key, payload.Diaries)
	return payload.Diaries, nil
}

// Users fetches the company user list.
func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	if v, ok := c.cache.get("users"); ok {
		return v.([]model.User), nil
	}

	var users []model.User
	if err := c.get(ctx, "/users", nil, &users); err != nil {
		return nil, err
	}
	c.cache.put("users", users)
	return users, nil
}

// UserDiaries fetches all diary records for one user, unbounded by month.
func (c *Client) UserDiaries(ctx context.Context, userID int64) ([]model.DiaryEntry, error) {
	key := fmt.Sprintf("diaries_%d", userID)
	if v, ok := c.cache.get(key); ok {
		return v.([]model.DiaryEntry), nil
	}

	q := url.Values{}
	q.Set("userId", strconv.FormatInt(userID, 10))

	var diaries []model.DiaryEntry
	if err := c.get(ctx, "/diaries", q, &diaries); err != nil {
		return nil, err
	}
	c.cache.put(key, diaries)
	return diaries, nil
}

// get issues a GET request against the API and decodes the JSON response
// into out. Non-2xx responses become *APIError.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("woffu API request", zap.String("method", http.MethodGet), zap.String("url", u))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("woffu API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding woffu response: %w", err)
	}
	return nil
}
