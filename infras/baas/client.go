// Package baas talks to the managed backend: edge functions, PostgREST tables and RPCs, and
// the auth token endpoint.
package baas

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

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

	"github.com/rs/zerolog/log"

	"salonbooking/config"
	"salonbooking/infras/metrics"
	"salonbooking/infras/otel"
	"salonbooking/shared/constant"
)

const (
	functionsPath = "/functions/v1/"
	restPath      = "/rest/v1/"
	rpcPath       = "/rest/v1/rpc/"
	tokenPath     = "/auth/v1/token"

	maxErrorBody = 300
)

// ErrMalformedResponse marks a 2xx response whose body does not match the documented schema.
var ErrMalformedResponse = errors.New("malformed backend response")

// Error is a non-2xx answer from the backend.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("backend returned %d (%s): %s", e.Status, e.Code, e.Message)
	}

	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	var be *Error

	return errors.As(err, &be) && be.Status == http.StatusUnauthorized
}

// Tokens is a refreshed auth session.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// Client calls the backend. An empty token means the call is made with the anonymous key.
type Client interface {
	Invoke(ctx context.Context, function, token string, body, out any) error
	RPC(ctx context.Context, name, token string, params, out any) error
	Select(ctx context.Context, table, token string, query url.Values, out any) error
	Update(ctx context.Context, table, token string, query url.Values, patch any) error
	RefreshSession(ctx context.Context, refreshToken string) (*Tokens, error)
}

type clientImpl struct {
	httpClient *http.Client
	baseURL    string
	anonKey    string
	otel       otel.Otel
	metrics    *metrics.BookingMetrics
}

func New(cfg *config.Config, ot otel.Otel, m *metrics.BookingMetrics) Client {
	return &clientImpl{
		httpClient: &http.Client{Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second},
		baseURL:    strings.TrimRight(cfg.Backend.URL, "/"),
		anonKey:    cfg.Backend.AnonKey,
		otel:       ot,
		metrics:    m,
	}
}

// Invoke implements Client.
func (c *clientImpl) Invoke(ctx context.Context, function, token string, body, out any) error {
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   functionsPath + url.PathEscape(function),
		token:  token,
		body:   body,
		out:    out,
	})
}

// RPC implements Client. When out is set the result is requested as a single object.
func (c *clientImpl) RPC(ctx context.Context, name, token string, params, out any) error {
	accept := constant.Empty
	if out != nil {
		accept = constant.ContentTypePgrstSingle
	}

	return c.do(ctx, call{
		method: http.MethodPost,
		path:   rpcPath + url.PathEscape(name),
		token:  token,
		body:   params,
		out:    out,
		accept: accept,
	})
}

// Select implements Client.
func (c *clientImpl) Select(ctx context.Context, table, token string, query url.Values, out any) error {
	return c.do(ctx, call{
		method: http.MethodGet,
		path:   restPath + url.PathEscape(table),
		query:  query,
		token:  token,
		out:    out,
	})
}

// Update implements Client.
func (c *clientImpl) Update(ctx context.Context, table, token string, query url.Values, patch any) error {
	return c.do(ctx, call{
		method: http.MethodPatch,
		path:   restPath + url.PathEscape(table),
		query:  query,
		token:  token,
		body:   patch,
	})
}

// RefreshSession implements Client.
func (c *clientImpl) RefreshSession(ctx context.Context, refreshToken string) (*Tokens, error) {
	var tokens Tokens

	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   tokenPath,
		query:  url.Values{"grant_type": []string{"refresh_token"}},
		body:   map[string]string{"refresh_token": refreshToken},
		out:    &tokens,
	})
	if err != nil {
		return nil, err
	}

	if tokens.AccessToken == "" {
		return nil, fmt.Errorf("%w: missing access_token", ErrMalformedResponse)
	}

	return &tokens, nil
}

type call struct {
	method string
	path   string
	query  url.Values
	token  string
	body   any
	out    any
	accept string
}

func (c *clientImpl) do(ctx context.Context, in call) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".baas")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	endpoint := strings.TrimPrefix(in.path, "/")
	scope.SetAttributes(map[string]any{"http.method": in.method, "baas.endpoint": endpoint})

	started := time.Now()
	status := "error"

	defer func() {
		elapsed := time.Since(started)
		scope.SetAttributes(map[string]any{"http.status": status, "baas.latency": elapsed})
		c.metrics.ObserveRemoteCall(endpoint, status, elapsed.Seconds())
	}()

	target := c.baseURL + in.path
	if len(in.query) > 0 {
		target += "?" + in.query.Encode()
	}

	var bodyReader io.Reader

	if in.body != nil {
		payload, marshalErr := json.Marshal(in.body)
		if marshalErr != nil {
			return fmt.Errorf("failed to marshal request: %w", marshalErr)
		}

		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, in.method, target, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	accept := in.accept
	if accept == "" {
		accept = constant.ContentTypeJSON
	}

	bearer := in.token
	if bearer == "" {
		bearer = c.anonKey
	}

	req.Header.Set(constant.RequestHeaderAccept, accept)
	req.Header.Set(constant.RequestHeaderAPIKey, c.anonKey)
	req.Header.Set(constant.RequestHeaderAuthorization, constant.BearerPrefix+bearer)

	if in.body != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("backend request failed")

		return fmt.Errorf("failed to call backend: %w", err)
	}
	defer resp.Body.Close()

	status = strconv.Itoa(resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		backendErr := parseError(resp.StatusCode, respBody)
		log.Warn().
			Int("status", resp.StatusCode).
			Str("endpoint", endpoint).
			Str("code", backendErr.Code).
			Msg("backend non-2xx response")

		return backendErr
	}

	if in.out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		if in.out != nil {
			return fmt.Errorf("%w: empty body from %s", ErrMalformedResponse, endpoint)
		}

		return nil
	}

	if err = json.Unmarshal(respBody, in.out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return nil
}

func parseError(status int, body []byte) *Error {
	var payload struct {
		Code             any    `json:"code"`
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}

	out := &Error{Status: status}

	if json.Unmarshal(body, &payload) == nil {
		if payload.Code != nil {
			out.Code = fmt.Sprintf("%v", payload.Code)
		}

		for _, candidate := range []string{payload.Message, payload.Msg, payload.ErrorDescription, payload.Error} {
			if candidate != "" {
				out.Message = candidate

				break
			}
		}
	}

	if out.Message == "" {
		msg := string(body)
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}

		out.Message = msg
	}

	return out
}
