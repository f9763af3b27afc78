package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/credential"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/pkg/log"
)

// Gateway routes logical operations to the right backend and runs every
// request through one pipeline: attach the current credential, classify
// failures into the package taxonomy, and end the session on an explicit
// credential rejection. It never retries; retry is the caller's choice.
type Gateway struct {
	endpoints  Endpoints
	creds      credential.Store
	httpClient *http.Client
	l          log.Logger
	limiter    *rate.Limiter // nil disables outbound shaping

	mu             sync.Mutex
	onSessionEnded []func()
}

// Config holds the gateway construction parameters.
type Config struct {
	Endpoints Endpoints
	// RequestsPerMinute caps outbound calls across all targets; 0 means
	// unlimited.
	RequestsPerMinute int
	// HTTPClient overrides the default client. Mostly for tests.
	HTTPClient *http.Client
}

// New creates a Gateway over the given credential store.
func New(l log.Logger, creds credential.Store, cfg Config) *Gateway {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		burst := cfg.RequestsPerMinute / 10
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), burst)
	}
	return &Gateway{
		endpoints:  cfg.Endpoints,
		creds:      creds,
		httpClient: httpClient,
		l:          l,
		limiter:    limiter,
	}
}

// OnSessionEnded registers a callback invoked once per credential rejection,
// after the store has been cleared. The hosting shell decides what "go to
// login" means.
func (g *Gateway) OnSessionEnded(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onSessionEnded = append(g.onSessionEnded, fn)
}

// Endpoints returns the configured backend base addresses.
func (g *Gateway) Endpoints() Endpoints {
	return g.endpoints
}

// Get issues a GET for the logical path and decodes the JSON response into
// out when out is non-nil.
func (g *Gateway) Get(ctx context.Context, path string, out any) error {
	return g.do(ctx, http.MethodGet, path, nil, "", out)
}

// Post issues a POST with a JSON body.
func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	r, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return g.do(ctx, http.MethodPost, path, r, "application/json", out)
}

// PostForm issues a POST with a form-encoded body.
func (g *Gateway) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	return g.do(ctx, http.MethodPost, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", out)
}

// PostMultipart issues a POST with a prepared multipart body.
func (g *Gateway) PostMultipart(ctx context.Context, path string, body io.Reader, contentType string, out any) error {
	return g.do(ctx, http.MethodPost, path, body, contentType, out)
}

// Patch issues a PATCH. A nil body sends no payload, which is all the task
// backend needs for a completion toggle.
func (g *Gateway) Patch(ctx context.Context, path string, body, out any) error {
	var r io.Reader
	contentType := ""
	if body != nil {
		var err error
		r, err = encodeJSON(body)
		if err != nil {
			return err
		}
		contentType = "application/json"
	}
	return g.do(ctx, http.MethodPatch, path, r, contentType, out)
}

// Delete issues a DELETE for the logical path.
func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.do(ctx, http.MethodDelete, path, nil, "", nil)
}

func encodeJSON(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return bytes.NewReader(data), nil
}

func (g *Gateway) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("outbound limiter: %w", err)
		}
	}

	target := Resolve(path)
	req, err := http.NewRequestWithContext(ctx, method, g.endpoints.BaseURL(target)+path, body)
	if err != nil {
		return fmt.Errorf("failed to build %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	// Attach the bearer credential everywhere except the issuance call,
	// which authenticates with the login form instead.
	if path != issuancePath {
		if token, credErr := g.creds.Get(); credErr == nil {
			req.Header.Set("Authorization", "Bearer "+token)
			g.l.Debugf(ctx, "attached credential %s to %s %s (%s target)",
				credential.Truncate(token), method, path, target)
		}
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		// a caller-cancelled context is not a transport failure
		if ctx.Err() != nil {
			return ctx.Err()
		}
		g.l.Warnf(ctx, "%s %s: no response: %v", method, path, err)
		return fmt.Errorf("%s %s: %w", method, path, ErrUnreachable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		g.endSession(ctx, method, path)
		return ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return g.rejected(ctx, method, path, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// endSession clears the credential and notifies subscribers, once per
// rejected response.
func (g *Gateway) endSession(ctx context.Context, method, path string) {
	if err := g.creds.Clear(); err != nil {
		g.l.Errorf(ctx, "failed to clear credential after rejection on %s %s: %v", method, path, err)
	}
	g.l.Warnf(ctx, "credential rejected on %s %s, session ended", method, path)

	g.mu.Lock()
	subs := make([]func(), len(g.onSessionEnded))
	copy(subs, g.onSessionEnded)
	g.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// rejected turns a non-2xx response into a RejectedError, preferring the
// server's own message when the body carries one.
func (g *Gateway) rejected(ctx context.Context, method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var body struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	message := ""
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Detail != "" {
			message = body.Detail
		} else if body.Message != "" {
			message = body.Message
		}
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	g.l.Warnf(ctx, "%s %s rejected with %d: %s", method, path, resp.StatusCode, message)
	return &RejectedError{Status: resp.StatusCode, Message: message}
}
