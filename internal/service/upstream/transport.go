package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"MarketLens/internal/domain/repository"
	"MarketLens/internal/service/session"
	pkghttp "MarketLens/pkg/http"
	"MarketLens/pkg/logger"
)

// Transport is the single authenticated doorway to the intelligence backend.
// It attaches the session's bearer token, maps non-2xx replies to *Error,
// and evicts the session token on a 401 before surfacing the failure.
// It never retries; fallback policy belongs to the aggregator.
type Transport struct {
	base    string
	client  *pkghttp.Client
	metrics repository.Metrics
	log     *logger.Logger
}

func NewTransport(baseURL string, timeout time.Duration, metrics repository.Metrics, log *logger.Logger) *Transport {
	return &Transport{
		base:    strings.TrimRight(baseURL, "/"),
		client:  pkghttp.NewClient(pkghttp.WithTimeout(timeout)),
		metrics: metrics,
		log:     log,
	}
}

type request struct {
	method string
	path   string // request path, may carry a symbol
	label  string // metric label, fixed per endpoint
	query  map[string][]string
	body   interface{}
	form   bool
}

func (t *Transport) get(ctx context.Context, sess *session.Session, label, path string, query map[string][]string, dest interface{}) error {
	return t.do(ctx, sess, request{method: pkghttp.MethodGet, path: path, label: label, query: query}, dest)
}

func (t *Transport) post(ctx context.Context, sess *session.Session, label, path string, body, dest interface{}) error {
	return t.do(ctx, sess, request{method: pkghttp.MethodPost, path: path, label: label, body: body}, dest)
}

func (t *Transport) postForm(ctx context.Context, sess *session.Session, label, path string, form url.Values, dest interface{}) error {
	return t.do(ctx, sess, request{method: pkghttp.MethodPost, path: path, label: label, body: form, form: true}, dest)
}

func (t *Transport) put(ctx context.Context, sess *session.Session, label, path string, body, dest interface{}) error {
	return t.do(ctx, sess, request{method: pkghttp.MethodPut, path: path, label: label, body: body}, dest)
}

func (t *Transport) do(ctx context.Context, sess *session.Session, req request, dest interface{}) error {
	headers := map[string]string{}
	if tok := sess.Token(ctx); tok != "" {
		headers["Authorization"] = "Bearer " + tok
	}
	if req.form {
		headers["Content-Type"] = pkghttp.ContentTypeForm
	}

	resp, err := t.client.SendRequest(ctx, &pkghttp.RequestOptions{
		Method:      req.method,
		URL:         t.base + req.path,
		Headers:     headers,
		QueryParams: req.query,
		Body:        req.body,
	})
	if err != nil {
		t.record(req.label, "error")
		return fmt.Errorf("upstream %s: %w", req.path, err)
	}
	defer resp.Body.Close()

	t.record(req.label, strconv.Itoa(resp.StatusCode))

	if resp.StatusCode == http.StatusUnauthorized {
		if err := sess.Evict(ctx); err != nil {
			t.log.Warn("session eviction failed", logger.Error(err))
		} else if t.metrics != nil {
			t.metrics.RecordTokenEviction()
		}
		return &Error{Status: resp.StatusCode, Path: req.path}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		t.log.Debug("upstream error reply",
			logger.String("path", req.path),
			logger.Int("status", resp.StatusCode),
			logger.String("body", string(body)))
		return &Error{Status: resp.StatusCode, Path: req.path}
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("upstream %s: decode: %w", req.path, err)
	}
	return nil
}

func (t *Transport) record(label, status string) {
	if t.metrics != nil {
		t.metrics.RecordUpstreamRequest(label, status)
	}
}
