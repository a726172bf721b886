// Package backend клиент удаленного REST бэкенда витрины.
package backend

import (
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

	"github.com/avc/storefront-gateway/internal/catalog"
	"github.com/avc/storefront-gateway/internal/domain"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// Config параметры клиента
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Client реализует domain.BackendClient поверх retryablehttp
type Client struct {
	baseURL string
	http    *retryablehttp.Client
	logger  *zap.Logger
}

var _ domain.BackendClient = (*Client)(nil)

// NewClient создает клиент бэкенда
func NewClient(cfg Config, logger *zap.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.RetryMax = cfg.RetryMax
	if cfg.RetryWaitMin > 0 {
		rc.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		rc.RetryWaitMax = cfg.RetryWaitMax
	}
	rc.CheckRetry = retryPolicy
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = &retryLogger{logger: logger.Named("backend")}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    rc,
		logger:  logger,
	}
}

// retryPolicy повторяет ошибки соединения и 5xx только для GET.
// 429 отдается вызывающему как RateLimitError.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return false, nil
	}
	if resp.Request != nil && resp.Request.Method != http.MethodGet {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	token  string
}

// do выполняет запрос и декодирует ответ в out (если out != nil)
func (c *Client) do(ctx context.Context, r request, out any) error {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var payload []byte
	if r.body != nil {
		var err error
		payload, err = json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("backend client: failed to encode %s %s: %w", r.method, r.path, err)
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, r.method, u, payload)
	if err != nil {
		return fmt.Errorf("backend client: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend client: failed to execute %s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("backend client: failed to decode %s %s: %w", r.method, r.path, err)
	}
	return nil
}

func responseError(resp *http.Response) error {
	if resp.StatusCode == http.StatusTooManyRequests {
		seconds, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return NewRateLimitError(time.Duration(seconds) * time.Second)
	}

	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body)

	return NewStatusError(resp.StatusCode, body.Message)
}

// list запрашивает массив записей
func (c *Client) list(ctx context.Context, r request) ([]catalog.RawRecord, error) {
	var raw []catalog.RawRecord
	if err := c.do(ctx, r, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// one запрашивает одну запись. Если бэкенд завернул ее в поле wrapper,
// возвращается вложенный объект.
func (c *Client) one(ctx context.Context, r request, wrapper string) (catalog.RawRecord, error) {
	var raw catalog.RawRecord
	if err := c.do(ctx, r, &raw); err != nil {
		return nil, err
	}
	if nested, ok := raw[wrapper].(map[string]any); ok {
		return catalog.RawRecord(nested), nil
	}
	return raw, nil
}

func (c *Client) logDropped(what string, dropped, kept int) {
	if dropped == 0 {
		return
	}
	c.logger.Warn("dropped malformed records",
		zap.String("resource", what),
		zap.Int("dropped", dropped),
		zap.Int("kept", kept),
	)
}

// retryLogger передает сообщения retryablehttp в zap
type retryLogger struct {
	logger *zap.Logger
}

func (l *retryLogger) fields(kv []interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		// запрос целиком слишком шумный
		if _, isReq := kv[i+1].(*http.Request); isReq {
			continue
		}
		fields = append(fields, zap.Any(key, kv[i+1]))
	}
	return fields
}

func (l *retryLogger) Error(msg string, kv ...interface{}) { l.logger.Error(msg, l.fields(kv)...) }
func (l *retryLogger) Warn(msg string, kv ...interface{})  { l.logger.Warn(msg, l.fields(kv)...) }
func (l *retryLogger) Info(msg string, kv ...interface{})  { l.logger.Debug(msg, l.fields(kv)...) }
func (l *retryLogger) Debug(msg string, kv ...interface{}) { l.logger.Debug(msg, l.fields(kv)...) }
