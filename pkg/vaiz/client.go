// Пакет vaiz содержит клиент API Vaiz: документы, задачи, комментарии, доски,
// проекты, вехи, пространство и загрузка файлов.
//
// Все методы выполняют POST {baseURL}/{endpoint} с JSON телом и заголовками авторизации.
// Ошибка в теле ответа (поле error) приводится к классам из pkg/apierrors,
// сетевые ошибки и неуспешные статусы возвращаются как *apierrors.HTTPError.
//
// Основные возможности:
//   - Повтор запросов через go-retryablehttp: сетевые ошибки и 429 для всех
//     эндпоинтов, ответы 5xx только для чтения (get*). Изменяющие запросы
//     при 5xx не повторяются.
//   - Проверка запросов валидатором до отправки.
//   - Кеш getTasks с ограниченным временем жизни.
//   - Метрики prometheus по каждому эндпоинту.
package vaiz

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	taskscache "github.com/aisa-it/vaiz.go/internal/vaiz/tasks-cache"
	"github.com/aisa-it/vaiz.go/pkg/apierrors"
	"github.com/go-playground/validator"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/prometheus/client_golang/prometheus"
)

const DefaultBaseURL = "https://api.vaiz.com/v4"

// version подставляется при сборке через -ldflags
var version = "DEV"

func Version() string {
	return version
}

type Config struct {
	APIKey  string
	SpaceID string
	// BaseURL по умолчанию DefaultBaseURL
	BaseURL string
	// InsecureSkipVerify отключает проверку TLS сертификата
	InsecureSkipVerify bool
	// Verbose логирует тела запросов и ответов
	Verbose bool
	// CacheTTL время жизни кеша getTasks, по умолчанию 5 минут
	CacheTTL time.Duration
}

type Client struct {
	apiKey     string
	spaceID    string
	baseURL    string
	appVersion string
	verbose    bool

	http      *retryablehttp.Client
	validator *validator.Validate
	cache     *taskscache.TasksCache
	metrics   *clientMetrics
	log       *slog.Logger
}

type Option func(*Client)

// WithRetryMax количество повторов запроса, правила повтора описаны в retryPolicy
func WithRetryMax(n int) Option {
	return func(c *Client) {
		c.http.RetryMax = n
	}
}

func WithRetryWait(min, max time.Duration) Option {
	return func(c *Client) {
		c.http.RetryWaitMin = min
		c.http.RetryWaitMax = max
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
		c.http.Logger = l
	}
}

// WithRegisterer регистрирует метрики клиента. Без этой опции метрики считаются, но не публикуются.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(c *Client) {
		if err := c.metrics.register(r); err != nil {
			c.log.Error("Register vaiz client metrics", "err", err)
		}
	}
}

func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, apierrors.ErrInvalidRequest.WithFormattedMessage("api key is required")
	}
	if cfg.SpaceID == "" {
		return nil, apierrors.ErrInvalidRequest.WithFormattedMessage("space id is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	cl := retryablehttp.NewClient()
	cl.RetryMax = 5
	cl.Logger = slog.Default()
	cl.ErrorHandler = retryablehttp.PassthroughErrorHandler
	cl.CheckRetry = retryPolicy
	if cfg.InsecureSkipVerify {
		if tr, ok := cl.HTTPClient.Transport.(*http.Transport); ok {
			tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		}
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		spaceID:    cfg.SpaceID,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		appVersion: "go-sdk-" + version,
		verbose:    cfg.Verbose,
		http:       cl,
		validator:  validator.New(),
		cache:      taskscache.NewTasksCache(cfg.CacheTTL),
		metrics:    newClientMetrics(),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// retryPolicy повторяет сетевые ошибки и 429 для любого запроса.
// Ответ 5xx повторяется только для чтения, иначе сервер мог уже применить изменение.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil || resp == nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return true, nil
	case resp.StatusCode >= http.StatusInternalServerError && resp.StatusCode != http.StatusNotImplemented:
		return readOnly(resp.Request), nil
	}
	return false, nil
}

// readOnly GET запросы и эндпоинты get*
func readOnly(req *http.Request) bool {
	if req == nil {
		return false
	}
	if req.Method == http.MethodGet {
		return true
	}
	return strings.HasPrefix(path.Base(req.URL.Path), "get")
}

func (c *Client) SpaceID() string {
	return c.spaceID
}

// TasksCache кеш getTasks, используется для периодической очистки
func (c *Client) TasksCache() *taskscache.TasksCache {
	return c.cache
}

func (c *Client) setHeaders(h http.Header) {
	h.Set("Authorization", "Bearer "+c.apiKey)
	h.Set("current-space-id", c.spaceID)
	h.Set("app-version", c.appVersion)
}

func (c *Client) validate(req any) error {
	if err := c.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return apierrors.ErrInvalidRequest.WithFormattedMessage(verrs.Error())
		}
		return err
	}
	return nil
}

// post выполняет запрос к эндпоинту. payload == nil отправляет запрос без тела, out == nil пропускает разбор ответа.
func (c *Client) post(ctx context.Context, endpoint string, payload any, out any) error {
	var body []byte
	if payload != nil {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("encode %s request: %w", endpoint, err)
		}
		body = bytes.TrimRight(buf.Bytes(), "\n")
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	c.setHeaders(req.Header)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.verbose {
		c.log.Info("Request payload", "endpoint", endpoint, "payload", string(body))
	}
	return c.send(req, endpoint, out)
}

// postMultipart отправляет заранее собранное multipart тело
func (c *Client) postMultipart(ctx context.Context, endpoint string, body *bytes.Buffer, contentType string, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, body.Bytes())
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	c.setHeaders(req.Header)
	req.Header.Set("Content-Type", contentType)
	return c.send(req, endpoint, out)
}

func (c *Client) send(req *retryablehttp.Request, endpoint string, out any) error {
	start := time.Now()
	status := "ok"
	defer func() {
		c.metrics.observe(endpoint, status, time.Since(start))
	}()

	url := req.URL.String()
	// после исчерпания повторов приходит и ответ, и ошибка; ответ важнее
	resp, err := c.http.Do(req)
	if resp == nil {
		status = "http_error"
		return &apierrors.HTTPError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		status = "http_error"
		return &apierrors.HTTPError{StatusCode: resp.StatusCode, URL: url, Err: err}
	}

	if c.verbose {
		c.log.Info("Response data", "endpoint", endpoint, "status", resp.StatusCode, "body", string(data))
	}

	if apiErr := parseAPIError(data); apiErr != nil {
		status = "api_error"
		return apiErr
	}

	if resp.StatusCode >= http.StatusBadRequest {
		status = "http_error"
		return &apierrors.HTTPError{StatusCode: resp.StatusCode, URL: url, Body: string(data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		status = "decode_error"
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

// parseAPIError возвращает ошибку из поля error ответа. Пустой код заменяется на UnknownError.
func parseAPIError(data []byte) *apierrors.APIError {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil
	}
	raw := bytes.TrimSpace(envelope.Error)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte("false")) {
		return nil
	}

	apiErr := &apierrors.APIError{}
	if err := json.Unmarshal(raw, apiErr); err != nil {
		// error пришел строкой или в другом формате
		apiErr.Meta.Description = strings.Trim(string(raw), `"`)
	}
	if apiErr.Code == "" {
		apiErr.Code = "UnknownError"
	}
	return apiErr
}
