// Package client calls the tutorials API. Failures never reach the caller: they are logged,
// reported through the Notifier, and replaced by an empty slice, nil or false.
package client

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

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"tutorials/config"
	"tutorials/infras/otel"
	"tutorials/shared/constant"
)

const (
	MessageLoadFailed          = "Failed to load tutorials"
	MessageLoadOneFailed       = "Failed to load tutorial #%d"
	MessageLoadPublishedFailed = "Failed to load published tutorials"
	MessageCreated             = "Tutorial created successfully"
	MessageCreateFailed        = "Failed to create tutorial"
	MessageUpdated             = "Tutorial updated successfully"
	MessageUpdateFailed        = "Failed to update tutorial"
	MessageDeleted             = "Tutorial deleted successfully"
	MessageDeleteFailed        = "Failed to delete tutorial"
	MessageDeletedAll          = "All tutorials deleted successfully"
	MessageDeleteAllFailed     = "Failed to delete all tutorials"
)

const (
	cacheKeyAll       = "all"
	cacheKeyPublished = "published"
	cacheKeyOne       = "one"
	pathPublished     = "published"
)

var errUnexpectedStatus = errors.New("unexpected status")

type Tutorial struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// Notifier surfaces user facing outcomes of calls.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

type Option func(*Tutorials)

// WithHTTPClient replaces the instrumented default client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(t *Tutorials) {
		t.http = httpClient
	}
}

func WithNotifier(notifier Notifier) Option {
	return func(t *Tutorials) {
		t.notifier = notifier
	}
}

type Tutorials struct {
	baseURL  string
	http     *http.Client
	notifier Notifier
	cache    *expirable.LRU[string, any]
	otel     otel.Otel
}

func New(cfg *config.Config, otl otel.Otel, opts ...Option) *Tutorials {
	tutorials := &Tutorials{
		baseURL:  strings.TrimRight(cfg.Client.APIURL, "/"),
		notifier: nopNotifier{},
		otel:     otl,
		http: &http.Client{
			Timeout:   time.Duration(cfg.Client.TimeoutSeconds) * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		cache: expirable.NewLRU[string, any](
			max(cfg.Client.CacheSize, 1),
			nil,
			time.Duration(cfg.Client.CacheTTLSeconds)*time.Second,
		),
	}

	for _, opt := range opts {
		opt(tutorials)
	}

	return tutorials
}

func cacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

func (t *Tutorials) GetAll(ctx context.Context, title string) []Tutorial {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".GetAll")
	defer scope.End()

	key := cacheKey(cacheKeyAll, title)
	if cached, ok := t.cache.Get(key); ok {
		return cloneList(cached.([]Tutorial))
	}

	endpoint := t.baseURL
	if title != "" {
		endpoint += "?" + url.Values{constant.RequestParamTitle: {title}}.Encode()
	}

	tutorials := []Tutorial{}
	if err := t.do(ctx, http.MethodGet, endpoint, nil, &tutorials); err != nil {
		scope.TraceError(err)

		return t.failList(err, MessageLoadFailed)
	}

	if tutorials == nil {
		tutorials = []Tutorial{}
	}

	t.cache.Add(key, cloneList(tutorials))

	return tutorials
}

func (t *Tutorials) GetPublished(ctx context.Context) []Tutorial {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".GetPublished")
	defer scope.End()

	if cached, ok := t.cache.Get(cacheKeyPublished); ok {
		return cloneList(cached.([]Tutorial))
	}

	tutorials := []Tutorial{}
	if err := t.do(ctx, http.MethodGet, t.baseURL+"/"+pathPublished, nil, &tutorials); err != nil {
		scope.TraceError(err)

		return t.failList(err, MessageLoadPublishedFailed)
	}

	if tutorials == nil {
		tutorials = []Tutorial{}
	}

	t.cache.Add(cacheKeyPublished, cloneList(tutorials))

	return tutorials
}

func (t *Tutorials) Get(ctx context.Context, id int64) *Tutorial {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".Get")
	defer scope.End()

	key := cacheKey(cacheKeyOne, strconv.FormatInt(id, 10))
	if cached, ok := t.cache.Get(key); ok {
		tutorial := cached.(Tutorial)

		return &tutorial
	}

	var tutorial Tutorial
	if err := t.do(ctx, http.MethodGet, t.itemURL(id), nil, &tutorial); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to fetch tutorial")
		t.notifier.Error(fmt.Sprintf(MessageLoadOneFailed, id))

		return nil
	}

	t.cache.Add(key, tutorial)

	return &tutorial
}

func (t *Tutorials) Create(ctx context.Context, tutorial Tutorial) *Tutorial {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".Create")
	defer scope.End()

	var created Tutorial
	if err := t.do(ctx, http.MethodPost, t.baseURL, writable(tutorial), &created); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create tutorial")
		t.notifier.Error(MessageCreateFailed)

		return nil
	}

	t.mutated(MessageCreated)

	return &created
}

func (t *Tutorials) Update(ctx context.Context, id int64, tutorial Tutorial) bool {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".Update")
	defer scope.End()

	if err := t.do(ctx, http.MethodPut, t.itemURL(id), writable(tutorial), nil); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update tutorial")
		t.notifier.Error(MessageUpdateFailed)

		return false
	}

	t.mutated(MessageUpdated)

	return true
}

func (t *Tutorials) Delete(ctx context.Context, id int64) bool {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".Delete")
	defer scope.End()

	if err := t.do(ctx, http.MethodDelete, t.itemURL(id), nil, nil); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete tutorial")
		t.notifier.Error(MessageDeleteFailed)

		return false
	}

	t.mutated(MessageDeleted)

	return true
}

func (t *Tutorials) DeleteAll(ctx context.Context) bool {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".DeleteAll")
	defer scope.End()

	if err := t.do(ctx, http.MethodDelete, t.baseURL, nil, nil); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete all tutorials")
		t.notifier.Error(MessageDeleteAllFailed)

		return false
	}

	t.mutated(MessageDeletedAll)

	return true
}

func (t *Tutorials) itemURL(id int64) string {
	return t.baseURL + "/" + strconv.FormatInt(id, 10)
}

func (t *Tutorials) failList(err error, message string) []Tutorial {
	log.Error().Err(err).Msg("failed to fetch tutorials")
	t.notifier.Error(message)

	return []Tutorial{}
}

// mutated drops every cached read so the next query sees the change.
func (t *Tutorials) mutated(message string) {
	t.cache.Purge()
	t.notifier.Success(message)
}

func (t *Tutorials) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	res, err := t.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, endpoint, err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s %s returned %d", errUnexpectedStatus, method, endpoint, res.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)

		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// writable strips the server maintained fields from a request body.
func writable(tutorial Tutorial) Tutorial {
	return Tutorial{
		Title:       tutorial.Title,
		Description: tutorial.Description,
		Published:   tutorial.Published,
	}
}

func cloneList(tutorials []Tutorial) []Tutorial {
	cloned := make([]Tutorial, len(tutorials))
	copy(cloned, tutorials)

	return cloned
}
