package bilibili

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/bilibili-mcp/go-bilibili-mcp/src/json"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	defaultReferer   = "https://www.bilibili.com"

	// maxResponseBody caps how much of a response we are willing to decode.
	maxResponseBody = 8 << 20
)

// ErrUnexpectedStatus is wrapped by errors for non-2xx HTTP responses.
var ErrUnexpectedStatus = errors.New("unexpected http status")

// APIError is returned when an endpoint answers with a non-zero code.
type APIError struct {
	Endpoint string
	Code     int
	Message  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bilibili %s: code %d: %s", e.Endpoint, e.Code, e.Message)
}

// Hosts lists the base URLs of the Bilibili services the client talks to.
type Hosts struct {
	API    string `yaml:"api"`
	Search string `yaml:"search"`
	Game   string `yaml:"game"`
	Manga  string `yaml:"manga"`
}

// DefaultHosts returns the production hosts.
func DefaultHosts() Hosts {
	return Hosts{
		API:    "https://api.bilibili.com",
		Search: "https://s.search.bilibili.com",
		Game:   "https://line1-h5-pc-api.biligame.com",
		Manga:  "https://manga.bilibili.com",
	}
}

func (h Hosts) withDefaults() Hosts {
	d := DefaultHosts()
	if h.API == "" {
		h.API = d.API
	}
	if h.Search == "" {
		h.Search = d.Search
	}
	if h.Game == "" {
		h.Game = d.Game
	}
	if h.Manga == "" {
		h.Manga = d.Manga
	}
	h.API = strings.TrimRight(h.API, "/")
	h.Search = strings.TrimRight(h.Search, "/")
	h.Game = strings.TrimRight(h.Game, "/")
	h.Manga = strings.TrimRight(h.Manga, "/")
	return h
}

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	Hosts      Hosts
	Timeout    time.Duration
	UserAgent  string
	RateLimit  float64 // requests per second, 0 disables limiting
	RateBurst  int
	Credential *Credential
	HTTPClient *http.Client
	Logger     func(format string, args ...interface{})
}

// Client calls the Bilibili search endpoints.
type Client struct {
	hosts      Hosts
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
	credential *Credential
	buvid3     string
	wbi        *wbiSigner
	now        func() time.Time
	logger     func(format string, args ...interface{})
}

// NewClient constructs a Client from opts.
func NewClient(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = func(string, ...interface{}) {}
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	c := &Client{
		hosts:      opts.Hosts.withDefaults(),
		httpClient: httpClient,
		userAgent:  ua,
		limiter:    limiter,
		credential: opts.Credential,
		buvid3:     newBuvid3(),
		now:        time.Now,
		logger:     logger,
	}
	c.wbi = newWBISigner(c.fetchWBIKeys, time.Hour)
	return c
}

func (c *Client) logf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger(format, args...)
	}
}

// request describes one outbound call.
type request struct {
	method   string
	url      string
	query    url.Values
	body     any
	signed   bool
	cred     *Credential
	endpoint string
}

// raw performs req and returns the response body.
func (c *Client) raw(ctx context.Context, req request) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit %s: %w", req.endpoint, err)
	}

	query := req.query
	if query == nil {
		query = url.Values{}
	}
	if req.signed {
		mixin, err := c.wbi.mixinKey(ctx)
		if err != nil {
			return nil, fmt.Errorf("wbi key: %w", err)
		}
		query = signQuery(query, mixin, c.now())
	}
	target := req.url
	if len(query) > 0 {
		target += "?" + encodeQuery(query)
	}

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s request: %w", req.endpoint, err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", req.endpoint, err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Referer", defaultReferer)
	httpReq.Header.Set("Accept", "application/json, text/plain, */*")
	cred := req.cred
	if cred == nil {
		cred = c.credential
	}
	for _, ck := range cred.cookies(c.buvid3) {
		httpReq.AddCookie(ck)
	}

	c.logf("%s %s", req.method, req.endpoint)
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", req.endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", req.endpoint, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, req.endpoint, resp.StatusCode)
	}
	return data, nil
}

// envelope is the common {code, message, data} wrapper. Some services use
// "msg" instead of "message".
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Msg     string          `json:"msg"`
	Data    json.RawMessage `json:"data"`
}

func (e envelope) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Msg
}

// data performs req and returns the decoded "data" member.
func (c *Client) data(ctx context.Context, req request) (any, error) {
	body, err := c.raw(ctx, req)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", req.endpoint, err)
	}
	if env.Code != 0 {
		return nil, &APIError{Endpoint: req.endpoint, Code: env.Code, Message: env.message()}
	}
	if len(env.Data) == 0 {
		return nil, nil
	}
	var out any
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, fmt.Errorf("decode %s data: %w", req.endpoint, err)
	}
	return out, nil
}

// document performs req and returns the whole decoded body, for services
// that do not wrap their payload in "data".
func (c *Client) document(ctx context.Context, req request) (map[string]any, error) {
	body, err := c.raw(ctx, req)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", req.endpoint, err)
	}
	if code, ok := out["code"].(float64); ok && code != 0 {
		msg, _ := out["message"].(string)
		if msg == "" {
			msg, _ = out["msg"].(string)
		}
		return nil, &APIError{Endpoint: req.endpoint, Code: int(code), Message: msg}
	}
	return out, nil
}
