package bilibili

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/bilibili-mcp/go-bilibili-mcp/src/json"
)

var mixinKeyEncTab = [...]int{
	46, 47, 18, 2, 53, 8, 23, 32, 15, 50, 10, 31, 58, 3, 45, 35, 27, 43, 5, 49,
	33, 9, 42, 19, 29, 28, 14, 39, 12, 38, 41, 13, 37, 48, 7, 16, 24, 55, 40,
	61, 26, 17, 0, 1, 60, 51, 30, 4, 22, 25, 54, 21, 56, 59, 6, 63, 57, 62, 11,
	36, 20, 34, 44, 52,
}

// wbiFetchTimeout bounds a key refresh, which runs detached from the
// context of the caller that started it.
const wbiFetchTimeout = 30 * time.Second

// wbiSigner caches the mixin key used to sign /wbi/ endpoints.
type wbiSigner struct {
	mu      sync.Mutex
	key     string
	fetched time.Time
	ttl     time.Duration
	timeout time.Duration
	group   singleflight.Group
	fetch   func(ctx context.Context) (imgKey, subKey string, err error)
	now     func() time.Time
}

func newWBISigner(fetch func(ctx context.Context) (string, string, error), ttl time.Duration) *wbiSigner {
	return &wbiSigner{fetch: fetch, ttl: ttl, timeout: wbiFetchTimeout, now: time.Now}
}

// mixinKey returns the cached key, refreshing it once across concurrent
// callers when it is missing or stale. Each caller stops waiting when its own
// ctx is done; the shared refresh keeps running for the others.
func (s *wbiSigner) mixinKey(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.key != "" && s.now().Sub(s.fetched) < s.ttl {
		key := s.key
		s.mu.Unlock()
		return key, nil
	}
	s.mu.Unlock()

	ch := s.group.DoChan("wbi", func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		imgKey, subKey, err := s.fetch(fetchCtx)
		if err != nil {
			return "", err
		}
		key := mixinKey(imgKey, subKey)
		s.mu.Lock()
		s.key = key
		s.fetched = s.now()
		s.mu.Unlock()
		return key, nil
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// mixinKey scrambles imgKey+subKey through the encoding table and keeps the
// first 32 characters.
func mixinKey(imgKey, subKey string) string {
	raw := imgKey + subKey
	var b strings.Builder
	for _, i := range mixinKeyEncTab {
		if i < len(raw) {
			b.WriteByte(raw[i])
		}
	}
	key := b.String()
	if len(key) > 32 {
		key = key[:32]
	}
	return key
}

// signQuery returns a copy of q with wts and w_rid added.
func signQuery(q url.Values, mixin string, now time.Time) url.Values {
	signed := url.Values{}
	for k, vs := range q {
		for _, v := range vs {
			signed.Add(k, sanitizeWBIValue(v))
		}
	}
	signed.Set("wts", strconv.FormatInt(now.Unix(), 10))
	sum := md5.Sum([]byte(encodeQuery(signed) + mixin))
	signed.Set("w_rid", hex.EncodeToString(sum[:]))
	return signed
}

// sanitizeWBIValue drops the characters the signature algorithm filters out.
func sanitizeWBIValue(v string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '!', '\'', '(', ')', '*':
			return -1
		}
		return r
	}, v)
}

// encodeQuery encodes q sorted by key with spaces as %20, the form the
// signature is computed over.
func encodeQuery(q url.Values) string {
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		for _, v := range q[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(k))
			b.WriteByte('=')
			b.WriteString(strings.ReplaceAll(url.QueryEscape(v), "+", "%20"))
		}
	}
	return b.String()
}

// fetchWBIKeys reads img_key and sub_key from the nav endpoint. The endpoint
// answers -101 for anonymous callers but still carries the keys.
func (c *Client) fetchWBIKeys(ctx context.Context) (string, string, error) {
	body, err := c.raw(ctx, request{
		method:   "GET",
		url:      c.hosts.API + "/x/web-interface/nav",
		endpoint: "nav",
	})
	if err != nil {
		return "", "", err
	}
	imgURL := json.Get(body, "data", "wbi_img", "img_url").ToString()
	subURL := json.Get(body, "data", "wbi_img", "sub_url").ToString()
	if imgURL == "" || subURL == "" {
		return "", "", errors.New("nav response carries no wbi_img keys")
	}
	imgKey, subKey := keyFromURL(imgURL), keyFromURL(subURL)
	if imgKey == "" || subKey == "" {
		return "", "", fmt.Errorf("malformed wbi_img urls %q %q", imgURL, subURL)
	}
	c.logf("refreshed wbi keys")
	return imgKey, subKey, nil
}

func keyFromURL(u string) string {
	base := path.Base(u)
	return strings.TrimSuffix(base, path.Ext(base))
}
