package bilibili

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bilibili-mcp/go-bilibili-mcp/src/json"
)

// dateLayout is the accepted format of TypeSearchParams.TimeStart/TimeEnd.
const dateLayout = "2006-01-02"

// searchZone is the timezone publish dates are interpreted in.
var searchZone = time.FixedZone("CST", 8*60*60)

// TypeSearchParams are the resolved arguments of a typed search. Optional
// values are nil or empty when not set.
type TypeSearchParams struct {
	Keyword    string
	Type       SearchObjectType
	Order      SearchOrder
	OrderSort  *int
	TimeRange  int
	Zone       *VideoZoneType
	CategoryID *int
	TimeStart  string
	TimeEnd    string
	Page       int
	PageSize   int
}

// Search runs the comprehensive keyword search.
func (c *Client) Search(ctx context.Context, keyword string, page int) (any, error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("page", strconv.Itoa(page))
	return c.data(ctx, request{
		method:   http.MethodGet,
		url:      c.hosts.API + "/x/web-interface/wbi/search/all/v2",
		query:    q,
		signed:   true,
		endpoint: "search",
	})
}

// SearchByType runs a search restricted to one content kind.
func (c *Client) SearchByType(ctx context.Context, p TypeSearchParams) (any, error) {
	q := url.Values{}
	q.Set("keyword", p.Keyword)
	q.Set("search_type", string(p.Type))
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("page_size", strconv.Itoa(p.PageSize))
	if p.Order != nil {
		q.Set("order", p.Order.QueryValue())
	}
	switch p.Type {
	case SearchObjectVideo:
		q.Set("duration", strconv.Itoa(durationBucket(p.TimeRange)))
		if p.Zone != nil {
			q.Set("tids", strconv.Itoa(int(*p.Zone)))
		}
	case SearchObjectUser:
		if p.OrderSort != nil {
			q.Set("order_sort", strconv.Itoa(*p.OrderSort))
		}
	case SearchObjectArticle, SearchObjectPhoto:
		if p.CategoryID != nil {
			q.Set("category_id", strconv.Itoa(*p.CategoryID))
		}
	}
	if p.TimeStart != "" && p.TimeEnd != "" {
		begin, end, err := pubtimeRange(p.TimeStart, p.TimeEnd)
		if err != nil {
			return nil, err
		}
		q.Set("pubtime_begin_s", strconv.FormatInt(begin, 10))
		q.Set("pubtime_end_s", strconv.FormatInt(end, 10))
	}
	return c.data(ctx, request{
		method:   http.MethodGet,
		url:      c.hosts.API + "/x/web-interface/wbi/search/type",
		query:    q,
		signed:   true,
		endpoint: "search_by_type",
	})
}

// durationBucket maps a length in minutes onto the duration filter:
// 0 any, 1 up to 10, 2 up to 30, 3 up to 60, 4 longer.
func durationBucket(minutes int) int {
	switch {
	case minutes > 60:
		return 4
	case minutes > 30:
		return 3
	case minutes > 10:
		return 2
	case minutes > 0:
		return 1
	default:
		return 0
	}
}

// pubtimeRange converts two YYYY-MM-DD dates into an inclusive range of Unix
// seconds.
func pubtimeRange(start, end string) (int64, int64, error) {
	s, err := time.ParseInLocation(dateLayout, start, searchZone)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time_start %q: %w", start, err)
	}
	e, err := time.ParseInLocation(dateLayout, end, searchZone)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time_end %q: %w", end, err)
	}
	return s.Unix(), e.Add(24*time.Hour - time.Second).Unix(), nil
}

// GetDefaultSearchKeyword returns the placeholder keyword of the search box.
func (c *Client) GetDefaultSearchKeyword(ctx context.Context) (any, error) {
	return c.data(ctx, request{
		method:   http.MethodGet,
		url:      c.hosts.API + "/x/web-interface/wbi/search/default",
		signed:   true,
		endpoint: "default_search_keyword",
	})
}

// GetHotSearchKeywords returns the trending search list.
func (c *Client) GetHotSearchKeywords(ctx context.Context) (map[string]any, error) {
	return c.document(ctx, request{
		method:   http.MethodGet,
		url:      c.hosts.Search + "/main/hotword",
		endpoint: "hot_search_keywords",
	})
}

// GetSuggestKeywords returns completion suggestions for keyword. The result
// is never nil.
func (c *Client) GetSuggestKeywords(ctx context.Context, keyword string) ([]string, error) {
	q := url.Values{}
	q.Set("term", keyword)
	q.Set("main_ver", "v1")
	body, err := c.raw(ctx, request{
		method:   http.MethodGet,
		url:      c.hosts.Search + "/main/suggest",
		query:    q,
		endpoint: "suggest_keywords",
	})
	if err != nil {
		return nil, err
	}
	return parseSuggestions(body)
}

type suggestion struct {
	Value string `json:"value"`
}

// parseSuggestions accepts both {"result":{"tag":[...]}} and the legacy
// {"0":{...},"1":{...}} shape.
func parseSuggestions(body []byte) ([]string, error) {
	out := []string{}
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" || trimmed == "[]" {
		return out, nil
	}

	var modern struct {
		Result *struct {
			Tag []suggestion `json:"tag"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &modern); err == nil && modern.Result != nil {
		for _, s := range modern.Result.Tag {
			out = append(out, s.Value)
		}
		return out, nil
	}

	var legacy map[string]json.RawMessage
	if err := json.Unmarshal(body, &legacy); err != nil {
		return nil, fmt.Errorf("decode suggest_keywords response: %w", err)
	}
	type indexed struct {
		idx   int
		value string
	}
	var items []indexed
	for k, raw := range legacy {
		idx, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		var s suggestion
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		items = append(items, indexed{idx, s.Value})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].idx < items[j].idx })
	for _, it := range items {
		out = append(out, it.value)
	}
	return out, nil
}

// SearchGames searches the game center.
func (c *Client) SearchGames(ctx context.Context, keyword string) (any, error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	return c.data(ctx, request{
		method:   http.MethodGet,
		url:      c.hosts.Game + "/game/center/h5/search/game_name",
		query:    q,
		endpoint: "search_games",
	})
}

// SearchManga searches comics. cred overrides the client credential when
// non-empty.
func (c *Client) SearchManga(ctx context.Context, keyword string, pageNum, pageSize int, cred *Credential) (any, error) {
	q := url.Values{}
	q.Set("device", "pc")
	q.Set("platform", "web")
	req := request{
		method: http.MethodPost,
		url:    c.hosts.Manga + "/twirp/comic.v1.Comic/Search",
		query:  q,
		body: map[string]any{
			"key_word":  keyword,
			"page_num":  pageNum,
			"page_size": pageSize,
		},
		endpoint: "search_manga",
	}
	if !cred.IsEmpty() {
		req.cred = cred
	}
	return c.data(ctx, req)
}

// SearchCheese searches paid courses.
func (c *Client) SearchCheese(ctx context.Context, keyword string, pageNum, pageSize int, order OrderCheese) (any, error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("page", strconv.Itoa(pageNum))
	q.Set("page_size", strconv.Itoa(pageSize))
	q.Set("sort_type", strconv.Itoa(int(order)))
	return c.data(ctx, request{
		method:   http.MethodGet,
		url:      c.hosts.API + "/pugv/app/web/search",
		query:    q,
		endpoint: "search_cheese",
	})
}
