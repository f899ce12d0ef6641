// Package search translates loosely typed tool arguments into Bilibili
// search calls.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/bilibili-mcp/go-bilibili-mcp/src/bilibili"
)

const (
	DefaultPage           = 1
	DefaultTimeRange      = -1
	DefaultTypePageSize   = 42
	DefaultMangaPageSize  = 9
	DefaultCheesePageSize = 30
	DefaultCheeseOrder    = "RECOMMEND"

	dateFormatMessage = "invalid time format, expected 'YYYY-MM-DD'"
)

// Searcher is the subset of the Bilibili client the adapter delegates to.
type Searcher interface {
	Search(ctx context.Context, keyword string, page int) (any, error)
	SearchByType(ctx context.Context, p bilibili.TypeSearchParams) (any, error)
	GetDefaultSearchKeyword(ctx context.Context) (any, error)
	GetHotSearchKeywords(ctx context.Context) (map[string]any, error)
	GetSuggestKeywords(ctx context.Context, keyword string) ([]string, error)
	SearchGames(ctx context.Context, keyword string) (any, error)
	SearchManga(ctx context.Context, keyword string, pageNum, pageSize int, cred *bilibili.Credential) (any, error)
	SearchCheese(ctx context.Context, keyword string, pageNum, pageSize int, order bilibili.OrderCheese) (any, error)
}

// CategoryRef is an article/photo category given by name or numeric code.
type CategoryRef struct {
	Name string
	Code *int
}

// CategoryCode refers to a category by its numeric code.
func CategoryCode(code int) CategoryRef { return CategoryRef{Code: &code} }

// CategoryName refers to a category by name.
func CategoryName(name string) CategoryRef { return CategoryRef{Name: name} }

// IsSet reports whether any category was given.
func (c CategoryRef) IsSet() bool { return c.Code != nil || c.Name != "" }

// TypeSearchRequest holds the raw arguments of search_by_type.
type TypeSearchRequest struct {
	Keyword       string
	SearchType    string
	OrderType     string
	OrderSort     *int
	TimeRange     int
	VideoZoneType string
	Category      CategoryRef
	TimeStart     string
	TimeEnd       string
	Page          int
	PageSize      int
}

// Adapter validates tool arguments and delegates to a Searcher. It keeps no
// state between calls.
type Adapter struct {
	client Searcher
	logger func(format string, args ...interface{})
}

// NewAdapter returns an Adapter delegating to client.
func NewAdapter(client Searcher, logger func(format string, args ...interface{})) *Adapter {
	if logger == nil {
		logger = func(string, ...interface{}) {}
	}
	return &Adapter{client: client, logger: logger}
}

// GeneralSearch runs a basic keyword search. Client errors are returned
// unchanged.
func (a *Adapter) GeneralSearch(ctx context.Context, keyword string, page int) (any, error) {
	return a.client.Search(ctx, keyword, page)
}

// SearchByType validates req and runs a typed search. Exactly one of the
// results is non-nil; client failures are folded into the ErrorResult.
func (a *Adapter) SearchByType(ctx context.Context, req TypeSearchRequest) (any, *ErrorResult) {
	params, errRes := a.resolve(req)
	if errRes != nil {
		a.logger("search_by_type rejected: %s", errRes.Message)
		return nil, errRes
	}
	res, err := a.client.SearchByType(ctx, params)
	if err != nil {
		a.logger("search_by_type failed: %v", err)
		return nil, NewErrorResult(fmt.Sprintf("search failed: %v", err))
	}
	return res, nil
}

// resolve runs the validation pipeline: kind, order, zone, category, dates.
func (a *Adapter) resolve(req TypeSearchRequest) (bilibili.TypeSearchParams, *ErrorResult) {
	var p bilibili.TypeSearchParams

	kind, errRes := searchTypes.resolve(req.SearchType)
	if errRes != nil {
		return p, errRes
	}

	var order bilibili.SearchOrder
	if req.OrderType != "" {
		order, errRes = orderTable(kind).resolve(req.OrderType)
		if errRes != nil {
			return p, errRes
		}
	}

	var zone *bilibili.VideoZoneType
	if req.VideoZoneType != "" && kind == bilibili.SearchObjectVideo {
		z, errRes := videoZones.resolve(req.VideoZoneType)
		if errRes != nil {
			return p, errRes
		}
		zone = &z
	}

	var category *int
	if req.Category.IsSet() && (kind == bilibili.SearchObjectArticle || kind == bilibili.SearchObjectPhoto) {
		if req.Category.Code != nil {
			code := *req.Category.Code
			category = &code
		} else {
			categories := articleCategories
			if kind == bilibili.SearchObjectPhoto {
				categories = photoCategories
			}
			code, errRes := categories.resolve(req.Category.Name)
			if errRes != nil {
				return p, errRes
			}
			category = &code
		}
	}

	if req.TimeStart != "" && req.TimeEnd != "" {
		if strings.Count(req.TimeStart, "-") != 2 || strings.Count(req.TimeEnd, "-") != 2 {
			return p, NewErrorResult(dateFormatMessage)
		}
	}

	return bilibili.TypeSearchParams{
		Keyword:    req.Keyword,
		Type:       kind,
		Order:      order,
		OrderSort:  req.OrderSort,
		TimeRange:  req.TimeRange,
		Zone:       zone,
		CategoryID: category,
		TimeStart:  req.TimeStart,
		TimeEnd:    req.TimeEnd,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}, nil
}

// GetDefaultSearchKeyword returns the default search box keyword.
func (a *Adapter) GetDefaultSearchKeyword(ctx context.Context) (any, error) {
	return a.client.GetDefaultSearchKeyword(ctx)
}

// GetHotSearchKeywords returns the trending keywords.
func (a *Adapter) GetHotSearchKeywords(ctx context.Context) (map[string]any, error) {
	return a.client.GetHotSearchKeywords(ctx)
}

// GetSuggestKeywords returns completion suggestions, never nil on success.
func (a *Adapter) GetSuggestKeywords(ctx context.Context, keyword string) ([]string, error) {
	out, err := a.client.GetSuggestKeywords(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// SearchGames searches the game center by name.
func (a *Adapter) SearchGames(ctx context.Context, keyword string) (any, error) {
	return a.client.SearchGames(ctx, keyword)
}

// SearchManga forwards cred only when it carries a cookie.
func (a *Adapter) SearchManga(ctx context.Context, keyword string, pageNum, pageSize int, cred *bilibili.Credential) (any, error) {
	if cred.IsEmpty() {
		cred = nil
	}
	return a.client.SearchManga(ctx, keyword, pageNum, pageSize, cred)
}

// SearchCheese resolves order and searches courses. An unknown order is
// returned as an *ErrorResult error.
func (a *Adapter) SearchCheese(ctx context.Context, keyword string, pageNum, pageSize int, order string) (any, error) {
	if order == "" {
		order = DefaultCheeseOrder
	}
	o, errRes := cheeseOrders.resolve(order)
	if errRes != nil {
		return nil, errRes
	}
	return a.client.SearchCheese(ctx, keyword, pageNum, pageSize, o)
}
