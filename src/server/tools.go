package server

import (
	"context"
	"strings"

	"github.com/bilibili-mcp/go-bilibili-mcp/src/search"
	"github.com/bilibili-mcp/go-bilibili-mcp/src/tools"
)

// SearchTools returns the tool list backed by adapter.
func SearchTools(adapter *search.Adapter) []tools.Tool {
	return []tools.Tool{
		{
			Name:        "general_search",
			Description: "Search Bilibili for videos, users, articles and more by keyword.",
			Inputs: tools.ObjectSchema(map[string]interface{}{
				"keyword": tools.Property("string", "Search keyword"),
				"page":    tools.WithDefault(tools.Property("integer", "Page number"), search.DefaultPage),
			}, "keyword"),
			Handler: func(ctx context.Context, in map[string]interface{}) (any, error) {
				a := args(in)
				keyword, err := a.requireString("keyword")
				if err != nil {
					return nil, err
				}
				page, err := a.intOr("page", search.DefaultPage)
				if err != nil {
					return nil, err
				}
				return adapter.GeneralSearch(ctx, keyword, page)
			},
		},
		searchByTypeTool(adapter),
		{
			Name:        "get_default_search_keyword",
			Description: "Get the default keyword shown in the Bilibili search box.",
			Inputs:      tools.ObjectSchema(nil),
			Handler: func(ctx context.Context, _ map[string]interface{}) (any, error) {
				return adapter.GetDefaultSearchKeyword(ctx)
			},
		},
		{
			Name:        "get_hot_search_keywords",
			Description: "Get the current hot search keywords on Bilibili.",
			Inputs:      tools.ObjectSchema(nil),
			Handler: func(ctx context.Context, _ map[string]interface{}) (any, error) {
				return adapter.GetHotSearchKeywords(ctx)
			},
		},
		{
			Name:        "get_suggest_keywords",
			Description: "Get search suggestions for a partial keyword.",
			Inputs: tools.ObjectSchema(map[string]interface{}{
				"keyword": tools.Property("string", "Keyword to complete"),
			}, "keyword"),
			Handler: func(ctx context.Context, in map[string]interface{}) (any, error) {
				keyword, err := args(in).requireString("keyword")
				if err != nil {
					return nil, err
				}
				return adapter.GetSuggestKeywords(ctx, keyword)
			},
		},
		{
			Name:        "search_games",
			Description: "Search the Bilibili game center.",
			Inputs: tools.ObjectSchema(map[string]interface{}{
				"keyword": tools.Property("string", "Game name"),
			}, "keyword"),
			Handler: func(ctx context.Context, in map[string]interface{}) (any, error) {
				keyword, err := args(in).requireString("keyword")
				if err != nil {
					return nil, err
				}
				return adapter.SearchGames(ctx, keyword)
			},
		},
		{
			Name:        "search_manga",
			Description: "Search Bilibili manga. Some results need a logged-in credential.",
			Inputs: tools.ObjectSchema(map[string]interface{}{
				"keyword":   tools.Property("string", "Search keyword"),
				"page_num":  tools.WithDefault(tools.Property("integer", "Page number"), search.DefaultPage),
				"page_size": tools.WithDefault(tools.Property("integer", "Results per page"), search.DefaultMangaPageSize),
				"credential": map[string]interface{}{
					"type":        "object",
					"description": "Login cookies; the configured credential is used when omitted",
					"properties": map[string]interface{}{
						"sessdata":   tools.Property("string", "SESSDATA cookie"),
						"bili_jct":   tools.Property("string", "bili_jct cookie"),
						"buvid3":     tools.Property("string", "buvid3 cookie"),
						"dedeuserid": tools.Property("string", "DedeUserID cookie"),
					},
				},
			}, "keyword"),
			Handler: func(ctx context.Context, in map[string]interface{}) (any, error) {
				a := args(in)
				keyword, err := a.requireString("keyword")
				if err != nil {
					return nil, err
				}
				pageNum, err := a.intOr("page_num", search.DefaultPage)
				if err != nil {
					return nil, err
				}
				pageSize, err := a.intOr("page_size", search.DefaultMangaPageSize)
				if err != nil {
					return nil, err
				}
				cred, err := a.credential("credential")
				if err != nil {
					return nil, err
				}
				return adapter.SearchManga(ctx, keyword, pageNum, pageSize, cred)
			},
		},
		{
			Name:        "search_cheese",
			Description: "Search Bilibili paid courses (cheese).",
			Inputs: tools.ObjectSchema(map[string]interface{}{
				"keyword":   tools.Property("string", "Search keyword"),
				"page_num":  tools.WithDefault(tools.Property("integer", "Page number"), search.DefaultPage),
				"page_size": tools.WithDefault(tools.Property("integer", "Results per page"), search.DefaultCheesePageSize),
				"order": tools.WithEnum(
					tools.WithDefault(tools.Property("string", "Result order"), search.DefaultCheeseOrder),
					search.CheeseOrderNames()),
			}, "keyword"),
			Handler: func(ctx context.Context, in map[string]interface{}) (any, error) {
				a := args(in)
				keyword, err := a.requireString("keyword")
				if err != nil {
					return nil, err
				}
				pageNum, err := a.intOr("page_num", search.DefaultPage)
				if err != nil {
					return nil, err
				}
				pageSize, err := a.intOr("page_size", search.DefaultCheesePageSize)
				if err != nil {
					return nil, err
				}
				order, err := a.optString("order")
				if err != nil {
					return nil, err
				}
				return adapter.SearchCheese(ctx, keyword, pageNum, pageSize, order)
			},
		},
	}
}

// searchByTypeTool reports every argument problem as an ErrorResult payload
// rather than a call failure.
func searchByTypeTool(adapter *search.Adapter) tools.Tool {
	return tools.Tool{
		Name: "search_by_type",
		Description: "Search Bilibili for one kind of content. search_type is one of " +
			strings.Join(search.SearchTypeNames(), ", ") +
			"; order_type, video_zone_type and category_id depend on the kind.",
		Inputs: tools.ObjectSchema(map[string]interface{}{
			"keyword":         tools.Property("string", "Search keyword"),
			"search_type":     tools.WithEnum(tools.Property("string", "Kind of content, case-insensitive"), search.SearchTypeNames()),
			"order_type":      tools.Property("string", "Result order, e.g. TOTALRANK, PUBDATE, CLICK, FANS, ONLINE"),
			"order_sort":      tools.Property("integer", "User search sort direction: 0 descending, 1 ascending"),
			"time_range":      tools.WithDefault(tools.Property("integer", "Video length in minutes used to pick a duration filter; -1 for any"), search.DefaultTimeRange),
			"video_zone_type": tools.Property("string", "Video zone name, e.g. DOUGA_MMD (VIDEO only)"),
			"category_id":     tools.Property("string", "Article or photo category name or numeric code (ARTICLE and PHOTO only)"),
			"time_start":      tools.Property("string", "Publish date lower bound, YYYY-MM-DD"),
			"time_end":        tools.Property("string", "Publish date upper bound, YYYY-MM-DD"),
			"page":            tools.WithDefault(tools.Property("integer", "Page number"), search.DefaultPage),
			"page_size":       tools.WithDefault(tools.Property("integer", "Results per page"), search.DefaultTypePageSize),
		}, "keyword", "search_type"),
		Handler: func(ctx context.Context, in map[string]interface{}) (any, error) {
			req, err := typeSearchRequest(args(in))
			if err != nil {
				return search.NewErrorResult(err.Error()), nil
			}
			res, errRes := adapter.SearchByType(ctx, req)
			if errRes != nil {
				return errRes, nil
			}
			return res, nil
		},
	}
}

func typeSearchRequest(a args) (search.TypeSearchRequest, error) {
	var (
		req search.TypeSearchRequest
		err error
	)
	if req.Keyword, err = a.requireString("keyword"); err != nil {
		return req, err
	}
	if req.SearchType, err = a.requireString("search_type"); err != nil {
		return req, err
	}
	if req.OrderType, err = a.optString("order_type"); err != nil {
		return req, err
	}
	if req.OrderSort, err = a.optInt("order_sort"); err != nil {
		return req, err
	}
	if req.TimeRange, err = a.intOr("time_range", search.DefaultTimeRange); err != nil {
		return req, err
	}
	if req.VideoZoneType, err = a.optString("video_zone_type"); err != nil {
		return req, err
	}
	if req.Category, err = a.category("category_id"); err != nil {
		return req, err
	}
	if req.TimeStart, err = a.optString("time_start"); err != nil {
		return req, err
	}
	if req.TimeEnd, err = a.optString("time_end"); err != nil {
		return req, err
	}
	if req.Page, err = a.intOr("page", search.DefaultPage); err != nil {
		return req, err
	}
	if req.PageSize, err = a.intOr("page_size", search.DefaultTypePageSize); err != nil {
		return req, err
	}
	return req, nil
}
