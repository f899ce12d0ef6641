package search

import (
	"github.com/bilibili-mcp/go-bilibili-mcp/src/bilibili"
)

var searchTypes = newTable("search type", "valid_types",
	opt("VIDEO", bilibili.SearchObjectVideo),
	opt("BANGUMI", bilibili.SearchObjectBangumi),
	opt("FT", bilibili.SearchObjectFT),
	opt("LIVE", bilibili.SearchObjectLive),
	opt("ARTICLE", bilibili.SearchObjectArticle),
	opt("TOPIC", bilibili.SearchObjectTopic),
	opt("USER", bilibili.SearchObjectUser),
	opt("LIVEUSER", bilibili.SearchObjectLiveUser),
	opt("PHOTO", bilibili.SearchObjectPhoto),
)

var (
	videoOrders = newTable[bilibili.SearchOrder]("order type", "valid_orders",
		opt[bilibili.SearchOrder]("TOTALRANK", bilibili.OrderVideoTotalRank),
		opt[bilibili.SearchOrder]("PUBDATE", bilibili.OrderVideoPubDate),
		opt[bilibili.SearchOrder]("CLICK", bilibili.OrderVideoClick),
		opt[bilibili.SearchOrder]("DM", bilibili.OrderVideoDM),
		opt[bilibili.SearchOrder]("STOW", bilibili.OrderVideoStow),
		opt[bilibili.SearchOrder]("SCORES", bilibili.OrderVideoScores),
	)
	userOrders = newTable[bilibili.SearchOrder]("order type", "valid_orders",
		opt[bilibili.SearchOrder]("FANS", bilibili.OrderUserFans),
		opt[bilibili.SearchOrder]("LEVEL", bilibili.OrderUserLevel),
	)
	liveOrders = newTable[bilibili.SearchOrder]("order type", "valid_orders",
		opt[bilibili.SearchOrder]("NEWLIVE", bilibili.OrderLiveRoomNewLive),
		opt[bilibili.SearchOrder]("ONLINE", bilibili.OrderLiveRoomOnline),
	)
	articleOrders = newTable[bilibili.SearchOrder]("order type", "valid_orders",
		opt[bilibili.SearchOrder]("TOTALRANK", bilibili.OrderArticleTotalRank),
		opt[bilibili.SearchOrder]("PUBDATE", bilibili.OrderArticlePubDate),
		opt[bilibili.SearchOrder]("CLICK", bilibili.OrderArticleClick),
		opt[bilibili.SearchOrder]("ATTENTION", bilibili.OrderArticleAttention),
		opt[bilibili.SearchOrder]("SCORES", bilibili.OrderArticleScores),
	)
	noOrders = newTable[bilibili.SearchOrder]("order type", "valid_orders")
)

// orderTable returns the orderings accepted for kind.
func orderTable(kind bilibili.SearchObjectType) *table[bilibili.SearchOrder] {
	switch kind {
	case bilibili.SearchObjectVideo:
		return videoOrders
	case bilibili.SearchObjectUser:
		return userOrders
	case bilibili.SearchObjectLive, bilibili.SearchObjectLiveUser:
		return liveOrders
	case bilibili.SearchObjectArticle:
		return articleOrders
	default:
		return noOrders
	}
}

var videoZones = func() *table[bilibili.VideoZoneType] {
	opts := make([]option[bilibili.VideoZoneType], len(bilibili.VideoZones))
	for i, z := range bilibili.VideoZones {
		opts[i] = opt(z.Name, z.Type)
	}
	return newTable("video zone type", "valid_zone_types", opts...)
}()

var (
	articleCategories = newTable("category id", "valid_categories",
		opt("ALL", int(bilibili.CategoryArticleAll)),
		opt("ANIME", int(bilibili.CategoryArticleAnime)),
		opt("GAME", int(bilibili.CategoryArticleGame)),
		opt("TV", int(bilibili.CategoryArticleTV)),
		opt("LIFE", int(bilibili.CategoryArticleLife)),
		opt("HOBBY", int(bilibili.CategoryArticleHobby)),
		opt("LIGHTNOVEL", int(bilibili.CategoryArticleLightNovel)),
		opt("TECHNOLOGY", int(bilibili.CategoryArticleTechnology)),
	)
	photoCategories = newTable("category id", "valid_categories",
		opt("ALL", int(bilibili.CategoryPhotoAll)),
		opt("DRAWFRIEND", int(bilibili.CategoryPhotoDrawFriend)),
		opt("PHOTOFRIEND", int(bilibili.CategoryPhotoPhotoFriend)),
	)
)

var cheeseOrders = newTable("cheese order", "valid_orders",
	opt("RECOMMEND", bilibili.OrderCheeseRecommend),
	opt("SELL", bilibili.OrderCheeseSell),
	opt("NEW", bilibili.OrderCheeseNew),
	opt("CHEAP", bilibili.OrderCheeseCheap),
	opt("EXPENSIVE", bilibili.OrderCheeseExpensive),
)

// SearchTypeNames lists the accepted search_type values.
func SearchTypeNames() []string { return searchTypes.Names() }

// VideoZoneNames lists the accepted video_zone_type values.
func VideoZoneNames() []string { return videoZones.Names() }

// CheeseOrderNames lists the accepted search_cheese orders.
func CheeseOrderNames() []string { return cheeseOrders.Names() }
