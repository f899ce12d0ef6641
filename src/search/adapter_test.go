package search

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilibili-mcp/go-bilibili-mcp/src/bilibili"
	"github.com/bilibili-mcp/go-bilibili-mcp/src/json"
)

// fakeSearcher records the last typed search and returns canned values.
type fakeSearcher struct {
	typeCalls  int
	lastParams bilibili.TypeSearchParams
	lastCred   *bilibili.Credential
	lastCheese bilibili.OrderCheese
	suggest    []string
	err        error
}

func (f *fakeSearcher) Search(ctx context.Context, keyword string, page int) (any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return map[string]any{"keyword": keyword, "page": page}, nil
}

func (f *fakeSearcher) SearchByType(ctx context.Context, p bilibili.TypeSearchParams) (any, error) {
	f.typeCalls++
	f.lastParams = p
	if f.err != nil {
		return nil, f.err
	}
	return map[string]any{"result": []any{}}, nil
}

func (f *fakeSearcher) GetDefaultSearchKeyword(ctx context.Context) (any, error) {
	return map[string]any{"show_name": "x"}, f.err
}

func (f *fakeSearcher) GetHotSearchKeywords(ctx context.Context) (map[string]any, error) {
	return map[string]any{"list": []any{}}, f.err
}

func (f *fakeSearcher) GetSuggestKeywords(ctx context.Context, keyword string) ([]string, error) {
	return f.suggest, f.err
}

func (f *fakeSearcher) SearchGames(ctx context.Context, keyword string) (any, error) {
	return []any{}, f.err
}

func (f *fakeSearcher) SearchManga(ctx context.Context, keyword string, pageNum, pageSize int, cred *bilibili.Credential) (any, error) {
	f.lastCred = cred
	return map[string]any{}, f.err
}

func (f *fakeSearcher) SearchCheese(ctx context.Context, keyword string, pageNum, pageSize int, order bilibili.OrderCheese) (any, error) {
	f.lastCheese = order
	return map[string]any{}, f.err
}

func typeReq(kind string) TypeSearchRequest {
	return TypeSearchRequest{
		Keyword:    "k",
		SearchType: kind,
		TimeRange:  DefaultTimeRange,
		Page:       DefaultPage,
		PageSize:   DefaultTypePageSize,
	}
}

var allKinds = []string{"VIDEO", "BANGUMI", "FT", "LIVE", "ARTICLE", "TOPIC", "USER", "LIVEUSER", "PHOTO"}

func TestSearchTypeResolutionIsCaseInsensitive(t *testing.T) {
	fake := &fakeSearcher{}
	a := NewAdapter(fake, nil)
	for _, kind := range allKinds {
		for _, variant := range []string{kind, strings.ToLower(kind), kind[:1] + strings.ToLower(kind[1:])} {
			res, errRes := a.SearchByType(context.Background(), typeReq(variant))
			require.Nil(t, errRes, variant)
			require.NotNil(t, res, variant)
		}
	}
	assert.Equal(t, bilibili.SearchObjectPhoto, fake.lastParams.Type)
}

func TestUnknownSearchTypeListsAllKinds(t *testing.T) {
	fake := &fakeSearcher{}
	a := NewAdapter(fake, nil)

	res, errRes := a.SearchByType(context.Background(), typeReq("podcast"))
	assert.Nil(t, res)
	require.NotNil(t, errRes)
	assert.Equal(t, -1, errRes.Code)
	assert.Equal(t, "valid_types", errRes.Field)
	assert.Equal(t, allKinds, errRes.Valid)
	assert.Zero(t, fake.typeCalls)
}

func TestOrderResolvesAgainstKind(t *testing.T) {
	fake := &fakeSearcher{}
	a := NewAdapter(fake, nil)

	req := typeReq("video")
	req.OrderType = "pubdate"
	_, errRes := a.SearchByType(context.Background(), req)
	require.Nil(t, errRes)
	assert.Equal(t, bilibili.SearchOrder(bilibili.OrderVideoPubDate), fake.lastParams.Order)

	req.OrderType = "ATTENTION"
	_, errRes = a.SearchByType(context.Background(), req)
	require.NotNil(t, errRes)
	assert.Equal(t, "valid_orders", errRes.Field)
	assert.Equal(t, []string{"TOTALRANK", "PUBDATE", "CLICK", "DM", "STOW", "SCORES"}, errRes.Valid)

	req = typeReq("ARTICLE")
	req.OrderType = "attention"
	_, errRes = a.SearchByType(context.Background(), req)
	require.Nil(t, errRes)
	assert.Equal(t, bilibili.SearchOrder(bilibili.OrderArticleAttention), fake.lastParams.Order)
}

func TestOrderTablesPerKind(t *testing.T) {
	cases := map[string][]string{
		"USER":     {"FANS", "LEVEL"},
		"LIVE":     {"NEWLIVE", "ONLINE"},
		"LIVEUSER": {"NEWLIVE", "ONLINE"},
		"ARTICLE":  {"TOTALRANK", "PUBDATE", "CLICK", "ATTENTION", "SCORES"},
		"BANGUMI":  {},
		"PHOTO":    {},
	}
	a := NewAdapter(&fakeSearcher{}, nil)
	for kind, want := range cases {
		req := typeReq(kind)
		req.OrderType = "nope"
		_, errRes := a.SearchByType(context.Background(), req)
		require.NotNil(t, errRes, kind)
		assert.Equal(t, want, errRes.Valid, kind)
	}
}

func TestEmptyOrderListEncodesAsArray(t *testing.T) {
	a := NewAdapter(&fakeSearcher{}, nil)
	req := typeReq("TOPIC")
	req.OrderType = "click"
	_, errRes := a.SearchByType(context.Background(), req)
	require.NotNil(t, errRes)

	s, err := json.MarshalToString(errRes)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":-1,"message":"invalid order type: click","valid_orders":[]}`, s)
}

func TestVideoZone(t *testing.T) {
	fake := &fakeSearcher{}
	a := NewAdapter(fake, nil)

	req := typeReq("VIDEO")
	req.VideoZoneType = "douga_mmd"
	_, errRes := a.SearchByType(context.Background(), req)
	require.Nil(t, errRes)
	require.NotNil(t, fake.lastParams.Zone)
	assert.Equal(t, bilibili.VideoZoneType(25), *fake.lastParams.Zone)

	req.VideoZoneType = "GAME_STANDALONE"
	_, errRes = a.SearchByType(context.Background(), req)
	require.Nil(t, errRes)
	assert.Equal(t, bilibili.VideoZoneType(17), *fake.lastParams.Zone)

	req.VideoZoneType = "NOT_A_ZONE"
	_, errRes = a.SearchByType(context.Background(), req)
	require.NotNil(t, errRes)
	assert.Equal(t, "valid_zone_types", errRes.Field)
	assert.Len(t, errRes.Valid, len(bilibili.VideoZones))
	assert.Contains(t, errRes.Valid, "DOUGA_MMD")
}

func TestVideoZoneIgnoredForOtherKinds(t *testing.T) {
	fake := &fakeSearcher{}
	a := NewAdapter(fake, nil)

	req := typeReq("USER")
	req.VideoZoneType = "NOT_A_ZONE"
	_, errRes := a.SearchByType(context.Background(), req)
	require.Nil(t, errRes)
	assert.Nil(t, fake.lastParams.Zone)
}

func TestNumericCategoryBypassesLookup(t *testing.T) {
	fake := &fakeSearcher{}
	a := NewAdapter(fake, nil)

	req := typeReq("ARTICLE")
	req.Category = CategoryCode(5)
	_, errRes := a.SearchByType(context.Background(), req)
	require.Nil(t, errRes)
	require.NotNil(t, fake.lastParams.CategoryID)
	assert.Equal(t, 5, *fake.lastParams.CategoryID)
}

func TestCategoryNamePerKind(t *testing.T) {
	fake := &fakeSearcher{}
	a := NewAdapter(fake, nil)

	req := typeReq("ARTICLE")
	req.Category = CategoryName("life")
	_, errRes := a.SearchByType(context.Background(), req)
	require.Nil(t, errRes)
	assert.Equal(t, int(bilibili.CategoryArticleLife), *fake.lastParams.CategoryID)

	req = typeReq("PHOTO")
	req.Category = CategoryName("LIFE")
	_, errRes = a.SearchByType(context.Background(), req)
	require.NotNil(t, errRes)
	assert.Equal(t, "valid_categories", errRes.Field)
	assert.Equal(t, []string{"ALL", "DRAWFRIEND", "PHOTOFRIEND"}, errRes.Valid)

	req.Category = CategoryName("drawfriend")
	_, errRes = a.SearchByType(context.Background(), req)
	require.Nil(t, errRes)
	assert.Equal(t, int(bilibili.CategoryPhotoDrawFriend), *fake.lastParams.CategoryID)
}

func TestCategoryIgnoredForOtherKinds(t *testing.T) {
	fake := &fakeSearcher{}
	a := NewAdapter(fake, nil)

	req := typeReq("VIDEO")
	req.Category = CategoryName("whatever")
	_, errRes := a.SearchByType(context.Background(), req)
	require.Nil(t, errRes)
	assert.Nil(t, fake.lastParams.CategoryID)
}

func TestDateFormatCheckedBeforeDelegation(t *testing.T) {
	fake := &fakeSearcher{}
	a := NewAdapter(fake, nil)

	req := typeReq("VIDEO")
	req.TimeStart = "2024-01-01"
	req.TimeEnd = "2024/02/01"
	res, errRes := a.SearchByType(context.Background(), req)
	assert.Nil(t, res)
	require.NotNil(t, errRes)
	assert.Equal(t, dateFormatMessage, errRes.Message)
	assert.Empty(t, errRes.Field)
	assert.Zero(t, fake.typeCalls)

	// Only one date given: no check, forwarded as is.
	req.TimeStart = ""
	_, errRes = a.SearchByType(context.Background(), req)
	require.Nil(t, errRes)
	assert.Equal(t, "2024/02/01", fake.lastParams.TimeEnd)

	// Shallow check: calendar validity is not verified here.
	req.TimeStart, req.TimeEnd = "2024-99-99", "2024-02-01"
	_, errRes = a.SearchByType(context.Background(), req)
	require.Nil(t, errRes)
}

func TestValidationOrderShortCircuits(t *testing.T) {
	a := NewAdapter(&fakeSearcher{}, nil)

	req := typeReq("VIDEO")
	req.OrderType = "bad"
	req.VideoZoneType = "bad"
	req.TimeStart, req.TimeEnd = "x", "y"
	_, errRes := a.SearchByType(context.Background(), req)
	require.NotNil(t, errRes)
	assert.Equal(t, "valid_orders", errRes.Field)

	req.OrderType = ""
	_, errRes = a.SearchByType(context.Background(), req)
	require.NotNil(t, errRes)
	assert.Equal(t, "valid_zone_types", errRes.Field)
}

func TestDelegationErrorIsConverted(t *testing.T) {
	fake := &fakeSearcher{err: errors.New("upstream exploded")}
	a := NewAdapter(fake, nil)

	res, errRes := a.SearchByType(context.Background(), typeReq("VIDEO"))
	assert.Nil(t, res)
	require.NotNil(t, errRes)
	assert.Equal(t, -1, errRes.Code)
	assert.Contains(t, errRes.Message, "upstream exploded")
	assert.Equal(t, map[string]any{"code": -1, "message": errRes.Message}, errRes.Map())

	_, err := a.GeneralSearch(context.Background(), "k", 1)
	assert.EqualError(t, err, "upstream exploded")
}

func TestParamsForwarded(t *testing.T) {
	fake := &fakeSearcher{}
	a := NewAdapter(fake, nil)

	asc := 1
	req := typeReq("USER")
	req.OrderType = "level"
	req.OrderSort = &asc
	req.TimeRange = 30
	req.Page = 4
	req.PageSize = 10
	_, errRes := a.SearchByType(context.Background(), req)
	require.Nil(t, errRes)

	p := fake.lastParams
	assert.Equal(t, "k", p.Keyword)
	assert.Equal(t, bilibili.SearchObjectUser, p.Type)
	assert.Equal(t, bilibili.SearchOrder(bilibili.OrderUserLevel), p.Order)
	assert.Equal(t, &asc, p.OrderSort)
	assert.Equal(t, 30, p.TimeRange)
	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 10, p.PageSize)
}

func TestSuggestKeywordsNeverNil(t *testing.T) {
	a := NewAdapter(&fakeSearcher{}, nil)
	got, err := a.GetSuggestKeywords(context.Background(), "test")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	a = NewAdapter(&fakeSearcher{suggest: []string{"test1"}}, nil)
	got, err = a.GetSuggestKeywords(context.Background(), "test")
	require.NoError(t, err)
	assert.Equal(t, []string{"test1"}, got)
}

func TestSearchMangaDropsEmptyCredential(t *testing.T) {
	fake := &fakeSearcher{}
	a := NewAdapter(fake, nil)

	_, err := a.SearchManga(context.Background(), "k", 1, DefaultMangaPageSize, &bilibili.Credential{})
	require.NoError(t, err)
	assert.Nil(t, fake.lastCred)

	cred := &bilibili.Credential{Sessdata: "s"}
	_, err = a.SearchManga(context.Background(), "k", 1, DefaultMangaPageSize, cred)
	require.NoError(t, err)
	assert.Same(t, cred, fake.lastCred)
}

func TestSearchCheeseOrder(t *testing.T) {
	fake := &fakeSearcher{}
	a := NewAdapter(fake, nil)

	_, err := a.SearchCheese(context.Background(), "k", 1, DefaultCheesePageSize, "")
	require.NoError(t, err)
	assert.Equal(t, bilibili.OrderCheeseRecommend, fake.lastCheese)

	_, err = a.SearchCheese(context.Background(), "k", 1, DefaultCheesePageSize, "expensive")
	require.NoError(t, err)
	assert.Equal(t, bilibili.OrderCheeseExpensive, fake.lastCheese)

	_, err = a.SearchCheese(context.Background(), "k", 1, DefaultCheesePageSize, "free")
	var errRes *ErrorResult
	require.ErrorAs(t, err, &errRes)
	assert.Equal(t, CheeseOrderNames(), errRes.Valid)
}

func TestNewTablePanicsOnBadNames(t *testing.T) {
	assert.Panics(t, func() { newTable("x", "valid_x", opt("A", 1), opt("A", 2)) })
	assert.Panics(t, func() { newTable("x", "valid_x", opt("lower", 1)) })
	assert.Panics(t, func() { newTable("x", "valid_x", opt("", 1)) })
}
