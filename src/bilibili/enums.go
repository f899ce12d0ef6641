package bilibili

// SearchObjectType is the search_type query value of a typed search.
type SearchObjectType string

const (
	SearchObjectVideo    SearchObjectType = "video"
	SearchObjectBangumi  SearchObjectType = "media_bangumi"
	SearchObjectFT       SearchObjectType = "media_ft"
	SearchObjectLive     SearchObjectType = "live"
	SearchObjectArticle  SearchObjectType = "article"
	SearchObjectTopic    SearchObjectType = "topic"
	SearchObjectUser     SearchObjectType = "bili_user"
	SearchObjectLiveUser SearchObjectType = "live_user"
	SearchObjectPhoto    SearchObjectType = "photo"
)

// SearchOrder is implemented by the per-kind ordering enumerations.
type SearchOrder interface {
	QueryValue() string
}

// OrderVideo orders video results.
type OrderVideo string

const (
	OrderVideoTotalRank OrderVideo = "totalrank"
	OrderVideoClick     OrderVideo = "click"
	OrderVideoPubDate   OrderVideo = "pubdate"
	OrderVideoDM        OrderVideo = "dm"
	OrderVideoStow      OrderVideo = "stow"
	OrderVideoScores    OrderVideo = "scores"
)

func (o OrderVideo) QueryValue() string { return string(o) }

// OrderArticle orders article (column) results.
type OrderArticle string

const (
	OrderArticleTotalRank OrderArticle = "totalrank"
	OrderArticleClick     OrderArticle = "click"
	OrderArticlePubDate   OrderArticle = "pubdate"
	OrderArticleAttention OrderArticle = "attention"
	OrderArticleScores    OrderArticle = "scores"
)

func (o OrderArticle) QueryValue() string { return string(o) }

// OrderLiveRoom orders live room and live user results.
type OrderLiveRoom string

const (
	OrderLiveRoomNewLive OrderLiveRoom = "live_time"
	OrderLiveRoomOnline  OrderLiveRoom = "online"
)

func (o OrderLiveRoom) QueryValue() string { return string(o) }

// OrderUser orders user results. Direction is chosen by order_sort.
type OrderUser string

const (
	OrderUserFans  OrderUser = "fans"
	OrderUserLevel OrderUser = "level"
)

func (o OrderUser) QueryValue() string { return string(o) }

// CategoryTypeArticle is the category_id of an article search.
type CategoryTypeArticle int

const (
	CategoryArticleAll        CategoryTypeArticle = 0
	CategoryArticleGame       CategoryTypeArticle = 1
	CategoryArticleAnime      CategoryTypeArticle = 2
	CategoryArticleLife       CategoryTypeArticle = 3
	CategoryArticleLightNovel CategoryTypeArticle = 16
	CategoryArticleTechnology CategoryTypeArticle = 17
	CategoryArticleTV         CategoryTypeArticle = 28
	CategoryArticleHobby      CategoryTypeArticle = 29
)

// CategoryTypePhoto is the category_id of a photo search.
type CategoryTypePhoto int

const (
	CategoryPhotoAll         CategoryTypePhoto = 0
	CategoryPhotoPhotoFriend CategoryTypePhoto = 1
	CategoryPhotoDrawFriend  CategoryTypePhoto = 2
)

// OrderCheese orders course ("cheese") results.
type OrderCheese int

const (
	OrderCheeseRecommend OrderCheese = -1
	OrderCheeseSell      OrderCheese = 1
	OrderCheeseNew       OrderCheese = 2
	OrderCheeseCheap     OrderCheese = 3
	OrderCheeseExpensive OrderCheese = 4
)

// VideoZoneType is a video partition id (tid).
type VideoZoneType int

// VideoZone names one entry of the partition catalog.
type VideoZone struct {
	Name string
	Type VideoZoneType
}

// VideoZones is the partition catalog accepted by video search, main zones
// first followed by their sub zones.
var VideoZones = []VideoZone{
	{"MAINPAGE", 0},

	{"DOUGA", 1},
	{"DOUGA_MAD", 24},
	{"DOUGA_MMD", 25},
	{"DOUGA_VOICE", 47},
	{"DOUGA_GARAGE_KIT", 210},
	{"DOUGA_TOKUSATU", 86},
	{"DOUGA_ACGNTALKS", 253},
	{"DOUGA_OTHER", 27},

	{"ANIME", 13},
	{"ANIME_SERIAL", 33},
	{"ANIME_FINISH", 32},
	{"ANIME_INFORMATION", 51},
	{"ANIME_OFFICAL", 152},

	{"GUOCHUANG", 167},
	{"GUOCHUANG_CHINESE", 153},
	{"GUOCHUANG_ORIGINAL", 168},
	{"GUOCHUANG_PUPPETRY", 169},
	{"GUOCHUANG_MOTIONCOMIC", 195},
	{"GUOCHUANG_INFORMATION", 170},

	{"MUSIC", 3},
	{"MUSIC_ORIGINAL", 28},
	{"MUSIC_COVER", 31},
	{"MUSIC_VOCALOID", 30},
	{"MUSIC_ELECTRONIC", 194},
	{"MUSIC_PERFORM", 59},
	{"MUSIC_MV", 193},
	{"MUSIC_LIVE", 29},
	{"MUSIC_OTHER", 130},
	{"MUSIC_COMMENTARY", 243},
	{"MUSIC_TUTORIAL", 244},

	{"DANCE", 129},
	{"DANCE_OTAKU", 20},
	{"DANCE_HIPHOP", 198},
	{"DANCE_STAR", 199},
	{"DANCE_CHINA", 200},
	{"DANCE_THREE_D", 154},
	{"DANCE_DEMO", 156},

	{"GAME", 4},
	{"GAME_STANDALONE", 17},
	{"GAME_ESPORTS", 171},
	{"GAME_MOBILE", 172},
	{"GAME_ONLINE", 65},
	{"GAME_BOARD", 173},
	{"GAME_GMV", 121},
	{"GAME_MUSIC", 136},
	{"GAME_MUGEN", 19},

	{"KNOWLEDGE", 36},
	{"KNOWLEDGE_SCIENCE", 201},
	{"KNOWLEDGE_SOCIAL_SCIENCE", 124},
	{"KNOWLEDGE_HUMANITY_HISTORY", 228},
	{"KNOWLEDGE_BUSINESS", 207},
	{"KNOWLEDGE_CAMPUS", 208},
	{"KNOWLEDGE_CAREER", 209},
	{"KNOWLEDGE_DESIGN", 229},
	{"KNOWLEDGE_SKILL", 122},

	{"TECH", 188},
	{"TECH_DIGITAL", 95},
	{"TECH_APPLICATION", 230},
	{"TECH_COMPUTER_TECH", 231},
	{"TECH_INDUSTRY", 232},

	{"SPORTS", 234},
	{"SPORTS_BASKETBALL", 235},
	{"SPORTS_FOOTBALL", 249},
	{"SPORTS_AEROBICS", 164},
	{"SPORTS_ATHLETIC", 236},
	{"SPORTS_CULTURE", 237},
	{"SPORTS_COMPREHENSIVE", 238},

	{"CAR", 223},
	{"CAR_RACING", 245},
	{"CAR_MODIFIEDVEHICLE", 246},
	{"CAR_NEWENERGYVEHICLE", 247},
	{"CAR_TOURINGCAR", 248},
	{"CAR_MOTORCYCLE", 240},
	{"CAR_STRATEGY", 227},
	{"CAR_LIFE", 176},

	{"LIFE", 160},
	{"LIFE_FUNNY", 138},
	{"LIFE_TRAVEL", 250},
	{"LIFE_RURALLIFE", 251},
	{"LIFE_HOME", 239},
	{"LIFE_HANDMAKE", 161},
	{"LIFE_PAINTING", 162},
	{"LIFE_DAILY", 21},

	{"FOOD", 211},
	{"FOOD_MAKE", 76},
	{"FOOD_DETECTIVE", 212},
	{"FOOD_MEASUREMENT", 213},
	{"FOOD_RURAL", 214},
	{"FOOD_RECORD", 215},

	{"ANIMAL", 217},
	{"ANIMAL_CAT", 218},
	{"ANIMAL_DOG", 219},
	{"ANIMAL_PANDA", 220},
	{"ANIMAL_WILD_ANIMAL", 221},
	{"ANIMAL_REPTILES", 222},
	{"ANIMAL_COMPOSITE", 75},

	{"KICHIKU", 119},
	{"KICHIKU_GUIDE", 22},
	{"KICHIKU_MAD", 26},
	{"KICHIKU_MANUAL_VOCALOID", 126},
	{"KICHIKU_THEATRE", 216},
	{"KICHIKU_COURSE", 127},

	{"FASHION", 155},
	{"FASHION_MAKEUP", 157},
	{"FASHION_COS", 252},
	{"FASHION_CLOTHING", 158},
	{"FASHION_TREND", 159},

	{"INFORMATION", 202},
	{"INFORMATION_HOTSPOT", 203},
	{"INFORMATION_GLOBAL", 204},
	{"INFORMATION_SOCIAL", 205},
	{"INFORMATION_MULTIPLE", 206},

	{"ENT", 5},
	{"ENT_VARIETY", 71},
	{"ENT_TALKER", 241},
	{"ENT_FANS", 242},
	{"ENT_CELEBRITY", 137},

	{"CINEPHILE", 181},
	{"CINEPHILE_CINECISM", 182},
	{"CINEPHILE_MONTAGE", 183},
	{"CINEPHILE_SHORTFILM", 85},
	{"CINEPHILE_TRAILER_INFO", 184},

	{"DOCUMENTARY", 177},
	{"DOCUMENTARY_HISTORY", 37},
	{"DOCUMENTARY_SCIENCE", 178},
	{"DOCUMENTARY_MILITARY", 179},
	{"DOCUMENTARY_TRAVEL", 180},

	{"MOVIE", 23},
	{"MOVIE_CHINESE", 147},
	{"MOVIE_WEST", 145},
	{"MOVIE_JAPAN", 146},
	{"MOVIE_OTHER", 83},

	{"TV", 11},
	{"TV_MAINLAND", 185},
	{"TV_OVERSEAS", 187},
}
