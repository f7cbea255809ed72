package domain

// TagAnalysis aggregates the videos carrying one tag.
type TagAnalysis struct {
	Tag           string  `json:"tag"`
	Count         int     `json:"count"`
	AvgScore      float64 `json:"avg_score"`
	AvgViews      float64 `json:"avg_views"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// TagCombination is an unordered tag pair seen on at least two videos.
type TagCombination struct {
	Tags     [2]string `json:"tags"`
	Count    int       `json:"count"`
	AvgScore float64   `json:"avg_score"`
}

// ViralVideo flags one video with unusual growth velocity.
type ViralVideo struct {
	Video          Video   `json:"video"`
	ViralScore     int     `json:"viral_score"`
	GrowthRate     float64 `json:"growth_rate"`
	IsAccelerating bool    `json:"is_accelerating"`
}

// Recency trend labels for SeasonalityInsights.
const (
	TrendCrescente   = "crescente"
	TrendEstavel     = "estável"
	TrendDecrescente = "decrescente"
)

// Competition level labels for NicheInsights.
const (
	CompetitionAlta  = "alta"
	CompetitionMedia = "média"
	CompetitionBaixa = "baixa"
)

// SeasonalityInsights characterizes how recent the batch is.
type SeasonalityInsights struct {
	RecentTrend     string  `json:"recent_trend"`
	RecentShare     float64 `json:"recent_share"`
	AvgAgeDays      float64 `json:"avg_age_days"`
	VideosLast30Day int     `json:"videos_last_30_days"`
}

// NicheInsights characterizes the channel landscape behind the batch.
type NicheInsights struct {
	IsNiche                 bool    `json:"is_niche"`
	AvgSubscriberCount      float64 `json:"avg_subscriber_count"`
	CompetitionLevel        string  `json:"competition_level"`
	SmallChannelShare       float64 `json:"small_channel_share"`
	LargeChannelShare       float64 `json:"large_channel_share"`
	SmallChannelOpportunity bool    `json:"small_channel_opportunity"`
}

// TrendAnalysis is the batch-level report over one search's scored videos.
// Derived per batch; no state survives across searches.
type TrendAnalysis struct {
	TopTags         []TagAnalysis       `json:"top_tags"`
	TagCombinations []TagCombination    `json:"tag_combinations"`
	ViralVideos     []ViralVideo        `json:"viral_videos"`
	Seasonality     SeasonalityInsights `json:"seasonality"`
	Niche           NicheInsights       `json:"niche"`
}
