package domain

import "time"

// ChannelStats holds the channel-level metrics attached to a video by the
// metrics source. May be absent when the channel lookup failed; the scoring
// engine treats absence as neutral, not as a penalty.
type ChannelStats struct {
	SubscriberCount  int64   `json:"subscriber_count"`
	ViewCount        int64   `json:"view_count"`
	VideoCount       int64   `json:"video_count"`
	AvgViewsPerVideo float64 `json:"avg_views_per_video"`
}

// Video is one video plus the metrics derived during enrichment. It is
// created from the metrics source response and updated copy-by-copy through
// the enrichment steps (comment fetch, analysis, scoring).
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Views       int64     `json:"views"`
	Likes       int64     `json:"likes"`
	Comments    int64     `json:"comments"`
	PublishedAt time.Time `json:"published_at"`
	Tags        []string  `json:"tags"`
	ChannelID   string    `json:"channel_id,omitempty"`

	// Enrichment fields, attached post-fetch.
	EngagementRate           float64 `json:"engagement_rate"`
	CommentsPerThousandViews float64 `json:"comments_per_thousand_views"`
	ViewsPerDay              float64 `json:"views_per_day"`
	// ChannelPerformanceRatio is this video's views divided by the
	// channel's average views per video.
	ChannelPerformanceRatio float64 `json:"channel_performance_ratio"`

	ChannelStats    *ChannelStats    `json:"channel_stats,omitempty"`
	CommentsData    []Comment        `json:"comments_data,omitempty"`
	CommentAnalysis *CommentAnalysis `json:"comment_analysis,omitempty"`

	// InfoproductScore is the 0-100 composite opportunity score.
	InfoproductScore int `json:"infoproduct_score"`
}

// Age returns the video age relative to now, floored at zero.
func (v *Video) Age(now time.Time) time.Duration {
	if v.PublishedAt.IsZero() || v.PublishedAt.After(now) {
		return 0
	}
	return now.Sub(v.PublishedAt)
}
