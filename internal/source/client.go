package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/oportunia/radar/internal/config"
	"github.com/oportunia/radar/internal/domain"
	"github.com/oportunia/radar/internal/telemetry"
)

// Logger defines the logging interface
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

const (
	endpointSearch   = "search"
	endpointComments = "comments"
	endpointChannel  = "channel"

	statusOK  = "ok"
	statusErr = "error"

	commentsPageSize = 100
)

// Client talks to the external video/comment API. It implements both
// CommentSource and VideoSource.
type Client struct {
	baseURL     string
	apiKey      string
	maxComments int
	http        *http.Client
	limiter     *rate.Limiter
	telemetry   *telemetry.Provider
	logger      Logger
}

// NewClient builds a rate-limited source client from config.
func NewClient(cfg config.SourceConfig, tp *telemetry.Provider, logger Logger) *Client {
	return &Client{
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		maxComments: cfg.MaxComments,
		http:        &http.Client{Timeout: cfg.Timeout},
		limiter:     rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		telemetry:   tp,
		logger:      logger,
	}
}

// Wire shapes. The core only ever sees validated domain records.
type commentPage struct {
	Comments      []wireComment `json:"comments"`
	NextPageToken string        `json:"next_page_token"`
}

type wireComment struct {
	Author         string `json:"author"`
	AuthorImageURL string `json:"author_image_url"`
	Text           string `json:"text"`
	LikeCount      int    `json:"like_count"`
}

type searchResponse struct {
	Videos []wireVideo `json:"videos"`
}

type wireVideo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Views       int64     `json:"views"`
	Likes       int64     `json:"likes"`
	Comments    int64     `json:"comments"`
	PublishedAt time.Time `json:"published_at"`
	Tags        []string  `json:"tags"`
	ChannelID   string    `json:"channel_id"`
}

type wireChannelStats struct {
	SubscriberCount int64 `json:"subscriber_count"`
	ViewCount       int64 `json:"view_count"`
	VideoCount      int64 `json:"video_count"`
}

// FetchComments pages through the video's comments until the per-video cap
// or the last page, whichever comes first.
func (c *Client) FetchComments(ctx context.Context, videoID string) ([]domain.Comment, error) {
	if videoID == "" {
		return nil, fmt.Errorf("fetch comments: empty video id")
	}

	comments := make([]domain.Comment, 0, commentsPageSize)
	pageToken := ""

	for {
		var page commentPage
		params := url.Values{
			"video_id":  {videoID},
			"page_size": {strconv.Itoa(commentsPageSize)},
		}
		if pageToken != "" {
			params.Set("page_token", pageToken)
		}

		if err := c.get(ctx, endpointComments, params, &page); err != nil {
			return nil, fmt.Errorf("fetch comments for %s: %w", videoID, err)
		}

		for _, wc := range page.Comments {
			if wc.Text == "" {
				continue
			}
			comments = append(comments, domain.Comment{
				Author:         wc.Author,
				AuthorImageURL: wc.AuthorImageURL,
				Text:           wc.Text,
				LikeCount:      wc.LikeCount,
			})
			if len(comments) >= c.maxComments {
				return comments, nil
			}
		}

		if page.NextPageToken == "" {
			return comments, nil
		}
		pageToken = page.NextPageToken
	}
}

// SearchVideos returns up to limit videos matching the query.
func (c *Client) SearchVideos(ctx context.Context, query string, limit int) ([]domain.Video, error) {
	if query == "" {
		return nil, fmt.Errorf("search videos: empty query")
	}

	var resp searchResponse
	params := url.Values{
		"q":     {query},
		"limit": {strconv.Itoa(limit)},
	}
	if err := c.get(ctx, endpointSearch, params, &resp); err != nil {
		return nil, fmt.Errorf("search videos %q: %w", query, err)
	}

	videos := make([]domain.Video, 0, len(resp.Videos))
	for _, wv := range resp.Videos {
		if wv.ID == "" {
			continue
		}
		videos = append(videos, domain.Video{
			ID:          wv.ID,
			Title:       wv.Title,
			Description: wv.Description,
			Views:       wv.Views,
			Likes:       wv.Likes,
			Comments:    wv.Comments,
			PublishedAt: wv.PublishedAt,
			Tags:        wv.Tags,
			ChannelID:   wv.ChannelID,
		})
	}

	c.logger.Debug("video search complete", "query", query, "videos", len(videos))
	return videos, nil
}

// FetchChannelStats returns the channel metrics, deriving the per-video
// view average the scoring engine needs.
func (c *Client) FetchChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error) {
	if channelID == "" {
		return nil, fmt.Errorf("fetch channel stats: empty channel id")
	}

	var wcs wireChannelStats
	params := url.Values{"channel_id": {channelID}}
	if err := c.get(ctx, endpointChannel, params, &wcs); err != nil {
		return nil, fmt.Errorf("fetch channel stats for %s: %w", channelID, err)
	}

	stats := &domain.ChannelStats{
		SubscriberCount: wcs.SubscriberCount,
		ViewCount:       wcs.ViewCount,
		VideoCount:      wcs.VideoCount,
	}
	if wcs.VideoCount > 0 {
		stats.AvgViewsPerVideo = float64(wcs.ViewCount) / float64(wcs.VideoCount)
	}
	return stats, nil
}

// get waits for a limiter token, issues the request and decodes the JSON
// response into out.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.recordRequest(ctx, endpoint, statusErr, duration)
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.recordRequest(ctx, endpoint, statusErr, duration)
		return fmt.Errorf("source returned %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.recordRequest(ctx, endpoint, statusErr, duration)
		return fmt.Errorf("decode response: %w", err)
	}

	c.recordRequest(ctx, endpoint, statusOK, duration)
	return nil
}

func (c *Client) recordRequest(ctx context.Context, endpoint, status string, duration time.Duration) {
	if c.telemetry != nil {
		c.telemetry.RecordSourceRequest(ctx, endpoint, status, duration)
	}
}
