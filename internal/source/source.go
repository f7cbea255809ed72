// Package source fetches videos and comments from the external metrics API.
// All requests pass through a shared token-bucket limiter so sustained use
// stays inside the provider's quota; cancellation and timeouts live here,
// never in the analysis core.
package source

import (
	"context"

	"github.com/oportunia/radar/internal/domain"
)

// CommentSource supplies the ordered comment sequence for one video. The
// returned slice is complete up to the configured per-video cap; callers
// re-run analysis from scratch on the full slice, never incrementally.
type CommentSource interface {
	FetchComments(ctx context.Context, videoID string) ([]domain.Comment, error)
}

// VideoSource supplies video and channel metrics for a search term.
type VideoSource interface {
	SearchVideos(ctx context.Context, query string, limit int) ([]domain.Video, error)
	FetchChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error)
}
