// Package pipeline drives the per-video enrichment flow: fetch comments and
// channel stats, derive engagement metrics, run comment analysis and attach
// the opportunity score. Per-video outputs are independent, so batches run
// on a worker pool without coordination.
package pipeline

import (
	"context"
	"time"

	"github.com/oportunia/radar/internal/analyzer"
	"github.com/oportunia/radar/internal/domain"
	"github.com/oportunia/radar/internal/scoring"
	"github.com/oportunia/radar/internal/source"
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
	percentScale = 100.0
	perThousand  = 1000.0
	hoursPerDay  = 24.0
	// minAgeDays floors the age used for views-per-day so a video published
	// minutes ago does not get an absurd velocity.
	minAgeDays = 1.0
)

// Enricher runs the full enrichment flow for one video.
type Enricher struct {
	comments  source.CommentSource
	channels  source.VideoSource
	analyzer  *analyzer.CommentAnalyzer
	scorer    *scoring.Engine
	telemetry *telemetry.Provider
	logger    Logger
	now       func() time.Time
}

// NewEnricher wires the enrichment collaborators.
func NewEnricher(
	comments source.CommentSource,
	channels source.VideoSource,
	commentAnalyzer *analyzer.CommentAnalyzer,
	scorer *scoring.Engine,
	tp *telemetry.Provider,
	logger Logger,
) *Enricher {
	return &Enricher{
		comments:  comments,
		channels:  channels,
		analyzer:  commentAnalyzer,
		scorer:    scorer,
		telemetry: tp,
		logger:    logger,
		now:       time.Now,
	}
}

// Enrich mutates the video in place: derived metrics, fetched comments,
// comment analysis and the infoproduct score. Collaborator failures degrade
// the affected enrichment (logged, field left empty) rather than aborting;
// only context cancellation is returned.
func (e *Enricher) Enrich(ctx context.Context, video *domain.Video) (domain.ScoreBreakdown, error) {
	if err := ctx.Err(); err != nil {
		return domain.ScoreBreakdown{}, err
	}

	e.attachChannelStats(ctx, video)
	ComputeMetrics(video, e.now())
	e.attachCommentAnalysis(ctx, video)

	start := time.Now()
	breakdown := e.scorer.AddInfoproductScore(video)
	if e.telemetry != nil {
		e.telemetry.RecordScore(ctx, breakdown.Opportunity, time.Since(start))
	}

	e.logger.Debug("video enriched",
		"video_id", video.ID,
		"score", breakdown.TotalScore,
		"opportunity", breakdown.Opportunity,
	)

	return breakdown, nil
}

func (e *Enricher) attachChannelStats(ctx context.Context, video *domain.Video) {
	if video.ChannelID == "" || e.channels == nil {
		return
	}
	stats, err := e.channels.FetchChannelStats(ctx, video.ChannelID)
	if err != nil {
		e.logger.Warn("channel stats unavailable",
			"video_id", video.ID,
			"channel_id", video.ChannelID,
			"error", err,
		)
		return
	}
	video.ChannelStats = stats
}

func (e *Enricher) attachCommentAnalysis(ctx context.Context, video *domain.Video) {
	if e.comments == nil {
		return
	}
	comments, err := e.comments.FetchComments(ctx, video.ID)
	if err != nil {
		e.logger.Warn("comment fetch failed",
			"video_id", video.ID,
			"error", err,
		)
		return
	}

	video.CommentsData = comments

	start := time.Now()
	analysis := e.analyzer.Analyze(comments)
	video.CommentAnalysis = &analysis
	if e.telemetry != nil {
		e.telemetry.RecordAnalysis(ctx, telemetry.AnalysisKindComments, len(comments), time.Since(start))
	}
}

// ComputeMetrics derives the rate metrics the scoring engine consumes.
// Zero views or missing channel stats leave the dependent metrics at zero;
// no division happens on a zero denominator.
func ComputeMetrics(video *domain.Video, now time.Time) {
	if video.Views > 0 {
		video.EngagementRate = float64(video.Likes+video.Comments) / float64(video.Views) * percentScale
		video.CommentsPerThousandViews = float64(video.Comments) / float64(video.Views) * perThousand
	}

	ageDays := video.Age(now).Hours() / hoursPerDay
	if ageDays < minAgeDays {
		ageDays = minAgeDays
	}
	video.ViewsPerDay = float64(video.Views) / ageDays

	if video.ChannelStats != nil && video.ChannelStats.AvgViewsPerVideo > 0 {
		video.ChannelPerformanceRatio = float64(video.Views) / video.ChannelStats.AvgViewsPerVideo
	}
}
