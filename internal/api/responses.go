package api

import (
	"github.com/oportunia/radar/internal/domain"
	"github.com/oportunia/radar/internal/pipeline"
)

// AnalyzeRequest carries a comment set to analyze. VideoID is optional and
// only used as a cache key; the analysis itself works on the comments alone.
type AnalyzeRequest struct {
	VideoID  string           `json:"video_id"`
	Comments []domain.Comment `json:"comments" binding:"required"`
}

// AnalyzeResponse is the quantitative analysis of one comment set.
type AnalyzeResponse struct {
	VideoID  string                 `json:"video_id,omitempty"`
	Analysis domain.CommentAnalysis `json:"analysis"`
}

// AdvancedAnalyzeResponse is the qualitative analysis of one comment set.
type AdvancedAnalyzeResponse struct {
	VideoID  string                         `json:"video_id,omitempty"`
	Analysis domain.AdvancedCommentAnalysis `json:"analysis"`
}

// ScoreRequest carries a single video to enrich and score.
type ScoreRequest struct {
	Video domain.Video `json:"video" binding:"required"`
}

// ScoreResponse pairs the enriched video with its score breakdown.
type ScoreResponse struct {
	Video     domain.Video          `json:"video"`
	Breakdown domain.ScoreBreakdown `json:"breakdown"`
}

// ScoreBatchRequest carries a batch of videos to score concurrently.
type ScoreBatchRequest struct {
	Videos []domain.Video `json:"videos" binding:"required,min=1,max=100"`
}

// BatchScoreResult is one per-video outcome inside a batch response.
// Failures carry the error message instead of a breakdown.
type BatchScoreResult struct {
	Video     domain.Video          `json:"video"`
	Breakdown domain.ScoreBreakdown `json:"breakdown"`
	Error     string                `json:"error,omitempty"`
}

// ScoreBatchResponse is the aggregate batch scoring response.
type ScoreBatchResponse struct {
	Results []BatchScoreResult `json:"results"`
	Total   int                `json:"total"`
	Success int                `json:"success"`
	Failed  int                `json:"failed"`
}

// TrendsRequest carries the video set to mine for trends and viral signals.
type TrendsRequest struct {
	Videos []domain.Video `json:"videos" binding:"required,min=1"`
}

// TrendsResponse wraps the trend analysis.
type TrendsResponse struct {
	Trends domain.TrendAnalysis `json:"trends"`
}

func toBatchScoreResult(r pipeline.Result) BatchScoreResult {
	out := BatchScoreResult{
		Video:     r.Video,
		Breakdown: r.Breakdown,
	}
	if r.Error != nil {
		out.Error = r.Error.Error()
	}
	return out
}
