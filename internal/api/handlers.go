package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oportunia/radar/internal/analyzer"
	"github.com/oportunia/radar/internal/cache"
	"github.com/oportunia/radar/internal/pipeline"
	"github.com/oportunia/radar/internal/telemetry"
	"github.com/oportunia/radar/internal/trends"
)

// Handler handles HTTP requests for the analysis API.
type Handler struct {
	analyzer  *analyzer.CommentAnalyzer
	advanced  *analyzer.AdvancedAnalyzer
	enricher  *pipeline.Enricher
	batch     *pipeline.BatchScorer
	trends    *trends.Detector
	cache     *cache.Cache
	telemetry *telemetry.Provider
	logger    Logger

	serviceName    string
	serviceVersion string
}

// Logger defines the logging interface.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// NewHandler creates a new API handler. The cache may be nil when caching
// is disabled.
func NewHandler(
	commentAnalyzer *analyzer.CommentAnalyzer,
	advancedAnalyzer *analyzer.AdvancedAnalyzer,
	enricher *pipeline.Enricher,
	batch *pipeline.BatchScorer,
	trendDetector *trends.Detector,
	resultCache *cache.Cache,
	tp *telemetry.Provider,
	logger Logger,
	serviceName, serviceVersion string,
) *Handler {
	return &Handler{
		analyzer:       commentAnalyzer,
		advanced:       advancedAnalyzer,
		enricher:       enricher,
		batch:          batch,
		trends:         trendDetector,
		cache:          resultCache,
		telemetry:      tp,
		logger:         logger,
		serviceName:    serviceName,
		serviceVersion: serviceVersion,
	}
}

// AnalyzeComments handles POST /api/v1/analyze/comments.
func (h *Handler) AnalyzeComments(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid analyze request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	var cached AnalyzeResponse
	if h.cacheGet(ctx, analysisCacheKey(req.VideoID), &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	start := time.Now()
	analysis := h.analyzer.Analyze(req.Comments)
	h.telemetry.RecordAnalysis(ctx, telemetry.AnalysisKindComments, len(req.Comments), time.Since(start))

	h.logger.Info("Comments analyzed",
		"video_id", req.VideoID,
		"total", analysis.TotalComments,
		"questions", analysis.QuestionsCount,
		"material_requests", analysis.MaterialRequestsCount,
	)

	resp := AnalyzeResponse{VideoID: req.VideoID, Analysis: analysis}
	h.cacheSet(ctx, analysisCacheKey(req.VideoID), resp)
	c.JSON(http.StatusOK, resp)
}

// AnalyzeCommentsAdvanced handles POST /api/v1/analyze/comments/advanced.
func (h *Handler) AnalyzeCommentsAdvanced(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid advanced analyze request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	var cached AdvancedAnalyzeResponse
	if h.cacheGet(ctx, advancedCacheKey(req.VideoID), &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	start := time.Now()
	analysis := h.advanced.Analyze(req.Comments)
	h.telemetry.RecordAnalysis(ctx, telemetry.AnalysisKindAdvanced, len(req.Comments), time.Since(start))

	h.logger.Info("Advanced analysis completed",
		"video_id", req.VideoID,
		"total", analysis.TotalComments,
		"dominant_pain", analysis.PainPoints.DominantPainType,
	)

	resp := AdvancedAnalyzeResponse{VideoID: req.VideoID, Analysis: analysis}
	h.cacheSet(ctx, advancedCacheKey(req.VideoID), resp)
	c.JSON(http.StatusOK, resp)
}

// Score handles POST /api/v1/score.
func (h *Handler) Score(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid score request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	var cached ScoreResponse
	if h.cacheGet(ctx, scoreCacheKey(req.Video.ID), &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	video := req.Video
	breakdown, err := h.enricher.Enrich(ctx, &video)
	if err != nil {
		h.logger.Error("Scoring failed", "video_id", video.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("Video scored",
		"video_id", video.ID,
		"total_score", breakdown.TotalScore,
		"opportunity", breakdown.Opportunity,
	)

	resp := ScoreResponse{Video: video, Breakdown: breakdown}
	h.cacheSet(ctx, scoreCacheKey(video.ID), resp)
	c.JSON(http.StatusOK, resp)
}

// ScoreBatch handles POST /api/v1/score/batch.
func (h *Handler) ScoreBatch(c *gin.Context) {
	var req ScoreBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid batch score request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("Batch scoring", "batch_size", len(req.Videos))

	results := h.batch.Process(c.Request.Context(), req.Videos)

	resp := ScoreBatchResponse{
		Results: make([]BatchScoreResult, len(results)),
		Total:   len(results),
	}
	for i, result := range results {
		resp.Results[i] = toBatchScoreResult(result)
		if result.Error != nil {
			resp.Failed++
		} else {
			resp.Success++
		}
	}

	h.logger.Info("Batch scoring completed",
		"total", resp.Total,
		"success", resp.Success,
		"failed", resp.Failed,
	)

	c.JSON(http.StatusOK, resp)
}

// Trends handles POST /api/v1/trends.
func (h *Handler) Trends(c *gin.Context) {
	var req TrendsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid trends request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	for i := range req.Videos {
		// Keep caller-supplied metrics; derive them only when absent.
		if req.Videos[i].ViewsPerDay == 0 {
			pipeline.ComputeMetrics(&req.Videos[i], now)
		}
	}

	start := time.Now()
	analysis := h.trends.Analyze(req.Videos)
	h.telemetry.RecordAnalysis(c.Request.Context(), telemetry.AnalysisKindTrends, len(req.Videos), time.Since(start))

	h.logger.Info("Trend analysis completed",
		"videos", len(req.Videos),
		"top_tags", len(analysis.TopTags),
		"viral_videos", len(analysis.ViralVideos),
	)

	c.JSON(http.StatusOK, TrendsResponse{Trends: analysis})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.serviceName,
		"version": h.serviceVersion,
	})
}

// ReadyCheck handles GET /ready.
func (h *Handler) ReadyCheck(c *gin.Context) {
	cacheStatus := "disabled"
	if h.cache != nil {
		cacheStatus = "ok"
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"checks": gin.H{
			"cache": cacheStatus,
		},
	})
}

// cacheGet loads a cached response into out. Returns false when caching is
// disabled, the key is empty, or the entry is missing or unreadable.
func (h *Handler) cacheGet(ctx context.Context, key string, out any) bool {
	if h.cache == nil || key == "" {
		return false
	}
	if err := h.cache.Get(ctx, key, out); err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			h.logger.Warn("Cache read failed", "key", key, "error", err)
		}
		h.telemetry.RecordCacheMiss()
		return false
	}
	h.telemetry.RecordCacheHit()
	return true
}

func (h *Handler) cacheSet(ctx context.Context, key string, value any) {
	if h.cache == nil || key == "" {
		return
	}
	if err := h.cache.Set(ctx, key, value); err != nil {
		h.logger.Warn("Cache write failed", "key", key, "error", err)
	}
}

func analysisCacheKey(videoID string) string {
	if videoID == "" {
		return ""
	}
	return "analysis:" + videoID
}

func advancedCacheKey(videoID string) string {
	if videoID == "" {
		return ""
	}
	return "advanced:" + videoID
}

func scoreCacheKey(videoID string) string {
	if videoID == "" {
		return ""
	}
	return "score:" + videoID
}
