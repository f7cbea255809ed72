package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oportunia/radar/internal/analyzer"
	"github.com/oportunia/radar/internal/domain"
	"github.com/oportunia/radar/internal/logging"
	"github.com/oportunia/radar/internal/scoring"
)

type stubCommentSource struct {
	comments []domain.Comment
	err      error
}

func (s *stubCommentSource) FetchComments(ctx context.Context, videoID string) ([]domain.Comment, error) {
	return s.comments, s.err
}

type stubVideoSource struct {
	stats *domain.ChannelStats
	err   error
}

func (s *stubVideoSource) SearchVideos(ctx context.Context, query string, limit int) ([]domain.Video, error) {
	return nil, nil
}

func (s *stubVideoSource) FetchChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error) {
	return s.stats, s.err
}

func testLogger() Logger {
	return logging.NewAdapter(logging.NewNop())
}

func newTestEnricher(comments *stubCommentSource, channels *stubVideoSource) *Enricher {
	log := testLogger()
	return NewEnricher(
		comments,
		channels,
		analyzer.NewCommentAnalyzer(log),
		scoring.NewEngine(log),
		nil,
		log,
	)
}

func TestComputeMetrics(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	video := &domain.Video{
		Views:       100_000,
		Likes:       8_000,
		Comments:    2_000,
		PublishedAt: now.AddDate(0, 0, -10),
		ChannelStats: &domain.ChannelStats{
			AvgViewsPerVideo: 25_000,
		},
	}

	ComputeMetrics(video, now)

	if video.EngagementRate != 10 {
		t.Errorf("EngagementRate = %v, want 10", video.EngagementRate)
	}
	if video.CommentsPerThousandViews != 20 {
		t.Errorf("CommentsPerThousandViews = %v, want 20", video.CommentsPerThousandViews)
	}
	if video.ViewsPerDay != 10_000 {
		t.Errorf("ViewsPerDay = %v, want 10000", video.ViewsPerDay)
	}
	if video.ChannelPerformanceRatio != 4 {
		t.Errorf("ChannelPerformanceRatio = %v, want 4", video.ChannelPerformanceRatio)
	}
}

func TestComputeMetricsZeroViews(t *testing.T) {
	video := &domain.Video{PublishedAt: time.Now().AddDate(0, 0, -5)}

	ComputeMetrics(video, time.Now())

	if video.EngagementRate != 0 || video.CommentsPerThousandViews != 0 || video.ViewsPerDay != 0 {
		t.Errorf("zero-view video produced nonzero rates: %+v", video)
	}
}

func TestComputeMetricsFreshVideoAgeFloor(t *testing.T) {
	now := time.Now()
	video := &domain.Video{Views: 5000, PublishedAt: now.Add(-time.Hour)}

	ComputeMetrics(video, now)

	// Age floors at one day: views/day equals total views, not views*24.
	if video.ViewsPerDay != 5000 {
		t.Errorf("ViewsPerDay = %v, want 5000", video.ViewsPerDay)
	}
}

func TestEnrichAttachesAnalysisAndScore(t *testing.T) {
	enricher := newTestEnricher(
		&stubCommentSource{comments: []domain.Comment{
			{Text: "Onde acho essa planilha? Por favor compartilha", LikeCount: 3},
			{Text: "Muito bom vídeo!", LikeCount: 10},
		}},
		&stubVideoSource{stats: &domain.ChannelStats{SubscriberCount: 8000, AvgViewsPerVideo: 10_000}},
	)

	video := &domain.Video{
		ID:          "v1",
		ChannelID:   "ch1",
		Views:       60_000,
		Likes:       5_000,
		Comments:    900,
		PublishedAt: time.Now().AddDate(0, 0, -6),
	}

	breakdown, err := enricher.Enrich(context.Background(), video)
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}

	if video.ChannelStats == nil {
		t.Error("channel stats not attached")
	}
	if video.CommentAnalysis == nil {
		t.Fatal("comment analysis not attached")
	}
	if video.CommentAnalysis.MaterialRequestsCount != 1 {
		t.Errorf("MaterialRequestsCount = %d, want 1", video.CommentAnalysis.MaterialRequestsCount)
	}
	if video.InfoproductScore != breakdown.TotalScore {
		t.Errorf("InfoproductScore = %d, breakdown = %d", video.InfoproductScore, breakdown.TotalScore)
	}
	if breakdown.Opportunity == "" {
		t.Error("empty opportunity tier")
	}
}

func TestEnrichDegradesOnCollaboratorFailure(t *testing.T) {
	enricher := newTestEnricher(
		&stubCommentSource{err: errors.New("quota exceeded")},
		&stubVideoSource{err: errors.New("channel not found")},
	)

	video := &domain.Video{ID: "v1", ChannelID: "ch1", Views: 1000, PublishedAt: time.Now().AddDate(0, 0, -3)}

	breakdown, err := enricher.Enrich(context.Background(), video)
	if err != nil {
		t.Fatalf("Enrich should degrade, not fail: %v", err)
	}

	if video.CommentAnalysis != nil {
		t.Error("analysis attached despite fetch failure")
	}
	// Missing channel stats falls back to the neutral channel score.
	if breakdown.ChannelScore != 5 {
		t.Errorf("ChannelScore = %d, want neutral 5", breakdown.ChannelScore)
	}
}

func TestBatchScorerPreservesOrder(t *testing.T) {
	enricher := newTestEnricher(&stubCommentSource{}, &stubVideoSource{})
	batch := NewBatchScorer(enricher, 4, testLogger())

	videos := make([]domain.Video, 20)
	for i := range videos {
		videos[i] = domain.Video{
			ID:          string(rune('a' + i)),
			Views:       int64(1000 * (i + 1)),
			PublishedAt: time.Now().AddDate(0, 0, -30),
		}
	}

	results := batch.Process(context.Background(), videos)

	if len(results) != len(videos) {
		t.Fatalf("results = %d, want %d", len(results), len(videos))
	}
	for i, r := range results {
		if r.Video.ID != videos[i].ID {
			t.Errorf("results[%d].Video.ID = %q, want %q", i, r.Video.ID, videos[i].ID)
		}
		if r.Error != nil {
			t.Errorf("results[%d].Error = %v", i, r.Error)
		}
	}
}

func TestBatchScorerEmptyInput(t *testing.T) {
	enricher := newTestEnricher(&stubCommentSource{}, &stubVideoSource{})
	batch := NewBatchScorer(enricher, 4, testLogger())

	results := batch.Process(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("results = %v, want empty", results)
	}
}

func TestBatchScorerCancelledContext(t *testing.T) {
	enricher := newTestEnricher(&stubCommentSource{}, &stubVideoSource{})
	batch := NewBatchScorer(enricher, 2, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := batch.Process(ctx, []domain.Video{{ID: "v1"}, {ID: "v2"}})

	for _, r := range results {
		if r.Error == nil {
			t.Errorf("result for %s has nil error despite cancelled context", r.Video.ID)
		}
	}
}
