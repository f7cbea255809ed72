package scoring

import (
	"reflect"
	"testing"

	"github.com/oportunia/radar/internal/domain"
	"github.com/oportunia/radar/internal/logging"
)

func testEngine() *Engine {
	return NewEngine(logging.NewAdapter(logging.NewNop()))
}

func goldVideo() *domain.Video {
	return &domain.Video{
		ID:                       "vid-ouro",
		Title:                    "Planilha de orçamento completa",
		Views:                    1_200_000,
		Likes:                    100_000,
		Comments:                 1500,
		EngagementRate:           55,
		CommentsPerThousandViews: 25,
		ViewsPerDay:              12_000,
		ChannelPerformanceRatio:  6,
		ChannelStats: &domain.ChannelStats{
			SubscriberCount:  8000,
			AvgViewsPerVideo: 200_000,
		},
		CommentAnalysis: &domain.CommentAnalysis{
			TotalComments:          100,
			QuestionDensity:        45,
			MaterialRequestDensity: 22,
			ProblemStatementsCount: 20,
		},
	}
}

func TestScoreGoldOpportunity(t *testing.T) {
	breakdown := testEngine().Score(goldVideo())

	if breakdown.EngagementScore != 30 {
		t.Errorf("EngagementScore = %d, want 30", breakdown.EngagementScore)
	}
	if breakdown.CommentAnalysisScore != 25 {
		t.Errorf("CommentAnalysisScore = %d, want 25", breakdown.CommentAnalysisScore)
	}
	if breakdown.GrowthScore != 10 {
		t.Errorf("GrowthScore = %d, want 10", breakdown.GrowthScore)
	}
	if breakdown.ChannelScore != 10 {
		t.Errorf("ChannelScore = %d, want 10", breakdown.ChannelScore)
	}
	if breakdown.ContentQualityScore != 25 {
		t.Errorf("ContentQualityScore = %d, want 25", breakdown.ContentQualityScore)
	}
	if breakdown.TotalScore != 100 {
		t.Errorf("TotalScore = %d, want 100", breakdown.TotalScore)
	}
	if breakdown.Opportunity != domain.OpportunityOuro {
		t.Errorf("Opportunity = %q, want %q", breakdown.Opportunity, domain.OpportunityOuro)
	}
	for _, factor := range []string{
		"engagement", "comment_analysis", "growth", "channel", "content_quality",
	} {
		if breakdown.Breakdown[factor] == "" {
			t.Errorf("missing breakdown detail for %q", factor)
		}
	}
}

func TestScoreZeroValuedVideo(t *testing.T) {
	breakdown := testEngine().Score(&domain.Video{ID: "vid-vazio"})

	// No channel stats scores neutral, everything else zero.
	if breakdown.ChannelScore != neutralChannelScore {
		t.Errorf("ChannelScore = %d, want neutral %d", breakdown.ChannelScore, neutralChannelScore)
	}
	if breakdown.TotalScore != neutralChannelScore {
		t.Errorf("TotalScore = %d, want %d", breakdown.TotalScore, neutralChannelScore)
	}
	if breakdown.Opportunity != domain.OpportunityBaixa {
		t.Errorf("Opportunity = %q, want %q", breakdown.Opportunity, domain.OpportunityBaixa)
	}
}

func TestScoreNilCommentAnalysisContributesNothing(t *testing.T) {
	video := goldVideo()
	video.CommentAnalysis = nil

	breakdown := testEngine().Score(video)

	if breakdown.CommentAnalysisScore != 0 {
		t.Errorf("CommentAnalysisScore = %d, want 0 without analysis", breakdown.CommentAnalysisScore)
	}
}

func TestScoreEmptyCommentSetContributesNothing(t *testing.T) {
	video := goldVideo()
	video.CommentAnalysis = &domain.CommentAnalysis{TotalComments: 0}

	breakdown := testEngine().Score(video)

	if breakdown.CommentAnalysisScore != 0 {
		t.Errorf("CommentAnalysisScore = %d, want 0 on empty set", breakdown.CommentAnalysisScore)
	}
}

func TestScoreDeterministic(t *testing.T) {
	engine := testEngine()
	video := goldVideo()

	first := engine.Score(video)
	second := engine.Score(video)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("scoring not deterministic:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestAddInfoproductScoreWritesBack(t *testing.T) {
	video := goldVideo()

	breakdown := testEngine().AddInfoproductScore(video)

	if video.InfoproductScore != breakdown.TotalScore {
		t.Errorf("InfoproductScore = %d, breakdown total = %d",
			video.InfoproductScore, breakdown.TotalScore)
	}
}

func TestEngagementScoreLadder(t *testing.T) {
	tests := []struct {
		name           string
		engagementRate float64
		commentRatio   float64
		want           int
	}{
		{"both top band", 55, 25, 30},
		{"mid bands", 20, 7, 15},
		{"just over the low bands", 5.1, 2.1, 7},
		{"below every band", 5, 2, 0},
		{"zero metrics", 0, 0, 0},
	}

	engine := testEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video := &domain.Video{
				EngagementRate:           tt.engagementRate,
				CommentsPerThousandViews: tt.commentRatio,
			}
			if got := engine.engagementScore(video); got != tt.want {
				t.Errorf("engagementScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCommentAnalysisScoreLadder(t *testing.T) {
	tests := []struct {
		name     string
		analysis domain.CommentAnalysis
		want     int
	}{
		{
			name: "maximum demand signals",
			analysis: domain.CommentAnalysis{
				TotalComments:          100,
				QuestionDensity:        45,
				MaterialRequestDensity: 25,
				ProblemStatementsCount: 20,
			},
			want: 25,
		},
		{
			name: "moderate signals",
			analysis: domain.CommentAnalysis{
				TotalComments:          100,
				QuestionDensity:        25,
				MaterialRequestDensity: 12,
				ProblemStatementsCount: 5,
			},
			// 5 (questions) + 7 (material) + 1 (problems at 5%)
			want: 13,
		},
		{
			name:     "no signals",
			analysis: domain.CommentAnalysis{TotalComments: 100},
			want:     0,
		},
	}

	engine := testEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.commentAnalysisScore(&tt.analysis); got != tt.want {
				t.Errorf("commentAnalysisScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestChannelScoreSmallChannelBonus(t *testing.T) {
	engine := testEngine()

	small := &domain.Video{
		ChannelPerformanceRatio: 1.0,
		ChannelStats:            &domain.ChannelStats{SubscriberCount: 5000},
	}
	big := &domain.Video{
		ChannelPerformanceRatio: 1.0,
		ChannelStats:            &domain.ChannelStats{SubscriberCount: 2_000_000},
	}

	smallScore := engine.channelScore(small)
	bigScore := engine.channelScore(big)

	if smallScore <= bigScore {
		t.Errorf("small channel scored %d, big channel %d; small should outrank big at equal performance",
			smallScore, bigScore)
	}
}

func TestOpportunityTierBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, domain.OpportunityOuro},
		{80, domain.OpportunityOuro},
		{79, domain.OpportunityExcelente},
		{65, domain.OpportunityExcelente},
		{64, domain.OpportunityBoa},
		{50, domain.OpportunityBoa},
		{49, domain.OpportunityMedia},
		{30, domain.OpportunityMedia},
		{29, domain.OpportunityBaixa},
		{0, domain.OpportunityBaixa},
	}

	for _, tt := range tests {
		if got := domain.OpportunityTier(tt.score); got != tt.want {
			t.Errorf("OpportunityTier(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
