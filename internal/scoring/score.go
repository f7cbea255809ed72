// Package scoring turns an enriched video into a 0-100 infoproduct
// opportunity score with a per-factor breakdown. Scoring is pure: the same
// video always produces the same breakdown, and nothing here mutates shared
// state.
package scoring

import (
	"fmt"

	"github.com/oportunia/radar/internal/domain"
)

// Logger defines the logging interface
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Sub-score caps. They sum to the 0-100 total.
const (
	maxTotalScore           = 100
	maxEngagementScore      = 30
	maxCommentAnalysisScore = 25
	maxGrowthScore          = 10
	maxChannelScore         = 10
	maxContentQualityScore  = 25
)

// Engagement-rate point ladder (percentage thresholds).
const (
	engagementRate50 = 50.0
	engagementRate30 = 30.0
	engagementRate15 = 15.0
	engagementRate5  = 5.0

	engagementRatePoints20 = 20
	engagementRatePoints15 = 15
	engagementRatePoints10 = 10
	engagementRatePoints5  = 5
)

// Comments-per-thousand-views point ladder.
const (
	commentRatio20 = 20.0
	commentRatio10 = 10.0
	commentRatio5  = 5.0
	commentRatio2  = 2.0

	commentRatioPoints10 = 10
	commentRatioPoints7  = 7
	commentRatioPoints5  = 5
	commentRatioPoints2  = 2
)

// Question-density point ladder (percentage of comments that are questions).
const (
	questionDensity40 = 40.0
	questionDensity30 = 30.0
	questionDensity20 = 20.0
	questionDensity10 = 10.0

	questionDensityPoints10 = 10
	questionDensityPoints8  = 8
	questionDensityPoints5  = 5
	questionDensityPoints3  = 3
)

// Material-request-density point ladder. Requests for spreadsheets, ebooks
// and the like are the strongest direct demand signal, so this ladder tops
// the comment-analysis factor.
const (
	materialDensity20 = 20.0
	materialDensity15 = 15.0
	materialDensity10 = 10.0
	materialDensity5  = 5.0
	materialDensity2  = 2.0

	materialDensityPoints12 = 12
	materialDensityPoints9  = 9
	materialDensityPoints7  = 7
	materialDensityPoints4  = 4
	materialDensityPoints2  = 2
)

// Problem-statement ratio point ladder (fraction, not percentage).
const (
	problemRatio15 = 0.15
	problemRatio8  = 0.08
	problemRatio3  = 0.03

	problemRatioPoints3 = 3
	problemRatioPoints2 = 2
	problemRatioPoints1 = 1
)

// Views-per-day point ladder.
const (
	viewsPerDay10000 = 10000.0
	viewsPerDay5000  = 5000.0
	viewsPerDay2000  = 2000.0
	viewsPerDay1000  = 1000.0
	viewsPerDay500   = 500.0

	viewsPerDayPoints10 = 10
	viewsPerDayPoints8  = 8
	viewsPerDayPoints6  = 6
	viewsPerDayPoints4  = 4
	viewsPerDayPoints2  = 2
)

// Channel factor ladders. Outperformance measures the video against the
// channel's own average; small-channel bonus rewards niches an independent
// creator can still enter.
const (
	performanceRatio5   = 5.0
	performanceRatio3   = 3.0
	performanceRatio2   = 2.0
	performanceRatio1_5 = 1.5
	performanceRatio0_8 = 0.8

	performanceRatioPoints5 = 5
	performanceRatioPoints4 = 4
	performanceRatioPoints3 = 3
	performanceRatioPoints2 = 2
	performanceRatioPoints1 = 1

	subscribers10k  = 10_000
	subscribers50k  = 50_000
	subscribers100k = 100_000
	subscribers500k = 500_000
	subscribers1M   = 1_000_000

	smallChannelPoints5 = 5
	smallChannelPoints4 = 4
	smallChannelPoints3 = 3
	smallChannelPoints2 = 2
	smallChannelPoints1 = 1

	// neutralChannelScore applies when channel stats are missing; absence
	// of data is not a penalty.
	neutralChannelScore = 5
)

// Content-quality ladders (absolute reach and approval).
const (
	views1M    = 1_000_000
	views500k  = 500_000
	views100k  = 100_000
	views50k   = 50_000
	views10k   = 10_000
	viewsPts10 = 10
	viewsPts8  = 8
	viewsPts6  = 6
	viewsPts4  = 4
	viewsPts2  = 2

	comments1000 = 1000
	comments500  = 500
	comments200  = 200
	comments100  = 100
	comments50   = 50
	commentsPts10 = 10
	commentsPts8  = 8
	commentsPts6  = 6
	commentsPts4  = 4
	commentsPts2  = 2

	likeRate8 = 8.0
	likeRate5 = 5.0
	likeRate3 = 3.0
	likeRate1 = 1.0
	likeRatePts5 = 5
	likeRatePts4 = 4
	likeRatePts3 = 3
	likeRatePts2 = 2

	percentScale = 100.0
)

// Breakdown factor keys.
const (
	factorEngagement      = "engagement"
	factorCommentAnalysis = "comment_analysis"
	factorGrowth          = "growth"
	factorChannel         = "channel"
	factorContentQuality  = "content_quality"
)

// Engine computes infoproduct opportunity scores.
type Engine struct {
	logger Logger
}

// NewEngine creates a scoring engine.
func NewEngine(logger Logger) *Engine {
	return &Engine{logger: logger}
}

// Score computes the full breakdown for one enriched video. Missing
// enrichment data (no channel stats, no comment analysis) degrades the
// affected factor to its neutral or zero value; it never errors.
func (e *Engine) Score(video *domain.Video) domain.ScoreBreakdown {
	engagement := e.engagementScore(video)
	commentAnalysis := e.commentAnalysisScore(video.CommentAnalysis)
	growth := e.growthScore(video)
	channel := e.channelScore(video)
	quality := e.contentQualityScore(video)

	total := clamp(engagement+commentAnalysis+growth+channel+quality, 0, maxTotalScore)

	breakdown := domain.ScoreBreakdown{
		TotalScore:           total,
		EngagementScore:      engagement,
		CommentAnalysisScore: commentAnalysis,
		GrowthScore:          growth,
		ChannelScore:         channel,
		ContentQualityScore:  quality,
		Breakdown: map[string]string{
			factorEngagement: fmt.Sprintf("Engajamento: %d/%d (taxa %.1f%%, %.1f comentários/mil views)",
				engagement, maxEngagementScore, video.EngagementRate, video.CommentsPerThousandViews),
			factorCommentAnalysis: commentAnalysisDetail(commentAnalysis, video.CommentAnalysis),
			factorGrowth: fmt.Sprintf("Crescimento: %d/%d (%.0f views/dia)",
				growth, maxGrowthScore, video.ViewsPerDay),
			factorChannel: channelDetail(channel, video),
			factorContentQuality: fmt.Sprintf("Qualidade do conteúdo: %d/%d (%d views, %d comentários)",
				quality, maxContentQualityScore, video.Views, video.Comments),
		},
		Opportunity: domain.OpportunityTier(total),
	}

	e.logger.Debug("video scored",
		"video_id", video.ID,
		"total_score", total,
		"opportunity", breakdown.Opportunity,
	)

	return breakdown
}

// AddInfoproductScore scores the video and writes the total back onto it,
// returning the full breakdown.
func (e *Engine) AddInfoproductScore(video *domain.Video) domain.ScoreBreakdown {
	breakdown := e.Score(video)
	video.InfoproductScore = breakdown.TotalScore
	return breakdown
}

// engagementScore rewards interaction rates relative to reach (0-30).
func (e *Engine) engagementScore(video *domain.Video) int {
	score := 0

	switch {
	case video.EngagementRate > engagementRate50:
		score += engagementRatePoints20
	case video.EngagementRate > engagementRate30:
		score += engagementRatePoints15
	case video.EngagementRate > engagementRate15:
		score += engagementRatePoints10
	case video.EngagementRate > engagementRate5:
		score += engagementRatePoints5
	}

	switch {
	case video.CommentsPerThousandViews > commentRatio20:
		score += commentRatioPoints10
	case video.CommentsPerThousandViews > commentRatio10:
		score += commentRatioPoints7
	case video.CommentsPerThousandViews > commentRatio5:
		score += commentRatioPoints5
	case video.CommentsPerThousandViews > commentRatio2:
		score += commentRatioPoints2
	}

	return clamp(score, 0, maxEngagementScore)
}

// commentAnalysisScore rewards direct demand signals in the comments
// (0-25). A missing or empty analysis contributes nothing.
func (e *Engine) commentAnalysisScore(analysis *domain.CommentAnalysis) int {
	if analysis == nil || analysis.TotalComments == 0 {
		return 0
	}

	score := 0

	switch {
	case analysis.QuestionDensity > questionDensity40:
		score += questionDensityPoints10
	case analysis.QuestionDensity > questionDensity30:
		score += questionDensityPoints8
	case analysis.QuestionDensity > questionDensity20:
		score += questionDensityPoints5
	case analysis.QuestionDensity > questionDensity10:
		score += questionDensityPoints3
	}

	switch {
	case analysis.MaterialRequestDensity > materialDensity20:
		score += materialDensityPoints12
	case analysis.MaterialRequestDensity > materialDensity15:
		score += materialDensityPoints9
	case analysis.MaterialRequestDensity > materialDensity10:
		score += materialDensityPoints7
	case analysis.MaterialRequestDensity > materialDensity5:
		score += materialDensityPoints4
	case analysis.MaterialRequestDensity > materialDensity2:
		score += materialDensityPoints2
	}

	problemRatio := float64(analysis.ProblemStatementsCount) / float64(analysis.TotalComments)
	switch {
	case problemRatio > problemRatio15:
		score += problemRatioPoints3
	case problemRatio > problemRatio8:
		score += problemRatioPoints2
	case problemRatio > problemRatio3:
		score += problemRatioPoints1
	}

	return clamp(score, 0, maxCommentAnalysisScore)
}

// growthScore rewards view velocity (0-10).
func (e *Engine) growthScore(video *domain.Video) int {
	switch {
	case video.ViewsPerDay > viewsPerDay10000:
		return viewsPerDayPoints10
	case video.ViewsPerDay > viewsPerDay5000:
		return viewsPerDayPoints8
	case video.ViewsPerDay > viewsPerDay2000:
		return viewsPerDayPoints6
	case video.ViewsPerDay > viewsPerDay1000:
		return viewsPerDayPoints4
	case video.ViewsPerDay > viewsPerDay500:
		return viewsPerDayPoints2
	default:
		return 0
	}
}

// channelScore combines outperformance against the channel's own average
// with a small-channel bonus (0-10). Missing stats score neutral.
func (e *Engine) channelScore(video *domain.Video) int {
	if video.ChannelStats == nil {
		return neutralChannelScore
	}

	score := 0

	switch {
	case video.ChannelPerformanceRatio > performanceRatio5:
		score += performanceRatioPoints5
	case video.ChannelPerformanceRatio > performanceRatio3:
		score += performanceRatioPoints4
	case video.ChannelPerformanceRatio > performanceRatio2:
		score += performanceRatioPoints3
	case video.ChannelPerformanceRatio > performanceRatio1_5:
		score += performanceRatioPoints2
	case video.ChannelPerformanceRatio > performanceRatio0_8:
		score += performanceRatioPoints1
	}

	switch {
	case video.ChannelStats.SubscriberCount < subscribers10k:
		score += smallChannelPoints5
	case video.ChannelStats.SubscriberCount < subscribers50k:
		score += smallChannelPoints4
	case video.ChannelStats.SubscriberCount < subscribers100k:
		score += smallChannelPoints3
	case video.ChannelStats.SubscriberCount < subscribers500k:
		score += smallChannelPoints2
	case video.ChannelStats.SubscriberCount < subscribers1M:
		score += smallChannelPoints1
	}

	return clamp(score, 0, maxChannelScore)
}

// contentQualityScore rewards proven absolute reach and approval (0-25).
func (e *Engine) contentQualityScore(video *domain.Video) int {
	score := 0

	switch {
	case video.Views > views1M:
		score += viewsPts10
	case video.Views > views500k:
		score += viewsPts8
	case video.Views > views100k:
		score += viewsPts6
	case video.Views > views50k:
		score += viewsPts4
	case video.Views > views10k:
		score += viewsPts2
	}

	switch {
	case video.Comments > comments1000:
		score += commentsPts10
	case video.Comments > comments500:
		score += commentsPts8
	case video.Comments > comments200:
		score += commentsPts6
	case video.Comments > comments100:
		score += commentsPts4
	case video.Comments > comments50:
		score += commentsPts2
	}

	if video.Views > 0 {
		likeRate := float64(video.Likes) / float64(video.Views) * percentScale
		switch {
		case likeRate > likeRate8:
			score += likeRatePts5
		case likeRate > likeRate5:
			score += likeRatePts4
		case likeRate > likeRate3:
			score += likeRatePts3
		case likeRate > likeRate1:
			score += likeRatePts2
		}
	}

	return clamp(score, 0, maxContentQualityScore)
}

func commentAnalysisDetail(score int, analysis *domain.CommentAnalysis) string {
	if analysis == nil || analysis.TotalComments == 0 {
		return fmt.Sprintf("Análise de comentários: %d/%d (sem comentários analisados)",
			score, maxCommentAnalysisScore)
	}
	return fmt.Sprintf("Análise de comentários: %d/%d (%.1f%% perguntas, %.1f%% pedidos de material)",
		score, maxCommentAnalysisScore, analysis.QuestionDensity, analysis.MaterialRequestDensity)
}

func channelDetail(score int, video *domain.Video) string {
	if video.ChannelStats == nil {
		return fmt.Sprintf("Canal: %d/%d (sem dados do canal)", score, maxChannelScore)
	}
	return fmt.Sprintf("Canal: %d/%d (%.1fx a média do canal, %d inscritos)",
		score, maxChannelScore, video.ChannelPerformanceRatio, video.ChannelStats.SubscriberCount)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
