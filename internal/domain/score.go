package domain

// Opportunity tier constants. Tiers are labelled in Portuguese for the
// dashboard; the mapping from total score is fixed and exhaustive.
const (
	OpportunityBaixa     = "baixa"
	OpportunityMedia     = "média"
	OpportunityBoa       = "boa"
	OpportunityExcelente = "excelente"
	OpportunityOuro      = "ouro"
)

// Tier thresholds, evaluated high to low.
const (
	tierOuroThreshold      = 80
	tierExcelenteThreshold = 65
	tierBoaThreshold       = 50
	tierMediaThreshold     = 30
)

// ScoreBreakdown is the scoring engine output for one video.
type ScoreBreakdown struct {
	TotalScore int `json:"total_score"`

	EngagementScore      int `json:"engagement_score"`
	CommentAnalysisScore int `json:"comment_analysis_score"`
	GrowthScore          int `json:"growth_score"`
	ChannelScore         int `json:"channel_score"`
	ContentQualityScore  int `json:"content_quality_score"`

	// Breakdown maps each sub-score name to a human-readable detail line.
	Breakdown map[string]string `json:"breakdown"`

	Opportunity string `json:"opportunity"`
}

// OpportunityTier maps a total score to its tier. Pure and monotonic:
// exactly 80 is already "ouro", 79 is "excelente".
func OpportunityTier(totalScore int) string {
	switch {
	case totalScore >= tierOuroThreshold:
		return OpportunityOuro
	case totalScore >= tierExcelenteThreshold:
		return OpportunityExcelente
	case totalScore >= tierBoaThreshold:
		return OpportunityBoa
	case totalScore >= tierMediaThreshold:
		return OpportunityMedia
	default:
		return OpportunityBaixa
	}
}
