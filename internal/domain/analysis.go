package domain

// AdvancedCommentAnalysis extends CommentAnalysis with seven categorical
// sub-reports. Every sub-report is derived and stateless; an empty comment
// set produces the zero-valued shape of each report, never an error.
type AdvancedCommentAnalysis struct {
	CommentAnalysis

	PainPoints   PainPointAnalysis    `json:"pain_points"`
	Recurrence   RecurrenceAnalysis   `json:"recurrence"`
	Objections   ObjectionAnalysis    `json:"objections"`
	Awareness    AwarenessAnalysis    `json:"awareness"`
	WordCloud    WordCloudAnalysis    `json:"word_cloud"`
	Competitors  CompetitorAnalysis   `json:"competitors"`
	Segmentation SegmentationAnalysis `json:"segmentation"`
}

// PainPointAnalysis tallies comments by pain type.
type PainPointAnalysis struct {
	TotalPainPoints  int            `json:"total_pain_points"`
	PainDensity      float64        `json:"pain_density"`
	CountsByType     map[string]int `json:"counts_by_type"`
	DominantPainType string         `json:"dominant_pain_type"`
	TopPainPoints    []Comment      `json:"top_pain_points"`
	Insight          string         `json:"insight"`
}

// RecurrenceAnalysis detects demand for recurring value (automation,
// community, updates, monitoring, templates, support) which signals a
// SaaS or membership opportunity rather than a one-off product.
type RecurrenceAnalysis struct {
	TotalRecurrenceSignals int            `json:"total_recurrence_signals"`
	RecurrenceDensity      float64        `json:"recurrence_density"`
	CountsByType           map[string]int `json:"counts_by_type"`
	DominantType           string         `json:"dominant_type"`
	TopSignals             []Comment      `json:"top_signals"`
	HasSaaSOpportunity     bool           `json:"has_saas_opportunity"`
	Insight                string         `json:"insight"`
}

// ObjectionAnalysis tallies purchase objections and suggests a handling
// angle for the dominant one.
type ObjectionAnalysis struct {
	TotalObjections    int            `json:"total_objections"`
	ObjectionDensity   float64        `json:"objection_density"`
	CountsByType       map[string]int `json:"counts_by_type"`
	DominantObjection  string         `json:"dominant_objection"`
	TopObjections      []Comment      `json:"top_objections"`
	HandlingSuggestion string         `json:"handling_suggestion"`
}

// AwarenessAnalysis maps the comment set onto funnel awareness levels
// (unaware through most-aware).
type AwarenessAnalysis struct {
	TotalClassified int            `json:"total_classified"`
	CountsByLevel   map[string]int `json:"counts_by_level"`
	SharesByLevel   map[string]float64 `json:"shares_by_level"`
	DominantLevel   string         `json:"dominant_level"`
	Insight         string         `json:"insight"`
}

// WordTerm is one ranked token from the word cloud.
type WordTerm struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
	// Relevance is the frequency rank normalized to a 10-100 display
	// scale. Presentation sizing only; not used in further computation.
	Relevance int    `json:"relevance"`
	Bucket    string `json:"bucket"`
}

// Bigram is one adjacent-token pair with its frequency.
type Bigram struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

// WordCloudAnalysis holds unigram and bigram frequency extraction over the
// comment text.
type WordCloudAnalysis struct {
	TotalTokens int        `json:"total_tokens"`
	TopWords    []WordTerm `json:"top_words"`
	TopBigrams  []Bigram   `json:"top_bigrams"`
}

// CompetitorMention aggregates mentions of one known competitor/brand.
type CompetitorMention struct {
	Name            string         `json:"name"`
	Mentions        int            `json:"mentions"`
	SentimentCounts map[string]int `json:"sentiment_counts"`
	// OverallSentiment is the majority vote across mention contexts.
	OverallSentiment string    `json:"overall_sentiment"`
	Examples         []Comment `json:"examples"`
}

// CompetitorAnalysis holds competitor mention detection over a comment set.
type CompetitorAnalysis struct {
	TotalMentions int                 `json:"total_mentions"`
	Competitors   []CompetitorMention `json:"competitors"`
}

// SegmentationAnalysis buckets the audience by language markers.
type SegmentationAnalysis struct {
	CountsBySegment map[string]int     `json:"counts_by_segment"`
	SharesBySegment map[string]float64 `json:"shares_by_segment"`
	DominantSegment string             `json:"dominant_segment"`
	// DiversityScore is the normalized entropy of the segment distribution
	// on a 0-100 scale; 0 means a single segment, 100 a uniform spread.
	DiversityScore int `json:"diversity_score"`
}
