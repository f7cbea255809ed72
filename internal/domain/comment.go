// Package domain defines the plain data records exchanged between the
// analysis engine and its collaborators (comment source, metrics source,
// presentation layer). All records are value types with no behavior beyond
// trivial derivations; they are never persisted and live for one search
// session.
package domain

// Comment is a single user comment on a video, as delivered by the comment
// source. Immutable once fetched.
type Comment struct {
	Author         string `json:"author"`
	AuthorImageURL string `json:"author_image_url"`
	Text           string `json:"text"`
	LikeCount      int    `json:"like_count"`
}

// CommentAnalysis is the aggregate classifier output over one comment set.
// It is always recomputed from scratch when the set grows (pagination),
// never mutated in place.
type CommentAnalysis struct {
	TotalComments          int `json:"total_comments"`
	QuestionsCount         int `json:"questions_count"`
	MaterialRequestsCount  int `json:"material_requests_count"`
	ProblemStatementsCount int `json:"problem_statements_count"`

	// Densities are percentages (0-100) of the comment set.
	QuestionDensity        float64 `json:"question_density"`
	MaterialRequestDensity float64 `json:"material_request_density"`

	TopQuestions        []Comment `json:"top_questions"`
	TopMaterialRequests []Comment `json:"top_material_requests"`

	// UnansweredQuestionsCount counts questions with zero likes. This is a
	// heuristic proxy for "no community validation", not a true
	// unanswered-question detector; very recent popular questions may be
	// misclassified.
	UnansweredQuestionsCount int `json:"unanswered_questions_count"`
}
