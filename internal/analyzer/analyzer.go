// Package analyzer aggregates pattern-classifier output over comment sets.
// Every function recomputes from the full comment set it is given (the
// comment source paginates; callers re-invoke with the grown set) and
// returns a well-formed zero value on empty input.
package analyzer

import (
	"sort"

	"github.com/oportunia/radar/internal/domain"
	"github.com/oportunia/radar/internal/patterns"
)

// Logger defines the logging interface
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

const (
	// maxTopExamples caps the top-ranked example lists of the base report.
	maxTopExamples = 10
	// percentScale converts a ratio to a 0-100 density.
	percentScale = 100.0
)

// CommentAnalyzer produces the quantitative CommentAnalysis report.
type CommentAnalyzer struct {
	logger Logger
}

// NewCommentAnalyzer creates a new comment analyzer.
func NewCommentAnalyzer(logger Logger) *CommentAnalyzer {
	return &CommentAnalyzer{logger: logger}
}

// Analyze classifies every comment independently and aggregates counts,
// densities and top-ranked examples. An empty set yields the zero-valued
// report, never a division by zero.
func (a *CommentAnalyzer) Analyze(comments []domain.Comment) domain.CommentAnalysis {
	total := len(comments)
	if total == 0 {
		return domain.CommentAnalysis{
			TopQuestions:        []domain.Comment{},
			TopMaterialRequests: []domain.Comment{},
		}
	}

	var questions, requests []domain.Comment
	analysis := domain.CommentAnalysis{TotalComments: total}

	for _, c := range comments {
		isQuestion := patterns.IsQuestion(c.Text)
		if isQuestion {
			analysis.QuestionsCount++
			questions = append(questions, c)
			if c.LikeCount == 0 {
				analysis.UnansweredQuestionsCount++
			}
		}
		if patterns.IsMaterialRequest(c.Text) {
			analysis.MaterialRequestsCount++
			requests = append(requests, c)
		}
		if patterns.IsProblemStatement(c.Text) {
			analysis.ProblemStatementsCount++
		}
	}

	analysis.QuestionDensity = float64(analysis.QuestionsCount) / float64(total) * percentScale
	analysis.MaterialRequestDensity = float64(analysis.MaterialRequestsCount) / float64(total) * percentScale
	analysis.TopQuestions = topByLikes(questions, maxTopExamples)
	analysis.TopMaterialRequests = topByLikes(requests, maxTopExamples)

	a.logger.Debug("comment set analyzed",
		"total", total,
		"questions", analysis.QuestionsCount,
		"material_requests", analysis.MaterialRequestsCount,
		"problem_statements", analysis.ProblemStatementsCount,
	)

	return analysis
}

// topByLikes returns the n most-liked comments. The sort is stable so
// comments with equal likes keep their input order.
func topByLikes(comments []domain.Comment, n int) []domain.Comment {
	ranked := make([]domain.Comment, len(comments))
	copy(ranked, comments)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].LikeCount > ranked[j].LikeCount
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// density is the percentage of total that count represents, zero-guarded.
func density(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * percentScale
}

// dominantLabel returns the highest-count label, breaking ties by the
// fixed enumeration order the taxonomy declares.
func dominantLabel(counts map[string]int, order []string) string {
	best := ""
	bestCount := 0
	for _, label := range order {
		if counts[label] > bestCount {
			best = label
			bestCount = counts[label]
		}
	}
	return best
}
