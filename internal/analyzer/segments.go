package analyzer

import (
	"math"

	"github.com/oportunia/radar/internal/domain"
	"github.com/oportunia/radar/internal/patterns"
)

var segmentOrder = []string{
	patterns.SegmentIniciante,
	patterns.SegmentProfissional,
	patterns.SegmentEmpreendedor,
	patterns.SegmentEstudante,
	patterns.SegmentGeral,
}

// analyzeSegments buckets the audience by language markers and measures
// how spread out it is. DiversityScore is the Shannon entropy of the
// segment distribution normalized to 0-100: one segment scores 0, a
// perfectly even spread scores 100.
func analyzeSegments(comments []domain.Comment) domain.SegmentationAnalysis {
	counts := make(map[string]int)
	for _, c := range comments {
		counts[patterns.DetectSegment(c.Text)]++
	}

	shares := make(map[string]float64, len(segmentOrder))
	for _, seg := range segmentOrder {
		shares[seg] = density(counts[seg], len(comments))
	}

	return domain.SegmentationAnalysis{
		CountsBySegment: counts,
		SharesBySegment: shares,
		DominantSegment: dominantLabel(counts, segmentOrder),
		DiversityScore:  diversityScore(counts, len(comments)),
	}
}

func diversityScore(counts map[string]int, total int) int {
	if total == 0 || len(counts) <= 1 {
		return 0
	}

	entropy := 0.0
	nonZero := 0
	for _, count := range counts {
		if count == 0 {
			continue
		}
		nonZero++
		p := float64(count) / float64(total)
		entropy -= p * math.Log2(p)
	}
	if nonZero <= 1 {
		return 0
	}

	maxEntropy := math.Log2(float64(nonZero))
	return int(math.Round(entropy / maxEntropy * percentScale))
}
