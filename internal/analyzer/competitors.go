package analyzer

import (
	"sort"
	"sync"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/oportunia/radar/internal/domain"
	"github.com/oportunia/radar/internal/patterns"
)

const maxCompetitorExamples = 3

// DefaultCompetitors is the built-in brand/creator list scanned for in
// comment text. Entries are matched against normalized text, so they carry
// no accents and use lowercase.
var DefaultCompetitors = []string{
	"hotmart",
	"kiwify",
	"eduzz",
	"monetizze",
	"udemy",
	"hostinger",
	"nuvemshop",
	"shopify",
	"primo rico",
	"primo pobre",
	"me poupe",
	"nathalia arcuri",
	"erico rocha",
	"ladeira",
	"pablo marcal",
	"joel jota",
	"flavio augusto",
	"gkay",
	"sebrae",
	"g4 educacao",
	"kultivi",
	"alura",
	"rocketseat",
	"descomplica",
	"estrategia concursos",
}

// CompetitorDetector scans comments for known competitor/brand names in a
// single Aho-Corasick pass per comment and classifies each mention's
// sentiment from its surrounding text.
type CompetitorDetector struct {
	mu      sync.RWMutex
	names   []string
	matcher *ahocorasick.Matcher
}

// NewCompetitorDetector builds the automaton over the given name list.
// Names are normalized before insertion; empty entries are dropped.
func NewCompetitorDetector(names []string) *CompetitorDetector {
	d := &CompetitorDetector{}
	d.rebuild(names)
	return d
}

// UpdateNames hot-swaps the competitor list without rebuilding the detector.
func (d *CompetitorDetector) UpdateNames(names []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rebuildLocked(names)
}

func (d *CompetitorDetector) rebuild(names []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rebuildLocked(names)
}

func (d *CompetitorDetector) rebuildLocked(names []string) {
	d.names = make([]string, 0, len(names))
	for _, n := range names {
		normalized := patterns.Normalize(n)
		if normalized == "" {
			continue
		}
		d.names = append(d.names, normalized)
	}
	if len(d.names) > 0 {
		d.matcher = ahocorasick.NewStringMatcher(d.names)
	} else {
		d.matcher = nil
	}
}

// Detect aggregates competitor mentions across the comment set. For every
// comment that mentions a competitor, the whole comment's sentiment is
// counted toward that competitor; OverallSentiment is the majority vote
// with ties broken toward neutral.
func (d *CompetitorDetector) Detect(comments []domain.Comment) domain.CompetitorAnalysis {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := domain.CompetitorAnalysis{
		Competitors: []domain.CompetitorMention{},
	}
	if d.matcher == nil {
		return result
	}

	byName := make(map[string]*domain.CompetitorMention)

	for _, c := range comments {
		normalized := patterns.Normalize(c.Text)
		hits := d.matcher.Match([]byte(normalized))
		if len(hits) == 0 {
			continue
		}

		sentiment := patterns.CompetitorSentiment(c.Text)

		// A comment naming the same competitor twice counts once.
		seen := make(map[string]bool, len(hits))
		for _, hit := range hits {
			if hit >= len(d.names) {
				continue
			}
			name := d.names[hit]
			if seen[name] {
				continue
			}
			seen[name] = true

			mention, ok := byName[name]
			if !ok {
				mention = &domain.CompetitorMention{
					Name:            name,
					SentimentCounts: make(map[string]int),
				}
				byName[name] = mention
			}
			mention.Mentions++
			mention.SentimentCounts[sentiment]++
			if len(mention.Examples) < maxCompetitorExamples {
				mention.Examples = append(mention.Examples, c)
			}
			result.TotalMentions++
		}
	}

	for _, mention := range byName {
		mention.OverallSentiment = majoritySentiment(mention.SentimentCounts)
		result.Competitors = append(result.Competitors, *mention)
	}

	sort.Slice(result.Competitors, func(i, j int) bool {
		if result.Competitors[i].Mentions != result.Competitors[j].Mentions {
			return result.Competitors[i].Mentions > result.Competitors[j].Mentions
		}
		return result.Competitors[i].Name < result.Competitors[j].Name
	})

	return result
}

// majoritySentiment picks the most frequent sentiment label; ties resolve
// to neutral.
func majoritySentiment(counts map[string]int) string {
	best := patterns.SentimentNeutral
	bestCount := counts[patterns.SentimentNeutral]
	for _, label := range []string{
		patterns.SentimentPositive,
		patterns.SentimentNegative,
		patterns.SentimentComparison,
	} {
		if counts[label] > bestCount {
			best = label
			bestCount = counts[label]
		}
	}
	return best
}
