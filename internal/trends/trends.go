// Package trends derives batch-level insight over one search's scored
// videos: tag rankings, tag co-occurrence, viral-velocity flags, recency
// and niche/competition characterization. Everything is recomputed per
// batch; no state survives across searches.
package trends

import (
	"sort"
	"strings"
	"time"

	"github.com/oportunia/radar/internal/domain"
)

// Logger defines the logging interface
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

const (
	maxTopTags         = 20
	maxTagCombinations = 10
	maxViralVideos     = 10

	// Each tag pairs with at most the next 2 tags in its list. Bounds
	// combination count on tag-heavy videos without losing the pairs that
	// matter (adjacent tags are the ones authors group deliberately).
	coOccurrenceWindow = 2
	minCombinationCount = 2

	minViralScore    = 30
	accelerationDays = 14

	recentWindowDays    = 30
	recentShareRising   = 40.0
	recentShareStable   = 20.0

	nicheAvgSubscribers   = 200_000
	smallChannelSubs      = 50_000
	largeChannelSubs      = 500_000
	largeShareHigh        = 50.0
	mediumShareMedium     = 40.0
	smallShareOpportunity = 60.0

	hoursPerDay  = 24
	percentScale = 100.0
)

// Viral score point ladders.
const (
	viralViewsPerDay10000 = 10_000.0
	viralViewsPerDay5000  = 5_000.0
	viralViewsPerDay2000  = 2_000.0
	viralViewsPerDay1000  = 1_000.0
	viralViewsPerDay500   = 500.0

	viralViewsPoints40 = 40
	viralViewsPoints30 = 30
	viralViewsPoints20 = 20
	viralViewsPoints10 = 10
	viralViewsPoints5  = 5

	accelerationBonusFull   = 30
	accelerationBonusRecent = 15

	viralEngagement50 = 50.0
	viralEngagement30 = 30.0
	viralEngagement15 = 15.0
	viralEngagement5  = 5.0

	viralEngagementPoints20 = 20
	viralEngagementPoints15 = 15
	viralEngagementPoints10 = 10
	viralEngagementPoints5  = 5

	viralRatio5   = 5.0
	viralRatio3   = 3.0
	viralRatio2   = 2.0
	viralRatio1_5 = 1.5
	viralRatio0_8 = 0.8

	viralRatioPoints10 = 10
	viralRatioPoints7  = 7
	viralRatioPoints5  = 5
	viralRatioPoints3  = 3
	viralRatioPoints1  = 1
)

// Detector computes TrendAnalysis reports.
type Detector struct {
	logger Logger
	now    func() time.Time
}

// NewDetector creates a trend detector using the wall clock.
func NewDetector(logger Logger) *Detector {
	return &Detector{logger: logger, now: time.Now}
}

// NewDetectorAt creates a detector with a fixed clock, for reproducible
// analysis of historical batches.
func NewDetectorAt(logger Logger, now func() time.Time) *Detector {
	return &Detector{logger: logger, now: now}
}

// Analyze derives the full trend report for one batch of scored videos.
// Empty input yields empty rankings and zero-valued insights.
func (d *Detector) Analyze(videos []domain.Video) domain.TrendAnalysis {
	now := d.now()

	analysis := domain.TrendAnalysis{
		TopTags:         d.rankTags(videos),
		TagCombinations: d.tagCombinations(videos),
		ViralVideos:     d.detectViral(videos, now),
		Seasonality:     d.seasonality(videos, now),
		Niche:           d.nicheInsights(videos),
	}

	d.logger.Debug("trend analysis complete",
		"videos", len(videos),
		"top_tags", len(analysis.TopTags),
		"viral_videos", len(analysis.ViralVideos),
	)

	return analysis
}

type tagAccumulator struct {
	count           int
	scoreSum        float64
	viewsSum        float64
	engagementSum   float64
}

// rankTags groups videos per tag (case-insensitive, trimmed) and ranks by
// avgScore*count so a tag must be both frequent and high-scoring to lead.
func (d *Detector) rankTags(videos []domain.Video) []domain.TagAnalysis {
	accum := make(map[string]*tagAccumulator)

	for i := range videos {
		video := &videos[i]
		seen := make(map[string]bool, len(video.Tags))
		for _, raw := range video.Tags {
			tag := normalizeTag(raw)
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true

			acc, ok := accum[tag]
			if !ok {
				acc = &tagAccumulator{}
				accum[tag] = acc
			}
			acc.count++
			acc.scoreSum += float64(video.InfoproductScore)
			acc.viewsSum += float64(video.Views)
			acc.engagementSum += video.EngagementRate
		}
	}

	ranked := make([]domain.TagAnalysis, 0, len(accum))
	for tag, acc := range accum {
		n := float64(acc.count)
		ranked = append(ranked, domain.TagAnalysis{
			Tag:           tag,
			Count:         acc.count,
			AvgScore:      acc.scoreSum / n,
			AvgViews:      acc.viewsSum / n,
			AvgEngagement: acc.engagementSum / n,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		wi := ranked[i].AvgScore * float64(ranked[i].Count)
		wj := ranked[j].AvgScore * float64(ranked[j].Count)
		if wi != wj {
			return wi > wj
		}
		return ranked[i].Tag < ranked[j].Tag
	})
	if len(ranked) > maxTopTags {
		ranked = ranked[:maxTopTags]
	}
	return ranked
}

type comboAccumulator struct {
	tags     [2]string
	count    int
	scoreSum float64
}

// tagCombinations pairs each tag with up to the next 2 tags in the video's
// list, keyed by the sorted pair, and keeps pairs seen on at least two
// videos.
func (d *Detector) tagCombinations(videos []domain.Video) []domain.TagCombination {
	accum := make(map[string]*comboAccumulator)

	for i := range videos {
		video := &videos[i]
		tags := normalizedTags(video.Tags)
		if len(tags) < 2 {
			continue
		}

		seen := make(map[string]bool)
		for j := 0; j < len(tags); j++ {
			for k := j + 1; k <= j+coOccurrenceWindow && k < len(tags); k++ {
				a, b := tags[j], tags[k]
				if a == b {
					continue
				}
				if b < a {
					a, b = b, a
				}
				key := a + "|" + b
				if seen[key] {
					continue
				}
				seen[key] = true

				acc, ok := accum[key]
				if !ok {
					acc = &comboAccumulator{tags: [2]string{a, b}}
					accum[key] = acc
				}
				acc.count++
				acc.scoreSum += float64(video.InfoproductScore)
			}
		}
	}

	combos := make([]domain.TagCombination, 0, len(accum))
	for _, acc := range accum {
		if acc.count < minCombinationCount {
			continue
		}
		combos = append(combos, domain.TagCombination{
			Tags:     acc.tags,
			Count:    acc.count,
			AvgScore: acc.scoreSum / float64(acc.count),
		})
	}

	sort.Slice(combos, func(i, j int) bool {
		if combos[i].AvgScore != combos[j].AvgScore {
			return combos[i].AvgScore > combos[j].AvgScore
		}
		return combos[i].Tags[0]+combos[i].Tags[1] < combos[j].Tags[0]+combos[j].Tags[1]
	})
	if len(combos) > maxTagCombinations {
		combos = combos[:maxTagCombinations]
	}
	return combos
}

// detectViral flags videos with unusual growth velocity. Only videos with
// positive viewsPerDay qualify; the 0-100 viral score combines velocity,
// an acceleration bonus for recent uploads, engagement and channel
// outperformance.
func (d *Detector) detectViral(videos []domain.Video, now time.Time) []domain.ViralVideo {
	viral := make([]domain.ViralVideo, 0)

	for i := range videos {
		video := &videos[i]
		if video.ViewsPerDay <= 0 {
			continue
		}

		ageDays := video.Age(now).Hours() / hoursPerDay
		score := viralScore(video, ageDays)
		if score < minViralScore {
			continue
		}

		viral = append(viral, domain.ViralVideo{
			Video:          *video,
			ViralScore:     score,
			GrowthRate:     video.ViewsPerDay,
			IsAccelerating: isAccelerating(video.ViewsPerDay, ageDays),
		})
	}

	sort.Slice(viral, func(i, j int) bool {
		if viral[i].ViralScore != viral[j].ViralScore {
			return viral[i].ViralScore > viral[j].ViralScore
		}
		return viral[i].Video.ID < viral[j].Video.ID
	})
	if len(viral) > maxViralVideos {
		viral = viral[:maxViralVideos]
	}
	return viral
}

func viralScore(video *domain.Video, ageDays float64) int {
	score := 0

	switch {
	case video.ViewsPerDay > viralViewsPerDay10000:
		score += viralViewsPoints40
	case video.ViewsPerDay > viralViewsPerDay5000:
		score += viralViewsPoints30
	case video.ViewsPerDay > viralViewsPerDay2000:
		score += viralViewsPoints20
	case video.ViewsPerDay > viralViewsPerDay1000:
		score += viralViewsPoints10
	case video.ViewsPerDay > viralViewsPerDay500:
		score += viralViewsPoints5
	}

	switch {
	case isAccelerating(video.ViewsPerDay, ageDays):
		score += accelerationBonusFull
	case ageDays <= accelerationDays:
		score += accelerationBonusRecent
	}

	switch {
	case video.EngagementRate > viralEngagement50:
		score += viralEngagementPoints20
	case video.EngagementRate > viralEngagement30:
		score += viralEngagementPoints15
	case video.EngagementRate > viralEngagement15:
		score += viralEngagementPoints10
	case video.EngagementRate > viralEngagement5:
		score += viralEngagementPoints5
	}

	switch {
	case video.ChannelPerformanceRatio > viralRatio5:
		score += viralRatioPoints10
	case video.ChannelPerformanceRatio > viralRatio3:
		score += viralRatioPoints7
	case video.ChannelPerformanceRatio > viralRatio2:
		score += viralRatioPoints5
	case video.ChannelPerformanceRatio > viralRatio1_5:
		score += viralRatioPoints3
	case video.ChannelPerformanceRatio > viralRatio0_8:
		score += viralRatioPoints1
	}

	return score
}

func isAccelerating(viewsPerDay, ageDays float64) bool {
	return viewsPerDay > viralViewsPerDay1000 && ageDays <= accelerationDays
}

// seasonality characterizes how recent the batch is.
func (d *Detector) seasonality(videos []domain.Video, now time.Time) domain.SeasonalityInsights {
	if len(videos) == 0 {
		return domain.SeasonalityInsights{RecentTrend: domain.TrendDecrescente}
	}

	recentCount := 0
	ageSum := 0.0
	for i := range videos {
		ageDays := videos[i].Age(now).Hours() / hoursPerDay
		ageSum += ageDays
		if ageDays <= recentWindowDays {
			recentCount++
		}
	}

	recentShare := float64(recentCount) / float64(len(videos)) * percentScale

	trend := domain.TrendDecrescente
	switch {
	case recentShare > recentShareRising:
		trend = domain.TrendCrescente
	case recentShare > recentShareStable:
		trend = domain.TrendEstavel
	}

	return domain.SeasonalityInsights{
		RecentTrend:     trend,
		RecentShare:     recentShare,
		AvgAgeDays:      ageSum / float64(len(videos)),
		VideosLast30Day: recentCount,
	}
}

// nicheInsights characterizes the channel landscape. Only videos carrying
// channel stats participate; a batch with none yields the zero-valued
// report with competition "baixa".
func (d *Detector) nicheInsights(videos []domain.Video) domain.NicheInsights {
	subsSum := 0.0
	withStats := 0
	small := 0
	medium := 0
	large := 0

	for i := range videos {
		stats := videos[i].ChannelStats
		if stats == nil {
			continue
		}
		withStats++
		subsSum += float64(stats.SubscriberCount)
		switch {
		case stats.SubscriberCount < smallChannelSubs:
			small++
		case stats.SubscriberCount >= largeChannelSubs:
			large++
		default:
			medium++
		}
	}

	if withStats == 0 {
		return domain.NicheInsights{CompetitionLevel: domain.CompetitionBaixa}
	}

	avgSubs := subsSum / float64(withStats)
	smallShare := float64(small) / float64(withStats) * percentScale
	mediumShare := float64(medium) / float64(withStats) * percentScale
	largeShare := float64(large) / float64(withStats) * percentScale

	competition := domain.CompetitionBaixa
	switch {
	case largeShare > largeShareHigh:
		competition = domain.CompetitionAlta
	case mediumShare > mediumShareMedium:
		competition = domain.CompetitionMedia
	}

	return domain.NicheInsights{
		IsNiche:                 avgSubs < nicheAvgSubscribers,
		AvgSubscriberCount:      avgSubs,
		CompetitionLevel:        competition,
		SmallChannelShare:       smallShare,
		LargeChannelShare:       largeShare,
		SmallChannelOpportunity: smallShare > smallShareOpportunity,
	}
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

func normalizedTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		n := normalizeTag(t)
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
