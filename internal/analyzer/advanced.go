package analyzer

import (
	"github.com/oportunia/radar/internal/domain"
	"github.com/oportunia/radar/internal/patterns"
)

const (
	// maxSubReportExamples caps the example lists of the sub-reports.
	maxSubReportExamples = 5
	// saasOpportunityDensity is the recurrence-signal density (%) above
	// which the batch is flagged as a SaaS/membership opportunity.
	saasOpportunityDensity = 10.0
)

// Fixed enumeration orders per taxonomy; dominant-label ties resolve to
// the earlier entry.
var (
	painOrder = []string{
		patterns.PainFinancial, patterns.PainTime, patterns.PainKnowledge,
		patterns.PainFrustration, patterns.PainEmotional, patterns.PainTechnical,
		patterns.PainAccess,
	}
	objectionOrder = []string{
		patterns.ObjectionPrice, patterns.ObjectionTrust, patterns.ObjectionTime,
		patterns.ObjectionRelevance, patterns.ObjectionComplexity,
		patterns.ObjectionCompetition,
	}
	awarenessOrder = []string{
		patterns.AwarenessUnaware, patterns.AwarenessProblemAware,
		patterns.AwarenessSolutionAware, patterns.AwarenessProductAware,
		patterns.AwarenessMostAware,
	}
	recurrenceOrder = []string{
		patterns.RecurrenceAutomation, patterns.RecurrenceCommunity,
		patterns.RecurrenceUpdates, patterns.RecurrenceMonitoring,
		patterns.RecurrenceTemplates, patterns.RecurrenceSupport,
	}
)

// painInsights maps the dominant pain type to a product-angle insight.
var painInsights = map[string]string{
	patterns.PainFinancial:   "Dor financeira domina: produto de entrada acessível e parcelamento tendem a converter melhor.",
	patterns.PainTime:        "Falta de tempo domina: posicione soluções prontas e atalhos (feito-para-você).",
	patterns.PainKnowledge:   "Falta de conhecimento domina: conteúdo do zero, passo a passo, sem jargão.",
	patterns.PainFrustration: "Frustração acumulada domina: destaque um método diferente do que já tentaram.",
	patterns.PainEmotional:   "Dor emocional domina: trabalhe segurança e prova social antes da oferta.",
	patterns.PainTechnical:   "Dor técnica domina: tutoriais de instalação/configuração e suporte próximo.",
	patterns.PainAccess:      "Dor de acesso domina: distribua o material em canal confiável e estável.",
}

// objectionHandling maps the dominant objection to a handling angle.
var objectionHandling = map[string]string{
	patterns.ObjectionPrice:       "Ancore o valor: bônus, parcelamento e garantia incondicional.",
	patterns.ObjectionTrust:       "Mostre prova: depoimentos, resultados verificáveis e garantia.",
	patterns.ObjectionTime:        "Prometa vitórias rápidas: primeiro resultado em dias, não meses.",
	patterns.ObjectionRelevance:   "Mostre casos de uso por perfil: para quem serve e para quem não serve.",
	patterns.ObjectionComplexity:  "Simplifique a promessa: didática para leigos, sem pré-requisitos.",
	patterns.ObjectionCompetition: "Destaque o diferencial único frente ao que o público já comprou.",
}

// awarenessInsights maps the dominant awareness level to a funnel insight.
var awarenessInsights = map[string]string{
	patterns.AwarenessUnaware:       "Público majoritariamente inconsciente: eduque sobre o problema antes de ofertar.",
	patterns.AwarenessProblemAware:  "Público consciente do problema: apresente a categoria de solução.",
	patterns.AwarenessSolutionAware: "Público buscando solução: compare abordagens e posicione o método.",
	patterns.AwarenessProductAware:  "Público avaliando o produto: remova objeções e mostre prova social.",
	patterns.AwarenessMostAware:     "Público pronto para comprar: oferta direta com link e urgência.",
}

// recurrenceInsights maps the dominant recurrence signal to a product-shape
// insight.
var recurrenceInsights = map[string]string{
	patterns.RecurrenceAutomation: "Demanda por automação: avalie ferramenta/SaaS em vez de material estático.",
	patterns.RecurrenceCommunity:  "Demanda por comunidade: modelo de assinatura com grupo fechado.",
	patterns.RecurrenceUpdates:    "Demanda por atualizações: produto vivo com acesso contínuo.",
	patterns.RecurrenceMonitoring: "Demanda por monitoramento: serviço recorrente de alertas.",
	patterns.RecurrenceTemplates:  "Demanda por modelos prontos: biblioteca de templates assinável.",
	patterns.RecurrenceSupport:    "Demanda por suporte: mentoria ou acompanhamento recorrente.",
}

// AdvancedAnalyzer produces the full AdvancedCommentAnalysis report.
type AdvancedAnalyzer struct {
	base        *CommentAnalyzer
	wordCloud   *WordCloudBuilder
	competitors *CompetitorDetector
	logger      Logger
}

// NewAdvancedAnalyzer creates an advanced analyzer with the default
// competitor list.
func NewAdvancedAnalyzer(logger Logger) *AdvancedAnalyzer {
	return &AdvancedAnalyzer{
		base:        NewCommentAnalyzer(logger),
		wordCloud:   NewWordCloudBuilder(),
		competitors: NewCompetitorDetector(DefaultCompetitors),
		logger:      logger,
	}
}

// Analyze runs the base quantitative analysis plus the seven categorical
// sub-reports. Empty input produces the zero-valued shape of every report.
func (a *AdvancedAnalyzer) Analyze(comments []domain.Comment) domain.AdvancedCommentAnalysis {
	result := domain.AdvancedCommentAnalysis{
		CommentAnalysis: a.base.Analyze(comments),
		PainPoints:      a.analyzePainPoints(comments),
		Recurrence:      a.analyzeRecurrence(comments),
		Objections:      a.analyzeObjections(comments),
		Awareness:       a.analyzeAwareness(comments),
		WordCloud:       a.wordCloud.Build(comments),
		Competitors:     a.competitors.Detect(comments),
		Segmentation:    analyzeSegments(comments),
	}

	a.logger.Debug("advanced analysis complete",
		"total", result.TotalComments,
		"pain_points", result.PainPoints.TotalPainPoints,
		"objections", result.Objections.TotalObjections,
		"competitor_mentions", result.Competitors.TotalMentions,
	)

	return result
}

func (a *AdvancedAnalyzer) analyzePainPoints(comments []domain.Comment) domain.PainPointAnalysis {
	counts := make(map[string]int)
	var matched []domain.Comment

	for _, c := range comments {
		if painType, ok := patterns.DetectPainType(c.Text); ok {
			counts[painType]++
			matched = append(matched, c)
		}
	}

	dominant := dominantLabel(counts, painOrder)
	return domain.PainPointAnalysis{
		TotalPainPoints:  len(matched),
		PainDensity:      density(len(matched), len(comments)),
		CountsByType:     counts,
		DominantPainType: dominant,
		TopPainPoints:    topByLikes(matched, maxSubReportExamples),
		Insight:          painInsights[dominant],
	}
}

func (a *AdvancedAnalyzer) analyzeRecurrence(comments []domain.Comment) domain.RecurrenceAnalysis {
	counts := make(map[string]int)
	var matched []domain.Comment

	for _, c := range comments {
		if recType, ok := patterns.DetectRecurrenceType(c.Text); ok {
			counts[recType]++
			matched = append(matched, c)
		}
	}

	dominant := dominantLabel(counts, recurrenceOrder)
	recDensity := density(len(matched), len(comments))
	return domain.RecurrenceAnalysis{
		TotalRecurrenceSignals: len(matched),
		RecurrenceDensity:      recDensity,
		CountsByType:           counts,
		DominantType:           dominant,
		TopSignals:             topByLikes(matched, maxSubReportExamples),
		HasSaaSOpportunity:     recDensity >= saasOpportunityDensity,
		Insight:                recurrenceInsights[dominant],
	}
}

func (a *AdvancedAnalyzer) analyzeObjections(comments []domain.Comment) domain.ObjectionAnalysis {
	counts := make(map[string]int)
	var matched []domain.Comment

	for _, c := range comments {
		if objection, ok := patterns.DetectObjectionType(c.Text); ok {
			counts[objection]++
			matched = append(matched, c)
		}
	}

	dominant := dominantLabel(counts, objectionOrder)
	return domain.ObjectionAnalysis{
		TotalObjections:    len(matched),
		ObjectionDensity:   density(len(matched), len(comments)),
		CountsByType:       counts,
		DominantObjection:  dominant,
		TopObjections:      topByLikes(matched, maxSubReportExamples),
		HandlingSuggestion: objectionHandling[dominant],
	}
}

func (a *AdvancedAnalyzer) analyzeAwareness(comments []domain.Comment) domain.AwarenessAnalysis {
	counts := make(map[string]int)
	classified := 0

	for _, c := range comments {
		if level, ok := patterns.DetectAwarenessLevel(c.Text); ok {
			counts[level]++
			classified++
		}
	}

	shares := make(map[string]float64, len(awarenessOrder))
	for _, level := range awarenessOrder {
		shares[level] = density(counts[level], classified)
	}

	dominant := dominantLabel(counts, awarenessOrder)
	return domain.AwarenessAnalysis{
		TotalClassified: classified,
		CountsByLevel:   counts,
		SharesByLevel:   shares,
		DominantLevel:   dominant,
		Insight:         awarenessInsights[dominant],
	}
}
