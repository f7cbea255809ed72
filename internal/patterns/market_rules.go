package patterns

import "regexp"

// Recurrence opportunity labels, in detection priority order. These signal
// demand for recurring value (SaaS/membership) rather than a one-off
// product.
const (
	RecurrenceAutomation = "automation"
	RecurrenceCommunity  = "community"
	RecurrenceUpdates    = "updates"
	RecurrenceMonitoring = "monitoring"
	RecurrenceTemplates  = "templates"
	RecurrenceSupport    = "support"
)

// Audience segment labels. Detection is first-match with "geral" as the
// fallback bucket.
const (
	SegmentIniciante    = "iniciante"
	SegmentProfissional = "profissional"
	SegmentEmpreendedor = "empreendedor"
	SegmentEstudante    = "estudante"
	SegmentGeral        = "geral"
)

// Competitor mention sentiment labels. Comparison is checked before
// positive/negative because comparative phrases reuse their keywords.
const (
	SentimentPositive   = "positive"
	SentimentNegative   = "negative"
	SentimentNeutral    = "neutral"
	SentimentComparison = "comparison"
)

var recurrenceRules = []labelRule{
	{RecurrenceAutomation, []*regexp.Regexp{
		regexp.MustCompile(`automatizar|automatico|automatica`),
		regexp.MustCompile(`toda (semana|vez)|todo (dia|mes)`),
		regexp.MustCompile(`manualmente|repetitivo`),
	}},
	{RecurrenceCommunity, []*regexp.Regexp{
		regexp.MustCompile(`\bgrupo\b|comunidade`),
		regexp.MustCompile(`\bdiscord\b|telegram|whatsapp`),
	}},
	{RecurrenceUpdates, []*regexp.Regexp{
		regexp.MustCompile(`atualizacao|atualizad[oa]`),
		regexp.MustCompile(`versao (nova|atualizada)`),
		regexp.MustCompile(`sempre atualiza`),
	}},
	{RecurrenceMonitoring, []*regexp.Regexp{
		regexp.MustCompile(`acompanhar|monitorar`),
		regexp.MustCompile(`\balerta\b|me avisa|aviso quando`),
	}},
	{RecurrenceTemplates, []*regexp.Regexp{
		regexp.MustCompile(`\bmodelo\b|template`),
		regexp.MustCompile(`ja pronto|preenchido`),
	}},
	{RecurrenceSupport, []*regexp.Regexp{
		regexp.MustCompile(`suporte|acompanhamento`),
		regexp.MustCompile(`tirar duvidas|duvidas depois`),
	}},
}

var segmentRules = []labelRule{
	{SegmentIniciante, []*regexp.Regexp{
		regexp.MustCompile(`iniciante|comecando|do zero`),
		regexp.MustCompile(`\bleig[oa]\b|primeiro contato`),
	}},
	{SegmentProfissional, []*regexp.Regexp{
		regexp.MustCompile(`trabalho (com|na|no|de)`),
		regexp.MustCompile(`meus clientes|minha carreira|no meu trabalho`),
		regexp.MustCompile(`sou (profissional|contador|contadora|advogad[oa]|nutricionista|designer|programador|programadora)`),
	}},
	{SegmentEmpreendedor, []*regexp.Regexp{
		regexp.MustCompile(`meu negocio|minha (empresa|loja|marca)`),
		regexp.MustCompile(`\bmei\b|minhas vendas|empreend`),
	}},
	{SegmentEstudante, []*regexp.Regexp{
		regexp.MustCompile(`faculdade|vestibular|concurso`),
		regexp.MustCompile(`\bprova\b|estudando (para|pra)|na escola`),
	}},
}

var comparisonSentimentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`melhor (que|do que)|pior (que|do que)`),
	regexp.MustCompile(`comparado|versus|\bvs\b`),
	regexp.MustCompile(`em vez de|igual ao|parecido com`),
}

var negativeSentimentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bruim\b|pessim[oa]|\bfraco\b|horrivel`),
	regexp.MustCompile(`nao gostei|decepcion|perda de tempo`),
	regexp.MustCompile(`caro demais|nao recomendo`),
}

var positiveSentimentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`otim[oa]|excelente|incrivel|\btop\b`),
	regexp.MustCompile(`recomendo|muito bom|muito boa`),
	regexp.MustCompile(`\bamo\b|adoro|gosto (do|da|muito)`),
}

// DetectRecurrenceType classifies the recurring-value demand in a comment,
// if any.
func DetectRecurrenceType(text string) (string, bool) {
	return matchFirst(recurrenceRules, Normalize(text))
}

// DetectSegment classifies the audience segment a comment's language
// markers point to, defaulting to "geral".
func DetectSegment(text string) string {
	if label, ok := matchFirst(segmentRules, Normalize(text)); ok {
		return label
	}
	return SegmentGeral
}

// CompetitorSentiment classifies the sentiment context around a competitor
// mention. The caller has already located the mention; this looks at the
// whole comment as the "nearby" context.
func CompetitorSentiment(text string) string {
	normalized := Normalize(text)
	switch {
	case matchAny(comparisonSentimentPatterns, normalized):
		return SentimentComparison
	case matchAny(negativeSentimentPatterns, normalized):
		return SentimentNegative
	case matchAny(positiveSentimentPatterns, normalized):
		return SentimentPositive
	default:
		return SentimentNeutral
	}
}
