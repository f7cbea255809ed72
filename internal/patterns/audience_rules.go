package patterns

import "regexp"

// Pain type labels, in detection priority order.
const (
	PainFinancial   = "financial"
	PainTime        = "time"
	PainKnowledge   = "knowledge"
	PainFrustration = "frustration"
	PainEmotional   = "emotional"
	PainTechnical   = "technical"
	PainAccess      = "access"
)

// Objection type labels, in detection priority order.
const (
	ObjectionPrice       = "price"
	ObjectionTrust       = "trust"
	ObjectionTime        = "time"
	ObjectionRelevance   = "relevance"
	ObjectionComplexity  = "complexity"
	ObjectionCompetition = "competition"
)

// Awareness level labels. Detection runs most-aware first: an explicit buy
// signal outranks the problem mention in the same comment.
const (
	AwarenessMostAware     = "most_aware"
	AwarenessProductAware  = "product_aware"
	AwarenessSolutionAware = "solution_aware"
	AwarenessProblemAware  = "problem_aware"
	AwarenessUnaware       = "unaware"
)

var painRules = []labelRule{
	{PainFinancial, []*regexp.Regexp{
		regexp.MustCompile(`muito caro|\bcaro\b|\bcara\b demais`),
		regexp.MustCompile(`nao tenho (dinheiro|grana|condicoes)`),
		regexp.MustCompile(`sem dinheiro|orcamento apertado|nao posso pagar`),
		regexp.MustCompile(`\bdivida\b|endividad`),
	}},
	{PainTime, []*regexp.Regexp{
		regexp.MustCompile(`nao tenho tempo|sem tempo|falta de tempo`),
		regexp.MustCompile(`rotina corrida|\bcorreria\b`),
		regexp.MustCompile(`trabalho o dia (todo|inteiro)`),
	}},
	{PainKnowledge, []*regexp.Regexp{
		regexp.MustCompile(`nao sei por onde comecar`),
		regexp.MustCompile(`sou (leigo|leiga|iniciante)`),
		regexp.MustCompile(`nunca (fiz|mexi|usei)`),
		regexp.MustCompile(`nao (entendo|sei) nada`),
	}},
	{PainFrustration, []*regexp.Regexp{
		regexp.MustCompile(`ja tentei|tentei de tudo`),
		regexp.MustCompile(`\bdesisti\b|quase desistindo`),
		regexp.MustCompile(`cansad[oa] de`),
		regexp.MustCompile(`nada (funciona|da certo)`),
		regexp.MustCompile(`frustrad[oa]`),
	}},
	{PainEmotional, []*regexp.Regexp{
		regexp.MustCompile(`\bmedo\b|ansiedade|ansios[oa]`),
		regexp.MustCompile(`vergonha|insegur[oa]`),
		regexp.MustCompile(`desanimad[oa]|desespero|desesperad[oa]`),
	}},
	{PainTechnical, []*regexp.Regexp{
		regexp.MustCompile(`(da|deu|dando) erro|\bbug\b`),
		regexp.MustCompile(`nao (abre|carrega|instala|funciona no)`),
		regexp.MustCompile(`travando|incompativel`),
		regexp.MustCompile(`nao consigo (instalar|configurar|baixar)`),
	}},
	{PainAccess, []*regexp.Regexp{
		regexp.MustCompile(`nao (acho|encontro|achei|encontrei)`),
		regexp.MustCompile(`link (quebrado|nao funciona|fora do ar)`),
		regexp.MustCompile(`indisponivel|fora do ar`),
		regexp.MustCompile(`no meu pais|na minha (regiao|cidade)`),
	}},
}

var objectionRules = []labelRule{
	{ObjectionPrice, []*regexp.Regexp{
		regexp.MustCompile(`(muito|ta|esta) caro|caro demais`),
		regexp.MustCompile(`\bpreco\b|\bvalor\b alto`),
		regexp.MustCompile(`desconto|mais barato|nao vale (o preco|isso)`),
	}},
	{ObjectionTrust, []*regexp.Regexp{
		regexp.MustCompile(`e confiavel|\bgolpe\b|enganacao`),
		regexp.MustCompile(`funciona mesmo|sera que funciona`),
		regexp.MustCompile(`e verdade|\bduvido\b|so propaganda`),
	}},
	{ObjectionTime, []*regexp.Regexp{
		regexp.MustCompile(`quanto tempo (leva|demora)`),
		regexp.MustCompile(`demora (muito|para)`),
		regexp.MustCompile(`tempo para ver resultado`),
	}},
	{ObjectionRelevance, []*regexp.Regexp{
		regexp.MustCompile(`(serve|funciona|vale) (para|pra) (quem|mim|meu)`),
		regexp.MustCompile(`no meu caso`),
		regexp.MustCompile(`se aplica (a|para|pra)`),
	}},
	{ObjectionComplexity, []*regexp.Regexp{
		regexp.MustCompile(`muito (dificil|complicado|avancado|tecnico)`),
		regexp.MustCompile(`complexo demais`),
		regexp.MustCompile(`nao e (para|pra) (mim|leigos)`),
	}},
	{ObjectionCompetition, []*regexp.Regexp{
		regexp.MustCompile(`melhor que o d[eoa]`),
		regexp.MustCompile(`ja (tenho|uso|comprei) (um|uma|outro|outra)`),
		regexp.MustCompile(`concorrente|comparado com`),
	}},
}

var awarenessRules = []labelRule{
	{AwarenessMostAware, []*regexp.Regexp{
		regexp.MustCompile(`quero comprar|onde (compro|assino)|como (compro|assino)`),
		regexp.MustCompile(`(manda|cade|qual) o link`),
		regexp.MustCompile(`me inscrever|quanto custa`),
		regexp.MustCompile(`aceita (pix|cartao|boleto)`),
	}},
	{AwarenessProductAware, []*regexp.Regexp{
		regexp.MustCompile(`(esse|seu|sua|essa) (curso|planilha|metodo|mentoria|ebook)`),
		regexp.MustCompile(`vale a pena o`),
	}},
	{AwarenessSolutionAware, []*regexp.Regexp{
		regexp.MustCompile(`existe (algum|alguma)`),
		regexp.MustCompile(`tem como resolver`),
		regexp.MustCompile(`alguma (ferramenta|forma|maneira|dica)`),
		regexp.MustCompile(`qual a melhor (forma|maneira|ferramenta)`),
	}},
	{AwarenessProblemAware, []*regexp.Regexp{
		regexp.MustCompile(`sofro com|passo por isso`),
		regexp.MustCompile(`(tenho|meu) (esse )?problema`),
		regexp.MustCompile(`acontece comigo|e comigo mesmo`),
	}},
	{AwarenessUnaware, []*regexp.Regexp{
		regexp.MustCompile(`nao sabia|nem sabia`),
		regexp.MustCompile(`nunca tinha (visto|ouvido|pensado)`),
		regexp.MustCompile(`primeira vez que (vejo|ouco)`),
		regexp.MustCompile(`nem imaginava`),
	}},
}

// DetectPainType classifies the pain behind a comment, if any.
func DetectPainType(text string) (string, bool) {
	return matchFirst(painRules, Normalize(text))
}

// DetectObjectionType classifies the purchase objection in a comment, if any.
func DetectObjectionType(text string) (string, bool) {
	return matchFirst(objectionRules, Normalize(text))
}

// DetectAwarenessLevel classifies the funnel awareness level of a comment,
// if it carries any awareness marker.
func DetectAwarenessLevel(text string) (string, bool) {
	return matchFirst(awarenessRules, Normalize(text))
}
