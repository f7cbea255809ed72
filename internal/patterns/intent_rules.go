package patterns

import "regexp"

// Question type labels, in detection priority order.
const (
	QuestionHowTo       = "how_to"
	QuestionWhatIs      = "what_is"
	QuestionWhereToFind = "where_to_find"
	QuestionGeneral     = "general"
)

// Material type labels, in detection priority order.
const (
	MaterialPlanilha  = "planilha"
	MaterialEbook     = "ebook"
	MaterialTemplate  = "template"
	MaterialChecklist = "checklist"
	MaterialLista     = "lista"
	MaterialReceita   = "receita"
	MaterialCurso     = "curso"
	MaterialGeneral   = "general"
)

// questionRules is checked top to bottom; the "general" catch-all (trailing
// "?" or a leading interrogative adverb) sits below the specific categories.
var questionRules = []labelRule{
	{QuestionHowTo, []*regexp.Regexp{
		regexp.MustCompile(`como (faco|fazer|posso|consigo|criar|montar|comecar|funciona|usar|usa|aprender|instalar|configurar|calcular)`),
		regexp.MustCompile(`como e que`),
		regexp.MustCompile(`tem algum jeito de`),
		regexp.MustCompile(`qual o passo a passo`),
	}},
	{QuestionWhatIs, []*regexp.Regexp{
		regexp.MustCompile(`o que (e|sao|seria|significa)\b`),
		regexp.MustCompile(`que significa`),
		regexp.MustCompile(`qual (a|e a) diferenca`),
		regexp.MustCompile(`(que|o que) quer dizer`),
	}},
	{QuestionWhereToFind, []*regexp.Regexp{
		regexp.MustCompile(`onde (acho|encontro|encontra|consigo|baixo|baixa|compro|compra|pego|vejo|posso)`),
		regexp.MustCompile(`em qual (site|lugar|aplicativo|app)`),
		regexp.MustCompile(`onde (esta|tem|fica) (o|a|esse|essa)`),
	}},
	{QuestionGeneral, []*regexp.Regexp{
		regexp.MustCompile(`\?\s*$`),
		regexp.MustCompile(`^(por que|porque|pq|quando|quanto|quantos|quantas|qual|quais|quem|cade|sera que)\b`),
	}},
}

// materialRules is checked top to bottom; specific artifacts outrank the
// generic "material/pdf/apostila" catch-all.
var materialRules = []labelRule{
	{MaterialPlanilha, []*regexp.Regexp{
		regexp.MustCompile(`planilha`),
	}},
	{MaterialEbook, []*regexp.Regexp{
		regexp.MustCompile(`e-?book`),
		regexp.MustCompile(`livro digital`),
	}},
	{MaterialTemplate, []*regexp.Regexp{
		regexp.MustCompile(`template`),
		regexp.MustCompile(`modelo (pronto|editavel)`),
	}},
	{MaterialChecklist, []*regexp.Regexp{
		regexp.MustCompile(`check[ -]?list`),
		regexp.MustCompile(`lista de verificacao`),
	}},
	{MaterialLista, []*regexp.Regexp{
		regexp.MustCompile(`\blista\b`),
		regexp.MustCompile(`listinha`),
	}},
	{MaterialReceita, []*regexp.Regexp{
		regexp.MustCompile(`receita`),
	}},
	{MaterialCurso, []*regexp.Regexp{
		regexp.MustCompile(`\bcurso\b`),
		regexp.MustCompile(`treinamento`),
		regexp.MustCompile(`mentoria`),
		regexp.MustCompile(`\baula\b|\baulas\b`),
	}},
	{MaterialGeneral, []*regexp.Regexp{
		regexp.MustCompile(`material`),
		regexp.MustCompile(`apostila`),
		regexp.MustCompile(`\bpdf\b`),
		regexp.MustCompile(`\bguia\b`),
		regexp.MustCompile(`\barquivo\b`),
	}},
}

// requestVerbPatterns is the explicit-ask gate for material requests: a
// comment that merely mentions "planilha" without asking for it is not a
// material request.
var requestVerbPatterns = []*regexp.Regexp{
	regexp.MustCompile(`pode (fazer|mandar|enviar|passar|postar|disponibilizar|compartilhar|deixar)`),
	regexp.MustCompile(`poderia`),
	regexp.MustCompile(`gostaria de`),
	regexp.MustCompile(`\bquero\b|\bqueria\b`),
	regexp.MustCompile(`\bpreciso\b`),
	regexp.MustCompile(`(manda|envia|passa|posta|compartilha|disponibiliza|deixa)\b`),
	regexp.MustCompile(`tem como|teria como`),
	regexp.MustCompile(`por favor|pfv|por gentileza`),
	regexp.MustCompile(`alguem tem`),
}

// problemPatterns flags pain/blocker statements. Single category, no
// priority ordering needed.
var problemPatterns = []*regexp.Regexp{
	regexp.MustCompile(`nao consigo`),
	regexp.MustCompile(`tenho dificuldade`),
	regexp.MustCompile(`dificuldades? (em|para|com)`),
	regexp.MustCompile(`\bajuda\b|me ajuda|\bsocorro\b`),
	regexp.MustCompile(`nao sei (como|o que|por onde)`),
	regexp.MustCompile(`nao (entendo|entendi)`),
	regexp.MustCompile(`estou (perdido|perdida|travado|travada)`),
	regexp.MustCompile(`(tenho|to com) (um )?problema`),
	regexp.MustCompile(`nao (funciona|deu certo|da certo)`),
}

// DetectQuestionType classifies the question category of a comment.
// Returns false when the comment is not a question at all.
func DetectQuestionType(text string) (string, bool) {
	return matchFirst(questionRules, Normalize(text))
}

// IsQuestion reports whether the comment is a question of any type.
func IsQuestion(text string) bool {
	_, ok := DetectQuestionType(text)
	return ok
}

// DetectMaterialType classifies which supporting material a comment talks
// about, whether or not it is being requested.
func DetectMaterialType(text string) (string, bool) {
	return matchFirst(materialRules, Normalize(text))
}

// IsMaterialRequest reports whether the comment both mentions a material
// and explicitly asks for it.
func IsMaterialRequest(text string) bool {
	normalized := Normalize(text)
	if _, ok := matchFirst(materialRules, normalized); !ok {
		return false
	}
	return matchAny(requestVerbPatterns, normalized)
}

// IsProblemStatement reports whether the comment states a pain or blocker.
func IsProblemStatement(text string) bool {
	return matchAny(problemPatterns, Normalize(text))
}
