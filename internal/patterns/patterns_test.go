package patterns

import "testing"

func TestDetectQuestionType(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		matched  bool
	}{
		{"how to", "Como faço para importar os dados?", QuestionHowTo, true},
		{"how to unaccented", "como fazer isso no celular", QuestionHowTo, true},
		{"what is", "O que é taxa Selic?", QuestionWhatIs, true},
		{"where to find", "Onde acho essa planilha? Por favor compartilha", QuestionWhereToFind, true},
		{"general trailing mark", "Funciona no iphone?", QuestionGeneral, true},
		{"general interrogative adverb", "quanto custa isso", QuestionGeneral, true},
		{"praise is not a question", "Muito bom vídeo!", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectQuestionType(tt.text)
			if ok != tt.matched {
				t.Fatalf("matched: got %v, want %v", ok, tt.matched)
			}
			if got != tt.expected {
				t.Errorf("type: got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDetectQuestionType_PriorityOrder(t *testing.T) {
	// "como faço" is also a trailing-"?" general question; the specific
	// how-to category must win.
	got, ok := DetectQuestionType("Como faço essa receita?")
	if !ok || got != QuestionHowTo {
		t.Errorf("got (%q, %v), want (%q, true)", got, ok, QuestionHowTo)
	}
}

func TestDetectMaterialType(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		matched  bool
	}{
		{"planilha", "essa planilha é demais", MaterialPlanilha, true},
		{"ebook", "tem esse conteúdo em e-book?", MaterialEbook, true},
		{"template", "procuro um template de orçamento", MaterialTemplate, true},
		{"checklist", "faltou o checklist do processo", MaterialChecklist, true},
		{"lista", "manda a lista de ferramentas", MaterialLista, true},
		{"receita", "quero a receita completa", MaterialReceita, true},
		{"curso", "você tem curso disso?", MaterialCurso, true},
		{"generic material", "faltou o pdf da apresentação", MaterialGeneral, true},
		{"aula outranks general bucket", "disponibiliza o material da aula", MaterialCurso, true},
		{"no material", "parabéns pelo conteúdo de hoje", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectMaterialType(tt.text)
			if ok != tt.matched || got != tt.expected {
				t.Errorf("got (%q, %v), want (%q, %v)", got, ok, tt.expected, tt.matched)
			}
		})
	}
}

func TestIsMaterialRequest(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"mention plus request verb", "Onde acho essa planilha? Por favor compartilha", true},
		{"explicit ask", "Pode disponibilizar o template? Gostaria de usar no trabalho", true},
		{"quero", "quero essa planilha de gastos", true},
		{"mention without ask", "usei uma planilha parecida ano passado", false},
		{"ask without material", "pode fazer um vídeo sobre impostos", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMaterialRequest(tt.text); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsProblemStatement(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"nao consigo", "Não consigo fazer a fórmula funcionar", true},
		{"dificuldade", "tenho dificuldade com a parte de juros", true},
		{"ajuda", "alguém me ajuda com isso", true},
		{"praise", "Muito bom vídeo!", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProblemStatement(tt.text); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMultiLabelAcrossTaxonomies(t *testing.T) {
	// One comment can be a question and a problem statement at once;
	// taxonomies are independent.
	text := "Não consigo baixar, como faço?"
	if !IsQuestion(text) {
		t.Error("expected question")
	}
	if !IsProblemStatement(text) {
		t.Error("expected problem statement")
	}
}

func TestDetectPainType(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		matched  bool
	}{
		{"financial", "tá muito caro pra mim, não tenho condições", PainFinancial, true},
		{"time", "não tenho tempo de organizar nada", PainTime, true},
		{"knowledge", "sou leiga, não sei por onde começar", PainKnowledge, true},
		{"frustration", "já tentei de tudo e nada funciona", PainFrustration, true},
		{"emotional", "tenho medo de investir errado", PainEmotional, true},
		{"technical", "aqui dá erro quando abro o arquivo", PainTechnical, true},
		{"access", "o link tá fora do ar", PainAccess, true},
		{"none", "ficou ótimo o vídeo", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectPainType(tt.text)
			if ok != tt.matched || got != tt.expected {
				t.Errorf("got (%q, %v), want (%q, %v)", got, ok, tt.expected, tt.matched)
			}
		})
	}
}

func TestDetectObjectionType(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		matched  bool
	}{
		{"price", "achei caro demais", ObjectionPrice, true},
		{"trust", "será que funciona mesmo ou é golpe", ObjectionTrust, true},
		{"time", "quanto tempo leva pra ver resultado", ObjectionTime, true},
		{"relevance", "isso funciona pra quem é MEI?", ObjectionRelevance, true},
		{"complexity", "parece muito complicado pra mim", ObjectionComplexity, true},
		{"competition", "já tenho um curso parecido", ObjectionCompetition, true},
		{"none", "conteúdo sensacional", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectObjectionType(tt.text)
			if ok != tt.matched || got != tt.expected {
				t.Errorf("got (%q, %v), want (%q, %v)", got, ok, tt.expected, tt.matched)
			}
		})
	}
}

func TestDetectAwarenessLevel(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		matched  bool
	}{
		{"most aware", "quero comprar, manda o link", AwarenessMostAware, true},
		{"product aware", "esse curso cobre a parte fiscal?", AwarenessProductAware, true},
		{"solution aware", "existe alguma ferramenta que faça isso?", AwarenessSolutionAware, true},
		{"problem aware", "sofro com isso há anos", AwarenessProblemAware, true},
		{"unaware", "nunca tinha pensado nisso", AwarenessUnaware, true},
		{"none", "olá pessoal", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectAwarenessLevel(tt.text)
			if ok != tt.matched || got != tt.expected {
				t.Errorf("got (%q, %v), want (%q, %v)", got, ok, tt.expected, tt.matched)
			}
		})
	}
}

func TestDetectAwarenessLevel_BuySignalOutranksProblem(t *testing.T) {
	got, ok := DetectAwarenessLevel("sofro com isso, quero comprar agora")
	if !ok || got != AwarenessMostAware {
		t.Errorf("got (%q, %v), want (%q, true)", got, ok, AwarenessMostAware)
	}
}

func TestDetectRecurrenceType(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		matched  bool
	}{
		{"automation", "queria automatizar isso, faço manualmente toda semana", RecurrenceAutomation, true},
		{"community", "tem grupo no telegram?", RecurrenceCommunity, true},
		{"updates", "a planilha vem com atualização?", RecurrenceUpdates, true},
		{"monitoring", "queria um alerta quando mudar a taxa", RecurrenceMonitoring, true},
		{"templates", "tem modelo já pronto?", RecurrenceTemplates, true},
		{"support", "tem suporte depois da compra?", RecurrenceSupport, true},
		{"none", "valeu!", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectRecurrenceType(tt.text)
			if ok != tt.matched || got != tt.expected {
				t.Errorf("got (%q, %v), want (%q, %v)", got, ok, tt.expected, tt.matched)
			}
		})
	}
}

func TestDetectSegment(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"iniciante", "sou iniciante total, começando do zero", SegmentIniciante},
		{"profissional", "trabalho com contabilidade e atendo meus clientes", SegmentProfissional},
		{"empreendedor", "uso na minha loja de roupas", SegmentEmpreendedor},
		{"estudante", "estou estudando pra concurso", SegmentEstudante},
		{"fallback", "muito interessante", SegmentGeral},
		{"empty", "", SegmentGeral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectSegment(tt.text); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCompetitorSentiment(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"comparison wins over positive", "melhor que o do Primo Rico", SentimentComparison},
		{"negative", "o curso dele é fraco, não gostei", SentimentNegative},
		{"positive", "excelente, recomendo demais", SentimentPositive},
		{"neutral", "vi isso no canal dele também", SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompetitorSentiment(tt.text); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Não Consigo", "nao consigo"},
		{"  Coração?  ", "coracao?"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.expected {
			t.Errorf("Normalize(%q): got %q, want %q", tt.in, got, tt.expected)
		}
	}
}
