package analyzer

import (
	"sort"
	"strings"

	"github.com/oportunia/radar/internal/domain"
	"github.com/oportunia/radar/internal/patterns"
)

const (
	maxTopWords   = 30
	maxTopBigrams = 15
	minWordLength = 3
	// Relevance display scale bounds.
	relevanceMin = 10
	relevanceMax = 100
)

// Semantic buckets for word-cloud coloring.
const (
	BucketAction  = "action"
	BucketObject  = "object"
	BucketEmotion = "emotion"
	BucketOther   = "other"
)

// ptStopwords are high-frequency Portuguese function words excluded from
// the cloud. Tokens are matched after Normalize, so entries carry no
// accents.
var ptStopwords = map[string]struct{}{
	"a": {}, "o": {}, "e": {}, "de": {}, "da": {}, "do": {}, "das": {}, "dos": {},
	"em": {}, "um": {}, "uma": {}, "uns": {}, "umas": {}, "que": {}, "com": {},
	"por": {}, "para": {}, "pra": {}, "pro": {}, "na": {}, "no": {}, "nas": {},
	"nos": {}, "se": {}, "ao": {}, "aos": {}, "as": {}, "os": {}, "eu": {},
	"tu": {}, "ele": {}, "ela": {}, "eles": {}, "elas": {}, "voce": {},
	"voces": {}, "meu": {}, "minha": {}, "seu": {}, "sua": {}, "isso": {},
	"isto": {}, "esse": {}, "essa": {}, "este": {}, "esta": {}, "aquele": {},
	"aquela": {}, "mas": {}, "mais": {}, "menos": {}, "muito": {}, "muita": {},
	"bem": {}, "ja": {}, "nao": {}, "sim": {}, "tambem": {}, "ate": {},
	"quando": {}, "como": {}, "onde": {}, "porque": {}, "pois": {}, "entao": {},
	"assim": {}, "so": {}, "ser": {}, "ter": {}, "estar": {}, "foi": {},
	"era": {}, "sou": {}, "estou": {}, "tem": {}, "tinha": {},
	"vai": {}, "vou": {}, "aqui": {}, "ali": {}, "la": {}, "agora": {},
	"hoje": {}, "dia": {}, "vez": {}, "coisa": {}, "gente": {}, "sobre": {},
	"depois": {}, "antes": {}, "todo": {}, "toda": {}, "todos": {}, "todas": {},
	"outro": {}, "outra": {}, "qual": {}, "quem": {}, "sem": {}, "seus": {},
	"suas": {}, "nem": {}, "tudo": {}, "nada": {}, "cada": {},
}

// bucketActions / bucketObjects / bucketEmotions classify frequent tokens
// into coarse semantic groups for presentation.
var bucketActions = map[string]struct{}{
	"fazer": {}, "faz": {}, "fiz": {}, "aprender": {}, "aprendi": {},
	"comprar": {}, "comprei": {}, "vender": {}, "vendi": {}, "baixar": {},
	"baixei": {}, "usar": {}, "usei": {}, "criar": {}, "criei": {},
	"montar": {}, "investir": {}, "ganhar": {}, "ganhei": {}, "comecar": {},
	"comecei": {}, "testar": {}, "testei": {}, "aplicar": {}, "ensinar": {},
	"explicar": {}, "mostrar": {}, "ajudar": {},
}

var bucketObjects = map[string]struct{}{
	"planilha": {}, "ebook": {}, "curso": {}, "video": {}, "aula": {},
	"template": {}, "modelo": {}, "checklist": {}, "lista": {}, "receita": {},
	"pdf": {}, "material": {}, "conteudo": {}, "metodo": {}, "ferramenta": {},
	"app": {}, "aplicativo": {}, "site": {}, "canal": {}, "dinheiro": {},
	"negocio": {}, "empresa": {}, "produto": {}, "mercado": {}, "cliente": {},
	"renda": {}, "preco": {}, "valor": {},
}

var bucketEmotions = map[string]struct{}{
	"medo": {}, "ansiedade": {}, "vergonha": {}, "frustrado": {},
	"frustrada": {}, "desanimado": {}, "desanimada": {}, "cansado": {},
	"cansada": {}, "perdido": {}, "perdida": {}, "feliz": {}, "gratidao": {},
	"obrigado": {}, "obrigada": {}, "incrivel": {}, "otimo": {}, "otima": {},
	"pessimo": {}, "pessima": {}, "ruim": {}, "dificil": {}, "facil": {},
	"amei": {}, "adorei": {}, "odiei": {},
}

// WordCloudBuilder extracts ranked unigrams and bigrams from comment text.
type WordCloudBuilder struct{}

func NewWordCloudBuilder() *WordCloudBuilder {
	return &WordCloudBuilder{}
}

// Build tokenizes the normalized comment text, drops stopwords and short
// tokens, and ranks unigrams and adjacent bigrams by frequency. Relevance
// maps each word's count onto a 10-100 display scale relative to the most
// frequent word.
func (b *WordCloudBuilder) Build(comments []domain.Comment) domain.WordCloudAnalysis {
	wordCounts := make(map[string]int)
	bigramCounts := make(map[string]int)
	totalTokens := 0

	for _, c := range comments {
		tokens := tokenize(c.Text)
		totalTokens += len(tokens)
		for i, tok := range tokens {
			wordCounts[tok]++
			if i+1 < len(tokens) {
				bigramCounts[tok+" "+tokens[i+1]]++
			}
		}
	}

	return domain.WordCloudAnalysis{
		TotalTokens: totalTokens,
		TopWords:    rankWords(wordCounts),
		TopBigrams:  rankBigrams(bigramCounts),
	}
}

// tokenize normalizes text and keeps letter/digit runs that survive the
// stopword and length filters.
func tokenize(text string) []string {
	normalized := patterns.Normalize(text)
	fields := strings.FieldsFunc(normalized, func(r rune) bool {
		return !isWordRune(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < minWordLength {
			continue
		}
		if _, stop := ptStopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

func rankWords(counts map[string]int) []domain.WordTerm {
	terms := make([]domain.WordTerm, 0, len(counts))
	maxCount := 0
	for word, count := range counts {
		terms = append(terms, domain.WordTerm{
			Word:   word,
			Count:  count,
			Bucket: semanticBucket(word),
		})
		if count > maxCount {
			maxCount = count
		}
	}

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Word < terms[j].Word
	})
	if len(terms) > maxTopWords {
		terms = terms[:maxTopWords]
	}

	for i := range terms {
		terms[i].Relevance = relevance(terms[i].Count, maxCount)
	}
	return terms
}

func rankBigrams(counts map[string]int) []domain.Bigram {
	bigrams := make([]domain.Bigram, 0, len(counts))
	for phrase, count := range counts {
		if count < 2 {
			continue
		}
		bigrams = append(bigrams, domain.Bigram{Phrase: phrase, Count: count})
	}

	sort.Slice(bigrams, func(i, j int) bool {
		if bigrams[i].Count != bigrams[j].Count {
			return bigrams[i].Count > bigrams[j].Count
		}
		return bigrams[i].Phrase < bigrams[j].Phrase
	})
	if len(bigrams) > maxTopBigrams {
		bigrams = bigrams[:maxTopBigrams]
	}
	return bigrams
}

func relevance(count, maxCount int) int {
	if maxCount <= 0 {
		return relevanceMin
	}
	scaled := relevanceMin + (relevanceMax-relevanceMin)*count/maxCount
	if scaled > relevanceMax {
		return relevanceMax
	}
	return scaled
}

func semanticBucket(word string) string {
	if _, ok := bucketActions[word]; ok {
		return BucketAction
	}
	if _, ok := bucketObjects[word]; ok {
		return BucketObject
	}
	if _, ok := bucketEmotions[word]; ok {
		return BucketEmotion
	}
	return BucketOther
}
