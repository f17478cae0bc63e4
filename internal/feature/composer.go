package feature

import (
	"strings"
)

const DefaultTopCast = 3

// Composer arma la "bolsa de tags" de una película: un único string
// de tokens normalizados que después vectoriza el paquete tfidf.
//
// El orden de concatenación es fijo (genres, keywords, cast, director,
// overview) porque afecta la frecuencia de términos y por lo tanto los
// pesos TF-IDF. Mismo input => mismo output, siempre.
type Composer struct {
	// TopCast limita cuántos nombres del elenco entran a la bolsa.
	TopCast int
}

func NewComposer(topCast int) *Composer {
	if topCast <= 0 {
		topCast = DefaultTopCast
	}
	return &Composer{TopCast: topCast}
}

// Compose genera la bolsa de tags. Los atributos con nombre propio
// (géneros, keywords, elenco, director) se colapsan a un solo token
// ("Science Fiction" -> "sciencefiction") para que no se mezclen con
// las palabras del overview; el overview se tokeniza palabra por
// palabra descartando stop words. Todo pasa por el stemmer.
func (c *Composer) Compose(genres, keywords, cast []string, director, overview string) string {
	topCast := c.TopCast
	if topCast <= 0 {
		topCast = DefaultTopCast
	}
	if len(cast) > topCast {
		cast = cast[:topCast]
	}

	var tokens []string

	for _, g := range genres {
		if t := collapse(g); t != "" {
			tokens = append(tokens, Stem(t))
		}
	}
	for _, k := range keywords {
		if t := collapse(k); t != "" {
			tokens = append(tokens, Stem(t))
		}
	}
	for _, name := range cast {
		if t := collapse(name); t != "" {
			tokens = append(tokens, Stem(t))
		}
	}
	if t := collapse(director); t != "" {
		tokens = append(tokens, Stem(t))
	}

	for _, w := range Tokenize(overview) {
		if IsStopWord(w) {
			continue
		}
		tokens = append(tokens, Stem(w))
	}

	return strings.Join(tokens, " ")
}

// collapse pasa un atributo multi-palabra a un solo token en minúsculas.
func collapse(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if isAlnum(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tokenize parte un texto libre en tokens alfanuméricos en minúsculas.
func Tokenize(s string) []string {
	var tokens []string
	var b strings.Builder

	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}

	for _, r := range strings.ToLower(s) {
		if isAlnum(r) {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
