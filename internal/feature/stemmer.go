package feature

import "strings"

// Stem aplica un stemming ligero por sufijos (estilo Porter recortado):
// plurales, gerundios, participios y adverbios comunes del inglés.
// No intenta ser lingüísticamente perfecto, solo evita que plurales y
// flexiones comunes inflen el vocabulario.
func Stem(tok string) string {
	if len(tok) <= 3 {
		return tok
	}

	switch {
	case strings.HasSuffix(tok, "ies") && len(tok) > 4:
		// stories -> stori (igual que el stemmer clásico)
		return tok[:len(tok)-3] + "i"
	case strings.HasSuffix(tok, "sses"):
		return tok[:len(tok)-2]
	case strings.HasSuffix(tok, "ss"):
		return tok
	case strings.HasSuffix(tok, "s") && !strings.HasSuffix(tok, "us") && !strings.HasSuffix(tok, "is"):
		tok = tok[:len(tok)-1]
	}

	switch {
	case strings.HasSuffix(tok, "ing") && len(tok) > 5:
		tok = tok[:len(tok)-3]
		tok = undouble(tok)
	case strings.HasSuffix(tok, "ed") && len(tok) > 4:
		tok = tok[:len(tok)-2]
		tok = undouble(tok)
	case strings.HasSuffix(tok, "ly") && len(tok) > 4:
		tok = tok[:len(tok)-2]
	}

	return tok
}

// undouble corta consonantes dobladas al final (running -> runn -> run).
func undouble(tok string) string {
	n := len(tok)
	if n < 3 {
		return tok
	}
	last := tok[n-1]
	if last == tok[n-2] && !isVowel(last) && last != 'l' && last != 's' && last != 'z' {
		return tok[:n-1]
	}
	return tok
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
