package strdict

// Clean splits raw corpus bytes into a slice of lowercase, punctuation-free
// word tokens. It replaces newlines and tabs with spaces, replaces every
// punctuation byte except the apostrophe (kept for contractions such as
// "he's") with a space, lowercases ASCII letters, and discards any other byte that is
// not alphanumeric, a space, or an apostrophe, before splitting on spaces
// and dropping empty tokens.
//
// Clean operates directly on bytes and never validates its input as UTF-8:
// non-ASCII bytes are simply dropped rather than decoded, which keeps this
// pass safe to run over arbitrary corpus files.
func Clean(data []byte) []string {
	cleaned := make([]byte, 0, len(data))
	for _, c := range data {
		switch {
		case c == '\n' || c == '\t':
			cleaned = append(cleaned, ' ')
		case c == '\'':
			cleaned = append(cleaned, c)
		case c >= 'A' && c <= 'Z':
			cleaned = append(cleaned, c-'A'+'a')
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == ' ':
			cleaned = append(cleaned, c)
		case isASCIIPunct(c):
			// punctuation other than the apostrophe separates words, it never glues them
			cleaned = append(cleaned, ' ')
		default:
			// non-ASCII and control bytes are dropped outright, same as the rest of the pass
		}
	}

	words := make([]string, 0, len(cleaned)/5)
	start := -1
	for i, c := range cleaned {
		if c == ' ' {
			if start >= 0 {
				words = append(words, string(cleaned[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, string(cleaned[start:]))
	}
	return words
}

// isASCIIPunct reports whether c is one of the ASCII punctuation bytes
// other than the apostrophe.
func isASCIIPunct(c byte) bool {
	switch {
	case c >= '!' && c <= '/': // ! " # $ % & ' ( ) * + , - . /  (apostrophe excluded below)
		return c != '\''
	case c >= ':' && c <= '@':
		return true
	case c >= '[' && c <= '`':
		return true
	case c >= '{' && c <= '~':
		return true
	}
	return false
}
