package tokens

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_'
}

func isSymbolByte(c byte) bool {
	switch c {
	case '{', '}', '(', ')', ';', '=', '+', '-', '/', '*', '<', '>':
		return true
	}
	return false
}

// IsIdentifier reports whether text is a letter or underscore followed by word characters, and is not a keyword.
func IsIdentifier(text string) bool {
	if text == "" || Keywords[text] {
		return false
	}
	c := text[0]
	if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_') {
		return false
	}
	for i := 1; i < len(text); i++ {
		if !isWordByte(text[i]) {
			return false
		}
	}
	return true
}

func Classify(text string) Kind {
	switch text {
	case "":
		return KindInvalid
	case "{", "}", "(", ")":
		return KindDelimiter
	case "=", "+", "-", "/", "*", "<", ">":
		return KindOperator
	case ";":
		return KindTerminator
	}
	if Keywords[text] {
		return KindKeyword
	}
	if IsIdentifier(text) {
		return KindIdentifier
	}
	for i := 0; i < len(text); i++ {
		if !isWordByte(text[i]) {
			return KindInvalid
		}
	}
	return KindWord
}
