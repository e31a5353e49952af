package services

// tokenize splits an instruction on runs of space, tab, newline and carriage
// return, discarding empty segments. Token case is preserved; keyword matching
// upper-cases separately so account identifiers stay intact.
func tokenize(s string) []string {
	var tokens []string
	start := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			if start >= 0 {
				tokens = append(tokens, s[start:i])
				start = -1
			}
		default:
			if start < 0 {
				start = i
			}
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}
	return tokens
}
