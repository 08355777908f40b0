package wikipedia

import "strings"

const upperhex = "0123456789ABCDEF"

// Quote percent-encodes every byte of the UTF-8 encoded title except ASCII
// letters, digits, "_.-~" and "/".
//
// url.PathEscape keeps sub-delimiters such as ":" or "&" and escapes "/",
// which yields different article addresses.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			sb.WriteByte(c)
			continue
		}

		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&15])
	}

	return sb.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_', c == '.', c == '-', c == '~', c == '/':
		return true
	default:
		return false
	}
}
