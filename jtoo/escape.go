package jtoo

import "strings"

const hexDigits = "0123456789abcdef"

// EscapeASCII renders arbitrary bytes as printable ASCII for diagnostics.
// Printable characters pass through; quotes, backslash, tab, CR and LF use
// backslash escapes; everything else becomes \xNN.
func EscapeASCII(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		switch c {
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '\n':
			sb.WriteString(`\n`)
		case '\\':
			sb.WriteString(`\\`)
		case '\'':
			sb.WriteString(`\'`)
		case '"':
			sb.WriteString(`\"`)
		default:
			if c >= 0x20 && c < 0x7f {
				sb.WriteByte(c)
				continue
			}
			sb.WriteString(`\x`)
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0x0f])
		}
	}
	return sb.String()
}

// isEscapable reports whether c belongs to the set of bytes that must be
// written as \xx inside a string, and that only those may be.
func isEscapable(c byte) bool {
	return c <= 0x1f || c == '"' || c == '\\' || c == 0x7f
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
