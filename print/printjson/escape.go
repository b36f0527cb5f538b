package printjson

import "strings"

const hexdigits = "0123456789abcdef"

// escapeFragment rewrites s as JSON string-body content: backslash, double
// quote, and control characters are escaped, everything else passes through
// unchanged. Multi-byte UTF-8 sequences never contain bytes below 0x20 so
// byte-wise scanning is safe.
func escapeFragment(s string) string {
	i := 0
	for i < len(s) && !needsEscape(s[i]) {
		i++
	}
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	b.WriteString(s[:i])
	for ; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexdigits[c>>4])
				b.WriteByte(hexdigits[c&0xf])
			} else {
				b.WriteByte(c)
			}
		}
	}

	return b.String()
}

func needsEscape(c byte) bool {
	return c == '\\' || c == '"' || c < 0x20
}
