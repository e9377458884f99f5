package encoding

import "strings"

// QuotedCapacity returns the staging capacity needed to quote a string of n bytes.
// Every byte may double when escaped, plus the two quotes and one spare byte.
func QuotedCapacity(n int) int {
	return 2*n + 3
}

// AppendQuoted appends the quoted form of s to dst.
//
// Bytes outside the printable ASCII range [32, 126] become a single space, a double
// quote becomes a backslash followed by the quote, everything else is copied.
// Backslashes are not escaped. Multi-byte UTF-8 sequences are replaced byte by byte.
func AppendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c < 32 || c > 126:
			dst = append(dst, ' ')
		case c == '"':
			dst = append(dst, '\\', '"')
		default:
			dst = append(dst, c)
		}
	}

	return append(dst, '"')
}

// EscapeQuoted returns the quoted form of s.
func EscapeQuoted(s string) string {
	return string(AppendQuoted(make([]byte, 0, QuotedCapacity(len(s))), s))
}

// EscapeName escapes a namespace, set, bin, UDF, index or path name so that it
// forms a single space-delimited token on a backup line.
func EscapeName(name string) string {
	if !strings.ContainsAny(name, " \\\n") {
		return name
	}

	var sb strings.Builder
	sb.Grow(len(name) + 8)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == ' ' || c == '\\' || c == '\n' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}

	return sb.String()
}
