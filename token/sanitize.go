package token

import "unicode/utf8"

// Allowed reports whether r may appear in an archive document.
func Allowed(r rune) bool {
	switch {
	case 0x20 <= r && r <= 0xD7FF:
		return true
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case 0xE000 <= r && r <= 0xFFFD:
		return true
	case 0x10000 <= r && r <= 0x10FFFF:
		return true
	}
	return false
}

// Sanitize returns d with every well formed rune outside the permitted
// ranges removed.  Bytes which do not decode as UTF-8 are kept as they are,
// so archives written in a legacy code page survive a round trip.  d itself
// is returned when nothing needs removing.
func Sanitize(d []byte) []byte {
	i := 0
	for i < len(d) {
		c := d[i]
		if c < utf8.RuneSelf {
			if c >= 0x20 || c == '\t' || c == '\n' || c == '\r' {
				i++
				continue
			}
			break
		}
		r, n := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && n == 1 {
			i++
			continue
		}
		if !Allowed(r) {
			break
		}
		i += n
	}
	if i == len(d) {
		return d
	}
	res := make([]byte, 0, len(d))
	res = append(res, d[:i]...)
	for i < len(d) {
		r, n := utf8.DecodeRune(d[i:])
		if (r == utf8.RuneError && n == 1) || Allowed(r) {
			res = append(res, d[i:i+n]...)
		}
		i += n
	}
	return res
}
