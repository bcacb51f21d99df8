package token

import "bytes"

// FindUnescapedQuote returns the offset of the next '"' at or after start
// which is not immediately preceded by a backslash.
func FindUnescapedQuote(d []byte, start int) (int, error) {
	if start < 0 {
		return -1, NewScanErr(ErrBadOffset, start)
	}
	i := nextQuote(d, start)
	if i == -1 {
		return -1, NewScanErr(ErrUnterminatedQuote, start)
	}
	return i, nil
}

func nextQuote(d []byte, start int) int {
	for off := start; off < len(d); {
		j := bytes.IndexByte(d[off:], '"')
		if j == -1 {
			return -1
		}
		i := off + j
		if i > 0 && d[i-1] == '\\' {
			off = i + 1
			continue
		}
		return i
	}
	return -1
}

type stmtState int

const (
	outsideQuotes stmtState = iota
	insideQuotes
)

// FindStatementEnd returns the offset of the next ';' at or after start
// lying outside any quoted region.
//
// At each step the nearer of the next ';' and the next unescaped quote
// decides: a ';' outside quotes ends the statement, a ';' inside quotes is
// stepped over, and a quote flips the state.
func FindStatementEnd(d []byte, start int) (int, error) {
	if start < 0 {
		return -1, NewScanErr(ErrBadOffset, start)
	}
	state := outsideQuotes
	quoteStart := -1
	off := start
	for {
		semi := -1
		if off < len(d) {
			if j := bytes.IndexByte(d[off:], ';'); j != -1 {
				semi = off + j
			}
		}
		quote := nextQuote(d, off)
		switch {
		case semi == -1 && state == insideQuotes && quote == -1:
			return -1, NewScanErr(ErrUnterminatedQuote, quoteStart)
		case semi == -1:
			return -1, NewScanErr(ErrMissingTerminator, start)
		case quote == -1 || semi < quote:
			if state == outsideQuotes {
				return semi, nil
			}
			if quote == -1 {
				return -1, NewScanErr(ErrUnterminatedQuote, quoteStart)
			}
			off = semi + 1
		default:
			if state == outsideQuotes {
				state = insideQuotes
				quoteStart = quote
			} else {
				state = outsideQuotes
			}
			off = quote + 1
		}
	}
}
