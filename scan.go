package tally

//Line scanning helpers for the section-structured TRIPOLI-4 output format.
//All of them advance a bufio.Scanner and report found/not-found explicitly;
//hitting the end of the stream or a block-end marker is a normal result
//here, and it is the caller who decides which error that amounts to.

import (
	"bufio"
	"strings"
)

//scanTo advances the scanner until a line containing target appears and
//returns that line. Any of the stop markers appearing first ends the scan
//with ok == false, as does the end of the stream: both mean the relevant
//block ended before the target was seen.
func scanTo(s *bufio.Scanner, target string, stops ...string) (line string, ok bool) {
	for s.Scan() {
		line = s.Text()
		if strings.Contains(line, target) {
			return line, true
		}
		for _, stop := range stops {
			if strings.Contains(line, stop) {
				return line, false
			}
		}
	}
	return "", false
}

//scanToWord is like scanTo, but the target must appear as a standalone
//whitespace-separated token, so a tally name that is a prefix of another
//tally's name doesn't match that other definition.
func scanToWord(s *bufio.Scanner, word string, stops ...string) (line string, ok bool) {
	for s.Scan() {
		line = s.Text()
		for _, tok := range strings.Fields(line) {
			if tok == word {
				return line, true
			}
		}
		for _, stop := range stops {
			if strings.Contains(line, stop) {
				return line, false
			}
		}
	}
	return "", false
}

//accumulateAfter gathers the whitespace-separated tokens of line that
//follow the first token containing marker, then keeps gathering across
//subsequent lines until one contains any of the stop markers. On that final
//line only the tokens before the earliest marker are taken. It returns the
//gathered tokens and the line the stop was found on; ok is false if the
//stream ended before any stop marker appeared.
func accumulateAfter(s *bufio.Scanner, line, marker string, stops ...string) (tokens []string, stopline string, ok bool) {
	tokens = tokensAfter(line, marker)
	if cut := cutoff(tokens, stops); cut >= 0 {
		return tokens[:cut], line, true
	}
	for s.Scan() {
		stopline = s.Text()
		toks := strings.Fields(stopline)
		if cut := cutoff(toks, stops); cut >= 0 {
			tokens = append(tokens, toks[:cut]...)
			return tokens, stopline, true
		}
		tokens = append(tokens, toks...)
	}
	return tokens, "", false
}

//cutoff returns the index of the first token containing any of the given
//markers, or -1 if there is none.
func cutoff(tokens []string, stops []string) int {
	for i, tok := range tokens {
		for _, stop := range stops {
			if strings.Contains(tok, stop) {
				return i
			}
		}
	}
	return -1
}

//tokensAfter returns the tokens of line that follow the first token
//containing the marker. It returns nil if the marker is not in the line.
func tokensAfter(line, marker string) []string {
	toks := strings.Fields(line)
	for i, tok := range toks {
		if strings.Contains(tok, marker) {
			return toks[i+1:]
		}
	}
	return nil
}
