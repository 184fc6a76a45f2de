package sequence

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Token is the structural split of one filename into a prefix, a numeric
// field and a suffix. When HasNumber is false only Name is meaningful.
type Token struct {
	Name      string
	Prefix    string
	Suffix    string
	Digits    string // numeric text as written, leading zeros and sign included
	Value     int
	Width     int // len(Digits)
	HasNumber bool
}

// Key identifies the family a token belongs to.
type Key struct {
	Prefix string
	Suffix string
}

// Key returns the (prefix, suffix) family key of the token.
func (t Token) Key() Key {
	return Key{Prefix: t.Prefix, Suffix: t.Suffix}
}

// Padded reports whether the numeric field carries leading zeros, which pins
// the sequence padding to exactly Width.
func (t Token) Padded() bool {
	if !t.HasNumber {
		return false
	}
	mag := t.Digits
	if len(mag) > 0 && mag[0] == '-' {
		mag = mag[1:]
	}
	return len(mag) > 1 && mag[0] == '0'
}

// Tokenize splits name around its rightmost run of decimal digits.
//
// A trailing extension that is not purely numeric is never searched: it stays
// in the suffix, so "clip.mp4" has no number while "a.1" and "11" do. Tokenize
// never fails; names without a usable number come back with HasNumber false.
func Tokenize(name string) Token {
	tok := Token{Name: name}

	end := len(name)
	if ext := filepath.Ext(name); len(ext) > 1 && !allDigits(strings.TrimPrefix(ext[1:], "-")) {
		end = len(name) - len(ext)
	}

	// rightmost digit run in name[:end]
	hi := end
	for hi > 0 && !isDigit(name[hi-1]) {
		hi--
	}
	if hi == 0 {
		return tok
	}
	lo := hi
	for lo > 0 && isDigit(name[lo-1]) {
		lo--
	}

	value, err := strconv.Atoi(name[lo:hi])
	if err != nil {
		// out of int range: a hash or an id, not a frame index
		return tok
	}

	if value != 0 && isSign(name, lo) {
		lo--
		value = -value
	}

	tok.Prefix = name[:lo]
	tok.Digits = name[lo:hi]
	tok.Suffix = name[hi:]
	tok.Value = value
	tok.Width = hi - lo
	tok.HasNumber = true
	return tok
}

// isSign reports whether the byte before position i is a minus sign rather
// than a word separator such as in "shot-001".
func isSign(name string, i int) bool {
	if i == 0 || name[i-1] != '-' {
		return false
	}
	if i == 1 {
		return true
	}
	switch name[i-2] {
	case '.', '_':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
