// Package hdl implements a small, self-contained scanner for Verilog-style
// sized literals (8'hA5, 3'b101, 9'd200, 4'bxz01), turning readable source
// text into a SizedLiteral (width, value, and x/z mask of at most 64 bits).
//
// The scanner is a plain peek/advance loop over runes and stays
// self-contained rather than delegating token classification to an
// external lexer package.
package hdl

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SizedLiteral is a parsed width'base-digits constant.
type SizedLiteral struct {
	Width uint32
	Value uint64
	XMask uint64
}

type scanner struct {
	src []rune
	pos int
}

func (s *scanner) peek() rune {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) advance() rune {
	r := s.peek()
	if r != 0 {
		s.pos++
	}
	return r
}

func (s *scanner) lexDigits() string {
	start := s.pos
	for isDecDigit(s.peek()) {
		s.pos++
	}
	return string(s.src[start:s.pos])
}

func isDecDigit(r rune) bool { return r >= '0' && r <= '9' }

// ParseSizedLiteral parses a Verilog-style sized literal such as "8'hA5".
func ParseSizedLiteral(lit string) (SizedLiteral, error) {
	s := &scanner{src: []rune(strings.TrimSpace(lit))}

	widthStr := s.lexDigits()
	if widthStr == "" {
		return SizedLiteral{}, errors.Errorf("hdl: %q: missing bit width", lit)
	}
	width, err := strconv.ParseUint(widthStr, 10, 32)
	if err != nil {
		return SizedLiteral{}, errors.Wrapf(err, "hdl: %q: bad width", lit)
	}
	if s.advance() != '\'' {
		return SizedLiteral{}, errors.Errorf("hdl: %q: expected ' after width", lit)
	}

	base := s.advance()
	if base == 'd' || base == 'D' {
		digits := s.lexDigits()
		if digits == "" {
			return SizedLiteral{}, errors.Errorf("hdl: %q: empty decimal literal", lit)
		}
		v, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return SizedLiteral{}, errors.Wrapf(err, "hdl: %q: bad decimal literal", lit)
		}
		return SizedLiteral{Width: uint32(width), Value: v}, nil
	}

	var bitsPerDigit uint
	var digitVal func(rune) (val int, isX bool, ok bool)
	switch base {
	case 'b', 'B':
		bitsPerDigit, digitVal = 1, binDigit
	case 'o', 'O':
		bitsPerDigit, digitVal = 3, octDigit
	case 'h', 'H':
		bitsPerDigit, digitVal = 4, hexDigit
	default:
		return SizedLiteral{}, errors.Errorf("hdl: %q: unknown base %q", lit, base)
	}

	var value, xmask uint64
	start := s.pos
	for s.peek() != 0 {
		s.pos++
	}
	digits := s.src[start:s.pos]
	if len(digits) == 0 {
		return SizedLiteral{}, errors.Errorf("hdl: %q: empty literal body", lit)
	}
	mask := uint64(1)<<bitsPerDigit - 1
	for _, r := range digits {
		v, isX, ok := digitVal(r)
		if !ok {
			return SizedLiteral{}, errors.Errorf("hdl: %q: invalid digit %q", lit, r)
		}
		value <<= bitsPerDigit
		xmask <<= bitsPerDigit
		if isX {
			xmask |= mask
		} else {
			value |= uint64(v)
		}
	}
	return SizedLiteral{Width: uint32(width), Value: value, XMask: xmask}, nil
}

func binDigit(r rune) (int, bool, bool) {
	switch r {
	case '0':
		return 0, false, true
	case '1':
		return 1, false, true
	case 'x', 'X', 'z', 'Z':
		return 0, true, true
	default:
		return 0, false, false
	}
}

func octDigit(r rune) (int, bool, bool) {
	switch {
	case r >= '0' && r <= '7':
		return int(r - '0'), false, true
	case r == 'x' || r == 'X' || r == 'z' || r == 'Z':
		return 0, true, true
	default:
		return 0, false, false
	}
}

func hexDigit(r rune) (int, bool, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), false, true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, false, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, false, true
	case r == 'x' || r == 'X' || r == 'z' || r == 'Z':
		return 0, true, true
	default:
		return 0, false, false
	}
}
