package requirement

import (
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=Family -output=family_string.go

// Family groups requirement codes by how they may be referenced.
type Family int

const (
	_ Family = iota // zero value is reserved for codes outside any family

	// FamilyControl codes (CR1..CR10) may be matched from tags or free text.
	FamilyControl
	// FamilyLetter codes (A..G) are matched from tag columns only.
	FamilyLetter
)

// controlPrefix is the literal prefix shared by every FamilyControl code.
const controlPrefix = "CR"

// Control code bounds.
const (
	MinControl = 1
	MaxControl = 10
)

// Letters lists the single-letter requirement codes in report order.
const Letters = "ABCDEFG"

// Code is a single requirement identifier such as "CR3" or "B".
type Code string

// String returns the code text.
func (c Code) String() string {
	return string(c)
}

// Family reports which family the code belongs to.
func (c Code) Family() Family {
	s := string(c)
	if n, ok := strings.CutPrefix(s, controlPrefix); ok {
		if _, valid := controlNumber(n); valid {
			return FamilyControl
		}

		return 0
	}

	if len(s) == 1 && strings.Contains(Letters, s) {
		return FamilyLetter
	}

	return 0
}

// Control builds the control code for n (CR1..CR10).
// Returns false if n is out of range.
func Control(n int) (Code, bool) {
	if n < MinControl || n > MaxControl {
		return "", false
	}

	return Code(controlPrefix + strconv.Itoa(n)), true
}

// controlNumber parses the digit suffix of a control code.
// Zero padding is accepted ("01" -> 1).
func controlNumber(digits string) (int, bool) {
	if digits == "" {
		return 0, false
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n < MinControl || n > MaxControl {
		return 0, false
	}

	return n, true
}

// Set is an immutable, ordered collection of requirement codes.
// The zero value is an empty set.
type Set struct {
	codes []Code
	index map[Code]int
}

// Default returns the standard enumeration: CR1..CR10 followed by A..G.
func Default() Set {
	codes := make([]Code, 0, MaxControl+len(Letters))

	for n := MinControl; n <= MaxControl; n++ {
		c, _ := Control(n)
		codes = append(codes, c)
	}

	for _, r := range Letters {
		codes = append(codes, Code(string(r)))
	}

	return NewSet(codes...)
}

// NewSet builds a set from codes, keeping the first occurrence of duplicates.
func NewSet(codes ...Code) Set {
	s := Set{
		codes: make([]Code, 0, len(codes)),
		index: make(map[Code]int, len(codes)),
	}

	for _, c := range codes {
		if _, dup := s.index[c]; dup {
			continue
		}

		s.index[c] = len(s.codes)
		s.codes = append(s.codes, c)
	}

	return s
}

// Codes returns a copy of the codes in enumeration order.
func (s Set) Codes() []Code {
	out := make([]Code, len(s.codes))
	copy(out, s.codes)

	return out
}

// Len returns the number of codes.
func (s Set) Len() int {
	return len(s.codes)
}

// Contains reports whether c is part of the set.
func (s Set) Contains(c Code) bool {
	_, ok := s.index[c]
	return ok
}

// Index returns the position of c in enumeration order.
func (s Set) Index(c Code) (int, bool) {
	i, ok := s.index[c]
	return i, ok
}
