package requirement

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// tokenSeparators are stripped from a tag token before matching.
	tokenSeparators = regexp.MustCompile(`[\s_-]+`)

	// controlMention finds CR references in prose: "CR3", "cr-03", "CR 10".
	controlMention = regexp.MustCompile(`(?i)\bCR[-_ ]?0?([1-9]|10)\b`)
)

// MatchTag maps a single tag token to a requirement code.
//
// The token is compared as a whole after separators are removed and it is
// upper-cased: "cr-01" and "CR1" both yield CR1, "b" yields B, but "CARD"
// never yields A. Letter codes are only reachable through this function,
// so free text can never produce them.
func (s Set) MatchTag(token string) (Code, bool) {
	t := strings.ToUpper(tokenSeparators.ReplaceAllString(token, ""))
	if t == "" {
		return "", false
	}

	if digits, ok := strings.CutPrefix(t, controlPrefix); ok {
		n, valid := controlNumber(digits)
		if !valid {
			return "", false
		}

		c, _ := Control(n)
		if !s.Contains(c) {
			return "", false
		}

		return c, true
	}

	c := Code(t)
	if c.Family() == FamilyLetter && s.Contains(c) {
		return c, true
	}

	return "", false
}

// MatchText scans free text for control code mentions.
// Codes are returned in order of first occurrence without duplicates.
func (s Set) MatchText(text string) []Code {
	if text == "" {
		return nil
	}

	var out []Code

	seen := map[Code]struct{}{}

	for _, m := range controlMention.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		c, ok := Control(n)
		if !ok || !s.Contains(c) {
			continue
		}

		if _, dup := seen[c]; dup {
			continue
		}

		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out
}
