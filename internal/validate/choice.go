package validate

import "strings"

// Choice is the answer to a yes/no question.
type Choice int

const (
	No Choice = iota
	Yes
)

// String returns the canonical token for c.
func (c Choice) String() string {
	if c == Yes {
		return "yes"
	}
	return "no"
}

// Bool maps Yes to true and No to false.
func (c Choice) Bool() bool {
	return c == Yes
}

// ParseChoice maps "yes"/"no" (any case) to a Choice. The second return is
// false for every other string, including the empty string.
func ParseChoice(s string) (Choice, bool) {
	switch strings.ToLower(s) {
	case "yes":
		return Yes, true
	case "no":
		return No, true
	default:
		return No, false
	}
}
