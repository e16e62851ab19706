// Package validate holds the predicates that decide whether a raw answer is
// acceptable. Validators never retry or print; the prompt engine owns that.
package validate

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// Validator pairs a predicate with the hint shown when it rejects an answer.
type Validator struct {
	Name  string
	Check func(answer string) bool
	Hint  string
}

// Accepts reports whether answer passes v. A nil validator accepts anything.
func (v *Validator) Accepts(answer string) bool {
	if v == nil || v.Check == nil {
		return true
	}
	return v.Check(answer)
}

var (
	// OneWord rejects empty answers and answers containing whitespace.
	OneWord = &Validator{
		Name:  "one-word",
		Check: IsOneWord,
		Hint:  "Input cannot contain spaces, try again",
	}

	// Name accepts a single word that is safe as one directory name.
	Name = &Validator{
		Name:  "name",
		Check: IsName,
		Hint:  "Input cannot contain spaces or path separators, try again",
	}

	// YesNo accepts only "yes" or "no", in any case.
	YesNo = &Validator{
		Name:  "yes-no",
		Check: IsYesNo,
		Hint:  `Only ("yes", "no") are valid choices, try again`,
	}

	// Email accepts local@domain.tld shaped addresses.
	Email = &Validator{
		Name:  "email",
		Check: IsEmail,
		Hint:  "invalid email, try again",
	}
)

// IsOneWord reports whether s is non-empty and contains no whitespace character.
func IsOneWord(s string) bool {
	return s != "" && strings.IndexFunc(s, unicode.IsSpace) < 0
}

// IsName reports whether s is one word naming a single path element below
// the current directory: no separators, not "." or "..".
func IsName(s string) bool {
	if !IsOneWord(s) || strings.ContainsAny(s, `/\`) {
		return false
	}
	if s == "." || s == ".." {
		return false
	}
	return filepath.IsLocal(s)
}

// IsYesNo reports whether s is "yes" or "no", ignoring case.
func IsYesNo(s string) bool {
	_, ok := ParseChoice(s)
	return ok
}

// emailPattern: one "@", non-empty local part, dotted domain with non-empty labels.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s.]+(\.[^@\s.]+)+$`)

// IsEmail reports whether s has the local@domain.tld shape.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}
