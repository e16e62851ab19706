package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOneWord(t *testing.T) {
	accepted := []string{"oneword", "my-project", "my_app", "a", "ünïcödé", "x.y"}
	rejected := []string{"", "something weird", " leading", "trailing ", "tab\tsep", "new\nline", "nb space", "wide　space"}

	for _, s := range accepted {
		assert.Truef(t, IsOneWord(s), "IsOneWord(%q) should accept", s)
	}
	for _, s := range rejected {
		assert.Falsef(t, IsOneWord(s), "IsOneWord(%q) should reject", s)
	}
}

func TestIsName(t *testing.T) {
	accepted := []string{"myproject", "my-project", "my_app", "x.y", "..hidden", "v1.0"}
	rejected := []string{"", ".", "..", "../escaped", "../../escaped", "a/b", `a\b`, "/abs", "two words"}

	for _, s := range accepted {
		assert.Truef(t, IsName(s), "IsName(%q) should accept", s)
	}
	for _, s := range rejected {
		assert.Falsef(t, IsName(s), "IsName(%q) should reject", s)
	}
}

func TestIsYesNo(t *testing.T) {
	accepted := []string{"yes", "no", "YES", "No", "yEs"}
	rejected := []string{"", "y", "n", "ye", "yess", "nope", " yes", "no ", "true", "something weird"}

	for _, s := range accepted {
		assert.Truef(t, IsYesNo(s), "IsYesNo(%q) should accept", s)
	}
	for _, s := range rejected {
		assert.Falsef(t, IsYesNo(s), "IsYesNo(%q) should reject", s)
	}
}

func TestIsEmail(t *testing.T) {
	accepted := []string{"a.b@example.com", "my.email@example.com", "x@y.co.uk", "first+tag@sub.domain.org"}
	rejected := []string{
		"",
		"something weird",
		"plainaddress",
		"@example.com",
		"a@",
		"a@example",
		"a@@example.com",
		"a@b@example.com",
		"a@.com",
		"a@example.",
		"a@example..com",
		"a b@example.com",
	}

	for _, s := range accepted {
		assert.Truef(t, IsEmail(s), "IsEmail(%q) should accept", s)
	}
	for _, s := range rejected {
		assert.Falsef(t, IsEmail(s), "IsEmail(%q) should reject", s)
	}
}

func TestValidatorAccepts(t *testing.T) {
	var none *Validator
	assert.True(t, none.Accepts("anything at all"))
	assert.True(t, OneWord.Accepts("oneword"))
	assert.False(t, OneWord.Accepts("two words"))
	assert.False(t, OneWord.Accepts(""))
	assert.False(t, Name.Accepts("../x"))
}

func TestParseChoice(t *testing.T) {
	c, ok := ParseChoice("YES")
	assert.True(t, ok)
	assert.Equal(t, Yes, c)
	assert.True(t, c.Bool())
	assert.Equal(t, "yes", c.String())

	c, ok = ParseChoice("no")
	assert.True(t, ok)
	assert.Equal(t, No, c)
	assert.False(t, c.Bool())

	_, ok = ParseChoice("maybe")
	assert.False(t, ok)
}
