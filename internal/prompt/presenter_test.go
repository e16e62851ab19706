package prompt

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/createproject-labs/createproject/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalPresentNoWait(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("unused\n"), &out, WithColor(false))

	got, err := term.Present("Hi there :wave:", StyleInfo, false)
	require.NoError(t, err)

	assert.Empty(t, got)
	assert.Contains(t, out.String(), "Hi there")
	assert.NotContains(t, out.String(), ":wave:")
	assert.True(t, strings.HasSuffix(out.String(), "\n"))
}

func TestTerminalPresentReadsLine(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("my input\r\nsecond\n"), &out)

	got, err := term.Present("question", StyleQuestion, true)
	require.NoError(t, err)
	assert.Equal(t, "my input", got)

	got, err = term.Present("question", StyleQuestion, true)
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestTerminalPresentFinalLineWithoutNewline(t *testing.T) {
	term := NewTerminal(strings.NewReader("last"), io.Discard)

	got, err := term.Present("question", StyleQuestion, true)
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = term.Present("question", StyleQuestion, true)
	assert.True(t, errors.Is(err, io.EOF))
}

func TestTerminalPipedOutputHasNoEscapes(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out, WithColor(true))

	_, err := term.Present("Good choice !", StyleAck, false)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestEngineWithTerminal(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("something weird\noneword\n"), &out, WithColor(false))

	got, err := NewEngine(term, nil).Prompt("What would you like to name the project ? :smiley:", validate.OneWord, true)
	require.NoError(t, err)
	assert.Equal(t, "oneword", got)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "What would you like to name the project ?")
	assert.Contains(t, lines[1], "Input cannot contain spaces, try again")
	assert.NotContains(t, lines[1], ":bangbang:")
}

func TestTerminalSpinnerSkipsPipedOutput(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("answer\n"), &out, WithColor(false), WithSpinner(20*time.Millisecond))

	start := time.Now()
	got, err := term.Present("question", StyleQuestion, true)
	require.NoError(t, err)

	assert.Equal(t, "answer", got)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, "question\n", out.String())
}

func TestTerminalSpinnerSkipsNonTerminalFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	term := NewTerminal(strings.NewReader("answer\n"), f, WithColor(false), WithSpinner(20*time.Millisecond))
	_, err = term.Present("question", StyleQuestion, true)
	require.NoError(t, err)

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "question\n", string(data))
}
