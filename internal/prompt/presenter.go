package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/kyokomi/emoji/v2"
)

// Style selects how a message is rendered.
type Style int

const (
	StyleQuestion Style = iota
	StyleInfo
	StyleAck
	StyleError
)

// Presenter displays a message and optionally collects one line of input.
type Presenter interface {
	// Present renders message in style. When wait is true it blocks for one
	// line of input and returns it without the line terminator.
	Present(message string, style Style, wait bool) (string, error)
}

// Terminal is the Presenter used by the CLI: emoji aliases are expanded,
// messages are colored with lipgloss, and a short loading indicator runs
// after each answer.
type Terminal struct {
	in      *bufio.Reader
	out     io.Writer
	styles  map[Style]lipgloss.Style
	color   bool
	spinner time.Duration
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithSpinner sets how long the loading indicator runs after each answer.
// Zero disables it.
func WithSpinner(d time.Duration) TerminalOption {
	return func(t *Terminal) { t.spinner = d }
}

// WithColor enables or disables styling.
func WithColor(enabled bool) TerminalOption {
	return func(t *Terminal) { t.color = enabled }
}

// NewTerminal creates a Terminal reading from in and writing to out.
func NewTerminal(in io.Reader, out io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		in:    bufio.NewReader(in),
		out:   out,
		color: true,
	}
	for _, opt := range opts {
		opt(t)
	}

	// The renderer inspects out, so piped output gets no escape codes.
	r := lipgloss.NewRenderer(out)
	t.styles = map[Style]lipgloss.Style{
		StyleQuestion: r.NewStyle().Foreground(lipgloss.Color("2")),
		StyleInfo:     r.NewStyle().Foreground(lipgloss.Color("2")),
		StyleAck:      r.NewStyle().Foreground(lipgloss.Color("4")),
		StyleError:    r.NewStyle().Foreground(lipgloss.Color("1")),
	}
	return t
}

// Present implements Presenter.
func (t *Terminal) Present(message string, style Style, wait bool) (string, error) {
	text := emoji.Sprint(message)
	if t.color {
		if s, ok := t.styles[style]; ok {
			text = s.Render(text)
		}
	}
	if _, err := fmt.Fprintln(t.out, text); err != nil {
		return "", err
	}
	if !wait {
		return "", nil
	}

	line, err := t.readLine()
	if err != nil {
		return "", err
	}
	t.load()
	return line, nil
}

// readLine returns the next line without its terminator. A final line with
// no newline is still returned; io.EOF is reported only when nothing was read.
func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// load shows the transient loading indicator and erases it afterwards. The
// pause always happens; the indicator is only drawn when out is a terminal.
func (t *Terminal) load() {
	if t.spinner <= 0 {
		return
	}
	f, ok := t.out.(*os.File)
	if !ok {
		time.Sleep(t.spinner)
		return
	}

	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriterFile(f))
	s.Suffix = " Loading"
	s.Start()
	time.Sleep(t.spinner)
	s.Stop()
}
