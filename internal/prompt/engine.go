package prompt

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/createproject-labs/createproject/internal/validate"
)

// ErrNoInput is returned when the input stream ends before an answer is accepted.
var ErrNoInput = errors.New("input ended before an answer was accepted")

// errorPrefix is prepended to validator hints.
const errorPrefix = ":bangbang:  "

// RequiredHint is shown when a required question gets a blank answer.
const RequiredHint = "An answer is required, try again"

// Question is one entry of a prompt sequence.
type Question struct {
	Message   string
	Validator *validate.Validator // nil accepts anything
	Required  bool                // false for informational lines
	Style     Style
}

// Engine runs questions against a Presenter.
type Engine struct {
	presenter Presenter
	logger    *slog.Logger
}

// NewEngine creates an Engine. A nil logger discards diagnostics.
func NewEngine(p Presenter, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{presenter: p, logger: logger}
}

// Prompt asks message in the question style. When required is false the
// message is only displayed and "" is returned without reading input.
func (e *Engine) Prompt(message string, v *validate.Validator, required bool) (string, error) {
	return e.Ask(Question{Message: message, Validator: v, Required: required})
}

// Ask presents q and, when q.Required, reads lines until one is not blank
// and passes q.Validator. Every rejected line is followed by a hint and a
// fresh read; there is no attempt limit. The accepted line is returned as read.
func (e *Engine) Ask(q Question) (string, error) {
	if !q.Required {
		if _, err := e.presenter.Present(q.Message, q.Style, false); err != nil {
			return "", fmt.Errorf("presenting %q: %w", q.Message, err)
		}
		return "", nil
	}

	answer, err := e.presenter.Present(q.Message, q.Style, true)
	for attempt := 1; ; attempt++ {
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w: %q", ErrNoInput, q.Message)
			}
			return "", fmt.Errorf("reading answer to %q: %w", q.Message, err)
		}
		hint := RequiredHint
		if strings.TrimSpace(answer) != "" {
			if q.Validator.Accepts(answer) {
				return answer, nil
			}
			hint = q.Validator.Hint
		}

		e.logger.Debug("answer rejected", "hint", hint, "attempt", attempt)
		answer, err = e.presenter.Present(errorPrefix+hint, StyleError, true)
	}
}
