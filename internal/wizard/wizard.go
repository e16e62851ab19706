// Package wizard drives the fixed question sequence that produces an Answer
// Record, and restarts the whole sequence when the chosen project name is
// already taken under the base path.
package wizard

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/createproject-labs/createproject/internal/answers"
	"github.com/createproject-labs/createproject/internal/prompt"
	"github.com/createproject-labs/createproject/internal/validate"
)

// ErrProjectExists is returned when the project directory is already present.
var ErrProjectExists = errors.New("project already exists")

// ErrRepeatedCollision is returned when a restarted pass picks the same
// project name that just collided.
var ErrRepeatedCollision = errors.New("project name collided again after restart")

// Asker asks a single question. *prompt.Engine satisfies it.
type Asker interface {
	Ask(q prompt.Question) (string, error)
}

// Wizard aggregates answers into a Record.
type Wizard struct {
	asker  Asker
	logger *slog.Logger
}

// New creates a Wizard. A nil logger discards diagnostics.
func New(asker Asker, logger *slog.Logger) *Wizard {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Wizard{asker: asker, logger: logger}
}

// Aggregate runs passes until the project name does not exist under
// basePath and returns that pass's record. A collision discards the pass and
// restarts from the first question. Two consecutive passes colliding on the
// same name end with ErrRepeatedCollision.
func (w *Wizard) Aggregate(basePath string) (*answers.Record, error) {
	var collided string
	for pass := 1; ; pass++ {
		w.logger.Debug("starting pass", "pass", pass)

		rec, err := w.runPass()
		if err != nil {
			return nil, err
		}

		err = CheckAvailable(basePath, rec.ProjectName)
		if err == nil {
			w.logger.Debug("answers collected", "pass", pass, "project", rec.ProjectName)
			return rec, nil
		}
		if !errors.Is(err, ErrProjectExists) {
			return nil, err
		}

		w.logger.Info("project name collision", "pass", pass, "project", rec.ProjectName)
		if rec.ProjectName == collided {
			return nil, fmt.Errorf("%w: %w", ErrRepeatedCollision, err)
		}
		collided = rec.ProjectName

		if _, err := w.asker.Ask(collisionNotice(rec.ProjectName, basePath)); err != nil {
			return nil, err
		}
	}
}

// runPass asks every step once and builds a fresh record.
func (w *Wizard) runPass() (*answers.Record, error) {
	rec := &answers.Record{}
	for _, step := range Steps {
		answer, err := w.asker.Ask(step.Question)
		if err != nil {
			return nil, err
		}

		switch step.Field {
		case FieldProjectName:
			rec.ProjectName = answer
		case FieldMainPackage:
			rec.MainPackage = answer
		case FieldAuthorName:
			rec.AuthorName = answer
		case FieldAuthorEmail:
			rec.AuthorEmail = answer
		case FieldShortDescription:
			rec.ShortDescription = answer
		case FieldIncludeTemplates:
			choice, ok := validate.ParseChoice(answer)
			if !ok {
				return nil, fmt.Errorf("unexpected answer %q to %q", answer, step.Message)
			}
			rec.IncludeTemplates = choice.Bool()
		}
	}
	return rec, nil
}

func collisionNotice(name, basePath string) prompt.Question {
	return prompt.Question{
		Message: fmt.Sprintf(":x: A project named %q already exists in %s, let's start over", name, basePath),
		Style:   prompt.StyleError,
	}
}

// CheckAvailable returns an error wrapping ErrProjectExists when anything
// named name is already present directly under basePath. The check is not
// atomic with the later mkdir.
func CheckAvailable(basePath, name string) error {
	target := filepath.Join(basePath, name)
	_, err := os.Stat(target)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrProjectExists, target)
	}
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("checking %s: %w", target, err)
}
