package scaffold

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/createproject-labs/createproject/internal/answers"
	"github.com/createproject-labs/createproject/internal/validate"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultTemplateSet is the embedded template set used by Generate.
const DefaultTemplateSet = "python-package"

// DefaultPythonRequires is written to setup.py when nothing is configured.
const DefaultPythonRequires = ">=3.8"

// ErrUnsafeName is returned when the project or package name is not a single
// path element, so the generated tree would not stay under the project root.
var ErrUnsafeName = errors.New("name must be a single directory name")

// Data holds all template variables available to scaffold templates.
type Data struct {
	answers.Record
	Version        string // e.g., "0.1.0"
	PythonRequires string // e.g., ">=3.8"
	Year           int    // Current year, for LICENSE
	Title          string // Derived: "my-project" -> "My Project"
}

// Options tune generation. The zero value is usable.
type Options struct {
	Version        string
	PythonRequires string
	Renderer       Renderer     // nil uses the embedded python-package set
	Logger         *slog.Logger // nil discards
	Now            func() time.Time
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string // relative to OutputDir, directories end in "/"
	Warnings  []string
}

// NewData builds template data from a record and options.
func NewData(rec *answers.Record, opts Options) (*Data, error) {
	version, err := NormalizeVersion(opts.Version)
	if err != nil {
		return nil, err
	}
	pythonRequires := opts.PythonRequires
	if pythonRequires == "" {
		pythonRequires = DefaultPythonRequires
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	return &Data{
		Record:         *rec,
		Version:        version,
		PythonRequires: pythonRequires,
		Year:           now().Year(),
		Title:          title(rec.ProjectName),
	}, nil
}

func title(name string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(words)
}

type entryKind int

const (
	kindFile entryKind = iota
	kindDir
	kindTouch
)

type entry struct {
	path     string // slash-separated, relative to the project root
	template string // kindFile only
	kind     entryKind
	optional bool // only with IncludeTemplates
}

// layout returns the project tree in creation order.
func layout(d *Data) []entry {
	pkg := "src/" + d.MainPackage
	return []entry{
		{path: "LICENSE", template: "LICENSE.tmpl"},
		{path: "requirements.txt", template: "requirements.txt.tmpl"},
		{path: "pyproject.toml", template: "pyproject.toml"},
		{path: "tests", kind: kindDir},
		{path: "tests/__init__.py", kind: kindTouch},
		{path: "MANIFEST.in", template: "MANIFEST.in.tmpl"},
		{path: "README.md", template: "README.md.tmpl"},
		{path: "setup.py", template: "setup.py.tmpl"},
		{path: ".gitignore", template: "gitignore"},
		{path: "setup.cfg", template: "setup.cfg.tmpl"},
		{path: "src", kind: kindDir},
		{path: pkg, kind: kindDir},
		{path: pkg + "/__init__.py", kind: kindTouch},
		{path: pkg + "/templates", kind: kindDir, optional: true},
		{path: pkg + "/templates/index.txt", template: "index.txt.tmpl", optional: true},
	}
}

// Generate creates basePath/<project_name> and fills it from the record.
// The project directory itself must not exist yet; callers check for
// collisions before calling. If generation fails after the project directory
// was created, the directory is removed again.
func Generate(basePath string, rec *answers.Record, opts Options) (*Result, error) {
	if err := checkNames(rec); err != nil {
		return nil, err
	}
	data, err := NewData(rec, opts)
	if err != nil {
		return nil, err
	}

	renderer := opts.Renderer
	if renderer == nil {
		tr, err := NewTemplateRenderer(DefaultTemplateSet)
		if err != nil {
			return nil, err
		}
		renderer = tr
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("creating base directory: %w", err)
	}
	outputDir := filepath.Join(basePath, rec.ProjectName)
	if err := os.Mkdir(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	result := &Result{OutputDir: outputDir}
	if err := populate(outputDir, data, renderer, logger, result); err != nil {
		if rmErr := os.RemoveAll(outputDir); rmErr != nil {
			logger.Warn("removing partial project", "dir", outputDir, "error", rmErr)
		}
		return nil, err
	}

	logger.Info("scaffold generated", "dir", outputDir, "entries", len(result.Files))
	return result, nil
}

func checkNames(rec *answers.Record) error {
	if !validate.IsName(rec.ProjectName) {
		return fmt.Errorf("%w: project name %q", ErrUnsafeName, rec.ProjectName)
	}
	if !validate.IsName(rec.MainPackage) {
		return fmt.Errorf("%w: main package %q", ErrUnsafeName, rec.MainPackage)
	}
	return nil
}

// populate writes every layout entry under outputDir, recording what it
// created in result.
func populate(outputDir string, data *Data, renderer Renderer, logger *slog.Logger, result *Result) error {
	// Surface record problems the interactive flow does not reject, such as
	// an empty author name.
	if valResult, valErr := answers.ValidateRecord(&data.Record); valErr != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not validate answers: %v", valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			result.Warnings = append(result.Warnings, issue.String())
		}
	}

	for _, e := range layout(data) {
		if e.optional && !data.IncludeTemplates {
			continue
		}

		target := filepath.Join(outputDir, filepath.FromSlash(e.path))
		switch e.kind {
		case kindDir:
			if err := os.Mkdir(target, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", e.path, err)
			}
			result.Files = append(result.Files, e.path+"/")
		case kindTouch:
			if err := Touch(target); err != nil {
				return err
			}
			result.Files = append(result.Files, e.path)
		default:
			content, err := renderer.Render(e.template, data)
			if err != nil {
				return err
			}
			if err := os.WriteFile(target, content, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", e.path, err)
			}
			result.Files = append(result.Files, e.path)
		}
		logger.Debug("created", "path", e.path)
	}
	return nil
}
