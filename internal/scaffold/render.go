package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

// Renderer turns a named template and its values into file content.
// Implementations must be deterministic.
type Renderer interface {
	Render(name string, data any) ([]byte, error)
}

// TemplateRenderer renders templates from one set of the embedded scaffolds.
// Names ending in .tmpl are executed with text/template; anything else is
// returned verbatim.
type TemplateRenderer struct {
	fsys fs.FS
	dir  string
}

// NewTemplateRenderer returns a renderer for the named template set.
func NewTemplateRenderer(set string) (*TemplateRenderer, error) {
	dir := path.Join("scaffolds", set)
	if _, err := fs.ReadDir(scaffoldFS, dir); err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", set, err)
	}
	return &TemplateRenderer{fsys: scaffoldFS, dir: dir}, nil
}

var funcs = template.FuncMap{
	// py escapes a value for a single-quoted Python string literal.
	"py": func(s string) string {
		return strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`).Replace(s)
	},
}

// Render implements Renderer.
func (r *TemplateRenderer) Render(name string, data any) ([]byte, error) {
	raw, err := fs.ReadFile(r.fsys, path.Join(r.dir, name))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	if !strings.HasSuffix(name, ".tmpl") {
		return raw, nil
	}

	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
