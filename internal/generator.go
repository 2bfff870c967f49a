package internal

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/google/renameio/v2"
	"golang.org/x/tools/imports"
)

type Output struct {
	Path    string
	Content []byte
}

type TemplateData struct {
	*Artifact
	Package     string
	Include     string
	Static      bool
	CloseGuards int
}

type Generator struct {
	cfg  *Config
	tmpl *template.Template
}

func NewGenerator(cfg *Config) *Generator {
	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"guards": func(n int) []struct{} {
			return make([]struct{}, n)
		},
	}
	return &Generator{
		cfg:  cfg,
		tmpl: template.Must(template.New("sheetgen").Funcs(funcMap).Parse(cTemplate + goTemplate)),
	}
}

// Generate renders every output for the configured target and only then
// writes them, so a render failure leaves all destinations untouched.
func (g *Generator) Generate(a *Artifact) ([]Output, error) {
	outputs, err := g.Render(a)
	if err != nil {
		return nil, err
	}
	if err = g.Write(outputs); err != nil {
		return nil, err
	}
	return outputs, nil
}

func (g *Generator) Render(a *Artifact) ([]Output, error) {
	switch g.cfg.Target {
	case TargetHeader:
		header, err := g.renderSpliced(g.cfg.Header, TemplateData{Artifact: a, Static: true})
		if err != nil {
			return nil, err
		}
		return []Output{header}, nil

	case TargetSplit:
		header, err := g.renderSpliced(g.cfg.Header, TemplateData{Artifact: a})
		if err != nil {
			return nil, err
		}
		code, err := g.execute("source", TemplateData{Artifact: a, Include: filepath.Base(g.cfg.Header)})
		if err != nil {
			return nil, fmt.Errorf("generate %s: %v", g.cfg.Source, err)
		}
		eol := LineEnding(string(header.Content))
		source := Output{Path: g.cfg.Source, Content: []byte(withLineEnding(code+"\n", eol))}
		// nothing includes the source, so it is replaced before the header
		return []Output{source, header}, nil

	case TargetGo:
		code, err := g.execute("go", TemplateData{Artifact: a, Package: g.cfg.Package})
		if err != nil {
			return nil, fmt.Errorf("generate %s: %v", g.cfg.Output, err)
		}
		formatted, err := imports.Process(g.cfg.Output, []byte(code+"\n"), nil)
		if err != nil {
			return nil, fmt.Errorf("format %s: %v", g.cfg.Output, err)
		}
		return []Output{{Path: g.cfg.Output, Content: formatted}}, nil
	}
	return nil, fmt.Errorf("%w: invalid argument -target: %s", ErrUsage, g.cfg.Target)
}

// renderSpliced keeps the destination's hand-written preamble and replaces
// everything after the sentinel line with the rendered header block.
func (g *Generator) renderSpliced(path string, data TemplateData) (Output, error) {
	preamble, err := ReadPreamble(path, g.cfg.Sentinel)
	if err != nil {
		return Output{}, err
	}
	data.CloseGuards = OpenConditionals(preamble)

	block, err := g.execute("header", data)
	if err != nil {
		return Output{}, fmt.Errorf("generate %s: %v", path, err)
	}
	eol := LineEnding(preamble)
	return Output{Path: path, Content: []byte(preamble + withLineEnding("\n"+block+"\n", eol))}, nil
}

func withLineEnding(text, eol string) string {
	if eol == "\n" {
		return text
	}
	return strings.ReplaceAll(text, "\n", eol)
}

func (g *Generator) execute(name string, data TemplateData) (string, error) {
	var buf strings.Builder
	err := g.tmpl.ExecuteTemplate(&buf, name, data)
	return strings.TrimSpace(buf.String()), err
}

func (g *Generator) Write(outputs []Output) error {
	for _, o := range outputs {
		if err := renameio.WriteFile(o.Path, o.Content, 0644); err != nil {
			return fmt.Errorf("%w: write %s: %v", ErrDestination, o.Path, err)
		}
	}
	return nil
}
