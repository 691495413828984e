// Package render turns campaign units into Solidity source text via a fixed
// contract template. The default template is embedded; callers may substitute
// their own as long as it uses the same five fields.
package render

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"medgen/internal/campaign"
)

//go:embed contract.sol.tmpl
var defaultTemplate string

// Renderer renders units with one parsed contract template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer returns a renderer using the embedded default template.
func NewRenderer() (*Renderer, error) {
	return parse(defaultTemplate)
}

// NewRendererFromFile returns a renderer using a template override file.
func NewRendererFromFile(path string) (*Renderer, error) {
	// #nosec G304 -- path is a user-supplied --template flag
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %q: %w", path, err)
	}
	r, err := parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

func parse(src string) (*Renderer, error) {
	tmpl, err := template.New("contract").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render substitutes the unit's fields into the contract template.
func (r *Renderer) Render(u campaign.Unit) (string, error) {
	var b strings.Builder
	if err := r.tmpl.Execute(&b, u); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", u.Name, err)
	}
	return b.String(), nil
}
