// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/MKhiriev/unified-ai-lab/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const pageTemplate = "page"

// Renderer renders the landing page. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("site").
		Funcs(template.FuncMap{"codeSpans": codeSpans}).
		ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingTemplates, err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

// RenderHomePage writes the full HTML document for page to w. Nothing is
// written to w if rendering fails.
func (r *Renderer) RenderHomePage(w io.Writer, page models.HomePage) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, pageTemplate, page); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderingPage, err)
	}

	_, err := buf.WriteTo(w)
	return err
}

// codeSpans escapes text and turns every `quoted` fragment into a <code>
// element. An unmatched trailing backtick is kept as literal text.
func codeSpans(text string) template.HTML {
	parts := strings.Split(text, "`")

	var sb strings.Builder
	for i, part := range parts {
		switch {
		case i%2 == 0:
			sb.WriteString(template.HTMLEscapeString(part))
		case i == len(parts)-1:
			sb.WriteString("`")
			sb.WriteString(template.HTMLEscapeString(part))
		default:
			sb.WriteString("<code>")
			sb.WriteString(template.HTMLEscapeString(part))
			sb.WriteString("</code>")
		}
	}

	return template.HTML(sb.String())
}
