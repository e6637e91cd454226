// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

func renderReport(r Report) string {
	var b strings.Builder

	for _, c := range r.Checks {
		mark := okStyle.Render("OK  ")
		detail := c.Detail
		if !c.OK() {
			mark = failStyle.Render("FAIL")
			detail = c.Err.Error()
		}
		fmt.Fprintf(&b, "%s %-8s %s\n", mark, c.Name, detail)
	}

	summary := "all checks passed"
	if failed := len(r.Failed()); failed > 0 {
		summary = fmt.Sprintf("%d of %d checks failed", failed, len(r.Checks))
	}

	return appStyle.Render(renderPage("LAB PROBE: "+valueOrNA(r.BaseURL), b.String(), summary))
}

func renderPage(title, data, footer string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(strings.TrimRight(data, "\n"))
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(footer))

	return b.String()
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
