// Package templates builds the HTML GUI as templ components. Components are
// constructed directly against the templ runtime, so handlers render them
// with the usual component.Render(ctx, w) contract.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// raw writes pre-sanitized HTML as-is. Callers must only pass markup that
// already went through the bluemonday policy.
func raw(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// Layout wraps a page body in the shared HTML chrome: head, nav, footer.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><link rel="stylesheet" href="/static/style.css"></head><body>`, templ.EscapeString(title)); err != nil {
			return err
		}

		nav := `<nav class="topnav"><a href="/">LayerAudit</a><a href="/app/baseline">Baseline Audit</a><a href="/app/remediation">Remediation</a></nav>`
		if err := raw(w, nav); err != nil {
			return err
		}

		if err := raw(w, `<main class="content">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		if err := raw(w, `</main>`); err != nil {
			return err
		}

		return raw(w, `<footer class="footer">WCAG 2.2 accessibility tracking for OSMP map layers. Auto-save is best effort; take manual backups.</footer><script src="/static/app.js"></script></body></html>`)
	})
}
