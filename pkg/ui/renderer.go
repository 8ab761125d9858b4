package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/lazysetup/pkg/dispatcher"
	"github.com/arthur-debert/lazysetup/pkg/driver"
	"github.com/arthur-debert/lazysetup/pkg/install"
)

// Renderer writes command results
type Renderer struct {
	w      io.Writer
	styles Styles
	plain  bool
}

// NewRenderer creates a renderer; FormatAuto is resolved against w
func NewRenderer(w io.Writer, format Format) *Renderer {
	if format == FormatAuto {
		format = FormatText
		if f, ok := w.(*os.File); ok {
			format = DetectFormat(f)
		}
	}
	return &Renderer{
		w:      w,
		styles: DefaultStyles(),
		plain:  format != FormatTerminal,
	}
}

// Plain reports whether output is unstyled
func (r *Renderer) Plain() bool { return r.plain }

func (r *Renderer) style(name, text string) string {
	if r.plain {
		return text
	}
	return r.styles.Render(name, text)
}

func stateStyle(s install.State) string {
	switch s {
	case install.StateSucceeded:
		return "Success"
	case install.StateSkipped:
		return "Warning"
	case install.StateFailed, install.StateFailedRetryable:
		return "Error"
	default:
		return "Muted"
	}
}

// Install prints the one-line summary and, when something did not succeed, the units concerned
func (r *Renderer) Install(report *driver.Report) error {
	summary := fmt.Sprintf("%d installed, %d skipped, %d failed", report.Succeeded, report.Skipped, report.Failed)
	if report.Unfinished() > 0 {
		summary += fmt.Sprintf(", %d unfinished", report.Unfinished())
	}
	styleName := "Success"
	if !report.OK() {
		styleName = "Error"
	}
	if _, err := fmt.Fprintln(r.w, r.style(styleName, summary)); err != nil {
		return err
	}

	for _, res := range report.Results {
		if res.State == install.StateSucceeded {
			continue
		}
		name := res.Name
		if name == "" {
			name = res.Unit.SourceURL
		}
		line := fmt.Sprintf("  %s %s", r.style(stateStyle(res.State), res.State.String()), r.style("Name", name))
		if res.Reason != "" {
			line += r.style("Muted", " ("+res.Reason+")")
		} else if res.Err != nil {
			line += r.style("Muted", fmt.Sprintf(" after %d attempts", res.Attempts))
		}
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	return nil
}

// Delete prints each directory and what happened to it
func (r *Renderer) Delete(res *dispatcher.DeleteResult) error {
	var lines []string
	for _, dir := range res.Removed {
		lines = append(lines, fmt.Sprintf("%s %s", r.style("Success", "removed"), dir))
	}
	for _, dir := range res.Missing {
		lines = append(lines, fmt.Sprintf("%s %s", r.style("Muted", "absent "), dir))
	}
	failed := make([]string, 0, len(res.Failed))
	for dir := range res.Failed {
		failed = append(failed, dir)
	}
	sort.Strings(failed)
	for _, dir := range failed {
		lines = append(lines, fmt.Sprintf("%s %s: %v", r.style("Error", "failed "), dir, res.Failed[dir]))
	}
	if len(lines) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(r.w, strings.Join(lines, "\n"))
	return err
}

// Units prints the resolved install plan
func (r *Renderer) Units(units []install.Unit) error {
	if _, err := fmt.Fprintln(r.w, r.style("Header", fmt.Sprintf("%d repositories", len(units)))); err != nil {
		return err
	}
	for _, u := range units {
		name := u.Name()
		dest := u.Dest()
		if name == "" {
			name = "?"
			dest = r.style("Warning", "skipped: empty name")
		}
		_, err := fmt.Fprintf(r.w, "  %-8s %s %s %s\n",
			string(u.Kind), r.style("Name", name), r.style("Muted", u.SourceURL+" ->"), dest)
		if err != nil {
			return err
		}
	}
	return nil
}
