// Package report renders environment accessors as terminal reports.
package report

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/forknroll/go-boilerplate-base/internal/env"
	"github.com/forknroll/go-boilerplate-base/models"
)

// Value placeholders.
const (
	ServerOnly = "server-only"
	Unset      = "(unset)"
)

// Row is one variable of a report.
type Row struct {
	Name  string
	Group string
	Value string
}

// Collect reads every declared variable of e. Server variables read on the
// client side are listed as [ServerOnly], optional variables without a
// value as [Unset].
//
// A validation failure is returned as is, so callers can render it with
// [RenderValidationError].
func Collect(e *env.Env) ([]Row, error) {
	keys := e.Keys()
	rows := make([]Row, 0, len(keys))

	for _, k := range keys {
		row := Row{Name: k.Name, Group: k.Group.String()}

		v, err := e.Get(k.Name)
		switch {
		case err == nil:
			row.Value = fmt.Sprint(v)
		case errors.Is(err, env.ErrForbiddenAccess):
			row.Value = ServerOnly
		case errors.Is(err, env.ErrUndefinedKey):
			row.Value = Unset
		default:
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// FromRemote converts a public env response into rows sorted by name.
func FromRemote(resp models.EnvResponse) []Row {
	names := make([]string, 0, len(resp.Variables))
	for name := range resp.Variables {
		names = append(names, name)
	}
	slices.Sort(names)

	rows := make([]Row, 0, len(names))
	for _, name := range names {
		rows = append(rows, Row{Name: name, Group: "public", Value: fmt.Sprint(resp.Variables[name])})
	}
	return rows
}

// Render writes rows as an aligned table inside a titled box.
func Render(w io.Writer, title string, rows []Row) error {
	nameWidth := lipgloss.Width("NAME")
	groupWidth := lipgloss.Width("GROUP")
	for _, r := range rows {
		nameWidth = max(nameWidth, lipgloss.Width(r.Name))
		groupWidth = max(groupWidth, lipgloss.Width(r.Group))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render(pad("NAME", nameWidth) + "  " + pad("GROUP", groupWidth) + "  VALUE"))

	for _, r := range rows {
		value := r.Value
		if value == ServerOnly || value == Unset {
			value = hiddenStyle.Render(value)
		}
		b.WriteString("\n")
		b.WriteString(pad(r.Name, nameWidth) + "  " + pad(r.Group, groupWidth) + "  " + value)
	}

	b.WriteString("\n\n")
	b.WriteString(okStyle.Render(fmt.Sprintf("✔ %d variables valid", len(rows))))

	_, err := fmt.Fprintln(w, boxStyle.Render(b.String()))
	return err
}

// RenderValidationError lists every offending variable of err.
func RenderValidationError(w io.Writer, err *env.SchemaValidationError) error {
	var b strings.Builder
	b.WriteString(errorStyle.Render(fmt.Sprintf("✘ %d invalid environment variables", len(err.Fields))))

	for _, f := range err.Fields {
		b.WriteString("\n")
		b.WriteString("  " + f.Key + ": " + f.Reason)
	}

	_, werr := fmt.Fprintln(w, boxStyle.Render(b.String()))
	return werr
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
