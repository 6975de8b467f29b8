package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"

	"github.com/njchilds90/polysolve"
	"github.com/njchilds90/polysolve/internal/cli/config"
)

// outcome is the result of solving one command-line equation.
type outcome struct {
	Equation string
	Result   *polysolve.Result
	Err      error
}

// styles for the text renderer.
type styles struct {
	Step     lipgloss.Style
	Detail   lipgloss.Style
	Solution lipgloss.Style
	Error    lipgloss.Style
	Title    lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		Step:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Detail:   r.NewStyle().PaddingLeft(2),
		Solution: r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("1")),
		Title:    r.NewStyle().Underline(true),
	}
}

func render(w io.Writer, format string, color bool, outs []outcome) error {
	switch format {
	case config.OutputJSON:
		return renderJSON(w, outs)
	case config.OutputTable:
		return renderTable(w, outs)
	default:
		return renderText(w, newStyles(w, color), outs)
	}
}

func renderText(w io.Writer, st styles, outs []outcome) error {
	for i, o := range outs {
		if len(outs) > 1 {
			if i > 0 {
				_, _ = fmt.Fprintln(w)
			}
			_, _ = fmt.Fprintln(w, st.Title.Render(o.Equation))
		}
		if o.Err != nil {
			_, _ = fmt.Fprintln(w, st.Error.Render("Error: "+o.Err.Error()))
			continue
		}
		for _, s := range o.Result.Steps {
			_, _ = fmt.Fprintln(w, st.Step.Render(polysolve.StepLine(s)))
			for _, d := range s.Details {
				_, _ = fmt.Fprintln(w, st.Detail.Render(d))
			}
		}
		if _, err := fmt.Fprintln(w, st.Solution.Render("Solution: "+o.Result.Solution.String())); err != nil {
			return err
		}
	}
	return nil
}

type jsonOutcome struct {
	*polysolve.Result
	Equation string `json:"equation"`
	Error    string `json:"error,omitempty"`
}

func renderJSON(w io.Writer, outs []outcome) error {
	entries := make([]jsonOutcome, len(outs))
	for i, o := range outs {
		entries[i] = jsonOutcome{Result: o.Result, Equation: o.Equation}
		if o.Err != nil {
			entries[i].Error = o.Err.Error()
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func renderTable(w io.Writer, outs []outcome) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Equation", "Standard form", "Case", "a", "b", "c", "Delta", "Solution"})

	for _, o := range outs {
		if o.Err != nil {
			t.AppendRow(table.Row{o.Equation, "", "error", "", "", "", "", o.Err.Error()})
			continue
		}
		r := o.Result
		delta := ""
		if r.Discriminant != nil {
			delta = polysolve.Number(*r.Discriminant).String()
		}
		t.AppendRow(table.Row{
			o.Equation,
			r.Canonical,
			r.Solution.Case.String(),
			polysolve.Number(r.Coefficients.A).String(),
			polysolve.Number(r.Coefficients.B).String(),
			polysolve.Number(r.Coefficients.C).String(),
			delta,
			r.Solution.String(),
		})
	}
	t.Render()
	return nil
}
