package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"pet-adoption/internal/domain/navigation"

	"github.com/fatih/color"
)

// printer escribe las vistas en text (con color) o json.
type printer struct {
	format string
	w      io.Writer
}

func newPrinter(opts *RootOptions, w io.Writer) printer {
	return printer{format: opts.Format, w: w}
}

var (
	titleColor   = color.New(color.Bold, color.FgHiCyan)
	idColor      = color.New(color.FgHiBlack)
	labelColor   = color.New(color.FgYellow)
	missingColor = color.New(color.FgRed)
)

func (p printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p printer) list(v navigation.ListView) error {
	if p.format == "json" {
		return p.json(v)
	}

	fmt.Fprintf(p.w, "%s (%d)\n", titleColor.Sprint(v.Title), len(v.Pets))
	for _, c := range v.Pets {
		line := fmt.Sprintf("  %s  %s  %s  %s", idColor.Sprintf("#%s", c.IDLabel), c.Name, c.Breed, labelColor.Sprint(c.SexLabel))
		if c.AgeLabel != "" {
			line += "  " + c.AgeLabel
		}
		fmt.Fprintln(p.w, line)
	}
	return nil
}

func (p printer) detail(v navigation.DetailView) error {
	if p.format == "json" {
		return p.json(v)
	}

	fmt.Fprintln(p.w, titleColor.Sprint(v.Title))
	if !v.Found || v.Pet == nil {
		fmt.Fprintf(p.w, "  %s\n", missingColor.Sprint(v.Message))
		return nil
	}

	c := v.Pet
	fmt.Fprintf(p.w, "  ID:     %s\n", c.IDLabel)
	fmt.Fprintf(p.w, "  Photo:  %s\n", c.Photo)
	fmt.Fprintf(p.w, "  Breed:  %s\n", c.Breed)
	fmt.Fprintf(p.w, "  Sex:    %s\n", labelColor.Sprint(c.SexLabel))
	if c.AgeLabel != "" {
		fmt.Fprintf(p.w, "  Age:    %s\n", c.AgeLabel)
	}
	return nil
}

func (p printer) age(years, months int, label string) error {
	if p.format == "json" {
		return p.json(map[string]any{"years": years, "months": months, "label": label})
	}
	fmt.Fprintln(p.w, label)
	return nil
}

func (p printer) reloaded(n int) error {
	if p.format == "json" {
		return p.json(map[string]any{"count": n})
	}
	fmt.Fprintf(p.w, "reloaded %d pets\n", n)
	return nil
}
