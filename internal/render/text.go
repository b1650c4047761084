package render

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output selects how results are printed.
type Output string

const (
	OutputText Output = "text"
	OutputJSON Output = "json"
)

// ParseOutput validates an output name.
func ParseOutput(s string) (Output, error) {
	switch o := Output(s); o {
	case OutputText, OutputJSON:
		return o, nil
	}

	return "", fmt.Errorf("unsupported output %q (want text or json)", s)
}

// Order writes a flat order, one entry per line for text.
func Order[T any](w io.Writer, out Output, order []T) error {
	if out == OutputJSON {
		return writeJSON(w, order)
	}
	for _, it := range order {
		if _, err := fmt.Fprintln(w, it); err != nil {
			return err
		}
	}

	return nil
}

// Stages writes grouped stages; text prints "stage N: a b c".
func Stages[T any](w io.Writer, out Output, stages [][]T) error {
	if out == OutputJSON {
		return writeJSON(w, stages)
	}
	for i, s := range stages {
		if _, err := fmt.Fprintf(w, "stage %d:", i); err != nil {
			return err
		}
		for _, it := range s {
			if _, err := fmt.Fprintf(w, " %v", it); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
