package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"aiplay/heredity"
)

// Print writes every person's distributions in dataset order, gene counts
// from two down to zero and the trait as True then False.
func Print(w io.Writer, result *heredity.Result) error {
	for _, name := range result.Names() {
		d, _ := result.Get(name)
		_, err := fmt.Fprintf(w,
			"%s:\n  Gene:\n    2: %.4f\n    1: %.4f\n    0: %.4f\n  Trait:\n    True: %.4f\n    False: %.4f\n",
			name, d.Gene[2], d.Gene[1], d.Gene[0], d.TraitProbability(true), d.TraitProbability(false))
		if err != nil {
			return fmt.Errorf("print %s: %w", name, err)
		}
	}
	return nil
}

// WriteCSV writes one row per person with full precision.
func WriteCSV(w io.Writer, result *heredity.Result) error {
	writer := csv.NewWriter(w)
	header := []string{"name", "gene_0", "gene_1", "gene_2", "trait_true", "trait_false"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, name := range result.Names() {
		d, _ := result.Get(name)
		row := []string{
			name,
			format(d.Gene[0]),
			format(d.Gene[1]),
			format(d.Gene[2]),
			format(d.TraitProbability(true)),
			format(d.TraitProbability(false)),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func format(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
