package main

import (
	"fmt"
	"os"

	"aiplay/heredity"
	"aiplay/metrics"
	"aiplay/report"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newHeredityCmd() *cobra.Command {
	var (
		csvPath    string
		goroutines int
	)

	cmd := &cobra.Command{
		Use:   "heredity <data.csv>",
		Short: "Compute every person's gene and trait distribution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			family, err := heredity.LoadFile(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("goroutines") {
				cfg.Heredity.Goroutines = goroutines
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("--goroutines=%d: %w", goroutines, err)
				}
			}

			collector := metrics.NewCollector()
			result, err := heredity.Infer(cmd.Context(), family,
				heredity.WithParams(cfg.Params()),
				heredity.WithGoroutines(cfg.Heredity.Goroutines),
				heredity.WithCollector(collector))
			if err != nil {
				return err
			}
			snapshot := collector.Complete()
			log.Info().
				Int("people", family.Len()).
				Int("accepted", snapshot.ScenariosAccepted).
				Int("rejected", snapshot.ScenariosRejected).
				Int("evaluations", snapshot.Evaluations).
				Dur("duration", snapshot.Duration).
				Msg("inference complete")

			if err := report.Print(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			if csvPath == "" {
				return nil
			}
			return writeCSV(csvPath, result)
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Also write the distributions to this CSV file")
	cmd.Flags().IntVar(&goroutines, "goroutines", 0, "Inference workers (overrides the config)")
	return cmd
}

func writeCSV(path string, result *heredity.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := report.WriteCSV(f, result); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("stored distributions")
	return nil
}
