package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

func newSimulateCmd() *cobra.Command {
	var (
		processFile  string
		algorithm    string
		quantum      int
		showTimeline bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one scheduling algorithm on a process file",
		Example: `  scheduler simulate -f examples/processes.yaml -a rr -q 4
  scheduler simulate -f examples/processes.yaml -a auto`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkQuantum(quantum); err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// reject unknown names before reading any input
			var selected schedulers.Algorithm
			if !strings.EqualFold(algorithm, "auto") {
				if selected, err = schedulers.ParseAlgorithm(algorithm); err != nil {
					return err
				}
			}

			request, err := requests.LoadFile(processFile)
			if err != nil {
				return fmt.Errorf("failed to load processes: %w", err)
			}
			if quantum > 0 {
				request.Quantum = quantum
			}

			out := cmd.OutOrStdout()
			if selected == "" {
				rec := newAdvisor(cfg).Recommend(cmd.Context(), request.Processes)
				report.PrintRecommendation(out, rec.ToResponse())
				fmt.Fprintln(out)
				selected = rec.Algorithm
			}

			result, err := schedulers.Run(selected, request, cfg.RoundRobinTimeQuantum)
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}
			report.PrintResult(out, result, showTimeline)
			return nil
		},
	}
	cmd.Flags().StringVarP(&processFile, "file", "f", "", "Path to the process file (YAML or JSON)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "sjf", "fcfs, sjf, rr, priority or auto")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (overrides file and configuration)")
	cmd.Flags().BoolVarP(&showTimeline, "timeline", "t", false, "Show every timeline interval")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// checkQuantum applies the same rule to the -q flag as to a quantum read
// from a process file. Zero keeps the file or configured value.
func checkQuantum(quantum int) error {
	if quantum < 0 {
		return fmt.Errorf("%w: quantum must be greater than 0", requests.ErrInvalidInput)
	}
	return nil
}

func newCompareCmd() *cobra.Command {
	var (
		processFile string
		quantum     int
		details     bool
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every scheduling algorithm on a process file and compare them",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkQuantum(quantum); err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			request, err := requests.LoadFile(processFile)
			if err != nil {
				return fmt.Errorf("failed to load processes: %w", err)
			}
			if quantum > 0 {
				request.Quantum = quantum
			}

			results, err := schedulers.RunAll(request, cfg.RoundRobinTimeQuantum)
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if details {
				for _, res := range results {
					report.PrintResult(out, res, false)
				}
			}
			report.PrintComparison(out, results)
			return nil
		},
	}
	cmd.Flags().StringVarP(&processFile, "file", "f", "", "Path to the process file (YAML or JSON)")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (overrides file and configuration)")
	cmd.Flags().BoolVarP(&details, "details", "d", false, "Print the full result of every algorithm")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newRecommendCmd() *cobra.Command {
	var processFile string
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Ask the advisor which algorithm fits a process file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			request, err := requests.LoadFile(processFile)
			if err != nil {
				return fmt.Errorf("failed to load processes: %w", err)
			}
			rec := newAdvisor(cfg).Recommend(cmd.Context(), request.Processes)
			report.PrintRecommendation(cmd.OutOrStdout(), rec.ToResponse())
			return nil
		},
	}
	cmd.Flags().StringVarP(&processFile, "file", "f", "", "Path to the process file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
