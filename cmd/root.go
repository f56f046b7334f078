package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/advisor"
	"cpu-scheduler/internal/schedulers"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "CPU scheduling simulator",
	Long: `Simulates CPU scheduling of a process list under FCFS, SJF,
Round Robin and Priority scheduling and reports the execution timeline
together with waiting, turnaround and response time, CPU utilization and
throughput.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file (default ./config.yaml)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newRecommendCmd())
}

func loadConfig() (*config.SchedulerConfig, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	schedulers.SetVerbose(cfg.Verbose)
	return cfg, nil
}

// newAdvisor returns an advisor that always falls back when the model is
// disabled or cannot be reached.
func newAdvisor(cfg *config.SchedulerConfig) *advisor.Advisor {
	if !cfg.Advisor.Enabled {
		return advisor.New(nil, cfg.Advisor.Timeout)
	}
	completer, err := advisor.NewClaudeCompleter(cfg.Advisor.ApiKey, cfg.Advisor.Model)
	if err != nil {
		log.Println("advisor disabled:", err)
		return advisor.New(nil, cfg.Advisor.Timeout)
	}
	return advisor.New(completer, cfg.Advisor.Timeout)
}
