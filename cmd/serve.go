package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"cpu-scheduler/api"
)

func newServeCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduler HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Port = port
			}

			handler := api.NewSchedulerHandlerImpl(cfg, newAdvisor(cfg))
			app := api.NewApp(handler)

			log.Println("listening on port", cfg.Port)
			return app.Listen(fmt.Sprintf(":%d", cfg.Port))
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides configuration)")
	return cmd
}
