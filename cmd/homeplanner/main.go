package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ChicagoDave/homeplanner/internal/server"
	"github.com/ChicagoDave/homeplanner/pkg/config"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "homeplanner",
		Short: "Specification-driven residential floor plan engine",
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to homeplanner.toml")

	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(costCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(suggestCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func planCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [spec-path]",
		Short: "Run the full layout pipeline and print the scene as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPlan(args[0])
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [spec-path]",
		Short: "Validate a home spec without running the full pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func costCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cost [spec-path]",
		Short: "Compute and display the construction cost estimate",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCost(args[0])
		},
	}
}

func renderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render [spec-path]",
		Short: "Render the floor plan to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRender(args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "floorplan.png", "output PNG path")
	return cmd
}

func serveCmd(configPath *string) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			return server.New(cfg).Start()
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP server port")
	return cmd
}

func suggestCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [topic] [spec-path]",
		Short: "Ask the configured language model for design advice",
		Long:  "Topics: design, materials, budget, compliance.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return runSuggest(cmd.Context(), cfg, args[0], args[1])
		},
	}
}
