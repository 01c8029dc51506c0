package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/order-atlas/pkg/server"
	"github.com/de-tools/order-atlas/pkg/services/config"
	"github.com/de-tools/order-atlas/pkg/services/pipeline"
	"github.com/de-tools/order-atlas/pkg/store/csv"
)

var profilePath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the report API server for Order Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&profilePath, "profile", "p", "order-atlas.yaml",
		"Path to the run profile file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	profile, err := config.LoadProfile(profilePath)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	store := csv.NewStore(csv.Settings{
		OrdersPath: profile.OrdersPath,
		ItemsPath:  profile.ItemsPath,
		Delimiter:  profile.DelimiterRune(),
	})

	logger.Info().Msgf("Profile `%s` loaded.", profilePath)
	logger.Info().Msgf("Orders source: `%s`, items source: `%s`", profile.OrdersPath, profile.ItemsPath)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Pipeline: pipeline.NewController(store),
			Logger:   logger,
		},
	})

	return api.Start()
}
