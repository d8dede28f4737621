package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Shivagad/SDLC-Automation/internal/server"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = os.Getenv("PORT")
			}
			if port == "" {
				port = "8080"
			}

			os.Setenv("CONFIG_PATH", configPath)
			srv := server.NewServer()
			r := srv.SetupRouter()

			log.Printf("Starting server on port %s", port)
			return r.Run(":" + port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default $PORT or 8080)")

	return cmd
}
