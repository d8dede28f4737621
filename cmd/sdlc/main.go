package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	rootCmd := &cobra.Command{
		Use:   "sdlc",
		Short: "LLM-driven SDLC pipeline: requirements, stories, architecture, UML",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/config.toml", "path to TOML config")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
