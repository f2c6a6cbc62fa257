// Package main provides the entry point for the resume critic CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_critic",
	Short: "Resume Critic analysis tool",
	Long:  "Resume Critic scores resumes against job postings with deterministic heuristics, optionally enriched by a generative model, and always returns a schema-valid critique.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
