package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/myrjola/thejury/cmd/cli/cases"
	"github.com/myrjola/thejury/internal/errors"
	"github.com/spf13/cobra"
)

func init() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddGroup(cases.Group)
	rootCmd.AddCommand(cases.List, cases.Export, cases.Clear)
}

var rootCmd = &cobra.Command{ //nolint:exhaustruct
	Use:  "thejury-cli",
	Long: `Command line utilities for The Jury https://github.com/myrjola/thejury`,
	Run: func(_ *cobra.Command, _ []string) {
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
