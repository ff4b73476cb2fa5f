package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "card-press",
	Short: "A CLI tool for exporting card orders as print-ready PDFs",
	Long: `Card Press takes a card order (an ordered list of card slots referencing
front and back images), downloads and conditions the images, and lays them
out into PDF documents for physical printing - either one card per page or
as 6x3 grid sheets with cut guides.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
