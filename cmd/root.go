package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pagegrid",
	Short: "Arrange images or video frames into canvas pages",
	Long: `Pagegrid packs an ordered sequence of images into fixed-size canvas
pages, preserving strict input order. Images flow into rows or columns,
pages are written as image files, and an image_layout.txt manifest records
which source image landed on which page.`,
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
