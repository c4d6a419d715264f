package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by the release build.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the weft version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("weft %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
