package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of recipe-kb",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("recipe-kb %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
