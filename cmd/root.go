package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quaver",
	Short: "MIDI-to-notation engraving toolkit",
	Long:  `Converts streams of MIDI notes into laid-out, human-readable score measures.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
