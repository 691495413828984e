package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"medgen/internal/scaffold"
)

var cleanOut string

func init() {
	cleanCmd.Flags().StringVarP(&cleanOut, "out", "o", "", "campaign directory to clean (defaults to the manifest's out, then "+scaffold.DefaultOutDir+")")
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove a generated campaign",
	Long: `Remove exactly the files listed in the campaign's medgen.lock manifest,
then any directories left empty. Hand-written files in the campaign tree are
kept; a tree without a lock is refused rather than guessed at.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	outDir, err := resolveCleanTarget(cmd)
	if err != nil {
		return err
	}

	removed, err := scaffold.Clean(outDir)
	if err != nil {
		return err
	}
	if !quietMode(cmd) {
		fmt.Fprintf(os.Stdout, "removed %d files from %s\n", len(removed), outDir)
	}
	return nil
}

func resolveCleanTarget(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("out") {
		return cleanOut, nil
	}
	m, ok, err := loadManifest(".")
	if err != nil {
		return "", err
	}
	if ok && m.Config.Campaign.Out != "" {
		return m.Config.Campaign.Out, nil
	}
	return scaffold.DefaultOutDir, nil
}
