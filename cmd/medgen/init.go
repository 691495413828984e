package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"medgen/internal/campaign"
	"medgen/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a medgen.toml defaults manifest",
	Long: `Write a medgen.toml manifest holding the campaign defaults (solidity
version, license, handler and property counts, output directory). If [path]
is omitted, the current directory is used; a non-existing path is created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(_ *cobra.Command, args []string) error {
	// Resolve target directory
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	// Ensure directory exists
	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := filepath.Join(target, manifestFileName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("already initialized: %s exists", manifestPath)
	}

	if err := os.WriteFile(manifestPath, []byte(buildDefaultManifest()), os.FileMode(0o600)); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized medgen defaults in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - %s\n", manifestFileName)
	return nil
}

// buildDefaultManifest returns the medgen.toml written by init. Every field
// mirrors a gen flag; flags still win over the manifest.
func buildDefaultManifest() string {
	return fmt.Sprintf(`# medgen campaign defaults
[solidity]
version = "%s"
license = "%s"

[campaign]
handlers = %d
properties = %d
out = "%s"
`, campaign.DefaultSolc, campaign.DefaultLicense, campaign.DefaultHandlers, campaign.DefaultProperties, scaffold.DefaultOutDir)
}
