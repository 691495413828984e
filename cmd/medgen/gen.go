package main

import (
	"fmt"
	"io"
	"path"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"medgen/internal/campaign"
	"medgen/internal/render"
	"medgen/internal/scaffold"
	"medgen/internal/ui"
)

var (
	genNbHandlers   int
	genNbProperties int
	genSolc         string
	genLicense      string
	genOut          string
	genTemplate     string
	genOverwrite    bool
	genDryRun       bool
	genInteractive  bool
)

func init() {
	genCmd.Flags().IntVarP(&genNbHandlers, "nb-handlers", "n", campaign.DefaultHandlers, "number of handler contracts to generate")
	genCmd.Flags().IntVarP(&genNbProperties, "nb-properties", "p", campaign.DefaultProperties, "number of property contracts to generate")
	genCmd.Flags().StringVarP(&genSolc, "solc", "s", campaign.DefaultSolc, "solidity version for the pragma line")
	genCmd.Flags().StringVar(&genLicense, "license", campaign.DefaultLicense, "SPDX license identifier")
	genCmd.Flags().StringVarP(&genOut, "out", "o", scaffold.DefaultOutDir, "campaign output directory")
	genCmd.Flags().StringVar(&genTemplate, "template", "", "contract template override file")
	genCmd.Flags().BoolVar(&genOverwrite, "overwrite", false, "overwrite an existing campaign")
	genCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "print the file set without writing anything")
	genCmd.Flags().BoolVarP(&genInteractive, "interactive", "i", false, "ask for the campaign size interactively")
}

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate the fuzzing campaign scaffolding",
	Long: `Generate the campaign contract tree: N handler stubs inheriting from Setup,
M property stubs inheriting from HandlerParent, one parent aggregator per
family, the FuzzTest entry point and the Setup contract. Defaults come from
medgen.toml when one is found in the working directory or above.`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

func runGen(cmd *cobra.Command, _ []string) error {
	applyColorMode(cmd)

	cfg, outDir, err := resolveGenConfig(cmd)
	if err != nil {
		return err
	}

	if genInteractive {
		handlers, properties, err := ui.PromptCounts(cfg.Handlers, cfg.Properties)
		if err != nil {
			return err
		}
		cfg.Handlers, cfg.Properties = handlers, properties
	}

	plan, err := campaign.BuildPlan(cfg)
	if err != nil {
		return err
	}

	if genDryRun {
		printPlan(cmd.OutOrStdout(), plan, outDir)
		return nil
	}

	renderer, err := newRenderer()
	if err != nil {
		return err
	}
	res, err := scaffold.Write(plan, renderer, scaffold.Options{OutDir: outDir, Overwrite: genOverwrite})
	if err != nil {
		return err
	}

	if !quietMode(cmd) {
		printSummary(cmd.OutOrStdout(), res)
	}
	return nil
}

// resolveGenConfig layers the generation parameters: built-in defaults, then
// a discovered medgen.toml, then explicitly set flags.
func resolveGenConfig(cmd *cobra.Command) (campaign.Config, string, error) {
	cfg := campaign.Config{
		Handlers:   campaign.DefaultHandlers,
		Properties: campaign.DefaultProperties,
		Solc:       campaign.DefaultSolc,
		License:    campaign.DefaultLicense,
	}
	outDir := scaffold.DefaultOutDir

	m, ok, err := loadManifest(".")
	if err != nil {
		return cfg, "", err
	}
	if ok {
		if err := applyManifest(&cfg, &outDir, m); err != nil {
			return cfg, "", err
		}
	}

	if cmd.Flags().Changed("nb-handlers") {
		cfg.Handlers, err = safecast.Conv[uint8](genNbHandlers)
		if err != nil {
			return cfg, "", fmt.Errorf("--nb-handlers: %w", err)
		}
	}
	if cmd.Flags().Changed("nb-properties") {
		cfg.Properties, err = safecast.Conv[uint8](genNbProperties)
		if err != nil {
			return cfg, "", fmt.Errorf("--nb-properties: %w", err)
		}
	}
	if cmd.Flags().Changed("solc") {
		cfg.Solc = genSolc
	}
	if cmd.Flags().Changed("license") {
		cfg.License = genLicense
	}
	if cmd.Flags().Changed("out") {
		outDir = genOut
	}
	return cfg, outDir, nil
}

func applyManifest(cfg *campaign.Config, outDir *string, m *manifest) error {
	if m.Config.Solidity.Version != "" {
		cfg.Solc = m.Config.Solidity.Version
	}
	if m.Config.Solidity.License != "" {
		cfg.License = m.Config.Solidity.License
	}
	if m.Config.Campaign.Handlers != 0 {
		n, err := safecast.Conv[uint8](m.Config.Campaign.Handlers)
		if err != nil {
			return fmt.Errorf("%s: [campaign].handlers: %w", m.Path, err)
		}
		cfg.Handlers = n
	}
	if m.Config.Campaign.Properties != 0 {
		n, err := safecast.Conv[uint8](m.Config.Campaign.Properties)
		if err != nil {
			return fmt.Errorf("%s: [campaign].properties: %w", m.Path, err)
		}
		cfg.Properties = n
	}
	if m.Config.Campaign.Out != "" {
		*outDir = m.Config.Campaign.Out
	}
	return nil
}

func newRenderer() (*render.Renderer, error) {
	if genTemplate != "" {
		return render.NewRendererFromFile(genTemplate)
	}
	return render.NewRenderer()
}

func printPlan(out io.Writer, plan *campaign.Plan, outDir string) {
	fmt.Fprintf(out, "would generate %d contracts in %s:\n", len(plan.Units), outDir)
	for _, u := range plan.Units {
		fmt.Fprintf(out, "  - %s\n", path.Join(outDir, u.RelPath()))
	}
}

func printSummary(out io.Writer, res *scaffold.Result) {
	header := color.New(color.FgGreen, color.Bold)
	_, _ = header.Fprintf(out, "Generated fuzzing campaign in %s\n", res.Root)
	for _, rel := range res.Files {
		fmt.Fprintf(out, "  - %s\n", rel)
	}
	fmt.Fprintf(out, "  - %s\n", scaffold.LockFileName)
}
