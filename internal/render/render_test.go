package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"medgen/internal/campaign"
)

func TestRenderLeafContract(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	got, err := r.Render(campaign.Unit{
		License: "MIT",
		Solc:    "0.8.23",
		Imports: "import {Setup} from '../Setup.t.sol';\n",
		Name:    "HandlerA",
		Parents: "Setup",
		Dir:     "handlers",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `// SPDX-License-Identifier: MIT
pragma solidity 0.8.23;

import {Setup} from '../Setup.t.sol';

contract HandlerA is Setup {

}
`
	if got != want {
		t.Fatalf("rendered contract mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderOmitsInheritanceClauseWhenEmpty(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	got, err := r.Render(campaign.Unit{
		License: "MIT",
		Solc:    "0.8.23",
		Name:    "Setup",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `// SPDX-License-Identifier: MIT
pragma solidity 0.8.23;

contract Setup {

}
`
	if got != want {
		t.Fatalf("rendered contract mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if strings.Contains(got, " is ") {
		t.Fatalf("empty parent list must not produce an is clause: %q", got)
	}
}

func TestRenderAggregatorImports(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	got, err := r.Render(campaign.Unit{
		License: "MIT",
		Solc:    "0.8.23",
		Imports: "import { HandlerA } from './HandlerA.t.sol';\nimport { HandlerB } from './HandlerB.t.sol';\n",
		Name:    "HandlerParent",
		Parents: "HandlerA, HandlerB",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(got, "import { HandlerA } from './HandlerA.t.sol';\nimport { HandlerB } from './HandlerB.t.sol';\n") {
		t.Fatalf("aggregator imports missing or reordered:\n%s", got)
	}
	if !strings.Contains(got, "contract HandlerParent is HandlerA, HandlerB {") {
		t.Fatalf("aggregator declaration wrong:\n%s", got)
	}
}

func TestNewRendererFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.tmpl")
	if err := os.WriteFile(path, []byte("contract {{.Name}} {}\n"), 0o600); err != nil {
		t.Fatalf("write template: %v", err)
	}
	r, err := NewRendererFromFile(path)
	if err != nil {
		t.Fatalf("NewRendererFromFile: %v", err)
	}
	got, err := r.Render(campaign.Unit{Name: "FuzzTest"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "contract FuzzTest {}\n" {
		t.Fatalf("Render = %q", got)
	}
}

func TestNewRendererFromFileMissing(t *testing.T) {
	if _, err := NewRendererFromFile(filepath.Join(t.TempDir(), "absent.tmpl")); err == nil {
		t.Fatalf("expected error for missing template file")
	}
}

func TestNewRendererFromFileBadSyntax(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.tmpl")
	if err := os.WriteFile(path, []byte("contract {{.Name"), 0o600); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if _, err := NewRendererFromFile(path); err == nil {
		t.Fatalf("expected parse error for unterminated action")
	}
}
