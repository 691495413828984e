package main

import (
	"strings"
	"testing"

	"medgen/internal/campaign"
)

func TestPrintPlanListsEveryContract(t *testing.T) {
	plan, err := campaign.BuildPlan(campaign.Config{Handlers: 2, Properties: 2})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	var b strings.Builder
	printPlan(&b, plan, "test/invariants/fuzz")
	out := b.String()

	for _, want := range []string{
		"test/invariants/fuzz/handlers/HandlerA.t.sol",
		"test/invariants/fuzz/handlers/HandlerB.t.sol",
		"test/invariants/fuzz/handlers/HandlerParent.t.sol",
		"test/invariants/fuzz/properties/PropertyA.t.sol",
		"test/invariants/fuzz/properties/PropertyB.t.sol",
		"test/invariants/fuzz/properties/PropertyParent.t.sol",
		"test/invariants/fuzz/FuzzTest.t.sol",
		"test/invariants/fuzz/Setup.t.sol",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("dry-run output missing %s:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "8 contracts") {
		t.Fatalf("dry-run output should report the contract count:\n%s", out)
	}
}

func TestVersionInfoFallsBackToDev(t *testing.T) {
	info := collectVersionInfo()
	if info.Version == "" {
		t.Fatalf("collectVersionInfo returned an empty version")
	}
}

func TestValueOrUnknown(t *testing.T) {
	if got := valueOrUnknown(""); got != "unknown" {
		t.Fatalf("valueOrUnknown(\"\") = %q", got)
	}
	if got := valueOrUnknown("abc"); got != "abc" {
		t.Fatalf("valueOrUnknown(abc) = %q", got)
	}
}
