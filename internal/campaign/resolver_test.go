package campaign

import "testing"

func leaf(name string) Unit {
	return Unit{
		License: DefaultLicense,
		Solc:    DefaultSolc,
		Name:    name,
		Parents: "Setup",
		Dir:     "handlers",
	}
}

func TestBuildImportBlockEmpty(t *testing.T) {
	if got := BuildImportBlock(nil); got != "" {
		t.Fatalf("BuildImportBlock(nil) = %q, want empty", got)
	}
}

func TestBuildImportBlockSingle(t *testing.T) {
	got := BuildImportBlock([]Unit{leaf("HandlerA")})
	want := "import { HandlerA } from './HandlerA.t.sol';\n"
	if got != want {
		t.Fatalf("BuildImportBlock = %q, want %q", got, want)
	}
}

func TestBuildImportBlockPreservesOrder(t *testing.T) {
	got := BuildImportBlock([]Unit{leaf("HandlerA"), leaf("HandlerB")})
	want := "import { HandlerA } from './HandlerA.t.sol';\n" +
		"import { HandlerB } from './HandlerB.t.sol';\n"
	if got != want {
		t.Fatalf("BuildImportBlock = %q, want %q", got, want)
	}
}

func TestBuildParentList(t *testing.T) {
	cases := []struct {
		name   string
		leaves []Unit
		want   string
	}{
		{"empty", nil, ""},
		{"single", []Unit{leaf("HandlerA")}, "HandlerA"},
		{"two", []Unit{leaf("HandlerA"), leaf("HandlerB")}, "HandlerA, HandlerB"},
		{"three", []Unit{leaf("PropertyA"), leaf("PropertyB"), leaf("PropertyC")}, "PropertyA, PropertyB, PropertyC"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BuildParentList(tc.leaves); got != tc.want {
				t.Fatalf("BuildParentList = %q, want %q", got, tc.want)
			}
		})
	}
}
