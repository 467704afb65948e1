package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/dynvec/internal/dynarray"
)

func TestParseArray(t *testing.T) {
	arr, err := parseArray[int64]([]string{"1", "2", "3"}, parseInt)
	if err != nil {
		t.Fatalf("parseArray error = %v", err)
	}
	if !dynarray.Equal(arr, dynarray.Of[int64](1, 2, 3)) {
		t.Errorf("parseArray = %s", arr)
	}

	empty, err := parseArray[float64](nil, parseFloat)
	if err != nil || empty.Len() != 0 {
		t.Errorf("parseArray(nil) = %v, %v", empty, err)
	}

	if _, err := parseArray[int64]([]string{"1.5"}, parseInt); err == nil {
		t.Error("expected error for non-integer value")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"run preset", []string{"run", "--preset", "divide"}, "DynamicArray{length: 3, array: [4, 8, 16]}", false},
		{"run float override", []string{"run", "--preset", "divide", "--element", "float"}, "(float)", false},
		{"run unknown preset", []string{"run", "--preset", "nope"}, "", true},
		{"run nothing", []string{"run"}, "", true},
		{"render int", []string{"render", "1", "2"}, "DynamicArray{length: 2, array: [1, 2]}", false},
		{"render float", []string{"render", "--element", "float", "1.5"}, "DynamicArray{length: 1, array: [1.5]}", false},
		{"render bad element", []string{"render", "--element", "complex", "1"}, "", true},
		{"plot", []string{"plot", "1", "5", "2"}, "DynamicArray{length: 3, array: [1, 5, 2]}", false},
		{"plot infinity", []string{"plot", "1", "Inf"}, "", true},
		{"plot nan", []string{"plot", "NaN"}, "", true},
		{"presets", []string{"presets"}, "divide", false},
		{"ops", []string{"ops"}, "div_assign", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("Execute(%v) output missing %q:\n%s", tt.args, tt.want, out)
			}
		})
	}
}

func TestCommands_ElementFlagsIndependent(t *testing.T) {
	if _, err := execute(t, "render", "--element", "float", "1.5"); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	// run without --element keeps the scenario's own type
	out, err := execute(t, "run", "--preset", "divide")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "(int)") {
		t.Errorf("run output should use the int element:\n%s", out)
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	out, err := execute(t, "init", path, "--preset", "cursor")
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out, "wrote cursor scenario") {
		t.Errorf("init output = %q", out)
	}

	out, err = execute(t, "run", path)
	if err != nil {
		t.Fatalf("run of written scenario failed: %v", err)
	}
	if !strings.Contains(out, "cursor (int)") {
		t.Errorf("run output missing header:\n%s", out)
	}
}
