package jtoo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestGoldenFromJSON converts each JSON fixture and compares the emitted
// text with its golden file.
func TestGoldenFromJSON(t *testing.T) {
	casesDir := filepath.Join("testdata", "cases")
	goldenDir := filepath.Join("testdata", "golden")

	entries, err := os.ReadDir(goldenDir)
	if err != nil {
		t.Fatalf("failed to read golden dir: %v", err)
	}

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".want") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".want")
		t.Run(name, func(t *testing.T) {
			jsonBytes, err := os.ReadFile(filepath.Join(casesDir, name+".json"))
			if err != nil {
				t.Fatalf("failed to read JSON: %v", err)
			}
			wantBytes, err := os.ReadFile(filepath.Join(goldenDir, name+".want"))
			if err != nil {
				t.Fatalf("failed to read golden: %v", err)
			}
			expected := strings.TrimSpace(string(wantBytes))

			v, err := FromJSON(jsonBytes)
			if err != nil {
				t.Fatalf("FromJSON failed: %v", err)
			}
			got, err := Emit(v)
			if err != nil {
				t.Fatalf("Emit failed: %v", err)
			}
			if got != expected {
				t.Errorf("output mismatch\n  got:      %s\n  expected: %s", got, expected)
			}

			// Parse back and re-emit
			parsed, err := Parse([]byte(got))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			reemit, err := Emit(parsed)
			if err != nil {
				t.Fatalf("Emit failed: %v", err)
			}
			if reemit != got {
				t.Errorf("non-deterministic output\n  first:  %s\n  second: %s", got, reemit)
			}
		})
	}
}
