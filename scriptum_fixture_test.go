package scriptum

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/scriptumlang/scriptum/internal/diag"
	"github.com/scriptumlang/scriptum/internal/sourcemap"
)

// TestFixtures runs every .stm program under testdata/fixtures through the
// full pipeline, fails on any error diagnostic or runtime fault, and
// snapshots its main() result, mirroring the teacher's fixture_test.go directory-driven
// snapshot harness, scaled down from DWScript's 64 categories to the
// handful of end-to-end scenarios spec.md §8 actually describes.
func TestFixtures(t *testing.T) {
	files, err := filepath.Glob("testdata/fixtures/*.stm")
	if err != nil {
		t.Fatalf("glob fixtures: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no fixtures found under testdata/fixtures")
	}

	for _, path := range files {
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}

			src := sourcemap.New(0, name, data)
			moduleIr, diags := Compile(src)
			if diag.HasErrors(diags) {
				t.Fatalf("unexpected diagnostics for %s:\n%s", name, diag.FormatAll(diags, name, src))
			}

			value, rtErr := Run(moduleIr)
			if rtErr != nil {
				t.Fatalf("unexpected runtime fault for %s: %s", name, rtErr.Error())
			}

			snaps.MatchSnapshot(t, value.String())
		})
	}
}
