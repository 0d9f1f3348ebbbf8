package dialogue

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/straight-to-the-comments/internal/engine"
)

// fixedChooser always returns the same index, clamped to n.
type fixedChooser int

func (f fixedChooser) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func TestDefaultTableIsComplete(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	for _, p := range engine.Platforms() {
		for _, st := range engine.Styles() {
			variants, err := table.Variants(p.Key, st.Key)
			if err != nil {
				t.Errorf("%s/%s: %v", p.Key, st.Key, err)
				continue
			}
			if len(variants) != 3 {
				t.Errorf("%s/%s has %d variants, want 3", p.Key, st.Key, len(variants))
			}
		}
	}
}

func TestSelectorUsesChooser(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	first := NewSelector(table, fixedChooser(0))
	ex, err := first.Select(engine.PlatformInstagram, engine.StyleHater)
	if err != nil {
		t.Fatalf("Select() failed: %v", err)
	}
	want := Exchange{You: "Delete this 💀", NPC: "Why post this tho", Follow: "Do it for the unblock button"}
	if ex != want {
		t.Errorf("Select() = %+v, want %+v", ex, want)
	}

	last := NewSelector(table, fixedChooser(2))
	ex, err = last.Select(engine.PlatformDiscord, engine.StyleSupporter)
	if err != nil {
		t.Fatalf("Select() failed: %v", err)
	}
	if ex.Lines() != [3]string{"Great callout", "Saved the run", "Clutch"} {
		t.Errorf("Select() = %v", ex.Lines())
	}
}

func TestSelectorRejectsUnknownKeys(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	sel := NewSelector(table, fixedChooser(0))

	if _, err := sel.Select(engine.PlatformTikTok, "troll"); !errors.Is(err, engine.ErrUnknownStyle) {
		t.Errorf("expected ErrUnknownStyle, got %v", err)
	}
	if _, err := sel.Select("myspace", engine.StyleHater); !errors.Is(err, ErrUnknownPlatform) {
		t.Errorf("expected ErrUnknownPlatform, got %v", err)
	}
}

func TestParseRejectsBrokenTables(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "not yaml",
			data:    "instagram: [",
			wantErr: "cannot parse",
		},
		{
			name:    "missing platform",
			data:    "instagram: {}\n",
			wantErr: "no exchanges for instagram/hypebeast",
		},
		{
			name:    "empty table",
			data:    "{}\n",
			wantErr: `no entry for platform "instagram"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if err == nil {
				t.Fatal("Parse() succeeded, expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseRejectsShortVariant(t *testing.T) {
	var b strings.Builder
	for _, p := range engine.Platforms() {
		b.WriteString(string(p.Key) + ":\n")
		for _, st := range engine.Styles() {
			b.WriteString("  " + string(st.Key) + ":\n")
			b.WriteString(`    - ["a", "b", "c"]` + "\n")
		}
	}
	valid := b.String()
	if _, err := Parse([]byte(valid)); err != nil {
		t.Fatalf("Parse() of minimal table failed: %v", err)
	}

	broken := strings.Replace(valid, `["a", "b", "c"]`, `["a", "b"]`, 1)
	if _, err := Parse([]byte(broken)); err == nil || !strings.Contains(err.Error(), "has 2 lines") {
		t.Errorf("expected line count error, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "dialogue.yaml")
	if err := os.WriteFile(path, defaultDialogueYAML, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(table) != engine.Rounds {
		t.Errorf("loaded %d platforms, want %d", len(table), engine.Rounds)
	}

	if _, err := Load(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("Load() of missing file should fail")
	}
}
