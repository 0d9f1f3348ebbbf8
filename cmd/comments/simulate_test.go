package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/straight-to-the-comments/internal/dialogue"
	"github.com/vovakirdan/straight-to-the-comments/internal/engine"
)

type firstChooser struct{}

func (firstChooser) Intn(int) int { return 0 }

func TestParsePicks(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{"comma separated", []string{"hater,supporter"}, 2, false},
		{"separate args", []string{"hater", "Critic"}, 2, false},
		{"spaces and empties", []string{" hater , ,jokester"}, 2, false},
		{"full session", []string{"hater,hater,hater,hater,hater"}, 5, false},
		{"too many", []string{"hater,hater,hater,hater,hater,hater"}, 0, true},
		{"empty", []string{","}, 0, true},
		{"unknown", []string{"troll"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePicks(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parsePicks(%v) = %v, want error", tt.args, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePicks(%v) error: %v", tt.args, err)
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}

	if _, err := parsePicks([]string{"troll"}); !errors.Is(err, engine.ErrUnknownStyle) {
		t.Errorf("unknown style error = %v, want ErrUnknownStyle", err)
	}
}

func TestSimulateAllHaters(t *testing.T) {
	var buf bytes.Buffer
	picks := []engine.StyleKey{engine.StyleHater, engine.StyleHater, engine.StyleHater, engine.StyleHater, engine.StyleHater}

	s, err := simulate(&buf, picks, nil)
	if err != nil {
		t.Fatalf("simulate() error: %v", err)
	}
	if !s.Finished() || s.Likes() != 42 || s.Footprint() != -100 {
		t.Errorf("state = likes %d footprint %d finished %v", s.Likes(), s.Footprint(), s.Finished())
	}

	out := buf.String()
	for _, want := range []string{"Total Likes:        42", "Platforms blocked:  0 (None)", "Final Rating: Shadow Reputation"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "rounds played") {
		t.Error("finished session should not report partial progress")
	}
}

func TestSimulatePartialWithDialogue(t *testing.T) {
	table, err := dialogue.Default()
	if err != nil {
		t.Fatalf("dialogue.Default() error: %v", err)
	}
	variants, err := table.Variants(engine.PlatformInstagram, engine.StyleSupporter)
	if err != nil {
		t.Fatalf("Variants() error: %v", err)
	}

	var buf bytes.Buffer
	sel := dialogue.NewSelector(table, firstChooser{})
	if _, err := simulate(&buf, []engine.StyleKey{engine.StyleSupporter}, sel); err != nil {
		t.Fatalf("simulate() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "@you: "+variants[0].You) {
		t.Errorf("output missing first exchange line:\n%s", out)
	}
	if !strings.Contains(out, "1 of 5 rounds played") {
		t.Errorf("output missing progress:\n%s", out)
	}
}
