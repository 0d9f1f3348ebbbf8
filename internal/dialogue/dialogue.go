// Package dialogue supplies the three-line comment exchanges shown after a
// pick. Which variant is shown is random and has no effect on scoring.
package dialogue

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/straight-to-the-comments/internal/engine"
)

//go:embed defaults/dialogue.yaml
var defaultDialogueYAML []byte

// ErrUnknownPlatform is returned for a platform key the table does not cover.
var ErrUnknownPlatform = errors.New("dialogue: unknown platform")

// Exchange is a short thread: the player's comment, an NPC reply and the
// player's follow-up.
type Exchange struct {
	You    string
	NPC    string
	Follow string
}

// Lines returns the exchange in display order.
func (e Exchange) Lines() [3]string {
	return [3]string{e.You, e.NPC, e.Follow}
}

// Table holds every exchange variant per platform and style.
type Table map[engine.PlatformKey]map[engine.StyleKey][]Exchange

// rawTable mirrors the YAML layout: platform -> style -> list of [you, npc, you].
type rawTable map[string]map[string][][]string

// Parse decodes and validates a dialogue table.
func Parse(data []byte) (Table, error) {
	var raw rawTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("dialogue: cannot parse table: %w", err)
	}

	table := make(Table, len(raw))
	for _, p := range engine.Platforms() {
		byStyle, ok := raw[string(p.Key)]
		if !ok {
			return nil, fmt.Errorf("dialogue: table has no entry for platform %q", p.Key)
		}

		table[p.Key] = make(map[engine.StyleKey][]Exchange, len(byStyle))
		for _, st := range engine.Styles() {
			variants := byStyle[string(st.Key)]
			if len(variants) == 0 {
				return nil, fmt.Errorf("dialogue: no exchanges for %s/%s", p.Key, st.Key)
			}

			exchanges := make([]Exchange, 0, len(variants))
			for i, lines := range variants {
				if len(lines) != 3 {
					return nil, fmt.Errorf("dialogue: %s/%s variant %d has %d lines, want 3", p.Key, st.Key, i, len(lines))
				}
				exchanges = append(exchanges, Exchange{You: lines[0], NPC: lines[1], Follow: lines[2]})
			}
			table[p.Key][st.Key] = exchanges
		}
	}
	return table, nil
}

// Default returns the built-in dialogue table.
func Default() (Table, error) {
	return Parse(defaultDialogueYAML)
}

// Load reads a dialogue table from path, or the built-in one when path is empty.
func Load(path string) (Table, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dialogue: failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Variants returns the exchanges available for a platform and style.
func (t Table) Variants(platform engine.PlatformKey, style engine.StyleKey) ([]Exchange, error) {
	byStyle, ok := t[platform]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
	}
	variants, ok := byStyle[style]
	if !ok || len(variants) == 0 {
		return nil, fmt.Errorf("%w: %q", engine.ErrUnknownStyle, style)
	}
	return variants, nil
}

// Chooser picks an index in [0, n). *rand.Rand satisfies it.
type Chooser interface {
	Intn(n int) int
}

// Selector draws exchanges from a table.
type Selector struct {
	table  Table
	choose Chooser
}

// NewSelector creates a selector over table using choose for variant picks.
func NewSelector(table Table, choose Chooser) *Selector {
	return &Selector{table: table, choose: choose}
}

// Select returns one exchange for the platform and style.
func (s *Selector) Select(platform engine.PlatformKey, style engine.StyleKey) (Exchange, error) {
	variants, err := s.table.Variants(platform, style)
	if err != nil {
		return Exchange{}, err
	}
	return variants[s.choose.Intn(len(variants))], nil
}
