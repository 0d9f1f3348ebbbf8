// Package engine implements the scoring and round-progression rules of
// Straight to the Comments. It is pure game logic: no terminal, storage or
// randomness. Presentation layers feed it style picks and render its state.
package engine

import "fmt"

// PlatformKey identifies one of the simulated social platforms.
type PlatformKey string

const (
	PlatformInstagram PlatformKey = "instagram"
	PlatformTikTok    PlatformKey = "tiktok"
	PlatformYouTube   PlatformKey = "youtube"
	PlatformText      PlatformKey = "text"
	PlatformDiscord   PlatformKey = "discord"
)

// Orientation is the viewport shape a platform is shown in.
type Orientation string

const (
	OrientationVertical   Orientation = "vertical"
	OrientationHorizontal Orientation = "horizontal"
)

// Platform describes a social platform visited during one round.
type Platform struct {
	Key         PlatformKey
	Label       string
	Orientation Orientation
	Accent      string // hex color
}

// platforms is the fixed round order. Round i is played on platforms[i].
var platforms = [Rounds]Platform{
	{Key: PlatformInstagram, Label: "Instagram", Orientation: OrientationVertical, Accent: "#d62976"},
	{Key: PlatformTikTok, Label: "TikTok", Orientation: OrientationVertical, Accent: "#25F4EE"},
	{Key: PlatformYouTube, Label: "YouTube", Orientation: OrientationHorizontal, Accent: "#FF0000"},
	{Key: PlatformText, Label: "Text Message", Orientation: OrientationVertical, Accent: "#10b981"},
	{Key: PlatformDiscord, Label: "Discord", Orientation: OrientationHorizontal, Accent: "#5865F2"},
}

// Platforms returns the platforms in round order.
func Platforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms[:])
	return out
}

// PlatformForRound returns the platform active in the given 0-indexed round.
// A round outside [0, Rounds) means the round driver broke its invariant,
// which is not recoverable.
func PlatformForRound(round int) Platform {
	if round < 0 || round >= len(platforms) {
		panic(fmt.Sprintf("engine: round %d outside platform range [0, %d)", round, len(platforms)))
	}
	return platforms[round]
}

// LookupPlatform finds a platform by key.
func LookupPlatform(key PlatformKey) (Platform, bool) {
	for _, p := range platforms {
		if p.Key == key {
			return p, true
		}
	}
	return Platform{}, false
}

// IsPortrait reports whether the platform uses a vertical viewport.
func (p Platform) IsPortrait() bool {
	return p.Orientation == OrientationVertical
}

// StyleKey identifies a comment style.
type StyleKey string

const (
	StyleHypebeast StyleKey = "hypebeast"
	StyleSupporter StyleKey = "supporter"
	StyleJokester  StyleKey = "jokester"
	StyleRoaster   StyleKey = "roaster"
	StyleCritic    StyleKey = "critic"
	StyleHater     StyleKey = "hater"
)

// Style is a selectable comment style.
type Style struct {
	Key   StyleKey
	Label string
}

// styles is the display order of the choice buttons.
var styles = [...]Style{
	{Key: StyleHypebeast, Label: "Hypebeast"},
	{Key: StyleSupporter, Label: "Supporter"},
	{Key: StyleJokester, Label: "Jokester"},
	{Key: StyleRoaster, Label: "Roaster"},
	{Key: StyleCritic, Label: "Critic"},
	{Key: StyleHater, Label: "Hater"},
}

// Styles returns the comment styles in display order.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles[:])
	return out
}

// LookupStyle finds a style by key.
func LookupStyle(key StyleKey) (Style, bool) {
	for _, s := range styles {
		if s.Key == key {
			return s, true
		}
	}
	return Style{}, false
}

// ParseStyle validates a raw style key.
func ParseStyle(raw string) (StyleKey, error) {
	key := StyleKey(raw)
	if _, ok := LookupStyle(key); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, raw)
	}
	return key, nil
}

// StyleScore is one row of the scoring table.
type StyleScore struct {
	BaseLikes        int // immediate visible reward
	FootprintDelta   int // hidden reputation change
	DecayPerPastPick int // applied to every later round, once per past pick
}

// scoringTable holds the per-style constants. It is only read through
// ScoreFor, which hands out copies.
var scoringTable = map[StyleKey]StyleScore{
	StyleHater:     {BaseLikes: 30, FootprintDelta: -20, DecayPerPastPick: -15},
	StyleRoaster:   {BaseLikes: 20, FootprintDelta: -15, DecayPerPastPick: -10},
	StyleCritic:    {BaseLikes: 10, FootprintDelta: -10, DecayPerPastPick: -5},
	StyleJokester:  {BaseLikes: 8, FootprintDelta: 0, DecayPerPastPick: 0},
	StyleHypebeast: {BaseLikes: 4, FootprintDelta: 5, DecayPerPastPick: 0},
	StyleSupporter: {BaseLikes: 2, FootprintDelta: 10, DecayPerPastPick: 0},
}

// ScoreFor returns the scoring row of a style. Unknown styles are an error,
// never a zero-effect row.
func ScoreFor(style StyleKey) (StyleScore, error) {
	sc, ok := scoringTable[style]
	if !ok {
		return StyleScore{}, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	return sc, nil
}
