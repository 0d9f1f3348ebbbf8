package engine

import (
	"errors"
	"testing"
)

func TestPlatformOrder(t *testing.T) {
	want := []PlatformKey{PlatformInstagram, PlatformTikTok, PlatformYouTube, PlatformText, PlatformDiscord}
	got := Platforms()
	if len(got) != Rounds {
		t.Fatalf("got %d platforms, want %d", len(got), Rounds)
	}
	for i, key := range want {
		if got[i].Key != key {
			t.Errorf("platform %d = %s, want %s", i, got[i].Key, key)
		}
	}
	if !got[0].IsPortrait() || got[2].IsPortrait() {
		t.Error("instagram should be portrait and youtube landscape")
	}
}

func TestPlatformsReturnsCopy(t *testing.T) {
	ps := Platforms()
	ps[0].Label = "changed"
	if PlatformForRound(0).Label != "Instagram" {
		t.Error("catalog mutated through Platforms()")
	}
}

func TestPlatformForRoundOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for round outside platform range")
		}
	}()
	PlatformForRound(Rounds)
}

func TestScoreForEveryStyle(t *testing.T) {
	for _, st := range Styles() {
		if _, err := ScoreFor(st.Key); err != nil {
			t.Errorf("ScoreFor(%s) error: %v", st.Key, err)
		}
	}

	hater, _ := ScoreFor(StyleHater)
	if hater != (StyleScore{BaseLikes: 30, FootprintDelta: -20, DecayPerPastPick: -15}) {
		t.Errorf("hater row = %+v", hater)
	}
}

func TestParseStyle(t *testing.T) {
	key, err := ParseStyle("critic")
	if err != nil || key != StyleCritic {
		t.Errorf("ParseStyle(critic) = %q, %v", key, err)
	}

	if _, err := ParseStyle("Critic"); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("ParseStyle is case sensitive, expected ErrUnknownStyle, got %v", err)
	}
}
