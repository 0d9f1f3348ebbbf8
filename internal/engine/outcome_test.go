package engine

import (
	"reflect"
	"testing"
)

func TestRateFootprint(t *testing.T) {
	tests := []struct {
		footprint int
		expected  Rating
	}{
		{100, RatingPositive},
		{30, RatingPositive},
		{29, RatingMixed},
		{0, RatingMixed},
		{-29, RatingMixed},
		{-30, RatingShadow},
		{-100, RatingShadow},
	}

	for _, tc := range tests {
		if got := RateFootprint(tc.footprint); got != tc.expected {
			t.Errorf("RateFootprint(%d) = %q, want %q", tc.footprint, got, tc.expected)
		}
	}
}

func TestSummarizeKindSession(t *testing.T) {
	s, _ := play(t, StyleSupporter, StyleSupporter, StyleSupporter, StyleHypebeast, StyleJokester)

	sum := Summarize(s)
	if sum.Footprint != 35 {
		t.Fatalf("footprint = %d, want 35", sum.Footprint)
	}
	if sum.Likes != 20 {
		t.Errorf("likes = %d, want 20", sum.Likes)
	}
	if sum.Rating != RatingPositive {
		t.Errorf("rating = %q, want %q", sum.Rating, RatingPositive)
	}
	if len(sum.Blocked) != 0 {
		t.Errorf("blocked = %v, want none", sum.Blocked)
	}
	if len(sum.Consequences) != Rounds {
		t.Fatalf("got %d consequences, want %d", len(sum.Consequences), Rounds)
	}
	for i, c := range sum.Consequences {
		if c.Platform != PlatformForRound(i) {
			t.Errorf("consequence %d is for %s, want fixed platform order", i, c.Platform.Key)
		}
		if c.Result != ConsequenceFeatured {
			t.Errorf("%s: %q, want %q", c.Platform.Key, c.Result, ConsequenceFeatured)
		}
	}
}

func TestSummarizeHaterSession(t *testing.T) {
	s, _ := play(t, StyleHater, StyleHater, StyleHater, StyleHater, StyleHater)

	sum := Summarize(s)
	if sum.Rating != RatingShadow {
		t.Errorf("rating = %q, want %q", sum.Rating, RatingShadow)
	}
	for _, c := range sum.Consequences {
		if c.Result != ConsequenceNone {
			t.Errorf("%s: %q, want %q", c.Platform.Key, c.Result, ConsequenceNone)
		}
	}
}

func TestSummarizeCheckOrder(t *testing.T) {
	s := NewState()
	s.footprint = 40
	s.ledger = ledger{
		toxicity: map[PlatformKey]int{
			PlatformInstagram: -60,
			PlatformTikTok:    -10,
		},
		blocked: []PlatformKey{PlatformInstagram},
	}

	sum := Summarize(s)
	got := make(map[PlatformKey]string)
	for _, c := range sum.Consequences {
		got[c.Platform.Key] = c.Result
	}

	want := map[PlatformKey]string{
		PlatformInstagram: ConsequenceShadowbanned, // blocked wins over footprint
		PlatformTikTok:    ConsequenceMildBoost,    // toxic, so not featured
		PlatformYouTube:   ConsequenceFeatured,
		PlatformText:      ConsequenceFeatured,
		PlatformDiscord:   ConsequenceFeatured,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("consequences = %v, want %v", got, want)
	}
	if labels := sum.BlockedLabels(); !reflect.DeepEqual(labels, []string{"Instagram"}) {
		t.Errorf("BlockedLabels() = %v", labels)
	}
}

func TestSummarizeMildAndNone(t *testing.T) {
	tests := []struct {
		footprint int
		expected  string
	}{
		{29, ConsequenceMildBoost},
		{10, ConsequenceMildBoost},
		{9, ConsequenceNone},
		{-50, ConsequenceNone},
	}

	for _, tc := range tests {
		s := NewState()
		s.footprint = tc.footprint
		sum := Summarize(s)
		if got := sum.Consequences[0].Result; got != tc.expected {
			t.Errorf("footprint %d: %q, want %q", tc.footprint, got, tc.expected)
		}
	}
}
