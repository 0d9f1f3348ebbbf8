package engine

// Rating is the final reputation verdict of a session.
type Rating string

const (
	RatingPositive Rating = "Positive Influence"
	RatingShadow   Rating = "Shadow Reputation"
	RatingMixed    Rating = "Mixed"
)

// Consequence texts shown per platform on the results screen.
const (
	ConsequenceShadowbanned = "Shadowbanned / Comments Hidden"
	ConsequenceFeatured     = "Featured / Pinned Comment"
	ConsequenceMildBoost    = "Mild Boost from Reputation"
	ConsequenceNone         = "No special actions"
)

// Footprint thresholds used by the summary.
const (
	positiveRatingAt = 30
	shadowRatingAt   = -30
	mildBoostAt      = 10
)

// Consequence is the outcome on one platform.
type Consequence struct {
	Platform Platform
	Result   string
}

// Summary is the end-of-session report.
type Summary struct {
	Likes        int
	Footprint    int
	Blocked      []Platform // in blocking order
	Consequences []Consequence
	Rating       Rating
}

// RateFootprint classifies a final footprint.
func RateFootprint(footprint int) Rating {
	switch {
	case footprint >= positiveRatingAt:
		return RatingPositive
	case footprint <= shadowRatingAt:
		return RatingShadow
	default:
		return RatingMixed
	}
}

// consequenceFor checks, in order: blocked, featured, mild boost.
func consequenceFor(s State, p PlatformKey) string {
	switch {
	case s.IsBlocked(p):
		return ConsequenceShadowbanned
	case s.footprint >= positiveRatingAt && s.Toxicity(p) == 0:
		return ConsequenceFeatured
	case s.footprint >= mildBoostAt:
		return ConsequenceMildBoost
	default:
		return ConsequenceNone
	}
}

// Summarize builds the results report. It is meant for finished sessions but
// is defined for any state, which lets a UI preview the outcome mid-session.
func Summarize(s State) Summary {
	sum := Summary{
		Likes:     s.likes,
		Footprint: s.footprint,
		Rating:    RateFootprint(s.footprint),
	}

	for _, key := range s.ledger.blocked {
		if p, ok := LookupPlatform(key); ok {
			sum.Blocked = append(sum.Blocked, p)
		}
	}

	sum.Consequences = make([]Consequence, 0, len(platforms))
	for _, p := range platforms {
		sum.Consequences = append(sum.Consequences, Consequence{
			Platform: p,
			Result:   consequenceFor(s, p.Key),
		})
	}
	return sum
}

// BlockedLabels returns the labels of blocked platforms.
func (s Summary) BlockedLabels() []string {
	labels := make([]string, len(s.Blocked))
	for i, p := range s.Blocked {
		labels[i] = p.Label
	}
	return labels
}
