package engine

// ledger tracks per-platform toxicity and the platforms that blocked the
// player. Toxicity only ever moves down and blocks are never lifted.
type ledger struct {
	toxicity map[PlatformKey]int
	blocked  []PlatformKey // in the order platforms blocked
}

func (l ledger) clone() ledger {
	c := ledger{
		toxicity: make(map[PlatformKey]int, len(l.toxicity)),
		blocked:  make([]PlatformKey, len(l.blocked)),
	}
	for k, v := range l.toxicity {
		c.toxicity[k] = v
	}
	copy(c.blocked, l.blocked)
	return c
}

func (l ledger) isBlocked(p PlatformKey) bool {
	for _, b := range l.blocked {
		if b == p {
			return true
		}
	}
	return false
}

// record books a footprint change made on a platform. Only negative changes
// count toward toxicity. Returns true when this record blocked the platform.
func (l *ledger) record(p PlatformKey, footprintDelta int) bool {
	l.toxicity[p] += min(0, footprintDelta)

	if l.isBlocked(p) {
		return false
	}
	if l.toxicity[p] <= BlockThreshold {
		l.blocked = append(l.blocked, p)
		return true
	}
	return false
}
