package streak

// Tier buckets a streak length for display.
type Tier int

const (
	TierNone Tier = iota
	TierEmber
	TierBlaze
	TierInferno
	TierEclipse
)

// TierFor classifies a streak. Streaks shorter than two days have no tier.
func TierFor(n int) Tier {
	switch {
	case n >= 180:
		return TierEclipse
	case n >= 30:
		return TierInferno
	case n >= 7:
		return TierBlaze
	case n >= 2:
		return TierEmber
	default:
		return TierNone
	}
}

func (t Tier) String() string {
	switch t {
	case TierEmber:
		return "ember"
	case TierBlaze:
		return "blaze"
	case TierInferno:
		return "inferno"
	case TierEclipse:
		return "eclipse"
	default:
		return "none"
	}
}

// Color returns the hex display color of the tier, empty for TierNone.
func (t Tier) Color() string {
	switch t {
	case TierEmber:
		return "#F97316"
	case TierBlaze:
		return "#22D3EE"
	case TierInferno:
		return "#3B82F6"
	case TierEclipse:
		return "#A78BFA"
	default:
		return ""
	}
}
