package playcall

// Depth is the depth of a pass or of zone coverage
type Depth int

const (
	DepthShort Depth = iota
	DepthMedium
	DepthLong
)

// DepthFromSample buckets a [0,1] sample into a depth
func DepthFromSample(seed float64) Depth {
	switch {
	case seed < 0.33:
		return DepthShort
	case seed < 0.67:
		return DepthMedium
	default:
		return DepthLong
	}
}

func (d Depth) String() string {
	switch d {
	case DepthMedium:
		return "medium"
	case DepthLong:
		return "long"
	default:
		return "short"
	}
}

// OffensivePlay is a play called by the offense
type OffensivePlay int

const (
	InsideRun OffensivePlay = iota
	OutsideRun
	ShortPass
	MediumPass
	LongPass
)

// NewOffensivePlay builds a play from its component decisions
func NewOffensivePlay(isRun, isInside bool, depth Depth) OffensivePlay {
	if isRun {
		if isInside {
			return InsideRun
		}
		return OutsideRun
	}

	switch depth {
	case DepthMedium:
		return MediumPass
	case DepthLong:
		return LongPass
	default:
		return ShortPass
	}
}

// IsRun returns true for run plays
func (p OffensivePlay) IsRun() bool {
	return p == InsideRun || p == OutsideRun
}

// IsInsideRun returns true for inside runs
func (p OffensivePlay) IsInsideRun() bool {
	return p == InsideRun
}

// PassDepth returns the depth of a pass; runs report short
func (p OffensivePlay) PassDepth() Depth {
	switch p {
	case MediumPass:
		return DepthMedium
	case LongPass:
		return DepthLong
	default:
		return DepthShort
	}
}

func (p OffensivePlay) String() string {
	switch p {
	case InsideRun:
		return "an inside run"
	case OutsideRun:
		return "an outside run"
	case ShortPass:
		return "a short pass"
	case MediumPass:
		return "a medium pass"
	case LongPass:
		return "a long pass"
	default:
		return "an unknown play"
	}
}

// DefensivePlay is a play called by the defense
type DefensivePlay int

const (
	LightBlitz DefensivePlay = iota
	AllOutBlitz
	ManCoverage
	ShortZone
	MediumZone
	LongZone
)

// NewDefensivePlay builds a play from its component decisions
func NewDefensivePlay(isBlitz, isAllOut, isZone bool, depth Depth) DefensivePlay {
	if isBlitz {
		if isAllOut {
			return AllOutBlitz
		}
		return LightBlitz
	}
	if !isZone {
		return ManCoverage
	}

	switch depth {
	case DepthMedium:
		return MediumZone
	case DepthLong:
		return LongZone
	default:
		return ShortZone
	}
}

// IsBlitz returns true for either blitz
func (p DefensivePlay) IsBlitz() bool {
	return p == LightBlitz || p == AllOutBlitz
}

// IsAllOutBlitz returns true for the all-out blitz
func (p DefensivePlay) IsAllOutBlitz() bool {
	return p == AllOutBlitz
}

// IsZoneCoverage returns true for zone calls
func (p DefensivePlay) IsZoneCoverage() bool {
	return p == ShortZone || p == MediumZone || p == LongZone
}

// ZoneDepth returns the depth of a zone; other calls report short
func (p DefensivePlay) ZoneDepth() Depth {
	switch p {
	case MediumZone:
		return DepthMedium
	case LongZone:
		return DepthLong
	default:
		return DepthShort
	}
}

func (p DefensivePlay) String() string {
	switch p {
	case LightBlitz:
		return "a light blitz"
	case AllOutBlitz:
		return "an all-out blitz"
	case ManCoverage:
		return "man coverage"
	case ShortZone:
		return "a short zone"
	case MediumZone:
		return "a medium zone"
	case LongZone:
		return "a deep zone"
	default:
		return "an unknown call"
	}
}
