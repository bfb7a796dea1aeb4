package pattern4

// Pattern4 is the per-cell, per-color threat classification, ordered
// weakest to strongest. FORBID sits below E_BLOCK4 deliberately: a
// forbidden point is a legality marker, not a strength marker, so callers
// that need both conditions test them with an explicit OR rather than
// relying on ordering (see movepick's TT validity checks).
type Pattern4 uint8

const (
	NONE Pattern4 = iota
	// FORBID marks a Renju-illegal point for Black; never applies to White.
	FORBID
	J_FLEX2
	I_FLEX2_PLUS
	// H_FLEX3 is the threshold main-history scoring uses to pick attack
	// vs. quiet buckets.
	H_FLEX3
	G_FLEX3_PLUS
	F_FLEX3_PLUS_PLUS
	E_BLOCK4
	D_BLOCK4_PLUS
	C_BLOCK4_FLEX3
	B_FLEX4
	A_FIVE
)

func (p Pattern4) String() string {
	switch p {
	case NONE:
		return "NONE"
	case FORBID:
		return "FORBID"
	case J_FLEX2:
		return "J_FLEX2"
	case I_FLEX2_PLUS:
		return "I_FLEX2_PLUS"
	case H_FLEX3:
		return "H_FLEX3"
	case G_FLEX3_PLUS:
		return "G_FLEX3_PLUS"
	case F_FLEX3_PLUS_PLUS:
		return "F_FLEX3_PLUS_PLUS"
	case E_BLOCK4:
		return "E_BLOCK4"
	case D_BLOCK4_PLUS:
		return "D_BLOCK4_PLUS"
	case C_BLOCK4_FLEX3:
		return "C_BLOCK4_FLEX3"
	case B_FLEX4:
		return "B_FLEX4"
	case A_FIVE:
		return "A_FIVE"
	default:
		return "UNKNOWN"
	}
}

type Count [A_FIVE + 1]int

func (c *Count) Add(p Pattern4) { c[p]++ }

func (c *Count) Remove(p Pattern4) {
	if c[p] > 0 {
		c[p]--
	}
}

func (c Count) Get(p Pattern4) int { return c[p] }
