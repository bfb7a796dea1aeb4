package board

const lineRadius = 5
const lineWindow = lineRadius*2 + 1

const (
	tokEmpty byte = '.'
	tokSelf  byte = 'X'
	tokOppo  byte = 'O' // opponent stone, or off-board
)

var lineDirs = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

type lineThreats struct {
	five     bool
	open4    bool
	closed4  bool
	open3    bool
	open2    bool
	overline bool
}

func (b *Board) buildWindow(p Pos, dx, dy int, self Stone) [lineWindow]byte {
	var win [lineWindow]byte
	oppo := stoneWhite
	if self == stoneWhite {
		oppo = stoneBlack
	}
	for i := -lineRadius; i <= lineRadius; i++ {
		idx := i + lineRadius
		if i == 0 {
			win[idx] = tokSelf
			continue
		}
		x, y := int(p.X)+i*dx, int(p.Y)+i*dy
		if !b.inBoundsXY(x, y) {
			win[idx] = tokOppo
			continue
		}
		switch b.stoneAt(x, y) {
		case stoneEmpty:
			win[idx] = tokEmpty
		case oppo:
			win[idx] = tokOppo
		default:
			win[idx] = tokSelf
		}
	}
	return win
}

// windowHasPattern reports whether pattern occurs in win at some offset
// whose matched span covers the center slot (lineRadius): a match that
// doesn't involve the hypothetical stone isn't caused by this move.
func windowHasPattern(win [lineWindow]byte, pattern string) bool {
	n := len(pattern)
	for start := 0; start+n <= lineWindow; start++ {
		if start > lineRadius || start+n-1 < lineRadius {
			continue
		}
		if matches(win, start, pattern) {
			return true
		}
	}
	return false
}

func matches(win [lineWindow]byte, start int, pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		if win[start+i] != pattern[i] {
			return false
		}
	}
	return true
}

var (
	fivePatterns     = []string{"XXXXX"}
	overlinePatterns = []string{"XXXXXX"}
	open4Patterns    = []string{".XXXX."}
	closed4Patterns  = []string{"OXXXX.", ".XXXXO"}
	open3Patterns    = []string{".XXX.", ".XX.X.", ".X.XX."}
	open2Patterns    = []string{".XX."}
)

func classifyLine(win [lineWindow]byte) lineThreats {
	var t lineThreats
	for _, pat := range overlinePatterns {
		if windowHasPattern(win, pat) {
			t.overline = true
		}
	}
	for _, pat := range fivePatterns {
		if windowHasPattern(win, pat) {
			t.five = true
		}
	}
	if t.five {
		return t
	}
	for _, pat := range open4Patterns {
		if windowHasPattern(win, pat) {
			t.open4 = true
		}
	}
	for _, pat := range closed4Patterns {
		if windowHasPattern(win, pat) {
			t.closed4 = true
		}
	}
	if t.open4 || t.closed4 {
		return t
	}
	for _, pat := range open3Patterns {
		if windowHasPattern(win, pat) {
			t.open3 = true
		}
	}
	if t.open3 {
		return t
	}
	for _, pat := range open2Patterns {
		if windowHasPattern(win, pat) {
			t.open2 = true
		}
	}
	return t
}
