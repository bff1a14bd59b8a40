package executor

import (
	"math/rand"

	"github.com/mohitkumar/playback/model"
)

// TargetPoint picks where a mouse action lands. With a full region the point
// is drawn from the region shrunk by random_range on each side; with only
// x1,y1 the point is exact.
func TargetPoint(action model.Action, rnd *rand.Rand) (int, int, bool) {
	if action.X2 != nil && action.Y2 != nil {
		if action.X1 == nil || action.Y1 == nil {
			return -1, -1, false
		}
		x1, x2 := shrink(*action.X1, *action.X2, action.RandomRange)
		y1, y2 := shrink(*action.Y1, *action.Y2, action.RandomRange)
		return between(rnd, x1, x2), between(rnd, y1, y2), true
	}
	if action.X1 != nil && action.Y1 != nil {
		return *action.X1, *action.Y1, true
	}
	return -1, -1, false
}

func shrink(lo int, hi int, randomRange int) (int, int) {
	if randomRange == 0 {
		return lo, hi
	}
	span := hi - lo
	switch {
	case span > randomRange*2:
		return lo + randomRange, hi - randomRange
	case span < randomRange && span > 4:
		return lo + 1, hi - 1
	}
	return lo, hi
}

func between(rnd *rand.Rand, lo int, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rnd.Intn(hi-lo)
}
