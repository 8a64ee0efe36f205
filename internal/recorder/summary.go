package recorder

import (
	"time"

	"github.com/SeamusWaldron/piececube/internal/storage"
)

// PauseThreshold is the gap between moves counted as a pause.
const PauseThreshold = 2 * time.Second

// Summary holds timing statistics for a recorded session.
type Summary struct {
	Moves        int
	Duration     time.Duration
	TPS          float64 // turns per second
	LongestPause time.Duration
	Pauses       int // gaps of at least PauseThreshold
}

// Summarize computes statistics for moves recorded between start and end.
// Moves must be in recording order.
func Summarize(start, end time.Time, moves []storage.MoveRecord) Summary {
	sum := Summary{
		Moves:    len(moves),
		Duration: end.Sub(start),
	}
	if sum.Duration > 0 {
		sum.TPS = float64(sum.Moves) / sum.Duration.Seconds()
	}

	for i := 1; i < len(moves); i++ {
		gap := time.Duration(moves[i].TsMs-moves[i-1].TsMs) * time.Millisecond
		if gap > sum.LongestPause {
			sum.LongestPause = gap
		}
		if gap >= PauseThreshold {
			sum.Pauses++
		}
	}
	return sum
}
