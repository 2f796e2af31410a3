package mandala

import (
	"context"
	"log/slog"
	"time"
)

// statsLogInterval is the number of draws between debug stats records.
const statsLogInterval = 300

// FrameStats holds running counters for a session.
type FrameStats struct {
	Ticks         uint64
	Draws         uint64
	FallbackDraws uint64
	LastAlgorithm string
	LastDrawTime  time.Duration
	TotalDrawTime time.Duration
}

// AverageDrawTime returns the mean plugin draw duration.
func (st FrameStats) AverageDrawTime() time.Duration {
	if st.Draws == 0 {
		return 0
	}
	return st.TotalDrawTime / time.Duration(st.Draws)
}

func (st *FrameStats) record(e Entry, fallback bool, d time.Duration) {
	st.Draws++
	if fallback {
		st.FallbackDraws++
	}
	st.LastAlgorithm = e.ID
	st.LastDrawTime = d
	st.TotalDrawTime += d

	if st.Draws%statsLogInterval != 0 {
		return
	}
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("frame stats",
		"ticks", st.Ticks,
		"draws", st.Draws,
		"fallback", st.FallbackDraws,
		"algorithm", st.LastAlgorithm,
		"last", st.LastDrawTime,
		"avg", st.AverageDrawTime())
}

// Stats returns a copy of the session's frame counters.
func (s *Session) Stats() FrameStats {
	return s.stats
}
