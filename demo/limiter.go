package demo

import "time"

// the demo runs at the NTSC field rate rather than whatever rate the gui
// happens to refresh at
type limiter struct {
	tick *time.Ticker
}

func newLimiter(hz float64) *limiter {
	d := time.Duration(float64(time.Second) / hz)
	return &limiter{
		tick: time.NewTicker(d),
	}
}

func (l *limiter) Wait() {
	<-l.tick.C
}
