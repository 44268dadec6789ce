package wizard

import (
	"sync"
	"time"
)

// Ticker is the subset of time.Ticker the elapsed counter needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a ticker firing every d.
type TickerFactory func(d time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

func NewRealTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// elapsedTimer runs onTick for every tick until stop is called. stop waits
// for the goroutine to exit and is safe to call more than once.
type elapsedTimer struct {
	quit chan struct{}
	done chan struct{}
	once sync.Once
}

func startElapsedTimer(factory TickerFactory, interval time.Duration, onTick func()) *elapsedTimer {
	t := factory(interval)
	et := &elapsedTimer{
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go func() {
		defer close(et.done)
		defer t.Stop()
		for {
			select {
			case <-et.quit:
				return
			case <-t.C():
				onTick()
			}
		}
	}()
	return et
}

// stop must not be called while holding a lock onTick takes.
func (et *elapsedTimer) stop() {
	if et == nil {
		return
	}
	et.once.Do(func() { close(et.quit) })
	<-et.done
}
