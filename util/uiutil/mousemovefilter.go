package uiutil

import (
	"time"

	"github.com/jmigpin/scrollpanel/util/uiutil/event"
)

// Forwards events from in to out, keeping only the latest mouse move within a frame duration. A kept move is sent before any other event so the order is preserved. Returns when in is closed.
func MouseMoveFilterLoop(in <-chan interface{}, out chan<- interface{}, frameDur time.Duration) {
	var kept interface{}
	var timer *time.Timer
	var timeToSend <-chan time.Time
	var lastSent time.Time

	stopTimer := func() {
		if timer != nil {
			timer.Stop()
			timer = nil
			timeToSend = nil
		}
	}
	sendKept := func() {
		stopTimer()
		if kept == nil {
			return
		}
		lastSent = time.Now()
		out <- kept
		kept = nil
	}

	for {
		select {
		case ev, ok := <-in:
			if !ok {
				sendKept()
				return
			}
			if !isMouseMove(ev) {
				sendKept()
				out <- ev
				continue
			}
			kept = ev
			if timer != nil {
				continue
			}
			if d := frameDur - time.Since(lastSent); d > 0 {
				timer = time.NewTimer(d)
				timeToSend = timer.C
			} else {
				sendKept()
			}
		case <-timeToSend:
			timer = nil
			timeToSend = nil
			sendKept()
		}
	}
}

func isMouseMove(ev interface{}) bool {
	wi, ok := ev.(*event.WindowInput)
	if !ok {
		return false
	}
	_, ok = wi.Event.(*event.MouseMove)
	return ok
}
