package discovery

import (
	"context"
	"time"

	"tableflip.dev/horizon/pkg/place"
)

// Drive plays sched against f in real time, calling onReveal for every place
// that becomes visible. It returns nil once the schedule is exhausted, or
// ctx.Err() when ctx is cancelled; cancelling stops every outstanding reveal.
// Drive must not run concurrently with other calls on f.
func Drive(ctx context.Context, f *Feed, sched Schedule, onReveal func(place.Place)) error {
	start := time.Now()
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for _, r := range sched.Pending {
		wait := time.Until(start.Add(r.Delay))
		if wait > 0 {
			timer.Reset(wait)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if p, ok := f.Apply(r); ok && onReveal != nil {
			onReveal(p)
		}
	}
	return nil
}
