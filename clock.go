package typewriter

import "time"

// Clock abstracts the blocking wait between characters so tests can
// observe pauses without waiting for them.
type Clock interface {
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
