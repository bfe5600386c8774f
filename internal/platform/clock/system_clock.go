package clock

import "time"

// SystemClock is the production time source. It always reports UTC so stored
// timestamps compare cleanly across backends.
type SystemClock struct{}

func NewSystemClock() SystemClock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now().UTC() }
