package mytime

import (
	"context"
	"time"
)

var (
	ExampleTime time.Time
)

func init() {
	ExampleTime, _ = time.Parse("2006-01-02T15:04:05Z", "2023-02-27T23:58:59Z")
}

//go:generate mockgen -source=api.go -package mytime -destination nower_mock.go Nower Sleeper
type Nower interface {
	Now() time.Time
}

// Sleeper waits for the given duration or until c is done, whichever
// comes first.
type Sleeper interface {
	Sleep(c context.Context, d time.Duration) error
}

type RealNower struct{}

func (n RealNower) Now() time.Time {
	return time.Now()
}

type RealSleeper struct{}

func (s RealSleeper) Sleep(c context.Context, d time.Duration) error {
	if d <= 0 {
		return c.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-c.Done():
		return c.Err()
	case <-timer.C:
		return nil
	}
}
