package adapter

import (
	"context"
	"time"
)

// UnitOfWork runs a function atomically. Repositories called with the
// context handed to fn take part in the same storage transaction; if fn
// returns an error every write made through that context is rolled back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock read in the business time zone. Calendar
// dates derived from it follow that zone. A nil Location means UTC.
type SystemClock struct {
	Location *time.Location
}

// Now returns the current time in the clock's location.
func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(c.Location)
}
