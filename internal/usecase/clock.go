package usecase

import "time"

type Clock interface {
	Now() time.Time
}

// ClockFunc mengubah fungsi biasa menjadi Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock membaca jam sistem pada zona waktu kantor.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}
