package domain

import "time"

// CurrentTimeProvider provides the current time.
type CurrentTimeProvider interface {
	Now() time.Time
}

// TimeProviderFunc adapts a function to CurrentTimeProvider.
type TimeProviderFunc func() time.Time

// Now returns the time reported by the function.
func (f TimeProviderFunc) Now() time.Time {
	return f()
}

// FixedTime returns a provider that always reports t.
func FixedTime(t time.Time) CurrentTimeProvider {
	return TimeProviderFunc(func() time.Time { return t })
}
