package lookup

import (
	"errors"
	"fmt"
)

// Op names the stage of a lookup that failed
type Op string

const (
	OpResolveCity  Op = "resolve city"
	OpFetchWeather Op = "fetch weather"
	OpLocate       Op = "locate device"
)

var (
	// ErrEmptyQuery is returned for a blank city name
	ErrEmptyQuery = errors.New("empty city name")

	// ErrSuperseded is returned by a Session for a lookup that a newer one replaced
	ErrSuperseded = errors.New("superseded by a newer lookup")
)

// OpError records the stage a lookup failed in. Err carries one of the datasource
// error kinds.
type OpError struct {
	Op  Op
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
