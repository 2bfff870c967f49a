package internal

import "errors"

var (
	ErrUsage        = errors.New("usage error")
	ErrMissingInput = errors.New("missing input")
	ErrMalformed    = errors.New("malformed descriptor")
	ErrDestination  = errors.New("destination error")
)

// ExitCode maps an error returned by the pipeline to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	case errors.Is(err, ErrMissingInput):
		return 3
	case errors.Is(err, ErrMalformed):
		return 4
	case errors.Is(err, ErrDestination):
		return 5
	}
	return 1
}
