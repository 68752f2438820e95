package llm

import "errors"

var (
	// ErrUnavailable indicates the model service could not be reached.
	ErrUnavailable = errors.New("llm service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrUpstream indicates the service answered with a non-200 status.
	ErrUpstream = errors.New("llm service returned an error")

	// ErrInvalidOutput indicates the response could not be parsed into the
	// expected shape.
	ErrInvalidOutput = errors.New("invalid llm output format")
)

// maxSummary bounds Summary for errors outside the sentinel set.
const maxSummary = 120

// Summary returns a short description of err fit for showing to a user. The
// sentinel errors are reported by their own text; anything else is cut down
// to a single short line.
func Summary(err error) string {
	for _, known := range []error{ErrTimeout, ErrUnavailable, ErrUpstream, ErrInvalidOutput} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	if err == nil {
		return ""
	}
	return truncate(err.Error(), maxSummary)
}
