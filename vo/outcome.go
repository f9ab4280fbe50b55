package vo

import "time"

// OutcomeKind is the closed set of request classifications
type OutcomeKind int

const (
	OutcomeFailedTransport OutcomeKind = iota
	OutcomeEmpty
	OutcomeContent
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeEmpty:
		return "succeeded-empty"
	case OutcomeContent:
		return "succeeded-with-content"
	default:
		return "failed-transport"
	}
}

// Outcome of one request, only build it with the constructors below
type Outcome struct {
	Kind     OutcomeKind
	Body     string
	Error    string
	Code     int
	Duration time.Duration
}

func ContentOutcome(body string, code int, dur time.Duration) Outcome {
	return Outcome{Kind: OutcomeContent, Body: body, Code: code, Duration: dur}
}

func EmptyOutcome(body string, code int, dur time.Duration) Outcome {
	return Outcome{Kind: OutcomeEmpty, Body: body, Code: code, Duration: dur}
}

func FailedOutcome(errorDescription string, code int, dur time.Duration) Outcome {
	return Outcome{Kind: OutcomeFailedTransport, Error: errorDescription, Code: code, Duration: dur}
}
