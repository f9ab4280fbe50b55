package siteprobe

import (
	"time"

	"github.com/foomo/siteprobe/vo"
)

// EmptySentinel is what admin-ajax answers when there is nothing to load or
// the request was refused.
const EmptySentinel = "0"

// Classify turns a request result into an outcome.
// An absent body and a body equal to EmptySentinel are the same thing, the
// site does not tell "refused" from "no more content" apart and neither do we.
func Classify(resp *vo.Response, err error) vo.Outcome {
	code := 0
	var dur time.Duration
	if resp != nil {
		code = resp.Code
		dur = resp.Duration
	}
	if err != nil {
		return vo.FailedOutcome(describe(err), code, dur)
	}
	if resp == nil || len(resp.Body) == 0 {
		return vo.EmptyOutcome("", code, dur)
	}
	body := string(resp.Body)
	if body == EmptySentinel {
		return vo.EmptyOutcome(body, code, dur)
	}
	return vo.ContentOutcome(body, code, dur)
}
