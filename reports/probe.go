package reports

import (
	"fmt"
	"io"

	"github.com/foomo/siteprobe/vo"
)

const bodyPreviewLength = 120

// PrintProbe tells the story of a nonce probe run
func PrintProbe(w io.Writer, r vo.ProbeReport) {
	printh, println, printsep := printers(w)
	printh("nonce validation probe", r.Endpoint)
	for _, warning := range r.RobotsWarnings {
		println("warning:", warning)
	}

	println("[1/3] baseline request without nonce")
	printStage(println, r.Baseline)

	println("[2/3] harvest nonce from homepage")
	switch {
	case r.Harvest.Found:
		println("	nonce:", r.Harvest.Nonce)
	case r.Harvest.TransportFailed:
		println("	homepage request failed:", r.Harvest.Error)
	default:
		println("	nonce not found:", r.Harvest.Error)
	}

	println("[3/3] request with nonce")
	if r.Validate == nil {
		println("	skipped, there is no nonce")
	} else {
		printStage(println, *r.Validate)
	}
	printsep()
	println("conclusion:", r.Conclusion)
	printsep()
}

func printStage(println func(a ...interface{}), s vo.StageResult) {
	o := s.Outcome
	switch o.Kind {
	case vo.OutcomeFailedTransport:
		println("	outcome:", o.Kind, "after", o.Duration)
		println("	error:", o.Error)
	default:
		println("	outcome:", o.Kind, "code:", o.Code, "after", o.Duration)
		println("	body:", fmt.Sprintf("%q", preview(o.Body, bodyPreviewLength)))
		if o.Kind == vo.OutcomeContent {
			println("	listing blocks in body:", s.Blocks)
		}
	}
	println("	->", s.Verdict)
}
