package reports

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// PrintMetrics writes everything g gathers in the prometheus text format
func PrintMetrics(w io.Writer, g prometheus.Gatherer) error {
	printh, _, _ := printers(w)
	printh("metrics")
	families, errGather := g.Gather()
	if errGather != nil {
		return errGather
	}
	for _, family := range families {
		if _, errWrite := expfmt.MetricFamilyToText(w, family); errWrite != nil {
			return errWrite
		}
	}
	return nil
}
