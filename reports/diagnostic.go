package reports

import (
	"fmt"
	"io"

	"github.com/foomo/siteprobe"
	"github.com/foomo/siteprobe/vo"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// PrintDiagnostic prints the records of a selector diagnostic, err is what
// RunDiagnostic returned
func PrintDiagnostic(w io.Writer, r vo.DiagnosticReport, err error) {
	printh, println, printsep := printers(w)
	printh("selector diagnostic report", r.TargetURL)
	for _, warning := range r.Warnings {
		println("warning:", warning)
	}
	switch {
	case failure.Is(err, siteprobe.ErrCriticalSelectorMiss):
		println("CRITICAL ERROR: the main selector '" + r.Selector + "' found 0 items.")
		println("   You need to visit the website and find the new correct container class.")
		printsep()
		return
	case err != nil:
		errorMessage := err.Error()
		if msg := failure.MessageOf(err); msg != "" {
			errorMessage = msg.String()
		}
		println("an error occurred:", errorMessage)
		printsep()
		return
	}
	println(fmt.Sprintf("found %d items using '%s', testing selectors on the first %d", r.Found, r.Selector, r.Sample))
	println()
	yamlBytes, errYaml := yaml.Marshal(r.Records)
	if errYaml != nil {
		println("could not print", r.Records, errYaml)
	} else {
		println(string(yamlBytes))
	}
	printh("missing fields")
	for _, field := range []string{"title", "link", "identifier", "subtitle"} {
		missing := lo.CountBy(r.Records, func(record vo.ExtractionRecord) bool {
			return lo.Contains(record.Missing(), field)
		})
		println(fmt.Sprintf("	%-12s %d/%d", field, missing, len(r.Records)))
	}
	printsep()
}
