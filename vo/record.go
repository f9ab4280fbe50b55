package vo

// NotFound marks a field whose selector matched nothing.
const NotFound = "--- NOT FOUND ---"

// ExtractionRecord is what the selectors found in one listing block.
type ExtractionRecord struct {
	Title      string `yaml:"title"`
	Link       string `yaml:"link"`
	Identifier string `yaml:"identifier"`
	Subtitle   string `yaml:"subtitle"`
}

// Missing lists the names of all fields carrying NotFound
func (r ExtractionRecord) Missing() (fields []string) {
	fields = []string{}
	for _, f := range []struct {
		name  string
		value string
	}{
		{"title", r.Title},
		{"link", r.Link},
		{"identifier", r.Identifier},
		{"subtitle", r.Subtitle},
	} {
		if f.value == NotFound {
			fields = append(fields, f.name)
		}
	}
	return
}

type DiagnosticReport struct {
	TargetURL string
	Selector  string
	// Found number of container matches on the page
	Found    int
	Sample   int
	Records  []ExtractionRecord
	Warnings []string
}
