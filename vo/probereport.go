package vo

type Stage string

const (
	StageBaseline Stage = "baseline"
	StageHarvest  Stage = "harvest"
	StageValidate Stage = "validate"
)

// Nonce short lived token scraped from the homepage
type Nonce string

type StageResult struct {
	Stage   Stage
	Outcome Outcome
	Verdict string
	// Blocks listing blocks found in a content body
	Blocks int
}

type HarvestResult struct {
	Nonce Nonce
	Found bool
	// TransportFailed the homepage request itself failed, Error is the transport error
	TransportFailed bool
	Error           string
}

type Conclusion int

const (
	ConclusionConfirmed Conclusion = iota
	ConclusionContradicted
	ConclusionNonceNotRequired
	ConclusionNonceNotFound
	ConclusionTransportFailed
	ConclusionHomepageFailed
)

func (c Conclusion) String() string {
	switch c {
	case ConclusionConfirmed:
		return "authorization hypothesis confirmed"
	case ConclusionContradicted:
		return "hypothesis contradicted; nonce insufficient"
	case ConclusionNonceNotRequired:
		return "hypothesis contradicted; endpoint serves content without nonce"
	case ConclusionNonceNotFound:
		return "inconclusive; nonce not found on homepage"
	case ConclusionTransportFailed:
		return "inconclusive; authorized request failed"
	case ConclusionHomepageFailed:
		return "inconclusive; homepage request failed"
	}
	return "unknown"
}

type ProbeReport struct {
	Endpoint       string
	RobotsWarnings []string
	Baseline       StageResult
	Harvest        HarvestResult
	// Validate is nil when the harvest failed
	Validate   *StageResult
	Conclusion Conclusion
}
