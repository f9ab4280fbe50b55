package siteprobe

import (
	"context"

	"github.com/foomo/siteprobe/config"
	"github.com/foomo/siteprobe/vo"
	"github.com/morikuni/failure/v2"
	"github.com/rs/zerolog"
)

// Prober checks whether the load more endpoint wants a nonce.
// Baseline, harvest and validate run once each, in that order, on one session.
type Prober struct {
	conf    *config.Config
	client  *Client
	metrics *Metrics
	logger  zerolog.Logger
}

func NewProber(conf *config.Config, client *Client, metrics *Metrics, logger zerolog.Logger) *Prober {
	return &Prober{
		conf:    conf,
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
}

// Run all stages, every failure ends up in the report
func (p *Prober) Run(ctx context.Context) vo.ProbeReport {
	r := vo.ProbeReport{
		Endpoint:       p.conf.Endpoint(),
		RobotsWarnings: []string{},
	}
	if !p.conf.IgnoreRobots {
		r.RobotsWarnings = checkRobots(ctx, p.client, p.conf.BaseURL, "/", p.conf.AjaxPath)
	}

	r.Baseline = p.baseline(ctx)

	r.Harvest = p.harvest(ctx)
	if !r.Harvest.Found {
		r.Conclusion = conclude(r.Baseline, r.Harvest, nil)
		return r
	}

	validate := p.validate(ctx, r.Harvest.Nonce)
	r.Validate = &validate
	r.Conclusion = conclude(r.Baseline, r.Harvest, r.Validate)
	return r
}

func (p *Prober) baseline(ctx context.Context) vo.StageResult {
	result := p.post(ctx, vo.StageBaseline, p.conf.Payload)
	switch result.Outcome.Kind {
	case vo.OutcomeEmpty:
		result.Verdict = "rejected without nonce (expected)"
	case vo.OutcomeContent:
		result.Verdict = "ANOMALY: accepted without nonce"
	default:
		result.Verdict = result.Outcome.Error
	}
	return result
}

func (p *Prober) harvest(ctx context.Context) vo.HarvestResult {
	doc, resp, errDoc := p.client.GetDocument(ctx, p.conf.Homepage())
	if resp != nil {
		p.metrics.observeRequest(metricsLabelHomepage, resp.Duration)
	}
	if errDoc != nil {
		p.logger.Debug().Err(errDoc).Msg("could not load homepage")
		return vo.HarvestResult{
			TransportFailed: !failure.Is(errDoc, ErrInvalidDocument),
			Error:           describe(errDoc),
		}
	}
	nonce, errHarvest := HarvestNonce(doc)
	if errHarvest != nil {
		p.logger.Debug().Err(errHarvest).Msg("no nonce")
		return vo.HarvestResult{Error: describe(errHarvest)}
	}
	p.logger.Debug().Str("nonce", string(nonce)).Msg("harvested nonce")
	return vo.HarvestResult{Nonce: nonce, Found: true}
}

func (p *Prober) validate(ctx context.Context, nonce vo.Nonce) vo.StageResult {
	result := p.post(ctx, vo.StageValidate, p.conf.Payload.With("nonce", string(nonce)))
	switch result.Outcome.Kind {
	case vo.OutcomeContent:
		result.Verdict = "nonce accepted, content returned"
	case vo.OutcomeEmpty:
		result.Verdict = "rejected even with nonce, something else is missing"
	default:
		result.Verdict = result.Outcome.Error
	}
	return result
}

func (p *Prober) post(ctx context.Context, stage vo.Stage, payload vo.Payload) vo.StageResult {
	resp, errPost := p.client.PostForm(ctx, p.conf.Endpoint(), payload)
	result := vo.StageResult{
		Stage:   stage,
		Outcome: Classify(resp, errPost),
	}
	p.metrics.observeOutcome(stage, result.Outcome)
	if result.Outcome.Kind == vo.OutcomeContent {
		blocks, errCount := countBlocks(result.Outcome.Body)
		if errCount != nil {
			p.logger.Warn().Err(errCount).Str("stage", string(stage)).Msg("could not parse content")
		}
		result.Blocks = blocks
	}
	p.logger.Debug().
		Str("stage", string(stage)).
		Str("outcome", result.Outcome.Kind.String()).
		Int("code", result.Outcome.Code).
		Msg("stage done")
	return result
}

func conclude(baseline vo.StageResult, harvest vo.HarvestResult, validate *vo.StageResult) vo.Conclusion {
	if harvest.TransportFailed {
		return vo.ConclusionHomepageFailed
	}
	if !harvest.Found || validate == nil {
		return vo.ConclusionNonceNotFound
	}
	switch validate.Outcome.Kind {
	case vo.OutcomeFailedTransport:
		return vo.ConclusionTransportFailed
	case vo.OutcomeEmpty:
		return vo.ConclusionContradicted
	}
	if baseline.Outcome.Kind == vo.OutcomeContent {
		return vo.ConclusionNonceNotRequired
	}
	return vo.ConclusionConfirmed
}
