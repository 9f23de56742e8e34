package admission

import (
	"time"

	"github.com/alertops/alert-mgmt/pkg/types"
)

const (
	ReasonHostSuppressed    string = "Host suppressed"
	ReasonThresholdReached  string = "Suppression threshold reached"
	ReasonRateLimitExceeded string = "Rate limit exceeded"
)

// rate limiting is host independent, so all events share one key
const globalKey string = "*"

type Decision struct {
	Outcome string `json:"status"`
	Reason  string `json:"reason,omitempty"`
}

// Policy classifies incoming alerts as admitted, suppressed or part of
// an alert storm. The order of checks matters: an actively suppressed
// host never reaches the rate limiter, and the alert that trips the
// suppression threshold is itself suppressed.
//
// Policy is not safe for concurrent use. The admission service holds a
// lock across Evaluate and the store write that follows it.
type Policy struct {
	config *Config

	hostEvents   *Counter
	globalEvents *Counter

	suppressedUntil map[string]time.Time
}

func NewPolicy(config *Config) *Policy {
	return &Policy{
		config:          config,
		hostEvents:      NewCounter(config.SuppressionWindow()),
		globalEvents:    NewCounter(config.RateLimitWindow()),
		suppressedUntil: make(map[string]time.Time),
	}
}

func (p *Policy) Evaluate(host string, now time.Time) Decision {
	p.pruneSuppressions(now)

	if until, ok := p.suppressedUntil[host]; ok && !now.After(until) {
		return Decision{Outcome: types.OutcomeSuppressed, Reason: ReasonHostSuppressed}
	}

	p.hostEvents.Record(host, now)

	// strictly greater than: exactly threshold alerts in the window are
	// still admitted, the next one trips suppression
	if p.hostEvents.Count(host, now) > p.config.SuppressionThreshold {
		p.suppressedUntil[host] = now.Add(p.config.SuppressionTime())
		return Decision{Outcome: types.OutcomeSuppressed, Reason: ReasonThresholdReached}
	}

	if p.globalEvents.Count(globalKey, now) >= p.config.RateLimitCount {
		return Decision{Outcome: types.OutcomeStorm, Reason: ReasonRateLimitExceeded}
	}

	p.globalEvents.Record(globalKey, now)

	return Decision{Outcome: types.OutcomeStored}
}

func (p *Policy) pruneSuppressions(now time.Time) {
	for host, until := range p.suppressedUntil {
		if now.After(until) {
			delete(p.suppressedUntil, host)
		}
	}
}
