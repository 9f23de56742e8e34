package admission

import (
	"testing"
	"time"

	"github.com/alertops/alert-mgmt/pkg/types"
	"github.com/matryer/is"
)

func TestExactlyThresholdAlertsAreAdmitted(t *testing.T) {
	is := is.New(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	p := NewPolicy(DefaultConfig())

	for i := 0; i < 3; i++ {
		d := p.Evaluate("host-1", now.Add(time.Duration(i)*time.Second))
		is.Equal(d.Outcome, types.OutcomeStored)
	}
}

func TestThresholdPlusOneTripsSuppression(t *testing.T) {
	is := is.New(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	p := NewPolicy(DefaultConfig())

	for i := 0; i < 3; i++ {
		p.Evaluate("host-1", now.Add(time.Duration(i)*time.Second))
	}

	d := p.Evaluate("host-1", now.Add(3*time.Second))
	is.Equal(d.Outcome, types.OutcomeSuppressed)
	is.Equal(d.Reason, ReasonThresholdReached)
}

func TestSuppressedHostStaysSuppressedForSuppressionTime(t *testing.T) {
	is := is.New(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	p := NewPolicy(DefaultConfig())

	for i := 0; i < 4; i++ {
		p.Evaluate("host-1", now.Add(time.Duration(i)*time.Second))
	}

	d := p.Evaluate("host-1", now.Add(30*time.Second))
	is.Equal(d.Outcome, types.OutcomeSuppressed)
	is.Equal(d.Reason, ReasonHostSuppressed)

	// suppression was set at +3s, so it has expired at +3s+61s
	d = p.Evaluate("host-1", now.Add(65*time.Second))
	is.Equal(d.Outcome, types.OutcomeStored)
}

func TestSixDistinctHostsWithinOneSecondTriggerStorm(t *testing.T) {
	is := is.New(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	p := NewPolicy(DefaultConfig())

	hosts := []string{"h1", "h2", "h3", "h4", "h5"}
	for i, h := range hosts {
		d := p.Evaluate(h, now.Add(time.Duration(i)*time.Millisecond))
		is.Equal(d.Outcome, types.OutcomeStored)
	}

	d := p.Evaluate("h6", now.Add(time.Second))
	is.Equal(d.Outcome, types.OutcomeStorm)
	is.Equal(d.Reason, ReasonRateLimitExceeded)
}

func TestSuppressionDominatesRateLimiting(t *testing.T) {
	is := is.New(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	p := NewPolicy(DefaultConfig())

	// push the noisy host into suppression
	for i := 0; i < 4; i++ {
		p.Evaluate("noisy", now.Add(time.Duration(i)*time.Second))
	}

	// fill the global window with other hosts
	for _, h := range []string{"h1", "h2"} {
		p.Evaluate(h, now.Add(5*time.Second))
	}

	// the suppressed host never reaches the rate limiter
	d := p.Evaluate("noisy", now.Add(6*time.Second))
	is.Equal(d.Outcome, types.OutcomeSuppressed)
	is.Equal(d.Reason, ReasonHostSuppressed)
}

func TestStormAlertsAreNotCountedAsAdmitted(t *testing.T) {
	is := is.New(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	config := DefaultConfig()
	config.RateLimitCount = 2
	p := NewPolicy(config)

	p.Evaluate("h1", now)
	p.Evaluate("h2", now)

	is.Equal(p.Evaluate("h3", now.Add(time.Second)).Outcome, types.OutcomeStorm)

	// once the window has passed, admissions resume
	d := p.Evaluate("h4", now.Add(61*time.Second))
	is.Equal(d.Outcome, types.OutcomeStored)
}

func TestAlertsOutsideSuppressionWindowDoNotAccumulate(t *testing.T) {
	is := is.New(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	config := DefaultConfig()
	config.RateLimitCount = 100
	p := NewPolicy(config)

	// one alert per window never trips the threshold
	for i := 0; i < 10; i++ {
		d := p.Evaluate("host-1", now.Add(time.Duration(i)*2*time.Minute))
		is.Equal(d.Outcome, types.OutcomeStored)
	}
}
