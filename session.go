package notecalc

import (
	"github.com/notecalc/notecalc/currency"
	"github.com/notecalc/notecalc/evaluator"
)

// Session bundles the configuration a live editor host would otherwise
// have to pass into every Calculate call: Settings and an optional
// loaded Rates snapshot. It does not carry variable bindings between
// Eval calls — each call re-evaluates the whole document it's given, top
// to bottom, against a fresh Environment (spec.md §5: a document's
// environment is never shared across documents, and an editor always has
// the complete current text of the one document it's re-running).
type Session struct {
	settings Settings
	rates    *currency.Rates
}

// NewSession creates a session configured with settings and an optional
// exchange-rate snapshot (nil is fine; currency conversion then fails
// with ExchangeRateUnavailable rather than panicking).
func NewSession(settings Settings, rates *currency.Rates) *Session {
	return &Session{settings: settings.Normalize(), rates: rates}
}

// Eval runs source through Calculate using this session's configuration.
func (s *Session) Eval(source string) *DocumentResult {
	env := evaluator.NewEnvironment(s.rates, s.settings.AngleUnit)
	return calculate(source, s.settings, env)
}

// SetSettings replaces the session's Settings for subsequent Eval calls.
func (s *Session) SetSettings(settings Settings) {
	s.settings = settings.Normalize()
}

// SetRates replaces the session's exchange-rate snapshot for subsequent
// Eval calls.
func (s *Session) SetRates(rates *currency.Rates) {
	s.rates = rates
}
