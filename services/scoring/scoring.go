// Package scoring turns application fields and verification signals into a
// heuristic credit score. The rubric is additive over a fixed base with the
// result clamped to [MinScore, MaxScore]; individual weights are business
// placeholders, not calibrated risk data.
package scoring

import (
	"fmt"

	"github.com/netvendor/creditintake/services/verification"
)

const (
	// BaseScore is the starting point before any factor applies.
	BaseScore = 600
	// MinScore and MaxScore bound every result.
	MinScore = 150
	MaxScore = 850
)

// Breakdown factor names. Stable keys, not an ordered list.
const (
	FactorBusiness    = "business_verification"
	FactorDomain      = "domain_verification"
	FactorPlaceholder = "placeholder_content"
	FactorComplete    = "data_completeness"
	FactorDuns        = "duns_number"
	FactorTradeRefs   = "trade_references"
	FactorAddress     = "address_consistency"
)

// Input carries the application fields the rubric reads. Absent optionals are
// empty strings and never cause a failure.
type Input struct {
	LegalName       string
	ContactEmail    string
	DunsNumber      string
	TradeReferences [3]string
	BillToAddress   string
	ShipToAddress   string
}

// Result is the scoring outcome
type Result struct {
	Score     int            `json:"score"`
	Breakdown map[string]int `json:"breakdown"`
	Rationale []string       `json:"rationale"`
}

// Score applies the rubric to the application and its verification signals.
// Deterministic given its inputs.
func Score(app Input, signals verification.Signals) Result {
	result := Result{
		Breakdown: make(map[string]int),
		Rationale: []string{},
	}

	apply := func(factor string, points int, reason string) {
		result.Breakdown[factor] += points
		result.Rationale = append(result.Rationale, fmt.Sprintf("%s (%+d)", reason, points))
	}

	if signals.Business.Valid {
		apply(FactorBusiness, 60, "Business registration verified as active")
	} else {
		apply(FactorBusiness, -200, "Business registration could not be verified")
	}

	if !signals.Domain.Valid || len(signals.Domain.SuspiciousIndicators) > 0 {
		apply(FactorDomain, -100, "Email domain failed plausibility checks")
	} else {
		apply(FactorDomain, 30, "Email domain passed plausibility checks")
	}

	if verification.ContainsPlaceholderWord(app.LegalName) || verification.ContainsPlaceholderWord(app.ContactEmail) {
		apply(FactorPlaceholder, -300, "Placeholder wording detected in company name or email")
	}

	if app.DunsNumber != "" {
		apply(FactorComplete, 50, "DUNS number supplied, application complete")
		apply(FactorDuns, 40, "DUNS number on file")
	} else {
		apply(FactorComplete, 20, "Application partially complete without DUNS number")
		apply(FactorDuns, -40, "No DUNS number supplied")
	}

	refs := 0
	for _, ref := range app.TradeReferences {
		if ref != "" {
			refs++
		}
	}
	apply(FactorTradeRefs, refs*20, fmt.Sprintf("%d of 3 trade references provided", refs))

	if app.BillToAddress == app.ShipToAddress {
		apply(FactorAddress, 20, "Billing and shipping addresses match")
	} else {
		apply(FactorAddress, 10, "Billing and shipping addresses differ")
	}

	sum := BaseScore
	for _, points := range result.Breakdown {
		sum += points
	}
	result.Score = clamp(sum, MinScore, MaxScore)

	return result
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
