package scoring

import (
	"testing"

	"github.com/netvendor/creditintake/services/verification"
	"github.com/stretchr/testify/assert"
)

func cleanSignals() verification.Signals {
	return verification.Signals{
		Domain:   verification.DomainResult{Valid: true, EstimatedAgeDays: 1500, SuspiciousIndicators: []string{}},
		Business: verification.BusinessResult{Valid: true, Status: "ACTIVE"},
		Phone:    verification.PhoneResult{Valid: true, Classification: "Business"},
		Address:  verification.AddressResult{Valid: true, Classification: "Commercial"},
	}
}

func cleanInput() Input {
	return Input{
		LegalName:       "Acme Industrial Supply LLC",
		ContactEmail:    "ap@acmecorp.com",
		DunsNumber:      "150483782",
		TradeReferences: [3]string{"Global Freight Co", "Steelworks Ltd", "Pacific Paper"},
		BillToAddress:   "4801 Commerce Park Blvd, Houston TX",
		ShipToAddress:   "4801 Commerce Park Blvd, Houston TX",
	}
}

func TestScoreStrongApplication(t *testing.T) {
	result := Score(cleanInput(), cleanSignals())

	// 600 + 60 + 30 + 50 + 40 + 60 + 20 = 860 → clamped
	assert.Equal(t, MaxScore, result.Score)
	assert.Equal(t, 60, result.Breakdown[FactorBusiness])
	assert.Equal(t, 30, result.Breakdown[FactorDomain])
	assert.Equal(t, 60, result.Breakdown[FactorTradeRefs])
	assert.Equal(t, 20, result.Breakdown[FactorAddress])
	assert.NotContains(t, result.Breakdown, FactorPlaceholder)
	assert.NotEmpty(t, result.Rationale)
}

func TestScoreFloorClamp(t *testing.T) {
	input := Input{
		LegalName:    "Test Fake Temp Corp",
		ContactEmail: "x@test.com",
	}
	signals := verification.Signals{
		Domain: verification.DomainResult{Valid: false, SuspiciousIndicators: []string{"placeholder word in domain name"}},
	}

	result := Score(input, signals)

	// 600 - 200 - 100 - 300 + 20 - 40 + 0 + 20 = 0 → clamped to floor
	assert.Equal(t, MinScore, result.Score)
}

func TestScoreAlwaysWithinBounds(t *testing.T) {
	inputs := []Input{
		{},
		cleanInput(),
		{LegalName: "demo", ContactEmail: "demo@demo.com"},
		{DunsNumber: "1", TradeReferences: [3]string{"a", "b", "c"}, BillToAddress: "x", ShipToAddress: "x"},
	}
	signalVariants := []verification.Signals{
		{},
		cleanSignals(),
		{Domain: verification.DomainResult{Valid: true, SuspiciousIndicators: []string{"personal webmail domain"}}},
	}

	for _, input := range inputs {
		for _, signals := range signalVariants {
			result := Score(input, signals)
			assert.GreaterOrEqual(t, result.Score, MinScore)
			assert.LessOrEqual(t, result.Score, MaxScore)
		}
	}
}

func TestScoreBreakdownSumInvariant(t *testing.T) {
	input := cleanInput()
	input.DunsNumber = ""
	input.TradeReferences = [3]string{"Global Freight Co", "", ""}
	input.ShipToAddress = "110 Dock Road, Galveston TX"

	result := Score(input, cleanSignals())

	sum := BaseScore
	for _, points := range result.Breakdown {
		sum += points
	}
	if sum < MinScore {
		sum = MinScore
	}
	if sum > MaxScore {
		sum = MaxScore
	}
	assert.Equal(t, sum, result.Score)
}

func TestScorePlaceholderPenaltyStacks(t *testing.T) {
	base := cleanInput()
	base.DunsNumber = ""
	base.TradeReferences = [3]string{}

	flagged := base
	flagged.LegalName = "Acme Demo Supply LLC"

	baseResult := Score(base, cleanSignals())
	flaggedResult := Score(flagged, cleanSignals())

	assert.Equal(t, -300, flaggedResult.Breakdown[FactorPlaceholder])
	// Identical except the placeholder factor
	assert.Equal(t, baseResult.Score-300, flaggedResult.Score)
}

func TestScoreDunsDelta(t *testing.T) {
	withDuns := cleanInput()
	withDuns.TradeReferences = [3]string{}

	withoutDuns := withDuns
	withoutDuns.DunsNumber = ""

	withResult := Score(withDuns, cleanSignals())
	withoutResult := Score(withoutDuns, cleanSignals())

	assert.Equal(t, 50, withResult.Breakdown[FactorComplete])
	assert.Equal(t, 40, withResult.Breakdown[FactorDuns])
	assert.Equal(t, 20, withoutResult.Breakdown[FactorComplete])
	assert.Equal(t, -40, withoutResult.Breakdown[FactorDuns])

	// Combined completeness+DUNS contribution: 90 present vs -20 absent
	assert.Equal(t, 110, withResult.Score-withoutResult.Score)
}

func TestScoreTradeReferences(t *testing.T) {
	input := cleanInput()

	for refs := 0; refs <= 3; refs++ {
		var slots [3]string
		for i := 0; i < refs; i++ {
			slots[i] = "Reference Co"
		}
		input.TradeReferences = slots
		input.DunsNumber = "" // keep raw sum inside the bounds

		result := Score(input, cleanSignals())
		assert.Equal(t, refs*20, result.Breakdown[FactorTradeRefs])
	}
}

func TestScoreAddressConsistency(t *testing.T) {
	input := cleanInput()
	input.DunsNumber = ""

	matched := Score(input, cleanSignals())
	input.ShipToAddress = "110 Dock Road, Galveston TX"
	differing := Score(input, cleanSignals())

	assert.Equal(t, 20, matched.Breakdown[FactorAddress])
	assert.Equal(t, 10, differing.Breakdown[FactorAddress])
}

func TestScoreEmptyInputDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		result := Score(Input{}, verification.Signals{})
		assert.GreaterOrEqual(t, result.Score, MinScore)
	})
}
