package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixedAgeService(days int) *Service {
	return NewServiceWithAgeSource(AgeSourceFunc(func(string) int { return days }))
}

func TestCheckEmailDomain(t *testing.T) {
	svc := fixedAgeService(1200)

	t.Run("established domain", func(t *testing.T) {
		result := svc.CheckEmailDomain("buyer@acmecorp.com")
		assert.True(t, result.Valid)
		assert.Equal(t, "acmecorp.com", result.Domain)
		assert.Equal(t, 1200, result.EstimatedAgeDays)
		assert.Empty(t, result.SuspiciousIndicators)
	})

	t.Run("placeholder domain", func(t *testing.T) {
		result := svc.CheckEmailDomain("someone@testcompany.com")
		assert.False(t, result.Valid)
		assert.Equal(t, 1, result.EstimatedAgeDays)
		assert.Contains(t, result.SuspiciousIndicators, "placeholder word in domain name")
	})

	t.Run("personal webmail flagged distinctly", func(t *testing.T) {
		result := svc.CheckEmailDomain("someone@gmail.com")
		assert.True(t, result.Valid)
		assert.Contains(t, result.SuspiciousIndicators, "personal webmail domain")
		assert.NotContains(t, result.SuspiciousIndicators, "placeholder word in domain name")
	})

	t.Run("short alphanumeric domain", func(t *testing.T) {
		result := svc.CheckEmailDomain("x@ab12.net")
		assert.Contains(t, result.SuspiciousIndicators, "short auto-generated domain pattern")
	})

	t.Run("missing at sign degrades, does not panic", func(t *testing.T) {
		result := svc.CheckEmailDomain("not-an-email")
		assert.False(t, result.Valid)
		assert.Equal(t, 1, result.EstimatedAgeDays)
		assert.NotEmpty(t, result.SuspiciousIndicators)
	})

	t.Run("empty input", func(t *testing.T) {
		result := svc.CheckEmailDomain("")
		assert.False(t, result.Valid)
	})
}

func TestCheckBusinessRegistration(t *testing.T) {
	svc := NewService()

	t.Run("active registration", func(t *testing.T) {
		result := svc.CheckBusinessRegistration("Acme Industrial Supply", "TX")
		assert.True(t, result.Valid)
		assert.Equal(t, "ACTIVE", result.Status)
		assert.Equal(t, "TX", result.RegisteredState)
		assert.Equal(t, "LLC", result.EntityType)
	})

	t.Run("placeholder name invalid", func(t *testing.T) {
		for _, name := range []string{"Test Corp", "Demo LLC", "Example Inc", "Fake Holdings", "Temp Services"} {
			result := svc.CheckBusinessRegistration(name, "")
			assert.False(t, result.Valid, name)
		}
	})

	t.Run("state defaults when absent", func(t *testing.T) {
		result := svc.CheckBusinessRegistration("Acme Industrial Supply", "")
		assert.Equal(t, "DE", result.RegisteredState)
	})
}

func TestCheckPhone(t *testing.T) {
	svc := NewService()

	t.Run("houston business line", func(t *testing.T) {
		result := svc.CheckPhone("(713) 555-0142")
		assert.True(t, result.Valid)
		assert.Equal(t, "713", result.AreaCode)
		assert.Equal(t, "Business", result.Classification)
		assert.Equal(t, "Houston, TX", result.Location)
	})

	t.Run("eleven digits with country code", func(t *testing.T) {
		result := svc.CheckPhone("1-713-555-0142")
		assert.True(t, result.Valid)
		assert.Equal(t, "713", result.AreaCode)
	})

	t.Run("unknown area code is residential", func(t *testing.T) {
		result := svc.CheckPhone("9995550142")
		assert.True(t, result.Valid)
		assert.Equal(t, "Residential/Mobile", result.Classification)
		assert.Equal(t, "Other", result.Location)
	})

	t.Run("wrong digit counts invalid", func(t *testing.T) {
		for _, number := range []string{"", "555-0142", "123456789", "123456789012", "abc"} {
			assert.False(t, svc.CheckPhone(number).Valid, number)
		}
	})
}

func TestCheckAddress(t *testing.T) {
	svc := NewService()

	t.Run("commercial address", func(t *testing.T) {
		result := svc.CheckAddress("4801 Commerce Park Blvd, Suite 200, Houston TX")
		assert.True(t, result.Valid)
		assert.Equal(t, "Commercial", result.Classification)
	})

	t.Run("po box flagged", func(t *testing.T) {
		result := svc.CheckAddress("P.O. Box 1182, Dover DE 19901")
		assert.Contains(t, result.RiskFactors, "PO Box address")
	})

	t.Run("apartment flagged", func(t *testing.T) {
		result := svc.CheckAddress("220 Elm Street Apt 4B, Austin TX")
		assert.Contains(t, result.RiskFactors, "apartment or unit address")
		assert.Equal(t, "Residential/Unknown", result.Classification)
	})

	t.Run("too short invalid", func(t *testing.T) {
		result := svc.CheckAddress("12 Main")
		assert.False(t, result.Valid)
	})
}

func TestVerifyAggregatesAllChecks(t *testing.T) {
	svc := fixedAgeService(900)

	signals := svc.Verify("ap@acmecorp.com", "Acme Industrial Supply", "TX", "7135550142", "4801 Commerce Park Blvd, Houston TX")

	assert.True(t, signals.Domain.Valid)
	assert.True(t, signals.Business.Valid)
	assert.True(t, signals.Phone.Valid)
	assert.True(t, signals.Address.Valid)
}
