// Package verification provides mocked third-party plausibility checks over
// applicant-supplied strings. The checks are stand-ins for external registry,
// telco and address APIs; they never perform I/O and never return errors —
// malformed input degrades to an invalid result.
package verification

import (
	"math/rand"
	"regexp"
	"strings"
	"time"
)

// Placeholder words heuristically mark non-production submissions.
var placeholderWords = []string{"test", "demo", "example", "fake", "temp"}

var personalWebmailDomains = map[string]bool{
	"gmail.com":      true,
	"yahoo.com":      true,
	"hotmail.com":    true,
	"outlook.com":    true,
	"aol.com":        true,
	"icloud.com":     true,
	"protonmail.com": true,
	"mail.com":       true,
}

// Area codes treated as business exchanges by the mock telco lookup.
var businessAreaCodes = map[string]bool{
	"206": true, "212": true, "213": true, "312": true, "404": true,
	"415": true, "512": true, "617": true, "713": true,
}

var areaCodeLocations = map[string]string{
	"206": "Seattle, WA",
	"212": "New York, NY",
	"213": "Los Angeles, CA",
	"312": "Chicago, IL",
	"404": "Atlanta, GA",
	"415": "San Francisco, CA",
	"512": "Austin, TX",
	"617": "Boston, MA",
	"713": "Houston, TX",
}

var (
	shortAlnumPattern = regexp.MustCompile(`^[a-z]{0,4}\d{1,4}[a-z0-9]*$`)
	nonDigitPattern   = regexp.MustCompile(`\D`)
	poBoxPattern      = regexp.MustCompile(`(?i)\bp\.?\s*o\.?\s*box\b`)
	unitPattern       = regexp.MustCompile(`(?i)\b(apt|apartment|unit)\b\.?\s*#?\w*|#\s*\d+`)
)

var commercialAddressKeywords = []string{
	"suite", "ste", "floor", "bldg", "building", "plaza", "tower",
	"office", "park", "center", "industrial", "warehouse", "blvd",
}

// DomainResult is the mock WHOIS-style classification of an email domain
type DomainResult struct {
	Domain               string   `json:"domain"`
	Valid                bool     `json:"valid"`
	EstimatedAgeDays     int      `json:"estimatedAgeDays"`
	Registrar            string   `json:"registrar"`
	SuspiciousIndicators []string `json:"suspiciousIndicators"`
}

// BusinessResult is the mock state-registry classification of a company name
type BusinessResult struct {
	Valid            bool   `json:"valid"`
	RegisteredState  string `json:"registeredState"`
	EntityType       string `json:"entityType"`
	RegistrationDate string `json:"registrationDate"`
	Status           string `json:"status"`
}

// PhoneResult is the mock telco classification of a phone number
type PhoneResult struct {
	Valid          bool   `json:"valid"`
	Classification string `json:"classification"`
	AreaCode       string `json:"areaCode"`
	Location       string `json:"location"`
}

// AddressResult is the mock classification of a street address
type AddressResult struct {
	Valid          bool     `json:"valid"`
	Classification string   `json:"classification"`
	RiskFactors    []string `json:"riskFactors"`
}

// Signals aggregates the verification results consumed by scoring
type Signals struct {
	Domain   DomainResult   `json:"domain"`
	Business BusinessResult `json:"business"`
	Phone    PhoneResult    `json:"phone"`
	Address  AddressResult  `json:"address"`
}

// AgeSource produces a pseudo domain age in days. The production source is
// seeded randomness standing in for a WHOIS lookup; tests inject a fixed one
// so scoring stays deterministic.
type AgeSource interface {
	AgeDays(domain string) int
}

// AgeSourceFunc adapts a function to the AgeSource interface
type AgeSourceFunc func(domain string) int

// AgeDays implements AgeSource
func (f AgeSourceFunc) AgeDays(domain string) int { return f(domain) }

// Service performs the plausibility checks
type Service struct {
	age AgeSource
}

// NewService creates a verification service with the default pseudo-random age source
func NewService() *Service {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Service{
		age: AgeSourceFunc(func(string) int {
			return 365 + rng.Intn(3650)
		}),
	}
}

// NewServiceWithAgeSource creates a verification service with an injected age source
func NewServiceWithAgeSource(src AgeSource) *Service {
	return &Service{age: src}
}

// Verify runs every check over the applicant fields
func (s *Service) Verify(email, companyName, state, phone, address string) Signals {
	return Signals{
		Domain:   s.CheckEmailDomain(email),
		Business: s.CheckBusinessRegistration(companyName, state),
		Phone:    s.CheckPhone(phone),
		Address:  s.CheckAddress(address),
	}
}

// CheckEmailDomain classifies the domain part of an email address
func (s *Service) CheckEmailDomain(email string) DomainResult {
	result := DomainResult{
		Registrar:            "Mock Registrar Inc.",
		SuspiciousIndicators: []string{},
	}

	_, domain, found := strings.Cut(strings.ToLower(strings.TrimSpace(email)), "@")
	if !found || domain == "" {
		result.SuspiciousIndicators = append(result.SuspiciousIndicators, "malformed email address")
		result.EstimatedAgeDays = 1
		return result
	}
	result.Domain = domain

	name, _, _ := strings.Cut(domain, ".")
	placeholder := containsPlaceholderWord(name)

	if placeholder {
		result.SuspiciousIndicators = append(result.SuspiciousIndicators, "placeholder word in domain name")
	}
	if shortAlnumPattern.MatchString(name) {
		result.SuspiciousIndicators = append(result.SuspiciousIndicators, "short auto-generated domain pattern")
	}
	if personalWebmailDomains[domain] {
		result.SuspiciousIndicators = append(result.SuspiciousIndicators, "personal webmail domain")
	}

	result.Valid = !placeholder
	if placeholder {
		result.EstimatedAgeDays = 1
	} else {
		result.EstimatedAgeDays = s.age.AgeDays(domain)
	}

	return result
}

// CheckBusinessRegistration classifies a company name against the mock registry
func (s *Service) CheckBusinessRegistration(companyName, state string) BusinessResult {
	if state == "" {
		state = "DE"
	}

	if containsPlaceholderWord(companyName) {
		return BusinessResult{
			Valid:           false,
			RegisteredState: state,
			Status:          "NOT_FOUND",
		}
	}

	return BusinessResult{
		Valid:            true,
		RegisteredState:  state,
		EntityType:       "LLC",
		RegistrationDate: "2015-03-12",
		Status:           "ACTIVE",
	}
}

// CheckPhone classifies a phone number by digit count and area code
func (s *Service) CheckPhone(number string) PhoneResult {
	digits := nonDigitPattern.ReplaceAllString(number, "")

	if len(digits) != 10 && len(digits) != 11 {
		return PhoneResult{Valid: false, Classification: "Unknown", Location: "Other"}
	}

	if len(digits) == 11 {
		digits = digits[1:]
	}
	areaCode := digits[:3]

	classification := "Residential/Mobile"
	if businessAreaCodes[areaCode] {
		classification = "Business"
	}

	location := areaCodeLocations[areaCode]
	if location == "" {
		location = "Other"
	}

	return PhoneResult{
		Valid:          true,
		Classification: classification,
		AreaCode:       areaCode,
		Location:       location,
	}
}

// CheckAddress classifies a street address and collects risk factors
func (s *Service) CheckAddress(address string) AddressResult {
	result := AddressResult{
		Valid:          len(address) > 10,
		Classification: "Residential/Unknown",
		RiskFactors:    []string{},
	}

	lower := strings.ToLower(address)

	if poBoxPattern.MatchString(address) {
		result.RiskFactors = append(result.RiskFactors, "PO Box address")
	}
	if unitPattern.MatchString(address) {
		result.RiskFactors = append(result.RiskFactors, "apartment or unit address")
	}

	for _, keyword := range commercialAddressKeywords {
		if strings.Contains(lower, keyword) {
			result.Classification = "Commercial"
			break
		}
	}

	return result
}

// ContainsPlaceholderWord reports whether s contains any placeholder word.
// Scoring uses it over both company names and emails.
func ContainsPlaceholderWord(s string) bool {
	return containsPlaceholderWord(s)
}

func containsPlaceholderWord(s string) bool {
	lower := strings.ToLower(s)
	for _, word := range placeholderWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
