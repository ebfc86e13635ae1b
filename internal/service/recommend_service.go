package service

import (
	"context"
	"fmt"
	"sort"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/hscode"

	"github.com/shopspring/decimal"
)

const (
	// DefaultAlternativeLimit caps the ranked candidate list when the
	// caller does not ask for a specific size.
	DefaultAlternativeLimit = 5

	candidatePoolSize = 100
)

// The cascade is linear in customs value, so the effective tax rate is
// value-independent; candidates are scored at a fixed reference value.
var referenceCustomsValue = decimal.NewFromInt(10000)

// --- DTOs ---

type AlternativeCandidate struct {
	Code               string `json:"code"`
	Description        string `json:"description"`
	OriginCountryCode  string `json:"origin_country_code,omitempty"`
	DutyRate           string `json:"duty_rate"`
	VatRate            string `json:"vat_rate"`
	AntiDumpingRate    string `json:"anti_dumping_rate"`
	CountervailingRate string `json:"countervailing_rate"`
	EffectiveTaxRate   string `json:"effective_tax_rate"` // percent of customs value
	Savings            string `json:"savings"`            // percentage points below the current code
	RiskLevel          string `json:"risk_level"`
}

type AlternativesResponse struct {
	CurrentCode             string                 `json:"current_code"`
	CurrentEffectiveTaxRate string                 `json:"current_effective_tax_rate"`
	Candidates              []AlternativeCandidate `json:"candidates"`
}

// --- Interface ---

type RecommendService interface {
	// FindAlternatives searches for lower effective-tax-rate codes that
	// remain defensible for the same product, ranked by descending savings.
	FindAlternatives(ctx context.Context, currentCode, productName, origin string, limit int) (AlternativesResponse, error)
}

type recommendService struct {
	tariffRepo repository.TariffRateRepository
	translator CountryTranslator
}

func NewRecommendService(tariffRepo repository.TariffRateRepository, translator CountryTranslator) RecommendService {
	return &recommendService{tariffRepo: tariffRepo, translator: translator}
}

// --- Implementation ---

func (s *recommendService) FindAlternatives(ctx context.Context, currentCode, productName, origin string, limit int) (AlternativesResponse, error) {
	if !hscode.HasDigits(currentCode) {
		return AlternativesResponse{}, fmt.Errorf("invalid code: no digits in %q", currentCode)
	}
	if limit <= 0 {
		limit = DefaultAlternativeLimit
	}

	code := hscode.Normalize(currentCode)
	originCode := s.translator.Translate(ctx, origin)

	current, err := s.tariffRepo.FindBest(ctx, code, originCode)
	if err != nil {
		return AlternativesResponse{}, fmt.Errorf("tariff lookup failed: %w", err)
	}
	if current == nil {
		return AlternativesResponse{}, fmt.Errorf("code %s not found in catalog", code)
	}

	currentEff := effectiveTaxRate(current)

	seen := map[string]bool{code: true}
	var pool []model.TariffRate

	// Pool 1: siblings under the same 8-digit prefix, skipping rows with at
	// least the current anti-dumping exposure, cheapest tariff burden first.
	p8 := hscode.Prefix(code, hscode.Prefix8Length)
	rows, err := s.tariffRepo.Search(ctx, repository.TariffQuery{
		CodePrefix: p8,
		Origin:     originCode,
		Limit:      candidatePoolSize,
	})
	if err != nil {
		return AlternativesResponse{}, fmt.Errorf("prefix-8 search failed: %w", err)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].TariffBurden().LessThan(rows[j].TariffBurden())
	})
	for _, r := range rows {
		if r.AntiDumpingRate.GreaterThanOrEqual(current.AntiDumpingRate) {
			continue
		}
		pool = appendCandidate(pool, seen, r)
	}

	// Pool 2: the wider 6-digit family, zero anti-dumping only; the 8-digit
	// subset was already covered above.
	p6 := hscode.Prefix(code, hscode.Prefix6Length)
	rows, err = s.tariffRepo.Search(ctx, repository.TariffQuery{
		CodePrefix:      p6,
		Origin:          originCode,
		ZeroAntiDumping: true,
		Limit:           candidatePoolSize,
	})
	if err != nil {
		return AlternativesResponse{}, fmt.Errorf("prefix-6 search failed: %w", err)
	}
	for _, r := range rows {
		if hscode.Prefix(r.Code, hscode.Prefix8Length) == p8 {
			continue
		}
		pool = appendCandidate(pool, seen, r)
	}

	// Pool 3: descriptions matching the product text, zero anti-dumping only.
	if productName != "" {
		rows, err = s.tariffRepo.Search(ctx, repository.TariffQuery{
			DescriptionContains: productName,
			Origin:              originCode,
			ZeroAntiDumping:     true,
			Limit:               candidatePoolSize,
		})
		if err != nil {
			return AlternativesResponse{}, fmt.Errorf("description search failed: %w", err)
		}
		for _, r := range rows {
			pool = appendCandidate(pool, seen, r)
		}
	}

	type scored struct {
		row     *model.TariffRate
		eff     decimal.Decimal
		savings decimal.Decimal
	}

	// Only strictly positive savings survive.
	kept := make([]scored, 0, len(pool))
	for i := range pool {
		r := &pool[i]
		eff := effectiveTaxRate(r)
		savings := currentEff.Sub(eff)
		if !savings.IsPositive() {
			continue
		}
		kept = append(kept, scored{row: r, eff: eff, savings: savings})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].savings.GreaterThan(kept[j].savings)
	})
	if len(kept) > limit {
		kept = kept[:limit]
	}

	candidates := make([]AlternativeCandidate, 0, len(kept))
	for _, c := range kept {
		risk := RiskLow
		if !c.row.AntiDumpingRate.IsZero() {
			risk = RiskMedium
		}
		candidates = append(candidates, AlternativeCandidate{
			Code:               c.row.Code,
			Description:        c.row.Description,
			OriginCountryCode:  c.row.OriginCode(),
			DutyRate:           c.row.DutyRate.StringFixed(4),
			VatRate:            c.row.VatRate.StringFixed(4),
			AntiDumpingRate:    c.row.AntiDumpingRate.StringFixed(4),
			CountervailingRate: c.row.CountervailingRate.StringFixed(4),
			EffectiveTaxRate:   c.eff.Round(4).StringFixed(4),
			Savings:            c.savings.Round(4).StringFixed(4),
			RiskLevel:          risk,
		})
	}

	return AlternativesResponse{
		CurrentCode:             code,
		CurrentEffectiveTaxRate: currentEff.Round(4).StringFixed(4),
		Candidates:              candidates,
	}, nil
}

func appendCandidate(pool []model.TariffRate, seen map[string]bool, r model.TariffRate) []model.TariffRate {
	if seen[r.Code] {
		return pool
	}
	seen[r.Code] = true
	return append(pool, r)
}

// effectiveTaxRate is total tax as a percentage of customs value.
func effectiveTaxRate(r *model.TariffRate) decimal.Decimal {
	b := ComputeTax(TaxInput{
		CustomsValue:       referenceCustomsValue,
		DutyRate:           r.DutyRate,
		VatRate:            r.VatRate,
		AntiDumpingRate:    r.AntiDumpingRate,
		CountervailingRate: r.CountervailingRate,
	})
	return b.TotalTax.Div(referenceCustomsValue).Mul(hundred)
}
