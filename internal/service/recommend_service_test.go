package service

import (
	"context"
	"testing"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Catalog fixture: current row carries duty 10% + anti-dumping 20% + VAT 19%,
// an effective tax rate of 54.70% of customs value.
func currentRate() *model.TariffRate {
	return &model.TariffRate{
		Code:            "8471300000",
		Description:     "Portable computers",
		DutyRate:        d("10"),
		VatRate:         d("19"),
		AntiDumpingRate: d("20"),
	}
}

func TestEffectiveTaxRate(t *testing.T) {
	assert.Equal(t, "54.7000", effectiveTaxRate(currentRate()).Round(4).StringFixed(4))

	plain := &model.TariffRate{DutyRate: d("12"), VatRate: d("19")}
	assert.Equal(t, "33.2800", effectiveTaxRate(plain).Round(4).StringFixed(4))
}

func TestFindAlternatives_RanksByDescendingSavings(t *testing.T) {
	tariffRepo := new(MockTariffRateRepository)
	svc := NewRecommendService(tariffRepo, identityTranslator{})
	ctx := context.Background()

	tariffRepo.On("FindBest", ctx, "8471300000", "CN").Return(currentRate(), nil)

	// Sibling with lower anti-dumping exposure: eff 42.80, savings 11.90.
	sibling := model.TariffRate{
		Code:            "8471300001",
		Description:     "Portable computers, refurbished",
		DutyRate:        d("10"),
		VatRate:         d("19"),
		AntiDumpingRate: d("10"),
	}
	// Sibling at or above the current anti-dumping rate never qualifies.
	dumped := model.TariffRate{
		Code:            "8471300002",
		DutyRate:        d("5"),
		VatRate:         d("19"),
		AntiDumpingRate: d("25"),
	}
	tariffRepo.On("Search", ctx, repository.TariffQuery{
		CodePrefix: "84713000",
		Origin:     "CN",
		Limit:      100,
	}).Return([]model.TariffRate{sibling, dumped}, nil)

	// Wider family, zero anti-dumping: eff 24.95, savings 29.75.
	cousin := model.TariffRate{
		Code:        "8471309999",
		Description: "Other automatic data processing machines",
		DutyRate:    d("5"),
		VatRate:     d("19"),
	}
	// Same 8-digit family rows are already covered by pool 1.
	insidePrefix8 := model.TariffRate{
		Code:     "8471300003",
		DutyRate: d("1"),
		VatRate:  d("19"),
	}
	tariffRepo.On("Search", ctx, repository.TariffQuery{
		CodePrefix:      "847130",
		Origin:          "CN",
		ZeroAntiDumping: true,
		Limit:           100,
	}).Return([]model.TariffRate{cousin, insidePrefix8}, nil)

	// Description pool: a more expensive row and the current code itself.
	expensive := model.TariffRate{
		Code:     "9999999999",
		DutyRate: d("50"),
		VatRate:  d("19"),
	}
	currentDup := model.TariffRate{
		Code:     "8471300000",
		DutyRate: d("0"),
		VatRate:  d("19"),
	}
	tariffRepo.On("Search", ctx, repository.TariffQuery{
		DescriptionContains: "laptop",
		Origin:              "CN",
		ZeroAntiDumping:     true,
		Limit:               100,
	}).Return([]model.TariffRate{expensive, currentDup}, nil)

	res, err := svc.FindAlternatives(ctx, "8471.30.0000", "laptop", "CN", 0)
	require.NoError(t, err)

	assert.Equal(t, "8471300000", res.CurrentCode)
	assert.Equal(t, "54.7000", res.CurrentEffectiveTaxRate)

	require.Len(t, res.Candidates, 2)
	assert.Equal(t, "8471309999", res.Candidates[0].Code)
	assert.Equal(t, "24.9500", res.Candidates[0].EffectiveTaxRate)
	assert.Equal(t, "29.7500", res.Candidates[0].Savings)
	assert.Equal(t, RiskLow, res.Candidates[0].RiskLevel)

	assert.Equal(t, "8471300001", res.Candidates[1].Code)
	assert.Equal(t, "11.9000", res.Candidates[1].Savings)
	// Residual anti-dumping exposure flags the candidate.
	assert.Equal(t, RiskMedium, res.Candidates[1].RiskLevel)

	for _, c := range res.Candidates {
		assert.NotEqual(t, res.CurrentCode, c.Code)
	}
}

func TestFindAlternatives_LimitTruncatesRanking(t *testing.T) {
	tariffRepo := new(MockTariffRateRepository)
	svc := NewRecommendService(tariffRepo, identityTranslator{})
	ctx := context.Background()

	tariffRepo.On("FindBest", ctx, "8471300000", "CN").Return(currentRate(), nil)
	tariffRepo.On("Search", ctx, repository.TariffQuery{
		CodePrefix: "84713000",
		Origin:     "CN",
		Limit:      100,
	}).Return([]model.TariffRate{
		{Code: "8471300001", DutyRate: d("10"), VatRate: d("19"), AntiDumpingRate: d("10")},
	}, nil)
	tariffRepo.On("Search", ctx, repository.TariffQuery{
		CodePrefix:      "847130",
		Origin:          "CN",
		ZeroAntiDumping: true,
		Limit:           100,
	}).Return([]model.TariffRate{
		{Code: "8471309999", DutyRate: d("5"), VatRate: d("19")},
	}, nil)

	res, err := svc.FindAlternatives(ctx, "8471300000", "", "CN", 1)
	require.NoError(t, err)

	require.Len(t, res.Candidates, 1)
	assert.Equal(t, "8471309999", res.Candidates[0].Code)
}

func TestFindAlternatives_NoCheaperCandidates(t *testing.T) {
	tariffRepo := new(MockTariffRateRepository)
	svc := NewRecommendService(tariffRepo, identityTranslator{})
	ctx := context.Background()

	// Current row carries no anti-dumping, so pool 1 can never qualify.
	tariffRepo.On("FindBest", ctx, "8471300000", "CN").Return(&model.TariffRate{
		Code:     "8471300000",
		DutyRate: d("5"),
		VatRate:  d("19"),
	}, nil)
	tariffRepo.On("Search", ctx, repository.TariffQuery{
		CodePrefix: "84713000",
		Origin:     "CN",
		Limit:      100,
	}).Return([]model.TariffRate{
		{Code: "8471300001", DutyRate: d("1"), VatRate: d("19")},
	}, nil)
	tariffRepo.On("Search", ctx, repository.TariffQuery{
		CodePrefix:      "847130",
		Origin:          "CN",
		ZeroAntiDumping: true,
		Limit:           100,
	}).Return([]model.TariffRate{
		{Code: "8471309999", DutyRate: d("9"), VatRate: d("19")},
	}, nil)

	res, err := svc.FindAlternatives(ctx, "8471300000", "", "CN", 0)
	require.NoError(t, err)

	assert.Empty(t, res.Candidates)
}

func TestFindAlternatives_UnknownCode(t *testing.T) {
	tariffRepo := new(MockTariffRateRepository)
	svc := NewRecommendService(tariffRepo, identityTranslator{})
	ctx := context.Background()

	tariffRepo.On("FindBest", ctx, "8471300000", "CN").Return(nil, nil)

	_, err := svc.FindAlternatives(ctx, "8471300000", "", "CN", 0)
	assert.ErrorContains(t, err, "not found in catalog")
}

func TestFindAlternatives_InvalidCode(t *testing.T) {
	svc := NewRecommendService(new(MockTariffRateRepository), identityTranslator{})

	_, err := svc.FindAlternatives(context.Background(), "no-digits", "", "CN", 0)
	assert.ErrorContains(t, err, "invalid code")
}
