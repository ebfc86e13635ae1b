package service

import (
	"context"
	"testing"

	"backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestComputeTax_BasicCascade(t *testing.T) {
	b := ComputeTax(TaxInput{
		CustomsValue: d("10000"),
		DutyRate:     d("12"),
		VatRate:      d("19"),
	})

	assert.Equal(t, "1200.00", b.Duty.StringFixed(2))
	assert.Equal(t, "0.00", b.OtherTax.StringFixed(2))
	assert.Equal(t, "11200.00", b.VatBase.StringFixed(2))
	assert.Equal(t, "2128.00", b.Vat.StringFixed(2))
	assert.Equal(t, "3328.00", b.TotalTax.StringFixed(2))
}

func TestComputeTax_AntiDumpingWidensVatBase(t *testing.T) {
	b := ComputeTax(TaxInput{
		CustomsValue:    d("10000"),
		DutyRate:        d("10"),
		VatRate:         d("19"),
		AntiDumpingRate: d("20"),
	})

	assert.Equal(t, "1000.00", b.Duty.StringFixed(2))
	assert.Equal(t, "2000.00", b.AntiDumping.StringFixed(2))
	assert.Equal(t, "2000.00", b.OtherTax.StringFixed(2))
	assert.Equal(t, "13000.00", b.VatBase.StringFixed(2))
	assert.Equal(t, "2470.00", b.Vat.StringFixed(2))
	assert.Equal(t, "5470.00", b.TotalTax.StringFixed(2))
}

func TestComputeTax_CountervailingIncluded(t *testing.T) {
	b := ComputeTax(TaxInput{
		CustomsValue:       d("1000"),
		DutyRate:           d("5"),
		VatRate:            d("20"),
		AntiDumpingRate:    d("10"),
		CountervailingRate: d("5"),
	})

	assert.Equal(t, "50.00", b.Duty.StringFixed(2))
	assert.Equal(t, "100.00", b.AntiDumping.StringFixed(2))
	assert.Equal(t, "50.00", b.Countervailing.StringFixed(2))
	assert.Equal(t, "150.00", b.OtherTax.StringFixed(2))
	assert.Equal(t, "1200.00", b.VatBase.StringFixed(2))
	assert.Equal(t, "240.00", b.Vat.StringFixed(2))
	assert.Equal(t, "440.00", b.TotalTax.StringFixed(2))
}

// The total is computed from unrounded intermediates; rounding each component
// first would yield 3.36 here.
func TestComputeTax_NoIntermediateRounding(t *testing.T) {
	b := ComputeTax(TaxInput{
		CustomsValue: d("10"),
		DutyRate:     d("12.345"),
		VatRate:      d("19"),
	})

	assert.Equal(t, "1.23", b.Duty.StringFixed(2))
	assert.Equal(t, "2.13", b.Vat.StringFixed(2))
	assert.Equal(t, "3.37", b.TotalTax.StringFixed(2))
}

func TestComputeTax_RoundsHalfUp(t *testing.T) {
	b := ComputeTax(TaxInput{
		CustomsValue: d("100"),
		DutyRate:     d("2.345"),
		VatRate:      d("0"),
	})

	assert.Equal(t, "2.35", b.Duty.StringFixed(2))
}

func TestApplyClearance_Standard(t *testing.T) {
	b := ComputeTax(TaxInput{CustomsValue: d("10000"), DutyRate: d("12"), VatRate: d("19")})
	s := ApplyClearance(b, model.ClearanceStandard)

	assert.Equal(t, "2128.00", s.PayableVat.StringFixed(2))
	assert.Equal(t, "0.00", s.DeferredVat.StringFixed(2))
	assert.Equal(t, "3328.00", s.PayableTotal.StringFixed(2))
}

func TestApplyClearance_DeferredShiftsVatOnly(t *testing.T) {
	b := ComputeTax(TaxInput{CustomsValue: d("10000"), DutyRate: d("12"), VatRate: d("19")})
	s := ApplyClearance(b, model.ClearanceDeferred)

	assert.Equal(t, "0.00", s.PayableVat.StringFixed(2))
	assert.Equal(t, "2128.00", s.DeferredVat.StringFixed(2))
	assert.Equal(t, "1200.00", s.PayableTotal.StringFixed(2))
}

func TestTaxService_Compute(t *testing.T) {
	svc := NewTaxService(nil, nil, nil, identityTranslator{})

	res, err := svc.Compute(ComputeTaxRequest{
		CustomsValue:  "10000",
		DutyRate:      "12",
		VatRate:       "19",
		ClearanceType: model.ClearanceDeferred,
	})
	require.NoError(t, err)

	assert.Equal(t, "1200.00", res.Duty)
	assert.Equal(t, "2128.00", res.Vat)
	assert.Equal(t, "3328.00", res.TotalTax)
	assert.Equal(t, "0.00", res.PayableVat)
	assert.Equal(t, "2128.00", res.DeferredVat)
	assert.Equal(t, "1200.00", res.PayableTotal)
}

func TestTaxService_Compute_InvalidInput(t *testing.T) {
	svc := NewTaxService(nil, nil, nil, identityTranslator{})

	_, err := svc.Compute(ComputeTaxRequest{CustomsValue: "abc", DutyRate: "12", VatRate: "19"})
	assert.Error(t, err)
}

func TestTaxService_ComputeBatch(t *testing.T) {
	batchRepo := new(MockBatchRepository)
	tariffRepo := new(MockTariffRateRepository)
	auditRepo := new(MockAuditRepository)
	svc := NewTaxService(batchRepo, tariffRepo, auditRepo, identityTranslator{})

	ctx := context.Background()
	batchID := uuid.New()

	approved := model.CargoItem{
		ID:            uuid.New(),
		BatchID:       batchID,
		ProductName:   "Laptops",
		CustomsValue:  d("1000"),
		OriginCountry: "CN",
		HsCode:        "8471300000",
		MatchStatus:   model.MatchStatusApproved,
	}
	pending := model.CargoItem{
		ID:           uuid.New(),
		BatchID:      batchID,
		ProductName:  "Keyboards",
		CustomsValue: d("500"),
		MatchStatus:  model.MatchStatusPending,
	}
	noRate := model.CargoItem{
		ID:            uuid.New(),
		BatchID:       batchID,
		ProductName:   "Mice",
		CustomsValue:  d("200"),
		OriginCountry: "CN",
		HsCode:        "9999999999",
		MatchStatus:   model.MatchStatusAutoApproved,
	}
	batch := &model.ImportBatch{
		ID:            batchID,
		BatchNo:       "IMB-20260829-abcdef12",
		ClearanceType: model.ClearanceStandard,
		Items:         []model.CargoItem{approved, pending, noRate},
	}

	batchRepo.On("FindByIDWithItems", ctx, batchID).Return(batch, nil)
	tariffRepo.On("FindBest", ctx, "8471300000", "CN").Return(&model.TariffRate{
		Code:     "8471300000",
		DutyRate: d("10"),
		VatRate:  d("20"),
	}, nil)
	tariffRepo.On("FindBest", ctx, "9999999999", "CN").Return(nil, nil)
	batchRepo.On("UpdateItem", ctx, mock.Anything).Return(nil)
	batchRepo.On("UpdateBatch", ctx, batch).Return(nil)
	auditRepo.On("Create", ctx, mock.Anything).Return(nil)

	res, err := svc.ComputeBatch(ctx, batchID.String(), "")
	require.NoError(t, err)

	assert.Equal(t, 1, res.ItemCount)
	assert.Len(t, res.Items, 2) // computed item plus the per-item failure
	assert.Equal(t, "1000.00", res.TotalValue)
	assert.Equal(t, "100.00", res.TotalDuty)
	assert.Equal(t, "220.00", res.TotalVat)
	assert.Equal(t, "320.00", res.TotalTax)

	var failed *ItemTaxResponse
	for i := range res.Items {
		if res.Items[i].Error != "" {
			failed = &res.Items[i]
		}
	}
	require.NotNil(t, failed)
	assert.Equal(t, noRate.ID.String(), failed.ItemID)

	assert.Equal(t, model.BatchStatusComputed, batch.Status)
	assert.Equal(t, "1000.00", batch.TotalValue.StringFixed(2))
	batchRepo.AssertExpectations(t)
}

func TestTaxService_ComputeBatch_DeferredClearance(t *testing.T) {
	batchRepo := new(MockBatchRepository)
	tariffRepo := new(MockTariffRateRepository)
	auditRepo := new(MockAuditRepository)
	svc := NewTaxService(batchRepo, tariffRepo, auditRepo, identityTranslator{})

	ctx := context.Background()
	batchID := uuid.New()
	batch := &model.ImportBatch{
		ID:            batchID,
		BatchNo:       "IMB-20260829-deadbeef",
		ClearanceType: model.ClearanceDeferred,
		Items: []model.CargoItem{{
			ID:            uuid.New(),
			BatchID:       batchID,
			CustomsValue:  d("10000"),
			OriginCountry: "CN",
			HsCode:        "8471300000",
			MatchStatus:   model.MatchStatusApproved,
		}},
	}

	batchRepo.On("FindByIDWithItems", ctx, batchID).Return(batch, nil)
	tariffRepo.On("FindBest", ctx, "8471300000", "CN").Return(&model.TariffRate{
		Code:     "8471300000",
		DutyRate: d("12"),
		VatRate:  d("19"),
	}, nil)
	batchRepo.On("UpdateItem", ctx, mock.Anything).Return(nil)
	batchRepo.On("UpdateBatch", ctx, batch).Return(nil)
	auditRepo.On("Create", ctx, mock.Anything).Return(nil)

	res, err := svc.ComputeBatch(ctx, batchID.String(), "")
	require.NoError(t, err)

	assert.Equal(t, "0.00", res.PayableVat)
	assert.Equal(t, "2128.00", res.DeferredVat)
	// TotalVat still carries the full computed VAT.
	assert.Equal(t, "2128.00", res.TotalVat)
	assert.Equal(t, "3328.00", res.TotalTax)

	item := &batch.Items[0]
	assert.Equal(t, "0.00", item.Vat.StringFixed(2))
	assert.Equal(t, "2128.00", item.DeferredVat.StringFixed(2))
	assert.Equal(t, "3328.00", item.TotalTax.StringFixed(2))
}

func TestTaxService_RecomputeItem_OverridesWin(t *testing.T) {
	batchRepo := new(MockBatchRepository)
	tariffRepo := new(MockTariffRateRepository)
	auditRepo := new(MockAuditRepository)
	svc := NewTaxService(batchRepo, tariffRepo, auditRepo, identityTranslator{})

	ctx := context.Background()
	batchID := uuid.New()
	item := &model.CargoItem{
		ID:            uuid.New(),
		BatchID:       batchID,
		ProductName:   "Laptops",
		CustomsValue:  d("1000"),
		OriginCountry: "CN",
		HsCode:        "8471300000",
		MatchStatus:   model.MatchStatusApproved,
	}

	batchRepo.On("FindItemByID", ctx, item.ID).Return(item, nil)
	batchRepo.On("FindByIDWithItems", ctx, batchID).Return(&model.ImportBatch{
		ID:            batchID,
		ClearanceType: model.ClearanceStandard,
	}, nil)
	tariffRepo.On("FindBest", ctx, "8471300000", "CN").Return(&model.TariffRate{
		Code:     "8471300000",
		DutyRate: d("10"),
		VatRate:  d("20"),
	}, nil)
	batchRepo.On("UpdateItem", ctx, item).Return(nil)
	auditRepo.On("Create", ctx, mock.Anything).Return(nil)

	override := "5"
	res, err := svc.RecomputeItem(ctx, item.ID.String(), RecomputeItemRequest{DutyRate: &override}, "")
	require.NoError(t, err)

	// Duty from the override, VAT rate from the catalog row.
	assert.Equal(t, "50.00", res.Duty)
	assert.Equal(t, "210.00", res.Vat)
	assert.Equal(t, "260.00", res.TotalTax)
}

func TestTaxService_RecomputeItem_CodeChangeRefetchesRate(t *testing.T) {
	batchRepo := new(MockBatchRepository)
	tariffRepo := new(MockTariffRateRepository)
	auditRepo := new(MockAuditRepository)
	svc := NewTaxService(batchRepo, tariffRepo, auditRepo, identityTranslator{})

	ctx := context.Background()
	batchID := uuid.New()
	item := &model.CargoItem{
		ID:            uuid.New(),
		BatchID:       batchID,
		CustomsValue:  d("1000"),
		OriginCountry: "CN",
		HsCode:        "8471300000",
	}

	batchRepo.On("FindItemByID", ctx, item.ID).Return(item, nil)
	batchRepo.On("FindByIDWithItems", ctx, batchID).Return(&model.ImportBatch{
		ID:            batchID,
		ClearanceType: model.ClearanceStandard,
	}, nil)
	tariffRepo.On("FindBest", ctx, "8528720000", "CN").Return(&model.TariffRate{
		Code:     "8528720000",
		DutyRate: d("14"),
		VatRate:  d("19"),
	}, nil)
	batchRepo.On("UpdateItem", ctx, item).Return(nil)
	auditRepo.On("Create", ctx, mock.Anything).Return(nil)

	res, err := svc.RecomputeItem(ctx, item.ID.String(), RecomputeItemRequest{Code: "8528.72.0000"}, "")
	require.NoError(t, err)

	assert.Equal(t, "8528720000", res.HsCode)
	assert.Equal(t, "140.00", res.Duty)
	tariffRepo.AssertExpectations(t)
}
