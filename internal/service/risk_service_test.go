package service

import (
	"context"
	"testing"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPercentile_NearestRank(t *testing.T) {
	sorted := []decimal.Decimal{
		d("10"), d("20"), d("30"), d("40"), d("50"),
		d("60"), d("70"), d("80"), d("90"), d("100"),
	}

	assert.Equal(t, "10", percentile(sorted, 10).String())
	assert.Equal(t, "30", percentile(sorted, 25).String())
	assert.Equal(t, "50", percentile(sorted, 50).String())
	assert.Equal(t, "100", percentile(sorted, 100).String())

	single := []decimal.Decimal{d("42")}
	assert.Equal(t, "42", percentile(single, 10).String())
	assert.Equal(t, "42", percentile(single, 90).String())

	assert.True(t, percentile(nil, 50).IsZero())
}

func passedDeclarations(prices ...string) []model.DeclarationValueRecord {
	recs := make([]model.DeclarationValueRecord, 0, len(prices))
	for _, p := range prices {
		recs = append(recs, model.DeclarationValueRecord{
			HsCode:        "8471300000",
			OriginCountry: "CN",
			DeclaredPrice: d(p),
			Outcome:       model.DeclarationPassed,
			DeclaredAt:    time.Now(),
		})
	}
	return recs
}

func TestDeclaredValueRisk_Tiers(t *testing.T) {
	// min 100, p10 100, avg 146, 0.7*avg 102.2, pass rate 100%.
	recs := passedDeclarations("100", "110", "120", "130", "140", "150", "160", "170", "180", "200")

	cases := []struct {
		price string
		want  string
	}{
		{"90", RiskHigh},    // below the lowest accepted price
		{"101", RiskMedium}, // below 70% of the average
		{"150", RiskLow},
		{"200", RiskLow},
	}

	for _, tc := range cases {
		riskRepo := new(MockRiskRecordRepository)
		svc := NewRiskService(riskRepo, nil)
		riskRepo.On("ListDeclarations", mock.Anything, "8471300000", "CN", "").Return(recs, nil)

		res, err := svc.DeclaredValueRisk(context.Background(), "8471300000", "CN", "", tc.price)
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.Equal(t, tc.want, res.RiskLevel, "price %s", tc.price)
	}
}

func TestDeclaredValueRisk_Stats(t *testing.T) {
	riskRepo := new(MockRiskRecordRepository)
	svc := NewRiskService(riskRepo, nil)

	recs := passedDeclarations("100", "110", "120", "130", "140", "150", "160", "170", "180", "200")
	recs = append(recs,
		model.DeclarationValueRecord{DeclaredPrice: d("50"), Outcome: model.DeclarationQuestioned},
		model.DeclarationValueRecord{DeclaredPrice: d("40"), Outcome: model.DeclarationRejected},
	)
	riskRepo.On("ListDeclarations", mock.Anything, "8471300000", "CN", "kg").Return(recs, nil)

	res, err := svc.DeclaredValueRisk(context.Background(), "8471300000", "CN", "kg", "150")
	require.NoError(t, err)
	require.NotNil(t, res.Stats)

	assert.Equal(t, 12, res.Stats.TotalCount)
	assert.Equal(t, 10, res.Stats.PassCount)
	assert.Equal(t, 1, res.Stats.QuestionedCount)
	assert.Equal(t, 1, res.Stats.RejectedCount)
	assert.Equal(t, "83.33", res.Stats.PassRate)
	assert.Equal(t, "100.00", res.Stats.MinPassPrice)
	assert.Equal(t, "200.00", res.Stats.MaxPassPrice)
	assert.Equal(t, "146.00", res.Stats.AvgPassPrice)
	assert.Equal(t, "100.00", res.Stats.P10PassPrice)
	assert.Equal(t, "120.00", res.Stats.P25PassPrice)

	// min pass (100) beats p10 * 0.95 (95).
	assert.Equal(t, "100.00", res.SuggestedMinPrice)
}

func TestDeclaredValueRisk_LowerPriceNeverLowersTier(t *testing.T) {
	recs := passedDeclarations("100", "110", "120", "130", "140", "150", "160", "170", "180", "200")

	tierRank := map[string]int{RiskLow: 0, RiskMedium: 1, RiskHigh: 2}
	prev := -1
	for _, price := range []string{"250", "150", "102", "101", "99", "50"} {
		riskRepo := new(MockRiskRecordRepository)
		svc := NewRiskService(riskRepo, nil)
		riskRepo.On("ListDeclarations", mock.Anything, "8471300000", "CN", "").Return(recs, nil)

		res, err := svc.DeclaredValueRisk(context.Background(), "8471300000", "CN", "", price)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, tierRank[res.RiskLevel], prev, "price %s", price)
		prev = tierRank[res.RiskLevel]
	}
}

func TestDeclaredValueRisk_NoData(t *testing.T) {
	riskRepo := new(MockRiskRecordRepository)
	svc := NewRiskService(riskRepo, nil)
	riskRepo.On("ListDeclarations", mock.Anything, "8471300000", "CN", "").Return([]model.DeclarationValueRecord{}, nil)

	res, err := svc.DeclaredValueRisk(context.Background(), "8471300000", "CN", "", "100")
	require.NoError(t, err)

	assert.False(t, res.Found)
	assert.Equal(t, RiskUnknown, res.RiskLevel)
	assert.Contains(t, res.Message, "no historical data")
	assert.Nil(t, res.Stats)
}

func TestDeclaredValueRisk_NothingEverPassed(t *testing.T) {
	riskRepo := new(MockRiskRecordRepository)
	svc := NewRiskService(riskRepo, nil)
	riskRepo.On("ListDeclarations", mock.Anything, "8471300000", "CN", "").Return([]model.DeclarationValueRecord{
		{DeclaredPrice: d("10"), Outcome: model.DeclarationRejected},
		{DeclaredPrice: d("12"), Outcome: model.DeclarationQuestioned},
	}, nil)

	res, err := svc.DeclaredValueRisk(context.Background(), "8471300000", "CN", "", "1000")
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, RiskHigh, res.RiskLevel)
}

func inspections(total, inspected, physical, failed int) []model.InspectionRecord {
	recs := make([]model.InspectionRecord, total)
	for i := range recs {
		recs[i] = model.InspectionRecord{HsCode: "8471300000", OriginCountry: "CN", Outcome: model.InspectionPass}
		if i < inspected {
			recs[i].Inspected = true
			recs[i].InspectionType = model.InspectionDocument
		}
		if i < physical {
			recs[i].InspectionType = model.InspectionPhysical
		}
		if i < failed {
			recs[i].Outcome = model.InspectionFail
		}
	}
	return recs
}

func TestInspectionRisk_Tiers(t *testing.T) {
	cases := []struct {
		name string
		recs []model.InspectionRecord
		want string
	}{
		{"high inspection rate", inspections(10, 4, 0, 1), RiskHigh},     // 40% >= 30%
		{"high physical rate", inspections(10, 2, 2, 0), RiskHigh},       // physical 20% >= 20%
		{"medium inspection rate", inspections(20, 3, 0, 0), RiskMedium}, // 15%
		{"medium physical rate", inspections(10, 1, 1, 0), RiskMedium},   // physical 10%
		{"low", inspections(10, 1, 0, 0), RiskLow},                       // 10% < 15%
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			riskRepo := new(MockRiskRecordRepository)
			svc := NewRiskService(riskRepo, nil)
			riskRepo.On("ListInspections", mock.Anything, "8471300000", "CN").Return(tc.recs, nil)

			res, err := svc.InspectionRisk(context.Background(), "8471300000", "CN")
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.RiskLevel)
		})
	}
}

func TestInspectionRisk_Stats(t *testing.T) {
	riskRepo := new(MockRiskRecordRepository)
	svc := NewRiskService(riskRepo, nil)

	recs := inspections(10, 4, 2, 1)
	recs[0].PenaltyAmount = d("150.50")
	recs[0].DelayDays = 5
	recs[1].DelayDays = 3
	riskRepo.On("ListInspections", mock.Anything, "8471300000", "CN").Return(recs, nil)

	res, err := svc.InspectionRisk(context.Background(), "8471300000", "CN")
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, 10, res.TotalShipments)
	assert.Equal(t, 4, res.InspectedCount)
	assert.Equal(t, 2, res.PhysicalCount)
	assert.Equal(t, 9, res.PassedCount)
	assert.Equal(t, 1, res.FailedCount)
	assert.Equal(t, "40.00", res.InspectionRate)
	assert.Equal(t, "20.00", res.PhysicalRate)
	assert.Equal(t, "150.50", res.TotalPenalties)
	assert.Equal(t, "0.80", res.AvgDelayDays)
	assert.Equal(t, 5, res.MaxDelayDays)
}

func TestInspectionRisk_NoData(t *testing.T) {
	riskRepo := new(MockRiskRecordRepository)
	svc := NewRiskService(riskRepo, nil)
	riskRepo.On("ListInspections", mock.Anything, "8471300000", "CN").Return([]model.InspectionRecord{}, nil)

	res, err := svc.InspectionRisk(context.Background(), "8471300000", "CN")
	require.NoError(t, err)

	assert.False(t, res.Found)
	assert.Equal(t, RiskUnknown, res.RiskLevel)
}

func TestWatchlist_KeepsOnlyHighRisk(t *testing.T) {
	riskRepo := new(MockRiskRecordRepository)
	svc := NewRiskService(riskRepo, nil)

	riskRepo.On("AggregateInspections", mock.Anything, 3).Return([]repository.InspectionAggregate{
		{HsCode: "8471300000", OriginCountry: "CN", TotalCount: 10, InspectedCount: 4, PhysicalCount: 1}, // 40%
		{HsCode: "8528720000", OriginCountry: "CN", TotalCount: 10, InspectedCount: 1, PhysicalCount: 0}, // 10%, dropped
		{HsCode: "7318151000", OriginCountry: "IN", TotalCount: 4, InspectedCount: 3, PhysicalCount: 2},  // 75%
	}, nil)

	entries, err := svc.Watchlist(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	// Sorted by inspection rate, highest first.
	assert.Equal(t, "7318151000", entries[0].HsCode)
	assert.Equal(t, "75.00", entries[0].InspectionRate)
	assert.Equal(t, "8471300000", entries[1].HsCode)
	assert.Equal(t, "40.00", entries[1].InspectionRate)
}

func TestWatchlist_ClampsMinShipments(t *testing.T) {
	riskRepo := new(MockRiskRecordRepository)
	svc := NewRiskService(riskRepo, nil)

	riskRepo.On("AggregateInspections", mock.Anything, WatchlistMinShipments).Return([]repository.InspectionAggregate{}, nil)

	_, err := svc.Watchlist(context.Background(), 1)
	require.NoError(t, err)
	riskRepo.AssertCalled(t, "AggregateInspections", mock.Anything, WatchlistMinShipments)
}

func TestBatchRisk_ScoresAndEscalates(t *testing.T) {
	riskRepo := new(MockRiskRecordRepository)
	batchRepo := new(MockBatchRepository)
	svc := NewRiskService(riskRepo, batchRepo)

	ctx := context.Background()
	batchID := uuid.New()
	batch := &model.ImportBatch{
		ID: batchID,
		Items: []model.CargoItem{
			{ID: uuid.New(), HsCode: "8471300000", OriginCountry: "CN"},
			{ID: uuid.New(), HsCode: "", OriginCountry: "CN"}, // unclassified, neutral score
		},
	}

	batchRepo.On("FindByIDWithItems", ctx, batchID).Return(batch, nil)
	// 50% inspection rate: high tier, score 80 + min(20, 50-30) = 100.
	riskRepo.On("ListInspections", ctx, "8471300000", "CN").Return(inspections(10, 5, 0, 0), nil)

	res, err := svc.BatchRisk(ctx, batchID.String())
	require.NoError(t, err)

	assert.Equal(t, 2, res.ItemCount)
	assert.Equal(t, RiskHigh, res.RiskLevel)
	assert.Equal(t, "60.00", res.Score) // mean of 100 and 20

	require.Len(t, res.Items, 2)
	assert.Equal(t, "100.00", res.Items[0].Score)
	assert.Equal(t, RiskHigh, res.Items[0].RiskLevel)
	assert.Equal(t, "20.00", res.Items[1].Score)
	assert.Equal(t, RiskUnknown, res.Items[1].RiskLevel)
}

func TestBatchRisk_EmptyBatch(t *testing.T) {
	riskRepo := new(MockRiskRecordRepository)
	batchRepo := new(MockBatchRepository)
	svc := NewRiskService(riskRepo, batchRepo)

	ctx := context.Background()
	batchID := uuid.New()
	batchRepo.On("FindByIDWithItems", ctx, batchID).Return(&model.ImportBatch{ID: batchID}, nil)

	res, err := svc.BatchRisk(ctx, batchID.String())
	require.NoError(t, err)

	assert.Equal(t, 0, res.ItemCount)
	assert.Equal(t, "0.00", res.Score)
	assert.Equal(t, RiskLow, res.RiskLevel)
}

func TestRecordDeclaration_Validation(t *testing.T) {
	riskRepo := new(MockRiskRecordRepository)
	svc := NewRiskService(riskRepo, nil)
	ctx := context.Background()

	err := svc.RecordDeclaration(ctx, RecordDeclarationRequest{
		HsCode: "8471300000", OriginCountry: "CN", DeclaredPrice: "-5", Outcome: model.DeclarationPassed,
	})
	assert.ErrorContains(t, err, "must be positive")

	err = svc.RecordDeclaration(ctx, RecordDeclarationRequest{
		HsCode: "8471300000", OriginCountry: "CN", DeclaredPrice: "100", Outcome: model.DeclarationPassed, DeclaredAt: "29-08-2026",
	})
	assert.ErrorContains(t, err, "declared_at")

	riskRepo.On("CreateDeclaration", ctx, mock.Anything).Return(nil)
	err = svc.RecordDeclaration(ctx, RecordDeclarationRequest{
		HsCode: "8471.30.0000", OriginCountry: "CN", DeclaredPrice: "100", Outcome: model.DeclarationPassed, DeclaredAt: "2026-08-29",
	})
	require.NoError(t, err)

	rec := riskRepo.Calls[0].Arguments.Get(1).(*model.DeclarationValueRecord)
	assert.Equal(t, "8471300000", rec.HsCode)
}

func TestRecordInspection_Validation(t *testing.T) {
	riskRepo := new(MockRiskRecordRepository)
	svc := NewRiskService(riskRepo, nil)
	ctx := context.Background()

	err := svc.RecordInspection(ctx, RecordInspectionRequest{
		HsCode: "8471300000", OriginCountry: "CN", Inspected: true,
	})
	assert.ErrorContains(t, err, "inspection_type")

	err = svc.RecordInspection(ctx, RecordInspectionRequest{
		HsCode: "8471300000", OriginCountry: "CN", DelayDays: -1,
	})
	assert.ErrorContains(t, err, "delay_days")

	riskRepo.On("CreateInspection", ctx, mock.Anything).Return(nil)
	err = svc.RecordInspection(ctx, RecordInspectionRequest{
		HsCode: "8471300000", OriginCountry: "CN", Inspected: true, InspectionType: model.InspectionPhysical, Outcome: model.InspectionPass,
	})
	require.NoError(t, err)
}
