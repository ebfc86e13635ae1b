package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/hscode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Risk tiers
const (
	RiskHigh    = "high"
	RiskMedium  = "medium"
	RiskLow     = "low"
	RiskUnknown = "unknown"
)

// Inspection-rate thresholds (percent).
var (
	inspectionHighRate     = decimal.NewFromInt(30)
	physicalHighRate       = decimal.NewFromInt(20)
	inspectionMediumRate   = decimal.NewFromInt(15)
	physicalMediumRate     = decimal.NewFromInt(10)
	passRateMediumFloor    = decimal.NewFromInt(70)
	avgPriceMediumFraction = decimal.NewFromFloat(0.7)
	safetyMargin           = decimal.NewFromFloat(0.95)
)

// Batch risk scoring.
var (
	scoreHighBase     = decimal.NewFromInt(80)
	scoreMediumBase   = decimal.NewFromInt(40)
	scoreLowFloor     = decimal.NewFromInt(10)
	scoreUnscored     = decimal.NewFromInt(20)
	scoreCeiling      = decimal.NewFromInt(100)
	highScoreHeadroom = decimal.NewFromInt(20)
)

// WatchlistMinShipments is the minimum population size for a (code, origin)
// pair to be eligible for the high-inspection-rate watchlist.
const WatchlistMinShipments = 3

// --- DTOs ---

type DeclaredValueStats struct {
	TotalCount      int    `json:"totalCount"`
	PassCount       int    `json:"passCount"`
	QuestionedCount int    `json:"questionedCount"`
	RejectedCount   int    `json:"rejectedCount"`
	PassRate        string `json:"passRate"` // percent
	MinPassPrice    string `json:"minPassPrice"`
	MaxPassPrice    string `json:"maxPassPrice"`
	AvgPassPrice    string `json:"avgPassPrice"`
	P10PassPrice    string `json:"p10PassPrice"`
	P25PassPrice    string `json:"p25PassPrice"`
}

type DeclaredValueRiskResponse struct {
	Found             bool                `json:"found"`
	Stats             *DeclaredValueStats `json:"stats,omitempty"`
	SuggestedMinPrice string              `json:"suggestedMinPrice,omitempty"`
	RiskLevel         string              `json:"riskLevel"`
	Message           string              `json:"message,omitempty"`
}

type InspectionRiskResponse struct {
	Found          bool   `json:"found"`
	TotalShipments int    `json:"totalShipments"`
	InspectedCount int    `json:"inspectedCount"`
	PhysicalCount  int    `json:"physicalCount"`
	PassedCount    int    `json:"passedCount"`
	FailedCount    int    `json:"failedCount"`
	InspectionRate string `json:"inspectionRate"` // percent
	PhysicalRate   string `json:"physicalRate"`   // percent
	TotalPenalties string `json:"totalPenalties"`
	AvgDelayDays   string `json:"avgDelayDays"`
	MaxDelayDays   int    `json:"maxDelayDays"`
	RiskLevel      string `json:"riskLevel"`
	Message        string `json:"message,omitempty"`
}

type WatchlistEntry struct {
	HsCode         string `json:"hs_code"`
	OriginCountry  string `json:"origin_country"`
	TotalShipments int64  `json:"total_shipments"`
	InspectionRate string `json:"inspection_rate"`
	PhysicalRate   string `json:"physical_rate"`
}

type ItemRiskResponse struct {
	ItemID         string `json:"item_id"`
	HsCode         string `json:"hs_code"`
	OriginCountry  string `json:"origin_country"`
	InspectionRate string `json:"inspection_rate,omitempty"`
	RiskLevel      string `json:"risk_level"`
	Score          string `json:"score"`
}

type BatchRiskResponse struct {
	BatchID   string             `json:"batch_id"`
	ItemCount int                `json:"item_count"`
	Score     string             `json:"score"` // arithmetic mean over items
	RiskLevel string             `json:"risk_level"`
	Items     []ItemRiskResponse `json:"items"`
}

type RecordDeclarationRequest struct {
	HsCode        string `json:"hs_code" binding:"required"`
	OriginCountry string `json:"origin_country" binding:"required"`
	Unit          string `json:"unit"`
	DeclaredPrice string `json:"declared_price" binding:"required"`
	Outcome       string `json:"outcome" binding:"required,oneof=PASSED QUESTIONED REJECTED"`
	DeclaredAt    string `json:"declared_at"` // YYYY-MM-DD, defaults to today
}

type RecordInspectionRequest struct {
	HsCode         string `json:"hs_code" binding:"required"`
	OriginCountry  string `json:"origin_country" binding:"required"`
	Inspected      bool   `json:"inspected"`
	InspectionType string `json:"inspection_type" binding:"omitempty,oneof=DOCUMENT PHYSICAL"`
	Outcome        string `json:"outcome" binding:"omitempty,oneof=PASSED FAILED"`
	PenaltyAmount  string `json:"penalty_amount"`
	DelayDays      int    `json:"delay_days"`
}

// --- Interface ---

type RiskService interface {
	// DeclaredValueRisk classifies a proposed declared price against the
	// historical population for (code, origin[, unit]).
	DeclaredValueRisk(ctx context.Context, code, origin, unit, proposedPrice string) (DeclaredValueRiskResponse, error)
	InspectionRisk(ctx context.Context, code, origin string) (InspectionRiskResponse, error)
	Watchlist(ctx context.Context, minShipments int) ([]WatchlistEntry, error)
	BatchRisk(ctx context.Context, batchID string) (BatchRiskResponse, error)
	RecordDeclaration(ctx context.Context, req RecordDeclarationRequest) error
	RecordInspection(ctx context.Context, req RecordInspectionRequest) error
}

type riskService struct {
	riskRepo  repository.RiskRecordRepository
	batchRepo repository.BatchRepository
}

func NewRiskService(riskRepo repository.RiskRecordRepository, batchRepo repository.BatchRepository) RiskService {
	return &riskService{riskRepo: riskRepo, batchRepo: batchRepo}
}

// --- Implementation ---

func (s *riskService) DeclaredValueRisk(ctx context.Context, code, origin, unit, proposedPrice string) (DeclaredValueRiskResponse, error) {
	price, err := decimal.NewFromString(proposedPrice)
	if err != nil {
		return DeclaredValueRiskResponse{}, fmt.Errorf("invalid proposed_price: %w", err)
	}

	recs, err := s.riskRepo.ListDeclarations(ctx, hscode.Normalize(code), origin, unit)
	if err != nil {
		return DeclaredValueRiskResponse{}, fmt.Errorf("failed to load declaration history: %w", err)
	}
	if len(recs) == 0 {
		// Never default to a risk tier without data.
		return DeclaredValueRiskResponse{
			Found:     false,
			RiskLevel: RiskUnknown,
			Message:   "no historical data for this code and origin",
		}, nil
	}

	pop := buildDeclaredValuePopulation(recs)
	level := classifyDeclaredPrice(price, pop)

	return DeclaredValueRiskResponse{
		Found:             true,
		Stats:             pop.toStats(),
		SuggestedMinPrice: pop.suggestedMinPrice().StringFixed(2),
		RiskLevel:         level,
	}, nil
}

func (s *riskService) InspectionRisk(ctx context.Context, code, origin string) (InspectionRiskResponse, error) {
	recs, err := s.riskRepo.ListInspections(ctx, hscode.Normalize(code), origin)
	if err != nil {
		return InspectionRiskResponse{}, fmt.Errorf("failed to load inspection history: %w", err)
	}
	if len(recs) == 0 {
		return InspectionRiskResponse{
			Found:     false,
			RiskLevel: RiskUnknown,
			Message:   "no historical inspection data for this code and origin",
		}, nil
	}

	st := buildInspectionStats(recs)
	return st.toResponse(), nil
}

func (s *riskService) Watchlist(ctx context.Context, minShipments int) ([]WatchlistEntry, error) {
	if minShipments < WatchlistMinShipments {
		minShipments = WatchlistMinShipments
	}

	groups, err := s.riskRepo.AggregateInspections(ctx, minShipments)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate inspections: %w", err)
	}

	type scoredGroup struct {
		agg repository.InspectionAggregate
		ir  decimal.Decimal
		pr  decimal.Decimal
	}
	kept := make([]scoredGroup, 0)
	for _, g := range groups {
		total := decimal.NewFromInt(g.TotalCount)
		ir := decimal.NewFromInt(g.InspectedCount).Mul(hundred).Div(total)
		pr := decimal.NewFromInt(g.PhysicalCount).Mul(hundred).Div(total)
		if inspectionTier(ir, pr) != RiskHigh {
			continue
		}
		kept = append(kept, scoredGroup{agg: g, ir: ir, pr: pr})
	}
	sort.Slice(kept, func(i, j int) bool {
		return kept[i].ir.GreaterThan(kept[j].ir)
	})

	entries := make([]WatchlistEntry, 0, len(kept))
	for _, g := range kept {
		entries = append(entries, WatchlistEntry{
			HsCode:         g.agg.HsCode,
			OriginCountry:  g.agg.OriginCountry,
			TotalShipments: g.agg.TotalCount,
			InspectionRate: g.ir.Round(2).StringFixed(2),
			PhysicalRate:   g.pr.Round(2).StringFixed(2),
		})
	}
	return entries, nil
}

func (s *riskService) BatchRisk(ctx context.Context, batchID string) (BatchRiskResponse, error) {
	id, err := uuid.Parse(batchID)
	if err != nil {
		return BatchRiskResponse{}, fmt.Errorf("invalid batch id: %w", err)
	}

	batch, err := s.batchRepo.FindByIDWithItems(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BatchRiskResponse{}, fmt.Errorf("import batch not found")
		}
		return BatchRiskResponse{}, fmt.Errorf("failed to fetch batch: %w", err)
	}

	res := BatchRiskResponse{
		BatchID:   batch.ID.String(),
		RiskLevel: RiskLow,
	}

	scoreSum := decimal.Zero
	for i := range batch.Items {
		item := &batch.Items[i]
		itemRisk := s.scoreItem(ctx, item)
		scoreSum = scoreSum.Add(itemRisk.score)
		res.Items = append(res.Items, itemRisk.toResponse(item))

		// Any high-risk item forces batch-high; medium forces at least medium.
		switch itemRisk.level {
		case RiskHigh:
			res.RiskLevel = RiskHigh
		case RiskMedium:
			if res.RiskLevel != RiskHigh {
				res.RiskLevel = RiskMedium
			}
		}
	}

	res.ItemCount = len(batch.Items)
	if res.ItemCount > 0 {
		res.Score = scoreSum.Div(decimal.NewFromInt(int64(res.ItemCount))).Round(2).StringFixed(2)
	} else {
		res.Score = "0.00"
	}

	return res, nil
}

func (s *riskService) RecordDeclaration(ctx context.Context, req RecordDeclarationRequest) error {
	price, err := decimal.NewFromString(req.DeclaredPrice)
	if err != nil {
		return fmt.Errorf("invalid declared_price: %w", err)
	}
	if !price.IsPositive() {
		return fmt.Errorf("invalid declared_price: must be positive")
	}

	declaredAt := time.Now()
	if req.DeclaredAt != "" {
		declaredAt, err = time.Parse("2006-01-02", req.DeclaredAt)
		if err != nil {
			return fmt.Errorf("invalid declared_at date format (expected YYYY-MM-DD): %w", err)
		}
	}

	rec := model.DeclarationValueRecord{
		HsCode:        hscode.Normalize(req.HsCode),
		OriginCountry: req.OriginCountry,
		Unit:          req.Unit,
		DeclaredPrice: price,
		Outcome:       req.Outcome,
		DeclaredAt:    declaredAt,
	}
	if err := s.riskRepo.CreateDeclaration(ctx, &rec); err != nil {
		return fmt.Errorf("failed to record declaration: %w", err)
	}
	return nil
}

func (s *riskService) RecordInspection(ctx context.Context, req RecordInspectionRequest) error {
	penalty := decimal.Zero
	if req.PenaltyAmount != "" {
		var err error
		penalty, err = decimal.NewFromString(req.PenaltyAmount)
		if err != nil {
			return fmt.Errorf("invalid penalty_amount: %w", err)
		}
	}
	if req.Inspected && req.InspectionType == "" {
		return fmt.Errorf("invalid inspection_type: required when inspected")
	}
	if req.DelayDays < 0 {
		return fmt.Errorf("invalid delay_days: must not be negative")
	}

	rec := model.InspectionRecord{
		HsCode:         hscode.Normalize(req.HsCode),
		OriginCountry:  req.OriginCountry,
		Inspected:      req.Inspected,
		InspectionType: req.InspectionType,
		Outcome:        req.Outcome,
		PenaltyAmount:  penalty,
		DelayDays:      req.DelayDays,
		RecordedAt:     time.Now(),
	}
	if err := s.riskRepo.CreateInspection(ctx, &rec); err != nil {
		return fmt.Errorf("failed to record inspection: %w", err)
	}
	return nil
}

// --- Declared-value statistics ---

type declaredValuePopulation struct {
	totalCount      int
	passCount       int
	questionedCount int
	rejectedCount   int
	passRate        decimal.Decimal // percent
	minPass         decimal.Decimal
	maxPass         decimal.Decimal
	avgPass         decimal.Decimal
	p10Pass         decimal.Decimal
	p25Pass         decimal.Decimal
}

func buildDeclaredValuePopulation(recs []model.DeclarationValueRecord) declaredValuePopulation {
	pop := declaredValuePopulation{totalCount: len(recs)}

	var passed []decimal.Decimal
	sum := decimal.Zero
	for _, r := range recs {
		switch r.Outcome {
		case model.DeclarationPassed:
			pop.passCount++
			passed = append(passed, r.DeclaredPrice)
			sum = sum.Add(r.DeclaredPrice)
		case model.DeclarationQuestioned:
			pop.questionedCount++
		case model.DeclarationRejected:
			pop.rejectedCount++
		}
	}

	pop.passRate = decimal.NewFromInt(int64(pop.passCount)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(pop.totalCount)))

	if pop.passCount > 0 {
		sort.Slice(passed, func(i, j int) bool { return passed[i].LessThan(passed[j]) })
		pop.minPass = passed[0]
		pop.maxPass = passed[len(passed)-1]
		pop.avgPass = sum.Div(decimal.NewFromInt(int64(pop.passCount)))
		pop.p10Pass = percentile(passed, 10)
		pop.p25Pass = percentile(passed, 25)
	}

	return pop
}

// suggestedMinPrice is the statistical safety floor: never below the lowest
// historically accepted price, with a 5% margin under the 10th percentile.
func (p declaredValuePopulation) suggestedMinPrice() decimal.Decimal {
	margin := p.p10Pass.Mul(safetyMargin)
	if p.minPass.GreaterThan(margin) {
		return p.minPass
	}
	return margin
}

// classifyDeclaredPrice applies the tier rules. Lowering the price can only
// raise the tier: every extra condition a lower price satisfies is riskier.
func classifyDeclaredPrice(price decimal.Decimal, p declaredValuePopulation) string {
	if p.passCount == 0 {
		// Questioned/rejected history but nothing ever passed.
		return RiskHigh
	}
	if price.LessThan(p.minPass) {
		return RiskHigh
	}
	if price.LessThan(p.p10Pass) ||
		price.LessThan(p.avgPass.Mul(avgPriceMediumFraction)) ||
		p.passRate.LessThan(passRateMediumFloor) {
		return RiskMedium
	}
	return RiskLow
}

// percentile uses the nearest-rank method over an ascending-sorted slice.
func percentile(sorted []decimal.Decimal, pct int64) decimal.Decimal {
	if len(sorted) == 0 {
		return decimal.Zero
	}
	rank := decimal.NewFromInt(pct).
		Mul(decimal.NewFromInt(int64(len(sorted)))).
		Div(hundred).
		Ceil().
		IntPart()
	idx := int(rank) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func (p declaredValuePopulation) toStats() *DeclaredValueStats {
	return &DeclaredValueStats{
		TotalCount:      p.totalCount,
		PassCount:       p.passCount,
		QuestionedCount: p.questionedCount,
		RejectedCount:   p.rejectedCount,
		PassRate:        p.passRate.Round(2).StringFixed(2),
		MinPassPrice:    p.minPass.StringFixed(2),
		MaxPassPrice:    p.maxPass.StringFixed(2),
		AvgPassPrice:    p.avgPass.Round(2).StringFixed(2),
		P10PassPrice:    p.p10Pass.StringFixed(2),
		P25PassPrice:    p.p25Pass.StringFixed(2),
	}
}

// --- Inspection statistics ---

type inspectionStats struct {
	totalShipments int
	inspectedCount int
	physicalCount  int
	passedCount    int
	failedCount    int
	inspectionRate decimal.Decimal // percent
	physicalRate   decimal.Decimal // percent
	totalPenalties decimal.Decimal
	avgDelayDays   decimal.Decimal
	maxDelayDays   int
}

func buildInspectionStats(recs []model.InspectionRecord) inspectionStats {
	st := inspectionStats{totalShipments: len(recs), totalPenalties: decimal.Zero}

	delaySum := 0
	for _, r := range recs {
		if r.Inspected {
			st.inspectedCount++
			if r.InspectionType == model.InspectionPhysical {
				st.physicalCount++
			}
		}
		switch r.Outcome {
		case model.InspectionPass:
			st.passedCount++
		case model.InspectionFail:
			st.failedCount++
		}
		st.totalPenalties = st.totalPenalties.Add(r.PenaltyAmount)
		delaySum += r.DelayDays
		if r.DelayDays > st.maxDelayDays {
			st.maxDelayDays = r.DelayDays
		}
	}

	total := decimal.NewFromInt(int64(st.totalShipments))
	st.inspectionRate = decimal.NewFromInt(int64(st.inspectedCount)).Mul(hundred).Div(total)
	st.physicalRate = decimal.NewFromInt(int64(st.physicalCount)).Mul(hundred).Div(total)
	st.avgDelayDays = decimal.NewFromInt(int64(delaySum)).Div(total)

	return st
}

func inspectionTier(inspectionRate, physicalRate decimal.Decimal) string {
	if inspectionRate.GreaterThanOrEqual(inspectionHighRate) || physicalRate.GreaterThanOrEqual(physicalHighRate) {
		return RiskHigh
	}
	if inspectionRate.GreaterThanOrEqual(inspectionMediumRate) || physicalRate.GreaterThanOrEqual(physicalMediumRate) {
		return RiskMedium
	}
	return RiskLow
}

func (st inspectionStats) toResponse() InspectionRiskResponse {
	return InspectionRiskResponse{
		Found:          true,
		TotalShipments: st.totalShipments,
		InspectedCount: st.inspectedCount,
		PhysicalCount:  st.physicalCount,
		PassedCount:    st.passedCount,
		FailedCount:    st.failedCount,
		InspectionRate: st.inspectionRate.Round(2).StringFixed(2),
		PhysicalRate:   st.physicalRate.Round(2).StringFixed(2),
		TotalPenalties: st.totalPenalties.Round(2).StringFixed(2),
		AvgDelayDays:   st.avgDelayDays.Round(2).StringFixed(2),
		MaxDelayDays:   st.maxDelayDays,
		RiskLevel:      inspectionTier(st.inspectionRate, st.physicalRate),
	}
}

// --- Batch risk scoring ---

type itemRisk struct {
	level          string
	score          decimal.Decimal
	inspectionRate *decimal.Decimal
}

// scoreItem derives a contribution score from the item's inspection history.
// Items that cannot be scored default to a neutral 20.
func (s *riskService) scoreItem(ctx context.Context, item *model.CargoItem) itemRisk {
	if item.HsCode == "" {
		return itemRisk{level: RiskUnknown, score: scoreUnscored}
	}

	recs, err := s.riskRepo.ListInspections(ctx, item.HsCode, item.OriginCountry)
	if err != nil || len(recs) == 0 {
		return itemRisk{level: RiskUnknown, score: scoreUnscored}
	}

	st := buildInspectionStats(recs)
	level := inspectionTier(st.inspectionRate, st.physicalRate)

	var score decimal.Decimal
	switch level {
	case RiskHigh:
		overshoot := st.inspectionRate.Sub(inspectionHighRate)
		if overshoot.IsNegative() {
			overshoot = decimal.Zero
		}
		if overshoot.GreaterThan(highScoreHeadroom) {
			overshoot = highScoreHeadroom
		}
		score = scoreHighBase.Add(overshoot)
	case RiskMedium:
		score = scoreMediumBase.Add(st.inspectionRate)
	default:
		score = st.inspectionRate
		if score.LessThan(scoreLowFloor) {
			score = scoreLowFloor
		}
	}
	if score.GreaterThan(scoreCeiling) {
		score = scoreCeiling
	}

	return itemRisk{level: level, score: score, inspectionRate: &st.inspectionRate}
}

func (ir itemRisk) toResponse(item *model.CargoItem) ItemRiskResponse {
	res := ItemRiskResponse{
		ItemID:        item.ID.String(),
		HsCode:        item.HsCode,
		OriginCountry: item.OriginCountry,
		RiskLevel:     ir.level,
		Score:         ir.score.Round(2).StringFixed(2),
	}
	if ir.inspectionRate != nil {
		res.InspectionRate = ir.inspectionRate.Round(2).StringFixed(2)
	}
	return res
}
