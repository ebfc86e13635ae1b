package service

import (
	"context"
	"errors"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/hscode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var hundred = decimal.NewFromInt(100)

// --- Cascade ---

// TaxInput carries the customs (CIF) value and the ad valorem rates, all
// rates expressed as percentages.
type TaxInput struct {
	CustomsValue       decimal.Decimal
	DutyRate           decimal.Decimal
	VatRate            decimal.Decimal
	AntiDumpingRate    decimal.Decimal
	CountervailingRate decimal.Decimal
}

// TaxBreakdown is the full cascade result, every amount rounded half-up to
// 2 decimal places.
type TaxBreakdown struct {
	Duty           decimal.Decimal
	AntiDumping    decimal.Decimal
	Countervailing decimal.Decimal
	OtherTax       decimal.Decimal
	VatBase        decimal.Decimal
	Vat            decimal.Decimal
	TotalTax       decimal.Decimal
}

// ComputeTax applies the fixed import tax cascade. VAT is charged on the
// customs value plus duty and punitive tariffs (the VAT base). Intermediate
// values stay unrounded so rounding error never compounds; only the outputs
// are rounded.
func ComputeTax(in TaxInput) TaxBreakdown {
	duty := in.CustomsValue.Mul(in.DutyRate).Div(hundred)
	antiDumping := in.CustomsValue.Mul(in.AntiDumpingRate).Div(hundred)
	countervailing := in.CustomsValue.Mul(in.CountervailingRate).Div(hundred)
	otherTax := antiDumping.Add(countervailing)
	vatBase := in.CustomsValue.Add(duty).Add(otherTax)
	vat := vatBase.Mul(in.VatRate).Div(hundred)
	totalTax := duty.Add(vat).Add(otherTax)

	return TaxBreakdown{
		Duty:           duty.Round(2),
		AntiDumping:    antiDumping.Round(2),
		Countervailing: countervailing.Round(2),
		OtherTax:       otherTax.Round(2),
		VatBase:        vatBase.Round(2),
		Vat:            vat.Round(2),
		TotalTax:       totalTax.Round(2),
	}
}

// ClearanceSummary splits the computed VAT into the part payable at import
// time and the part accounted for later. Duty and punitive tariffs are
// payable regardless of clearance type.
type ClearanceSummary struct {
	PayableVat   decimal.Decimal
	DeferredVat  decimal.Decimal
	PayableTotal decimal.Decimal
}

// ApplyClearance derives the payable/deferred split for a breakdown.
func ApplyClearance(b TaxBreakdown, clearanceType string) ClearanceSummary {
	if clearanceType == model.ClearanceDeferred {
		return ClearanceSummary{
			PayableVat:   decimal.Zero.Round(2),
			DeferredVat:  b.Vat,
			PayableTotal: b.Duty.Add(b.OtherTax),
		}
	}
	return ClearanceSummary{
		PayableVat:   b.Vat,
		DeferredVat:  decimal.Zero.Round(2),
		PayableTotal: b.TotalTax,
	}
}

// --- DTOs ---

type ComputeTaxRequest struct {
	CustomsValue       string `json:"customs_value" binding:"required"`
	DutyRate           string `json:"duty_rate" binding:"required"`
	VatRate            string `json:"vat_rate" binding:"required"`
	AntiDumpingRate    string `json:"anti_dumping_rate"`
	CountervailingRate string `json:"countervailing_rate"`
	ClearanceType      string `json:"clearance_type" binding:"omitempty,oneof=STANDARD DEFERRED"`
}

type TaxBreakdownResponse struct {
	Duty           string `json:"duty"`
	AntiDumping    string `json:"anti_dumping"`
	Countervailing string `json:"countervailing"`
	OtherTax       string `json:"other_tax"`
	VatBase        string `json:"vat_base"`
	Vat            string `json:"vat"`
	TotalTax       string `json:"total_tax"`
	PayableVat     string `json:"payable_vat"`
	DeferredVat    string `json:"deferred_vat"`
	PayableTotal   string `json:"payable_total"`
}

// RecomputeItemRequest edits an item's classification and recomputes its
// taxes. A code edit triggers a fresh catalog lookup; rate overrides take
// precedence over the looked-up rate field by field.
type RecomputeItemRequest struct {
	Code               string  `json:"code"`
	DutyRate           *string `json:"duty_rate"`
	VatRate            *string `json:"vat_rate"`
	AntiDumpingRate    *string `json:"anti_dumping_rate"`
	CountervailingRate *string `json:"countervailing_rate"`
}

type ItemTaxResponse struct {
	ItemID       string `json:"item_id"`
	HsCode       string `json:"hs_code"`
	CustomsValue string `json:"customs_value"`
	Duty         string `json:"duty"`
	Vat          string `json:"vat"`
	DeferredVat  string `json:"deferred_vat"`
	OtherTax     string `json:"other_tax"`
	TotalTax     string `json:"total_tax"`
	Error        string `json:"error,omitempty"`
}

type BatchTaxResponse struct {
	BatchID       string            `json:"batch_id"`
	ClearanceType string            `json:"clearance_type"`
	ItemCount     int               `json:"item_count"`
	TotalValue    string            `json:"total_value"`
	TotalDuty     string            `json:"total_duty"`
	TotalVat      string            `json:"total_vat"`
	PayableVat    string            `json:"payable_vat"`
	DeferredVat   string            `json:"deferred_vat"`
	TotalOtherTax string            `json:"total_other_tax"`
	TotalTax      string            `json:"total_tax"`
	Items         []ItemTaxResponse `json:"items"`
}

// --- Interface ---

type TaxService interface {
	Compute(req ComputeTaxRequest) (TaxBreakdownResponse, error)
	RecomputeItem(ctx context.Context, itemID string, req RecomputeItemRequest, userID string) (ItemTaxResponse, error)
	ComputeBatch(ctx context.Context, batchID string, userID string) (BatchTaxResponse, error)
}

type taxService struct {
	batchRepo  repository.BatchRepository
	tariffRepo repository.TariffRateRepository
	auditRepo  repository.AuditRepository
	translator CountryTranslator
}

func NewTaxService(
	batchRepo repository.BatchRepository,
	tariffRepo repository.TariffRateRepository,
	auditRepo repository.AuditRepository,
	translator CountryTranslator,
) TaxService {
	return &taxService{
		batchRepo:  batchRepo,
		tariffRepo: tariffRepo,
		auditRepo:  auditRepo,
		translator: translator,
	}
}

// --- Implementation ---

func (s *taxService) Compute(req ComputeTaxRequest) (TaxBreakdownResponse, error) {
	in, err := parseTaxInput(req)
	if err != nil {
		return TaxBreakdownResponse{}, err
	}

	clearance := req.ClearanceType
	if clearance == "" {
		clearance = model.ClearanceStandard
	}

	breakdown := ComputeTax(in)
	summary := ApplyClearance(breakdown, clearance)

	return toTaxBreakdownResponse(breakdown, summary), nil
}

func (s *taxService) RecomputeItem(ctx context.Context, itemID string, req RecomputeItemRequest, userID string) (ItemTaxResponse, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return ItemTaxResponse{}, fmt.Errorf("invalid item id: %w", err)
	}

	item, err := s.batchRepo.FindItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ItemTaxResponse{}, fmt.Errorf("cargo item not found")
		}
		return ItemTaxResponse{}, fmt.Errorf("failed to fetch cargo item: %w", err)
	}

	batch, err := s.batchRepo.FindByIDWithItems(ctx, item.BatchID)
	if err != nil {
		return ItemTaxResponse{}, fmt.Errorf("failed to fetch batch: %w", err)
	}

	code := item.HsCode
	if req.Code != "" {
		if !hscode.HasDigits(req.Code) {
			return ItemTaxResponse{}, fmt.Errorf("invalid code: no digits in %q", req.Code)
		}
		code = hscode.Normalize(req.Code)
	}
	if code == "" {
		return ItemTaxResponse{}, fmt.Errorf("cargo item has no classification code")
	}

	// Fresh rate lookup; individual overrides win field by field.
	origin := s.translator.Translate(ctx, item.OriginCountry)
	rate, err := s.tariffRepo.FindBest(ctx, code, origin)
	if err != nil {
		return ItemTaxResponse{}, fmt.Errorf("tariff lookup failed: %w", err)
	}

	in := TaxInput{CustomsValue: item.CustomsValue}
	if rate != nil {
		in.DutyRate = rate.DutyRate
		in.VatRate = rate.VatRate
		in.AntiDumpingRate = rate.AntiDumpingRate
		in.CountervailingRate = rate.CountervailingRate
	} else if req.DutyRate == nil && req.VatRate == nil && req.AntiDumpingRate == nil && req.CountervailingRate == nil {
		return ItemTaxResponse{}, fmt.Errorf("no catalog rate for code %s", code)
	}

	if err := applyRateOverrides(&in, req); err != nil {
		return ItemTaxResponse{}, err
	}

	breakdown := ComputeTax(in)
	summary := ApplyClearance(breakdown, batch.ClearanceType)

	item.HsCode = code
	applyBreakdownToItem(item, breakdown, summary)

	if err := s.batchRepo.UpdateItem(ctx, item); err != nil {
		return ItemTaxResponse{}, fmt.Errorf("failed to update cargo item: %w", err)
	}

	writeAudit(ctx, s.auditRepo, userID, model.ActionRecomputeItem, item.ID.String(), item.ProductName, req)

	return toItemTaxResponse(item), nil
}

func (s *taxService) ComputeBatch(ctx context.Context, batchID string, userID string) (BatchTaxResponse, error) {
	id, err := uuid.Parse(batchID)
	if err != nil {
		return BatchTaxResponse{}, fmt.Errorf("invalid batch id: %w", err)
	}

	batch, err := s.batchRepo.FindByIDWithItems(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BatchTaxResponse{}, fmt.Errorf("import batch not found")
		}
		return BatchTaxResponse{}, fmt.Errorf("failed to fetch batch: %w", err)
	}

	res := BatchTaxResponse{
		BatchID:       batch.ID.String(),
		ClearanceType: batch.ClearanceType,
	}

	totalValue := decimal.Zero
	totalDuty := decimal.Zero
	totalVat := decimal.Zero
	payableVat := decimal.Zero
	deferredVat := decimal.Zero
	totalOther := decimal.Zero
	totalTax := decimal.Zero

	for i := range batch.Items {
		item := &batch.Items[i]
		if item.MatchStatus != model.MatchStatusAutoApproved && item.MatchStatus != model.MatchStatusApproved {
			continue
		}

		itemRes, computeErr := s.computeOneItem(ctx, item, batch.ClearanceType)
		if computeErr != nil {
			// Fatal for this item only; the batch keeps going.
			itemRes = toItemTaxResponse(item)
			itemRes.Error = computeErr.Error()
			res.Items = append(res.Items, itemRes)
			continue
		}

		totalValue = totalValue.Add(item.CustomsValue)
		totalDuty = totalDuty.Add(item.Duty)
		totalVat = totalVat.Add(item.Vat).Add(item.DeferredVat)
		payableVat = payableVat.Add(item.Vat)
		deferredVat = deferredVat.Add(item.DeferredVat)
		totalOther = totalOther.Add(item.OtherTax)
		totalTax = totalTax.Add(item.TotalTax)

		res.ItemCount++
		res.Items = append(res.Items, itemRes)
	}

	// Derived, never authoritative: always re-sums the current items.
	batch.TotalValue = totalValue.Round(2)
	batch.TotalDuty = totalDuty.Round(2)
	batch.TotalVat = totalVat.Round(2)
	batch.TotalOtherTax = totalOther.Round(2)
	batch.TotalTax = totalTax.Round(2)
	batch.Status = model.BatchStatusComputed
	if err := s.batchRepo.UpdateBatch(ctx, batch); err != nil {
		return BatchTaxResponse{}, fmt.Errorf("failed to update batch totals: %w", err)
	}

	res.TotalValue = batch.TotalValue.StringFixed(2)
	res.TotalDuty = batch.TotalDuty.StringFixed(2)
	res.TotalVat = batch.TotalVat.StringFixed(2)
	res.PayableVat = payableVat.Round(2).StringFixed(2)
	res.DeferredVat = deferredVat.Round(2).StringFixed(2)
	res.TotalOtherTax = batch.TotalOtherTax.StringFixed(2)
	res.TotalTax = batch.TotalTax.StringFixed(2)

	writeAudit(ctx, s.auditRepo, userID, model.ActionComputeBatch, batch.ID.String(), batch.BatchNo,
		map[string]interface{}{"item_count": res.ItemCount, "total_tax": res.TotalTax})

	return res, nil
}

// computeOneItem resolves the item's current rates and persists its breakdown.
func (s *taxService) computeOneItem(ctx context.Context, item *model.CargoItem, clearanceType string) (ItemTaxResponse, error) {
	if item.HsCode == "" {
		return ItemTaxResponse{}, fmt.Errorf("item has no classification code")
	}

	origin := s.translator.Translate(ctx, item.OriginCountry)
	rate, err := s.tariffRepo.FindBest(ctx, item.HsCode, origin)
	if err != nil {
		return ItemTaxResponse{}, fmt.Errorf("tariff lookup failed: %w", err)
	}
	if rate == nil {
		return ItemTaxResponse{}, fmt.Errorf("no catalog rate for code %s", item.HsCode)
	}

	breakdown := ComputeTax(TaxInput{
		CustomsValue:       item.CustomsValue,
		DutyRate:           rate.DutyRate,
		VatRate:            rate.VatRate,
		AntiDumpingRate:    rate.AntiDumpingRate,
		CountervailingRate: rate.CountervailingRate,
	})
	summary := ApplyClearance(breakdown, clearanceType)
	applyBreakdownToItem(item, breakdown, summary)

	if err := s.batchRepo.UpdateItem(ctx, item); err != nil {
		return ItemTaxResponse{}, fmt.Errorf("failed to persist item taxes: %w", err)
	}
	return toItemTaxResponse(item), nil
}

// --- Helpers ---

func parseTaxInput(req ComputeTaxRequest) (TaxInput, error) {
	var in TaxInput
	var err error

	if in.CustomsValue, err = decimal.NewFromString(req.CustomsValue); err != nil {
		return in, fmt.Errorf("invalid customs_value: %w", err)
	}
	if in.DutyRate, err = decimal.NewFromString(req.DutyRate); err != nil {
		return in, fmt.Errorf("invalid duty_rate: %w", err)
	}
	if in.VatRate, err = decimal.NewFromString(req.VatRate); err != nil {
		return in, fmt.Errorf("invalid vat_rate: %w", err)
	}
	if req.AntiDumpingRate != "" {
		if in.AntiDumpingRate, err = decimal.NewFromString(req.AntiDumpingRate); err != nil {
			return in, fmt.Errorf("invalid anti_dumping_rate: %w", err)
		}
	}
	if req.CountervailingRate != "" {
		if in.CountervailingRate, err = decimal.NewFromString(req.CountervailingRate); err != nil {
			return in, fmt.Errorf("invalid countervailing_rate: %w", err)
		}
	}
	return in, nil
}

func applyRateOverrides(in *TaxInput, req RecomputeItemRequest) error {
	var err error
	if req.DutyRate != nil {
		if in.DutyRate, err = decimal.NewFromString(*req.DutyRate); err != nil {
			return fmt.Errorf("invalid duty_rate: %w", err)
		}
	}
	if req.VatRate != nil {
		if in.VatRate, err = decimal.NewFromString(*req.VatRate); err != nil {
			return fmt.Errorf("invalid vat_rate: %w", err)
		}
	}
	if req.AntiDumpingRate != nil {
		if in.AntiDumpingRate, err = decimal.NewFromString(*req.AntiDumpingRate); err != nil {
			return fmt.Errorf("invalid anti_dumping_rate: %w", err)
		}
	}
	if req.CountervailingRate != nil {
		if in.CountervailingRate, err = decimal.NewFromString(*req.CountervailingRate); err != nil {
			return fmt.Errorf("invalid countervailing_rate: %w", err)
		}
	}
	return nil
}

func applyBreakdownToItem(item *model.CargoItem, b TaxBreakdown, s ClearanceSummary) {
	item.Duty = b.Duty
	item.Vat = s.PayableVat
	item.DeferredVat = s.DeferredVat
	item.OtherTax = b.OtherTax
	item.TotalTax = b.TotalTax
}

func toItemTaxResponse(item *model.CargoItem) ItemTaxResponse {
	return ItemTaxResponse{
		ItemID:       item.ID.String(),
		HsCode:       item.HsCode,
		CustomsValue: item.CustomsValue.StringFixed(2),
		Duty:         item.Duty.StringFixed(2),
		Vat:          item.Vat.StringFixed(2),
		DeferredVat:  item.DeferredVat.StringFixed(2),
		OtherTax:     item.OtherTax.StringFixed(2),
		TotalTax:     item.TotalTax.StringFixed(2),
	}
}

func toTaxBreakdownResponse(b TaxBreakdown, s ClearanceSummary) TaxBreakdownResponse {
	return TaxBreakdownResponse{
		Duty:           b.Duty.StringFixed(2),
		AntiDumping:    b.AntiDumping.StringFixed(2),
		Countervailing: b.Countervailing.StringFixed(2),
		OtherTax:       b.OtherTax.StringFixed(2),
		VatBase:        b.VatBase.StringFixed(2),
		Vat:            b.Vat.StringFixed(2),
		TotalTax:       b.TotalTax.StringFixed(2),
		PayableVat:     s.PayableVat.StringFixed(2),
		DeferredVat:    s.DeferredVat.StringFixed(2),
		PayableTotal:   s.PayableTotal.StringFixed(2),
	}
}
