package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateCargoItemRequest struct {
	ProductName   string `json:"product_name" binding:"required"`
	Material      string `json:"material"`
	Quantity      string `json:"quantity" binding:"required"`
	Unit          string `json:"unit"`
	UnitPrice     string `json:"unit_price" binding:"required"`
	CustomsValue  string `json:"customs_value"` // defaults to quantity * unit_price
	OriginCountry string `json:"origin_country"`
	SuppliedCode  string `json:"supplied_code"`
}

type CreateBatchRequest struct {
	ClearanceType string                   `json:"clearance_type" binding:"omitempty,oneof=STANDARD DEFERRED"`
	Items         []CreateCargoItemRequest `json:"items" binding:"required,min=1,dive"`
}

type BatchResponse struct {
	ID            string              `json:"id"`
	BatchNo       string              `json:"batch_no"`
	Status        string              `json:"status"`
	ClearanceType string              `json:"clearance_type"`
	TotalValue    string              `json:"total_value"`
	TotalDuty     string              `json:"total_duty"`
	TotalVat      string              `json:"total_vat"`
	TotalOtherTax string              `json:"total_other_tax"`
	TotalTax      string              `json:"total_tax"`
	Items         []CargoItemResponse `json:"items,omitempty"`
	CreatedAt     string              `json:"created_at"`
}

// --- Interface ---

type BatchService interface {
	CreateBatch(ctx context.Context, req CreateBatchRequest) (BatchResponse, error)
	GetBatch(ctx context.Context, id string) (BatchResponse, error)
	ListBatches(ctx context.Context, page, limit int) ([]BatchResponse, int64, error)
}

type batchService struct {
	batchRepo repository.BatchRepository
}

func NewBatchService(batchRepo repository.BatchRepository) BatchService {
	return &batchService{batchRepo: batchRepo}
}

// --- Implementation ---

func (s *batchService) CreateBatch(ctx context.Context, req CreateBatchRequest) (BatchResponse, error) {
	clearance := req.ClearanceType
	if clearance == "" {
		clearance = model.ClearanceStandard
	}

	batch := model.ImportBatch{
		BatchNo:       generateBatchNo(),
		Status:        model.BatchStatusDraft,
		ClearanceType: clearance,
	}

	totalValue := decimal.Zero
	for i, itemReq := range req.Items {
		item, err := parseCargoItem(itemReq)
		if err != nil {
			return BatchResponse{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		totalValue = totalValue.Add(item.CustomsValue)
		batch.Items = append(batch.Items, item)
	}
	batch.TotalValue = totalValue.Round(2)

	if err := s.batchRepo.Create(ctx, &batch); err != nil {
		return BatchResponse{}, fmt.Errorf("failed to create batch: %w", err)
	}

	return toBatchResponse(&batch, true), nil
}

func (s *batchService) GetBatch(ctx context.Context, id string) (BatchResponse, error) {
	batchID, err := uuid.Parse(id)
	if err != nil {
		return BatchResponse{}, fmt.Errorf("invalid batch id: %w", err)
	}

	batch, err := s.batchRepo.FindByIDWithItems(ctx, batchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BatchResponse{}, fmt.Errorf("import batch not found")
		}
		return BatchResponse{}, fmt.Errorf("failed to fetch batch: %w", err)
	}

	return toBatchResponse(batch, true), nil
}

func (s *batchService) ListBatches(ctx context.Context, page, limit int) ([]BatchResponse, int64, error) {
	batches, total, err := s.batchRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list batches: %w", err)
	}

	res := make([]BatchResponse, 0, len(batches))
	for i := range batches {
		res = append(res, toBatchResponse(&batches[i], false))
	}
	return res, total, nil
}

// --- Helpers ---

func parseCargoItem(req CreateCargoItemRequest) (model.CargoItem, error) {
	var item model.CargoItem

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		return item, fmt.Errorf("invalid quantity: %w", err)
	}
	if !quantity.IsPositive() {
		return item, fmt.Errorf("invalid quantity: must be positive")
	}

	unitPrice, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		return item, fmt.Errorf("invalid unit_price: %w", err)
	}
	if unitPrice.IsNegative() {
		return item, fmt.Errorf("invalid unit_price: must not be negative")
	}

	customsValue := quantity.Mul(unitPrice)
	if req.CustomsValue != "" {
		customsValue, err = decimal.NewFromString(req.CustomsValue)
		if err != nil {
			return item, fmt.Errorf("invalid customs_value: %w", err)
		}
		if !customsValue.IsPositive() {
			return item, fmt.Errorf("invalid customs_value: must be positive")
		}
	}

	item = model.CargoItem{
		ProductName:   strings.TrimSpace(req.ProductName),
		Material:      strings.TrimSpace(req.Material),
		Quantity:      quantity,
		Unit:          req.Unit,
		UnitPrice:     unitPrice,
		CustomsValue:  customsValue.Round(2),
		OriginCountry: strings.TrimSpace(req.OriginCountry),
		SuppliedCode:  strings.TrimSpace(req.SuppliedCode),
		MatchStatus:   model.MatchStatusPending,
	}
	return item, nil
}

func generateBatchNo() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("IMB-%s-%s", time.Now().Format("20060102"), suffix)
}

func toBatchResponse(batch *model.ImportBatch, withItems bool) BatchResponse {
	res := BatchResponse{
		ID:            batch.ID.String(),
		BatchNo:       batch.BatchNo,
		Status:        batch.Status,
		ClearanceType: batch.ClearanceType,
		TotalValue:    batch.TotalValue.StringFixed(2),
		TotalDuty:     batch.TotalDuty.StringFixed(2),
		TotalVat:      batch.TotalVat.StringFixed(2),
		TotalOtherTax: batch.TotalOtherTax.StringFixed(2),
		TotalTax:      batch.TotalTax.StringFixed(2),
		CreatedAt:     batch.CreatedAt.Format(time.RFC3339),
	}
	if withItems {
		for i := range batch.Items {
			res.Items = append(res.Items, toCargoItemResponse(&batch.Items[i]))
		}
	}
	return res
}
