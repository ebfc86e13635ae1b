package service

import (
	"context"
	"errors"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/hscode"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Confidence calibration per matching tier.
const (
	ConfidenceExact   = 100
	ConfidencePrefix8 = 90
	ConfidencePrefix6 = 80
	ConfidenceFuzzy   = 60

	// History matches start at HistoryBase and gain HistoryStep per prior
	// confirmation, capped at HistoryCap — below the auto-approval line, so
	// repeated history alone never auto-approves.
	HistoryBase = 70
	HistoryStep = 5
	HistoryCap  = 85

	AutoApproveThreshold = 90
)

// Review decision constants
const (
	DecisionApprove = "APPROVE"
	DecisionReject  = "REJECT"
)

// Notifier pushes review-queue events to connected back-office clients.
type Notifier interface {
	Publish(event string, payload interface{})
}

// --- DTOs ---

// MatchResult is the outcome of resolving one line item against the catalog.
type MatchResult struct {
	Code       string
	Confidence int
	Provenance *string           // nil iff Confidence is 0
	Rate       *model.TariffRate // snapshot of the resolved catalog row, nil when unmatched
}

type BatchMatchSummary struct {
	BatchID      string            `json:"batch_id"`
	Matched      int               `json:"matched"`
	AutoApproved int               `json:"auto_approved"`
	Review       int               `json:"review"`
	NoMatch      int               `json:"no_match"`
	Errors       map[string]string `json:"errors,omitempty"` // item id -> per-item failure
}

type ReviewRequest struct {
	Decision     string `json:"decision" binding:"required,oneof=APPROVE REJECT"`
	OverrideCode string `json:"override_code"`
}

type BulkReviewRequest struct {
	ItemIDs  []string `json:"item_ids" binding:"required,min=1"`
	Decision string   `json:"decision" binding:"required,oneof=APPROVE REJECT"`
}

type BulkReviewSummary struct {
	Processed int               `json:"processed"`
	Failed    int               `json:"failed"`
	Errors    map[string]string `json:"errors,omitempty"`
}

type CargoItemResponse struct {
	ID            string  `json:"id"`
	BatchID       string  `json:"batch_id"`
	ProductName   string  `json:"product_name"`
	Material      string  `json:"material"`
	OriginCountry string  `json:"origin_country"`
	SuppliedCode  string  `json:"supplied_code"`
	HsCode        string  `json:"hs_code"`
	Confidence    int     `json:"confidence"`
	Provenance    *string `json:"provenance"`
	MatchStatus   string  `json:"match_status"`
	MatchError    string  `json:"match_error,omitempty"`
}

// --- Interface ---

type MatchingService interface {
	// MatchItem resolves a single item to a code, confidence and provenance
	// without persisting anything.
	MatchItem(ctx context.Context, item *model.CargoItem) (MatchResult, error)
	// MatchBatch matches every pending item in a batch, auto-approving at
	// the threshold and queueing the rest for review. A failing item is
	// reported in the summary, never aborts the batch.
	MatchBatch(ctx context.Context, batchID string, userID string) (BatchMatchSummary, error)
	ReviewItem(ctx context.Context, itemID string, req ReviewRequest, userID string) (CargoItemResponse, error)
	BulkReview(ctx context.Context, req BulkReviewRequest, userID string) (BulkReviewSummary, error)
}

type matchingService struct {
	tariffRepo  repository.TariffRateRepository
	historyRepo repository.MatchHistoryRepository
	batchRepo   repository.BatchRepository
	auditRepo   repository.AuditRepository
	txManager   repository.TransactionManager
	translator  CountryTranslator
	notifier    Notifier
}

func NewMatchingService(
	tariffRepo repository.TariffRateRepository,
	historyRepo repository.MatchHistoryRepository,
	batchRepo repository.BatchRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	translator CountryTranslator,
	notifier Notifier,
) MatchingService {
	return &matchingService{
		tariffRepo:  tariffRepo,
		historyRepo: historyRepo,
		batchRepo:   batchRepo,
		auditRepo:   auditRepo,
		txManager:   txManager,
		translator:  translator,
		notifier:    notifier,
	}
}

// --- Implementation ---

// MatchItem attempts each strategy in order; the first hit wins. A tier with
// no hit falls through to the next, a repository failure is fatal for the item.
func (s *matchingService) MatchItem(ctx context.Context, item *model.CargoItem) (MatchResult, error) {
	origin := s.translator.Translate(ctx, item.OriginCountry)

	// Tiers 1-3 need a customer-supplied code.
	if hscode.HasDigits(item.SuppliedCode) {
		norm := hscode.Normalize(item.SuppliedCode)

		rate, err := s.tariffRepo.FindBest(ctx, norm, origin)
		if err != nil {
			return MatchResult{}, fmt.Errorf("exact lookup failed: %w", err)
		}
		if rate != nil {
			return matched(rate.Code, ConfidenceExact, model.ProvenanceExact, rate), nil
		}

		if res, err := s.prefixMatch(ctx, norm, origin, hscode.Prefix8Length, ConfidencePrefix8, model.ProvenancePrefix8); err != nil {
			return MatchResult{}, err
		} else if res != nil {
			return *res, nil
		}

		if res, err := s.prefixMatch(ctx, norm, origin, hscode.Prefix6Length, ConfidencePrefix6, model.ProvenancePrefix6); err != nil {
			return MatchResult{}, err
		} else if res != nil {
			return *res, nil
		}
	}

	// Tier 4: previously confirmed classification for this product/material.
	rec, err := s.historyRepo.Lookup(ctx, item.ProductName, item.Material)
	if err != nil {
		return MatchResult{}, fmt.Errorf("history lookup failed: %w", err)
	}
	if rec != nil {
		confidence := HistoryBase + rec.UsageCount*HistoryStep
		if confidence > HistoryCap {
			confidence = HistoryCap
		}
		rate, err := s.tariffRepo.FindBest(ctx, rec.HsCode, origin)
		if err != nil {
			return MatchResult{}, fmt.Errorf("history rate lookup failed: %w", err)
		}
		return matched(rec.HsCode, confidence, model.ProvenanceHistory, rate), nil
	}

	// Tier 5: substring match on catalog descriptions, most specific
	// (shortest) description first.
	if item.ProductName != "" {
		rows, err := s.tariffRepo.Search(ctx, repository.TariffQuery{
			DescriptionContains: item.ProductName,
			Origin:              origin,
			ShortestFirst:       true,
			Limit:               1,
		})
		if err != nil {
			return MatchResult{}, fmt.Errorf("fuzzy lookup failed: %w", err)
		}
		if len(rows) > 0 {
			return matched(rows[0].Code, ConfidenceFuzzy, model.ProvenanceFuzzy, &rows[0]), nil
		}
	}

	return MatchResult{Confidence: 0, Provenance: nil}, nil
}

func (s *matchingService) prefixMatch(ctx context.Context, norm, origin string, length, confidence int, provenance string) (*MatchResult, error) {
	rows, err := s.tariffRepo.Search(ctx, repository.TariffQuery{
		CodePrefix: norm[:length],
		Origin:     origin,
		Limit:      1,
	})
	if err != nil {
		return nil, fmt.Errorf("prefix-%d lookup failed: %w", length, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	res := matched(rows[0].Code, confidence, provenance, &rows[0])
	return &res, nil
}

func (s *matchingService) MatchBatch(ctx context.Context, batchID string, userID string) (BatchMatchSummary, error) {
	id, err := uuid.Parse(batchID)
	if err != nil {
		return BatchMatchSummary{}, fmt.Errorf("invalid batch id: %w", err)
	}

	batch, err := s.batchRepo.FindByIDWithItems(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BatchMatchSummary{}, fmt.Errorf("import batch not found")
		}
		return BatchMatchSummary{}, fmt.Errorf("failed to fetch batch: %w", err)
	}

	summary := BatchMatchSummary{BatchID: batch.ID.String(), Errors: map[string]string{}}

	for i := range batch.Items {
		item := &batch.Items[i]
		if item.MatchStatus != model.MatchStatusPending {
			continue // re-running a batch never touches decided items
		}

		result, matchErr := s.MatchItem(ctx, item)
		if matchErr != nil {
			logrus.WithError(matchErr).WithField("item_id", item.ID).Warn("item matching failed")
			item.MatchError = matchErr.Error()
			summary.Errors[item.ID.String()] = matchErr.Error()
			_ = s.batchRepo.UpdateItem(ctx, item)
			continue
		}

		item.HsCode = result.Code
		item.Confidence = result.Confidence
		item.Provenance = result.Provenance
		item.MatchError = ""

		switch {
		case result.Confidence >= AutoApproveThreshold:
			item.MatchStatus = model.MatchStatusAutoApproved
			summary.AutoApproved++
		case result.Confidence > 0:
			item.MatchStatus = model.MatchStatusReview
			summary.Review++
		default:
			item.MatchStatus = model.MatchStatusNoMatch
			summary.NoMatch++
		}

		if item.MatchStatus == model.MatchStatusAutoApproved {
			// Auto-approval is a confirmation: same history side effect as
			// a human approval.
			if err := s.confirmItem(ctx, item); err != nil {
				item.MatchStatus = model.MatchStatusReview
				summary.AutoApproved--
				summary.Review++
				summary.Errors[item.ID.String()] = err.Error()
			}
		}

		if err := s.batchRepo.UpdateItem(ctx, item); err != nil {
			summary.Errors[item.ID.String()] = err.Error()
			continue
		}
		summary.Matched++
	}

	if summary.Review > 0 || summary.NoMatch > 0 {
		batch.Status = model.BatchStatusReview
	} else {
		batch.Status = model.BatchStatusMatching
	}
	if err := s.batchRepo.UpdateBatch(ctx, batch); err != nil {
		return summary, fmt.Errorf("failed to update batch status: %w", err)
	}

	if len(summary.Errors) == 0 {
		summary.Errors = nil
	}

	writeAudit(ctx, s.auditRepo, userID, model.ActionMatchBatch, batch.ID.String(), batch.BatchNo, summary)

	if s.notifier != nil && (summary.Review > 0 || summary.NoMatch > 0) {
		s.notifier.Publish("review_queue", summary)
	}

	return summary, nil
}

func (s *matchingService) ReviewItem(ctx context.Context, itemID string, req ReviewRequest, userID string) (CargoItemResponse, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return CargoItemResponse{}, fmt.Errorf("invalid item id: %w", err)
	}

	item, err := s.batchRepo.FindItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CargoItemResponse{}, fmt.Errorf("cargo item not found")
		}
		return CargoItemResponse{}, fmt.Errorf("failed to fetch cargo item: %w", err)
	}

	switch item.MatchStatus {
	case model.MatchStatusReview, model.MatchStatusNoMatch, model.MatchStatusAutoApproved:
		// reviewable
	default:
		return CargoItemResponse{}, fmt.Errorf("item in status %s cannot be reviewed", item.MatchStatus)
	}

	switch req.Decision {
	case DecisionApprove:
		if req.OverrideCode != "" {
			if !hscode.HasDigits(req.OverrideCode) {
				return CargoItemResponse{}, fmt.Errorf("invalid override_code: no digits in %q", req.OverrideCode)
			}
			norm := hscode.Normalize(req.OverrideCode)
			origin := s.translator.Translate(ctx, item.OriginCountry)
			rate, lookupErr := s.tariffRepo.FindBest(ctx, norm, origin)
			if lookupErr != nil {
				return CargoItemResponse{}, fmt.Errorf("override code lookup failed: %w", lookupErr)
			}
			if rate == nil {
				return CargoItemResponse{}, fmt.Errorf("override code %s not found in catalog", norm)
			}
			item.HsCode = norm
		}
		if item.HsCode == "" {
			return CargoItemResponse{}, fmt.Errorf("cannot approve an item without a classification code")
		}

		// Status flip and history increment commit together.
		err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
			item.MatchStatus = model.MatchStatusApproved
			if err := s.batchRepo.UpdateItem(txCtx, item); err != nil {
				return fmt.Errorf("failed to update item: %w", err)
			}
			return s.confirmItem(txCtx, item)
		})
		if err != nil {
			return CargoItemResponse{}, err
		}
		writeAudit(ctx, s.auditRepo, userID, model.ActionApproveItem, item.ID.String(), item.ProductName, req)

	case DecisionReject:
		item.MatchStatus = model.MatchStatusRejected
		if err := s.batchRepo.UpdateItem(ctx, item); err != nil {
			return CargoItemResponse{}, fmt.Errorf("failed to update item: %w", err)
		}
		writeAudit(ctx, s.auditRepo, userID, model.ActionRejectItem, item.ID.String(), item.ProductName, req)

	default:
		return CargoItemResponse{}, fmt.Errorf("invalid decision: %s", req.Decision)
	}

	return toCargoItemResponse(item), nil
}

func (s *matchingService) BulkReview(ctx context.Context, req BulkReviewRequest, userID string) (BulkReviewSummary, error) {
	summary := BulkReviewSummary{Errors: map[string]string{}}

	for _, itemID := range req.ItemIDs {
		_, err := s.ReviewItem(ctx, itemID, ReviewRequest{Decision: req.Decision}, userID)
		if err != nil {
			summary.Failed++
			summary.Errors[itemID] = err.Error()
			continue
		}
		summary.Processed++
	}

	if len(summary.Errors) == 0 {
		summary.Errors = nil
	}

	writeAudit(ctx, s.auditRepo, userID, model.ActionBulkReview, "", req.Decision,
		map[string]interface{}{"processed": summary.Processed, "failed": summary.Failed})

	return summary, nil
}

// confirmItem records the approved classification as ground truth for future
// history and fuzzy resolution. Single atomic increment per (product, material).
func (s *matchingService) confirmItem(ctx context.Context, item *model.CargoItem) error {
	if err := s.historyRepo.Increment(ctx, item.ProductName, item.Material, item.HsCode); err != nil {
		return fmt.Errorf("failed to record match history: %w", err)
	}
	return nil
}

func matched(code string, confidence int, provenance string, rate *model.TariffRate) MatchResult {
	return MatchResult{
		Code:       code,
		Confidence: confidence,
		Provenance: &provenance,
		Rate:       rate,
	}
}

func toCargoItemResponse(item *model.CargoItem) CargoItemResponse {
	return CargoItemResponse{
		ID:            item.ID.String(),
		BatchID:       item.BatchID.String(),
		ProductName:   item.ProductName,
		Material:      item.Material,
		OriginCountry: item.OriginCountry,
		SuppliedCode:  item.SuppliedCode,
		HsCode:        item.HsCode,
		Confidence:    item.Confidence,
		Provenance:    item.Provenance,
		MatchStatus:   item.MatchStatus,
		MatchError:    item.MatchError,
	}
}
