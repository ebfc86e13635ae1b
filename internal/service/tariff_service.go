package service

import (
	"context"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/hscode"

	"github.com/shopspring/decimal"
)

// --- DTOs ---

type CreateTariffRateRequest struct {
	Code               string `json:"code" binding:"required"`
	Description        string `json:"description" binding:"required"`
	OriginCountry      string `json:"origin_country"`
	OriginCountryCode  string `json:"origin_country_code"` // ISO code, bloc code or ROW
	DutyRate           string `json:"duty_rate" binding:"required"`
	VatRate            string `json:"vat_rate" binding:"required"`
	AntiDumpingRate    string `json:"anti_dumping_rate"`
	CountervailingRate string `json:"countervailing_rate"`
	Unit               string `json:"unit"`
}

type TariffRateResponse struct {
	ID                 string  `json:"id"`
	Code               string  `json:"code"`
	Description        string  `json:"description"`
	OriginCountry      *string `json:"origin_country"`
	OriginCountryCode  *string `json:"origin_country_code"`
	DutyRate           string  `json:"duty_rate"`
	VatRate            string  `json:"vat_rate"`
	AntiDumpingRate    string  `json:"anti_dumping_rate"`
	CountervailingRate string  `json:"countervailing_rate"`
	Unit               string  `json:"unit"`
}

type TariffLookupRequest struct {
	Code                string
	CodePrefix          string
	DescriptionContains string
	Origin              string // country name or ISO code
	Limit               int
}

// --- Interface ---

type TariffService interface {
	CreateRate(ctx context.Context, req CreateTariffRateRequest, userID string) (TariffRateResponse, error)
	Lookup(ctx context.Context, req TariffLookupRequest) ([]TariffRateResponse, error)
	// Resolve returns the single most specific row for (code, origin), or
	// nil when the catalog carries no applicable row.
	Resolve(ctx context.Context, code, origin string) (*TariffRateResponse, error)
}

type tariffService struct {
	tariffRepo repository.TariffRateRepository
	auditRepo  repository.AuditRepository
	translator CountryTranslator
}

func NewTariffService(tariffRepo repository.TariffRateRepository, auditRepo repository.AuditRepository, translator CountryTranslator) TariffService {
	return &tariffService{tariffRepo: tariffRepo, auditRepo: auditRepo, translator: translator}
}

// --- Implementation ---

func (s *tariffService) CreateRate(ctx context.Context, req CreateTariffRateRequest, userID string) (TariffRateResponse, error) {
	if !hscode.HasDigits(req.Code) {
		return TariffRateResponse{}, fmt.Errorf("invalid code: no digits in %q", req.Code)
	}

	rate := model.TariffRate{
		Code:        hscode.Normalize(req.Code),
		Description: req.Description,
		Unit:        req.Unit,
	}
	if req.OriginCountry != "" {
		rate.OriginCountry = &req.OriginCountry
	}
	if req.OriginCountryCode != "" {
		rate.OriginCountryCode = &req.OriginCountryCode
	}

	var err error
	if rate.DutyRate, err = decimal.NewFromString(req.DutyRate); err != nil {
		return TariffRateResponse{}, fmt.Errorf("invalid duty_rate: %w", err)
	}
	if rate.VatRate, err = decimal.NewFromString(req.VatRate); err != nil {
		return TariffRateResponse{}, fmt.Errorf("invalid vat_rate: %w", err)
	}
	if req.AntiDumpingRate != "" {
		if rate.AntiDumpingRate, err = decimal.NewFromString(req.AntiDumpingRate); err != nil {
			return TariffRateResponse{}, fmt.Errorf("invalid anti_dumping_rate: %w", err)
		}
	}
	if req.CountervailingRate != "" {
		if rate.CountervailingRate, err = decimal.NewFromString(req.CountervailingRate); err != nil {
			return TariffRateResponse{}, fmt.Errorf("invalid countervailing_rate: %w", err)
		}
	}

	if err := s.tariffRepo.Create(ctx, &rate); err != nil {
		return TariffRateResponse{}, fmt.Errorf("failed to create tariff rate: %w", err)
	}

	writeAudit(ctx, s.auditRepo, userID, model.ActionCreateTariffRate, rate.ID.String(), rate.Code, req)

	return toTariffRateResponse(&rate), nil
}

func (s *tariffService) Lookup(ctx context.Context, req TariffLookupRequest) ([]TariffRateResponse, error) {
	q := repository.TariffQuery{
		DescriptionContains: req.DescriptionContains,
		Origin:              s.translator.Translate(ctx, req.Origin),
		Limit:               req.Limit,
	}
	if req.Code != "" {
		q.Code = hscode.Normalize(req.Code)
	}
	if req.CodePrefix != "" {
		q.CodePrefix = req.CodePrefix
	}

	rows, err := s.tariffRepo.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("tariff lookup failed: %w", err)
	}

	res := make([]TariffRateResponse, 0, len(rows))
	for i := range rows {
		res = append(res, toTariffRateResponse(&rows[i]))
	}
	return res, nil
}

func (s *tariffService) Resolve(ctx context.Context, code, origin string) (*TariffRateResponse, error) {
	if !hscode.HasDigits(code) {
		return nil, fmt.Errorf("invalid code: no digits in %q", code)
	}

	rate, err := s.tariffRepo.FindBest(ctx, hscode.Normalize(code), s.translator.Translate(ctx, origin))
	if err != nil {
		return nil, fmt.Errorf("tariff lookup failed: %w", err)
	}
	if rate == nil {
		return nil, nil
	}

	res := toTariffRateResponse(rate)
	return &res, nil
}

func toTariffRateResponse(r *model.TariffRate) TariffRateResponse {
	return TariffRateResponse{
		ID:                 r.ID.String(),
		Code:               r.Code,
		Description:        r.Description,
		OriginCountry:      r.OriginCountry,
		OriginCountryCode:  r.OriginCountryCode,
		DutyRate:           r.DutyRate.StringFixed(4),
		VatRate:            r.VatRate.StringFixed(4),
		AntiDumpingRate:    r.AntiDumpingRate.StringFixed(4),
		CountervailingRate: r.CountervailingRate.StringFixed(4),
		Unit:               r.Unit,
	}
}
