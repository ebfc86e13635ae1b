package service

import (
	"context"
	"encoding/json"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
)

// --- DTOs ---

type AuditLogResponse struct {
	ID         string  `json:"id"`
	UserID     *string `json:"user_id"`
	Action     string  `json:"action"`
	EntityID   string  `json:"entity_id"`
	EntityName string  `json:"entity_name"`
	Details    string  `json:"details"`
	CreatedAt  string  `json:"created_at"`
}

// --- Interface ---

type AuditService interface {
	ListLogs(ctx context.Context, action string, page, limit int) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	auditRepo repository.AuditRepository
}

func NewAuditService(auditRepo repository.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// --- Implementation ---

func (s *auditService) ListLogs(ctx context.Context, action string, page, limit int) ([]AuditLogResponse, int64, error) {
	logs, total, err := s.auditRepo.List(ctx, action, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		entry := AuditLogResponse{
			ID:         l.ID.String(),
			Action:     l.Action,
			EntityID:   l.EntityID,
			EntityName: l.EntityName,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		}
		if l.UserID != nil {
			id := l.UserID.String()
			entry.UserID = &id
		}
		res = append(res, entry)
	}
	return res, total, nil
}

// writeAudit records a best-effort audit row — a failed write never fails
// the operation being audited.
func writeAudit(ctx context.Context, repo repository.AuditRepository, userID, action, entityID, entityName string, details interface{}) {
	detailsJSON, _ := json.Marshal(details)

	log := model.AuditLog{
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(detailsJSON),
	}

	if userID != "" {
		if parsed, err := uuid.Parse(userID); err == nil {
			log.UserID = &parsed
		}
	}

	_ = repo.Create(ctx, &log)
}
