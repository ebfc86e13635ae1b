package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/audit-logs", h.ListLogs)
}

// ListLogs returns the audit trail, optionally filtered by action
// @Summary      Get audit logs
// @Description  Retrieves a paginated audit trail of catalog and review actions, newest first
// @Tags         audit
// @Produce      json
// @Param        action  query     string  false  "Filter by action"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=[]service.AuditLogResponse}
// @Failure      500     {object}  response.Response
// @Router       /api/audit-logs [get]
func (h *AuditHandler) ListLogs(c *gin.Context) {
	params := pagination.Parse(c)

	logs, total, err := h.auditService.ListLogs(c.Request.Context(), c.Query("action"), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.List(http.StatusOK, logs, total))
}
