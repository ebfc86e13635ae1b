package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type BatchHandler struct {
	batchService    service.BatchService
	matchingService service.MatchingService
}

func NewBatchHandler(batchService service.BatchService, matchingService service.MatchingService) *BatchHandler {
	return &BatchHandler{batchService: batchService, matchingService: matchingService}
}

func (h *BatchHandler) RegisterRoutes(router *gin.RouterGroup) {
	batches := router.Group("/api/batches")
	{
		batches.POST("", h.CreateBatch)
		batches.GET("", h.ListBatches)
		batches.GET("/:id", h.GetBatch)
		batches.POST("/:id/match", h.MatchBatch)
		batches.POST("/review/bulk", h.BulkReview)
	}

	items := router.Group("/api/items")
	{
		items.POST("/:id/review", h.ReviewItem)
	}
}

// CreateBatch registers a new import batch with its cargo line items
// @Summary      Create import batch
// @Description  Registers an import batch with its cargo line items, all items starting in PENDING
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateBatchRequest  true  "Create Batch Payload"
// @Success      201      {object}  response.Response{data=service.BatchResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/batches [post]
func (h *BatchHandler) CreateBatch(c *gin.Context) {
	var req service.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	batch, err := h.batchService.CreateBatch(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, batch))
}

// ListBatches returns import batches newest first
// @Summary      List import batches
// @Description  Retrieves a paginated list of import batches, newest first
// @Tags         batches
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Failure      500    {object}  response.Response
// @Router       /api/batches [get]
func (h *BatchHandler) ListBatches(c *gin.Context) {
	params := pagination.Parse(c)

	batches, total, err := h.batchService.ListBatches(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.List(http.StatusOK, batches, total))
}

// GetBatch returns one batch with its items
// @Summary      Get import batch
// @Description  Retrieves one import batch with all of its cargo items
// @Tags         batches
// @Produce      json
// @Param        id   path      string  true  "Batch ID"
// @Success      200  {object}  response.Response{data=service.BatchResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/batches/{id} [get]
func (h *BatchHandler) GetBatch(c *gin.Context) {
	batch, err := h.batchService.GetBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, batch))
}

// MatchBatch runs the classification pipeline over every pending item
// @Summary      Match batch items
// @Description  Resolves every pending item in the batch against the tariff catalog, auto-approving high-confidence matches
// @Tags         matching
// @Produce      json
// @Param        id   path      string  true  "Batch ID"
// @Success      200  {object}  response.Response{data=service.BatchMatchSummary}
// @Failure      400  {object}  response.Response
// @Router       /api/batches/{id}/match [post]
func (h *BatchHandler) MatchBatch(c *gin.Context) {
	summary, err := h.matchingService.MatchBatch(c.Request.Context(), c.Param("id"), userIDFromHeader(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

// ReviewItem applies a human approve/reject decision to one item
// @Summary      Review cargo item
// @Description  Applies an approve or reject decision to one cargo item, optionally overriding the matched code
// @Tags         matching
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Cargo Item ID"
// @Param        payload  body      service.ReviewRequest  true  "Review Decision Payload"
// @Success      200      {object}  response.Response{data=service.CargoItemResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/items/{id}/review [post]
func (h *BatchHandler) ReviewItem(c *gin.Context) {
	var req service.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	item, err := h.matchingService.ReviewItem(c.Request.Context(), c.Param("id"), req, userIDFromHeader(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// BulkReview applies one decision to a list of items, collecting per-item errors
// @Summary      Bulk review items
// @Description  Applies one approve or reject decision to a list of cargo items, collecting per-item failures
// @Tags         matching
// @Accept       json
// @Produce      json
// @Param        payload  body      service.BulkReviewRequest  true  "Bulk Review Payload"
// @Success      200      {object}  response.Response{data=service.BulkReviewSummary}
// @Failure      400      {object}  response.Response
// @Router       /api/batches/review/bulk [post]
func (h *BatchHandler) BulkReview(c *gin.Context) {
	var req service.BulkReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	summary, err := h.matchingService.BulkReview(c.Request.Context(), req, userIDFromHeader(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

// userIDFromHeader picks up the acting user forwarded by the gateway.
// Authentication itself happens upstream.
func userIDFromHeader(c *gin.Context) string {
	return c.GetHeader("X-User-ID")
}
