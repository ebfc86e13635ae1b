package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type TaxHandler struct {
	taxService service.TaxService
}

func NewTaxHandler(taxService service.TaxService) *TaxHandler {
	return &TaxHandler{taxService: taxService}
}

func (h *TaxHandler) RegisterRoutes(router *gin.RouterGroup) {
	tax := router.Group("/api/tax")
	{
		tax.POST("/compute", h.Compute)
	}
	router.POST("/api/items/:id/recompute", h.RecomputeItem)
	router.POST("/api/batches/:id/compute", h.ComputeBatch)
}

// Compute runs the raw tax cascade for ad-hoc what-if queries
// @Summary      Compute tax
// @Description  Runs the duty, excise and VAT cascade over an ad-hoc customs value and rate set
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ComputeTaxRequest  true  "Compute Tax Payload"
// @Success      200      {object}  response.Response{data=service.TaxBreakdownResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/tax/compute [post]
func (h *TaxHandler) Compute(c *gin.Context) {
	var req service.ComputeTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	breakdown, err := h.taxService.Compute(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, breakdown))
}

// RecomputeItem edits an item's code and/or rate fields and recomputes taxes
// @Summary      Recompute item tax
// @Description  Applies code or rate overrides to one cargo item and recomputes its tax breakdown
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Cargo Item ID"
// @Param        payload  body      service.RecomputeItemRequest  true  "Recompute Item Payload"
// @Success      200      {object}  response.Response{data=service.ItemTaxResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/items/{id}/recompute [post]
func (h *TaxHandler) RecomputeItem(c *gin.Context) {
	var req service.RecomputeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	item, err := h.taxService.RecomputeItem(c.Request.Context(), c.Param("id"), req, userIDFromHeader(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// ComputeBatch computes and aggregates taxes over a batch's approved items
// @Summary      Compute batch taxes
// @Description  Computes taxes for every approved item in the batch and aggregates the totals
// @Tags         tax
// @Produce      json
// @Param        id   path      string  true  "Batch ID"
// @Success      200  {object}  response.Response{data=service.BatchTaxResponse}
// @Failure      400  {object}  response.Response
// @Router       /api/batches/{id}/compute [post]
func (h *TaxHandler) ComputeBatch(c *gin.Context) {
	result, err := h.taxService.ComputeBatch(c.Request.Context(), c.Param("id"), userIDFromHeader(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}
