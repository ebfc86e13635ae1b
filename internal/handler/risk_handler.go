package handler

import (
	"net/http"
	"strconv"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type RiskHandler struct {
	riskService service.RiskService
}

func NewRiskHandler(riskService service.RiskService) *RiskHandler {
	return &RiskHandler{riskService: riskService}
}

func (h *RiskHandler) RegisterRoutes(router *gin.RouterGroup) {
	risk := router.Group("/api/risk")
	{
		risk.GET("/declared-value", h.DeclaredValueRisk)
		risk.GET("/inspection", h.InspectionRisk)
		risk.GET("/watchlist", h.Watchlist)
		risk.POST("/declarations", h.RecordDeclaration)
		risk.POST("/inspections", h.RecordInspection)
	}
	router.GET("/api/batches/:id/risk", h.BatchRisk)
}

// DeclaredValueRisk classifies a proposed declared price against history
// @Summary      Assess declared value
// @Description  Classifies a proposed declared price against accepted historical declarations for the code and origin
// @Tags         risk
// @Produce      json
// @Param        code    query     string  true   "Classification code"
// @Param        origin  query     string  true   "Origin country"
// @Param        price   query     string  true   "Proposed unit price"
// @Param        unit    query     string  false  "Unit of measure"
// @Success      200     {object}  response.Response{data=service.DeclaredValueRiskResponse}
// @Failure      400     {object}  response.Response
// @Router       /api/risk/declared-value [get]
func (h *RiskHandler) DeclaredValueRisk(c *gin.Context) {
	code := c.Query("code")
	origin := c.Query("origin")
	price := c.Query("price")
	if code == "" || origin == "" || price == "" {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "code, origin and price query parameters are required"))
		return
	}

	result, err := h.riskService.DeclaredValueRisk(c.Request.Context(), code, origin, c.Query("unit"), price)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// InspectionRisk reports historical inspection statistics for a code/origin
// @Summary      Assess inspection risk
// @Description  Reports historical inspection rates and failure statistics for a code and origin pair
// @Tags         risk
// @Produce      json
// @Param        code    query     string  true  "Classification code"
// @Param        origin  query     string  true  "Origin country"
// @Success      200     {object}  response.Response{data=service.InspectionRiskResponse}
// @Failure      400     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Router       /api/risk/inspection [get]
func (h *RiskHandler) InspectionRisk(c *gin.Context) {
	code := c.Query("code")
	origin := c.Query("origin")
	if code == "" || origin == "" {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "code and origin query parameters are required"))
		return
	}

	result, err := h.riskService.InspectionRisk(c.Request.Context(), code, origin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// Watchlist lists code/origin pairs with a high inspection rate
// @Summary      Get risk watchlist
// @Description  Lists code and origin pairs whose inspection history puts them in the high-risk tier
// @Tags         risk
// @Produce      json
// @Param        min_shipments  query     int  false  "Minimum shipment count (default 3)"
// @Success      200            {object}  response.Response{data=[]service.WatchlistEntry}
// @Failure      500            {object}  response.Response
// @Router       /api/risk/watchlist [get]
func (h *RiskHandler) Watchlist(c *gin.Context) {
	minShipments, _ := strconv.Atoi(c.DefaultQuery("min_shipments", "3"))

	entries, err := h.riskService.Watchlist(c.Request.Context(), minShipments)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, entries))
}

// BatchRisk aggregates per-item inspection risk over a batch
// @Summary      Get batch risk
// @Description  Scores every item in the batch and aggregates the scores into a batch-level risk tier
// @Tags         risk
// @Produce      json
// @Param        id   path      string  true  "Batch ID"
// @Success      200  {object}  response.Response{data=service.BatchRiskResponse}
// @Failure      400  {object}  response.Response
// @Router       /api/batches/{id}/risk [get]
func (h *RiskHandler) BatchRisk(c *gin.Context) {
	result, err := h.riskService.BatchRisk(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// RecordDeclaration appends a declared-value observation
// @Summary      Record declaration
// @Description  Appends a declared-value observation to the risk history
// @Tags         risk
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RecordDeclarationRequest  true  "Declaration Payload"
// @Success      201      {object}  response.Response{data=object}
// @Failure      400      {object}  response.Response
// @Router       /api/risk/declarations [post]
func (h *RiskHandler) RecordDeclaration(c *gin.Context) {
	var req service.RecordDeclarationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	if err := h.riskService.RecordDeclaration(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, gin.H{"recorded": true}))
}

// RecordInspection appends an inspection observation
// @Summary      Record inspection
// @Description  Appends an inspection outcome observation to the risk history
// @Tags         risk
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RecordInspectionRequest  true  "Inspection Payload"
// @Success      201      {object}  response.Response{data=object}
// @Failure      400      {object}  response.Response
// @Router       /api/risk/inspections [post]
func (h *RiskHandler) RecordInspection(c *gin.Context) {
	var req service.RecordInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	if err := h.riskService.RecordInspection(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, gin.H{"recorded": true}))
}
