package handler

import (
	"net/http"
	"strconv"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type TariffHandler struct {
	tariffService service.TariffService
}

func NewTariffHandler(tariffService service.TariffService) *TariffHandler {
	return &TariffHandler{tariffService: tariffService}
}

func (h *TariffHandler) RegisterRoutes(router *gin.RouterGroup) {
	rates := router.Group("/api/tariff-rates")
	{
		rates.GET("", h.Lookup)
		rates.POST("", h.CreateRate)
		rates.GET("/resolve", h.Resolve)
	}
}

// CreateRate registers a new tariff catalog row
// @Summary      Create tariff rate
// @Description  Registers a new tariff catalog row for a code and origin scope
// @Tags         tariff
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateTariffRateRequest  true  "Create Tariff Rate Payload"
// @Success      201      {object}  response.Response{data=service.TariffRateResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/tariff-rates [post]
func (h *TariffHandler) CreateRate(c *gin.Context) {
	var req service.CreateTariffRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	rate, err := h.tariffService.CreateRate(c.Request.Context(), req, userIDFromHeader(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, rate))
}

// Lookup searches the tariff catalog by code, prefix, description or origin
// @Summary      Search tariff rates
// @Description  Searches the tariff catalog by exact code, code prefix, description substring or origin
// @Tags         tariff
// @Produce      json
// @Param        code         query     string  false  "Exact classification code"
// @Param        code_prefix  query     string  false  "Code prefix"
// @Param        description  query     string  false  "Description substring"
// @Param        origin       query     string  false  "Origin country"
// @Param        limit        query     int     false  "Maximum number of rows (default 50)"
// @Success      200          {object}  response.Response{data=[]service.TariffRateResponse}
// @Failure      500          {object}  response.Response
// @Router       /api/tariff-rates [get]
func (h *TariffHandler) Lookup(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	rates, err := h.tariffService.Lookup(c.Request.Context(), service.TariffLookupRequest{
		Code:                c.Query("code"),
		CodePrefix:          c.Query("code_prefix"),
		DescriptionContains: c.Query("description"),
		Origin:              c.Query("origin"),
		Limit:               limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rates))
}

// Resolve returns the single most specific row for a code and origin
// @Summary      Resolve tariff rate
// @Description  Returns the single most specific catalog row for a code and origin, country rows beating bloc and global rows
// @Tags         tariff
// @Produce      json
// @Param        code    query     string  true   "Classification code"
// @Param        origin  query     string  false  "Origin country"
// @Success      200     {object}  response.Response{data=service.TariffRateResponse}
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /api/tariff-rates/resolve [get]
func (h *TariffHandler) Resolve(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "code query parameter is required"))
		return
	}

	rate, err := h.tariffService.Resolve(c.Request.Context(), code, c.Query("origin"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	if rate == nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "no tariff rate found for code and origin"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rate))
}
