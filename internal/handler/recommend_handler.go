package handler

import (
	"net/http"
	"strconv"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type RecommendHandler struct {
	recommendService service.RecommendService
}

func NewRecommendHandler(recommendService service.RecommendService) *RecommendHandler {
	return &RecommendHandler{recommendService: recommendService}
}

func (h *RecommendHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/recommendations", h.FindAlternatives)
}

// FindAlternatives suggests cheaper alternative classification codes
// @Summary      Get alternative codes
// @Description  Suggests related classification codes with a lower effective tax burden, ranked by savings
// @Tags         recommendations
// @Produce      json
// @Param        code          query     string  true   "Current classification code"
// @Param        product_name  query     string  false  "Product name for relevance filtering"
// @Param        origin        query     string  false  "Origin country"
// @Param        limit         query     int     false  "Maximum number of alternatives (default 5)"
// @Success      200           {object}  response.Response{data=service.AlternativesResponse}
// @Failure      400           {object}  response.Response
// @Router       /api/recommendations [get]
func (h *RecommendHandler) FindAlternatives(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "code query parameter is required"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultAlternativeLimit)))

	result, err := h.recommendService.FindAlternatives(c.Request.Context(), code, c.Query("product_name"), c.Query("origin"), limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}
