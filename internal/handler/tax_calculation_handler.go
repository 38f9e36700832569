package handler

import (
	"taxengine/internal/middleware"
	"taxengine/internal/service"
	"taxengine/pkg/response"

	"github.com/gin-gonic/gin"
)

type TaxCalculationHandler struct {
	calculationService service.TaxCalculationService
}

func NewTaxCalculationHandler(calculationService service.TaxCalculationService) *TaxCalculationHandler {
	return &TaxCalculationHandler{calculationService: calculationService}
}

func (h *TaxCalculationHandler) RegisterRoutes(router *gin.RouterGroup) {
	tax := router.Group("/api/tax")
	tax.Use(middleware.RequireRole(middleware.ReadRoles...))
	{
		tax.POST("/calculate", h.Calculate)
		tax.POST("/preview", h.Preview)
	}
}

// Calculate computes tax for an amount against a saved tax group
// @Summary      Calculate tax
// @Description  Applies the group's active rules in order. Amounts are decimal strings.
// @Tags         tax
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CalculateTaxRequest  true  "Calculation input"
// @Success      200      {object}  response.Success{data=service.TaxCalculationResponse}
// @Failure      400      {object}  response.Failure
// @Failure      404      {object}  response.Failure
// @Router       /api/tax/calculate [post]
func (h *TaxCalculationHandler) Calculate(c *gin.Context) {
	var req service.CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	result, err := h.calculationService.Calculate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, response.OK("Tax calculated", result))
}

// Preview computes tax against an unsaved list of rule ids
// @Summary      Preview tax
// @Tags         tax
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.PreviewTaxRequest  true  "Preview input"
// @Success      200      {object}  response.Success{data=service.TaxCalculationResponse}
// @Failure      400      {object}  response.Failure
// @Router       /api/tax/preview [post]
func (h *TaxCalculationHandler) Preview(c *gin.Context) {
	var req service.PreviewTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	result, err := h.calculationService.Preview(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, response.OK("Tax preview calculated", result))
}
