package handler

import (
	"taxengine/internal/middleware"
	"taxengine/internal/repository"
	"taxengine/internal/service"
	"taxengine/pkg/pagination"
	"taxengine/pkg/response"

	"github.com/gin-gonic/gin"
)

type TaxRuleHandler struct {
	taxRuleService service.TaxRuleService
}

func NewTaxRuleHandler(taxRuleService service.TaxRuleService) *TaxRuleHandler {
	return &TaxRuleHandler{taxRuleService: taxRuleService}
}

func (h *TaxRuleHandler) RegisterRoutes(router *gin.RouterGroup) {
	rules := router.Group("/api/tax-rules")
	{
		rules.GET("", middleware.RequireRole(middleware.ReadRoles...), h.GetTaxRules)
		rules.GET("/:id", middleware.RequireRole(middleware.ReadRoles...), h.GetTaxRule)
		rules.POST("", middleware.RequireRole(middleware.WriteRoles...), h.CreateTaxRule)
		rules.PATCH("/:id", middleware.RequireRole(middleware.WriteRoles...), h.UpdateTaxRule)
		rules.POST("/:id/deactivate", middleware.RequireRole(middleware.WriteRoles...), h.DeactivateTaxRule)
		rules.DELETE("/:id", middleware.RequireRole(middleware.WriteRoles...), h.DeleteTaxRule)
	}
}

// GetTaxRules returns a paginated list of tax rules
// @Summary      List tax rules
// @Description  Retrieves tax rules, optionally filtered by type, active flag or name
// @Tags         tax-rules
// @Security     BearerAuth
// @Produce      json
// @Param        type       query     string  false  "PERCENTAGE or FIXED"
// @Param        is_active  query     bool    false  "Filter by active flag"
// @Param        search     query     string  false  "Case-insensitive name match"
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Number of items per page (default 20, max 100)"
// @Param        sort       query     string  false  "name, type, rate, created_at, updated_at"
// @Param        order      query     string  false  "asc or desc (default desc)"
// @Success      200        {object}  response.Success{data=pagination.Page[service.TaxRuleResponse]}
// @Failure      400        {object}  response.Failure
// @Router       /api/tax-rules [get]
func (h *TaxRuleHandler) GetTaxRules(c *gin.Context) {
	active, err := boolQuery(c, "is_active")
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.taxRuleService.GetTaxRules(c.Request.Context(), service.TaxRuleListFilter{
		Type:     c.Query("type"),
		IsActive: active,
		Search:   c.Query("search"),
		Params:   pagination.Parse(c, repository.TaxRuleSortColumns, "created_at"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, response.OK("Tax rules retrieved", page))
}

// GetTaxRule returns one tax rule
// @Summary      Get tax rule
// @Tags         tax-rules
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Tax rule ID"
// @Success      200  {object}  response.Success{data=service.TaxRuleResponse}
// @Failure      404  {object}  response.Failure
// @Router       /api/tax-rules/{id} [get]
func (h *TaxRuleHandler) GetTaxRule(c *gin.Context) {
	rule, err := h.taxRuleService.GetTaxRule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, response.OK("Tax rule retrieved", rule))
}

// CreateTaxRule creates a new tax rule entry
// @Summary      Create tax rule
// @Description  Rate is a fraction for PERCENTAGE (0.10 = 10%) and a flat amount for FIXED
// @Tags         tax-rules
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateTaxRuleRequest  true  "Create Tax Rule Payload"
// @Success      201      {object}  response.Success{data=service.TaxRuleResponse}
// @Failure      400      {object}  response.Failure
// @Router       /api/tax-rules [post]
func (h *TaxRuleHandler) CreateTaxRule(c *gin.Context) {
	var req service.CreateTaxRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	rule, err := h.taxRuleService.CreateTaxRule(c.Request.Context(), req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, response.Created("Tax rule created", rule))
}

// UpdateTaxRule applies a partial update
// @Summary      Update tax rule
// @Tags         tax-rules
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Tax rule ID"
// @Param        payload  body      service.UpdateTaxRuleRequest  true  "Fields to change"
// @Success      200      {object}  response.Success{data=service.TaxRuleResponse}
// @Failure      400      {object}  response.Failure
// @Failure      404      {object}  response.Failure
// @Router       /api/tax-rules/{id} [patch]
func (h *TaxRuleHandler) UpdateTaxRule(c *gin.Context) {
	var req service.UpdateTaxRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	rule, err := h.taxRuleService.UpdateTaxRule(c.Request.Context(), c.Param("id"), req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, response.OK("Tax rule updated", rule))
}

// DeactivateTaxRule excludes the rule from future calculations
// @Summary      Deactivate tax rule
// @Tags         tax-rules
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Tax rule ID"
// @Success      200  {object}  response.Success{data=service.TaxRuleResponse}
// @Failure      404  {object}  response.Failure
// @Router       /api/tax-rules/{id}/deactivate [post]
func (h *TaxRuleHandler) DeactivateTaxRule(c *gin.Context) {
	rule, err := h.taxRuleService.DeactivateTaxRule(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, response.OK("Tax rule deactivated", rule))
}

// DeleteTaxRule soft-deletes a tax rule
// @Summary      Delete tax rule
// @Tags         tax-rules
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Tax rule ID"
// @Success      200  {object}  response.Success
// @Failure      404  {object}  response.Failure
// @Router       /api/tax-rules/{id} [delete]
func (h *TaxRuleHandler) DeleteTaxRule(c *gin.Context) {
	if err := h.taxRuleService.DeleteTaxRule(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	respond(c, response.OK("Tax rule deleted", nil))
}
