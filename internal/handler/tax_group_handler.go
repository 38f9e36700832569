package handler

import (
	"taxengine/internal/middleware"
	"taxengine/internal/repository"
	"taxengine/internal/service"
	"taxengine/pkg/pagination"
	"taxengine/pkg/response"

	"github.com/gin-gonic/gin"
)

type TaxGroupHandler struct {
	taxGroupService service.TaxGroupService
}

func NewTaxGroupHandler(taxGroupService service.TaxGroupService) *TaxGroupHandler {
	return &TaxGroupHandler{taxGroupService: taxGroupService}
}

func (h *TaxGroupHandler) RegisterRoutes(router *gin.RouterGroup) {
	groups := router.Group("/api/tax-groups")
	{
		groups.GET("", middleware.RequireRole(middleware.ReadRoles...), h.GetTaxGroups)
		groups.GET("/:id", middleware.RequireRole(middleware.ReadRoles...), h.GetTaxGroup)
		groups.POST("", middleware.RequireRole(middleware.WriteRoles...), h.CreateTaxGroup)
		groups.PATCH("/:id", middleware.RequireRole(middleware.WriteRoles...), h.UpdateTaxGroup)
		groups.POST("/:id/deactivate", middleware.RequireRole(middleware.WriteRoles...), h.DeactivateTaxGroup)
		groups.DELETE("/:id", middleware.RequireRole(middleware.WriteRoles...), h.DeleteTaxGroup)
	}
}

// GetTaxGroups returns a paginated list of tax groups
// @Summary      List tax groups
// @Tags         tax-groups
// @Security     BearerAuth
// @Produce      json
// @Param        is_active  query     bool    false  "Filter by active flag"
// @Param        search     query     string  false  "Case-insensitive name match"
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Number of items per page (default 20, max 100)"
// @Param        sort       query     string  false  "name, created_at, updated_at"
// @Param        order      query     string  false  "asc or desc (default desc)"
// @Success      200        {object}  response.Success{data=pagination.Page[service.TaxGroupResponse]}
// @Failure      400        {object}  response.Failure
// @Router       /api/tax-groups [get]
func (h *TaxGroupHandler) GetTaxGroups(c *gin.Context) {
	active, err := boolQuery(c, "is_active")
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.taxGroupService.GetTaxGroups(c.Request.Context(), service.TaxGroupListFilter{
		IsActive: active,
		Search:   c.Query("search"),
		Params:   pagination.Parse(c, repository.TaxGroupSortColumns, "created_at"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, response.OK("Tax groups retrieved", page))
}

// GetTaxGroup returns one tax group with its ordered tax ids
// @Summary      Get tax group
// @Tags         tax-groups
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Tax group ID"
// @Success      200  {object}  response.Success{data=service.TaxGroupResponse}
// @Failure      404  {object}  response.Failure
// @Router       /api/tax-groups/{id} [get]
func (h *TaxGroupHandler) GetTaxGroup(c *gin.Context) {
	group, err := h.taxGroupService.GetTaxGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, response.OK("Tax group retrieved", group))
}

// CreateTaxGroup creates a group from at least one existing tax rule
// @Summary      Create tax group
// @Description  tax_ids order is the application order; duplicates are rejected
// @Tags         tax-groups
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateTaxGroupRequest  true  "Create Tax Group Payload"
// @Success      201      {object}  response.Success{data=service.TaxGroupResponse}
// @Failure      400      {object}  response.Failure
// @Router       /api/tax-groups [post]
func (h *TaxGroupHandler) CreateTaxGroup(c *gin.Context) {
	var req service.CreateTaxGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	group, err := h.taxGroupService.CreateTaxGroup(c.Request.Context(), req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, response.Created("Tax group created", group))
}

// UpdateTaxGroup applies a partial update; tax_ids, when sent, replaces the whole list
// @Summary      Update tax group
// @Tags         tax-groups
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "Tax group ID"
// @Param        payload  body      service.UpdateTaxGroupRequest  true  "Fields to change"
// @Success      200      {object}  response.Success{data=service.TaxGroupResponse}
// @Failure      400      {object}  response.Failure
// @Failure      404      {object}  response.Failure
// @Router       /api/tax-groups/{id} [patch]
func (h *TaxGroupHandler) UpdateTaxGroup(c *gin.Context) {
	var req service.UpdateTaxGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	group, err := h.taxGroupService.UpdateTaxGroup(c.Request.Context(), c.Param("id"), req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, response.OK("Tax group updated", group))
}

// DeactivateTaxGroup makes the group unavailable for calculation
// @Summary      Deactivate tax group
// @Tags         tax-groups
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Tax group ID"
// @Success      200  {object}  response.Success{data=service.TaxGroupResponse}
// @Failure      404  {object}  response.Failure
// @Router       /api/tax-groups/{id}/deactivate [post]
func (h *TaxGroupHandler) DeactivateTaxGroup(c *gin.Context) {
	group, err := h.taxGroupService.DeactivateTaxGroup(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, response.OK("Tax group deactivated", group))
}

// DeleteTaxGroup soft-deletes a tax group
// @Summary      Delete tax group
// @Tags         tax-groups
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Tax group ID"
// @Success      200  {object}  response.Success
// @Failure      404  {object}  response.Failure
// @Router       /api/tax-groups/{id} [delete]
func (h *TaxGroupHandler) DeleteTaxGroup(c *gin.Context) {
	if err := h.taxGroupService.DeleteTaxGroup(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	respond(c, response.OK("Tax group deleted", nil))
}
