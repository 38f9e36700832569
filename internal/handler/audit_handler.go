package handler

import (
	"taxengine/internal/middleware"
	"taxengine/internal/service"
	"taxengine/pkg/pagination"
	"taxengine/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/audit-logs")
	group.Use(middleware.RequireRole(middleware.WriteRoles...)) // Protect history logs
	{
		group.GET("", h.GetAuditLogs)
	}
}

// GetAuditLogs lists tax catalog changes, newest first
// @Summary      Get audit logs
// @Description  Retrieves the change history of tax rules and tax groups
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        entity_id  query     string  false  "Restrict to one rule or group"
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Number of items per page (default 20)"
// @Success      200        {object}  response.Success{data=pagination.Page[service.AuditLogResponse]}
// @Failure      500        {object}  response.Failure
// @Router       /api/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	params := pagination.Parse(c, nil, "created_at")

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), c.Query("entity_id"), params.Page, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, response.OK("Audit logs retrieved", pagination.Page[service.AuditLogResponse]{
		Items: logs,
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
	}))
}
