package handler

import (
	"net/http"
	"strconv"

	"taxengine/pkg/apperror"
	"taxengine/pkg/response"

	"github.com/gin-gonic/gin"
)

func respond(c *gin.Context, env response.Envelope) {
	c.JSON(env.HTTPStatus(), env)
}

func respondError(c *gin.Context, err error) {
	respond(c, response.FromError(err))
}

func badPayload(c *gin.Context, err error) {
	respond(c, response.Fail(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
}

// currentUserID is the token subject set by middleware.RequireRole
func currentUserID(c *gin.Context) string {
	userID, _ := c.Get("userID")
	userIDStr, _ := userID.(string)
	return userIDStr
}

// boolQuery parses an optional boolean query parameter
func boolQuery(c *gin.Context, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperror.NewValidation(key, "must be true or false")
	}
	return &v, nil
}
