package admin

import (
	"strconv"

	handlershared "github.com/ikay-store/api/internal/http/handlers/shared"
	"github.com/ikay-store/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid id", nil)
		return 0, false
	}
	return uint(id), true
}
