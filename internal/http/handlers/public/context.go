package public

import (
	handlershared "github.com/ikay-store/api/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, "user_id")
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}
