package v1

import (
	"strconv"

	"jobboard-backend/internal/delivery/http/middleware"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// pathID parses a positive integer path parameter. On failure it records a 400
// and returns false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest("Invalid " + name))
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return false
	}
	return true
}

func bindPage(c *gin.Context) (domain.Pagination, bool) {
	var page domain.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return page, false
	}
	return page, true
}

func callerEmail(c *gin.Context) string {
	return middleware.UserEmail(c)
}
