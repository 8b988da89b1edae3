package api

import (
	"net/http"
	"strconv"

	reqdto "hotel-admin/internal/handler/dto/request"
	"hotel-admin/internal/handler/httperr"
	"hotel-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// pathID parses an integer path parameter, aborting with 422 when it is not one.
// Zero and negative ids are plain lookups that end in 404.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", name+" must be an integer")
		return 0, false
	}
	return id, true
}

func bindPage(c *gin.Context) (queries.Page, bool) {
	var q reqdto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortValidation(c, err)
		return queries.Page{}, false
	}
	page, err := q.ToPage()
	if err != nil {
		httperr.AbortValidation(c, err)
		return queries.Page{}, false
	}
	return page, true
}
