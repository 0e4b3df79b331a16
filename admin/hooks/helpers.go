package hooks

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses the :id route param. A non-numeric id behaves like a
// missing record, so this writes the 404 itself and reports failure.
func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c, "record not found")
		return 0, false
	}
	return id, true
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

func serverError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
