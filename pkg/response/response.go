package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostelhub/backend/pkg/apperror"
)

// Error writes a standardized error response, logging internal errors.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"error": err.Error()})
}

// ValidationFailed writes per-field validation errors the way the original
// forms surfaced them: one message per field, submission blocked.
func ValidationFailed(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}
