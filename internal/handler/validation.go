package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"taskboard/internal/patch"
)

// Report validation failures using the JSON field names the client sent,
// not Go struct field names.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindError turns a binding or payload-normalization failure into a
// response body that enumerates the offending fields.
func bindError(message string, err error) gin.H {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		fields := make([]string, 0, len(verr))
		for _, fe := range verr {
			fields = append(fields, fe.Field())
		}
		return gin.H{"error": message, "fields": fields}
	}

	var perr *patch.Error
	if errors.As(err, &perr) {
		return gin.H{"error": message, "fields": perr.Fields}
	}

	return gin.H{"error": message, "detail": err.Error()}
}

// pathID parses the :id route parameter. On failure it writes the 400
// response itself and reports false.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
