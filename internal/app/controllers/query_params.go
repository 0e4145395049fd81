package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// queryString returns the trimmed query value, or nil when absent or blank.
func queryString(c *gin.Context, key string) *string {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return nil
	}
	return &value
}

// queryInt returns the query value as an int. A non-numeric value is
// treated the same as an absent one: the filter is dropped.
func queryInt(c *gin.Context, key string) *int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

// isMultipart reports whether the request carries a multipart form.
func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}
