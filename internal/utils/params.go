package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// IDParam parses a numeric path parameter such as :id or :application_id.
func IDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}

	return uint(id), nil
}
