package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"babylog/pkg/utils"

	"github.com/gin-gonic/gin"
)

// wantsJSON reports whether the client asked for a JSON response rather
// than a browser redirect.
func wantsJSON(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	if strings.Contains(accept, "application/json") {
		return true
	}
	return strings.Contains(c.ContentType(), "application/json")
}

// bindForm binds the request body and folds binding failures into the
// invalid-input error so they surface as 400s.
func bindForm(c *gin.Context, obj any) error {
	if err := c.ShouldBind(obj); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}
	return nil
}

// parseUintParam reads a numeric path parameter. A zero return means the
// parameter was missing or malformed.
func parseUintParam(c *gin.Context, name string) uint {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// isOneOf reports whether err matches any of the given sentinels.
func isOneOf(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// redirectOnAccessError sends browser page requests back to the dashboard
// when the baby does not exist or does not belong to the caller. JSON
// clients get the usual error envelope. Returns true when the error was
// handled.
func redirectOnAccessError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, utils.ErrForbidden) || errors.Is(err, utils.ErrBabyNotFound) {
		if !wantsJSON(c) {
			c.Redirect(http.StatusFound, "/dashboard")
			return true
		}
	}
	utils.HandleServiceError(c, err)
	return true
}
