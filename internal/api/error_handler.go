package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openair/aqimon/internal/domain"
	"github.com/openair/aqimon/internal/pkg/constants"
)

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	msg := err.Error()
	code := http.StatusInternalServerError

	probe := err
	for probe != nil {
		if ce, ok := probe.(*constants.CodedError); ok {
			code = ce.Code()
			break
		}
		if he, ok := probe.(*echo.HTTPError); ok {
			code = he.Code
			break
		}
		probe = errors.Unwrap(probe)
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
