package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/openair/aqimon/internal/pkg/constants"
)

// Binder decodes JSON bodies with sonic and delegates everything else to
// echo's default binder.
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return nil
	}

	contentType := req.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		return b.fallback.Bind(i, c)
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return constants.NewCodedError(http.StatusBadRequest, "failed to read request body")
	}

	if err := sonic.Unmarshal(body, i); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, "malformed json: "+err.Error())
	}

	return nil
}

// Validator adapts go-playground/validator to echo, turning tag failures
// into 400 coded errors.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}
	return nil
}
