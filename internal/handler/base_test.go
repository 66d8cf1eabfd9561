package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pademacena/base-api/internal/config"
	"github.com/pademacena/base-api/internal/errs"
	"github.com/pademacena/base-api/internal/server"
	"github.com/pademacena/base-api/internal/validation"
)

type echoRequest struct {
	Message string `json:"message" validate:"required"`
}

func (r *echoRequest) Validate() error { return validation.Struct(r) }

type echoResponse struct {
	Message string `json:"message"`
}

func newBaseHandler() Handler {
	log := zerolog.Nop()
	return NewHandler(server.New(config.Default(), &log))
}

func invoke(t *testing.T, fn echo.HandlerFunc, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, fn(e.NewContext(req, rec))
}

func TestHandle_WritesJSONOnSuccess(t *testing.T) {
	h := newBaseHandler()

	fn := Handle(h, func(c echo.Context, req *echoRequest) (echoResponse, error) {
		return echoResponse{Message: req.Message}, nil
	}, http.StatusCreated, func() *echoRequest { return &echoRequest{} })

	rec, err := invoke(t, fn, `{"message":"hello"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"hello"}`, rec.Body.String())
}

func TestHandle_ReturnsValidationErrorBeforeHandler(t *testing.T) {
	h := newBaseHandler()

	called := false
	fn := Handle(h, func(c echo.Context, req *echoRequest) (echoResponse, error) {
		called = true
		return echoResponse{}, nil
	}, http.StatusOK, func() *echoRequest { return &echoRequest{} })

	_, err := invoke(t, fn, `{}`)
	require.Error(t, err)
	assert.False(t, called)

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestHandle_PropagatesHandlerError(t *testing.T) {
	h := newBaseHandler()
	want := errs.NewNotFoundError("User not found", false, nil)

	fn := Handle(h, func(c echo.Context, req *echoRequest) (echoResponse, error) {
		return echoResponse{}, want
	}, http.StatusOK, func() *echoRequest { return &echoRequest{} })

	_, err := invoke(t, fn, `{"message":"hello"}`)
	assert.Equal(t, want, err)
}

func TestHandleNoContent(t *testing.T) {
	h := newBaseHandler()

	fn := HandleNoContent(h, func(c echo.Context, req *echoRequest) error {
		return nil
	}, http.StatusNoContent, func() *echoRequest { return &echoRequest{} })

	rec, err := invoke(t, fn, `{"message":"bye"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandle_FreshPayloadPerRequest(t *testing.T) {
	h := newBaseHandler()

	var seen []string
	fn := Handle(h, func(c echo.Context, req *echoRequest) (echoResponse, error) {
		seen = append(seen, req.Message)
		return echoResponse{Message: req.Message}, nil
	}, http.StatusOK, func() *echoRequest { return &echoRequest{} })

	_, err := invoke(t, fn, `{"message":"first"}`)
	require.NoError(t, err)
	_, err = invoke(t, fn, `{"message":"second"}`)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, seen)
}
