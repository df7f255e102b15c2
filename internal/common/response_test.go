package common_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archimart/quote-api/internal/common"
)

func TestWriteErrorAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	common.WriteError(rec, &common.AppError{
		Code:       "NOT_FOUND",
		Message:    "session not found",
		HTTPStatus: http.StatusNotFound,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error common.ErrorBody `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "NOT_FOUND", body.Error.Code)
	require.Equal(t, "session not found", body.Error.Message)
}

func TestWriteErrorWrappedAppError(t *testing.T) {
	appErr := &common.AppError{Code: "BAD_REQUEST", Message: "invalid body", HTTPStatus: http.StatusBadRequest}
	rec := httptest.NewRecorder()
	common.WriteError(rec, fmt.Errorf("decode: %w", appErr))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "BAD_REQUEST")
}

func TestWriteErrorFallsBackToInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	common.WriteError(rec, errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "INTERNAL")
	require.NotContains(t, rec.Body.String(), "boom")
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))
	err := common.DecodeJSON(req, &dst)
	require.Error(t, err)

	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "BAD_REQUEST", appErr.Code)
	require.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
}

func TestClientIPPrecedence(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	require.Equal(t, "192.0.2.1", common.ClientIP(req))

	req.Header.Set("X-Real-IP", "198.51.100.2")
	require.Equal(t, "198.51.100.2", common.ClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.3, 198.51.100.2")
	require.Equal(t, "203.0.113.3", common.ClientIP(req))
}
