package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	err := NewAppError(http.StatusBadRequest, CodeValidation, "bad", ErrBadRequest)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, "bad", err.Message)
	assert.Equal(t, ErrBadRequest.Error(), err.Error())

	badReq := BadRequest("invalid wallet address format")
	assert.Equal(t, http.StatusBadRequest, badReq.Status)
	assert.Equal(t, CodeValidation, badReq.Code)
	assert.ErrorIs(t, badReq, ErrInvalidInput)

	unauth := Unauthorized("missing api key")
	assert.Equal(t, http.StatusUnauthorized, unauth.Status)
	assert.Equal(t, CodeUnauthorized, unauth.Code)
	assert.ErrorIs(t, unauth, ErrUnauthorized)

	notFound := NotFound("missing")
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, CodeNotFound, notFound.Code)
}

func TestAppError_StoreErrorHidesDetail(t *testing.T) {
	driverErr := stderrors.New("pq: connection refused")
	err := StoreError(driverErr)

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, CodeInternalError, err.Code)
	assert.Equal(t, "internal server error", err.Message)
	assert.ErrorIs(t, err, ErrStoreFailure)
	assert.ErrorIs(t, err, driverErr)
}

func TestAppError_MessageFallback(t *testing.T) {
	err := &AppError{Status: http.StatusInternalServerError, Code: CodeInternalError, Message: "oops"}
	assert.Equal(t, "oops", err.Error())
}
