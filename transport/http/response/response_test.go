package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"travelog/shared/failure"
	"travelog/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	t.Run("failures keep their message and code", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		response.WithError(recorder, failure.Unauthorized("Credenciales incorrectas"))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Credenciales incorrectas")
	})

	t.Run("not found carries the entity name", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		response.WithError(recorder, failure.NotFound("album"))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "album")
	})

	t.Run("internal detail never reaches the client", func(t *testing.T) {
		backendErr := fmt.Errorf("failed to insert data (album): %w", errors.New("pq: connection refused"))

		recorder := httptest.NewRecorder()
		response.WithError(recorder, backendErr)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "pq:")
		assert.NotContains(t, recorder.Body.String(), "insert")
		assert.Contains(t, recorder.Body.String(), "inténtalo de nuevo")
	})
}

func TestWithJSONNullData(t *testing.T) {
	recorder := httptest.NewRecorder()
	response.WithJSON(recorder, http.StatusOK, nil)

	assert.JSONEq(t, `{"data":null}`, recorder.Body.String())
}
