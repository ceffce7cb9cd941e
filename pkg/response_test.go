package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteResponseBytes(t *testing.T) {
	rec := httptest.NewRecorder()

	testJson := `{"key":"val"}`
	WriteResponseBytes(rec, ContentType.JSON, []byte(testJson), http.StatusOK)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ContentType.JSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, testJson, rec.Body.String())
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, map[string]int{"sets": 3}, http.StatusCreated)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"sets":3}`, rec.Body.String())

	rec = httptest.NewRecorder()
	WriteJSON(rec, func() {}, http.StatusOK)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteDetail(rec, "Incorrect email or password", http.StatusUnauthorized)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Incorrect email or password"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	WriteDetail(rec, []map[string]string{{"msg": "field required"}}, http.StatusUnprocessableEntity)
	assert.JSONEq(t, `{"detail":[{"msg":"field required"}]}`, rec.Body.String())
}
