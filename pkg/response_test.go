package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteResponseBytes(t *testing.T) {
	w := httptest.NewRecorder()

	testJson := `{"key":"val"}`
	WriteResponseBytes(w, ContentType.JSON, []byte(testJson), http.StatusOK)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ContentType.JSON, w.Header().Get("Content-Type"))
	assert.Equal(t, testJson, w.Body.String())
}

func TestWriteResponseBytesOK(t *testing.T) {
	w := httptest.NewRecorder()

	testJson := `{"key":"val"}`
	WriteResponseBytesOK(w, ContentType.JSON, []byte(testJson))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ContentType.JSON, w.Header().Get("Content-Type"))
	assert.Equal(t, testJson, w.Body.String())
}

func TestWriteResponse(t *testing.T) {
	w := httptest.NewRecorder()

	WriteResponse(w, ContentType.Text, "bad request", http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ContentType.Text, w.Header().Get("Content-Type"))
	assert.Equal(t, "bad request", w.Body.String())
}

func TestWriteTextResponseOK(t *testing.T) {
	w := httptest.NewRecorder()

	WriteTextResponseOK(w, "all good")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ContentType.Text, w.Header().Get("Content-Type"))
	assert.Equal(t, "all good", w.Body.String())
}
