package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func post(t *testing.T, srv http.Handler, form url.Values) (rec *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/assemble", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return
}

func TestIndex(t *testing.T) {
	assert := assert.New(t)

	srv := NewServer()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(http.StatusOK, rec.Code)
	assert.Contains(rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(rec.Body.String(), `name="code"`)
	assert.Contains(rec.Body.String(), `name="format"`)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(http.StatusNotFound, rec.Code)
}

func TestAssemble(t *testing.T) {
	assert := assert.New(t)

	srv := NewServer()
	rec := post(t, srv, url.Values{
		"code":   {"start: ldi r1, 5\nword 0x80000000\nhalt"},
		"format": {"mif"},
	})
	assert.Equal(http.StatusOK, rec.Code)
	assert.Equal("application/json", rec.Header().Get("Content-Type"))

	var result Result
	err := json.Unmarshal(rec.Body.Bytes(), &result)
	assert.NoError(err)

	assert.Equal([]Word{
		{0, 0x0880_0005},
		{1, 0x8000_0000},
		{2, 0xd800_0000},
	}, result.Words)
	assert.True(strings.HasPrefix(result.Output, "-- "))
	assert.Contains(result.Output, "--   start:\n  0: 08800005;")
	if assert.Equal(1, len(result.Warnings)) {
		assert.Contains(result.Warnings[0], "line 2")
	}
}

func TestAssembleDefaultFormat(t *testing.T) {
	assert := assert.New(t)

	rec := post(t, NewServer(), url.Values{"code": {"nop"}})
	assert.Equal(http.StatusOK, rec.Code)

	var result Result
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Contains(result.Output, "  @0 D0000000 // nop")
	assert.NotNil(result.Warnings)
	assert.Empty(result.Warnings)
}

func TestAssembleErrors(t *testing.T) {
	assert := assert.New(t)

	srv := NewServer()

	rec := post(t, srv, url.Values{"code": {"nop"}, "format": {"hex"}})
	assert.Equal(http.StatusBadRequest, rec.Code)
	assert.JSONEq(`{"error": "invalid format"}`, rec.Body.String())

	rec = post(t, srv, url.Values{"code": {"nop\nfoo r1"}, "format": {"mem"}})
	assert.Equal(http.StatusUnprocessableEntity, rec.Code)

	var failure Failure
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &failure))
	assert.Contains(failure.Error, "line 2")
	assert.Contains(failure.Error, "unknown instruction name")

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assemble", nil))
	assert.Equal(http.StatusMethodNotAllowed, rec.Code)
}
