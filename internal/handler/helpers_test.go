package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jmpanasiti/rda-platform-api/internal/service"
)

func errRoute(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/boom", func(c *gin.Context) { respondErr(c, err) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	return w
}

func TestRespondErrStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{service.BadRequest("bad"), http.StatusBadRequest},
		{service.Unauthorized("no"), http.StatusUnauthorized},
		{service.Forbidden("nope"), http.StatusForbidden},
		{service.NotFound("missing"), http.StatusNotFound},
		{errors.New("driver exploded"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := errRoute(tc.err)
		assert.Equal(t, tc.code, w.Code)
	}
}

// Internal failures must never leak their message to the client.
func TestRespondErrHidesInternalDetail(t *testing.T) {
	w := errRoute(errors.New("pq: connection refused on 10.0.0.3"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestPageParamsDefaultsAndBounds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/list", func(c *gin.Context) {
		limit, offset, ok := pageParams(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"limit": limit, "offset": offset})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/list", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"limit":10,"offset":0}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/list?limit=25&offset=20", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"limit":25,"offset":20}`, w.Body.String())

	// Zero is a valid limit (empty page), negatives are not.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/list?limit=0", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"limit":0,"offset":0}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/list?limit=-1", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUsernameValidationRule(t *testing.T) {
	cases := []struct {
		username string
		valid    bool
	}{
		{"valid_username", true},
		{"short", false},       // under 8 chars
		{"1starts_digit", false},
		{"has space here", false},
		{"abcdefgh", true},
	}
	for _, tc := range cases {
		err := validate.Var(tc.username, "username")
		if tc.valid {
			assert.NoError(t, err, tc.username)
		} else {
			assert.Error(t, err, tc.username)
		}
	}
}
