package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-karte/internal/auth"
	"github.com/BruksfildServices01/salon-karte/internal/httperr"
)

func TestWriteErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, tc := range []struct {
		err  error
		want int
	}{
		{&auth.AuthError{Message: "Invalid credentials"}, http.StatusUnauthorized},
		{httperr.ErrBusiness("client_not_found"), http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", httperr.ErrBusiness("invalid_visit_date")), http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		writeError(c, tc.err, "test_failed")
		if w.Code != tc.want {
			t.Fatalf("%v: got %d want %d", tc.err, w.Code, tc.want)
		}
	}
}
