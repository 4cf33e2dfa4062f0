package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{fmt.Errorf("%w: topic is required", ErrValidation), http.StatusBadRequest},
		{ErrInvalidCredentials, http.StatusBadRequest},
		{ErrEmailRegistered, http.StatusConflict},
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrUserNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: context deadline exceeded", ErrDeadlineExceeded), http.StatusGatewayTimeout},
		{fmt.Errorf("%w: 429", ErrUpstream), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFor(tc.err), "err=%v", tc.err)
	}
}
