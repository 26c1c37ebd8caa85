package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		kind ErrorKind
		want int
	}{
		{KindValidation, http.StatusUnprocessableEntity},
		{KindInvalid, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		e := &AppError{Kind: tc.kind, Message: "x"}
		assert.Equal(t, tc.want, e.HTTPStatus())
	}
}

func TestStateMachineSentinelsAreBadRequest(t *testing.T) {
	for _, err := range []*AppError{ErrSelfRequest, ErrAlreadyFriends, ErrDuplicatePending} {
		assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
	}
}

func TestAsAppErrorUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("while sending: %w", ErrAlreadyFriends)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrAlreadyFriends.Message, appErr.Message)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}
