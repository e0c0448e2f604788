package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponse_Error(t *testing.T) {
	assert.Equal(t, "invalid request", ErrorResponse{Message: "invalid request"}.Error())
	assert.Equal(t, "invalid request: score out of range",
		ErrorResponse{Message: "invalid request", ErrorDetails: "score out of range"}.Error())
}

func TestNewErrorResponse(t *testing.T) {
	// without inner error
	e := NewErrorResponse("msg", nil)
	require.Equal(t, "msg", e.Message)
	require.Empty(t, e.ErrorDetails)
	require.False(t, e.Timestamp.IsZero())
	require.Less(t, time.Since(e.Timestamp), time.Second)

	// with inner error
	e2 := NewErrorResponse("msg", errors.New("boom"))
	require.Equal(t, "msg", e2.Message)
	require.Equal(t, "boom", e2.ErrorDetails)
}
