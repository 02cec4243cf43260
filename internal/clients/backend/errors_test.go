package backend

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestErrorText(t *testing.T) {
	withMessage := &RequestError{StatusCode: 404, Message: "Holding not found", Endpoint: "/api/portfolio/9"}
	assert.Equal(t, "backend error: Holding not found (status: 404, endpoint: /api/portfolio/9)", withMessage.Error())

	bare := &RequestError{StatusCode: 500, Endpoint: "/api/portfolio"}
	assert.Equal(t, "backend error: status 500 (endpoint: /api/portfolio)", bare.Error())
}

func TestTransportErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	terr := &TransportError{Endpoint: "/api/portfolio", Err: cause}

	assert.ErrorIs(t, terr, cause)
	assert.Contains(t, terr.Error(), "backend unreachable")
	assert.Contains(t, terr.Error(), "/api/portfolio")
}
