package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserChannel(t *testing.T) {
	assert.Equal(t, "private-user-123", UserChannel(123))
}

func TestSigner_RoundTrip(t *testing.T) {
	s := NewSigner("secret")

	token := s.Sign("sock-1", "private-user-7")
	assert.True(t, s.Verify("sock-1", "private-user-7", token))
}

func TestSigner_TokenBoundToSocketAndChannel(t *testing.T) {
	s := NewSigner("secret")
	token := s.Sign("sock-1", "private-user-7")

	// different socket
	assert.False(t, s.Verify("sock-2", "private-user-7", token))
	// different channel
	assert.False(t, s.Verify("sock-1", "private-user-8", token))
	// tampered token
	assert.False(t, s.Verify("sock-1", "private-user-7", token+"00"))
}

func TestSigner_DifferentSecretsDisagree(t *testing.T) {
	a := NewSigner("alpha")
	b := NewSigner("beta")

	token := a.Sign("sock-1", "private-user-7")
	assert.False(t, b.Verify("sock-1", "private-user-7", token))
}
