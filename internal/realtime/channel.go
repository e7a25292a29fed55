package realtime

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// UserChannel returns the private channel name owned by a user. The pattern
// is part of the wire contract and case-sensitive.
func UserChannel(userID int64) string {
	return fmt.Sprintf("private-user-%d", userID)
}

// Signer issues and verifies channel authorization tokens. A token binds one
// socket ID to one channel name; it is useless for any other socket or
// channel.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

func (s *Signer) Sign(socketID, channel string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(socketID + ":" + channel))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Signer) Verify(socketID, channel, token string) bool {
	expected := s.Sign(socketID, channel)
	return hmac.Equal([]byte(expected), []byte(token))
}
