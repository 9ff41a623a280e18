package helpers

import (
	"crypto/rand"
	"encoding/hex"
)

// accessTokenBytes is the entropy of an access token; hex-encoding it
// yields the 256-character credential stored on the user record.
const accessTokenBytes = 128

// NewAccessToken generates the opaque bearer credential assigned to a
// user at signup. It is plain random hex, not a signed token: the auth
// gate matches it by equality against the credential store.
func NewAccessToken() (string, error) {
	b := make([]byte, accessTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
