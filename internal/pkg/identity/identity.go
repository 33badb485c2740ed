package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidToken = errors.New("invalid token")

type Verifier interface {
	Verify(token string) (owner string, err error)
}

// HMACVerifier проверяет токены вида base64url(owner).base64url(sig),
// где sig = HMAC-SHA256(owner, secret). Состояния на сервере нет,
// владельца восстанавливаем из самого токена.
type HMACVerifier struct {
	secret []byte
}

func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

func (v *HMACVerifier) Verify(token string) (string, error) {
	payload, gotSig, ok := strings.Cut(token, ".")
	if !ok {
		return "", ErrInvalidToken
	}

	owner, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil || len(owner) == 0 {
		return "", ErrInvalidToken
	}

	sig, err := base64.RawURLEncoding.DecodeString(gotSig)
	if err != nil {
		return "", ErrInvalidToken
	}

	if !hmac.Equal(sig, v.sign(owner)) {
		return "", ErrInvalidToken
	}

	return string(owner), nil
}

// Issue выдает токен для владельца. Используется в тестах и dev-утилитах,
// проверка симметрична.
func (v *HMACVerifier) Issue(owner string) string {
	payload := []byte(owner)
	return base64.RawURLEncoding.EncodeToString(payload) +
		"." +
		base64.RawURLEncoding.EncodeToString(v.sign(payload))
}

func (v *HMACVerifier) sign(payload []byte) []byte {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)
	return mac.Sum(nil)
}
