package jwt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-jose/go-jose/v3"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrUnknownKey   = errors.New("unknown signing key")
	ErrWrongParty   = errors.New("token issued for another client")
)

// Claims are the session claims issued by the identity provider.
type Claims struct {
	AuthorizedParty string `json:"azp,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates RS256 session tokens against the provider's JWKS.
type Verifier struct {
	keys     jose.JSONWebKeySet
	clientID string
}

// NewVerifier creates a verifier. An empty clientID skips the azp check.
func NewVerifier(keys jose.JSONWebKeySet, clientID string) *Verifier {
	return &Verifier{keys: keys, clientID: clientID}
}

// FetchJWKS downloads the provider key set.
func FetchJWKS(ctx context.Context, client *http.Client, url string) (jose.JSONWebKeySet, error) {
	var set jose.JSONWebKeySet

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return set, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return set, fmt.Errorf("failed to fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return set, fmt.Errorf("failed to fetch jwks: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return set, fmt.Errorf("failed to decode jwks: %w", err)
	}
	return set, nil
}

// Verify validates a token and returns its claims
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, v.keyFunc, jwt.WithValidMethods([]string{"RS256"}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, ErrUnknownKey):
			return nil, ErrUnknownKey
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if v.clientID != "" && claims.AuthorizedParty != v.clientID {
		return nil, ErrWrongParty
	}
	return claims, nil
}

func (v *Verifier) keyFunc(token *jwt.Token) (interface{}, error) {
	kid, _ := token.Header["kid"].(string)
	keys := v.keys.Key(kid)
	if len(keys) == 0 {
		return nil, ErrUnknownKey
	}
	return keys[0].Key, nil
}
