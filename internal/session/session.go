package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the credential pair issued by the token endpoint. A zero
// Session means logged out.
type Session struct {
	AccessToken  string
	RefreshToken string
}

func (s Session) Empty() bool {
	return s.AccessToken == ""
}

// Claims is the subset of access-token claims the client displays. The
// token is parsed without signature verification: the server is the only
// party that trusts it, the client just reads what it already holds.
type Claims struct {
	Subject   string
	ExpiresAt *time.Time
}

var ErrNoSession = errors.New("no active session")

// AccessClaims decodes the access token's claims.
func (s Session) AccessClaims() (Claims, error) {
	if s.Empty() {
		return Claims{}, ErrNoSession
	}

	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(s.AccessToken, jwt.MapClaims{})
	if err != nil {
		return Claims{}, fmt.Errorf("parse access token: %w", err)
	}

	var claims Claims
	if sub, err := token.Claims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		claims.ExpiresAt = &t
	}
	return claims, nil
}

// Source is the read side of the store, injected into the transport.
type Source interface {
	Current() Session
}

// Store holds the process-wide credential pair.
type Store interface {
	Source
	Set(Session) error
	Clear() error
}
