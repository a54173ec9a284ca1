package devtools

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedJWT is returned when a token does not have three parts.
var ErrMalformedJWT = errors.New("a JWT must have 3 parts separated by dots")

// JWTPart is one decoded token segment. Error is set instead of JSON when the
// segment is not base64url-encoded JSON.
type JWTPart struct {
	Raw   string `json:"raw"`
	JSON  string `json:"json,omitempty"`
	Error string `json:"error,omitempty"`
}

// JWT is a decoded, unverified token.
type JWT struct {
	Header    JWTPart    `json:"header"`
	Payload   JWTPart    `json:"payload"`
	Signature string     `json:"signature"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	IssuedAt  *time.Time `json:"issued_at,omitempty"`
	NotBefore *time.Time `json:"not_before,omitempty"`
	Expired   bool       `json:"expired"`
}

// DecodeJWT splits and decodes token without verifying its signature. now
// decides whether the token is expired.
func DecodeJWT(token string, now time.Time) (*JWT, error) {
	parts := strings.Split(strings.TrimSpace(token), ".")
	if len(parts) != 3 {
		return nil, ErrMalformedJWT
	}

	parser := jwt.NewParser(jwt.WithPaddingAllowed())
	out := &JWT{
		Header:    decodePart(parser, parts[0]),
		Payload:   decodePart(parser, parts[1]),
		Signature: parts[2],
	}

	if out.Payload.Error != "" {
		return out, nil
	}
	var claims jwt.MapClaims
	if err := json.Unmarshal([]byte(out.Payload.Raw), &claims); err != nil {
		return out, nil
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = &exp.Time
		out.Expired = exp.Before(now)
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = &iat.Time
	}
	if nbf, err := claims.GetNotBefore(); err == nil && nbf != nil {
		out.NotBefore = &nbf.Time
	}
	return out, nil
}

func decodePart(p *jwt.Parser, seg string) JWTPart {
	raw, err := p.DecodeSegment(seg)
	if err != nil {
		return JWTPart{Error: "could not decode segment: " + err.Error()}
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return JWTPart{Raw: string(raw), Error: "segment is not JSON: " + err.Error()}
	}
	return JWTPart{Raw: string(raw), JSON: buf.String()}
}
