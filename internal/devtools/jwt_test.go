package devtools

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"
)

func segment(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func TestDecodeJWT(t *testing.T) {
	token := strings.Join([]string{
		segment(`{"alg":"HS256","typ":"JWT"}`),
		segment(`{"sub":"123","exp":1700000000,"iat":1690000000}`),
		"c2lnbmF0dXJl",
	}, ".")

	now := time.Unix(1750000000, 0)
	got, err := DecodeJWT(token, now)
	if err != nil {
		t.Fatalf("DecodeJWT failed: %v", err)
	}

	if got.Header.Error != "" {
		t.Errorf("unexpected header error: %s", got.Header.Error)
	}
	if got.Header.JSON != "{\n  \"alg\": \"HS256\",\n  \"typ\": \"JWT\"\n}" {
		t.Errorf("unexpected header json %q", got.Header.JSON)
	}
	if !strings.Contains(got.Payload.JSON, `"sub": "123"`) {
		t.Errorf("expected payload to contain sub, got %q", got.Payload.JSON)
	}
	if got.Signature != "c2lnbmF0dXJl" {
		t.Errorf("unexpected signature %q", got.Signature)
	}
	if got.ExpiresAt == nil || got.ExpiresAt.Unix() != 1700000000 {
		t.Errorf("unexpected expires_at %v", got.ExpiresAt)
	}
	if got.IssuedAt == nil || got.IssuedAt.Unix() != 1690000000 {
		t.Errorf("unexpected issued_at %v", got.IssuedAt)
	}
	if got.NotBefore != nil {
		t.Errorf("expected no not_before, got %v", got.NotBefore)
	}
	if !got.Expired {
		t.Error("expected token to be expired")
	}
}

func TestDecodeJWT_PaddedSegments(t *testing.T) {
	header := base64.URLEncoding.EncodeToString([]byte(`{"alg":"none"}`))
	token := header + "." + segment(`{"a":1}`) + "."

	got, err := DecodeJWT(token, time.Now())
	if err != nil {
		t.Fatalf("DecodeJWT failed: %v", err)
	}
	if got.Header.Error != "" {
		t.Errorf("unexpected header error: %s", got.Header.Error)
	}
	if got.Expired {
		t.Error("token without exp must not be expired")
	}
}

func TestDecodeJWT_BadPart(t *testing.T) {
	token := "!!!." + segment("not json") + ".sig"

	got, err := DecodeJWT(token, time.Now())
	if err != nil {
		t.Fatalf("DecodeJWT failed: %v", err)
	}
	if got.Header.Error == "" {
		t.Error("expected header decode error")
	}
	if got.Payload.Error == "" {
		t.Error("expected payload json error")
	}
	if got.Payload.Raw != "not json" {
		t.Errorf("expected raw payload to be kept, got %q", got.Payload.Raw)
	}
}

func TestDecodeJWT_WrongPartCount(t *testing.T) {
	for _, tok := range []string{"", "a.b", "a.b.c.d"} {
		if _, err := DecodeJWT(tok, time.Now()); !errors.Is(err, ErrMalformedJWT) {
			t.Errorf("DecodeJWT(%q): expected ErrMalformedJWT, got %v", tok, err)
		}
	}
}
