package service

import (
	"io"
	"testing"
	"time"

	"github.com/SulimanFURC/BE-HMS/internal/config"
	"github.com/SulimanFURC/BE-HMS/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

func testService() *Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Service{
		log:    log,
		config: &config.Config{JWTSecret: "test-secret"},
		now:    func() time.Time { return time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestIssueTokens(t *testing.T) {
	s := testService()
	user := &models.User{ID: 7, Username: "admin", Email: "admin@example.com"}

	pair, err := s.issueTokens(user)
	if err != nil {
		t.Fatalf("issueTokens: %v", err)
	}

	parse := func(raw string) jwt.MapClaims {
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			return []byte("test-secret"), nil
		}, jwt.WithoutClaimsValidation())
		if err != nil || !token.Valid {
			t.Fatalf("parse token: %v", err)
		}
		return claims
	}

	access := parse(pair.AccessToken)
	if sub, _ := access.GetSubject(); sub != "7" {
		t.Errorf("access sub = %q, want 7", sub)
	}
	if access["username"] != "admin" {
		t.Errorf("access username = %v, want admin", access["username"])
	}
	if use, _ := access["use"].(string); use == "refresh" {
		t.Error("access token must not be marked as refresh")
	}

	refresh := parse(pair.RefreshToken)
	if use, _ := refresh["use"].(string); use != "refresh" {
		t.Errorf("refresh use claim = %v, want refresh", refresh["use"])
	}

	accessExp, _ := access.GetExpirationTime()
	refreshExp, _ := refresh.GetExpirationTime()
	if !refreshExp.After(accessExp.Time) {
		t.Error("refresh token should outlive the access token")
	}
}
