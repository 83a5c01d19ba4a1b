package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"loungepass/config"
	"loungepass/shared/timezone"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid pass token")
	ErrExpiredToken = errors.New("pass token has expired")
	ErrInvalidClaim = errors.New("invalid pass token claim")
)

// PassClaims is carried inside the QR code shown at the lounge entrance. The
// scanner verifies the signature offline and matches the reference against the
// booking store.
type PassClaims struct {
	Reference  string `json:"reference"`
	LoungeID   string `json:"lounge_id"`
	LoungeName string `json:"lounge_name"`
	Date       string `json:"date"`
	Guests     int    `json:"guests"`
	jwt.RegisteredClaims
}

// Pass signs and verifies lounge entry passes.
type Pass interface {
	Generate(reference, loungeID, loungeName, date string, guests int) (token string, err error)
	Validate(tokenString string) (*PassClaims, error)
}

type passService struct {
	config *config.Config
}

// New creates a new pass token service
func New(cfg *config.Config) Pass {
	return &passService{
		config: cfg,
	}
}

// Generate signs an HS256 pass token for a confirmed booking.
func (s *passService) Generate(reference, loungeID, loungeName, date string, guests int) (string, error) {
	now := timezone.Now()
	expiresAt := now.Add(time.Duration(s.config.JWT.PassExpireMin) * time.Minute)

	claims := PassClaims{
		Reference:  reference,
		LoungeID:   loungeID,
		LoungeName: loungeName,
		Date:       date,
		Guests:     guests,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.App.Name,
			Subject:   reference,
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.config.JWT.PassSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign pass token: %w", err)
	}

	return signedToken, nil
}

// Validate verifies the signature and parses a pass token.
func (s *passService) Validate(tokenString string) (*PassClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &PassClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWT.PassSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*PassClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Reference == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}
