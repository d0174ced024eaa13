package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"pokerpot-server/internal/config"
)

// Issuer issues the JWT
const Issuer = "pokerpot-server"

// Audience is the intended JWT audience
const Audience = "pokerpot-client"

// tokenTTL is how long a player has to reconnect with a token
const tokenTTL = time.Hour * 12

var secret []byte

// ErrNoSecret is returned when signing or validating before a secret is loaded
var ErrNoSecret = errors.New("jwt secret is not configured")

// Claims identify a seat in a room
type Claims struct {
	jwtgo.RegisteredClaims
	RoomCode string `json:"room"`
}

// LoadSecret loads the HMAC secret from the configuration
func LoadSecret() {
	SetSecret(config.Instance().JWT.Secret)
}

// SetSecret sets the HMAC secret directly
func SetSecret(s string) {
	if s == "" {
		logrus.Warn("jwt secret is empty, reconnect tokens are disabled")
		secret = nil
		return
	}

	secret = []byte(s)
}

// Sign will sign a reconnect token for the player in the room
func Sign(roomCode, playerID string) (string, error) {
	if secret == nil {
		return "", ErrNoSecret
	}

	now := time.Now()
	token := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, Claims{
		RegisteredClaims: jwtgo.RegisteredClaims{
			Audience:  jwtgo.ClaimStrings{Audience},
			ID:        uuid.New().String(),
			IssuedAt:  jwtgo.NewNumericDate(now),
			ExpiresAt: jwtgo.NewNumericDate(now.Add(tokenTTL)),
			Issuer:    Issuer,
			Subject:   playerID,
		},
		RoomCode: roomCode,
	})

	return token.SignedString(secret)
}

// ValidPlayer will validate a signed token and return the room code and player id it names
func ValidPlayer(signedString string) (roomCode string, playerID string, err error) {
	if secret == nil {
		return "", "", ErrNoSecret
	}

	token, err := jwtgo.ParseWithClaims(signedString, &Claims{}, func(token *jwtgo.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtgo.SigningMethodHMAC); !ok {
			return nil, errors.New("expected HS256 signing method")
		}

		return secret, nil
	}, jwtgo.WithAudience(Audience), jwtgo.WithIssuer(Issuer))

	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return "", "", fmt.Errorf("expected jwt.Claims, got %T", token.Claims)
	}

	if claims.Subject == "" || claims.RoomCode == "" {
		return "", "", errors.New("token is missing the player or room")
	}

	return claims.RoomCode, claims.Subject, nil
}
