package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"world-chat/domain"
)

const issuer = "world-chat"

// PlayerClaims is what the login server vouches for when it hands a token to a game client.
type PlayerClaims struct {
	PlayerID domain.GUID         `json:"player_id"`
	Security domain.SecurityTier `json:"security"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token for a player with HS256.
func GenerateToken(secret []byte, player domain.GUID, security domain.SecurityTier, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &PlayerClaims{
		PlayerID: player,
		Security: security,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidateToken checks signature, issuer and expiration.
func ValidateToken(secret []byte, tokenString string) (*PlayerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &PlayerClaims{}, func(token *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*PlayerClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	if claims.PlayerID == 0 {
		return nil, fmt.Errorf("token has no player")
	}
	return claims, nil
}
