package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionTokenTTL = 72 * time.Hour

// SessionClaims is what the API trusts between requests once the Firebase
// handshake is done.
type SessionClaims struct {
	UserID    string
	Email     string
	Anonymous bool
	IsAdmin   bool
}

// IssueSessionToken signs a bearer token with JWT_SECRET.
func IssueSessionToken(sc SessionClaims) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   sc.UserID,
		"email":     sc.Email,
		"anonymous": sc.Anonymous,
		"is_admin":  sc.IsAdmin,
		"exp":       time.Now().Add(sessionTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseSessionToken validates the signature and expiry and returns the claims.
func ParseSessionToken(tokenString string) (SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return SessionClaims{}, errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, errors.New("invalid token claims")
	}

	sc := SessionClaims{}
	sc.UserID, _ = claims["user_id"].(string)
	sc.Email, _ = claims["email"].(string)
	sc.Anonymous, _ = claims["anonymous"].(bool)
	sc.IsAdmin, _ = claims["is_admin"].(bool)
	if sc.UserID == "" {
		return SessionClaims{}, errors.New("token missing user_id")
	}
	return sc, nil
}
