package service

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"ansarullah_backend/internals/configs"
	subUserModel "ansarullah_backend/internals/features/users/subuser/model"
)

const defaultAccessTokenHours = 12

// IssueAccessToken signs a JWT for the given account. The role claim is what
// the middleware layer trusts for section gating, so it always comes from the
// stored account, never from the request.
func IssueAccessToken(u *subUserModel.SubUserModel) (string, time.Time, error) {
	expiresAt := time.Now().Add(accessTokenTTL())

	claims := jwt.MapClaims{
		"sub":      u.SubUserID.String(),
		"username": u.SubUserUsername,
		"role":     u.SubUserRole,
		"iat":      time.Now().Unix(),
		"exp":      expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}
	return signed, expiresAt, nil
}

// TokenExpiry reads the exp claim without verifying the signature. Used by
// logout to decide how long a blacklisted token must be retained.
func TokenExpiry(rawToken string) time.Time {
	parser := jwt.Parser{SkipClaimsValidation: true}
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(rawToken, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			return time.Unix(int64(exp), 0)
		}
	}
	return time.Now().Add(accessTokenTTL())
}

func accessTokenTTL() time.Duration {
	if v := os.Getenv("ACCESS_TOKEN_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Hour
		}
	}
	return defaultAccessTokenHours * time.Hour
}
