package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

type accessTokenClaims struct {
	Subject   string `json:"sub"`
	ExpiresAt int64  `json:"exp"`
	Admin     bool   `json:"admin"`
}

func parseAccessToken(jwtStr string, secret string) (*accessTokenClaims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}

	parsed := accessTokenClaims{}
	if sub, ok := claims["sub"].(string); ok {
		parsed.Subject = sub
	}
	if exp, ok := claims["exp"].(float64); ok {
		parsed.ExpiresAt = int64(exp)
	}
	if admin, ok := claims["admin"].(bool); ok {
		parsed.Admin = admin
	}

	if parsed.Subject == "" {
		return nil, fmt.Errorf("token missing sub claim")
	}
	if time.Now().UTC().Unix() > parsed.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return &parsed, nil
}

func (m ApiHandler) authMiddleware(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		returnErrorJsonCode(fmt.Errorf("missing bearer token"), c, 401)
		return
	}
	jwtStr := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := parseAccessToken(jwtStr, m.JwtSecret)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		returnErrorJsonCode(fmt.Errorf("misformatted user account id"), c, 401)
		return
	}

	c.Set("userAccountID", claims.Subject)
	c.Set("isAdmin", claims.Admin)
	c.Next()
}

func (m ApiHandler) adminMiddleware(c *gin.Context) {
	isAdmin, ok := c.Get("isAdmin")
	if !ok || isAdmin != true {
		returnErrorJsonCode(fmt.Errorf("admin access required"), c, 403)
		return
	}
	c.Next()
}

// getUserAccountID reads the authenticated user set by authMiddleware.
func getUserAccountID(c *gin.Context) (uuid.UUID, error) {
	ginUserAccountID, ok := c.Get("userAccountID")
	if !ok {
		return uuid.Nil, fmt.Errorf("must be logged in")
	}
	userAccountIDStr, ok := ginUserAccountID.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("misformatted user account id")
	}
	return uuid.Parse(userAccountIDStr)
}
