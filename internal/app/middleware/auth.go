package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"leadflow/internal/app/config"
	"leadflow/internal/app/ds"
	"leadflow/internal/app/dto"
)

const tokenIssuer = "leadflow"

type AuthMiddleware struct {
	Config *config.Config
}

func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{Config: cfg}
}

// WithAdminCheck пропускает запрос с ADMIN_SECRET или с токеном, выданным в обмен на него
func (am *AuthMiddleware) WithAdminCheck() gin.HandlerFunc {
	return gin.HandlerFunc(func(gCtx *gin.Context) {
		token := strings.TrimSpace(gCtx.GetHeader("Authorization"))
		// Убираем префикс "Bearer " если он есть
		if len(token) > 7 && strings.EqualFold(token[:7], "Bearer ") {
			token = strings.TrimSpace(token[7:])
		}

		if token == "" {
			unauthorized(gCtx)
			return
		}

		if SecretMatches(token, am.Config.AdminSecret) {
			gCtx.Set("adminAuth", "secret")
			gCtx.Next()
			return
		}

		claims, err := am.parseToken(token)
		if err != nil {
			logrus.Debug("admin token rejected: ", err)
			unauthorized(gCtx)
			return
		}

		gCtx.Set("adminAuth", "token")
		gCtx.Set("adminTokenID", claims.ID)
		gCtx.Next()
	})
}

func unauthorized(gCtx *gin.Context) {
	gCtx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
}

// SecretMatches сравнивает секреты за постоянное время
func SecretMatches(given, secret string) bool {
	return secret != "" && subtle.ConstantTimeCompare([]byte(given), []byte(secret)) == 1
}

// IssueAdminToken подписывает токен администратора секретом ADMIN_SECRET
func (am *AuthMiddleware) IssueAdminToken(now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(am.Config.JWT.ExpiresIn)
	token := jwt.NewWithClaims(am.Config.JWT.SigningMethod, ds.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: ds.RoleAdmin,
	})

	signed, err := token.SignedString([]byte(am.Config.AdminSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// parseToken парсит и валидирует JWT токен
func (am *AuthMiddleware) parseToken(tokenString string) (*ds.AdminClaims, error) {
	claims := &ds.AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(am.Config.AdminSecret), nil
	},
		jwt.WithValidMethods([]string{am.Config.JWT.SigningMethod.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Role != ds.RoleAdmin {
		return nil, errors.New("not an admin token")
	}
	return claims, nil
}
