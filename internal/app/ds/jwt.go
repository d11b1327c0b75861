package ds

import (
	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

// AdminClaims — токен, который выдается в обмен на ADMIN_SECRET
type AdminClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}
