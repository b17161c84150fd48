package models

import "github.com/golang-jwt/jwt/v5"

// StudentClaims are the claims this service expects in the bearer tokens
// issued by the campus identity provider. Token issuance lives outside
// this backend; we only validate and read.
type StudentClaims struct {
	StudentID uint   `json:"student_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

func (c *StudentClaims) IsAdmin() bool {
	return c.Role == "admin"
}
