package auth

import (
	"errors"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// 写操作角色；只读接口不需要 token
const (
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

// WriterRoles 允许调用 POST/PUT/DELETE 的角色
var WriterRoles = []string{RoleEditor, RoleAdmin}

var ErrNoSecret = errors.New("jwt secret not configured")

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// CanWrite 是否持有写角色
func (c *Claims) CanWrite() bool { return slices.Contains(WriterRoles, c.Role) }

// JWTer HS256 签发与校验
type JWTer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Issue subject 为操作人标识
func (j *JWTer) Issue(subject, role string) (string, error) {
	if len(j.Secret) == 0 {
		return "", ErrNoSecret
	}
	now := time.Now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    j.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
		},
	}).SignedString(j.Secret)
}

func (j *JWTer) Parse(tokenStr string) (*Claims, error) {
	var c Claims
	_, err := jwt.ParseWithClaims(tokenStr, &c,
		func(*jwt.Token) (any, error) { return j.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(time.Minute),
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
