package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenDuration = 24 * time.Hour

// TokenService 与账号系统共享密钥的 HS256 令牌
type TokenService struct {
	Secret   []byte
	Issuer   string
	Duration time.Duration
}

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

func NewTokenService(secret, issuer string) TokenService {
	return TokenService{Secret: []byte(secret), Issuer: issuer, Duration: defaultTokenDuration}
}

func (ts TokenService) Sign(userID string) (string, time.Time, error) {
	now := time.Now()
	d := ts.Duration
	if d <= 0 {
		d = defaultTokenDuration
	}
	exp := now.Add(d)

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.Issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString(ts.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("签发令牌失败: %w", err)
	}
	return s, exp, nil
}

func (ts TokenService) Parse(tokenString string) (*Claims, error) {
	if len(ts.Secret) == 0 {
		return nil, fmt.Errorf("未配置JWT密钥")
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if ts.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(ts.Issuer))
	}
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return ts.Secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("解析令牌失败: %w", err)
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, fmt.Errorf("令牌无效")
	}
	return claims, nil
}
