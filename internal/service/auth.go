package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials 用户名或密码错误，不区分是哪一个
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminAuthService 管理端只有一个配置好的账号
type AdminAuthService struct {
	username     string
	passwordHash string
	secret       []byte
	expire       time.Duration
	now          func() time.Time
}

func NewAdminAuthService(username, passwordHash, secret string, expireHours int) *AdminAuthService {
	if expireHours <= 0 {
		expireHours = 24
	}
	return &AdminAuthService{
		username:     username,
		passwordHash: passwordHash,
		secret:       []byte(secret),
		expire:       time.Duration(expireHours) * time.Hour,
		now:          time.Now,
	}
}

// Login 登录逻辑，返回 Token
func (s *AdminAuthService) Login(_ context.Context, username, password string) (string, error) {
	// 1. 没配置密码或密钥时拒绝所有登录
	if s.passwordHash == "" || len(s.secret) == 0 {
		return "", ErrInvalidCredentials
	}

	// 2. 比对账号和密码
	if username != s.username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials // 模糊报错为了安全
	}

	// 3. 生成 JWT
	return s.generateToken(username)
}

func (s *AdminAuthService) generateToken(username string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(s.expire).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
