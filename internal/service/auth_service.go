package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"metro-chatbot-be/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
}

type authService struct {
	jwtSecret     string
	adminEmail    string
	adminPassword string
}

func NewAuthService(jwtSecret, adminEmail, adminPassword string) IAuthService {
	return &authService{
		jwtSecret:     jwtSecret,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if !strings.EqualFold(req.Email, s.adminEmail) {
		return nil, fmt.Errorf("invalid credentials")
	}
	if !s.passwordMatches(req.Password) {
		return nil, fmt.Errorf("invalid credentials")
	}

	claims := jwt.MapClaims{
		"email": s.adminEmail,
		"role":  "admin",
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.AdminLoginResponse{Token: signedToken}, nil
}

// passwordMatches accepts either a bcrypt hash or a plain value in the
// configured admin password.
func (s *authService) passwordMatches(password string) bool {
	if strings.HasPrefix(s.adminPassword, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(s.adminPassword), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.adminPassword), []byte(password)) == 1
}
