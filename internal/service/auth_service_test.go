package service

import (
	"context"
	"testing"

	"metro-chatbot-be/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthServiceLoginPlainPassword(t *testing.T) {
	svc := NewAuthService("test-secret", "admin@metro.example", "hunter2")

	res, err := svc.Login(context.Background(), &dto.AdminLoginRequest{
		Email:    "admin@metro.example",
		Password: "hunter2",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "admin@metro.example", claims["email"])
}

func TestAuthServiceLoginBcryptPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	assert.NoError(t, err)

	svc := NewAuthService("test-secret", "admin@metro.example", string(hash))

	_, err = svc.Login(context.Background(), &dto.AdminLoginRequest{
		Email:    "admin@metro.example",
		Password: "hunter2",
	})
	assert.NoError(t, err)
}

func TestAuthServiceLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService("test-secret", "admin@metro.example", "hunter2")

	_, err := svc.Login(context.Background(), &dto.AdminLoginRequest{
		Email:    "admin@metro.example",
		Password: "wrong",
	})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), &dto.AdminLoginRequest{
		Email:    "someone@else.example",
		Password: "hunter2",
	})
	assert.Error(t, err)
}
