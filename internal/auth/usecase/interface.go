package usecase

import (
	authdomain "blog-backend/internal/auth/domain"
	authdto "blog-backend/internal/auth/dto"
)

// AuthUsecase covers registration, credential authentication, token issuance
// and per-request token validation.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdomain.User, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	ValidateToken(tokenString string) (*authdomain.User, error)
}
