package usecase

import (
	"errors"
	"fmt"
	"log"
	"time"

	authdomain "blog-backend/internal/auth/domain"
	authdto "blog-backend/internal/auth/dto"
	"blog-backend/internal/auth/repository"
	"blog-backend/internal/notification"
	"blog-backend/pkg/config"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrAuthenticationFailed covers both unknown email and wrong password so the
// caller cannot tell which one happened.
var ErrAuthenticationFailed = errors.New("authentication failed")

// ErrInvalidToken is returned for tokens that fail signature, expiry or claim
// checks.
var ErrInvalidToken = errors.New("invalid or expired token")

// dummyHash is compared against when the email is unknown so both failure
// paths cost one bcrypt verification.
var dummyHash, _ = repository.HashPassword(uuid.New().String())

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo repository.UserRepository
	enqueuer notification.Enqueuer
	config   *config.Config
}

func NewAuthUsecase(userRepo repository.UserRepository, enqueuer notification.Enqueuer, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		enqueuer: enqueuer,
		config:   cfg,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if existing, err := u.userRepo.FindByUsername(req.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, validation.Errors{"username": errors.New("A user with that username already exists.")}
	}

	if existing, err := u.userRepo.FindByEmail(req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, validation.Errors{"email": errors.New("user with this email already exists.")}
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// The confirmation value is dropped here; only the hash is persisted.
	user := &authdomain.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
	}

	if err := u.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a creation race after the pre-checks passed.
			return nil, u.duplicateFieldError(req.Username)
		}
		return nil, err
	}

	return user, nil
}

// duplicateFieldError re-checks which unique column collided so the conflict
// is reported against the right field.
func (u *authUsecase) duplicateFieldError(username string) error {
	if existing, err := u.userRepo.FindByUsername(username); err == nil && existing != nil {
		return validation.Errors{"username": errors.New("A user with that username already exists.")}
	}
	return validation.Errors{"email": errors.New("user with this email already exists.")}
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if user == nil || !user.IsActive {
		repository.CheckPasswordHash(req.Password, dummyHash)
		return nil, ErrAuthenticationFailed
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrAuthenticationFailed
	}

	tokens, err := u.generateTokens(user)
	if err != nil {
		return nil, err
	}

	// Fire-and-forget: an enqueue failure must not fail the login.
	if err := u.enqueuer.Enqueue(notification.EmailTask{Email: user.Email}); err != nil {
		log.Printf("[Auth] Failed to enqueue welcome email for %s: %v", user.Email, err)
	}

	return tokens, nil
}

func (u *authUsecase) RefreshToken(refreshToken string) (*authdto.TokenResponse, error) {
	claims, err := u.parseToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if tokenType, _ := claims["token_type"].(string); tokenType != "refresh" {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if user == nil || !user.IsActive {
		return nil, ErrInvalidToken
	}

	return u.generateTokens(user)
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	claims, err := u.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	// Refresh tokens only mint new pairs, they never authenticate requests.
	if tokenType, _ := claims["token_type"].(string); tokenType == "refresh" {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if user == nil || !user.IsActive {
		return nil, ErrInvalidToken
	}

	return user, nil
}

func (u *authUsecase) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (u *authUsecase) generateTokens(user *authdomain.User) (*authdto.TokenResponse, error) {
	accessToken, err := u.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := u.generateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		Status:  true,
		Access:  accessToken,
		Refresh: refreshToken,
	}, nil
}

func (u *authUsecase) generateAccessToken(user *authdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(u.config.JWTAccessExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) generateRefreshToken(user *authdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"token_id":   uuid.New().String(),
		"token_type": "refresh",
		"exp":        time.Now().Add(u.config.JWTRefreshExpiry).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}
