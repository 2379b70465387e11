package dto

import (
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	authdomain "blog-backend/internal/auth/domain"
)

// Matches any character outside [A-Za-z0-9_], i.e. what the password policy
// counts as a special character.
var specialCharPattern = regexp.MustCompile(`\W`)

type RegisterRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Validate checks every field independently and reports the first failing
// rule per field, keyed by the JSON field name.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 35)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 35)),
		validation.Field(&r.Username, validation.Required, validation.Length(1, 150)),
		validation.Field(&r.Email, validation.Required, is.Email.Error("Enter a valid email address.")),
		validation.Field(&r.Password, validation.Required,
			validation.Match(specialCharPattern).Error(`Password must contain at least one special character eg."~!@#$%^&*"`)),
		validation.Field(&r.ConfirmPassword, validation.Required,
			validation.By(ValidateStringEquals(r.Password, "Password do not match"))),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email.Error("Enter a valid email address.")),
		validation.Field(&r.Password, validation.Required),
	)
}

type RefreshTokenRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type TokenResponse struct {
	Status  bool   `json:"status"`
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(user *authdomain.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// ValidateStringEquals builds a rule that fails with message unless the
// validated value equals other.
func ValidateStringEquals(other, message string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != other {
			return errors.New(message)
		}
		return nil
	}
}
