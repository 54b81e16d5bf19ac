package auth

import (
	"net/mail"
	"strings"

	"github.com/frahmantamala/document-management/internal"
	"github.com/frahmantamala/document-management/internal/core/common/validation"
)

type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (d LoginDTO) Validate() error {
	if strings.TrimSpace(d.Username) == "" || d.Password == "" {
		return internal.NewValidationError("Please provide both username and password", internal.ErrCodeValidationFailed)
	}
	return nil
}

type RegisterDTO struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (d RegisterDTO) Validate() error {
	if strings.TrimSpace(d.Username) == "" || strings.TrimSpace(d.Email) == "" || d.Password == "" {
		return internal.NewValidationError("Please provide username, email and password", internal.ErrCodeValidationFailed)
	}

	v := validation.NewValidator()
	v.Field("username", d.Username).MaxLength(150)
	v.Field("email", d.Email).MaxLength(254).Custom(validEmail)
	v.Field("first_name", d.FirstName).MaxLength(150)
	v.Field("last_name", d.LastName).MaxLength(150)
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

func validEmail(value interface{}) *internal.AppError {
	s, _ := value.(string)
	if addr, err := mail.ParseAddress(s); err != nil || addr.Address != s {
		return internal.NewValidationFieldError("email", "Enter a valid email address", internal.ErrCodeValidationFailed)
	}
	return nil
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

func (d RefreshTokenDTO) Validate() error {
	if d.RefreshToken == "" {
		return internal.NewValidationFieldError("refresh_token", "refresh_token is required", internal.ErrCodeValidationFailed)
	}
	return nil
}
