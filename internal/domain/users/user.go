package users

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/errs"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// Palette is the accent colour a user picked for the client UI.
type Palette string

const (
	PaletteBlue       Palette = "blue"
	PaletteIndigo     Palette = "indigo"
	PaletteDeepPurple Palette = "deepPurple"
	PaletteGreen      Palette = "green"
	PaletteAmber      Palette = "amber"
	PalettePink       Palette = "pink"

	DefaultPalette = PaletteDeepPurple
)

// Valid reports whether p is a known palette.
func (p Palette) Valid() bool {
	switch p {
	case PaletteBlue, PaletteIndigo, PaletteDeepPurple, PaletteGreen, PaletteAmber, PalettePink:
		return true
	}
	return false
}

// Theme is the light or dark mode of the client UI.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultTheme = ThemeLight
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// User entity
type User struct {
	ID              string    `validate:"required,uuid4"`
	Username        string    `validate:"required,min=5,max=10,username"`
	PasswordHash    string    `validate:"required"`
	Palette         Palette   `validate:"required,oneof=blue indigo deepPurple green amber pink"`
	Theme           Theme     `validate:"required,oneof=light dark"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err = validate.Struct(u)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// State returns the public projection of u.
func (u *User) State() UserState {
	return UserState{
		ID:       u.ID,
		Username: u.Username,
		Palette:  u.Palette,
		Theme:    u.Theme,
	}
}

// UserState is what a session token carries and what /user returns.
type UserState struct {
	ID       string  `json:"_id"`
	Username string  `json:"username"`
	Palette  Palette `json:"palette"`
	Theme    Theme   `json:"theme"`
}

// AnonymousState describes a visitor without a valid session.
func AnonymousState() UserState {
	return UserState{Palette: DefaultPalette, Theme: DefaultTheme}
}

// IsAnonymous reports whether s belongs to a visitor without a session.
func (s UserState) IsAnonymous() bool {
	return s.ID == ""
}

// Credentials is the username and password pair used to register and log in.
type Credentials struct {
	Username string `json:"username" validate:"required,min=5,max=10,username"`
	Password string `json:"password" validate:"required,min=6"`
}

var credentialMessages = map[string]string{
	"Username.required": "Username is required",
	"Username.min":      "Username must be at least five characters",
	"Username.max":      "Username must be no more than ten characters",
	"Username.username": "Username must start with a letter and can only contain alphanumeric characters",
	"Password.required": "Password is required",
	"Password.min":      "Password must be at least six characters",
}

// Normalize trims surrounding whitespace from both fields.
func (c *Credentials) Normalize() {
	c.Username = strings.TrimSpace(c.Username)
	c.Password = strings.TrimSpace(c.Password)
}

// Validate returns an errs.Invalid listing one message per failed field.
func (c *Credentials) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(c); err != nil {
		return errs.Invalid(validators.Messages(err, credentialMessages)...)
	}
	return nil
}

// ValidatePalette returns errs.Invalid when p is unknown.
func ValidatePalette(p Palette) error {
	if !p.Valid() {
		return errs.Invalid("Invalid palette")
	}
	return nil
}

// ValidateTheme returns errs.Invalid when t is unknown.
func ValidateTheme(t Theme) error {
	if !t.Valid() {
		return errs.Invalid("Invalid theme")
	}
	return nil
}
