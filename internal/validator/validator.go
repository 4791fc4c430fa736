// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"rolecrm/internal/access"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("role", validateRole)
		_ = v.RegisterValidation("permission_kind", validatePermissionKind)
		_ = v.RegisterValidation("theme_mode", validateThemeMode)
		_ = v.RegisterValidation("layout_mode", validateLayoutMode)
		_ = v.RegisterValidation("language_tag", validateLanguageTag)
	}
}

// IsThemeMode reports whether s is a supported theme.
func IsThemeMode(s string) bool {
	switch s {
	case "light", "dark", "system":
		return true
	}
	return false
}

// IsLayoutMode reports whether s is a supported layout.
func IsLayoutMode(s string) bool {
	switch s {
	case "sidebar", "topbar":
		return true
	}
	return false
}

// IsLanguageTag reports whether s is a well-formed BCP 47 tag.
func IsLanguageTag(s string) bool {
	if s == "" {
		return false
	}
	_, err := language.Parse(s)
	return err == nil
}

func validateRole(fl validator.FieldLevel) bool {
	return access.Role(fl.Field().String()).Valid()
}

func validatePermissionKind(fl validator.FieldLevel) bool {
	switch access.Kind(fl.Field().String()) {
	case access.KindActions, access.KindFields:
		return true
	}
	return false
}

func validateThemeMode(fl validator.FieldLevel) bool {
	return IsThemeMode(fl.Field().String())
}

func validateLayoutMode(fl validator.FieldLevel) bool {
	return IsLayoutMode(fl.Field().String())
}

func validateLanguageTag(fl validator.FieldLevel) bool {
	return IsLanguageTag(fl.Field().String())
}
