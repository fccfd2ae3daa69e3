package validator

import (
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"hirenexus_backend/internal/models"
)

// registerCustomRules wires up the domain-specific tags.
func registerCustomRules(v *validator.Validate) {
	_ = v.RegisterValidation("is-user-role", validateUserRole)
	_ = v.RegisterValidation("is-message-type", validateMessageType)
	_ = v.RegisterValidation("resume-ext", validateResumeExt)
}

func validateUserRole(fl validator.FieldLevel) bool {
	return models.UserRole(fl.Field().String()).Valid()
}

func validateMessageType(fl validator.FieldLevel) bool {
	return models.MessageType(fl.Field().String()).Valid()
}

// Resume uploads are accepted by extension only; the file body never
// leaves the client, just its metadata.
func validateResumeExt(fl validator.FieldLevel) bool {
	ext := strings.ToLower(filepath.Ext(fl.Field().String()))
	switch ext {
	case ".pdf", ".doc", ".docx":
		return true
	}
	return false
}
