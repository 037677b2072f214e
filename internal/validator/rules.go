package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/Abdullah149081/career-connect-backend/internal/models"
)

// registerCustomRules registers the enum validation tags backed by the
// model status sets.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup defect.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-employment-type", validateEmploymentType)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty values are for 'required' to catch
	}
	switch models.UserRole(value) {
	case models.UserRoleEmployer, models.UserRoleJobSeeker:
		return true
	default:
		return false
	}
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidApplicationStatus(models.ApplicationStatus(value))
}

func validateEmploymentType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidEmploymentType(models.EmploymentType(value))
}
