package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdullah149081/career-connect-backend/internal/models"
	"github.com/Abdullah149081/career-connect-backend/internal/services/dto"
)

func TestValidateRegisterRequest(t *testing.T) {
	v := New()

	req := &dto.RegisterRequest{
		Email:     "user@test.local",
		Password:  "correct-horse",
		Role:      models.UserRoleJobSeeker,
		FirstName: "Nora",
		LastName:  "Kim",
	}
	assert.NoError(t, v.Validate(req))
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	req := &dto.RegisterRequest{
		Email:    "not-an-email",
		Password: "correct-horse",
		Role:     models.UserRoleJobSeeker,
		LastName: "Kim",
	}
	err := v.Validate(req)
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "email")
	assert.Contains(t, verr.Errors, "first_name")
}

func TestEmployerRequiresCompanyName(t *testing.T) {
	v := New()

	req := &dto.RegisterRequest{
		Email:     "hr@corp.test",
		Password:  "correct-horse",
		Role:      models.UserRoleEmployer,
		FirstName: "Hanna",
		LastName:  "Reyes",
	}
	err := v.Validate(req)
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "company_name")

	req.CompanyName = "Corp"
	assert.NoError(t, v.Validate(req))
}

func TestUserRoleTag(t *testing.T) {
	v := New()

	req := &dto.RegisterRequest{
		Email:     "user@test.local",
		Password:  "correct-horse",
		Role:      models.UserRole("admin"),
		FirstName: "Nora",
		LastName:  "Kim",
	}
	err := v.Validate(req)
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "role")
}

func TestApplicationStatusTag(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusAccepted,
	}))

	err := v.Validate(&dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatus("archived"),
	})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "status")
}

func TestEmploymentTypeTag(t *testing.T) {
	v := New()

	req := &dto.CreateJobRequest{
		Title:          "Backend Engineer",
		Description:    "Build Go services.",
		Location:       "Remote",
		EmploymentType: models.EmploymentType("gig"),
	}
	err := v.Validate(req)
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "employment_type")
}

func TestSalaryRangeCrossField(t *testing.T) {
	v := New()

	low := 50000.0
	high := 90000.0
	req := &dto.CreateJobRequest{
		Title:          "Backend Engineer",
		Description:    "Build Go services.",
		Location:       "Remote",
		EmploymentType: models.EmploymentTypeFullTime,
		SalaryMin:      &high,
		SalaryMax:      &low,
	}
	err := v.Validate(req)
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "salary_max")
}
