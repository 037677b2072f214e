package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdullah149081/career-connect-backend/internal/email"
	"github.com/Abdullah149081/career-connect-backend/internal/models"
	"github.com/Abdullah149081/career-connect-backend/internal/services/dto"
	"github.com/Abdullah149081/career-connect-backend/pkg/apperrors"
)

type applicationEnv struct {
	service       ApplicationService
	users         *fakeUserRepo
	jobs          *fakeJobRepo
	applications  *fakeApplicationRepo
	resumes       *fakeResumeRepo
	notifications *fakeNotificationRepo
	emails        *fakeEmailProvider

	employer  *models.User
	applicant *models.User
	job       *models.JobListing
}

func newApplicationEnv(t *testing.T) *applicationEnv {
	t.Helper()

	users := newFakeUserRepo()
	jobs := newFakeJobRepo(users)
	applications := newFakeApplicationRepo(jobs, users)
	resumes := newFakeResumeRepo()
	notifications := newFakeNotificationRepo()
	emails := &fakeEmailProvider{}

	env := &applicationEnv{
		service:       NewApplicationService(applications, jobs, users, resumes, notifications, emails),
		users:         users,
		jobs:          jobs,
		applications:  applications,
		resumes:       resumes,
		notifications: notifications,
		emails:        emails,
	}

	env.employer = users.add(&models.User{
		Email:       "hr@acme.test",
		Role:        models.UserRoleEmployer,
		FirstName:   "Hanna",
		LastName:    "Reyes",
		CompanyName: "Acme",
	})
	env.applicant = users.add(&models.User{
		Email:     "dev@applicant.test",
		Role:      models.UserRoleJobSeeker,
		FirstName: "Devin",
		LastName:  "Ortiz",
	})

	env.job = &models.JobListing{
		EmployerID:  env.employer.ID,
		Title:       "Backend Engineer",
		Description: "Go services",
		Location:    "Remote",
		IsActive:    true,
	}
	require.NoError(t, jobs.Create(nil, env.job))

	return env
}

func (env *applicationEnv) addPrimaryResume(t *testing.T) *models.Resume {
	t.Helper()
	resume := &models.Resume{
		UserID:    env.applicant.ID,
		Title:     "Main resume",
		FileURL:   "http://files.local/resumes/main.pdf",
		IsPrimary: true,
	}
	require.NoError(t, env.resumes.Create(nil, resume))
	return resume
}

func TestApplySubmitsApplicationWithNotifications(t *testing.T) {
	env := newApplicationEnv(t)
	db := newTestDB(t)
	env.addPrimaryResume(t)

	resp, err := env.service.Apply(context.Background(), db, env.applicant.ID, &dto.CreateApplicationRequest{
		JobID:       env.job.ID,
		CoverLetter: "I would love to join.",
	})
	require.NoError(t, err)

	assert.Equal(t, env.job.ID, resp.JobID)
	assert.Equal(t, env.applicant.ID, resp.ApplicantID)
	assert.Equal(t, models.ApplicationStatusPending, resp.Status)
	assert.Equal(t, "http://files.local/resumes/main.pdf", resp.ResumeURL)

	applicantNotes := env.notifications.forUser(env.applicant.ID)
	require.Len(t, applicantNotes, 1)
	assert.Equal(t, models.NotificationTypeApplicationSubmitted, applicantNotes[0].Type)

	employerNotes := env.notifications.forUser(env.employer.ID)
	require.Len(t, employerNotes, 1)
	assert.Equal(t, models.NotificationTypeApplicationReceived, employerNotes[0].Type)

	// Emails are sent from a detached goroutine after the commit.
	assert.Eventually(t, func() bool {
		return env.emails.sentCount() == 2
	}, time.Second, 10*time.Millisecond)
	assert.ElementsMatch(t,
		[]string{email.TemplateApplicationConfirmed, email.TemplateApplicationReceived},
		env.emails.sentTemplates())
}

func TestApplyRejectsDuplicate(t *testing.T) {
	env := newApplicationEnv(t)
	db := newTestDB(t)
	env.addPrimaryResume(t)

	_, err := env.service.Apply(context.Background(), db, env.applicant.ID, &dto.CreateApplicationRequest{
		JobID: env.job.ID,
	})
	require.NoError(t, err)

	_, err = env.service.Apply(context.Background(), db, env.applicant.ID, &dto.CreateApplicationRequest{
		JobID: env.job.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)
	assert.Len(t, env.applications.applications, 1)
}

func TestApplyRequiresJobSeekerRole(t *testing.T) {
	env := newApplicationEnv(t)
	db := newTestDB(t)

	_, err := env.service.Apply(context.Background(), db, env.employer.ID, &dto.CreateApplicationRequest{
		JobID: env.job.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrApplicantRoleRequired)
}

func TestApplyRejectsInactiveJob(t *testing.T) {
	env := newApplicationEnv(t)
	db := newTestDB(t)
	env.addPrimaryResume(t)

	env.job.IsActive = false

	_, err := env.service.Apply(context.Background(), db, env.applicant.ID, &dto.CreateApplicationRequest{
		JobID: env.job.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrJobInactive)
}

func TestApplyWithoutResume(t *testing.T) {
	env := newApplicationEnv(t)
	db := newTestDB(t)

	_, err := env.service.Apply(context.Background(), db, env.applicant.ID, &dto.CreateApplicationRequest{
		JobID: env.job.ID,
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Contains(t, appErr.Message, "Upload a resume")
}

func TestApplyWithSomeoneElsesResume(t *testing.T) {
	env := newApplicationEnv(t)
	db := newTestDB(t)

	other := env.users.add(&models.User{
		Email: "other@applicant.test",
		Role:  models.UserRoleJobSeeker,
	})
	foreign := &models.Resume{
		UserID:  other.ID,
		Title:   "Not yours",
		FileURL: "http://files.local/resumes/other.pdf",
	}
	require.NoError(t, env.resumes.Create(nil, foreign))

	_, err := env.service.Apply(context.Background(), db, env.applicant.ID, &dto.CreateApplicationRequest{
		JobID:    env.job.ID,
		ResumeID: foreign.ID,
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
}

func TestApplyWithExplicitResume(t *testing.T) {
	env := newApplicationEnv(t)
	db := newTestDB(t)
	env.addPrimaryResume(t)

	second := &models.Resume{
		UserID:  env.applicant.ID,
		Title:   "Tailored resume",
		FileURL: "http://files.local/resumes/tailored.pdf",
	}
	require.NoError(t, env.resumes.Create(nil, second))

	resp, err := env.service.Apply(context.Background(), db, env.applicant.ID, &dto.CreateApplicationRequest{
		JobID:    env.job.ID,
		ResumeID: second.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, second.FileURL, resp.ResumeURL)
}

func TestApplySucceedsWhenEmailFails(t *testing.T) {
	env := newApplicationEnv(t)
	db := newTestDB(t)
	env.addPrimaryResume(t)
	env.emails.failSend = assert.AnError

	resp, err := env.service.Apply(context.Background(), db, env.applicant.ID, &dto.CreateApplicationRequest{
		JobID: env.job.ID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Len(t, env.applications.applications, 1)
}

func TestApplyFailsWhenNotificationWriteFails(t *testing.T) {
	env := newApplicationEnv(t)
	db := newTestDB(t)
	env.addPrimaryResume(t)
	env.notifications.failCreate = assert.AnError

	_, err := env.service.Apply(context.Background(), db, env.applicant.ID, &dto.CreateApplicationRequest{
		JobID: env.job.ID,
	})
	assert.Error(t, err)
	assert.Zero(t, env.emails.sentCount())
}

func TestGetApplicationVisibility(t *testing.T) {
	env := newApplicationEnv(t)
	db := newTestDB(t)
	env.addPrimaryResume(t)

	resp, err := env.service.Apply(context.Background(), db, env.applicant.ID, &dto.CreateApplicationRequest{
		JobID: env.job.ID,
	})
	require.NoError(t, err)

	_, err = env.service.GetApplication(context.Background(), db, env.applicant.ID, resp.ID)
	assert.NoError(t, err)

	_, err = env.service.GetApplication(context.Background(), db, env.employer.ID, resp.ID)
	assert.NoError(t, err)

	stranger := env.users.add(&models.User{
		Email: "stranger@nowhere.test",
		Role:  models.UserRoleEmployer,
	})
	_, err = env.service.GetApplication(context.Background(), db, stranger.ID, resp.ID)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
}

func TestUpdateStatusOnlyByListingOwner(t *testing.T) {
	env := newApplicationEnv(t)
	db := newTestDB(t)
	env.addPrimaryResume(t)

	resp, err := env.service.Apply(context.Background(), db, env.applicant.ID, &dto.CreateApplicationRequest{
		JobID: env.job.ID,
	})
	require.NoError(t, err)

	rival := env.users.add(&models.User{
		Email: "rival@corp.test",
		Role:  models.UserRoleEmployer,
	})
	_, err = env.service.UpdateStatus(context.Background(), db, rival.ID, resp.ID, &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusAccepted,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotListingOwner)

	updated, err := env.service.UpdateStatus(context.Background(), db, env.employer.ID, resp.ID, &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusAccepted,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, updated.Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	env := newApplicationEnv(t)
	db := newTestDB(t)
	env.addPrimaryResume(t)

	resp, err := env.service.Apply(context.Background(), db, env.applicant.ID, &dto.CreateApplicationRequest{
		JobID: env.job.ID,
	})
	require.NoError(t, err)

	_, err = env.service.UpdateStatus(context.Background(), db, env.employer.ID, resp.ID, &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatus("archived"),
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestStatusMayMoveBackwards(t *testing.T) {
	env := newApplicationEnv(t)
	db := newTestDB(t)
	env.addPrimaryResume(t)

	resp, err := env.service.Apply(context.Background(), db, env.applicant.ID, &dto.CreateApplicationRequest{
		JobID: env.job.ID,
	})
	require.NoError(t, err)

	for _, status := range []models.ApplicationStatus{
		models.ApplicationStatusAccepted,
		models.ApplicationStatusPending,
		models.ApplicationStatusRejected,
		models.ApplicationStatusReviewed,
	} {
		updated, err := env.service.UpdateStatus(context.Background(), db, env.employer.ID, resp.ID, &dto.UpdateApplicationStatusRequest{Status: status})
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestGetMyApplications(t *testing.T) {
	env := newApplicationEnv(t)
	db := newTestDB(t)
	env.addPrimaryResume(t)

	secondJob := &models.JobListing{
		EmployerID:  env.employer.ID,
		Title:       "Platform Engineer",
		Description: "Infra",
		Location:    "Remote",
		IsActive:    true,
	}
	require.NoError(t, env.jobs.Create(nil, secondJob))

	for _, jobID := range []string{env.job.ID, secondJob.ID} {
		_, err := env.service.Apply(context.Background(), db, env.applicant.ID, &dto.CreateApplicationRequest{JobID: jobID})
		require.NoError(t, err)
	}

	list, err := env.service.GetMyApplications(context.Background(), db, env.applicant.ID, "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)
	assert.Len(t, list.Applications, 2)
	assert.Equal(t, 1, list.TotalPages)
}

func TestGetMyApplicationsStatusFilter(t *testing.T) {
	env := newApplicationEnv(t)
	db := newTestDB(t)
	env.addPrimaryResume(t)

	resp, err := env.service.Apply(context.Background(), db, env.applicant.ID, &dto.CreateApplicationRequest{JobID: env.job.ID})
	require.NoError(t, err)

	_, err = env.service.UpdateStatus(context.Background(), db, env.employer.ID, resp.ID, &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusAccepted,
	})
	require.NoError(t, err)

	accepted, err := env.service.GetMyApplications(context.Background(), db, env.applicant.ID, models.ApplicationStatusAccepted, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), accepted.Total)

	pending, err := env.service.GetMyApplications(context.Background(), db, env.applicant.ID, models.ApplicationStatusPending, 1, 20)
	require.NoError(t, err)
	assert.Zero(t, pending.Total)

	_, err = env.service.GetMyApplications(context.Background(), db, env.applicant.ID, models.ApplicationStatus("archived"), 1, 20)
	assert.Error(t, err)
}

func TestGetEmployerApplicationsStatusFilter(t *testing.T) {
	env := newApplicationEnv(t)
	db := newTestDB(t)
	env.addPrimaryResume(t)

	_, err := env.service.Apply(context.Background(), db, env.applicant.ID, &dto.CreateApplicationRequest{JobID: env.job.ID})
	require.NoError(t, err)

	all, err := env.service.GetEmployerApplications(context.Background(), db, env.employer.ID, "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), all.Total)

	rejected, err := env.service.GetEmployerApplications(context.Background(), db, env.employer.ID, models.ApplicationStatusRejected, 1, 20)
	require.NoError(t, err)
	assert.Zero(t, rejected.Total)
}

func TestGetJobApplicationsRequiresOwnership(t *testing.T) {
	env := newApplicationEnv(t)
	db := newTestDB(t)
	env.addPrimaryResume(t)

	_, err := env.service.Apply(context.Background(), db, env.applicant.ID, &dto.CreateApplicationRequest{JobID: env.job.ID})
	require.NoError(t, err)

	rival := env.users.add(&models.User{
		Email: "rival2@corp.test",
		Role:  models.UserRoleEmployer,
	})
	_, err = env.service.GetJobApplications(context.Background(), db, rival.ID, env.job.ID, 1, 20)
	assert.ErrorIs(t, err, apperrors.ErrNotListingOwner)

	list, err := env.service.GetJobApplications(context.Background(), db, env.employer.ID, env.job.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)
}
