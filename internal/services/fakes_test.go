package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils/tests"

	"github.com/Abdullah149081/career-connect-backend/internal/config"
	"github.com/Abdullah149081/career-connect-backend/internal/email"
	"github.com/Abdullah149081/career-connect-backend/internal/models"
	"github.com/Abdullah149081/career-connect-backend/internal/repositories"
)

func init() {
	// Services read JWT and frontend settings through the global
	// config; seed it so tests never touch config.yaml.
	config.AppConfig = &config.Config{}
	config.AppConfig.Server.Env = "development"
	config.AppConfig.JWT.Secret = "test-secret"
	config.AppConfig.JWT.TTL = 60
	config.AppConfig.Frontend.BaseURL = "http://localhost:3000"
	config.AppConfig.Upload.MaxSize = 1 << 20
	config.AppConfig.Upload.AllowedTypes = []string{"application/pdf"}
}

// ----------------------------------------------------------------------------
// gorm.DB stub
//
// The fake repositories never touch the connection, but the services
// still drive commits through db.Transaction. The stub conn pool backs
// that with no-op begin/commit/rollback.
// ----------------------------------------------------------------------------

type stubConnPool struct{}

func (stubConnPool) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	return nil, errors.New("stub conn pool does not execute statements")
}

func (stubConnPool) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, errors.New("stub conn pool does not execute statements")
}

func (stubConnPool) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("stub conn pool does not execute statements")
}

func (stubConnPool) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (p stubConnPool) BeginTx(context.Context, *sql.TxOptions) (gorm.ConnPool, error) {
	return &stubTx{}, nil
}

type stubTx struct {
	stubConnPool
}

func (*stubTx) Commit() error   { return nil }
func (*stubTx) Rollback() error { return nil }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		ConnPool: stubConnPool{},
		Logger:   gormlogger.Discard,
	})
	require.NoError(t, err)
	return db
}

func newID() string {
	return uuid.NewString()
}

// ----------------------------------------------------------------------------
// fake repositories
// ----------------------------------------------------------------------------

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) add(user *models.User) *models.User {
	if user.ID == "" {
		user.ID = newID()
	}
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.add(user)
	return nil
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, emailAddr string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == emailAddr {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByVerificationToken(_ *gorm.DB, token string) (*models.User, error) {
	for _, u := range r.users {
		if token != "" && u.VerificationToken == token {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ *gorm.DB, id string) error {
	delete(r.users, id)
	return nil
}

type fakeRefreshTokenRepo struct {
	tokens map[string]*models.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) Create(_ *gorm.DB, token *models.RefreshToken) error {
	if token.ID == "" {
		token.ID = newID()
	}
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeRefreshTokenRepo) FindByToken(_ *gorm.DB, token string) (*models.RefreshToken, error) {
	rt, ok := r.tokens[token]
	if !ok {
		return nil, repositories.ErrRefreshTokenNotFound
	}
	return rt, nil
}

func (r *fakeRefreshTokenRepo) DeleteByToken(_ *gorm.DB, token string) error {
	delete(r.tokens, token)
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteByUser(_ *gorm.DB, userID string) error {
	for key, rt := range r.tokens {
		if rt.UserID == userID {
			delete(r.tokens, key)
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*models.JobCategory
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*models.JobCategory)}
}

func (r *fakeCategoryRepo) FindAll(_ *gorm.DB) ([]repositories.CategoryWithCount, error) {
	out := make([]repositories.CategoryWithCount, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, repositories.CategoryWithCount{JobCategory: *c})
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindByID(_ *gorm.DB, id string) (*repositories.CategoryWithCount, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, repositories.ErrCategoryNotFound
	}
	return &repositories.CategoryWithCount{JobCategory: *c}, nil
}

func (r *fakeCategoryRepo) Create(_ *gorm.DB, category *models.JobCategory) error {
	for _, c := range r.categories {
		if c.Name == category.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	if category.ID == "" {
		category.ID = newID()
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ *gorm.DB, id string) error {
	delete(r.categories, id)
	return nil
}

type fakeJobRepo struct {
	jobs  map[string]*models.JobListing
	users *fakeUserRepo
}

func newFakeJobRepo(users *fakeUserRepo) *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.JobListing), users: users}
}

func (r *fakeJobRepo) Create(_ *gorm.DB, job *models.JobListing) error {
	if job.ID == "" {
		job.ID = newID()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) FindByID(_ *gorm.DB, id string) (*models.JobListing, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	out := *job
	if employer, ok := r.users.users[job.EmployerID]; ok {
		out.Employer = *employer
	}
	return &out, nil
}

func (r *fakeJobRepo) FindActive(_ *gorm.DB, criteria repositories.JobSearchCriteria) ([]models.JobListing, int64, error) {
	var out []models.JobListing
	for _, job := range r.jobs {
		if job.IsActive {
			out = append(out, *job)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeJobRepo) FindByEmployer(_ *gorm.DB, employerID string, page, pageSize int) ([]models.JobListing, int64, error) {
	var out []models.JobListing
	for _, job := range r.jobs {
		if job.EmployerID == employerID {
			out = append(out, *job)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeJobRepo) FindRecentByEmployer(db *gorm.DB, employerID string, limit int) ([]models.JobListing, error) {
	out, _, err := r.FindByEmployer(db, employerID, 1, limit)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, err
}

func (r *fakeJobRepo) Update(_ *gorm.DB, job *models.JobListing) error {
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) Delete(_ *gorm.DB, id string) error {
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) CountByEmployer(_ *gorm.DB, employerID string) (int64, error) {
	var count int64
	for _, job := range r.jobs {
		if job.EmployerID == employerID {
			count++
		}
	}
	return count, nil
}

func (r *fakeJobRepo) CountActiveByEmployer(_ *gorm.DB, employerID string) (int64, error) {
	var count int64
	for _, job := range r.jobs {
		if job.EmployerID == employerID && job.IsActive {
			count++
		}
	}
	return count, nil
}

func (r *fakeJobRepo) CountApplications(_ *gorm.DB, jobID string) (int64, error) {
	return 0, nil
}

type fakeApplicationRepo struct {
	applications map[string]*models.JobApplication
	jobs         *fakeJobRepo
	users        *fakeUserRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo, users *fakeUserRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications: make(map[string]*models.JobApplication),
		jobs:         jobs,
		users:        users,
	}
}

func (r *fakeApplicationRepo) Create(_ *gorm.DB, application *models.JobApplication) error {
	for _, a := range r.applications {
		if a.JobID == application.JobID && a.ApplicantID == application.ApplicantID {
			return repositories.ErrApplicationExists
		}
	}
	if application.ID == "" {
		application.ID = newID()
	}
	if application.AppliedAt.IsZero() {
		application.AppliedAt = time.Now()
	}
	r.applications[application.ID] = application
	return nil
}

func (r *fakeApplicationRepo) FindByID(db *gorm.DB, id string) (*models.JobApplication, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	out := *application
	if job, err := r.jobs.FindByID(db, application.JobID); err == nil {
		out.Job = *job
	}
	if applicant, ok := r.users.users[application.ApplicantID]; ok {
		out.Applicant = *applicant
	}
	return &out, nil
}

func (r *fakeApplicationRepo) ExistsForJobAndApplicant(_ *gorm.DB, jobID, applicantID string) (bool, error) {
	for _, a := range r.applications {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) FindByApplicant(_ *gorm.DB, applicantID string, status models.ApplicationStatus, page, pageSize int) ([]models.JobApplication, int64, error) {
	var out []models.JobApplication
	for _, a := range r.applications {
		if a.ApplicantID != applicantID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out, int64(len(out)), nil
}

func (r *fakeApplicationRepo) FindByJob(_ *gorm.DB, jobID string, page, pageSize int) ([]models.JobApplication, int64, error) {
	var out []models.JobApplication
	for _, a := range r.applications {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeApplicationRepo) FindByJobOwner(_ *gorm.DB, employerID string, status models.ApplicationStatus, page, pageSize int) ([]models.JobApplication, int64, error) {
	var out []models.JobApplication
	for _, a := range r.applications {
		job, ok := r.jobs.jobs[a.JobID]
		if !ok || job.EmployerID != employerID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (r *fakeApplicationRepo) FindRecentByJobOwner(db *gorm.DB, employerID string, limit int) ([]models.JobApplication, error) {
	out, _, err := r.FindByJobOwner(db, employerID, "", 1, limit)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, err
}

func (r *fakeApplicationRepo) Update(_ *gorm.DB, application *models.JobApplication) error {
	stored, ok := r.applications[application.ID]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	stored.Status = application.Status
	stored.CoverLetter = application.CoverLetter
	return nil
}

func (r *fakeApplicationRepo) CountByApplicant(_ *gorm.DB, applicantID string) (int64, error) {
	var count int64
	for _, a := range r.applications {
		if a.ApplicantID == applicantID {
			count++
		}
	}
	return count, nil
}

func (r *fakeApplicationRepo) CountByApplicantAndStatus(_ *gorm.DB, applicantID string, status models.ApplicationStatus) (int64, error) {
	var count int64
	for _, a := range r.applications {
		if a.ApplicantID == applicantID && a.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeApplicationRepo) CountByJobOwner(_ *gorm.DB, employerID string) (int64, error) {
	var count int64
	for _, a := range r.applications {
		if job, ok := r.jobs.jobs[a.JobID]; ok && job.EmployerID == employerID {
			count++
		}
	}
	return count, nil
}

func (r *fakeApplicationRepo) CountByJobOwnerAndStatus(_ *gorm.DB, employerID string, status models.ApplicationStatus) (int64, error) {
	var count int64
	for _, a := range r.applications {
		if job, ok := r.jobs.jobs[a.JobID]; ok && job.EmployerID == employerID && a.Status == status {
			count++
		}
	}
	return count, nil
}

// fakeResumeRepo is safe for concurrent use and rejects a second
// primary per user the way the partial unique index does.
type fakeResumeRepo struct {
	mu      sync.Mutex
	resumes map[string]*models.Resume
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{resumes: make(map[string]*models.Resume)}
}

func (r *fakeResumeRepo) hasOtherPrimary(userID, resumeID string) bool {
	for _, resume := range r.resumes {
		if resume.UserID == userID && resume.IsPrimary && resume.ID != resumeID {
			return true
		}
	}
	return false
}

func (r *fakeResumeRepo) Create(_ *gorm.DB, resume *models.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if resume.ID == "" {
		resume.ID = newID()
	}
	if resume.IsPrimary && r.hasOtherPrimary(resume.UserID, resume.ID) {
		return gorm.ErrDuplicatedKey
	}
	r.resumes[resume.ID] = resume
	return nil
}

func (r *fakeResumeRepo) FindByID(_ *gorm.DB, id string) (*models.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.resumes[id]
	if !ok {
		return nil, repositories.ErrResumeNotFound
	}
	out := *resume
	return &out, nil
}

func (r *fakeResumeRepo) FindByUser(_ *gorm.DB, userID string) ([]models.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Resume
	for _, resume := range r.resumes {
		if resume.UserID == userID {
			out = append(out, *resume)
		}
	}
	return out, nil
}

func (r *fakeResumeRepo) FindPrimaryByUser(_ *gorm.DB, userID string) (*models.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, resume := range r.resumes {
		if resume.UserID == userID && resume.IsPrimary {
			out := *resume
			return &out, nil
		}
	}
	return nil, repositories.ErrResumeNotFound
}

func (r *fakeResumeRepo) Update(_ *gorm.DB, resume *models.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if resume.IsPrimary && r.hasOtherPrimary(resume.UserID, resume.ID) {
		return gorm.ErrDuplicatedKey
	}
	r.resumes[resume.ID] = resume
	return nil
}

func (r *fakeResumeRepo) Delete(_ *gorm.DB, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.resumes, id)
	return nil
}

func (r *fakeResumeRepo) ClearPrimary(_ *gorm.DB, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, resume := range r.resumes {
		if resume.UserID == userID {
			resume.IsPrimary = false
		}
	}
	return nil
}

func (r *fakeResumeRepo) SetPrimary(_ *gorm.DB, resumeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.resumes[resumeID]
	if !ok {
		return repositories.ErrResumeNotFound
	}
	if r.hasOtherPrimary(resume.UserID, resume.ID) {
		return gorm.ErrDuplicatedKey
	}
	resume.IsPrimary = true
	return nil
}

func (r *fakeResumeRepo) CountByUser(_ *gorm.DB, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, resume := range r.resumes {
		if resume.UserID == userID {
			count++
		}
	}
	return count, nil
}

type fakeReviewRepo struct {
	reviews map[string]*models.EmployerReview
	users   *fakeUserRepo
}

func newFakeReviewRepo(users *fakeUserRepo) *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.EmployerReview), users: users}
}

func (r *fakeReviewRepo) Create(_ *gorm.DB, review *models.EmployerReview) error {
	for _, existing := range r.reviews {
		if existing.EmployerID == review.EmployerID && existing.ReviewerID == review.ReviewerID {
			return repositories.ErrReviewExists
		}
	}
	if review.ID == "" {
		review.ID = newID()
	}
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) FindByID(_ *gorm.DB, id string) (*models.EmployerReview, error) {
	review, ok := r.reviews[id]
	if !ok {
		return nil, repositories.ErrReviewNotFound
	}
	out := *review
	if reviewer, ok := r.users.users[review.ReviewerID]; ok {
		out.Reviewer = *reviewer
	}
	return &out, nil
}

func (r *fakeReviewRepo) FindByEmployer(_ *gorm.DB, employerID string, page, pageSize int) ([]models.EmployerReview, int64, error) {
	var out []models.EmployerReview
	for _, review := range r.reviews {
		if review.EmployerID == employerID {
			out = append(out, *review)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeReviewRepo) ExistsForEmployerAndReviewer(_ *gorm.DB, employerID, reviewerID string) (bool, error) {
	for _, review := range r.reviews {
		if review.EmployerID == employerID && review.ReviewerID == reviewerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReviewRepo) Update(_ *gorm.DB, review *models.EmployerReview) error {
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) Delete(_ *gorm.DB, id string) error {
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) GetEmployerRatingStats(_ *gorm.DB, employerID string) (*repositories.RatingStats, error) {
	var sum, count int64
	for _, review := range r.reviews {
		if review.EmployerID == employerID {
			sum += int64(review.Rating)
			count++
		}
	}
	stats := &repositories.RatingStats{ReviewCount: count}
	if count > 0 {
		stats.AverageRating = float64(sum) / float64(count)
	}
	return stats, nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
	failCreate    error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(_ *gorm.DB, notification *models.Notification) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	if notification.ID == "" {
		notification.ID = newID()
	}
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) FindByID(_ *gorm.DB, id string) (*models.Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) FindByUser(_ *gorm.DB, userID string, unreadOnly bool, page, pageSize int) ([]models.Notification, int64, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, *n)
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) CountUnread(_ *gorm.DB, userID string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(_ *gorm.DB, id string) error {
	for _, n := range r.notifications {
		if n.ID == id {
			now := time.Now()
			n.IsRead = true
			n.ReadAt = &now
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) MarkAllRead(_ *gorm.DB, userID string) error {
	now := time.Now()
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			n.ReadAt = &now
		}
	}
	return nil
}

func (r *fakeNotificationRepo) Delete(_ *gorm.DB, id string) error {
	for i, n := range r.notifications {
		if n.ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeNotificationRepo) forUser(userID string) []*models.Notification {
	var out []*models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// ----------------------------------------------------------------------------
// fake email provider and storage
// ----------------------------------------------------------------------------

type sentEmail struct {
	Template string
	To       []string
	Subject  string
	Data     email.TemplateData
}

type fakeEmailProvider struct {
	mu       sync.Mutex
	sent     []sentEmail
	failSend error
}

func (p *fakeEmailProvider) Send(msg *email.Email) error {
	return p.record(sentEmail{To: msg.To, Subject: msg.Subject})
}

func (p *fakeEmailProvider) SendWithTemplate(templateName string, data email.TemplateData, msg *email.Email) error {
	return p.record(sentEmail{Template: templateName, To: msg.To, Subject: msg.Subject, Data: data})
}

func (p *fakeEmailProvider) record(msg sentEmail) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failSend != nil {
		return p.failSend
	}
	p.sent = append(p.sent, msg)
	return nil
}

func (p *fakeEmailProvider) Validate() error { return nil }
func (p *fakeEmailProvider) Close() error    { return nil }

func (p *fakeEmailProvider) sentCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sent)
}

func (p *fakeEmailProvider) sentTemplates() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.sent))
	for _, msg := range p.sent {
		out = append(out, msg.Template)
	}
	return out
}

type fakeStorage struct {
	files map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string][]byte)}
}

func (s *fakeStorage) Save(_ context.Context, path string, reader io.Reader, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.files[path] = data
	return nil
}

func (s *fakeStorage) Get(_ context.Context, path string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeStorage) Delete(_ context.Context, path string) error {
	delete(s.files, path)
	return nil
}

func (s *fakeStorage) Exists(_ context.Context, path string) (bool, error) {
	_, ok := s.files[path]
	return ok, nil
}

func (s *fakeStorage) GetURL(_ context.Context, path string) (string, error) {
	return "http://files.local/" + path, nil
}

func (s *fakeStorage) GetSignedURL(_ context.Context, path string, _ time.Duration) (string, error) {
	return s.GetURL(context.Background(), path)
}

func (s *fakeStorage) GetSize(_ context.Context, path string) (int64, error) {
	return int64(len(s.files[path])), nil
}
