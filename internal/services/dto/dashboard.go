package dto

// EmployerDashboardResponse aggregates the numbers the employer home
// screen shows plus a short tail of recent activity.
type EmployerDashboardResponse struct {
	TotalJobs           int64                  `json:"total_jobs"`
	ActiveJobs          int64                  `json:"active_jobs"`
	TotalApplications   int64                  `json:"total_applications"`
	PendingApplications int64                  `json:"pending_applications"`
	AverageRating       float64                `json:"average_rating"`
	ReviewCount         int64                  `json:"review_count"`
	RecentJobs          []*JobResponse         `json:"recent_jobs"`
	RecentApplications  []*ApplicationResponse `json:"recent_applications"`
}

type JobSeekerDashboardResponse struct {
	TotalApplications    int64                  `json:"total_applications"`
	PendingApplications  int64                  `json:"pending_applications"`
	AcceptedApplications int64                  `json:"accepted_applications"`
	RejectedApplications int64                  `json:"rejected_applications"`
	ResumeCount          int64                  `json:"resume_count"`
	RecentApplications   []*ApplicationResponse `json:"recent_applications"`
	RecentResumes        []*ResumeResponse      `json:"recent_resumes"`
}
