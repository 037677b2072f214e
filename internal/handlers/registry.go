package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	JobHandler          *JobHandler
	CategoryHandler     *CategoryHandler
	ApplicationHandler  *ApplicationHandler
	ResumeHandler       *ResumeHandler
	ReviewHandler       *ReviewHandler
	DashboardHandler    *DashboardHandler
	NotificationHandler *NotificationHandler
}
