package handlers

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	UserHandler        *UserHandler
	CompanyHandler     *CompanyHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
}
