package services

// ServiceContainer groups every service so wiring stays in one place.
type ServiceContainer struct {
	UserService        UserService
	CompanyService     CompanyService
	JobService         JobService
	ApplicationService ApplicationService
}
