// @title           Job Portal API
// @version         1.0
// @description     Backend API for the job portal (users, companies, jobs, applications).
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "jobportal_backend/internal/app"

func main() {
	app.Run()
}
