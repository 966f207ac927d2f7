package main

import (
	_ "mantranwebapi/docs"
	"mantranwebapi/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           MantranWebAPI Tracker
// @version         1.0
// @description     Task tracking dashboard for API, test and documentation work over the shared data service.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey SessionToken
// @in header
// @name X-Session-Token
// @description Opaque session token issued by /auth/login.

func main() {
	routes.Run()
}
