package main

import (
	_ "github.com/gradyrobinson2001-cloud/DustDashboard/docs"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Dust Bunnies Dashboard API
// @version         1.0
// @description     Admin dashboard for a residential cleaning business: enquiry intake, quoting and pricing.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
