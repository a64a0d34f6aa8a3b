// @title           StuntPro AR API
// @version         1.0
// @description     API del directorio de dobles de riesgo de Argentina (documentación Swagger).
// @contact.name    StuntPro AR
// @contact.email   contacto@stuntproar.com.ar
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"github.com/Facu14carrizo/StuntProAR/internal/app"

	_ "github.com/Facu14carrizo/StuntProAR/docs"
)

func main() {
	app.Run()
}
