package main

import (
	_ "maintup/docs"
	"maintup/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Maintup Ledger API
// @version         1.0
// @description     Flat CRUD + bulk sync over the accounting document (clients, invoices, costs, cost grids).

// @host localhost:3000

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the static API token.

func main() {
	routes.Run()
}
