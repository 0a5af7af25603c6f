package routes

import (
	"maintup/internal/adapter/http/handlers"
	"maintup/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const PathSync = "/sync"

// addLedgerRoutes registers the same CRUD surface for every collection.
// Reads stay open; mutations go through the bearer gate.
func addLedgerRoutes(rg *gin.RouterGroup, ledgerHandler *handlers.LedgerHandler, gate gin.HandlerFunc) {
	for _, name := range entities.Collections {
		col := rg.Group("/" + name)
		{
			col.GET("", ledgerHandler.List(name))
			col.POST("", gate, ledgerHandler.Create(name))
			col.PUT("/:id", gate, ledgerHandler.Update(name))
			col.DELETE("/:id", gate, ledgerHandler.Delete(name))
		}
	}

	rg.POST(PathSync, gate, ledgerHandler.Sync)
}
