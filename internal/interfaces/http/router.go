package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stock-ledger-api/internal/application/leave"
	"github.com/jhoicas/Stock-ledger-api/internal/application/production"
	"github.com/jhoicas/Stock-ledger-api/internal/application/serialno"
	"github.com/jhoicas/Stock-ledger-api/internal/application/uom"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC     *serialno.LedgerUseCase
	SerialNoUC   *serialno.SerialNoUseCase
	CardUC       *serialno.CardUseCase
	LeaveUC      *leave.AllocationUseCase
	ProductionUC *production.OrderUseCase
	UOMReplaceUC *uom.ReplaceUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	stock := RequireRole(RoleAdmin, RoleBodeguero)

	// Libro de stock y comprobantes
	ledgerHandler := NewStockLedgerHandler(deps.LedgerUC)
	api.Post("/stock-ledger/entries", stock, ledgerHandler.CreateEntry)
	api.Post("/vouchers/cancel", RequireRole(RoleAdmin), ledgerHandler.CancelVoucher)
	api.Post("/vouchers/sync-serials", stock, ledgerHandler.SyncVoucherSerials)

	// Números de serie
	serials := api.Group("/serial-nos", stock)
	serialHandler := NewSerialNoHandler(deps.SerialNoUC, deps.CardUC)
	serials.Post("/", serialHandler.Register)
	serials.Get("/:serial_no", serialHandler.GetByID)
	serials.Put("/:serial_no", serialHandler.Update)
	serials.Delete("/:serial_no", RequireRole(RoleAdmin), serialHandler.Delete)
	serials.Post("/:serial_no/rename", RequireRole(RoleAdmin), serialHandler.Rename)
	serials.Post("/:serial_no/resync", serialHandler.Resync)
	serials.Get("/:serial_no/card", serialHandler.Card)

	// Cambio de unidad de stock
	uomHandler := NewUOMHandler(deps.UOMReplaceUC)
	api.Post("/items/:code/stock-uom", RequireRole(RoleAdmin), uomHandler.Replace)

	// Órdenes de producción
	orders := api.Group("/production-orders", stock)
	productionHandler := NewProductionHandler(deps.ProductionUC)
	orders.Post("/", productionHandler.Create)
	orders.Get("/item-details/:code", productionHandler.ItemDetails)
	orders.Post("/:id/submit", productionHandler.Submit)
	orders.Post("/:id/cancel", productionHandler.Cancel)
	orders.Post("/:id/stop", productionHandler.Stop)
	orders.Post("/:id/unstop", productionHandler.Unstop)
	orders.Post("/:id/stock-entry", productionHandler.MakeStockEntry)

	// Asignación de permisos
	allocations := api.Group("/leave-allocations", RequireRole(RoleAdmin, RoleRRHH))
	leaveHandler := NewLeaveHandler(deps.LeaveUC)
	allocations.Post("/", leaveHandler.Create)
	allocations.Put("/:id", leaveHandler.Update)
	allocations.Post("/:id/submit", leaveHandler.Submit)
	allocations.Post("/:id/cancel", leaveHandler.Cancel)
}
