package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/application/serialno"
	"github.com/jhoicas/Stock-ledger-api/internal/application/serialno/serialnotest"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Stock-ledger-api/internal/interfaces/http"
	"github.com/jhoicas/Stock-ledger-api/pkg/logger"
)

// buildRouterApp arma el router completo sobre el almacén en memoria.
func buildRouterApp(t *testing.T) (*fiber.App, *serialnotest.Store) {
	t.Helper()
	s := serialnotest.NewStore()
	s.Items["WIDGET"] = &entity.Item{
		Code: "WIDGET", Name: "Widget", StockUOM: "Nos",
		IsStockItem: true, HasSerialNo: true, SerialNoSeries: "SN-.####", WarrantyPeriod: 365,
	}
	s.Vouchers[entity.VoucherTypePurchaseReceipt+"|PR-1"] = &entity.Voucher{
		VoucherType: entity.VoucherTypePurchaseReceipt, VoucherNo: "PR-1", Party: "SUP-1",
	}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		LedgerUC:   serialno.NewLedgerUseCase(s.Tx(), s.ItemRepo(), logger.Nop()),
		SerialNoUC: serialno.NewSerialNoUseCase(s.Tx(), s.ItemRepo(), logger.Nop()),
		CardUC:     serialno.NewCardUseCase(s.Tx(), nil),
		JWTSecret:  testJWTSecret,
	})
	return app, s
}

func doJSON(t *testing.T, app *fiber.App, method, path, role string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func receipt() map[string]any {
	return map[string]any{
		"item_code":     "WIDGET",
		"warehouse":     "WH-A",
		"posting_date":  "2024-01-01",
		"posting_time":  "09:00:00",
		"voucher_type":  entity.VoucherTypePurchaseReceipt,
		"voucher_no":    "PR-1",
		"actual_qty":    2,
		"incoming_rate": 50,
	}
}

func TestCreateEntry_AutogeneratesSerials(t *testing.T) {
	app, s := buildRouterApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/stock-ledger/entries", "bodeguero", receipt())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decode[dto.StockLedgerEntryResponse](t, resp)
	assert.Equal(t, []string{"SN-0001", "SN-0002"}, body.SerialNos)
	assert.Equal(t, "WH-A", s.Serials["SN-0002"].Warehouse)
}

func TestCreateEntry_Validation(t *testing.T) {
	app, _ := buildRouterApp(t)
	in := receipt()
	delete(in, "warehouse")

	resp := doJSON(t, app, fiber.MethodPost, "/api/stock-ledger/entries", "admin", in)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCreateEntry_WarehouseMismatch(t *testing.T) {
	app, _ := buildRouterApp(t)
	require.Equal(t, fiber.StatusCreated,
		doJSON(t, app, fiber.MethodPost, "/api/stock-ledger/entries", "admin", receipt()).StatusCode)

	resp := doJSON(t, app, fiber.MethodPost, "/api/stock-ledger/entries", "admin", map[string]any{
		"item_code":    "WIDGET",
		"warehouse":    "WH-B",
		"posting_date": "2024-01-10",
		"voucher_type": entity.VoucherTypeStockEntry,
		"voucher_no":   "SE-1",
		"actual_qty":   -1,
		"serial_nos":   "SN-0001",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "SERIAL_NO_WAREHOUSE", decode[dto.ErrorResponse](t, resp).Code)
}

func TestStockRoutes_ForbiddenForRRHH(t *testing.T) {
	app, _ := buildRouterApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/stock-ledger/entries", "rrhh", receipt())
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestDeleteSerialNo(t *testing.T) {
	app, s := buildRouterApp(t)
	s.Serials["SN-D"] = &entity.SerialNo{SerialNo: "SN-D", ItemCode: "WIDGET", Status: entity.SerialNoStatusDelivered}
	s.Serials["SN-N"] = &entity.SerialNo{SerialNo: "SN-N", ItemCode: "WIDGET", Status: entity.SerialNoStatusNotAvailable}

	t.Run("bodeguero no puede eliminar", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodDelete, "/api/serial-nos/SN-N", "bodeguero", nil)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("entregado no se elimina", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodDelete, "/api/serial-nos/SN-D", "admin", nil)
		require.Equal(t, fiber.StatusConflict, resp.StatusCode)
		assert.Equal(t, "SERIAL_NO_DELETE", decode[dto.ErrorResponse](t, resp).Code)
		assert.Contains(t, s.Serials, "SN-D")
	})

	t.Run("sin movimientos se elimina", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodDelete, "/api/serial-nos/SN-N", "admin", nil)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
		assert.NotContains(t, s.Serials, "SN-N")
	})
}

func TestGetSerialNo_NotFound(t *testing.T) {
	app, _ := buildRouterApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/serial-nos/SN-404", "admin", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}
