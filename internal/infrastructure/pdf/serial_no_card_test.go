package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":       "0",
		"250":     "250",
		"25000":   "25.000",
		"1000000": "1.000.000",
		"-4500":   "-4.500",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(in), in)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "—", formatDate(nil))
	d := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "01/02/2025", formatDate(&d))
}

func TestSerialNoCard(t *testing.T) {
	delivered := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	warranty := delivered.AddDate(0, 0, 365)
	sr := &entity.SerialNo{
		SerialNo: "SN-0002", ItemCode: "WIDGET", ItemName: "Widget",
		Status: entity.SerialNoStatusDelivered, WarrantyPeriod: 365,
		WarrantyExpiryDate: &warranty, DeliveryDate: &delivered,
		DeliveryDocumentType: entity.VoucherTypeDeliveryNote, DeliveryDocumentNo: "DN-1",
		PurchaseRate: decimal.NewFromInt(125000),
	}
	history := []*entity.StockLedgerEntry{
		{PostingDate: delivered, PostingTime: "11:30:00", VoucherType: entity.VoucherTypeDeliveryNote,
			VoucherNo: "DN-1", Warehouse: "WH-A", ActualQty: decimal.NewFromInt(-1)},
	}

	out, err := NewMarotoCardGenerator().SerialNoCard(sr, history)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestSerialNoCard_SinHistorial(t *testing.T) {
	out, err := NewMarotoCardGenerator().SerialNoCard(&entity.SerialNo{SerialNo: "SN-0009"}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
