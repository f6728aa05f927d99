package serialno

import (
	"context"
	"fmt"

	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	domainsn "github.com/jhoicas/Stock-ledger-api/internal/domain/serialno"
)

// CardUseCase genera la ficha PDF de un número de serie.
type CardUseCase struct {
	tx        TxRunner
	generator CardGenerator
}

// NewCardUseCase construye el caso de uso.
func NewCardUseCase(tx TxRunner, generator CardGenerator) *CardUseCase {
	return &CardUseCase{tx: tx, generator: generator}
}

// Download devuelve el PDF y el nombre de archivo sugerido.
func (uc *CardUseCase) Download(ctx context.Context, serialNo string) ([]byte, string, error) {
	sn := domainsn.Normalize(serialNo)
	var (
		sr      *entity.SerialNo
		history []*entity.StockLedgerEntry
	)
	err := uc.tx.Run(ctx, func(r Repos) error {
		var err error
		if sr, err = r.SerialNos.GetByID(ctx, sn); err != nil || sr == nil {
			return err
		}
		history, err = r.Ledger.ListBySerialNo(ctx, sr.ItemCode, sn)
		return err
	})
	if err != nil {
		return nil, "", fmt.Errorf("ficha: %w", err)
	}
	if sr == nil {
		return nil, "", domain.ErrNotFound
	}

	// ListBySerialNo filtra por subcadena; la ficha solo muestra los movimientos exactos.
	exact := history[:0]
	for _, e := range history {
		if domainsn.Contains(e.SerialNos, sn) {
			exact = append(exact, e)
		}
	}
	pdf, err := uc.generator.SerialNoCard(sr, exact)
	if err != nil {
		return nil, "", fmt.Errorf("ficha: generar pdf: %w", err)
	}
	return pdf, fmt.Sprintf("serie-%s.pdf", sn), nil
}
