package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/serialno"
)

var _ repository.SerialTextRewriter = (*SerialTextRewriter)(nil)

// serialTextColumns tablas con columnas de texto que guardan listas de series.
var serialTextColumns = []struct{ table, key string }{
	{table: "stock_ledger_entries", key: "id::text"},
	{table: "voucher_items", key: "id"},
}

// SerialTextRewriter reescribe un número de serie dentro de las listas de texto.
// Filtra por subcadena en SQL y reemplaza solo coincidencias exactas de línea en Go.
type SerialTextRewriter struct {
	q Querier
}

func NewSerialTextRewriter(q Querier) *SerialTextRewriter {
	return &SerialTextRewriter{q: q}
}

// RewriteSerialNo reemplaza oldSerialNo por newSerialNo; devuelve las filas modificadas.
func (r *SerialTextRewriter) RewriteSerialNo(ctx context.Context, oldSerialNo, newSerialNo string) (int, error) {
	total := 0
	for _, c := range serialTextColumns {
		n, err := r.rewriteTable(ctx, c.table, c.key, oldSerialNo, newSerialNo)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func (r *SerialTextRewriter) rewriteTable(ctx context.Context, table, key, oldSerialNo, newSerialNo string) (int, error) {
	rows, err := r.q.Query(ctx,
		fmt.Sprintf(`SELECT %s, serial_no FROM %s WHERE serial_no LIKE '%%' || $1 || '%%' FOR UPDATE`, key, table),
		oldSerialNo)
	if err != nil {
		return 0, fmt.Errorf("select %s serial nos: %w", table, err)
	}
	type change struct{ id, text string }
	var changes []change
	for rows.Next() {
		var id, text string
		if err := rows.Scan(&id, &text); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan %s serial nos: %w", table, err)
		}
		if rewritten, ok := serialno.ReplaceInList(text, oldSerialNo, newSerialNo); ok {
			changes = append(changes, change{id: id, text: rewritten})
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("read %s serial nos: %w", table, err)
	}

	for _, c := range changes {
		_, err := r.q.Exec(ctx,
			fmt.Sprintf(`UPDATE %s SET serial_no = $2 WHERE %s = $1`, table, key), c.id, c.text)
		if err != nil {
			return 0, fmt.Errorf("update %s serial nos: %w", table, err)
		}
	}
	return len(changes), nil
}
