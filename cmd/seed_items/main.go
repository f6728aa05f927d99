// seed_items carga el maestro de artículos y sus unidades desde un CSV exportado
// por el sistema contable (separador ';', codificación ISO-8859-1).
//
// Uso: go run ./cmd/seed_items [ruta/articulos.csv]
// Columnas: codigo;nombre;grupo;marca;uom;uom_entera;serializado;patron_serie;garantia_dias
// Los artículos existentes se omiten.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Stock-ledger-api/pkg/config"
	"github.com/jhoicas/Stock-ledger-api/pkg/logger"
)

type row struct {
	item entity.Item
	uom  entity.UOM
}

func main() {
	csvPath := "articulos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := readRows(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	uoms := postgres.NewUOMRepository(pool)
	items := postgres.NewItemRepository(pool)
	created, skipped := 0, 0
	for _, r := range rows {
		if err := uoms.Upsert(ctx, &r.uom); err != nil {
			log.Fatal().Err(err).Str("uom", r.uom.Name).Msg("guardar unidad")
		}
		err := items.Create(ctx, &r.item)
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			skipped++
		case err != nil:
			log.Fatal().Err(err).Str("item_code", r.item.Code).Msg("guardar artículo")
		default:
			created++
		}
	}
	log.Info().Int("creados", created).Int("omitidos", skipped).Msg("maestro de artículos cargado")
}

// readRows parsea el CSV ya decodificado a UTF-8. La primera fila es encabezado.
func readRows(in io.Reader) ([]row, error) {
	cr := csv.NewReader(in)
	cr.Comma = ';'
	cr.FieldsPerRecord = 9
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	out := make([]row, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		for j := range rec {
			rec[j] = strings.TrimSpace(rec[j])
		}
		if rec[0] == "" || rec[4] == "" {
			return nil, fmt.Errorf("línea %d: código y uom son obligatorios", line)
		}
		warranty, err := strconv.Atoi(defaultIfEmpty(rec[8], "0"))
		if err != nil || warranty < 0 {
			return nil, fmt.Errorf("línea %d: garantia_dias inválida %q", line, rec[8])
		}
		serialized := parseBool(rec[6])
		if rec[7] != "" && !serialized {
			return nil, fmt.Errorf("línea %d: patron_serie requiere serializado", line)
		}
		out = append(out, row{
			item: entity.Item{
				Code:           rec[0],
				Name:           defaultIfEmpty(rec[1], rec[0]),
				ItemGroup:      rec[2],
				Brand:          rec[3],
				StockUOM:       rec[4],
				IsStockItem:    true,
				HasSerialNo:    serialized,
				SerialNoSeries: rec[7],
				WarrantyPeriod: warranty,
			},
			uom: entity.UOM{Name: rec[4], MustBeWholeNumber: parseBool(rec[5])},
		})
	}
	return out, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "s", "si", "sí", "true", "x":
		return true
	}
	return false
}

func defaultIfEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
