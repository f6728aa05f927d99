// Package naming expande patrones de series de numeración del tipo "SN-.####" o "PRE-.YY.MM.-.#####".
//
// El patrón se divide por puntos: las partes que empiezan con '#' definen el ancho del
// contador, YY/YYYY/MM/DD se reemplazan por la fecha y el resto es literal. El contador
// se lleva por prefijo (todo lo que precede al contador).
package naming

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const defaultDigits = 5

// ErrInvalidSeries el patrón está vacío.
var ErrInvalidSeries = errors.New("serie de numeración inválida")

// Series patrón expandido para una fecha concreta.
type Series struct {
	Prefix string
	Digits int
	Suffix string
}

// Parse expande el patrón con la fecha dada.
func Parse(pattern string, now time.Time) (Series, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return Series{}, ErrInvalidSeries
	}
	if !strings.Contains(pattern, "#") {
		pattern += ".#####"
	}
	var s Series
	var b strings.Builder
	counterSeen := false
	for _, part := range strings.Split(pattern, ".") {
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "#") && !counterSeen {
			s.Prefix = b.String()
			s.Digits = len(part)
			b.Reset()
			counterSeen = true
			continue
		}
		b.WriteString(expandToken(part, now))
	}
	s.Suffix = b.String()
	if s.Digits == 0 {
		s.Digits = defaultDigits
	}
	return s, nil
}

// Name arma el identificador para el valor del contador.
func (s Series) Name(n int64) string {
	return fmt.Sprintf("%s%0*d%s", s.Prefix, s.Digits, n, s.Suffix)
}

func expandToken(part string, now time.Time) string {
	switch part {
	case "YY":
		return now.Format("06")
	case "YYYY":
		return now.Format("2006")
	case "MM":
		return now.Format("01")
	case "DD":
		return now.Format("02")
	default:
		return part
	}
}
