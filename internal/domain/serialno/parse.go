package serialno

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize deja un número de serie en mayúsculas y sin espacios en los extremos.
func Normalize(serialNo string) string {
	return strings.TrimSpace(cases.Upper(language.Und).String(serialNo))
}

// Parse convierte el texto delimitado (saltos de línea o comas) en la lista de números
// de serie normalizados, conservando el orden y descartando entradas vacías.
func Parse(text string) []string {
	text = strings.ReplaceAll(Normalize(text), ",", "\n")
	var list []string
	for _, s := range strings.Split(text, "\n") {
		if s = strings.TrimSpace(s); s != "" {
			list = append(list, s)
		}
	}
	return list
}

// Format serializa la lista al formato de texto de la BD (uno por línea).
func Format(serialNos []string) string {
	return strings.Join(serialNos, "\n")
}

// Contains indica si la lista contiene exactamente el número de serie.
func Contains(serialNos []string, serialNo string) bool {
	for _, s := range serialNos {
		if s == serialNo {
			return true
		}
	}
	return false
}

// HasDuplicates indica si algún número de serie aparece más de una vez.
func HasDuplicates(serialNos []string) bool {
	seen := make(map[string]struct{}, len(serialNos))
	for _, s := range serialNos {
		if _, ok := seen[s]; ok {
			return true
		}
		seen[s] = struct{}{}
	}
	return false
}

// Equal compara dos listas respetando el orden.
func Equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ReplaceInList sustituye oldSerialNo por newSerialNo dentro de un texto delimitado.
// Devuelve el texto reescrito y si hubo algún reemplazo.
func ReplaceInList(text, oldSerialNo, newSerialNo string) (string, bool) {
	oldSerialNo, newSerialNo = Normalize(oldSerialNo), Normalize(newSerialNo)
	list := Parse(text)
	changed := false
	for i, s := range list {
		if s == oldSerialNo {
			list[i] = newSerialNo
			changed = true
		}
	}
	if !changed {
		return text, false
	}
	return Format(list), true
}
