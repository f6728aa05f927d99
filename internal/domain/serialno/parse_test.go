package serialno_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/serialno"
)

func TestParse(t *testing.T) {
	assert.Equal(t, []string{"SN-1", "SN-2", "SN-3"}, serialno.Parse(" sn-1\nSN-2 , sn-3\n\n"))
	assert.Nil(t, serialno.Parse("  \n , "))
	assert.Equal(t, "SN-1\nSN-2", serialno.Format([]string{"SN-1", "SN-2"}))
}

func TestHasDuplicates(t *testing.T) {
	assert.False(t, serialno.HasDuplicates([]string{"A", "B"}))
	assert.True(t, serialno.HasDuplicates([]string{"A", "B", "A"}))
}

func TestReplaceInList(t *testing.T) {
	text, changed := serialno.ReplaceInList("SN-1\nSN-10\nSN-2", "sn-1", "SN-9")
	assert.True(t, changed)
	assert.Equal(t, "SN-9\nSN-10\nSN-2", text, "solo reemplaza coincidencias exactas")

	text, changed = serialno.ReplaceInList("SN-10", "SN-1", "SN-9")
	assert.False(t, changed)
	assert.Equal(t, "SN-10", text)
}
