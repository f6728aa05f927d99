package naming_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/naming"
)

func TestParse(t *testing.T) {
	now := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)

	s, err := naming.Parse("SN-.####", now)
	require.NoError(t, err)
	assert.Equal(t, "SN-", s.Prefix)
	assert.Equal(t, "SN-0001", s.Name(1))
	assert.Equal(t, "SN-0002", s.Name(2))

	s, err = naming.Parse("PRE-.YY.MM.-.#####", now)
	require.NoError(t, err)
	assert.Equal(t, "PRE-2403-", s.Prefix)
	assert.Equal(t, "PRE-2403-00042", s.Name(42))

	s, err = naming.Parse("LOT.###.-X", now)
	require.NoError(t, err)
	assert.Equal(t, "LOT007-X", s.Name(7))
}

func TestParse_SinContadorAgregaCincoDigitos(t *testing.T) {
	s, err := naming.Parse("ABC-", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "ABC-00001", s.Name(1))
}

func TestParse_Vacio(t *testing.T) {
	_, err := naming.Parse("  ", time.Now())
	assert.ErrorIs(t, err, naming.ErrInvalidSeries)
}
