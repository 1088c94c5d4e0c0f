package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strconv"
	"strings"
	"testing"

	"aiplay/heredity"

	"github.com/stretchr/testify/require"
)

const family0 = `name,mother,father,trait
Harry,Lily,James,
James,,,1
Lily,,,0
`

func infer(t *testing.T) *heredity.Result {
	t.Helper()
	f, err := heredity.Load(strings.NewReader(family0))
	require.NoError(t, err)
	result, err := heredity.Infer(context.Background(), f)
	require.NoError(t, err)
	return result
}

func TestPrint(t *testing.T) {
	t.Run("printing in dataset order", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, Print(&out, infer(t)))

		want := `Harry:
  Gene:
    2: 0.0092
    1: 0.4557
    0: 0.5351
  Trait:
    True: 0.2665
    False: 0.7335
James:
  Gene:
    2: 0.1976
    1: 0.5106
    0: 0.2918
  Trait:
    True: 1.0000
    False: 0.0000
Lily:
  Gene:
    2: 0.0036
    1: 0.0136
    0: 0.9827
  Trait:
    True: 0.0000
    False: 1.0000
`
		require.Equal(t, want, out.String())
	})

	t.Run("reporting write failures", func(t *testing.T) {
		err := Print(failingWriter{}, infer(t))

		require.ErrorIs(t, err, errClosed)
	})
}

func TestWriteCSV(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, WriteCSV(&out, infer(t)))

	rows, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, []string{"name", "gene_0", "gene_1", "gene_2", "trait_true", "trait_false"}, rows[0])
	require.Equal(t, "Harry", rows[1][0])
	require.Equal(t, "James", rows[2][0])
	require.Equal(t, "1", rows[2][4], "Known trait should be certain")

	sum := 0.0
	for _, cell := range rows[1][1:4] {
		p, err := strconv.ParseFloat(cell, 64)
		require.NoError(t, err)
		sum += p
	}
	require.InDelta(t, 1.0, sum, 1e-12, "Full precision gene distribution should sum to 1")
}

var errClosed = errors.New("closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errClosed
}
