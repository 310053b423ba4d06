package reports

import (
	"strings"
	"testing"
	"time"

	"github.com/joaovmb/team-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	t.Run("no transactions writes the header only", func(t *testing.T) {
		var buf strings.Builder
		require.NoError(t, WriteCSV(&buf, nil))
		assert.Equal(t, "Data,Tipo,Categoria,Descrição,Valor,Método,Status\n", buf.String())
	})

	t.Run("one row per transaction with fixed status", func(t *testing.T) {
		date := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
		transactions := []models.Transaction{
			{
				Type:          models.TransactionIncome,
				Category:      "mensalidade",
				Description:   "Mensalidade Março",
				Amount:        200,
				Date:          date,
				PaymentMethod: models.MethodPix,
			},
			{
				Type:          models.TransactionExpense,
				Category:      "campo",
				Description:   "Aluguel",
				Amount:        350.5,
				Date:          date,
				PaymentMethod: models.MethodCash,
			},
		}

		var buf strings.Builder
		require.NoError(t, WriteCSV(&buf, transactions))

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "05/03/2025,income,mensalidade,Mensalidade Março,R$ 200,pix,concluído", lines[1])
		assert.Equal(t, "05/03/2025,expense,campo,Aluguel,R$ 350.5,cash,concluído", lines[2])
	})

	t.Run("field values are written raw, commas and all", func(t *testing.T) {
		var buf strings.Builder
		require.NoError(t, WriteCSV(&buf, []models.Transaction{{
			Type:          models.TransactionExpense,
			Description:   "bolas, coletes e cones",
			Amount:        120,
			Date:          time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
			PaymentMethod: models.MethodCard,
		}}))

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 2)
		// The embedded commas widen the row past the header's 7 columns.
		assert.Len(t, strings.Split(lines[1], ","), 9)
	})
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "200", FormatAmount(200))
	assert.Equal(t, "150.5", FormatAmount(150.5))
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "1234.56", FormatAmount(1234.56))
}

func TestExportFileName(t *testing.T) {
	at := time.Date(2025, time.March, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "financeiro-2025-03-05.csv", ExportFileName(at))
}
