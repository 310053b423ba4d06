package reports

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/joaovmb/team-manager/models"
)

const csvHeader = "Data,Tipo,Categoria,Descrição,Valor,Método,Status"

// WriteCSV streams the export: a header row, then one line per transaction
// with fields joined by bare commas. Field values are written raw — a comma
// inside a description produces extra columns. That matches the format
// consumers already parse, so it is preserved rather than quoted away.
func WriteCSV(w io.Writer, transactions []models.Transaction) error {
	if _, err := io.WriteString(w, csvHeader+"\n"); err != nil {
		return err
	}
	for _, t := range transactions {
		row := strings.Join([]string{
			t.Date.Format("02/01/2006"),
			string(t.Type),
			t.Category,
			t.Description,
			"R$ " + FormatAmount(t.Amount),
			string(t.PaymentMethod),
			"concluído",
		}, ",")
		if _, err := io.WriteString(w, row+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// FormatAmount renders an amount the way the finance screen did: shortest
// decimal form, no padding (200 not 200.00).
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ExportFileName is the attachment name for a CSV download generated at t.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("financeiro-%s.csv", t.Format("2006-01-02"))
}
