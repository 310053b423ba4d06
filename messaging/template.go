// Package messaging renders outreach templates and builds the WhatsApp
// deep links used to deliver them.
package messaging

import (
	"strings"
	"time"

	"github.com/joaovmb/team-manager/models"
	"github.com/joaovmb/team-manager/reports"
)

// Placeholder tokens recognized by Render.
const (
	TokenName    = "{NOME}"
	TokenAmount  = "{VALOR}"
	TokenDueDate = "{DATA_VENCIMENTO}"
)

// DefaultAmount substitutes for {VALOR} when the player has no fee set.
const DefaultAmount = "200"

// CustomTemplateName labels free-text batches in the history.
const CustomTemplateName = "Mensagem Personalizada"

// Render substitutes every occurrence of the three known tokens with the
// player's attributes. Unknown tokens and all surrounding text pass through
// verbatim; replacements are global and independent of each other. A
// missing due date falls back to now, a missing fee to DefaultAmount.
func Render(template string, player models.Player, now time.Time) string {
	amount := DefaultAmount
	if player.MonthlyFee > 0 {
		amount = reports.FormatAmount(player.MonthlyFee)
	}

	dueDate := now
	if player.DueDate != nil {
		dueDate = *player.DueDate
	}

	r := strings.NewReplacer(
		TokenName, player.Name,
		TokenAmount, amount,
		TokenDueDate, dueDate.Format("02/01/2006"),
	)
	return r.Replace(template)
}

type Template struct {
	Name     string `json:"name"`
	Message  string `json:"message"`
	Category string `json:"category"`
}

// Templates is the fixed catalogue offered by the product.
var Templates = []Template{
	{
		Name:     "Cobrança Pendente",
		Message:  "Olá {NOME}! Sua mensalidade de R$ {VALOR} com vencimento em {DATA_VENCIMENTO} está pendente. Por favor, realize o pagamento para manter sua participação no time ativo. Qualquer dúvida, entre em contato!",
		Category: "cobranca",
	},
	{
		Name:     "Cobrança Atrasada",
		Message:  "Oi {NOME}, sua mensalidade de R$ {VALOR} venceu em {DATA_VENCIMENTO} e ainda não foi quitada. Para evitar o cancelamento da sua vaga, regularize sua situação o quanto antes. Obrigado!",
		Category: "cobranca",
	},
	{
		Name:     "Confirmação de Treino",
		Message:  "Fala {NOME}! Lembrando que temos treino hoje às 19h no campo. Não esqueça de trazer água e chegar 15 minutos antes. Até mais!",
		Category: "treino",
	},
	{
		Name:     "Convocação para Jogo",
		Message:  "E aí {NOME}! Você está convocado para o jogo de domingo às 9h. Local: Campo Municipal. Chegada às 8h30. Vamos que vamos! ⚽",
		Category: "jogo",
	},
}

// TemplateByName looks a catalogue entry up by its exact name.
func TemplateByName(name string) (Template, bool) {
	for _, t := range Templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}
