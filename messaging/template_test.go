package messaging

import (
	"testing"
	"time"

	"github.com/joaovmb/team-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	due := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("replaces every occurrence of every token", func(t *testing.T) {
		player := models.Player{Name: "Carlos", MonthlyFee: 150, DueDate: &due}
		got := Render("{NOME} {NOME}: R$ {VALOR} até {DATA_VENCIMENTO}", player, now)
		assert.Equal(t, "Carlos Carlos: R$ 150 até 15/03/2025", got)
	})

	t.Run("unknown tokens pass through verbatim", func(t *testing.T) {
		player := models.Player{Name: "Ana"}
		got := Render("Oi {NOME}, veja {DESCONTO}", player, now)
		assert.Equal(t, "Oi Ana, veja {DESCONTO}", got)
	})

	t.Run("rendering is idempotent", func(t *testing.T) {
		player := models.Player{Name: "Bruno", MonthlyFee: 200, DueDate: &due}
		once := Render("{NOME} deve {VALOR}", player, now)
		assert.Equal(t, once, Render(once, player, now))
	})

	t.Run("zero fee falls back to the default amount", func(t *testing.T) {
		player := models.Player{Name: "Diego"}
		got := Render("{VALOR}", player, now)
		assert.Equal(t, DefaultAmount, got)
	})

	t.Run("missing due date falls back to now", func(t *testing.T) {
		player := models.Player{Name: "Elisa"}
		got := Render("{DATA_VENCIMENTO}", player, now)
		assert.Equal(t, "10/03/2025", got)
	})

	t.Run("fractional fee renders in shortest form", func(t *testing.T) {
		player := models.Player{Name: "Fábio", MonthlyFee: 150.5}
		got := Render("{VALOR}", player, now)
		assert.Equal(t, "150.5", got)
	})
}

func TestTemplateByName(t *testing.T) {
	tmpl, ok := TemplateByName("Cobrança Pendente")
	require.True(t, ok)
	assert.Equal(t, "cobranca", tmpl.Category)
	assert.Contains(t, tmpl.Message, TokenName)

	_, ok = TemplateByName("cobrança pendente")
	assert.False(t, ok, "lookup is case sensitive")
}

func TestWhatsAppLink(t *testing.T) {
	t.Run("strips formatting from the phone number", func(t *testing.T) {
		got := WhatsAppLink("55", "(11) 98765-4321", "Olá!")
		assert.Equal(t, "https://wa.me/5511987654321?text=Ol%C3%A1%21", got)
	})

	t.Run("encodes spaces and reserved characters", func(t *testing.T) {
		got := WhatsAppLink("55", "11987654321", "pague R$ 200 & confirme")
		assert.Equal(t, "https://wa.me/5511987654321?text=pague+R%24+200+%26+confirme", got)
	})

	t.Run("empty phone still yields a link with the country code", func(t *testing.T) {
		got := WhatsAppLink(DefaultCountryCode, "", "oi")
		assert.Equal(t, "https://wa.me/55?text=oi", got)
	})
}
