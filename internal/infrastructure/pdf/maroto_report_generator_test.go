package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/jhoicas/Pedidos-dashboard/internal/application/dto"
)

func TestGenerateStatisticsPDF(t *testing.T) {
	g := NewMarotoReportGenerator("fr", "EUR")

	out, err := g.GenerateStatisticsPDF(context.Background(), dto.StatisticsReportDTO{
		Title:       "Estadísticas de ventas",
		GeneratedAt: "12/03/2025 15:00",
		Monthly:     []dto.PeriodStatDTO{{Period: "2025-03", OrderCount: 1, TotalAmount: decimal.RequireFromString("35")}},
		Yearly:      []dto.PeriodStatDTO{{Period: "2025", OrderCount: 1, TotalAmount: decimal.RequireFromString("35")}},
		ProductionQueue: []dto.QueueProductDTO{
			{ProductID: "p1", ProductName: "Flyer A5", TotalQuantity: 3},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateStatisticsPDF_SinDatos(t *testing.T) {
	out, err := NewMarotoReportGenerator("es", "COP").GenerateStatisticsPDF(context.Background(), dto.StatisticsReportDTO{Title: "Vacío"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestMoneyFormatter(t *testing.T) {
	en := newMoneyFormatter(language.English, currency.EUR)
	assert.Equal(t, "1,234.50 €", en.format(decimal.RequireFromString("1234.5")))

	fr := newMoneyFormatter(language.French, currency.EUR)
	assert.Contains(t, fr.format(decimal.RequireFromString("1234.5")), "234,50")
}

func TestNewMarotoReportGenerator_ValoresInvalidos(t *testing.T) {
	g := NewMarotoReportGenerator("??", "XXXX")
	assert.Contains(t, g.money.format(decimal.RequireFromString("2")), "2,00")
	assert.Equal(t, "€", g.money.symbol)
}
