package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaCompiledOnce(t *testing.T) {
	t.Parallel()

	assert.Same(t, schema(), schema())
}

func TestSchemaSections(t *testing.T) {
	t.Parallel()

	reg := schema()

	trades, ok := reg.sections["Trades"]
	assert.True(t, ok)
	assert.False(t, trades.single)
	assert.Empty(t, trades.wrapper)
	assert.Contains(t, trades.targets, "Trade")
	assert.Equal(t, "Trade", trades.targets["Trade"].record.name)

	fx, ok := reg.sections["FxPositions"]
	assert.True(t, ok)
	assert.Contains(t, fx.targets, "FxLot")
	assert.Equal(t, "FxLots", fx.wrapper)

	ai, ok := reg.sections["AccountInformation"]
	assert.True(t, ok)
	assert.True(t, ai.single)
}

func TestSchemaMixedSections(t *testing.T) {
	t.Parallel()

	reg := schema()

	trades := reg.sections["Trades"]
	for _, name := range []string{"Trade", "Order", "Lot", "SymbolSummary"} {
		assert.Contains(t, trades.targets, name)
	}

	confirms := reg.sections["TradeConfirms"]
	assert.NotNil(t, confirms)
	for _, name := range []string{"TradeConfirm", "Order", "SymbolSummary"} {
		assert.Contains(t, confirms.targets, name)
	}
	assert.NotContains(t, confirms.targets, "Trade")

	// Order lands in the same statement field from either container.
	assert.Equal(t, trades.targets["Order"].field, confirms.targets["Order"].field)

	taxes := reg.sections["TransactionTaxes"]
	assert.NotNil(t, taxes)
	assert.Contains(t, taxes.targets, "TransactionTax")
	assert.Contains(t, taxes.targets, "TransactionTaxDetail")
}

func TestSchemaFieldKinds(t *testing.T) {
	t.Parallel()

	trade := schema().sections["Trades"].targets["Trade"].record

	price := trade.fields["tradePrice"]
	assert.NotNil(t, price)
	assert.Equal(t, kindDecimal, price.kind)
	assert.True(t, price.pointer)

	notes := trade.fields["notes"]
	assert.NotNil(t, notes)
	assert.Equal(t, kindCodeList, notes.kind)

	buySell := trade.fields["buySell"]
	assert.NotNil(t, buySell)
	assert.Equal(t, kindEnum, buySell.kind)

	tradeDate := trade.fields["tradeDate"]
	assert.NotNil(t, tradeDate)
	assert.Equal(t, kindDate, tradeDate.kind)
}

func TestSchemaCurrencyAttrsFlagged(t *testing.T) {
	t.Parallel()

	trade := schema().sections["Trades"].targets["Trade"].record

	assert.True(t, trade.fields["currency"].currency)
	assert.True(t, trade.fields["ibCommissionCurrency"].currency)
	assert.False(t, trade.fields["symbol"].currency)
}

func TestSchemaRequiredFields(t *testing.T) {
	t.Parallel()

	reg := schema()

	var attrs []string
	for _, fs := range reg.statement.required {
		attrs = append(attrs, fs.attr)
	}
	assert.ElementsMatch(t,
		[]string{"accountId", "fromDate", "toDate", "period", "whenGenerated"},
		attrs)

	assert.Len(t, reg.response.required, 2)
}
