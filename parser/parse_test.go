package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/ibflex/flex"
)

// document wraps section markup in a complete single-statement response.
func document(sections string) string {
	return `<FlexQueryResponse queryName="test" type="AF">
	<FlexStatements count="1">
	<FlexStatement accountId="U1234567" fromDate="20170101" toDate="20171231"
		period="YTD" whenGenerated="20180101;093021">` +
		sections +
		`</FlexStatement></FlexStatements></FlexQueryResponse>`
}

func parseString(t *testing.T, doc string, opts Options) (*flex.FlexQueryResponse, []Diagnostic) {
	t.Helper()
	resp, diags, err := ParseWithOptions(strings.NewReader(doc), opts)
	assert.NoError(t, err)
	return resp, diags
}

func TestParseStatementHeader(t *testing.T) {
	t.Parallel()

	resp, diags := parseString(t, document(""), Options{})
	assert.Empty(t, diags)

	assert.Equal(t, "test", resp.QueryName)
	assert.Equal(t, "AF", resp.Type)
	assert.Len(t, resp.FlexStatements, 1)

	st := resp.FlexStatements[0]
	assert.Equal(t, "U1234567", st.AccountID)
	assert.Equal(t, flex.NewDate(2017, 1, 1), st.FromDate)
	assert.Equal(t, flex.NewDate(2017, 12, 31), st.ToDate)
	assert.Equal(t, "YTD", st.Period)
	assert.Equal(t, flex.DateTime{
		Date: flex.NewDate(2018, 1, 1),
		Time: flex.TimeOfDay{Hour: 9, Minute: 30, Second: 21},
	}, st.WhenGenerated)
}

func TestParseTrade(t *testing.T) {
	t.Parallel()

	doc := document(`<Trades>
		<Trade accountId="U1234567" currency="USD" assetCategory="STK"
			symbol="WMT" conid="12345" tradeID="456789" buySell="BUY"
			openCloseIndicator="O" quantity="80" tradePrice="4.61"
			tradeMoney="368.8" tradeDate="20170605"
			dateTime="20170605;143015" ibCommission="-1.0"
			notes="A;P" transactionType="ExchTrade"/>
	</Trades>`)

	resp, diags := parseString(t, doc, Options{})
	assert.Empty(t, diags)

	trades := resp.FlexStatements[0].Trades
	assert.Len(t, trades, 1)
	tr := trades[0]

	assert.Equal(t, "WMT", tr.Symbol)
	assert.Equal(t, flex.BuySellBuy, tr.BuySell)
	assert.Equal(t, flex.OpenCloseOpen, tr.OpenCloseIndicator)
	assert.Equal(t, flex.TradeTypeExchTrade, tr.TransactionType)

	// Decimal values keep the exact statement text, not a float rounding.
	assert.Equal(t, "80", tr.Quantity.String())
	assert.Equal(t, "4.61", tr.TradePrice.String())
	assert.Equal(t, "368.8", tr.TradeMoney.String())

	assert.Equal(t, flex.NewDate(2017, 6, 5), *tr.TradeDate)
	assert.Equal(t, []flex.Code{flex.CodeAssignment, flex.CodePartial}, tr.Notes)
}

func TestParseMixedTradesSection(t *testing.T) {
	t.Parallel()

	// Depending on query configuration, Trades carries executions alongside
	// order, lot and symbol-summary rows. Each lands in its own field.
	doc := document(`<Trades>
		<Trade accountId="U1234567" currency="USD" symbol="WMT"
			quantity="80" tradePrice="4.61" levelOfDetail="EXECUTION"/>
		<Order accountId="U1234567" currency="USD" symbol="WMT"
			quantity="80" levelOfDetail="ORDER"/>
		<Lot accountId="U1234567" currency="USD" symbol="WMT"
			quantity="80" levelOfDetail="CLOSED_LOT"/>
		<SymbolSummary accountId="U1234567" currency="USD" symbol="WMT"
			quantity="80" levelOfDetail="SYMBOL_SUMMARY"/>
	</Trades>`)

	resp, diags := parseString(t, doc, Options{})
	assert.Empty(t, diags)

	st := resp.FlexStatements[0]
	assert.Len(t, st.Trades, 1)
	assert.Len(t, st.Orders, 1)
	assert.Len(t, st.Lots, 1)
	assert.Len(t, st.SymbolSummaries, 1)

	assert.Equal(t, "EXECUTION", st.Trades[0].LevelOfDetail)
	assert.Equal(t, "ORDER", st.Orders[0].LevelOfDetail)
	assert.Equal(t, "CLOSED_LOT", st.Lots[0].LevelOfDetail)
	assert.Equal(t, "SYMBOL_SUMMARY", st.SymbolSummaries[0].LevelOfDetail)
}

func TestParseTradeConfirms(t *testing.T) {
	t.Parallel()

	doc := document(`<TradeConfirms>
		<TradeConfirm accountId="U1234567" currency="USD" symbol="IBM"
			quantity="10" price="120.5" buySell="BUY"/>
		<Order accountId="U1234567" currency="USD" symbol="IBM"
			quantity="10" levelOfDetail="ORDER"/>
	</TradeConfirms>`)

	resp, diags := parseString(t, doc, Options{})
	assert.Empty(t, diags)

	st := resp.FlexStatements[0]
	assert.Len(t, st.TradeConfirms, 1)
	assert.Equal(t, "IBM", st.TradeConfirms[0].Symbol)
	assert.Equal(t, "120.5", st.TradeConfirms[0].Price.String())

	// Order rows from TradeConfirms share the Orders field with Trades.
	assert.Len(t, st.Orders, 1)
	assert.Equal(t, "IBM", st.Orders[0].Symbol)
}

func TestParseTransactionTaxes(t *testing.T) {
	t.Parallel()

	doc := document(`<TransactionTaxes>
		<TransactionTax accountId="U1234567" currency="USD" symbol="VOD"
			taxAmount="-1.23" taxDescription="Stamp Duty"/>
		<TransactionTaxDetail accountId="U1234567" currency="USD" symbol="VOD"
			taxAmount="-1.23" taxDescription="Stamp Duty"/>
	</TransactionTaxes>`)

	resp, diags := parseString(t, doc, Options{})
	assert.Empty(t, diags)

	st := resp.FlexStatements[0]
	assert.Len(t, st.TransactionTaxes, 1)
	assert.Len(t, st.TransactionTaxDetails, 1)
	assert.Equal(t, "-1.23", st.TransactionTaxes[0].TaxAmount.String())
}

func TestParseEmptyCodeAttr(t *testing.T) {
	t.Parallel()

	// An empty code sequence is indistinguishable from an omitted attribute.
	doc := document(`<Trades>
		<Trade accountId="U1234567" currency="USD" symbol="WMT"
			quantity="80" notes=""/>
		<Trade accountId="U1234567" currency="USD" symbol="IBM"
			quantity="10"/>
	</Trades>`)

	resp, diags := parseString(t, doc, Options{})
	assert.Empty(t, diags)

	trades := resp.FlexStatements[0].Trades
	assert.Nil(t, trades[0].Notes)
	assert.Nil(t, trades[1].Notes)
	assert.Equal(t, trades[0].Notes, trades[1].Notes)
}

func TestParseAbsentSectionsAreEmpty(t *testing.T) {
	t.Parallel()

	resp, _ := parseString(t, document(""), Options{})
	st := resp.FlexStatements[0]

	assert.NotNil(t, st.Trades)
	assert.Len(t, st.Trades, 0)
	assert.NotNil(t, st.OpenPositions)
	assert.NotNil(t, st.CashTransactions)
	assert.Nil(t, st.AccountInformation)
}

func TestParseSingleSections(t *testing.T) {
	t.Parallel()

	doc := document(`<AccountInformation accountId="U1234567" currency="USD"
		name="Test Account" dateOpened="20150102"/>`)

	resp, diags := parseString(t, doc, Options{})
	assert.Empty(t, diags)

	ai := resp.FlexStatements[0].AccountInformation
	assert.NotNil(t, ai)
	assert.Equal(t, "Test Account", ai.Name)
	assert.Equal(t, flex.NewDate(2015, 1, 2), *ai.DateOpened)
}

func TestParseFxPositionsFlattened(t *testing.T) {
	t.Parallel()

	doc := document(`<FxPositions>
		<FxLots>
			<FxLot accountId="U1234567" functionalCurrency="USD" fxCurrency="EUR" quantity="100"/>
			<FxLot accountId="U1234567" functionalCurrency="USD" fxCurrency="EUR" quantity="200"/>
		</FxLots>
		<FxLots>
			<FxLot accountId="U1234567" functionalCurrency="USD" fxCurrency="JPY" quantity="5000"/>
		</FxLots>
	</FxPositions>`)

	resp, diags := parseString(t, doc, Options{})
	assert.Empty(t, diags)

	lots := resp.FlexStatements[0].FxPositions
	assert.Len(t, lots, 3)
	assert.Equal(t, "EUR", lots[0].FXCurrency)
	assert.Equal(t, "100", lots[0].Quantity.String())
	assert.Equal(t, "JPY", lots[2].FXCurrency)
}

func TestParseFxLotsWrapperAttrsReported(t *testing.T) {
	t.Parallel()

	doc := document(`<FxPositions>
		<FxLots summary="Y">
			<FxLot accountId="U1234567" functionalCurrency="USD" fxCurrency="EUR" quantity="100"/>
		</FxLots>
	</FxPositions>`)

	resp, diags := parseString(t, doc, Options{})

	// The lots still parse, but the wrapper attribute surfaces as drift.
	assert.Len(t, resp.FlexStatements[0].FxPositions, 1)
	assert.Len(t, diags, 1)
	assert.Equal(t, DiagSchemaDrift, diags[0].Kind)
	assert.Contains(t, diags[0].Path, "FxLots")
	assert.Equal(t, "summary", diags[0].Field)
	assert.Equal(t, "Y", diags[0].Value)
}

func TestParseManyPositionsPreserveOrder(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("<OpenPositions>")
	const n = 2140
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, `<OpenPosition accountId="U1234567" currency="USD" conid="%d" position="%d"/>`, i, i+1)
	}
	b.WriteString("</OpenPositions>")

	resp, diags := parseString(t, document(b.String()), Options{})
	assert.Empty(t, diags)

	positions := resp.FlexStatements[0].OpenPositions
	assert.Len(t, positions, n)
	for i, p := range positions {
		assert.Equal(t, fmt.Sprint(i), p.Conid)
	}
}

func TestParseMissingRequiredAttr(t *testing.T) {
	t.Parallel()

	doc := `<FlexQueryResponse queryName="test" type="AF">
		<FlexStatements count="1">
		<FlexStatement fromDate="20170101" toDate="20171231" period="YTD"
			whenGenerated="20180101;093021"/>
		</FlexStatements></FlexQueryResponse>`

	_, _, err := ParseWithOptions(strings.NewReader(doc), Options{})
	var rfe *RequiredFieldError
	assert.ErrorAs(t, err, &rfe)
	assert.Equal(t, "FlexStatement", rfe.Record)
	assert.Equal(t, "accountId", rfe.Field)
}

func TestParseStatementCountMismatch(t *testing.T) {
	t.Parallel()

	doc := `<FlexQueryResponse queryName="test" type="AF">
		<FlexStatements count="2">
		<FlexStatement accountId="U1" fromDate="20170101" toDate="20171231"
			period="YTD" whenGenerated="20180101;093021"/>
		</FlexStatements></FlexQueryResponse>`

	_, _, err := ParseWithOptions(strings.NewReader(doc), Options{})
	var me *MalformedError
	assert.ErrorAs(t, err, &me)
	assert.Contains(t, me.Error(), "count=2")
}

func TestParseRejectsWrongRoot(t *testing.T) {
	t.Parallel()

	_, _, err := ParseWithOptions(strings.NewReader(`<Portfolio/>`), Options{})
	var me *MalformedError
	assert.ErrorAs(t, err, &me)
}

func TestParseRejectsBrokenXML(t *testing.T) {
	t.Parallel()

	for _, doc := range []string{"", "<FlexQueryResponse", "<a><b></a></b>", "not xml at all"} {
		_, _, err := ParseWithOptions(strings.NewReader(doc), Options{})
		var me *MalformedError
		assert.ErrorAs(t, err, &me, doc)
	}
}

func TestParseUnknownSectionIsDiagnostic(t *testing.T) {
	t.Parallel()

	doc := document(`<FutureSection foo="1"><FutureRecord/></FutureSection>
		<Trades>
		<Trade accountId="U1234567" currency="USD" symbol="WMT" quantity="80"/>
		</Trades>`)

	resp, diags := parseString(t, doc, Options{})
	assert.Len(t, resp.FlexStatements[0].Trades, 1)
	assert.Len(t, diags, 1)
	assert.Equal(t, DiagUnmappedElement, diags[0].Kind)
	assert.Contains(t, diags[0].Path, "FutureSection")
}

func TestParseSchemaDrift(t *testing.T) {
	t.Parallel()

	doc := document(`<Trades>
		<Trade accountId="U1234567" currency="USD" symbol="WMT"
			quantity="80" brandNewAttr="hello"/>
	</Trades>`)

	// Default: reported and discarded.
	resp, diags := parseString(t, doc, Options{})
	assert.Len(t, diags, 1)
	assert.Equal(t, DiagSchemaDrift, diags[0].Kind)
	assert.Equal(t, "brandNewAttr", diags[0].Field)
	assert.Nil(t, resp.FlexStatements[0].Trades[0].Extras)

	// Permissive: reported and retained.
	resp, diags = parseString(t, doc, Options{Permissive: true})
	assert.Len(t, diags, 1)
	assert.Equal(t, flex.Extras{"brandNewAttr": "hello"}, resp.FlexStatements[0].Trades[0].Extras)
}

func TestParseStrictPromotesDiagnostics(t *testing.T) {
	t.Parallel()

	doc := document(`<Trades>
		<Trade accountId="U1234567" currency="USD" symbol="WMT"
			quantity="80" brandNewAttr="hello"/>
	</Trades>`)

	_, _, err := ParseWithOptions(strings.NewReader(doc), Options{Strict: true})
	var sme *StrictModeError
	assert.ErrorAs(t, err, &sme)
	assert.Equal(t, DiagSchemaDrift, sme.Diag.Kind)
}

func TestParseUnrecognizedEnumValue(t *testing.T) {
	t.Parallel()

	doc := document(`<Trades>
		<Trade accountId="U1234567" currency="USD" symbol="WMT"
			assetCategory="NEWKIND" quantity="80"/>
	</Trades>`)

	resp, diags := parseString(t, doc, Options{})

	// The wire value is preserved even though it is not a declared member.
	tr := resp.FlexStatements[0].Trades[0]
	assert.Equal(t, flex.AssetClass("NEWKIND"), tr.AssetCategory)
	assert.False(t, tr.AssetCategory.Known())

	assert.Len(t, diags, 1)
	assert.Equal(t, DiagUnrecognizedCode, diags[0].Kind)
	assert.Equal(t, "NEWKIND", diags[0].Value)
}

func TestParseInvalidCurrencyIsFatal(t *testing.T) {
	t.Parallel()

	doc := document(`<Trades>
		<Trade accountId="U1234567" currency="FOO" symbol="WMT" quantity="80"/>
	</Trades>`)

	_, _, err := ParseWithOptions(strings.NewReader(doc), Options{})
	var ce *CoercionError
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t, "FOO", ce.Value)
	assert.Equal(t, "currency", ce.Target)
	assert.Equal(t, "currency", ce.Field)
}

func TestParseAmbiguousDateIsFatal(t *testing.T) {
	t.Parallel()

	doc := document(`<Trades>
		<Trade accountId="U1234567" currency="USD" symbol="WMT"
			quantity="80" tradeDate="05/06/2017"/>
	</Trades>`)

	_, _, err := ParseWithOptions(strings.NewReader(doc), Options{})
	var amb *AmbiguousDateError
	assert.ErrorAs(t, err, &amb)
	assert.Equal(t, "05/06/2017", amb.Value)
	assert.Equal(t, "tradeDate", amb.Field)
	assert.Contains(t, amb.Path, "Trade")

	// An explicit date mode resolves the same document.
	resp, _, err := ParseWithOptions(strings.NewReader(doc), Options{DateMode: DateModeUS})
	assert.NoError(t, err)
	assert.Equal(t, flex.NewDate(2017, 5, 6), *resp.FlexStatements[0].Trades[0].TradeDate)
}

func TestParseAbsentMarkers(t *testing.T) {
	t.Parallel()

	doc := document(`<Trades>
		<Trade accountId="U1234567" currency="USD" symbol="WMT"
			quantity="80" tradePrice="" ibCommission="--" closePrice="N/A"
			tradeDate="MULTI" dateTime="MULTI" openCloseIndicator=""/>
	</Trades>`)

	resp, diags := parseString(t, doc, Options{})
	assert.Empty(t, diags)

	tr := resp.FlexStatements[0].Trades[0]
	assert.Nil(t, tr.TradePrice)
	assert.Nil(t, tr.IBCommission)
	assert.Nil(t, tr.ClosePrice)
	assert.Nil(t, tr.TradeDate)
	assert.Nil(t, tr.DateTime)
	assert.Equal(t, flex.OpenClose(""), tr.OpenCloseIndicator)
}

func TestParseTrimSpace(t *testing.T) {
	t.Parallel()

	doc := document(`<Trades>
		<Trade accountId="U1234567" currency="USD" symbol=" WMT "
			quantity=" 80 "/>
	</Trades>`)

	// Padding is a coercion error unless trimming is enabled.
	_, _, err := ParseWithOptions(strings.NewReader(doc), Options{})
	var ce *CoercionError
	assert.ErrorAs(t, err, &ce)

	resp, _ := parseString(t, doc, Options{TrimSpace: true})
	tr := resp.FlexStatements[0].Trades[0]
	assert.Equal(t, "WMT", tr.Symbol)
	assert.Equal(t, "80", tr.Quantity.String())
}

func TestParseIdempotent(t *testing.T) {
	t.Parallel()

	doc := document(`<Trades>
		<Trade accountId="U1234567" currency="USD" symbol="WMT" conid="1"
			buySell="BUY" quantity="80" tradePrice="4.61" notes="A;P"/>
		<Trade accountId="U1234567" currency="USD" symbol="IBM" conid="2"
			buySell="SELL" quantity="-10" tradePrice="120.5"/>
	</Trades>
	<CashTransactions>
		<CashTransaction accountId="U1234567" currency="USD" type="Dividends" amount="12.34"/>
	</CashTransactions>`)

	first, d1 := parseString(t, doc, Options{})
	second, d2 := parseString(t, doc, Options{})

	assert.Equal(t, first, second)
	assert.Equal(t, d1, d2)
}

func TestParseMultipleStatements(t *testing.T) {
	t.Parallel()

	doc := `<FlexQueryResponse queryName="test" type="AF">
		<FlexStatements count="2">
		<FlexStatement accountId="U1" fromDate="20170101" toDate="20170630"
			period="FirstHalf" whenGenerated="20180101;093021"/>
		<FlexStatement accountId="U2" fromDate="20170701" toDate="20171231"
			period="SecondHalf" whenGenerated="20180101;093021"/>
		</FlexStatements></FlexQueryResponse>`

	resp, diags := parseString(t, doc, Options{})
	assert.Empty(t, diags)
	assert.Len(t, resp.FlexStatements, 2)
	assert.Equal(t, "U1", resp.FlexStatements[0].AccountID)
	assert.Equal(t, "U2", resp.FlexStatements[1].AccountID)
}

func TestParseLegacyCashActionAlias(t *testing.T) {
	t.Parallel()

	doc := document(`<CashTransactions>
		<CashTransaction accountId="U1234567" currency="USD"
			type="Deposits/Withdrawals" amount="1000"/>
	</CashTransactions>`)

	resp, diags := parseString(t, doc, Options{})
	assert.Empty(t, diags)

	ct := resp.FlexStatements[0].CashTransactions[0]
	assert.Equal(t, flex.CashActionDepositWithdraw, ct.Type)
	assert.True(t, ct.Type.Known())
}
