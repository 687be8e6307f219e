// Package flex defines the typed object graph produced from an Interactive
// Brokers Flex statement, along with the enumerated code tables its fields
// draw from.
//
// The struct tags on these types are the parsing schema: `flex:"attrName"`
// binds a struct field to an XML attribute, with a ",required" option for
// attributes that must be present. Fields whose type is a record slice or a
// record pointer bind statement sections instead of attributes; a section
// tag of the form "A|B" binds the same record type under several container
// elements (some containers hold a mix of record types, routed by element
// tag). Adding a new section or attribute is a change here, never in the
// parser.
//
// Values are built in one pass by the parser package and are read-only
// thereafter. Optional scalars are pointers (nil = absent); optional text is
// "" (the vendor grammar sends empty attributes for null); enumerated fields
// are "" when absent and preserve unrecognized wire values verbatim.
package flex

// Extras holds attributes present on the wire but not declared in the
// schema. It is populated only when parsing in permissive mode; otherwise
// nil.
type Extras map[string]string

// FlexQueryResponse is the root of one parsed Flex document.
type FlexQueryResponse struct {
	QueryName string `flex:"queryName,required"`
	Type      string `flex:"type,required"`

	FlexStatements []FlexStatement

	Extras Extras `flex:"-"`
}

// FlexStatement is one reporting period for one account. Section fields are
// always non-nil slices in a parsed statement; a section absent from the
// document is an empty slice, not a missing field.
type FlexStatement struct {
	AccountID     string   `flex:"accountId,required"`
	FromDate      Date     `flex:"fromDate,required"`
	ToDate        Date     `flex:"toDate,required"`
	Period        string   `flex:"period,required"`
	WhenGenerated DateTime `flex:"whenGenerated,required"`

	AccountInformation *AccountInformation `flex:"AccountInformation"`
	ChangeInNAV        *ChangeInNAV        `flex:"ChangeInNAV"`

	CashReport                   []CashReportCurrency                 `flex:"CashReport"`
	MTDYTDPerformanceSummary     []MTDYTDPerformanceSummaryUnderlying `flex:"MTDYTDPerformanceSummary"`
	MTMPerformanceSummaryInBase  []MTMPerformanceSummaryUnderlying    `flex:"MTMPerformanceSummaryInBase"`
	EquitySummaryInBase          []EquitySummaryByReportDateInBase    `flex:"EquitySummaryInBase"`
	FIFOPerformanceSummaryInBase []FIFOPerformanceSummaryUnderlying   `flex:"FIFOPerformanceSummaryInBase"`
	StmtFunds                    []StatementOfFundsLine               `flex:"StmtFunds"`
	ChangeInPositionValues       []ChangeInPositionValue              `flex:"ChangeInPositionValues"`
	OpenPositions                []OpenPosition                       `flex:"OpenPositions"`
	NetStockPositionSummary      []NetStockPosition                   `flex:"NetStockPositionSummary"`
	FxPositions                  []FxLot                              `flex:"FxPositions,wrap=FxLots"`
	Trades                       []Trade                              `flex:"Trades"`
	Lots                         []Lot                                `flex:"Trades"`
	Orders                       []Order                              `flex:"Trades|TradeConfirms"`
	SymbolSummaries              []SymbolSummary                      `flex:"Trades|TradeConfirms"`
	TradeConfirms                []TradeConfirm                       `flex:"TradeConfirms"`
	TransactionTaxes             []TransactionTax                     `flex:"TransactionTaxes"`
	TransactionTaxDetails        []TransactionTaxDetail               `flex:"TransactionTaxes"`
	OptionEAE                    []OptionEAE                          `flex:"OptionEAE"`
	TradeTransfers               []TradeTransfer                      `flex:"TradeTransfers"`
	UnsettledTransfers           []UnsettledTransfer                  `flex:"UnsettledTransfers"`
	UnbundledCommissionDetails   []UnbundledCommissionDetail          `flex:"UnbundledCommissionDetails"`
	PriorPeriodPositions         []PriorPeriodPosition                `flex:"PriorPeriodPositions"`
	CorporateActions             []CorporateAction                    `flex:"CorporateActions"`
	ClientFees                   []ClientFee                          `flex:"ClientFees"`
	ClientFeesDetails            []ClientFeesDetail                   `flex:"ClientFeesDetail"`
	DebitCardActivities          []DebitCardActivity                  `flex:"DebitCardActivities"`
	CashTransactions             []CashTransaction                    `flex:"CashTransactions"`
	SalesTaxes                   []SalesTax                           `flex:"SalesTaxes"`
	InterestAccruals             []InterestAccrualsCurrency           `flex:"InterestAccruals"`
	TierInterestDetails          []TierInterestDetail                 `flex:"TierInterestDetails"`
	HardToBorrowDetails          []HardToBorrowDetail                 `flex:"HardToBorrowDetails"`
	SLBActivities                []SLBActivity                        `flex:"SLBActivities"`
	SLBFees                      []SLBFee                             `flex:"SLBFees"`
	Transfers                    []Transfer                           `flex:"Transfers"`
	ChangeInDividendAccruals     []ChangeInDividendAccrual            `flex:"ChangeInDividendAccruals"`
	OpenDividendAccruals         []OpenDividendAccrual                `flex:"OpenDividendAccruals"`
	SecuritiesInfo               []SecurityInfo                       `flex:"SecuritiesInfo"`
	ConversionRates              []ConversionRate                     `flex:"ConversionRates"`

	Extras Extras `flex:"-"`
}
