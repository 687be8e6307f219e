package flex

import "reflect"

// Enumerated code types. The underlying string is the exact text IB sends in
// the XML attribute, so an unrecognized vendor code round-trips verbatim;
// Known reports whether the value is in the declared member set.

// CashAction classifies a row in the CashTransactions section.
type CashAction string

const (
	CashActionDepositWithdraw CashAction = "Deposits & Withdrawals"
	CashActionBrokerIntPaid   CashAction = "Broker Interest Paid"
	CashActionBrokerIntRcvd   CashAction = "Broker Interest Received"
	CashActionWhTax           CashAction = "Withholding Tax"
	CashActionBondIntRcvd     CashAction = "Bond Interest Received"
	CashActionBondIntPaid     CashAction = "Bond Interest Paid"
	CashActionFees            CashAction = "Other Fees"
	CashActionDividend        CashAction = "Dividends"
	CashActionPaymentInLieu   CashAction = "Payment In Lieu Of Dividends"
	CashActionCommAdj         CashAction = "Commission Adjustments"
)

// Code is a short flag string used by both `code` and `notes` attributes.
type Code string

const (
	CodeAssignment            Code = "A"
	CodeAutoExercise          Code = "AEx" // automatic exercise for dividend-related recommendation
	CodeAdjustment            Code = "Adj"
	CodeAllocation            Code = "Al"
	CodeAway                  Code = "Aw"  // away trade
	CodeBuyIn                 Code = "B"   // automatic buy-in
	CodeBorrow                Code = "Bo"  // direct borrow
	CodeClosing               Code = "C"   // closing trade
	CodeCashDelivery          Code = "CD"
	CodeComplex               Code = "CP" // complex position
	CodeCancel                Code = "Ca"
	CodeCorrect               Code = "Co" // corrected trade
	CodeCrossing              Code = "Cx" // crossing executed as dual agent by IB for two IB customers
	CodeDual                  Code = "D"  // IB acted as dual agent (trade confirm reports only)
	CodeETF                   Code = "ETF" // ETF creation/redemption
	CodeExpired               Code = "Ep"  // resulted from an expired position
	CodeExercise              Code = "Ex"
	CodeGuaranteed            Code = "G" // trade in guaranteed account segment
	CodeHighestCost           Code = "HC"
	CodeHFInvestment          Code = "HFI" // investment transferred to hedge fund
	CodeHFRedemption          Code = "HFR" // redemption from hedge fund
	CodeInternal              Code = "I"   // internal transfer
	CodeAffiliate             Code = "IA"  // executed against an IB affiliate
	CodeInvestor              Code = "INV" // investment transfer from investor
	CodeMarginLow             Code = "L"   // ordered by IB (margin violation)
	CodeWashSale              Code = "LD"  // adjusted by loss disallowed from wash sale
	CodeLIFO                  Code = "LI"
	CodeLTCG                  Code = "LT" // long-term P/L
	CodeLoan                  Code = "Lo" // direct loan
	CodeManual                Code = "M"  // entered manually by IB
	CodeManualExercise        Code = "MEx"
	CodeMaxLoss               Code = "ML"
	CodeMaxLTCG               Code = "MLG"
	CodeMinLTCG               Code = "MLL"
	CodeMaxSTCG               Code = "MSG"
	CodeMinSTCG               Code = "MSL"
	CodeOpening               Code = "O" // opening trade
	CodePartial               Code = "P" // partial execution
	CodeFracRisklessPrincipal Code = "RP" // IB acted as riskless principal for the fractional share portion
	CodeFracPrincipal         Code = "FP" // IB acted as principal for the fractional share portion
	CodePriceImprovement      Code = "PI"
	CodePostAccrual           Code = "Po" // interest or dividend accrual posting
	CodePrincipal             Code = "Pr" // executed by the exchange as a crossing against an IB affiliate
	CodeReinvestment          Code = "R"
	CodeRedemption            Code = "RED" // redemption to investor
	CodeReverse               Code = "Re"  // interest or dividend accrual reversal
	CodeReimbursement         Code = "Ri"
	CodeSolicitedIB           Code = "SI"
	CodeSpecificLot           Code = "SL"
	CodeSolicitedOther        Code = "SO" // marked as solicited by your introducing broker
	CodeShortenedSettlement   Code = "SS"
	CodeSTCG                  Code = "ST" // short-term P/L
	CodeStockYield            Code = "SY" // positions that may be eligible for stock yield
	CodeTransfer              Code = "T"
)

// AssetClass is an instrument category.
type AssetClass string

const (
	AssetClassCash               AssetClass = "CASH"
	AssetClassBill               AssetClass = "BILL"
	AssetClassBond               AssetClass = "BOND"
	AssetClassStock              AssetClass = "STK"
	AssetClassOption             AssetClass = "OPT"
	AssetClassWarrant            AssetClass = "WAR"
	AssetClassFuture             AssetClass = "FUT"
	AssetClassFutureOption       AssetClass = "FOP"
	AssetClassCFD                AssetClass = "CFD"
	AssetClassForexCFD           AssetClass = "FXCFD"
	AssetClassCrypto             AssetClass = "CRYPTO"
	AssetClassStructuredProduct  AssetClass = "IOPT"
	AssetClassMetals             AssetClass = "CMDTY"
	AssetClassOptionsOnFutures   AssetClass = "FSFOP"
	AssetClassOptionFuturesStyle AssetClass = "FSOPT"
	AssetClassMutualFund         AssetClass = "FUND"
)

type TradeType string

const (
	TradeTypeExchTrade       TradeType = "ExchTrade"
	TradeTypeTradeCancel     TradeType = "TradeCancel"
	TradeTypeFracShare       TradeType = "FracShare"
	TradeTypeFracShareCancel TradeType = "FracShareCancel"
	TradeTypeTradeCorrect    TradeType = "TradeCorrect"
	TradeTypeBookTrade       TradeType = "BookTrade"
	TradeTypeDvpTrade        TradeType = "DvpTrade"
)

type BuySell string

const (
	BuySellBuy        BuySell = "BUY"
	BuySellCancelBuy  BuySell = "BUY (Ca.)"
	BuySellSell       BuySell = "SELL"
	BuySellCancelSell BuySell = "SELL (Ca.)"
)

type OpenClose string

const (
	OpenCloseOpen      OpenClose = "O"
	OpenCloseClose     OpenClose = "C"
	OpenCloseOpenClose OpenClose = "C;O"
	OpenCloseUnknown   OpenClose = "-"
)

type OrderType string

const (
	OrderTypeLimit         OrderType = "LMT"
	OrderTypeMarket        OrderType = "MKT"
	OrderTypeStop          OrderType = "STP"
	OrderTypeStopLimit     OrderType = "STPLMT"
	OrderTypeMarketOnClose OrderType = "MOC"
	OrderTypeLimitOnClose  OrderType = "LOC"
	// OrderTypeMultiple is not an actual IB order type; it stands in for
	// multi-valued input like "LMT;MKT".
	OrderTypeMultiple OrderType = "MULTIPLE"
)

// Reorg identifies a corporate action type.
type Reorg string

const (
	ReorgBondConversion        Reorg = "BC"
	ReorgBondMaturity          Reorg = "BM"
	ReorgContractSoulte        Reorg = "CA"
	ReorgContractConsolidation Reorg = "CC"
	ReorgCashDiv               Reorg = "CD"
	ReorgChoiceDiv             Reorg = "CH"
	ReorgConvertibleIssue      Reorg = "CI"
	ReorgContractSpinoff       Reorg = "CO"
	ReorgCouponPayment         Reorg = "CP"
	ReorgContractSplit         Reorg = "CS"
	ReorgCFDTermination        Reorg = "CT"
	ReorgDivRightsIssue        Reorg = "DI"
	ReorgDelistWorthless       Reorg = "DW"
	ReorgExpireDivRight        Reorg = "ED"
	ReorgFeeAllocation         Reorg = "FA"
	ReorgForwardSplitIssue     Reorg = "FI"
	ReorgForwardSplit          Reorg = "FS"
	ReorgGenericVoluntary      Reorg = "GV"
	ReorgChoiceDivDelivery     Reorg = "HD"
	ReorgChoiceDivIssue        Reorg = "HI"
	ReorgIssueChange           Reorg = "IC"
	ReorgAssetPurchase         Reorg = "OR"
	ReorgPurchaseIssue         Reorg = "PI"
	ReorgProxyVote             Reorg = "PV"
	ReorgRightsIssue           Reorg = "RI"
	ReorgReverseSplit          Reorg = "RS"
	ReorgStockDiv              Reorg = "SD"
	ReorgSpinoff               Reorg = "SO"
	ReorgSubscribeRights       Reorg = "SR"
	ReorgMerger                Reorg = "TC"
	ReorgTenderIssue           Reorg = "TI"
	ReorgTender                Reorg = "TO"
)

type OptionAction string

const (
	OptionActionAssign         OptionAction = "Assignment"
	OptionActionExercise       OptionAction = "Exercise"
	OptionActionExpire         OptionAction = "Expiration"
	OptionActionSell           OptionAction = "Sell"
	OptionActionBuy            OptionAction = "Buy"
	OptionActionCashSettlement OptionAction = "Cash Settlement"
)

type LongShort string

const (
	Long  LongShort = "Long"
	Short LongShort = "Short"
)

type ToFrom string

const (
	To   ToFrom = "To"
	From ToFrom = "From"
)

type TransferType string

const (
	TransferTypeInternal TransferType = "INTERNAL"
	TransferTypeACATS    TransferType = "ACATS"
	TransferTypeATON     TransferType = "ATON"
)

type InOut string

const (
	In  InOut = "IN"
	Out InOut = "OUT"
)

type DeliveredReceived string

const (
	Delivered DeliveredReceived = "Delivered"
	Received  DeliveredReceived = "Received"
)

type PutCall string

const (
	Put  PutCall = "P"
	Call PutCall = "C"
)

var (
	enumSets    = map[reflect.Type]map[string]struct{}{}
	enumAliases = map[reflect.Type]map[string]string{}
)

func registerEnum[E ~string](members ...E) {
	t := reflect.TypeOf(members[0])
	set := make(map[string]struct{}, len(members))
	for _, m := range members {
		set[string(m)] = struct{}{}
	}
	enumSets[t] = set
}

func registerAlias[E ~string](wire string, canonical E) {
	t := reflect.TypeOf(canonical)
	m := enumAliases[t]
	if m == nil {
		m = map[string]string{}
		enumAliases[t] = m
	}
	m[wire] = string(canonical)
}

func init() {
	registerEnum(
		CashActionDepositWithdraw, CashActionBrokerIntPaid,
		CashActionBrokerIntRcvd, CashActionWhTax, CashActionBondIntRcvd,
		CashActionBondIntPaid, CashActionFees, CashActionDividend,
		CashActionPaymentInLieu, CashActionCommAdj,
	)
	registerEnum(
		CodeAssignment, CodeAutoExercise, CodeAdjustment, CodeAllocation,
		CodeAway, CodeBuyIn, CodeBorrow, CodeClosing, CodeCashDelivery,
		CodeComplex, CodeCancel, CodeCorrect, CodeCrossing, CodeDual,
		CodeETF, CodeExpired, CodeExercise, CodeGuaranteed, CodeHighestCost,
		CodeHFInvestment, CodeHFRedemption, CodeInternal, CodeAffiliate,
		CodeInvestor, CodeMarginLow, CodeWashSale, CodeLIFO, CodeLTCG,
		CodeLoan, CodeManual, CodeManualExercise, CodeMaxLoss, CodeMaxLTCG,
		CodeMinLTCG, CodeMaxSTCG, CodeMinSTCG, CodeOpening, CodePartial,
		CodeFracRisklessPrincipal, CodeFracPrincipal, CodePriceImprovement,
		CodePostAccrual, CodePrincipal, CodeReinvestment, CodeRedemption,
		CodeReverse, CodeReimbursement, CodeSolicitedIB, CodeSpecificLot,
		CodeSolicitedOther, CodeShortenedSettlement, CodeSTCG,
		CodeStockYield, CodeTransfer,
	)
	registerEnum(
		AssetClassCash, AssetClassBill, AssetClassBond, AssetClassStock,
		AssetClassOption, AssetClassWarrant, AssetClassFuture,
		AssetClassFutureOption, AssetClassCFD, AssetClassForexCFD,
		AssetClassCrypto, AssetClassStructuredProduct, AssetClassMetals,
		AssetClassOptionsOnFutures, AssetClassOptionFuturesStyle,
		AssetClassMutualFund,
	)
	registerEnum(
		TradeTypeExchTrade, TradeTypeTradeCancel, TradeTypeFracShare,
		TradeTypeFracShareCancel, TradeTypeTradeCorrect, TradeTypeBookTrade,
		TradeTypeDvpTrade,
	)
	registerEnum(BuySellBuy, BuySellCancelBuy, BuySellSell, BuySellCancelSell)
	registerEnum(OpenCloseOpen, OpenCloseClose, OpenCloseOpenClose, OpenCloseUnknown)
	registerEnum(
		OrderTypeLimit, OrderTypeMarket, OrderTypeStop, OrderTypeStopLimit,
		OrderTypeMarketOnClose, OrderTypeLimitOnClose, OrderTypeMultiple,
	)
	registerEnum(
		ReorgBondConversion, ReorgBondMaturity, ReorgContractSoulte,
		ReorgContractConsolidation, ReorgCashDiv, ReorgChoiceDiv,
		ReorgConvertibleIssue, ReorgContractSpinoff, ReorgCouponPayment,
		ReorgContractSplit, ReorgCFDTermination, ReorgDivRightsIssue,
		ReorgDelistWorthless, ReorgExpireDivRight, ReorgFeeAllocation,
		ReorgForwardSplitIssue, ReorgForwardSplit, ReorgGenericVoluntary,
		ReorgChoiceDivDelivery, ReorgChoiceDivIssue, ReorgIssueChange,
		ReorgAssetPurchase, ReorgPurchaseIssue, ReorgProxyVote,
		ReorgRightsIssue, ReorgReverseSplit, ReorgStockDiv, ReorgSpinoff,
		ReorgSubscribeRights, ReorgMerger, ReorgTenderIssue, ReorgTender,
	)
	registerEnum(
		OptionActionAssign, OptionActionExercise, OptionActionExpire,
		OptionActionSell, OptionActionBuy, OptionActionCashSettlement,
	)
	registerEnum(Long, Short)
	registerEnum(To, From)
	registerEnum(TransferTypeInternal, TransferTypeACATS, TransferTypeATON)
	registerEnum(In, Out)
	registerEnum(Delivered, Received)
	registerEnum(Put, Call)

	// Legacy wire spellings still found in old statements.
	registerAlias("Deposits/Withdrawals", CashActionDepositWithdraw)
	registerAlias("ACAT", TransferTypeACATS)
}

// IsEnum reports whether t is one of the enumerated code types above.
func IsEnum(t reflect.Type) bool {
	_, ok := enumSets[t]
	return ok
}

// KnownEnum reports whether value is a declared member of enum type t.
func KnownEnum(t reflect.Type, value string) bool {
	set, ok := enumSets[t]
	if !ok {
		return false
	}
	_, ok = set[value]
	return ok
}

// CanonicalEnum resolves legacy wire aliases for enum type t. Values without
// an alias pass through unchanged.
func CanonicalEnum(t reflect.Type, value string) string {
	if m, ok := enumAliases[t]; ok {
		if canon, ok := m[value]; ok {
			return canon
		}
	}
	return value
}

func known[E ~string](v E) bool {
	return KnownEnum(reflect.TypeOf(v), string(v))
}

func (c CashAction) Known() bool        { return known(c) }
func (c Code) Known() bool              { return known(c) }
func (c AssetClass) Known() bool        { return known(c) }
func (c TradeType) Known() bool         { return known(c) }
func (c BuySell) Known() bool           { return known(c) }
func (c OpenClose) Known() bool         { return known(c) }
func (c OrderType) Known() bool         { return known(c) }
func (c Reorg) Known() bool             { return known(c) }
func (c OptionAction) Known() bool      { return known(c) }
func (c LongShort) Known() bool         { return known(c) }
func (c ToFrom) Known() bool            { return known(c) }
func (c TransferType) Known() bool      { return known(c) }
func (c InOut) Known() bool             { return known(c) }
func (c DeliveredReceived) Known() bool { return known(c) }
func (c PutCall) Known() bool           { return known(c) }
