package flex

import "github.com/shopspring/decimal"

// Record types for the statement sections, one flat immutable value object
// per XML record element. Field vocabulary follows the Activity Flex Query
// reference; almost every attribute is individually selectable in the report
// template, so almost every field is optional.

type AccountInformation struct {
	AccountID                    string   `flex:"accountId"`
	AcctAlias                    string   `flex:"acctAlias"`
	Model                        string   `flex:"model"`
	Currency                     string   `flex:"currency"`
	Name                         string   `flex:"name"`
	AccountType                  string   `flex:"accountType"`
	CustomerType                 string   `flex:"customerType"`
	AccountCapabilities          []string `flex:"accountCapabilities"`
	TradingPermissions           []string `flex:"tradingPermissions"`
	RegisteredRepName            string   `flex:"registeredRepName"`
	RegisteredRepPhone           string   `flex:"registeredRepPhone"`
	DateOpened                   *Date    `flex:"dateOpened"`
	DateFunded                   *Date    `flex:"dateFunded"`
	DateClosed                   *Date    `flex:"dateClosed"`
	Street                       string   `flex:"street"`
	Street2                      string   `flex:"street2"`
	City                         string   `flex:"city"`
	State                        string   `flex:"state"`
	Country                      string   `flex:"country"`
	PostalCode                   string   `flex:"postalCode"`
	StreetResidentialAddress     string   `flex:"streetResidentialAddress"`
	Street2ResidentialAddress    string   `flex:"street2ResidentialAddress"`
	CityResidentialAddress       string   `flex:"cityResidentialAddress"`
	StateResidentialAddress      string   `flex:"stateResidentialAddress"`
	CountryResidentialAddress    string   `flex:"countryResidentialAddress"`
	PostalCodeResidentialAddress string   `flex:"postalCodeResidentialAddress"`
	MasterName                   string   `flex:"masterName"`
	IBEntity                     string   `flex:"ibEntity"`
	PrimaryEmail                 string   `flex:"primaryEmail"`
	AccountRepName               string   `flex:"accountRepName"`
	AccountRepPhone              string   `flex:"accountRepPhone"`
	Extras                       Extras   `flex:"-"`
}

type ChangeInNAV struct {
	AccountID                   string           `flex:"accountId"`
	AcctAlias                   string           `flex:"acctAlias"`
	Model                       string           `flex:"model"`
	FromDate                    *Date            `flex:"fromDate"`
	ToDate                      *Date            `flex:"toDate"`
	StartingValue               *decimal.Decimal `flex:"startingValue"`
	MTM                         *decimal.Decimal `flex:"mtm"`
	Realized                    *decimal.Decimal `flex:"realized"`
	ChangeInUnrealized          *decimal.Decimal `flex:"changeInUnrealized"`
	CostAdjustments             *decimal.Decimal `flex:"costAdjustments"`
	TransferredPnLAdjustments   *decimal.Decimal `flex:"transferredPnlAdjustments"`
	DepositsWithdrawals         *decimal.Decimal `flex:"depositsWithdrawals"`
	InternalCashTransfers       *decimal.Decimal `flex:"internalCashTransfers"`
	AssetTransfers              *decimal.Decimal `flex:"assetTransfers"`
	DebitCardActivity           *decimal.Decimal `flex:"debitCardActivity"`
	BillPay                     *decimal.Decimal `flex:"billPay"`
	Dividends                   *decimal.Decimal `flex:"dividends"`
	WithholdingTax              *decimal.Decimal `flex:"withholdingTax"`
	Withholding871m             *decimal.Decimal `flex:"withholding871m"`
	WithholdingTaxCollected     *decimal.Decimal `flex:"withholdingTaxCollected"`
	ChangeInDividendAccruals    *decimal.Decimal `flex:"changeInDividendAccruals"`
	Interest                    *decimal.Decimal `flex:"interest"`
	ChangeInInterestAccruals    *decimal.Decimal `flex:"changeInInterestAccruals"`
	AdvisorFees                 *decimal.Decimal `flex:"advisorFees"`
	ClientFees                  *decimal.Decimal `flex:"clientFees"`
	OtherFees                   *decimal.Decimal `flex:"otherFees"`
	FeesReceivables             *decimal.Decimal `flex:"feesReceivables"`
	Commissions                 *decimal.Decimal `flex:"commissions"`
	CommissionReceivables       *decimal.Decimal `flex:"commissionReceivables"`
	ForexCommissions            *decimal.Decimal `flex:"forexCommissions"`
	TransactionTax              *decimal.Decimal `flex:"transactionTax"`
	TaxReceivables              *decimal.Decimal `flex:"taxReceivables"`
	SalesTax                    *decimal.Decimal `flex:"salesTax"`
	SoftDollars                 *decimal.Decimal `flex:"softDollars"`
	NetFXTrading                *decimal.Decimal `flex:"netFxTrading"`
	FXTranslation               *decimal.Decimal `flex:"fxTranslation"`
	LinkingAdjustments          *decimal.Decimal `flex:"linkingAdjustments"`
	Other                       *decimal.Decimal `flex:"other"`
	EndingValue                 *decimal.Decimal `flex:"endingValue"`
	TWR                         *decimal.Decimal `flex:"twr"`
	CorporateActionProceeds     *decimal.Decimal `flex:"corporateActionProceeds"`
	CommissionCreditsRedemption *decimal.Decimal `flex:"commissionCreditsRedemption"`
	GrantActivity               *decimal.Decimal `flex:"grantActivity"`
	ExcessFundSweep             *decimal.Decimal `flex:"excessFundSweep"`
	BillableSalesTax            *decimal.Decimal `flex:"billableSalesTax"`
	Extras                      Extras           `flex:"-"`
}

// CashReportCurrency is one currency row of the <CashReport> section. The
// Sec/Com variants split a value across the securities and commodities
// account segments.
type CashReportCurrency struct {
	AccountID                      string           `flex:"accountId"`
	Currency                       string           `flex:"currency"`
	FromDate                       *Date            `flex:"fromDate"`
	ToDate                         *Date            `flex:"toDate"`
	StartingCash                   *decimal.Decimal `flex:"startingCash"`
	StartingCashSec                *decimal.Decimal `flex:"startingCashSec"`
	StartingCashCom                *decimal.Decimal `flex:"startingCashCom"`
	ClientFees                     *decimal.Decimal `flex:"clientFees"`
	ClientFeesSec                  *decimal.Decimal `flex:"clientFeesSec"`
	ClientFeesCom                  *decimal.Decimal `flex:"clientFeesCom"`
	Commissions                    *decimal.Decimal `flex:"commissions"`
	CommissionsSec                 *decimal.Decimal `flex:"commissionsSec"`
	CommissionsCom                 *decimal.Decimal `flex:"commissionsCom"`
	BillableCommissions            *decimal.Decimal `flex:"billableCommissions"`
	BillableCommissionsSec         *decimal.Decimal `flex:"billableCommissionsSec"`
	BillableCommissionsCom         *decimal.Decimal `flex:"billableCommissionsCom"`
	DepositWithdrawals             *decimal.Decimal `flex:"depositWithdrawals"`
	DepositWithdrawalsSec          *decimal.Decimal `flex:"depositWithdrawalsSec"`
	DepositWithdrawalsCom          *decimal.Decimal `flex:"depositWithdrawalsCom"`
	Deposits                       *decimal.Decimal `flex:"deposits"`
	DepositsSec                    *decimal.Decimal `flex:"depositsSec"`
	DepositsCom                    *decimal.Decimal `flex:"depositsCom"`
	Withdrawals                    *decimal.Decimal `flex:"withdrawals"`
	WithdrawalsSec                 *decimal.Decimal `flex:"withdrawalsSec"`
	WithdrawalsCom                 *decimal.Decimal `flex:"withdrawalsCom"`
	AccountTransfers               *decimal.Decimal `flex:"accountTransfers"`
	AccountTransfersSec            *decimal.Decimal `flex:"accountTransfersSec"`
	AccountTransfersCom            *decimal.Decimal `flex:"accountTransfersCom"`
	InternalTransfers              *decimal.Decimal `flex:"internalTransfers"`
	InternalTransfersSec           *decimal.Decimal `flex:"internalTransfersSec"`
	InternalTransfersCom           *decimal.Decimal `flex:"internalTransfersCom"`
	Dividends                      *decimal.Decimal `flex:"dividends"`
	DividendsSec                   *decimal.Decimal `flex:"dividendsSec"`
	DividendsCom                   *decimal.Decimal `flex:"dividendsCom"`
	BrokerInterest                 *decimal.Decimal `flex:"brokerInterest"`
	BrokerInterestSec              *decimal.Decimal `flex:"brokerInterestSec"`
	BrokerInterestCom              *decimal.Decimal `flex:"brokerInterestCom"`
	BondInterest                   *decimal.Decimal `flex:"bondInterest"`
	BondInterestSec                *decimal.Decimal `flex:"bondInterestSec"`
	BondInterestCom                *decimal.Decimal `flex:"bondInterestCom"`
	CashSettlingMTM                *decimal.Decimal `flex:"cashSettlingMtm"`
	CashSettlingMTMSec             *decimal.Decimal `flex:"cashSettlingMtmSec"`
	CashSettlingMTMCom             *decimal.Decimal `flex:"cashSettlingMtmCom"`
	CFDCharges                     *decimal.Decimal `flex:"cfdCharges"`
	CFDChargesSec                  *decimal.Decimal `flex:"cfdChargesSec"`
	CFDChargesCom                  *decimal.Decimal `flex:"cfdChargesCom"`
	NetTradesSales                 *decimal.Decimal `flex:"netTradesSales"`
	NetTradesSalesSec              *decimal.Decimal `flex:"netTradesSalesSec"`
	NetTradesSalesCom              *decimal.Decimal `flex:"netTradesSalesCom"`
	NetTradesPurchases             *decimal.Decimal `flex:"netTradesPurchases"`
	NetTradesPurchasesSec          *decimal.Decimal `flex:"netTradesPurchasesSec"`
	NetTradesPurchasesCom          *decimal.Decimal `flex:"netTradesPurchasesCom"`
	FeesReceivables                *decimal.Decimal `flex:"feesReceivables"`
	FeesReceivablesSec             *decimal.Decimal `flex:"feesReceivablesSec"`
	FeesReceivablesCom             *decimal.Decimal `flex:"feesReceivablesCom"`
	PaymentInLieu                  *decimal.Decimal `flex:"paymentInLieu"`
	PaymentInLieuSec               *decimal.Decimal `flex:"paymentInLieuSec"`
	PaymentInLieuCom               *decimal.Decimal `flex:"paymentInLieuCom"`
	TransactionTax                 *decimal.Decimal `flex:"transactionTax"`
	TransactionTaxSec              *decimal.Decimal `flex:"transactionTaxSec"`
	TransactionTaxCom              *decimal.Decimal `flex:"transactionTaxCom"`
	WithholdingTax                 *decimal.Decimal `flex:"withholdingTax"`
	WithholdingTaxSec              *decimal.Decimal `flex:"withholdingTaxSec"`
	WithholdingTaxCom              *decimal.Decimal `flex:"withholdingTaxCom"`
	FXTranslationGainLoss          *decimal.Decimal `flex:"fxTranslationGainLoss"`
	FXTranslationGainLossSec       *decimal.Decimal `flex:"fxTranslationGainLossSec"`
	FXTranslationGainLossCom       *decimal.Decimal `flex:"fxTranslationGainLossCom"`
	OtherFees                      *decimal.Decimal `flex:"otherFees"`
	OtherFeesSec                   *decimal.Decimal `flex:"otherFeesSec"`
	OtherFeesCom                   *decimal.Decimal `flex:"otherFeesCom"`
	EndingCash                     *decimal.Decimal `flex:"endingCash"`
	EndingCashSec                  *decimal.Decimal `flex:"endingCashSec"`
	EndingCashCom                  *decimal.Decimal `flex:"endingCashCom"`
	EndingSettledCash              *decimal.Decimal `flex:"endingSettledCash"`
	EndingSettledCashSec           *decimal.Decimal `flex:"endingSettledCashSec"`
	EndingSettledCashCom           *decimal.Decimal `flex:"endingSettledCashCom"`
	ClientFeesMTD                  *decimal.Decimal `flex:"clientFeesMTD"`
	ClientFeesYTD                  *decimal.Decimal `flex:"clientFeesYTD"`
	CommissionsMTD                 *decimal.Decimal `flex:"commissionsMTD"`
	CommissionsYTD                 *decimal.Decimal `flex:"commissionsYTD"`
	BillableCommissionsMTD         *decimal.Decimal `flex:"billableCommissionsMTD"`
	BillableCommissionsYTD         *decimal.Decimal `flex:"billableCommissionsYTD"`
	DepositWithdrawalsMTD          *decimal.Decimal `flex:"depositWithdrawalsMTD"`
	DepositWithdrawalsYTD          *decimal.Decimal `flex:"depositWithdrawalsYTD"`
	DepositsMTD                    *decimal.Decimal `flex:"depositsMTD"`
	DepositsYTD                    *decimal.Decimal `flex:"depositsYTD"`
	WithdrawalsMTD                 *decimal.Decimal `flex:"withdrawalsMTD"`
	WithdrawalsYTD                 *decimal.Decimal `flex:"withdrawalsYTD"`
	AccountTransfersMTD            *decimal.Decimal `flex:"accountTransfersMTD"`
	AccountTransfersYTD            *decimal.Decimal `flex:"accountTransfersYTD"`
	InternalTransfersMTD           *decimal.Decimal `flex:"internalTransfersMTD"`
	InternalTransfersYTD           *decimal.Decimal `flex:"internalTransfersYTD"`
	ExcessFundSweep                *decimal.Decimal `flex:"excessFundSweep"`
	ExcessFundSweepSec             *decimal.Decimal `flex:"excessFundSweepSec"`
	ExcessFundSweepCom             *decimal.Decimal `flex:"excessFundSweepCom"`
	ExcessFundSweepMTD             *decimal.Decimal `flex:"excessFundSweepMTD"`
	ExcessFundSweepYTD             *decimal.Decimal `flex:"excessFundSweepYTD"`
	DividendsMTD                   *decimal.Decimal `flex:"dividendsMTD"`
	DividendsYTD                   *decimal.Decimal `flex:"dividendsYTD"`
	InsuredDepositInterestMTD      *decimal.Decimal `flex:"insuredDepositInterestMTD"`
	InsuredDepositInterestYTD      *decimal.Decimal `flex:"insuredDepositInterestYTD"`
	BrokerInterestMTD              *decimal.Decimal `flex:"brokerInterestMTD"`
	BrokerInterestYTD              *decimal.Decimal `flex:"brokerInterestYTD"`
	BondInterestMTD                *decimal.Decimal `flex:"bondInterestMTD"`
	BondInterestYTD                *decimal.Decimal `flex:"bondInterestYTD"`
	CashSettlingMTMMTD             *decimal.Decimal `flex:"cashSettlingMtmMTD"`
	CashSettlingMTMYTD             *decimal.Decimal `flex:"cashSettlingMtmYTD"`
	RealizedVmMTD                  *decimal.Decimal `flex:"realizedVmMTD"`
	RealizedVmYTD                  *decimal.Decimal `flex:"realizedVmYTD"`
	CFDChargesMTD                  *decimal.Decimal `flex:"cfdChargesMTD"`
	CFDChargesYTD                  *decimal.Decimal `flex:"cfdChargesYTD"`
	NetTradesSalesMTD              *decimal.Decimal `flex:"netTradesSalesMTD"`
	NetTradesSalesYTD              *decimal.Decimal `flex:"netTradesSalesYTD"`
	AdvisorFeesMTD                 *decimal.Decimal `flex:"advisorFeesMTD"`
	AdvisorFeesYTD                 *decimal.Decimal `flex:"advisorFeesYTD"`
	FeesReceivablesMTD             *decimal.Decimal `flex:"feesReceivablesMTD"`
	FeesReceivablesYTD             *decimal.Decimal `flex:"feesReceivablesYTD"`
	NetTradesPurchasesMTD          *decimal.Decimal `flex:"netTradesPurchasesMTD"`
	NetTradesPurchasesYTD          *decimal.Decimal `flex:"netTradesPurchasesYTD"`
	PaymentInLieuMTD               *decimal.Decimal `flex:"paymentInLieuMTD"`
	PaymentInLieuYTD               *decimal.Decimal `flex:"paymentInLieuYTD"`
	TransactionTaxMTD              *decimal.Decimal `flex:"transactionTaxMTD"`
	TransactionTaxYTD              *decimal.Decimal `flex:"transactionTaxYTD"`
	TaxReceivablesMTD              *decimal.Decimal `flex:"taxReceivablesMTD"`
	TaxReceivablesYTD              *decimal.Decimal `flex:"taxReceivablesYTD"`
	WithholdingTaxMTD              *decimal.Decimal `flex:"withholdingTaxMTD"`
	WithholdingTaxYTD              *decimal.Decimal `flex:"withholdingTaxYTD"`
	Withholding871mMTD             *decimal.Decimal `flex:"withholding871mMTD"`
	Withholding871mYTD             *decimal.Decimal `flex:"withholding871mYTD"`
	WithholdingCollectedTaxMTD     *decimal.Decimal `flex:"withholdingCollectedTaxMTD"`
	WithholdingCollectedTaxYTD     *decimal.Decimal `flex:"withholdingCollectedTaxYTD"`
	SalesTaxMTD                    *decimal.Decimal `flex:"salesTaxMTD"`
	SalesTaxYTD                    *decimal.Decimal `flex:"salesTaxYTD"`
	OtherFeesMTD                   *decimal.Decimal `flex:"otherFeesMTD"`
	OtherFeesYTD                   *decimal.Decimal `flex:"otherFeesYTD"`
	AcctAlias                      string           `flex:"acctAlias"`
	Model                          string           `flex:"model"`
	AvgCreditBalance               *decimal.Decimal `flex:"avgCreditBalance"`
	AvgCreditBalanceSec            *decimal.Decimal `flex:"avgCreditBalanceSec"`
	AvgCreditBalanceCom            *decimal.Decimal `flex:"avgCreditBalanceCom"`
	AvgDebitBalance                *decimal.Decimal `flex:"avgDebitBalance"`
	AvgDebitBalanceSec             *decimal.Decimal `flex:"avgDebitBalanceSec"`
	AvgDebitBalanceCom             *decimal.Decimal `flex:"avgDebitBalanceCom"`
	LinkingAdjustments             *decimal.Decimal `flex:"linkingAdjustments"`
	LinkingAdjustmentsSec          *decimal.Decimal `flex:"linkingAdjustmentsSec"`
	LinkingAdjustmentsCom          *decimal.Decimal `flex:"linkingAdjustmentsCom"`
	InsuredDepositInterest         *decimal.Decimal `flex:"insuredDepositInterest"`
	InsuredDepositInterestSec      *decimal.Decimal `flex:"insuredDepositInterestSec"`
	InsuredDepositInterestCom      *decimal.Decimal `flex:"insuredDepositInterestCom"`
	RealizedVm                     *decimal.Decimal `flex:"realizedVm"`
	RealizedVmSec                  *decimal.Decimal `flex:"realizedVmSec"`
	RealizedVmCom                  *decimal.Decimal `flex:"realizedVmCom"`
	AdvisorFees                    *decimal.Decimal `flex:"advisorFees"`
	AdvisorFeesSec                 *decimal.Decimal `flex:"advisorFeesSec"`
	AdvisorFeesCom                 *decimal.Decimal `flex:"advisorFeesCom"`
	TaxReceivables                 *decimal.Decimal `flex:"taxReceivables"`
	TaxReceivablesSec              *decimal.Decimal `flex:"taxReceivablesSec"`
	TaxReceivablesCom              *decimal.Decimal `flex:"taxReceivablesCom"`
	Withholding871m                *decimal.Decimal `flex:"withholding871m"`
	Withholding871mSec             *decimal.Decimal `flex:"withholding871mSec"`
	Withholding871mCom             *decimal.Decimal `flex:"withholding871mCom"`
	WithholdingCollectedTax        *decimal.Decimal `flex:"withholdingCollectedTax"`
	WithholdingCollectedTaxSec     *decimal.Decimal `flex:"withholdingCollectedTaxSec"`
	WithholdingCollectedTaxCom     *decimal.Decimal `flex:"withholdingCollectedTaxCom"`
	SalesTax                       *decimal.Decimal `flex:"salesTax"`
	SalesTaxSec                    *decimal.Decimal `flex:"salesTaxSec"`
	SalesTaxCom                    *decimal.Decimal `flex:"salesTaxCom"`
	Other                          *decimal.Decimal `flex:"other"`
	OtherSec                       *decimal.Decimal `flex:"otherSec"`
	OtherCom                       *decimal.Decimal `flex:"otherCom"`
	LevelOfDetail                  string           `flex:"levelOfDetail"`
	DebitCardActivity              *decimal.Decimal `flex:"debitCardActivity"`
	DebitCardActivitySec           *decimal.Decimal `flex:"debitCardActivitySec"`
	DebitCardActivityCom           *decimal.Decimal `flex:"debitCardActivityCom"`
	DebitCardActivityMTD           *decimal.Decimal `flex:"debitCardActivityMTD"`
	DebitCardActivityYTD           *decimal.Decimal `flex:"debitCardActivityYTD"`
	BillPay                        *decimal.Decimal `flex:"billPay"`
	BillPaySec                     *decimal.Decimal `flex:"billPaySec"`
	BillPayCom                     *decimal.Decimal `flex:"billPayCom"`
	BillPayMTD                     *decimal.Decimal `flex:"billPayMTD"`
	BillPayYTD                     *decimal.Decimal `flex:"billPayYTD"`
	RealizedForexVm                *decimal.Decimal `flex:"realizedForexVm"`
	RealizedForexVmSec             *decimal.Decimal `flex:"realizedForexVmSec"`
	RealizedForexVmCom             *decimal.Decimal `flex:"realizedForexVmCom"`
	RealizedForexVmMTD             *decimal.Decimal `flex:"realizedForexVmMTD"`
	RealizedForexVmYTD             *decimal.Decimal `flex:"realizedForexVmYTD"`
	IpoSubscription                *decimal.Decimal `flex:"ipoSubscription"`
	IpoSubscriptionSec             *decimal.Decimal `flex:"ipoSubscriptionSec"`
	IpoSubscriptionCom             *decimal.Decimal `flex:"ipoSubscriptionCom"`
	IpoSubscriptionMTD             *decimal.Decimal `flex:"ipoSubscriptionMTD"`
	IpoSubscriptionYTD             *decimal.Decimal `flex:"ipoSubscriptionYTD"`
	BillableSalesTax               *decimal.Decimal `flex:"billableSalesTax"`
	BillableSalesTaxSec            *decimal.Decimal `flex:"billableSalesTaxSec"`
	BillableSalesTaxCom            *decimal.Decimal `flex:"billableSalesTaxCom"`
	BillableSalesTaxMTD            *decimal.Decimal `flex:"billableSalesTaxMTD"`
	BillableSalesTaxYTD            *decimal.Decimal `flex:"billableSalesTaxYTD"`
	CommissionCreditsRedemption    *decimal.Decimal `flex:"commissionCreditsRedemption"`
	CommissionCreditsRedemptionSec *decimal.Decimal `flex:"commissionCreditsRedemptionSec"`
	CommissionCreditsRedemptionCom *decimal.Decimal `flex:"commissionCreditsRedemptionCom"`
	CommissionCreditsRedemptionMTD *decimal.Decimal `flex:"commissionCreditsRedemptionMTD"`
	CommissionCreditsRedemptionYTD *decimal.Decimal `flex:"commissionCreditsRedemptionYTD"`
	Extras                         Extras           `flex:"-"`
}

// StatementOfFundsLine is one row of <StmtFunds>. Despite its name, the
// `date` attribute carries date/time data.
type StatementOfFundsLine struct {
	AssetCategory             AssetClass       `flex:"assetCategory"`
	AccountID                 string           `flex:"accountId"`
	Balance                   *decimal.Decimal `flex:"balance"`
	Debit                     *decimal.Decimal `flex:"debit"`
	Credit                    *decimal.Decimal `flex:"credit"`
	Currency                  string           `flex:"currency"`
	TradeID                   string           `flex:"tradeID"`
	Date                      *DateTime        `flex:"date"`
	ReportDate                *Date            `flex:"reportDate"`
	ActivityDescription       string           `flex:"activityDescription"`
	Amount                    *decimal.Decimal `flex:"amount"`
	BuySell                   string           `flex:"buySell"`
	AcctAlias                 string           `flex:"acctAlias"`
	Model                     string           `flex:"model"`
	Symbol                    string           `flex:"symbol"`
	Description               string           `flex:"description"`
	Conid                     string           `flex:"conid"`
	SecurityID                string           `flex:"securityID"`
	SecurityIDType            string           `flex:"securityIDType"`
	CUSIP                     string           `flex:"cusip"`
	ISIN                      string           `flex:"isin"`
	UnderlyingConid           string           `flex:"underlyingConid"`
	UnderlyingSymbol          string           `flex:"underlyingSymbol"`
	Issuer                    string           `flex:"issuer"`
	Multiplier                *decimal.Decimal `flex:"multiplier"`
	Strike                    *decimal.Decimal `flex:"strike"`
	Expiry                    *Date            `flex:"expiry"`
	PutCall                   PutCall          `flex:"putCall"`
	PrincipalAdjustFactor     *decimal.Decimal `flex:"principalAdjustFactor"`
	FXRateToBase              *decimal.Decimal `flex:"fxRateToBase"`
	ListingExchange           string           `flex:"listingExchange"`
	UnderlyingSecurityID      string           `flex:"underlyingSecurityID"`
	UnderlyingListingExchange string           `flex:"underlyingListingExchange"`
	SettleDate                *Date            `flex:"settleDate"`
	ActivityCode              string           `flex:"activityCode"`
	OrderID                   string           `flex:"orderID"`
	TradeQuantity             *decimal.Decimal `flex:"tradeQuantity"`
	TradePrice                *decimal.Decimal `flex:"tradePrice"`
	TradeGross                *decimal.Decimal `flex:"tradeGross"`
	TradeCommission           *decimal.Decimal `flex:"tradeCommission"`
	TradeTax                  *decimal.Decimal `flex:"tradeTax"`
	TradeCode                 string           `flex:"tradeCode"`
	LevelOfDetail             string           `flex:"levelOfDetail"`
	TransactionID             string           `flex:"transactionID"`
	Extras                    Extras           `flex:"-"`
}

type ChangeInPositionValue struct {
	AssetCategory           AssetClass       `flex:"assetCategory"`
	Currency                string           `flex:"currency"`
	PriorPeriodValue        *decimal.Decimal `flex:"priorPeriodValue"`
	Transactions            *decimal.Decimal `flex:"transactions"`
	MTMPriorPeriodPositions *decimal.Decimal `flex:"mtmPriorPeriodPositions"`
	MTMTransactions         *decimal.Decimal `flex:"mtmTransactions"`
	CorporateActions        *decimal.Decimal `flex:"corporateActions"`
	AccountTransfers        *decimal.Decimal `flex:"accountTransfers"`
	FXTranslationPnL        *decimal.Decimal `flex:"fxTranslationPnl"`
	FuturePriceAdjustments  *decimal.Decimal `flex:"futurePriceAdjustments"`
	SettledCash             *decimal.Decimal `flex:"settledCash"`
	EndOfPeriodValue        *decimal.Decimal `flex:"endOfPeriodValue"`
	AccountID               string           `flex:"accountId"`
	AcctAlias               string           `flex:"acctAlias"`
	Model                   string           `flex:"model"`
	Other                   *decimal.Decimal `flex:"other"`
	LinkingAdjustments      *decimal.Decimal `flex:"linkingAdjustments"`
	Extras                  Extras           `flex:"-"`
}

type OpenPosition struct {
	Side                      LongShort        `flex:"side"`
	AssetCategory             AssetClass       `flex:"assetCategory"`
	AccountID                 string           `flex:"accountId"`
	Currency                  string           `flex:"currency"`
	FXRateToBase              *decimal.Decimal `flex:"fxRateToBase"`
	ReportDate                *Date            `flex:"reportDate"`
	Symbol                    string           `flex:"symbol"`
	Description               string           `flex:"description"`
	Conid                     string           `flex:"conid"`
	SecurityID                string           `flex:"securityID"`
	CUSIP                     string           `flex:"cusip"`
	ISIN                      string           `flex:"isin"`
	Multiplier                *decimal.Decimal `flex:"multiplier"`
	Position                  *decimal.Decimal `flex:"position"`
	MarkPrice                 *decimal.Decimal `flex:"markPrice"`
	PositionValue             *decimal.Decimal `flex:"positionValue"`
	OpenPrice                 *decimal.Decimal `flex:"openPrice"`
	CostBasisPrice            *decimal.Decimal `flex:"costBasisPrice"`
	CostBasisMoney            *decimal.Decimal `flex:"costBasisMoney"`
	FIFOPnLUnrealized         *decimal.Decimal `flex:"fifoPnlUnrealized"`
	LevelOfDetail             string           `flex:"levelOfDetail"`
	OpenDateTime              *DateTime        `flex:"openDateTime"`
	HoldingPeriodDateTime     *DateTime        `flex:"holdingPeriodDateTime"`
	SecurityIDType            string           `flex:"securityIDType"`
	Issuer                    string           `flex:"issuer"`
	UnderlyingConid           string           `flex:"underlyingConid"`
	UnderlyingSymbol          string           `flex:"underlyingSymbol"`
	Code                      []Code           `flex:"code"`
	OriginatingOrderID        string           `flex:"originatingOrderID"`
	OriginatingTransactionID  string           `flex:"originatingTransactionID"`
	AccruedInt                string           `flex:"accruedInt"`
	AcctAlias                 string           `flex:"acctAlias"`
	Model                     string           `flex:"model"`
	SEDOL                     string           `flex:"sedol"`
	PercentOfNAV              *decimal.Decimal `flex:"percentOfNAV"`
	Strike                    *decimal.Decimal `flex:"strike"`
	Expiry                    *Date            `flex:"expiry"`
	PutCall                   PutCall          `flex:"putCall"`
	PrincipalAdjustFactor     *decimal.Decimal `flex:"principalAdjustFactor"`
	ListingExchange           string           `flex:"listingExchange"`
	UnderlyingSecurityID      string           `flex:"underlyingSecurityID"`
	UnderlyingListingExchange string           `flex:"underlyingListingExchange"`
	PositionValueInBase       *decimal.Decimal `flex:"positionValueInBase"`
	UnrealizedCapitalGainsPnL *decimal.Decimal `flex:"unrealizedCapitalGainsPnl"`
	UnrealizedlFXPnL          *decimal.Decimal `flex:"unrealizedlFxPnl"`
	VestingDate               *Date            `flex:"vestingDate"`
	Extras                    Extras           `flex:"-"`
}

// FxLot is one lot row of the <FxPositions> section. On the wire each lot
// sits inside a per-currency <FxLots> wrapper, which the parser flattens.
type FxLot struct {
	AssetCategory      AssetClass       `flex:"assetCategory"`
	AccountID          string           `flex:"accountId"`
	ReportDate         *Date            `flex:"reportDate"`
	FunctionalCurrency string           `flex:"functionalCurrency"`
	FXCurrency         string           `flex:"fxCurrency"`
	Quantity           *decimal.Decimal `flex:"quantity"`
	CostPrice          *decimal.Decimal `flex:"costPrice"`
	CostBasis          *decimal.Decimal `flex:"costBasis"`
	ClosePrice         *decimal.Decimal `flex:"closePrice"`
	Value              *decimal.Decimal `flex:"value"`
	UnrealizedPL       *decimal.Decimal `flex:"unrealizedPL"`
	Code               []Code           `flex:"code"`
	LotDescription     string           `flex:"lotDescription"`
	LotOpenDateTime    *DateTime        `flex:"lotOpenDateTime"`
	LevelOfDetail      string           `flex:"levelOfDetail"`
	AcctAlias          string           `flex:"acctAlias"`
	Model              string           `flex:"model"`
	Extras             Extras           `flex:"-"`
}

// Trade is one execution row of the <Trades> section.
type Trade struct {
	TransactionType           TradeType        `flex:"transactionType"`
	OpenCloseIndicator        OpenClose        `flex:"openCloseIndicator"`
	BuySell                   BuySell          `flex:"buySell"`
	OrderType                 OrderType        `flex:"orderType"`
	AssetCategory             AssetClass       `flex:"assetCategory"`
	AccountID                 string           `flex:"accountId"`
	Currency                  string           `flex:"currency"`
	FXRateToBase              *decimal.Decimal `flex:"fxRateToBase"`
	Symbol                    string           `flex:"symbol"`
	Description               string           `flex:"description"`
	Conid                     string           `flex:"conid"`
	CUSIP                     string           `flex:"cusip"`
	ISIN                      string           `flex:"isin"`
	ListingExchange           string           `flex:"listingExchange"`
	Multiplier                *decimal.Decimal `flex:"multiplier"`
	Strike                    *decimal.Decimal `flex:"strike"`
	Expiry                    *Date            `flex:"expiry"`
	PutCall                   PutCall          `flex:"putCall"`
	TradeID                   string           `flex:"tradeID"`
	ReportDate                *Date            `flex:"reportDate"`
	TradeDate                 *Date            `flex:"tradeDate"`
	TradeTime                 *TimeOfDay       `flex:"tradeTime"`
	SettleDateTarget          *Date            `flex:"settleDateTarget"`
	Exchange                  string           `flex:"exchange"`
	Quantity                  *decimal.Decimal `flex:"quantity"`
	TradePrice                *decimal.Decimal `flex:"tradePrice"`
	TradeMoney                *decimal.Decimal `flex:"tradeMoney"`
	Taxes                     *decimal.Decimal `flex:"taxes"`
	IBCommission              *decimal.Decimal `flex:"ibCommission"`
	IBCommissionCurrency      string           `flex:"ibCommissionCurrency"`
	NetCash                   *decimal.Decimal `flex:"netCash"`
	NetCashInBase             *decimal.Decimal `flex:"netCashInBase"`
	ClosePrice                *decimal.Decimal `flex:"closePrice"`
	Notes                     []Code           `flex:"notes"`
	Cost                      *decimal.Decimal `flex:"cost"`
	MTMPnL                    *decimal.Decimal `flex:"mtmPnl"`
	OrigTradePrice            *decimal.Decimal `flex:"origTradePrice"`
	OrigTradeDate             *Date            `flex:"origTradeDate"`
	OrigTradeID               string           `flex:"origTradeID"`
	OrigOrderID               string           `flex:"origOrderID"`
	OpenDateTime              *DateTime        `flex:"openDateTime"`
	FIFOPnLRealized           *decimal.Decimal `flex:"fifoPnlRealized"`
	CapitalGainsPnL           *decimal.Decimal `flex:"capitalGainsPnl"`
	LevelOfDetail             string           `flex:"levelOfDetail"`
	IBOrderID                 string           `flex:"ibOrderID"`
	OrderTime                 *DateTime        `flex:"orderTime"`
	ChangeInPrice             *decimal.Decimal `flex:"changeInPrice"`
	ChangeInQuantity          *decimal.Decimal `flex:"changeInQuantity"`
	Proceeds                  *decimal.Decimal `flex:"proceeds"`
	FXPnL                     *decimal.Decimal `flex:"fxPnl"`
	ClearingFirmID            string           `flex:"clearingFirmID"`
	TransactionID             string           `flex:"transactionID"`
	HoldingPeriodDateTime     *DateTime        `flex:"holdingPeriodDateTime"`
	IBExecID                  string           `flex:"ibExecID"`
	BrokerageOrderID          string           `flex:"brokerageOrderID"`
	OrderReference            string           `flex:"orderReference"`
	VolatilityOrderLink       string           `flex:"volatilityOrderLink"`
	ExchOrderID               string           `flex:"exchOrderId"`
	ExtExecID                 string           `flex:"extExecID"`
	TraderID                  string           `flex:"traderID"`
	IsAPIOrder                *bool            `flex:"isAPIOrder"`
	AcctAlias                 string           `flex:"acctAlias"`
	Model                     string           `flex:"model"`
	SecurityID                string           `flex:"securityID"`
	SecurityIDType            string           `flex:"securityIDType"`
	PrincipalAdjustFactor     *decimal.Decimal `flex:"principalAdjustFactor"`
	DateTime                  *DateTime        `flex:"dateTime"`
	UnderlyingConid           string           `flex:"underlyingConid"`
	UnderlyingSecurityID      string           `flex:"underlyingSecurityID"`
	UnderlyingSymbol          string           `flex:"underlyingSymbol"`
	UnderlyingListingExchange string           `flex:"underlyingListingExchange"`
	Issuer                    string           `flex:"issuer"`
	SEDOL                     string           `flex:"sedol"`
	WhenRealized              *DateTime        `flex:"whenRealized"`
	WhenReopened              *DateTime        `flex:"whenReopened"`
	AccruedInt                *decimal.Decimal `flex:"accruedInt"`
	SerialNumber              string           `flex:"serialNumber"`
	DeliveryType              string           `flex:"deliveryType"`
	CommodityType             string           `flex:"commodityType"`
	Fineness                  *decimal.Decimal `flex:"fineness"`
	Weight                    string           `flex:"weight"`
	Extras                    Extras           `flex:"-"`
}

// OptionEAE is an option exercise, assignment or expiration row. The record
// element shares its tag with the enclosing <OptionEAE> section.
type OptionEAE struct {
	TransactionType       OptionAction     `flex:"transactionType"`
	AssetCategory         AssetClass       `flex:"assetCategory"`
	AccountID             string           `flex:"accountId"`
	Currency              string           `flex:"currency"`
	FXRateToBase          *decimal.Decimal `flex:"fxRateToBase"`
	Symbol                string           `flex:"symbol"`
	Description           string           `flex:"description"`
	Conid                 string           `flex:"conid"`
	SecurityID            string           `flex:"securityID"`
	SecurityIDType        string           `flex:"securityIDType"`
	CUSIP                 string           `flex:"cusip"`
	ISIN                  string           `flex:"isin"`
	UnderlyingConid       string           `flex:"underlyingConid"`
	UnderlyingSymbol      string           `flex:"underlyingSymbol"`
	Issuer                string           `flex:"issuer"`
	Multiplier            *decimal.Decimal `flex:"multiplier"`
	Strike                *decimal.Decimal `flex:"strike"`
	Expiry                *Date            `flex:"expiry"`
	PutCall               PutCall          `flex:"putCall"`
	PrincipalAdjustFactor *decimal.Decimal `flex:"principalAdjustFactor"`
	Date                  *Date            `flex:"date"`
	Quantity              *decimal.Decimal `flex:"quantity"`
	TradePrice            *decimal.Decimal `flex:"tradePrice"`
	MarkPrice             *decimal.Decimal `flex:"markPrice"`
	Proceeds              *decimal.Decimal `flex:"proceeds"`
	CommisionsAndTax      *decimal.Decimal `flex:"commisionsAndTax"`
	CostBasis             *decimal.Decimal `flex:"costBasis"`
	RealizedPnL           *decimal.Decimal `flex:"realizedPnl"`
	FXPnL                 *decimal.Decimal `flex:"fxPnl"`
	MTMPnL                *decimal.Decimal `flex:"mtmPnl"`
	TradeID               string           `flex:"tradeID"`
	AcctAlias             string           `flex:"acctAlias"`
	Model                 string           `flex:"model"`
	Extras                Extras           `flex:"-"`
}

type TradeTransfer struct {
	TransactionType       TradeType         `flex:"transactionType"`
	OpenCloseIndicator    OpenClose         `flex:"openCloseIndicator"`
	Direction             ToFrom            `flex:"direction"`
	DeliveredReceived     DeliveredReceived `flex:"deliveredReceived"`
	AssetCategory         AssetClass        `flex:"assetCategory"`
	AccountID             string            `flex:"accountId"`
	Currency              string            `flex:"currency"`
	FXRateToBase          *decimal.Decimal  `flex:"fxRateToBase"`
	Symbol                string            `flex:"symbol"`
	Description           string            `flex:"description"`
	Conid                 string            `flex:"conid"`
	CUSIP                 string            `flex:"cusip"`
	ISIN                  string            `flex:"isin"`
	UnderlyingConid       string            `flex:"underlyingConid"`
	TradeID               string            `flex:"tradeID"`
	ReportDate            *Date             `flex:"reportDate"`
	TradeDate             *Date             `flex:"tradeDate"`
	TradeTime             *TimeOfDay        `flex:"tradeTime"`
	SettleDateTarget      *Date             `flex:"settleDateTarget"`
	Exchange              string            `flex:"exchange"`
	Quantity              *decimal.Decimal  `flex:"quantity"`
	TradePrice            *decimal.Decimal  `flex:"tradePrice"`
	TradeMoney            *decimal.Decimal  `flex:"tradeMoney"`
	Taxes                 *decimal.Decimal  `flex:"taxes"`
	IBCommission          *decimal.Decimal  `flex:"ibCommission"`
	IBCommissionCurrency  string            `flex:"ibCommissionCurrency"`
	ClosePrice            *decimal.Decimal  `flex:"closePrice"`
	Notes                 []Code            `flex:"notes"`
	Cost                  *decimal.Decimal  `flex:"cost"`
	FIFOPnLRealized       *decimal.Decimal  `flex:"fifoPnlRealized"`
	MTMPnL                *decimal.Decimal  `flex:"mtmPnl"`
	BrokerName            string            `flex:"brokerName"`
	BrokerAccount         string            `flex:"brokerAccount"`
	AwayBrokerCommission  *decimal.Decimal  `flex:"awayBrokerCommission"`
	RegulatoryFee         *decimal.Decimal  `flex:"regulatoryFee"`
	NetTradeMoney         *decimal.Decimal  `flex:"netTradeMoney"`
	NetTradeMoneyInBase   *decimal.Decimal  `flex:"netTradeMoneyInBase"`
	NetTradePrice         *decimal.Decimal  `flex:"netTradePrice"`
	Multiplier            *decimal.Decimal  `flex:"multiplier"`
	AcctAlias             string            `flex:"acctAlias"`
	Model                 string            `flex:"model"`
	SEDOL                 string            `flex:"sedol"`
	SecurityID            string            `flex:"securityID"`
	UnderlyingSymbol      string            `flex:"underlyingSymbol"`
	Issuer                string            `flex:"issuer"`
	Strike                *decimal.Decimal  `flex:"strike"`
	Expiry                *Date             `flex:"expiry"`
	PutCall               PutCall           `flex:"putCall"`
	PrincipalAdjustFactor *decimal.Decimal  `flex:"principalAdjustFactor"`
	Proceeds              *decimal.Decimal  `flex:"proceeds"`
	FXPnL                 *decimal.Decimal  `flex:"fxPnl"`
	NetCash               *decimal.Decimal  `flex:"netCash"`
	OrigTradePrice        *decimal.Decimal  `flex:"origTradePrice"`
	OrigTradeDate         *Date             `flex:"origTradeDate"`
	OrigTradeID           string            `flex:"origTradeID"`
	OrigOrderID           string            `flex:"origOrderID"`
	ClearingFirmID        string            `flex:"clearingFirmID"`
	TransactionID         string            `flex:"transactionID"`
	OpenDateTime          *DateTime         `flex:"openDateTime"`
	HoldingPeriodDateTime *DateTime         `flex:"holdingPeriodDateTime"`
	WhenRealized          *DateTime         `flex:"whenRealized"`
	WhenReopened          *DateTime         `flex:"whenReopened"`
	LevelOfDetail         string            `flex:"levelOfDetail"`
	SecurityIDType        string            `flex:"securityIDType"`
	Extras                Extras            `flex:"-"`
}

type InterestAccrualsCurrency struct {
	AccountID              string           `flex:"accountId"`
	Currency               string           `flex:"currency"`
	FromDate               *Date            `flex:"fromDate"`
	ToDate                 *Date            `flex:"toDate"`
	StartingAccrualBalance *decimal.Decimal `flex:"startingAccrualBalance"`
	InterestAccrued        *decimal.Decimal `flex:"interestAccrued"`
	AccrualReversal        *decimal.Decimal `flex:"accrualReversal"`
	EndingAccrualBalance   *decimal.Decimal `flex:"endingAccrualBalance"`
	AcctAlias              string           `flex:"acctAlias"`
	Model                  string           `flex:"model"`
	FXTranslation          *decimal.Decimal `flex:"fxTranslation"`
	Extras                 Extras           `flex:"-"`
}

type SLBActivity struct {
	AssetCategory         AssetClass       `flex:"assetCategory"`
	AccountID             string           `flex:"accountId"`
	AcctAlias             string           `flex:"acctAlias"`
	Model                 string           `flex:"model"`
	Currency              string           `flex:"currency"`
	FXRateToBase          *decimal.Decimal `flex:"fxRateToBase"`
	Symbol                string           `flex:"symbol"`
	Description           string           `flex:"description"`
	Conid                 string           `flex:"conid"`
	SecurityID            string           `flex:"securityID"`
	SecurityIDType        string           `flex:"securityIDType"`
	CUSIP                 string           `flex:"cusip"`
	ISIN                  string           `flex:"isin"`
	UnderlyingConid       string           `flex:"underlyingConid"`
	UnderlyingSymbol      string           `flex:"underlyingSymbol"`
	Issuer                string           `flex:"issuer"`
	Multiplier            *decimal.Decimal `flex:"multiplier"`
	Strike                *decimal.Decimal `flex:"strike"`
	Expiry                *Date            `flex:"expiry"`
	PutCall               PutCall          `flex:"putCall"`
	PrincipalAdjustFactor *decimal.Decimal `flex:"principalAdjustFactor"`
	Date                  *Date            `flex:"date"`
	SLBTransactionID      string           `flex:"slbTransactionId"`
	ActivityDescription   string           `flex:"activityDescription"`
	Type                  string           `flex:"type"`
	Exchange              string           `flex:"exchange"`
	Quantity              *decimal.Decimal `flex:"quantity"`
	FeeRate               *decimal.Decimal `flex:"feeRate"`
	CollateralAmount      *decimal.Decimal `flex:"collateralAmount"`
	MarkQuantity          *decimal.Decimal `flex:"markQuantity"`
	MarkPriorPrice        *decimal.Decimal `flex:"markPriorPrice"`
	MarkCurrentPrice      *decimal.Decimal `flex:"markCurrentPrice"`
	Extras                Extras           `flex:"-"`
}

type Transfer struct {
	Type                      TransferType     `flex:"type"`
	Direction                 InOut            `flex:"direction"`
	AssetCategory             AssetClass       `flex:"assetCategory"`
	AccountID                 string           `flex:"accountId"`
	Currency                  string           `flex:"currency"`
	FXRateToBase              *decimal.Decimal `flex:"fxRateToBase"`
	Symbol                    string           `flex:"symbol"`
	Description               string           `flex:"description"`
	Conid                     string           `flex:"conid"`
	SecurityID                string           `flex:"securityID"`
	CUSIP                     string           `flex:"cusip"`
	ISIN                      string           `flex:"isin"`
	ListingExchange           string           `flex:"listingExchange"`
	UnderlyingSecurityID      string           `flex:"underlyingSecurityID"`
	UnderlyingListingExchange string           `flex:"underlyingListingExchange"`
	ReportDate                *Date            `flex:"reportDate"`
	UnderlyingConid           string           `flex:"underlyingConid"`
	Date                      *Date            `flex:"date"`
	Account                   string           `flex:"account"`
	Quantity                  *decimal.Decimal `flex:"quantity"`
	TransferPrice             *decimal.Decimal `flex:"transferPrice"`
	PositionAmount            *decimal.Decimal `flex:"positionAmount"`
	PositionAmountInBase      *decimal.Decimal `flex:"positionAmountInBase"`
	CapitalGainsPnL           *decimal.Decimal `flex:"capitalGainsPnl"`
	CashTransfer              *decimal.Decimal `flex:"cashTransfer"`
	Code                      []Code           `flex:"code"`
	ClientReference           string           `flex:"clientReference"`
	AcctAlias                 string           `flex:"acctAlias"`
	Model                     string           `flex:"model"`
	SEDOL                     string           `flex:"sedol"`
	SecurityIDType            string           `flex:"securityIDType"`
	UnderlyingSymbol          string           `flex:"underlyingSymbol"`
	Issuer                    string           `flex:"issuer"`
	Multiplier                *decimal.Decimal `flex:"multiplier"`
	Strike                    *decimal.Decimal `flex:"strike"`
	Expiry                    *Date            `flex:"expiry"`
	PutCall                   PutCall          `flex:"putCall"`
	PrincipalAdjustFactor     *decimal.Decimal `flex:"principalAdjustFactor"`
	Company                   string           `flex:"company"`
	AccountName               string           `flex:"accountName"`
	PnLAmount                 *decimal.Decimal `flex:"pnlAmount"`
	PnLAmountInBase           *decimal.Decimal `flex:"pnlAmountInBase"`
	FXPnL                     *decimal.Decimal `flex:"fxPnl"`
	TransactionID             string           `flex:"transactionID"`
	Extras                    Extras           `flex:"-"`
}

type PriorPeriodPosition struct {
	AssetCategory             AssetClass       `flex:"assetCategory"`
	AccountID                 string           `flex:"accountId"`
	Currency                  string           `flex:"currency"`
	FXRateToBase              *decimal.Decimal `flex:"fxRateToBase"`
	Symbol                    string           `flex:"symbol"`
	Description               string           `flex:"description"`
	Conid                     string           `flex:"conid"`
	SecurityID                string           `flex:"securityID"`
	CUSIP                     string           `flex:"cusip"`
	ISIN                      string           `flex:"isin"`
	ListingExchange           string           `flex:"listingExchange"`
	UnderlyingConid           string           `flex:"underlyingConid"`
	UnderlyingSecurityID      string           `flex:"underlyingSecurityID"`
	UnderlyingListingExchange string           `flex:"underlyingListingExchange"`
	PriorMTMPnL               *decimal.Decimal `flex:"priorMtmPnl"`
	Date                      *Date            `flex:"date"`
	Price                     *decimal.Decimal `flex:"price"`
	AcctAlias                 string           `flex:"acctAlias"`
	Model                     string           `flex:"model"`
	SEDOL                     string           `flex:"sedol"`
	SecurityIDType            string           `flex:"securityIDType"`
	UnderlyingSymbol          string           `flex:"underlyingSymbol"`
	Issuer                    string           `flex:"issuer"`
	Multiplier                *decimal.Decimal `flex:"multiplier"`
	Strike                    *decimal.Decimal `flex:"strike"`
	Expiry                    *Date            `flex:"expiry"`
	PutCall                   PutCall          `flex:"putCall"`
	PrincipalAdjustFactor     *decimal.Decimal `flex:"principalAdjustFactor"`
	Extras                    Extras           `flex:"-"`
}

type CorporateAction struct {
	AssetCategory             AssetClass       `flex:"assetCategory"`
	AccountID                 string           `flex:"accountId"`
	Currency                  string           `flex:"currency"`
	FXRateToBase              *decimal.Decimal `flex:"fxRateToBase"`
	Symbol                    string           `flex:"symbol"`
	Description               string           `flex:"description"`
	Conid                     string           `flex:"conid"`
	SecurityID                string           `flex:"securityID"`
	CUSIP                     string           `flex:"cusip"`
	ISIN                      string           `flex:"isin"`
	ListingExchange           string           `flex:"listingExchange"`
	UnderlyingConid           string           `flex:"underlyingConid"`
	UnderlyingSecurityID      string           `flex:"underlyingSecurityID"`
	UnderlyingListingExchange string           `flex:"underlyingListingExchange"`
	ActionDescription         string           `flex:"actionDescription"`
	DateTime                  *DateTime        `flex:"dateTime"`
	Amount                    *decimal.Decimal `flex:"amount"`
	Quantity                  *decimal.Decimal `flex:"quantity"`
	FIFOPnLRealized           *decimal.Decimal `flex:"fifoPnlRealized"`
	CapitalGainsPnL           *decimal.Decimal `flex:"capitalGainsPnl"`
	FXPnL                     *decimal.Decimal `flex:"fxPnl"`
	MTMPnL                    *decimal.Decimal `flex:"mtmPnl"`
	Type                      Reorg            `flex:"type"`
	Code                      []Code           `flex:"code"`
	SEDOL                     string           `flex:"sedol"`
	AcctAlias                 string           `flex:"acctAlias"`
	Model                     string           `flex:"model"`
	SecurityIDType            string           `flex:"securityIDType"`
	UnderlyingSymbol          string           `flex:"underlyingSymbol"`
	Issuer                    string           `flex:"issuer"`
	Multiplier                *decimal.Decimal `flex:"multiplier"`
	Strike                    *decimal.Decimal `flex:"strike"`
	Expiry                    *Date            `flex:"expiry"`
	PutCall                   PutCall          `flex:"putCall"`
	PrincipalAdjustFactor     *decimal.Decimal `flex:"principalAdjustFactor"`
	ReportDate                *Date            `flex:"reportDate"`
	Proceeds                  *decimal.Decimal `flex:"proceeds"`
	Value                     *decimal.Decimal `flex:"value"`
	TransactionID             string           `flex:"transactionID"`
	Extras                    Extras           `flex:"-"`
}

type CashTransaction struct {
	Type                      CashAction       `flex:"type"`
	AssetCategory             AssetClass       `flex:"assetCategory"`
	AccountID                 string           `flex:"accountId"`
	Currency                  string           `flex:"currency"`
	FXRateToBase              *decimal.Decimal `flex:"fxRateToBase"`
	Description               string           `flex:"description"`
	Conid                     string           `flex:"conid"`
	SecurityID                string           `flex:"securityID"`
	CUSIP                     string           `flex:"cusip"`
	ISIN                      string           `flex:"isin"`
	ListingExchange           string           `flex:"listingExchange"`
	UnderlyingConid           string           `flex:"underlyingConid"`
	UnderlyingSecurityID      string           `flex:"underlyingSecurityID"`
	UnderlyingListingExchange string           `flex:"underlyingListingExchange"`
	Amount                    *decimal.Decimal `flex:"amount"`
	DateTime                  *DateTime        `flex:"dateTime"`
	SEDOL                     string           `flex:"sedol"`
	Symbol                    string           `flex:"symbol"`
	SecurityIDType            string           `flex:"securityIDType"`
	UnderlyingSymbol          string           `flex:"underlyingSymbol"`
	Issuer                    string           `flex:"issuer"`
	Multiplier                *decimal.Decimal `flex:"multiplier"`
	Strike                    *decimal.Decimal `flex:"strike"`
	Expiry                    *Date            `flex:"expiry"`
	PutCall                   PutCall          `flex:"putCall"`
	PrincipalAdjustFactor     *decimal.Decimal `flex:"principalAdjustFactor"`
	TradeID                   string           `flex:"tradeID"`
	Code                      []Code           `flex:"code"`
	TransactionID             string           `flex:"transactionID"`
	ReportDate                *Date            `flex:"reportDate"`
	ClientReference           string           `flex:"clientReference"`
	SettleDate                *Date            `flex:"settleDate"`
	AcctAlias                 string           `flex:"acctAlias"`
	Model                     string           `flex:"model"`
	LevelOfDetail             string           `flex:"levelOfDetail"`
	Extras                    Extras           `flex:"-"`
}

type ChangeInDividendAccrual struct {
	Date                      *Date            `flex:"date"`
	AssetCategory             AssetClass       `flex:"assetCategory"`
	Currency                  string           `flex:"currency"`
	FXRateToBase              *decimal.Decimal `flex:"fxRateToBase"`
	AccountID                 string           `flex:"accountId"`
	Symbol                    string           `flex:"symbol"`
	Description               string           `flex:"description"`
	Conid                     string           `flex:"conid"`
	SecurityID                string           `flex:"securityID"`
	CUSIP                     string           `flex:"cusip"`
	ISIN                      string           `flex:"isin"`
	SEDOL                     string           `flex:"sedol"`
	ListingExchange           string           `flex:"listingExchange"`
	UnderlyingSecurityID      string           `flex:"underlyingSecurityID"`
	UnderlyingListingExchange string           `flex:"underlyingListingExchange"`
	ReportDate                *Date            `flex:"reportDate"`
	UnderlyingConid           string           `flex:"underlyingConid"`
	ExDate                    *Date            `flex:"exDate"`
	PayDate                   *Date            `flex:"payDate"`
	Quantity                  *decimal.Decimal `flex:"quantity"`
	Tax                       *decimal.Decimal `flex:"tax"`
	Fee                       *decimal.Decimal `flex:"fee"`
	GrossRate                 *decimal.Decimal `flex:"grossRate"`
	GrossAmount               *decimal.Decimal `flex:"grossAmount"`
	NetAmount                 *decimal.Decimal `flex:"netAmount"`
	Code                      []Code           `flex:"code"`
	SecurityIDType            string           `flex:"securityIDType"`
	UnderlyingSymbol          string           `flex:"underlyingSymbol"`
	Issuer                    string           `flex:"issuer"`
	Multiplier                *decimal.Decimal `flex:"multiplier"`
	Strike                    *decimal.Decimal `flex:"strike"`
	Expiry                    *Date            `flex:"expiry"`
	PutCall                   PutCall          `flex:"putCall"`
	PrincipalAdjustFactor     *decimal.Decimal `flex:"principalAdjustFactor"`
	FromAcct                  string           `flex:"fromAcct"`
	ToAcct                    string           `flex:"toAcct"`
	AcctAlias                 string           `flex:"acctAlias"`
	Model                     string           `flex:"model"`
	Extras                    Extras           `flex:"-"`
}

type OpenDividendAccrual struct {
	AssetCategory             AssetClass       `flex:"assetCategory"`
	Currency                  string           `flex:"currency"`
	FXRateToBase              *decimal.Decimal `flex:"fxRateToBase"`
	AccountID                 string           `flex:"accountId"`
	Symbol                    string           `flex:"symbol"`
	Description               string           `flex:"description"`
	Conid                     string           `flex:"conid"`
	SecurityID                string           `flex:"securityID"`
	CUSIP                     string           `flex:"cusip"`
	ISIN                      string           `flex:"isin"`
	ListingExchange           string           `flex:"listingExchange"`
	UnderlyingConid           string           `flex:"underlyingConid"`
	UnderlyingSecurityID      string           `flex:"underlyingSecurityID"`
	UnderlyingListingExchange string           `flex:"underlyingListingExchange"`
	ExDate                    *Date            `flex:"exDate"`
	PayDate                   *Date            `flex:"payDate"`
	Quantity                  *decimal.Decimal `flex:"quantity"`
	Tax                       *decimal.Decimal `flex:"tax"`
	Fee                       *decimal.Decimal `flex:"fee"`
	GrossRate                 *decimal.Decimal `flex:"grossRate"`
	GrossAmount               *decimal.Decimal `flex:"grossAmount"`
	NetAmount                 *decimal.Decimal `flex:"netAmount"`
	Code                      []Code           `flex:"code"`
	SEDOL                     string           `flex:"sedol"`
	SecurityIDType            string           `flex:"securityIDType"`
	UnderlyingSymbol          string           `flex:"underlyingSymbol"`
	Issuer                    string           `flex:"issuer"`
	Multiplier                *decimal.Decimal `flex:"multiplier"`
	Strike                    *decimal.Decimal `flex:"strike"`
	Expiry                    *Date            `flex:"expiry"`
	PutCall                   PutCall          `flex:"putCall"`
	PrincipalAdjustFactor     *decimal.Decimal `flex:"principalAdjustFactor"`
	FromAcct                  string           `flex:"fromAcct"`
	ToAcct                    string           `flex:"toAcct"`
	AcctAlias                 string           `flex:"acctAlias"`
	Model                     string           `flex:"model"`
	Extras                    Extras           `flex:"-"`
}

type SecurityInfo struct {
	AssetCategory             AssetClass       `flex:"assetCategory"`
	Symbol                    string           `flex:"symbol"`
	Description               string           `flex:"description"`
	Conid                     string           `flex:"conid"`
	SecurityID                string           `flex:"securityID"`
	CUSIP                     string           `flex:"cusip"`
	ISIN                      string           `flex:"isin"`
	ListingExchange           string           `flex:"listingExchange"`
	UnderlyingSecurityID      string           `flex:"underlyingSecurityID"`
	UnderlyingListingExchange string           `flex:"underlyingListingExchange"`
	UnderlyingConid           string           `flex:"underlyingConid"`
	UnderlyingCategory        string           `flex:"underlyingCategory"`
	SubCategory               string           `flex:"subCategory"`
	Multiplier                *decimal.Decimal `flex:"multiplier"`
	Strike                    *decimal.Decimal `flex:"strike"`
	Expiry                    *Date            `flex:"expiry"`
	Maturity                  string           `flex:"maturity"`
	IssueDate                 *Date            `flex:"issueDate"`
	Type                      string           `flex:"type"`
	SEDOL                     string           `flex:"sedol"`
	SecurityIDType            string           `flex:"securityIDType"`
	UnderlyingSymbol          string           `flex:"underlyingSymbol"`
	Issuer                    string           `flex:"issuer"`
	PutCall                   PutCall          `flex:"putCall"`
	PrincipalAdjustFactor     *decimal.Decimal `flex:"principalAdjustFactor"`
	Code                      []Code           `flex:"code"`
	Currency                  string           `flex:"currency"`
	SettlementPolicyMethod    string           `flex:"settlementPolicyMethod"`
	Extras                    Extras           `flex:"-"`
}

type ConversionRate struct {
	ReportDate   *Date            `flex:"reportDate"`
	FromCurrency string           `flex:"fromCurrency"`
	ToCurrency   string           `flex:"toCurrency"`
	Rate         *decimal.Decimal `flex:"rate"`
	Extras       Extras           `flex:"-"`
}

type MTMPerformanceSummaryUnderlying struct {
	AssetCategory             AssetClass       `flex:"assetCategory"`
	AccountID                 string           `flex:"accountId"`
	AcctAlias                 string           `flex:"acctAlias"`
	Model                     string           `flex:"model"`
	Symbol                    string           `flex:"symbol"`
	Description               string           `flex:"description"`
	Conid                     string           `flex:"conid"`
	SecurityID                string           `flex:"securityID"`
	SecurityIDType            string           `flex:"securityIDType"`
	CUSIP                     string           `flex:"cusip"`
	ISIN                      string           `flex:"isin"`
	SEDOL                     string           `flex:"sedol"`
	ListingExchange           string           `flex:"listingExchange"`
	UnderlyingConid           string           `flex:"underlyingConid"`
	UnderlyingSymbol          string           `flex:"underlyingSymbol"`
	UnderlyingSecurityID      string           `flex:"underlyingSecurityID"`
	UnderlyingListingExchange string           `flex:"underlyingListingExchange"`
	Issuer                    string           `flex:"issuer"`
	Multiplier                *decimal.Decimal `flex:"multiplier"`
	Strike                    *decimal.Decimal `flex:"strike"`
	Expiry                    *Date            `flex:"expiry"`
	PutCall                   PutCall          `flex:"putCall"`
	PrincipalAdjustFactor     *decimal.Decimal `flex:"principalAdjustFactor"`
	ReportDate                *Date            `flex:"reportDate"`
	PrevCloseQuantity         *decimal.Decimal `flex:"prevCloseQuantity"`
	PrevClosePrice            *decimal.Decimal `flex:"prevClosePrice"`
	CloseQuantity             *decimal.Decimal `flex:"closeQuantity"`
	ClosePrice                *decimal.Decimal `flex:"closePrice"`
	TransactionMTM            *decimal.Decimal `flex:"transactionMtm"`
	PriorOpenMTM              *decimal.Decimal `flex:"priorOpenMtm"`
	Commissions               *decimal.Decimal `flex:"commissions"`
	Other                     *decimal.Decimal `flex:"other"`
	Total                     *decimal.Decimal `flex:"total"`
	Code                      []Code           `flex:"code"`
	CorpActionMTM             *decimal.Decimal `flex:"corpActionMtm"`
	Dividends                 *decimal.Decimal `flex:"dividends"`
	Extras                    Extras           `flex:"-"`
}

type EquitySummaryByReportDateInBase struct {
	AccountID                                        string           `flex:"accountId"`
	AcctAlias                                        string           `flex:"acctAlias"`
	Model                                            string           `flex:"model"`
	ReportDate                                       *Date            `flex:"reportDate"`
	Cash                                             *decimal.Decimal `flex:"cash"`
	CashLong                                         *decimal.Decimal `flex:"cashLong"`
	CashShort                                        *decimal.Decimal `flex:"cashShort"`
	SLBCashCollateral                                *decimal.Decimal `flex:"slbCashCollateral"`
	SLBCashCollateralLong                            *decimal.Decimal `flex:"slbCashCollateralLong"`
	SLBCashCollateralShort                           *decimal.Decimal `flex:"slbCashCollateralShort"`
	Stock                                            *decimal.Decimal `flex:"stock"`
	StockLong                                        *decimal.Decimal `flex:"stockLong"`
	StockShort                                       *decimal.Decimal `flex:"stockShort"`
	SLBDirectSecuritiesBorrowed                      *decimal.Decimal `flex:"slbDirectSecuritiesBorrowed"`
	SLBDirectSecuritiesBorrowedLong                  *decimal.Decimal `flex:"slbDirectSecuritiesBorrowedLong"`
	SLBDirectSecuritiesBorrowedShort                 *decimal.Decimal `flex:"slbDirectSecuritiesBorrowedShort"`
	SLBDirectSecuritiesLent                          *decimal.Decimal `flex:"slbDirectSecuritiesLent"`
	SLBDirectSecuritiesLentLong                      *decimal.Decimal `flex:"slbDirectSecuritiesLentLong"`
	SLBDirectSecuritiesLentShort                     *decimal.Decimal `flex:"slbDirectSecuritiesLentShort"`
	Options                                          *decimal.Decimal `flex:"options"`
	OptionsLong                                      *decimal.Decimal `flex:"optionsLong"`
	OptionsShort                                     *decimal.Decimal `flex:"optionsShort"`
	Bonds                                            *decimal.Decimal `flex:"bonds"`
	BondsLong                                        *decimal.Decimal `flex:"bondsLong"`
	BondsShort                                       *decimal.Decimal `flex:"bondsShort"`
	Notes                                            *decimal.Decimal `flex:"notes"`
	NotesLong                                        *decimal.Decimal `flex:"notesLong"`
	NotesShort                                       *decimal.Decimal `flex:"notesShort"`
	InterestAccruals                                 *decimal.Decimal `flex:"interestAccruals"`
	InterestAccrualsLong                             *decimal.Decimal `flex:"interestAccrualsLong"`
	InterestAccrualsShort                            *decimal.Decimal `flex:"interestAccrualsShort"`
	SoftDollars                                      *decimal.Decimal `flex:"softDollars"`
	SoftDollarsLong                                  *decimal.Decimal `flex:"softDollarsLong"`
	SoftDollarsShort                                 *decimal.Decimal `flex:"softDollarsShort"`
	DividendAccruals                                 *decimal.Decimal `flex:"dividendAccruals"`
	DividendAccrualsLong                             *decimal.Decimal `flex:"dividendAccrualsLong"`
	DividendAccrualsShort                            *decimal.Decimal `flex:"dividendAccrualsShort"`
	Total                                            *decimal.Decimal `flex:"total"`
	TotalLong                                        *decimal.Decimal `flex:"totalLong"`
	TotalShort                                       *decimal.Decimal `flex:"totalShort"`
	Commodities                                      *decimal.Decimal `flex:"commodities"`
	CommoditiesLong                                  *decimal.Decimal `flex:"commoditiesLong"`
	CommoditiesShort                                 *decimal.Decimal `flex:"commoditiesShort"`
	Funds                                            *decimal.Decimal `flex:"funds"`
	FundsLong                                        *decimal.Decimal `flex:"fundsLong"`
	FundsShort                                       *decimal.Decimal `flex:"fundsShort"`
	ForexCFDUnrealizedPl                             *decimal.Decimal `flex:"forexCfdUnrealizedPl"`
	ForexCFDUnrealizedPlLong                         *decimal.Decimal `flex:"forexCfdUnrealizedPlLong"`
	ForexCFDUnrealizedPlShort                        *decimal.Decimal `flex:"forexCfdUnrealizedPlShort"`
	BrokerInterestAccrualsComponent                  *decimal.Decimal `flex:"brokerInterestAccrualsComponent"`
	BrokerCashComponent                              *decimal.Decimal `flex:"brokerCashComponent"`
	CFDUnrealizedPl                                  *decimal.Decimal `flex:"cfdUnrealizedPl"`
	FdicInsuredBankSweepAccount                      *decimal.Decimal `flex:"fdicInsuredBankSweepAccount"`
	FdicInsuredBankSweepAccountLong                  *decimal.Decimal `flex:"fdicInsuredBankSweepAccountLong"`
	FdicInsuredBankSweepAccountShort                 *decimal.Decimal `flex:"fdicInsuredBankSweepAccountShort"`
	FdicInsuredBankSweepAccountCashComponent         *decimal.Decimal `flex:"fdicInsuredBankSweepAccountCashComponent"`
	FdicInsuredBankSweepAccountCashComponentLong     *decimal.Decimal `flex:"fdicInsuredBankSweepAccountCashComponentLong"`
	FdicInsuredBankSweepAccountCashComponentShort    *decimal.Decimal `flex:"fdicInsuredBankSweepAccountCashComponentShort"`
	FdicInsuredAccountInterestAccruals               *decimal.Decimal `flex:"fdicInsuredAccountInterestAccruals"`
	FdicInsuredAccountInterestAccrualsLong           *decimal.Decimal `flex:"fdicInsuredAccountInterestAccrualsLong"`
	FdicInsuredAccountInterestAccrualsShort          *decimal.Decimal `flex:"fdicInsuredAccountInterestAccrualsShort"`
	FdicInsuredAccountInterestAccrualsComponent      *decimal.Decimal `flex:"fdicInsuredAccountInterestAccrualsComponent"`
	FdicInsuredAccountInterestAccrualsComponentLong  *decimal.Decimal `flex:"fdicInsuredAccountInterestAccrualsComponentLong"`
	FdicInsuredAccountInterestAccrualsComponentShort *decimal.Decimal `flex:"fdicInsuredAccountInterestAccrualsComponentShort"`
	BrokerCashComponentLong                          *decimal.Decimal `flex:"brokerCashComponentLong"`
	BrokerCashComponentShort                         *decimal.Decimal `flex:"brokerCashComponentShort"`
	BrokerInterestAccrualsComponentLong              *decimal.Decimal `flex:"brokerInterestAccrualsComponentLong"`
	BrokerInterestAccrualsComponentShort             *decimal.Decimal `flex:"brokerInterestAccrualsComponentShort"`
	CFDUnrealizedPlLong                              *decimal.Decimal `flex:"cfdUnrealizedPlLong"`
	CFDUnrealizedPlShort                             *decimal.Decimal `flex:"cfdUnrealizedPlShort"`
	IpoSubscription                                  *decimal.Decimal `flex:"ipoSubscription"`
	IpoSubscriptionLong                              *decimal.Decimal `flex:"ipoSubscriptionLong"`
	IpoSubscriptionShort                             *decimal.Decimal `flex:"ipoSubscriptionShort"`
	Extras                                           Extras           `flex:"-"`
}

type MTDYTDPerformanceSummaryUnderlying struct {
	AssetCategory              AssetClass       `flex:"assetCategory"`
	AccountID                  string           `flex:"accountId"`
	AcctAlias                  string           `flex:"acctAlias"`
	Model                      string           `flex:"model"`
	Symbol                     string           `flex:"symbol"`
	Description                string           `flex:"description"`
	Conid                      string           `flex:"conid"`
	SecurityID                 string           `flex:"securityID"`
	CUSIP                      string           `flex:"cusip"`
	ISIN                       string           `flex:"isin"`
	ListingExchange            string           `flex:"listingExchange"`
	UnderlyingConid            string           `flex:"underlyingConid"`
	UnderlyingSecurityID       string           `flex:"underlyingSecurityID"`
	UnderlyingListingExchange  string           `flex:"underlyingListingExchange"`
	MTMMTD                     *decimal.Decimal `flex:"mtmMTD"`
	MTMYTD                     *decimal.Decimal `flex:"mtmYTD"`
	RealSTMTD                  *decimal.Decimal `flex:"realSTMTD"`
	RealSTYTD                  *decimal.Decimal `flex:"realSTYTD"`
	RealLTMTD                  *decimal.Decimal `flex:"realLTMTD"`
	RealLTYTD                  *decimal.Decimal `flex:"realLTYTD"`
	SecurityIDType             string           `flex:"securityIDType"`
	UnderlyingSymbol           string           `flex:"underlyingSymbol"`
	Issuer                     string           `flex:"issuer"`
	Multiplier                 *decimal.Decimal `flex:"multiplier"`
	Strike                     *decimal.Decimal `flex:"strike"`
	Expiry                     *Date            `flex:"expiry"`
	PutCall                    PutCall          `flex:"putCall"`
	PrincipalAdjustFactor      *decimal.Decimal `flex:"principalAdjustFactor"`
	RealizedPnLMTD             *decimal.Decimal `flex:"realizedPnlMTD"`
	RealizedCapitalGainsPnLMTD *decimal.Decimal `flex:"realizedCapitalGainsPnlMTD"`
	RealizedFXPnLMTD           *decimal.Decimal `flex:"realizedFxPnlMTD"`
	RealizedPnLYTD             *decimal.Decimal `flex:"realizedPnlYTD"`
	RealizedCapitalGainsPnLYTD *decimal.Decimal `flex:"realizedCapitalGainsPnlYTD"`
	RealizedFXPnLYTD           *decimal.Decimal `flex:"realizedFxPnlYTD"`
	Extras                     Extras           `flex:"-"`
}

type FIFOPerformanceSummaryUnderlying struct {
	AccountID                      string           `flex:"accountId"`
	AcctAlias                      string           `flex:"acctAlias"`
	Model                          string           `flex:"model"`
	ListingExchange                string           `flex:"listingExchange"`
	AssetCategory                  AssetClass       `flex:"assetCategory"`
	Symbol                         string           `flex:"symbol"`
	Description                    string           `flex:"description"`
	Conid                          string           `flex:"conid"`
	SecurityID                     string           `flex:"securityID"`
	CUSIP                          string           `flex:"cusip"`
	ISIN                           string           `flex:"isin"`
	UnderlyingConid                string           `flex:"underlyingConid"`
	UnderlyingSecurityID           string           `flex:"underlyingSecurityID"`
	UnderlyingListingExchange      string           `flex:"underlyingListingExchange"`
	RealizedSTProfit               *decimal.Decimal `flex:"realizedSTProfit"`
	RealizedSTLoss                 *decimal.Decimal `flex:"realizedSTLoss"`
	RealizedLTProfit               *decimal.Decimal `flex:"realizedLTProfit"`
	RealizedLTLoss                 *decimal.Decimal `flex:"realizedLTLoss"`
	TotalRealizedPnL               *decimal.Decimal `flex:"totalRealizedPnl"`
	UnrealizedProfit               *decimal.Decimal `flex:"unrealizedProfit"`
	UnrealizedLoss                 *decimal.Decimal `flex:"unrealizedLoss"`
	TotalUnrealizedPnL             *decimal.Decimal `flex:"totalUnrealizedPnl"`
	TotalFIFOPnL                   *decimal.Decimal `flex:"totalFifoPnl"`
	TotalRealizedCapitalGainsPnL   *decimal.Decimal `flex:"totalRealizedCapitalGainsPnl"`
	TotalRealizedFXPnL             *decimal.Decimal `flex:"totalRealizedFxPnl"`
	TotalUnrealizedCapitalGainsPnL *decimal.Decimal `flex:"totalUnrealizedCapitalGainsPnl"`
	TotalUnrealizedFXPnL           *decimal.Decimal `flex:"totalUnrealizedFxPnl"`
	TotalCapitalGainsPnL           *decimal.Decimal `flex:"totalCapitalGainsPnl"`
	TotalFXPnL                     *decimal.Decimal `flex:"totalFxPnl"`
	TransferredPnL                 *decimal.Decimal `flex:"transferredPnl"`
	TransferredCapitalGainsPnL     *decimal.Decimal `flex:"transferredCapitalGainsPnl"`
	TransferredFXPnL               *decimal.Decimal `flex:"transferredFxPnl"`
	SEDOL                          string           `flex:"sedol"`
	SecurityIDType                 string           `flex:"securityIDType"`
	UnderlyingSymbol               string           `flex:"underlyingSymbol"`
	Issuer                         string           `flex:"issuer"`
	Multiplier                     *decimal.Decimal `flex:"multiplier"`
	Strike                         *decimal.Decimal `flex:"strike"`
	Expiry                         *Date            `flex:"expiry"`
	PutCall                        PutCall          `flex:"putCall"`
	PrincipalAdjustFactor          *decimal.Decimal `flex:"principalAdjustFactor"`
	ReportDate                     *Date            `flex:"reportDate"`
	UnrealizedSTProfit             *decimal.Decimal `flex:"unrealizedSTProfit"`
	UnrealizedSTLoss               *decimal.Decimal `flex:"unrealizedSTLoss"`
	UnrealizedLTProfit             *decimal.Decimal `flex:"unrealizedLTProfit"`
	UnrealizedLTLoss               *decimal.Decimal `flex:"unrealizedLTLoss"`
	CostAdj                        *decimal.Decimal `flex:"costAdj"`
	Code                           []Code           `flex:"code"`
	Extras                         Extras           `flex:"-"`
}

type NetStockPosition struct {
	AssetCategory             AssetClass       `flex:"assetCategory"`
	AccountID                 string           `flex:"accountId"`
	AcctAlias                 string           `flex:"acctAlias"`
	Model                     string           `flex:"model"`
	Currency                  string           `flex:"currency"`
	Symbol                    string           `flex:"symbol"`
	Description               string           `flex:"description"`
	Conid                     string           `flex:"conid"`
	SecurityID                string           `flex:"securityID"`
	SecurityIDType            string           `flex:"securityIDType"`
	CUSIP                     string           `flex:"cusip"`
	ISIN                      string           `flex:"isin"`
	SEDOL                     string           `flex:"sedol"`
	ListingExchange           string           `flex:"listingExchange"`
	UnderlyingConid           string           `flex:"underlyingConid"`
	UnderlyingSymbol          string           `flex:"underlyingSymbol"`
	UnderlyingSecurityID      string           `flex:"underlyingSecurityID"`
	UnderlyingListingExchange string           `flex:"underlyingListingExchange"`
	Issuer                    string           `flex:"issuer"`
	Multiplier                *decimal.Decimal `flex:"multiplier"`
	Strike                    *decimal.Decimal `flex:"strike"`
	Expiry                    *Date            `flex:"expiry"`
	PutCall                   PutCall          `flex:"putCall"`
	PrincipalAdjustFactor     *decimal.Decimal `flex:"principalAdjustFactor"`
	ReportDate                *Date            `flex:"reportDate"`
	SharesAtIB                *decimal.Decimal `flex:"sharesAtIb"`
	SharesBorrowed            *decimal.Decimal `flex:"sharesBorrowed"`
	SharesLent                *decimal.Decimal `flex:"sharesLent"`
	NetShares                 *decimal.Decimal `flex:"netShares"`
	Extras                    Extras           `flex:"-"`
}

// Lot is one closed-lot row. It appears inside <Trades> alongside Trade
// execution rows when the query requests lot detail.
type Lot struct {
	TransactionType           TradeType        `flex:"transactionType"`
	OpenCloseIndicator        OpenClose        `flex:"openCloseIndicator"`
	BuySell                   BuySell          `flex:"buySell"`
	OrderType                 OrderType        `flex:"orderType"`
	AssetCategory             AssetClass       `flex:"assetCategory"`
	AccountID                 string           `flex:"accountId"`
	Currency                  string           `flex:"currency"`
	FXRateToBase              *decimal.Decimal `flex:"fxRateToBase"`
	Symbol                    string           `flex:"symbol"`
	Description               string           `flex:"description"`
	Conid                     string           `flex:"conid"`
	CUSIP                     string           `flex:"cusip"`
	ISIN                      string           `flex:"isin"`
	ListingExchange           string           `flex:"listingExchange"`
	Multiplier                *decimal.Decimal `flex:"multiplier"`
	Strike                    *decimal.Decimal `flex:"strike"`
	Expiry                    *Date            `flex:"expiry"`
	PutCall                   PutCall          `flex:"putCall"`
	TradeID                   string           `flex:"tradeID"`
	ReportDate                *Date            `flex:"reportDate"`
	TradeDate                 *Date            `flex:"tradeDate"`
	TradeTime                 *TimeOfDay       `flex:"tradeTime"`
	SettleDateTarget          *Date            `flex:"settleDateTarget"`
	Exchange                  string           `flex:"exchange"`
	Quantity                  *decimal.Decimal `flex:"quantity"`
	TradePrice                *decimal.Decimal `flex:"tradePrice"`
	TradeMoney                *decimal.Decimal `flex:"tradeMoney"`
	Taxes                     *decimal.Decimal `flex:"taxes"`
	IBCommission              *decimal.Decimal `flex:"ibCommission"`
	IBCommissionCurrency      string           `flex:"ibCommissionCurrency"`
	NetCash                   *decimal.Decimal `flex:"netCash"`
	NetCashInBase             *decimal.Decimal `flex:"netCashInBase"`
	ClosePrice                *decimal.Decimal `flex:"closePrice"`
	Notes                     []Code           `flex:"notes"`
	Cost                      *decimal.Decimal `flex:"cost"`
	MTMPnL                    *decimal.Decimal `flex:"mtmPnl"`
	OrigTradePrice            *decimal.Decimal `flex:"origTradePrice"`
	OrigTradeDate             *Date            `flex:"origTradeDate"`
	OrigTradeID               string           `flex:"origTradeID"`
	OrigOrderID               string           `flex:"origOrderID"`
	OpenDateTime              *DateTime        `flex:"openDateTime"`
	FIFOPnLRealized           *decimal.Decimal `flex:"fifoPnlRealized"`
	CapitalGainsPnL           *decimal.Decimal `flex:"capitalGainsPnl"`
	LevelOfDetail             string           `flex:"levelOfDetail"`
	IBOrderID                 string           `flex:"ibOrderID"`
	OrderTime                 *DateTime        `flex:"orderTime"`
	ChangeInPrice             *decimal.Decimal `flex:"changeInPrice"`
	ChangeInQuantity          *decimal.Decimal `flex:"changeInQuantity"`
	Proceeds                  *decimal.Decimal `flex:"proceeds"`
	FXPnL                     *decimal.Decimal `flex:"fxPnl"`
	ClearingFirmID            string           `flex:"clearingFirmID"`
	TransactionID             string           `flex:"transactionID"`
	HoldingPeriodDateTime     *DateTime        `flex:"holdingPeriodDateTime"`
	IBExecID                  string           `flex:"ibExecID"`
	BrokerageOrderID          string           `flex:"brokerageOrderID"`
	OrderReference            string           `flex:"orderReference"`
	VolatilityOrderLink       string           `flex:"volatilityOrderLink"`
	ExchOrderID               string           `flex:"exchOrderId"`
	ExtExecID                 string           `flex:"extExecID"`
	TraderID                  string           `flex:"traderID"`
	IsAPIOrder                *bool            `flex:"isAPIOrder"`
	AcctAlias                 string           `flex:"acctAlias"`
	Model                     string           `flex:"model"`
	SecurityID                string           `flex:"securityID"`
	SecurityIDType            string           `flex:"securityIDType"`
	PrincipalAdjustFactor     *decimal.Decimal `flex:"principalAdjustFactor"`
	DateTime                  *DateTime        `flex:"dateTime"`
	UnderlyingConid           string           `flex:"underlyingConid"`
	UnderlyingSecurityID      string           `flex:"underlyingSecurityID"`
	UnderlyingSymbol          string           `flex:"underlyingSymbol"`
	UnderlyingListingExchange string           `flex:"underlyingListingExchange"`
	Issuer                    string           `flex:"issuer"`
	SEDOL                     string           `flex:"sedol"`
	WhenRealized              *DateTime        `flex:"whenRealized"`
	WhenReopened              *DateTime        `flex:"whenReopened"`
	Extras                    Extras           `flex:"-"`
}

type UnbundledCommissionDetail struct {
	BuySell                    BuySell          `flex:"buySell"`
	AssetCategory              AssetClass       `flex:"assetCategory"`
	AccountID                  string           `flex:"accountId"`
	AcctAlias                  string           `flex:"acctAlias"`
	Model                      string           `flex:"model"`
	Currency                   string           `flex:"currency"`
	FXRateToBase               *decimal.Decimal `flex:"fxRateToBase"`
	Symbol                     string           `flex:"symbol"`
	Description                string           `flex:"description"`
	Conid                      string           `flex:"conid"`
	SecurityID                 string           `flex:"securityID"`
	SecurityIDType             string           `flex:"securityIDType"`
	CUSIP                      string           `flex:"cusip"`
	ISIN                       string           `flex:"isin"`
	SEDOL                      string           `flex:"sedol"`
	ListingExchange            string           `flex:"listingExchange"`
	UnderlyingConid            string           `flex:"underlyingConid"`
	UnderlyingSymbol           string           `flex:"underlyingSymbol"`
	UnderlyingSecurityID       string           `flex:"underlyingSecurityID"`
	UnderlyingListingExchange  string           `flex:"underlyingListingExchange"`
	Issuer                     string           `flex:"issuer"`
	Multiplier                 *decimal.Decimal `flex:"multiplier"`
	Strike                     *decimal.Decimal `flex:"strike"`
	Expiry                     *Date            `flex:"expiry"`
	PutCall                    PutCall          `flex:"putCall"`
	PrincipalAdjustFactor      *decimal.Decimal `flex:"principalAdjustFactor"`
	DateTime                   *DateTime        `flex:"dateTime"`
	Exchange                   string           `flex:"exchange"`
	Quantity                   *decimal.Decimal `flex:"quantity"`
	Price                      *decimal.Decimal `flex:"price"`
	TradeID                    string           `flex:"tradeID"`
	OrderReference             string           `flex:"orderReference"`
	TotalCommission            *decimal.Decimal `flex:"totalCommission"`
	BrokerExecutionCharge      *decimal.Decimal `flex:"brokerExecutionCharge"`
	BrokerClearingCharge       *decimal.Decimal `flex:"brokerClearingCharge"`
	ThirdPartyExecutionCharge  *decimal.Decimal `flex:"thirdPartyExecutionCharge"`
	ThirdPartyClearingCharge   *decimal.Decimal `flex:"thirdPartyClearingCharge"`
	ThirdPartyRegulatoryCharge *decimal.Decimal `flex:"thirdPartyRegulatoryCharge"`
	RegFINRATradingActivityFee *decimal.Decimal `flex:"regFINRATradingActivityFee"`
	RegSection31TransactionFee *decimal.Decimal `flex:"regSection31TransactionFee"`
	RegOther                   *decimal.Decimal `flex:"regOther"`
	Other                      *decimal.Decimal `flex:"other"`
	Extras                     Extras           `flex:"-"`
}

// SymbolSummary is a per-symbol aggregation row, found in either <Trades>
// or <TradeConfirms>.
type SymbolSummary struct {
	AccountID                      string           `flex:"accountId"`
	AcctAlias                      string           `flex:"acctAlias"`
	Model                          string           `flex:"model"`
	Currency                       string           `flex:"currency"`
	AssetCategory                  AssetClass       `flex:"assetCategory"`
	Symbol                         string           `flex:"symbol"`
	Description                    string           `flex:"description"`
	Conid                          string           `flex:"conid"`
	SecurityID                     string           `flex:"securityID"`
	SecurityIDType                 string           `flex:"securityIDType"`
	CUSIP                          string           `flex:"cusip"`
	ISIN                           string           `flex:"isin"`
	ListingExchange                string           `flex:"listingExchange"`
	UnderlyingConid                string           `flex:"underlyingConid"`
	UnderlyingSymbol               string           `flex:"underlyingSymbol"`
	UnderlyingSecurityID           string           `flex:"underlyingSecurityID"`
	UnderlyingListingExchange      string           `flex:"underlyingListingExchange"`
	Issuer                         string           `flex:"issuer"`
	Multiplier                     *decimal.Decimal `flex:"multiplier"`
	Strike                         *decimal.Decimal `flex:"strike"`
	Expiry                         *Date            `flex:"expiry"`
	PutCall                        PutCall          `flex:"putCall"`
	PrincipalAdjustFactor          *decimal.Decimal `flex:"principalAdjustFactor"`
	TransactionType                TradeType        `flex:"transactionType"`
	TradeID                        string           `flex:"tradeID"`
	OrderID                        *decimal.Decimal `flex:"orderID"`
	ExecID                         string           `flex:"execID"`
	BrokerageOrderID               string           `flex:"brokerageOrderID"`
	OrderReference                 string           `flex:"orderReference"`
	VolatilityOrderLink            string           `flex:"volatilityOrderLink"`
	ClearingFirmID                 string           `flex:"clearingFirmID"`
	OrigTradePrice                 *decimal.Decimal `flex:"origTradePrice"`
	OrigTradeDate                  *Date            `flex:"origTradeDate"`
	OrigTradeID                    string           `flex:"origTradeID"`
	OrderTime                      *DateTime        `flex:"orderTime"`
	DateTime                       *DateTime        `flex:"dateTime"`
	ReportDate                     *Date            `flex:"reportDate"`
	SettleDate                     *Date            `flex:"settleDate"`
	TradeDate                      *Date            `flex:"tradeDate"`
	Exchange                       string           `flex:"exchange"`
	BuySell                        BuySell          `flex:"buySell"`
	Quantity                       *decimal.Decimal `flex:"quantity"`
	Price                          *decimal.Decimal `flex:"price"`
	Amount                         *decimal.Decimal `flex:"amount"`
	Proceeds                       *decimal.Decimal `flex:"proceeds"`
	Commission                     *decimal.Decimal `flex:"commission"`
	BrokerExecutionCommission      *decimal.Decimal `flex:"brokerExecutionCommission"`
	BrokerClearingCommission       *decimal.Decimal `flex:"brokerClearingCommission"`
	ThirdPartyExecutionCommission  *decimal.Decimal `flex:"thirdPartyExecutionCommission"`
	ThirdPartyClearingCommission   *decimal.Decimal `flex:"thirdPartyClearingCommission"`
	ThirdPartyRegulatoryCommission *decimal.Decimal `flex:"thirdPartyRegulatoryCommission"`
	OtherCommission                *decimal.Decimal `flex:"otherCommission"`
	CommissionCurrency             string           `flex:"commissionCurrency"`
	Tax                            *decimal.Decimal `flex:"tax"`
	Code                           []Code           `flex:"code"`
	OrderType                      OrderType        `flex:"orderType"`
	LevelOfDetail                  string           `flex:"levelOfDetail"`
	TraderID                       string           `flex:"traderID"`
	IsAPIOrder                     *bool            `flex:"isAPIOrder"`
	AllocatedTo                    string           `flex:"allocatedTo"`
	AccruedInt                     *decimal.Decimal `flex:"accruedInt"`
	Extras                         Extras           `flex:"-"`
}

// Order is an order-level aggregation row, found in either <Trades> or
// <TradeConfirms>.
type Order struct {
	AccountID                      string           `flex:"accountId"`
	AcctAlias                      string           `flex:"acctAlias"`
	Model                          string           `flex:"model"`
	Currency                       string           `flex:"currency"`
	AssetCategory                  AssetClass       `flex:"assetCategory"`
	Symbol                         string           `flex:"symbol"`
	Description                    string           `flex:"description"`
	Conid                          string           `flex:"conid"`
	SecurityID                     string           `flex:"securityID"`
	SecurityIDType                 string           `flex:"securityIDType"`
	CUSIP                          string           `flex:"cusip"`
	ISIN                           string           `flex:"isin"`
	ListingExchange                string           `flex:"listingExchange"`
	UnderlyingConid                string           `flex:"underlyingConid"`
	UnderlyingSymbol               string           `flex:"underlyingSymbol"`
	UnderlyingSecurityID           string           `flex:"underlyingSecurityID"`
	UnderlyingListingExchange      string           `flex:"underlyingListingExchange"`
	Issuer                         string           `flex:"issuer"`
	Multiplier                     *decimal.Decimal `flex:"multiplier"`
	Strike                         *decimal.Decimal `flex:"strike"`
	Expiry                         *Date            `flex:"expiry"`
	PutCall                        PutCall          `flex:"putCall"`
	PrincipalAdjustFactor          *decimal.Decimal `flex:"principalAdjustFactor"`
	TransactionType                TradeType        `flex:"transactionType"`
	TradeID                        string           `flex:"tradeID"`
	OrderID                        *decimal.Decimal `flex:"orderID"`
	ExecID                         string           `flex:"execID"`
	BrokerageOrderID               string           `flex:"brokerageOrderID"`
	OrderReference                 string           `flex:"orderReference"`
	VolatilityOrderLink            string           `flex:"volatilityOrderLink"`
	ClearingFirmID                 string           `flex:"clearingFirmID"`
	OrigTradePrice                 *decimal.Decimal `flex:"origTradePrice"`
	OrigTradeDate                  *Date            `flex:"origTradeDate"`
	OrigTradeID                    string           `flex:"origTradeID"`
	OrderTime                      *DateTime        `flex:"orderTime"`
	DateTime                       *DateTime        `flex:"dateTime"`
	ReportDate                     *Date            `flex:"reportDate"`
	SettleDate                     *Date            `flex:"settleDate"`
	TradeDate                      *Date            `flex:"tradeDate"`
	Exchange                       string           `flex:"exchange"`
	BuySell                        BuySell          `flex:"buySell"`
	Quantity                       *decimal.Decimal `flex:"quantity"`
	Price                          *decimal.Decimal `flex:"price"`
	Amount                         *decimal.Decimal `flex:"amount"`
	Proceeds                       *decimal.Decimal `flex:"proceeds"`
	Commission                     *decimal.Decimal `flex:"commission"`
	BrokerExecutionCommission      *decimal.Decimal `flex:"brokerExecutionCommission"`
	BrokerClearingCommission       *decimal.Decimal `flex:"brokerClearingCommission"`
	ThirdPartyExecutionCommission  *decimal.Decimal `flex:"thirdPartyExecutionCommission"`
	ThirdPartyClearingCommission   *decimal.Decimal `flex:"thirdPartyClearingCommission"`
	ThirdPartyRegulatoryCommission *decimal.Decimal `flex:"thirdPartyRegulatoryCommission"`
	OtherCommission                *decimal.Decimal `flex:"otherCommission"`
	CommissionCurrency             string           `flex:"commissionCurrency"`
	Tax                            *decimal.Decimal `flex:"tax"`
	Code                           []Code           `flex:"code"`
	OrderType                      OrderType        `flex:"orderType"`
	LevelOfDetail                  string           `flex:"levelOfDetail"`
	TraderID                       string           `flex:"traderID"`
	IsAPIOrder                     *bool            `flex:"isAPIOrder"`
	AllocatedTo                    string           `flex:"allocatedTo"`
	AccruedInt                     *decimal.Decimal `flex:"accruedInt"`
	NetCash                        *decimal.Decimal `flex:"netCash"`
	TradePrice                     *decimal.Decimal `flex:"tradePrice"`
	IBCommission                   *decimal.Decimal `flex:"ibCommission"`
	IBOrderID                      string           `flex:"ibOrderID"`
	FXRateToBase                   *decimal.Decimal `flex:"fxRateToBase"`
	SettleDateTarget               *Date            `flex:"settleDateTarget"`
	TradeMoney                     *decimal.Decimal `flex:"tradeMoney"`
	Taxes                          *decimal.Decimal `flex:"taxes"`
	IBCommissionCurrency           string           `flex:"ibCommissionCurrency"`
	ClosePrice                     *decimal.Decimal `flex:"closePrice"`
	OpenCloseIndicator             OpenClose        `flex:"openCloseIndicator"`
	Notes                          string           `flex:"notes"`
	Cost                           *decimal.Decimal `flex:"cost"`
	FIFOPnLRealized                *decimal.Decimal `flex:"fifoPnlRealized"`
	FXPnL                          *decimal.Decimal `flex:"fxPnl"`
	MTMPnL                         *decimal.Decimal `flex:"mtmPnl"`
	OrigOrderID                    string           `flex:"origOrderID"`
	TransactionID                  string           `flex:"transactionID"`
	IBExecID                       string           `flex:"ibExecID"`
	ExchOrderID                    string           `flex:"exchOrderId"`
	ExtExecID                      string           `flex:"extExecID"`
	OpenDateTime                   *DateTime        `flex:"openDateTime"`
	HoldingPeriodDateTime          *DateTime        `flex:"holdingPeriodDateTime"`
	WhenRealized                   *DateTime        `flex:"whenRealized"`
	WhenReopened                   *DateTime        `flex:"whenReopened"`
	ChangeInPrice                  *decimal.Decimal `flex:"changeInPrice"`
	ChangeInQuantity               *decimal.Decimal `flex:"changeInQuantity"`
	Extras                         Extras           `flex:"-"`
}

type TradeConfirm struct {
	TransactionType                TradeType        `flex:"transactionType"`
	OpenCloseIndicator             OpenClose        `flex:"openCloseIndicator"`
	BuySell                        BuySell          `flex:"buySell"`
	OrderType                      OrderType        `flex:"orderType"`
	AssetCategory                  AssetClass       `flex:"assetCategory"`
	AccountID                      string           `flex:"accountId"`
	Currency                       string           `flex:"currency"`
	FXRateToBase                   *decimal.Decimal `flex:"fxRateToBase"`
	Symbol                         string           `flex:"symbol"`
	Description                    string           `flex:"description"`
	Conid                          string           `flex:"conid"`
	SecurityID                     string           `flex:"securityID"`
	SecurityIDType                 string           `flex:"securityIDType"`
	CUSIP                          string           `flex:"cusip"`
	ISIN                           string           `flex:"isin"`
	UnderlyingConid                string           `flex:"underlyingConid"`
	UnderlyingSymbol               string           `flex:"underlyingSymbol"`
	Issuer                         string           `flex:"issuer"`
	Multiplier                     *decimal.Decimal `flex:"multiplier"`
	Strike                         *decimal.Decimal `flex:"strike"`
	Expiry                         *Date            `flex:"expiry"`
	PutCall                        PutCall          `flex:"putCall"`
	PrincipalAdjustFactor          *decimal.Decimal `flex:"principalAdjustFactor"`
	TradeID                        string           `flex:"tradeID"`
	ReportDate                     *Date            `flex:"reportDate"`
	TradeDate                      *Date            `flex:"tradeDate"`
	TradeTime                      *TimeOfDay       `flex:"tradeTime"`
	SettleDateTarget               *Date            `flex:"settleDateTarget"`
	Exchange                       string           `flex:"exchange"`
	Quantity                       *decimal.Decimal `flex:"quantity"`
	TradePrice                     *decimal.Decimal `flex:"tradePrice"`
	TradeMoney                     *decimal.Decimal `flex:"tradeMoney"`
	Proceeds                       *decimal.Decimal `flex:"proceeds"`
	Taxes                          *decimal.Decimal `flex:"taxes"`
	IBCommission                   *decimal.Decimal `flex:"ibCommission"`
	IBCommissionCurrency           string           `flex:"ibCommissionCurrency"`
	NetCash                        *decimal.Decimal `flex:"netCash"`
	ClosePrice                     *decimal.Decimal `flex:"closePrice"`
	Notes                          []Code           `flex:"notes"`
	Cost                           *decimal.Decimal `flex:"cost"`
	FIFOPnLRealized                *decimal.Decimal `flex:"fifoPnlRealized"`
	FXPnL                          *decimal.Decimal `flex:"fxPnl"`
	MTMPnL                         *decimal.Decimal `flex:"mtmPnl"`
	OrigTradePrice                 *decimal.Decimal `flex:"origTradePrice"`
	OrigTradeDate                  *Date            `flex:"origTradeDate"`
	OrigTradeID                    string           `flex:"origTradeID"`
	OrigOrderID                    string           `flex:"origOrderID"`
	ClearingFirmID                 string           `flex:"clearingFirmID"`
	TransactionID                  string           `flex:"transactionID"`
	OpenDateTime                   *DateTime        `flex:"openDateTime"`
	HoldingPeriodDateTime          *DateTime        `flex:"holdingPeriodDateTime"`
	WhenRealized                   *DateTime        `flex:"whenRealized"`
	WhenReopened                   *DateTime        `flex:"whenReopened"`
	LevelOfDetail                  string           `flex:"levelOfDetail"`
	CommissionCurrency             string           `flex:"commissionCurrency"`
	Price                          *decimal.Decimal `flex:"price"`
	ThirdPartyClearingCommission   *decimal.Decimal `flex:"thirdPartyClearingCommission"`
	OrderID                        *decimal.Decimal `flex:"orderID"`
	AllocatedTo                    string           `flex:"allocatedTo"`
	ThirdPartyRegulatoryCommission *decimal.Decimal `flex:"thirdPartyRegulatoryCommission"`
	DateTime                       *DateTime        `flex:"dateTime"`
	BrokerExecutionCommission      *decimal.Decimal `flex:"brokerExecutionCommission"`
	ThirdPartyExecutionCommission  *decimal.Decimal `flex:"thirdPartyExecutionCommission"`
	Amount                         *decimal.Decimal `flex:"amount"`
	OtherCommission                *decimal.Decimal `flex:"otherCommission"`
	Commission                     *decimal.Decimal `flex:"commission"`
	BrokerClearingCommission       *decimal.Decimal `flex:"brokerClearingCommission"`
	IBOrderID                      string           `flex:"ibOrderID"`
	IBExecID                       string           `flex:"ibExecID"`
	ExecID                         string           `flex:"execID"`
	BrokerageOrderID               string           `flex:"brokerageOrderID"`
	OrderReference                 string           `flex:"orderReference"`
	VolatilityOrderLink            string           `flex:"volatilityOrderLink"`
	ExchOrderID                    string           `flex:"exchOrderId"`
	ExtExecID                      string           `flex:"extExecID"`
	OrderTime                      *DateTime        `flex:"orderTime"`
	ChangeInPrice                  *decimal.Decimal `flex:"changeInPrice"`
	ChangeInQuantity               *decimal.Decimal `flex:"changeInQuantity"`
	TraderID                       string           `flex:"traderID"`
	IsAPIOrder                     *bool            `flex:"isAPIOrder"`
	Code                           []Code           `flex:"code"`
	Tax                            *decimal.Decimal `flex:"tax"`
	ListingExchange                string           `flex:"listingExchange"`
	UnderlyingListingExchange      string           `flex:"underlyingListingExchange"`
	SettleDate                     *Date            `flex:"settleDate"`
	UnderlyingSecurityID           string           `flex:"underlyingSecurityID"`
	AcctAlias                      string           `flex:"acctAlias"`
	Model                          string           `flex:"model"`
	AccruedInt                     *decimal.Decimal `flex:"accruedInt"`
	Extras                         Extras           `flex:"-"`
}

type TierInterestDetail struct {
	AccountID            string           `flex:"accountId"`
	AcctAlias            string           `flex:"acctAlias"`
	Model                string           `flex:"model"`
	Currency             string           `flex:"currency"`
	FXRateToBase         *decimal.Decimal `flex:"fxRateToBase"`
	InterestType         string           `flex:"interestType"`
	ValueDate            *Date            `flex:"valueDate"`
	TierBreak            string           `flex:"tierBreak"`
	BalanceThreshold     *decimal.Decimal `flex:"balanceThreshold"`
	SecuritiesPrincipal  *decimal.Decimal `flex:"securitiesPrincipal"`
	CommoditiesPrincipal *decimal.Decimal `flex:"commoditiesPrincipal"`
	IbuklPrincipal       *decimal.Decimal `flex:"ibuklPrincipal"`
	TotalPrincipal       *decimal.Decimal `flex:"totalPrincipal"`
	Rate                 *decimal.Decimal `flex:"rate"`
	SecuritiesInterest   *decimal.Decimal `flex:"securitiesInterest"`
	CommoditiesInterest  *decimal.Decimal `flex:"commoditiesInterest"`
	IbuklInterest        *decimal.Decimal `flex:"ibuklInterest"`
	TotalInterest        *decimal.Decimal `flex:"totalInterest"`
	Code                 []Code           `flex:"code"`
	FromAcct             string           `flex:"fromAcct"`
	ToAcct               string           `flex:"toAcct"`
	Extras               Extras           `flex:"-"`
}

type HardToBorrowDetail struct {
	AssetCategory             AssetClass       `flex:"assetCategory"`
	AccountID                 string           `flex:"accountId"`
	AcctAlias                 string           `flex:"acctAlias"`
	Model                     string           `flex:"model"`
	Currency                  string           `flex:"currency"`
	FXRateToBase              *decimal.Decimal `flex:"fxRateToBase"`
	Symbol                    string           `flex:"symbol"`
	Description               string           `flex:"description"`
	Conid                     string           `flex:"conid"`
	SecurityID                string           `flex:"securityID"`
	SecurityIDType            string           `flex:"securityIDType"`
	CUSIP                     string           `flex:"cusip"`
	ISIN                      string           `flex:"isin"`
	ListingExchange           string           `flex:"listingExchange"`
	UnderlyingConid           string           `flex:"underlyingConid"`
	UnderlyingSymbol          string           `flex:"underlyingSymbol"`
	UnderlyingSecurityID      string           `flex:"underlyingSecurityID"`
	UnderlyingListingExchange string           `flex:"underlyingListingExchange"`
	Issuer                    string           `flex:"issuer"`
	Multiplier                *decimal.Decimal `flex:"multiplier"`
	Strike                    *decimal.Decimal `flex:"strike"`
	Expiry                    *Date            `flex:"expiry"`
	PutCall                   PutCall          `flex:"putCall"`
	PrincipalAdjustFactor     *decimal.Decimal `flex:"principalAdjustFactor"`
	ValueDate                 *Date            `flex:"valueDate"`
	Quantity                  *decimal.Decimal `flex:"quantity"`
	Price                     *decimal.Decimal `flex:"price"`
	Value                     *decimal.Decimal `flex:"value"`
	BorrowFeeRate             *decimal.Decimal `flex:"borrowFeeRate"`
	BorrowFee                 *decimal.Decimal `flex:"borrowFee"`
	Code                      []Code           `flex:"code"`
	FromAcct                  string           `flex:"fromAcct"`
	ToAcct                    string           `flex:"toAcct"`
	Extras                    Extras           `flex:"-"`
}

type SLBFee struct {
	AccountID                 string           `flex:"accountId"`
	AcctAlias                 string           `flex:"acctAlias"`
	Model                     string           `flex:"model"`
	Currency                  string           `flex:"currency"`
	FXRateToBase              string           `flex:"fxRateToBase"`
	AssetCategory             string           `flex:"assetCategory"`
	Symbol                    string           `flex:"symbol"`
	Description               string           `flex:"description"`
	Conid                     string           `flex:"conid"`
	SecurityID                string           `flex:"securityID"`
	SecurityIDType            string           `flex:"securityIDType"`
	CUSIP                     string           `flex:"cusip"`
	ISIN                      string           `flex:"isin"`
	ListingExchange           string           `flex:"listingExchange"`
	UnderlyingConid           string           `flex:"underlyingConid"`
	UnderlyingSymbol          string           `flex:"underlyingSymbol"`
	UnderlyingSecurityID      string           `flex:"underlyingSecurityID"`
	UnderlyingListingExchange string           `flex:"underlyingListingExchange"`
	Issuer                    string           `flex:"issuer"`
	Multiplier                *decimal.Decimal `flex:"multiplier"`
	Strike                    *decimal.Decimal `flex:"strike"`
	Expiry                    *Date            `flex:"expiry"`
	PutCall                   PutCall          `flex:"putCall"`
	PrincipalAdjustFactor     *decimal.Decimal `flex:"principalAdjustFactor"`
	ValueDate                 *Date            `flex:"valueDate"`
	StartDate                 *Date            `flex:"startDate"`
	Type                      string           `flex:"type"`
	Exchange                  string           `flex:"exchange"`
	Quantity                  *decimal.Decimal `flex:"quantity"`
	CollateralAmount          *decimal.Decimal `flex:"collateralAmount"`
	FeeRate                   *decimal.Decimal `flex:"feeRate"`
	Fee                       *decimal.Decimal `flex:"fee"`
	CarryCharge               *decimal.Decimal `flex:"carryCharge"`
	TicketCharge              *decimal.Decimal `flex:"ticketCharge"`
	TotalCharges              *decimal.Decimal `flex:"totalCharges"`
	MarketFeeRate             *decimal.Decimal `flex:"marketFeeRate"`
	GrossLendFee              *decimal.Decimal `flex:"grossLendFee"`
	NetLendFeeRate            *decimal.Decimal `flex:"netLendFeeRate"`
	NetLendFee                *decimal.Decimal `flex:"netLendFee"`
	Code                      []Code           `flex:"code"`
	FromAcct                  string           `flex:"fromAcct"`
	ToAcct                    string           `flex:"toAcct"`
	Extras                    Extras           `flex:"-"`
}

type UnsettledTransfer struct {
	Direction         ToFrom           `flex:"direction"`
	AssetCategory     AssetClass       `flex:"assetCategory"`
	AccountID         string           `flex:"accountId"`
	Currency          string           `flex:"currency"`
	FXRateToBase      *decimal.Decimal `flex:"fxRateToBase"`
	Symbol            string           `flex:"symbol"`
	Description       string           `flex:"description"`
	Conid             string           `flex:"conid"`
	SecurityID        string           `flex:"securityID"`
	CUSIP             string           `flex:"cusip"`
	ISIN              string           `flex:"isin"`
	SEDOL             string           `flex:"sedol"`
	UnderlyingConid   string           `flex:"underlyingConid"`
	Stage             string           `flex:"stage"`
	TradeDate         *Date            `flex:"tradeDate"`
	TargetSettlement  *Date            `flex:"targetSettlement"`
	Contra            string           `flex:"contra"`
	Quantity          *decimal.Decimal `flex:"quantity"`
	TradePrice        *decimal.Decimal `flex:"tradePrice"`
	TradeAmount       *decimal.Decimal `flex:"tradeAmount"`
	TradeAmountInBase *decimal.Decimal `flex:"tradeAmountInBase"`
	TransactionID     string           `flex:"transactionID"`
	Extras            Extras           `flex:"-"`
}

type DebitCardActivity struct {
	AccountID            string           `flex:"accountId"`
	AcctAlias            string           `flex:"acctAlias"`
	Currency             string           `flex:"currency"`
	FXRateToBase         *decimal.Decimal `flex:"fxRateToBase"`
	AssetCategory        AssetClass       `flex:"assetCategory"`
	Status               string           `flex:"status"`
	ReportDate           *Date            `flex:"reportDate"`
	PostingDate          *Date            `flex:"postingDate"`
	TransactionDateTime  *DateTime        `flex:"transactionDateTime"`
	Category             string           `flex:"category"`
	MerchantNameLocation string           `flex:"merchantNameLocation"`
	Amount               *decimal.Decimal `flex:"amount"`
	Model                string           `flex:"model"`
	Extras               Extras           `flex:"-"`
}

type ClientFee struct {
	AccountID        string           `flex:"accountId"`
	AcctAlias        string           `flex:"acctAlias"`
	Model            string           `flex:"model"`
	Currency         string           `flex:"currency"`
	FXRateToBase     *decimal.Decimal `flex:"fxRateToBase"`
	FeeType          string           `flex:"feeType"`
	Date             *DateTime        `flex:"date"`
	Description      string           `flex:"description"`
	ExpenseIndicator string           `flex:"expenseIndicator"`
	Revenue          *decimal.Decimal `flex:"revenue"`
	Expense          *decimal.Decimal `flex:"expense"`
	Net              *decimal.Decimal `flex:"net"`
	RevenueInBase    *decimal.Decimal `flex:"revenueInBase"`
	ExpenseInBase    *decimal.Decimal `flex:"expenseInBase"`
	NetInBase        *decimal.Decimal `flex:"netInBase"`
	TradeID          string           `flex:"tradeID"`
	ExecID           string           `flex:"execID"`
	LevelOfDetail    string           `flex:"levelOfDetail"`
	Extras           Extras           `flex:"-"`
}

type ClientFeesDetail struct {
	AccountID                  string           `flex:"accountId"`
	AcctAlias                  string           `flex:"acctAlias"`
	Model                      string           `flex:"model"`
	Currency                   string           `flex:"currency"`
	FXRateToBase               *decimal.Decimal `flex:"fxRateToBase"`
	Date                       *DateTime        `flex:"date"`
	TradeID                    string           `flex:"tradeID"`
	ExecID                     string           `flex:"execID"`
	TotalRevenue               *decimal.Decimal `flex:"totalRevenue"`
	TotalCommission            *decimal.Decimal `flex:"totalCommission"`
	BrokerExecutionCharge      *decimal.Decimal `flex:"brokerExecutionCharge"`
	ClearingCharge             *decimal.Decimal `flex:"clearingCharge"`
	ThirdPartyExecutionCharge  *decimal.Decimal `flex:"thirdPartyExecutionCharge"`
	ThirdPartyRegulatoryCharge *decimal.Decimal `flex:"thirdPartyRegulatoryCharge"`
	RegFINRATradingActivityFee *decimal.Decimal `flex:"regFINRATradingActivityFee"`
	RegSection31TransactionFee *decimal.Decimal `flex:"regSection31TransactionFee"`
	RegOther                   *decimal.Decimal `flex:"regOther"`
	TotalNet                   *decimal.Decimal `flex:"totalNet"`
	TotalNetInBase             *decimal.Decimal `flex:"totalNetInBase"`
	LevelOfDetail              string           `flex:"levelOfDetail"`
	Other                      *decimal.Decimal `flex:"other"`
	Extras                     Extras           `flex:"-"`
}

type TransactionTax struct {
	AccountID                 string           `flex:"accountId"`
	AcctAlias                 string           `flex:"acctAlias"`
	Model                     string           `flex:"model"`
	Currency                  string           `flex:"currency"`
	FXRateToBase              *decimal.Decimal `flex:"fxRateToBase"`
	AssetCategory             AssetClass       `flex:"assetCategory"`
	Symbol                    string           `flex:"symbol"`
	Description               string           `flex:"description"`
	Conid                     string           `flex:"conid"`
	SecurityID                string           `flex:"securityID"`
	SecurityIDType            string           `flex:"securityIDType"`
	CUSIP                     string           `flex:"cusip"`
	ISIN                      string           `flex:"isin"`
	ListingExchange           string           `flex:"listingExchange"`
	UnderlyingConid           string           `flex:"underlyingConid"`
	UnderlyingSecurityID      string           `flex:"underlyingSecurityID"`
	UnderlyingSymbol          string           `flex:"underlyingSymbol"`
	UnderlyingListingExchange string           `flex:"underlyingListingExchange"`
	Issuer                    string           `flex:"issuer"`
	Multiplier                *decimal.Decimal `flex:"multiplier"`
	Strike                    *decimal.Decimal `flex:"strike"`
	Expiry                    *Date            `flex:"expiry"`
	PutCall                   PutCall          `flex:"putCall"`
	PrincipalAdjustFactor     *decimal.Decimal `flex:"principalAdjustFactor"`
	Date                      *DateTime        `flex:"date"`
	TaxDescription            string           `flex:"taxDescription"`
	Quantity                  *decimal.Decimal `flex:"quantity"`
	ReportDate                *Date            `flex:"reportDate"`
	TaxAmount                 *decimal.Decimal `flex:"taxAmount"`
	TradeID                   string           `flex:"tradeId"`
	TradePrice                *decimal.Decimal `flex:"tradePrice"`
	Source                    string           `flex:"source"`
	Code                      []Code           `flex:"code"`
	LevelOfDetail             string           `flex:"levelOfDetail"`
	Extras                    Extras           `flex:"-"`
}

type TransactionTaxDetail struct {
	AccountID                 string           `flex:"accountId"`
	AcctAlias                 string           `flex:"acctAlias"`
	Model                     string           `flex:"model"`
	Currency                  string           `flex:"currency"`
	FXRateToBase              *decimal.Decimal `flex:"fxRateToBase"`
	AssetCategory             AssetClass       `flex:"assetCategory"`
	Symbol                    string           `flex:"symbol"`
	Description               string           `flex:"description"`
	Conid                     string           `flex:"conid"`
	SecurityID                string           `flex:"securityID"`
	SecurityIDType            string           `flex:"securityIDType"`
	CUSIP                     string           `flex:"cusip"`
	ISIN                      string           `flex:"isin"`
	ListingExchange           string           `flex:"listingExchange"`
	UnderlyingConid           string           `flex:"underlyingConid"`
	UnderlyingSecurityID      string           `flex:"underlyingSecurityID"`
	UnderlyingSymbol          string           `flex:"underlyingSymbol"`
	UnderlyingListingExchange string           `flex:"underlyingListingExchange"`
	Issuer                    string           `flex:"issuer"`
	Multiplier                *decimal.Decimal `flex:"multiplier"`
	Strike                    *decimal.Decimal `flex:"strike"`
	Expiry                    *Date            `flex:"expiry"`
	PutCall                   PutCall          `flex:"putCall"`
	PrincipalAdjustFactor     *decimal.Decimal `flex:"principalAdjustFactor"`
	Date                      *DateTime        `flex:"date"`
	TaxDescription            string           `flex:"taxDescription"`
	Quantity                  *decimal.Decimal `flex:"quantity"`
	ReportDate                *Date            `flex:"reportDate"`
	TaxAmount                 *decimal.Decimal `flex:"taxAmount"`
	TradeID                   string           `flex:"tradeId"`
	TradePrice                *decimal.Decimal `flex:"tradePrice"`
	Source                    string           `flex:"source"`
	Code                      []Code           `flex:"code"`
	LevelOfDetail             string           `flex:"levelOfDetail"`
	Extras                    Extras           `flex:"-"`
}

type SalesTax struct {
	AccountID                 string           `flex:"accountId"`
	AcctAlias                 string           `flex:"acctAlias"`
	Model                     string           `flex:"model"`
	Currency                  string           `flex:"currency"`
	FXRateToBase              *decimal.Decimal `flex:"fxRateToBase"`
	AssetCategory             AssetClass       `flex:"assetCategory"`
	Symbol                    string           `flex:"symbol"`
	Description               string           `flex:"description"`
	Conid                     string           `flex:"conid"`
	SecurityID                string           `flex:"securityID"`
	SecurityIDType            string           `flex:"securityIDType"`
	CUSIP                     string           `flex:"cusip"`
	ISIN                      string           `flex:"isin"`
	ListingExchange           string           `flex:"listingExchange"`
	UnderlyingConid           string           `flex:"underlyingConid"`
	UnderlyingSecurityID      string           `flex:"underlyingSecurityID"`
	UnderlyingSymbol          string           `flex:"underlyingSymbol"`
	UnderlyingListingExchange string           `flex:"underlyingListingExchange"`
	Issuer                    string           `flex:"issuer"`
	Multiplier                *decimal.Decimal `flex:"multiplier"`
	Strike                    *decimal.Decimal `flex:"strike"`
	Expiry                    *Date            `flex:"expiry"`
	PutCall                   PutCall          `flex:"putCall"`
	PrincipalAdjustFactor     *decimal.Decimal `flex:"principalAdjustFactor"`
	Date                      *Date            `flex:"date"`
	Country                   string           `flex:"country"`
	TaxType                   string           `flex:"taxType"`
	Payer                     string           `flex:"payer"`
	TaxableDescription        string           `flex:"taxableDescription"`
	TaxableAmount             *decimal.Decimal `flex:"taxableAmount"`
	TaxRate                   *decimal.Decimal `flex:"taxRate"`
	SalesTax                  *decimal.Decimal `flex:"salesTax"`
	TaxableTransactionID      string           `flex:"taxableTransactionID"`
	TransactionID             string           `flex:"transactionID"`
	Code                      []Code           `flex:"code"`
	Extras                    Extras           `flex:"-"`
}

