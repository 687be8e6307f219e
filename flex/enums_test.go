package flex

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownMembers(t *testing.T) {
	t.Parallel()

	assert.True(t, CashActionDividend.Known())
	assert.True(t, CodeOpening.Known())
	assert.True(t, AssetClassStock.Known())
	assert.True(t, BuySellCancelBuy.Known())
	assert.True(t, ReorgMerger.Known())
	assert.True(t, Put.Known())
}

func TestUnknownValuesPreserved(t *testing.T) {
	t.Parallel()

	v := AssetClass("NEWKIND")
	assert.Equal(t, "NEWKIND", string(v))
	assert.False(t, v.Known())

	assert.False(t, Code("QZ").Known())
	assert.False(t, CashAction("").Known())
}

func TestIsEnum(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEnum(reflect.TypeOf(BuySell(""))))
	assert.True(t, IsEnum(reflect.TypeOf(Code(""))))
	assert.False(t, IsEnum(reflect.TypeOf("")))
}

func TestCanonicalEnumAliases(t *testing.T) {
	t.Parallel()

	cashType := reflect.TypeOf(CashAction(""))
	assert.Equal(t, string(CashActionDepositWithdraw),
		CanonicalEnum(cashType, "Deposits/Withdrawals"))
	assert.Equal(t, "Dividends", CanonicalEnum(cashType, "Dividends"))

	xferType := reflect.TypeOf(TransferType(""))
	assert.Equal(t, string(TransferTypeACATS), CanonicalEnum(xferType, "ACAT"))
}
