package keeper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/helix-dex/helix/x/amm/keeper"
	"github.com/helix-dex/helix/x/amm/types"
)

// MockBankKeeper is an in-memory asset ledger for keeper tests. Module
// accounts are addressed by name through a synthetic balance map entry.
type MockBankKeeper struct {
	balances map[string]sdk.Coins

	// FailTransfers makes every transfer fail, for exercising rollback paths.
	FailTransfers bool

	// FailPayouts makes only module-to-account sends fail, for exercising
	// the abort path after pool state has been written.
	FailPayouts bool
}

// NewMockBankKeeper creates an empty mock ledger.
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

func moduleKey(name string) string { return authtypes.NewModuleAddress(name).String() }

// Fund credits coins to an account.
func (m *MockBankKeeper) Fund(addr sdk.AccAddress, coins sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(coins...)
}

// Balance returns an account's full balance.
func (m *MockBankKeeper) Balance(addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

// ModuleBalance returns a module account's full balance.
func (m *MockBankKeeper) ModuleBalance(name string) sdk.Coins {
	return m.balances[moduleKey(name)]
}

func (m *MockBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.send(senderAddr.String(), moduleKey(recipientModule), amt)
}

func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	if m.FailPayouts {
		return fmt.Errorf("payout failed by test configuration")
	}
	return m.send(moduleKey(senderModule), recipientAddr.String(), amt)
}

func (m *MockBankKeeper) send(from, to string, amt sdk.Coins) error {
	if m.FailTransfers {
		return fmt.Errorf("transfer failed by test configuration")
	}
	balance := m.balances[from]
	newBalance, negative := balance.SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", from, balance, amt)
	}
	m.balances[from] = newBalance
	m.balances[to] = m.balances[to].Add(amt...)
	return nil
}

var _ types.BankKeeper = (*MockBankKeeper)(nil)

// AmmKeeper creates a test keeper for the AMM module backed by an in-memory
// store and a mock bank keeper.
func AmmKeeper(t testing.TB) (*keeper.Keeper, *MockBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	bank := NewMockBankKeeper()
	k := keeper.NewKeeper(cdc, storeKey, bank)

	header := cmtproto.Header{Time: time.Unix(1_700_000_000, 0)}
	ctx := sdk.NewContext(stateStore, header, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, bank, ctx
}
