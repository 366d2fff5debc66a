package cmd

import (
	"fmt"
	"os"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ratesync-network/ratesync/x/ratesync/keeper"
	"github.com/ratesync-network/ratesync/x/ratesync/types"
)

// localChain is a single-node state machine over an on-disk multistore.
// Every tx runs in a cache context and commits a new version on success.
type localChain struct {
	db     dbm.DB
	cms    storetypes.CommitMultiStore
	keeper *keeper.Keeper
	logger log.Logger
	now    func() time.Time
}

func openLocalChain(home string, cfg *Config, logger log.Logger) (*localChain, error) {
	dir := cfg.DataDir(home)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := dbm.NewDB(cfg.DB.Name, cfg.DB.Backend, dir)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	cms.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, nil)
	if err := cms.LoadLatestVersion(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("load store: %w", err)
	}

	return &localChain{
		db:     db,
		cms:    cms,
		keeper: keeper.NewKeeper(storeKey),
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

func (c *localChain) Close() error {
	return c.db.Close()
}

// Height is the last committed version.
func (c *localChain) Height() int64 {
	return c.cms.LastCommitID().Version
}

func (c *localChain) newContext() sdk.Context {
	header := cmtproto.Header{
		ChainID: "ratesync-local",
		Height:  c.Height() + 1,
		Time:    c.now(),
	}
	return sdk.NewContext(c.cms, header, false, c.logger)
}

// Execute runs fn against a cached branch of state. State and a new version
// are committed only if fn succeeds.
func (c *localChain) Execute(fn func(ctx sdk.Context) error) (sdk.Events, error) {
	ctx := c.newContext()
	cacheCtx, write := ctx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return nil, err
	}
	write()

	commitID := c.cms.Commit()
	c.logger.Debug("committed state", "height", commitID.Version, "hash", fmt.Sprintf("%X", commitID.Hash))
	return cacheCtx.EventManager().Events(), nil
}

// Query runs fn against the latest committed state.
func (c *localChain) Query(fn func(ctx sdk.Context) error) error {
	ctx, _ := c.newContext().CacheContext()
	return fn(ctx)
}
