package keeper_test

import (
	"errors"
	"testing"
	"time"

	"cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	keepertest "github.com/ratesync-network/ratesync/testutil/keeper"
	"github.com/ratesync-network/ratesync/x/poolsync/keeper"
	"github.com/ratesync-network/ratesync/x/poolsync/types"
)

const uatomHash = "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2"

var (
	owner    = keepertest.TestAddr("owner")
	stranger = keepertest.TestAddr("stranger")
)

type KeeperTestSuite struct {
	suite.Suite
	f  keepertest.PoolsyncFixture
	ms types.MsgServer
	qs types.QueryServer
}

func (suite *KeeperTestSuite) SetupTest() {
	suite.f = keepertest.PoolsyncKeeper(suite.T(), owner)
	suite.ms = keeper.NewMsgServerImpl(*suite.f.Keeper)
	suite.qs = keeper.NewQueryServerImpl(*suite.f.Keeper)
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (suite *KeeperTestSuite) controller() string {
	return suite.f.Keeper.ModuleAddress().String()
}

func (suite *KeeperTestSuite) addPoolMsg(poolID uint64, ordering types.AssetOrdering) *types.MsgAddPool {
	return &types.MsgAddPool{
		Sender:            owner.String(),
		PoolID:            poolID,
		StkTokenDenom:     "uatom",
		TransferPortID:    "transfer",
		TransferChannelID: "channel-0",
		AssetOrdering:     ordering,
	}
}

func (suite *KeeperTestSuite) TestAddPool() {
	suite.f.AMM.AddPool(1, suite.controller(), uatomHash, "uosmo")

	resp, err := suite.ms.AddPool(suite.f.Ctx, suite.addPoolMsg(1, types.StkTokenFirst))
	suite.Require().NoError(err)
	suite.Require().Equal(uatomHash, resp.IBCHashStkDenom)

	pool, err := suite.qs.Pool(suite.f.Ctx, &types.QueryPoolRequest{PoolID: 1})
	suite.Require().NoError(err)
	suite.Require().Equal(types.StkTokenFirst, pool.Pool.AssetOrdering)
	suite.Require().Zero(pool.Pool.LastUpdated)

	_, err = suite.ms.AddPool(suite.f.Ctx, suite.addPoolMsg(1, types.StkTokenFirst))
	suite.Require().ErrorIs(err, types.ErrPoolAlreadyExists)
}

func (suite *KeeperTestSuite) TestAddPoolValidatesLivePool() {
	suite.f.AMM.AddPool(1, suite.controller(), "uosmo", uatomHash)
	suite.f.AMM.AddPool(2, suite.controller(), uatomHash, "uosmo", "uion")
	suite.f.AMM.AddPool(3, stranger.String(), uatomHash, "uosmo")

	_, err := suite.ms.AddPool(suite.f.Ctx, suite.addPoolMsg(1, types.StkTokenFirst))
	suite.Require().ErrorIs(err, types.ErrInvalidPoolAssetOrdering)

	_, err = suite.ms.AddPool(suite.f.Ctx, suite.addPoolMsg(2, types.StkTokenFirst))
	suite.Require().ErrorIs(err, types.ErrInvalidNumberOfPoolAssets)

	_, err = suite.ms.AddPool(suite.f.Ctx, suite.addPoolMsg(3, types.StkTokenFirst))
	suite.Require().ErrorIs(err, types.ErrInvalidScalingFactorController)

	_, err = suite.ms.AddPool(suite.f.Ctx, suite.addPoolMsg(4, types.StkTokenFirst))
	suite.Require().ErrorIs(err, types.ErrPoolNotFoundOnAMM)

	msg := suite.addPoolMsg(1, types.NativeTokenFirst)
	msg.Sender = stranger.String()
	_, err = suite.ms.AddPool(suite.f.Ctx, msg)
	suite.Require().ErrorIs(err, sdkerrors.ErrUnauthorized)

	all, err := suite.qs.AllPools(suite.f.Ctx, &types.QueryAllPoolsRequest{})
	suite.Require().NoError(err)
	suite.Require().Empty(all.Pools)
}

func (suite *KeeperTestSuite) TestRemovePool() {
	suite.f.AMM.AddPool(1, suite.controller(), uatomHash, "uosmo")
	_, err := suite.ms.AddPool(suite.f.Ctx, suite.addPoolMsg(1, types.StkTokenFirst))
	suite.Require().NoError(err)

	_, err = suite.ms.RemovePool(suite.f.Ctx, &types.MsgRemovePool{Sender: stranger.String(), PoolID: 1})
	suite.Require().ErrorIs(err, sdkerrors.ErrUnauthorized)

	_, err = suite.ms.RemovePool(suite.f.Ctx, &types.MsgRemovePool{Sender: owner.String(), PoolID: 1})
	suite.Require().NoError(err)

	_, err = suite.ms.RemovePool(suite.f.Ctx, &types.MsgRemovePool{Sender: owner.String(), PoolID: 1})
	suite.Require().ErrorIs(err, types.ErrPoolNotFound)

	_, err = suite.qs.Pool(suite.f.Ctx, &types.QueryPoolRequest{PoolID: 1})
	suite.Require().ErrorIs(err, types.ErrPoolNotFound)
}

func (suite *KeeperTestSuite) TestUpdateScalingFactor() {
	suite.f.AMM.AddPool(1, suite.controller(), "uosmo", uatomHash)
	_, err := suite.ms.AddPool(suite.f.Ctx, suite.addPoolMsg(1, types.NativeTokenFirst))
	suite.Require().NoError(err)

	// no rate submitted yet
	_, err = suite.ms.UpdateScalingFactor(suite.f.Ctx, &types.MsgUpdateScalingFactor{Sender: stranger.String(), PoolID: 1})
	suite.Require().ErrorIs(err, types.ErrUnableToQueryRedemptionRate)

	_, err = suite.f.Ratesync.SubmitRedemptionRate(suite.f.Ctx, owner.String(), "uatom", "uatom", math.LegacyMustNewDecFromStr("0.9837"), 1)
	suite.Require().NoError(err)

	blockTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := suite.f.Ctx.WithBlockTime(blockTime)

	// permissionless
	resp, err := suite.ms.UpdateScalingFactor(ctx, &types.MsgUpdateScalingFactor{Sender: stranger.String(), PoolID: 1})
	suite.Require().NoError(err)
	suite.Require().Equal([]uint64{98370, 100000}, resp.ScalingFactors)

	suite.Require().Equal([]uint64{98370, 100000}, suite.f.AMM.Pools[1].ScalingFactors)
	suite.Require().Len(suite.f.AMM.Adjustments, 1)
	suite.Require().Equal(suite.controller(), suite.f.AMM.Adjustments[0].Sender)

	pool, err := suite.f.Keeper.GetPool(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(blockTime.Unix()), pool.LastUpdated)

	_, err = suite.ms.UpdateScalingFactor(ctx, &types.MsgUpdateScalingFactor{Sender: stranger.String(), PoolID: 9})
	suite.Require().ErrorIs(err, types.ErrPoolNotFound)
}

func (suite *KeeperTestSuite) TestUpdateScalingFactorAMMFailureKeepsPool() {
	suite.f.AMM.AddPool(1, suite.controller(), uatomHash, "uosmo")
	_, err := suite.ms.AddPool(suite.f.Ctx, suite.addPoolMsg(1, types.StkTokenFirst))
	suite.Require().NoError(err)
	_, err = suite.f.Ratesync.SubmitRedemptionRate(suite.f.Ctx, owner.String(), "uatom", "uatom", math.LegacyMustNewDecFromStr("1.25"), 1)
	suite.Require().NoError(err)

	suite.f.AMM.Err = errors.New("pool frozen")
	_, err = suite.f.Keeper.UpdateScalingFactor(suite.f.Ctx, 1)
	suite.Require().Error(err)

	pool, err := suite.f.Keeper.GetPool(suite.f.Ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Zero(pool.LastUpdated)

	suite.f.AMM.Err = nil
	factors, err := suite.f.Keeper.UpdateScalingFactor(suite.f.Ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Equal([2]uint64{100000, 125000}, factors)
}

func (suite *KeeperTestSuite) TestSudoAdjustScalingFactors() {
	suite.f.AMM.AddPool(1, suite.controller(), uatomHash, "uosmo")

	_, err := suite.ms.SudoAdjustScalingFactors(suite.f.Ctx, &types.MsgSudoAdjustScalingFactors{
		Sender: stranger.String(), PoolID: 1, ScalingFactors: []uint64{1, 2},
	})
	suite.Require().ErrorIs(err, sdkerrors.ErrUnauthorized)

	_, err = suite.ms.SudoAdjustScalingFactors(suite.f.Ctx, &types.MsgSudoAdjustScalingFactors{
		Sender: owner.String(), PoolID: 1, ScalingFactors: []uint64{0, 2},
	})
	suite.Require().ErrorIs(err, types.ErrInvalidScalingFactors)

	_, err = suite.ms.SudoAdjustScalingFactors(suite.f.Ctx, &types.MsgSudoAdjustScalingFactors{
		Sender: owner.String(), PoolID: 1, ScalingFactors: []uint64{100000, 110000},
	})
	suite.Require().NoError(err)
	suite.Require().Equal([]uint64{100000, 110000}, suite.f.AMM.Pools[1].ScalingFactors)
}

func (suite *KeeperTestSuite) TestUpdateConfig() {
	_, err := suite.ms.UpdateConfig(suite.f.Ctx, &types.MsgUpdateConfig{Sender: stranger.String(), Owner: stranger.String()})
	suite.Require().ErrorIs(err, sdkerrors.ErrUnauthorized)

	_, err = suite.ms.UpdateConfig(suite.f.Ctx, &types.MsgUpdateConfig{Sender: owner.String(), Owner: stranger.String()})
	suite.Require().NoError(err)

	cfg, err := suite.qs.Config(suite.f.Ctx, &types.QueryConfigRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(stranger.String(), cfg.Config.Owner)

	_, err = suite.ms.Instantiate(suite.f.Ctx, &types.MsgInstantiate{Sender: owner.String()})
	suite.Require().ErrorIs(err, types.ErrAlreadyInstantiated)
}

func (suite *KeeperTestSuite) TestAllPoolsPagination() {
	for id := uint64(1); id <= 5; id++ {
		suite.f.AMM.AddPool(id, suite.controller(), uatomHash, "uosmo")
		_, err := suite.ms.AddPool(suite.f.Ctx, suite.addPoolMsg(id, types.StkTokenFirst))
		suite.Require().NoError(err)
	}

	resp, err := suite.qs.AllPools(suite.f.Ctx, &types.QueryAllPoolsRequest{Pagination: &query.PageRequest{Limit: 2}})
	suite.Require().NoError(err)
	suite.Require().Len(resp.Pools, 2)
	suite.Require().Equal(uint64(1), resp.Pools[0].PoolID)
	suite.Require().NotEmpty(resp.Pagination.NextKey)

	resp, err = suite.qs.AllPools(suite.f.Ctx, &types.QueryAllPoolsRequest{Pagination: &query.PageRequest{Key: resp.Pagination.NextKey, Limit: 10}})
	suite.Require().NoError(err)
	suite.Require().Len(resp.Pools, 3)
	suite.Require().Equal(uint64(5), resp.Pools[2].PoolID)

	_, err = suite.qs.AllPools(suite.f.Ctx, nil)
	suite.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (suite *KeeperTestSuite) TestQueryNilRequests() {
	_, err := suite.qs.Config(suite.f.Ctx, nil)
	suite.Require().Equal(codes.InvalidArgument, status.Code(err))

	_, err = suite.qs.Pool(suite.f.Ctx, nil)
	suite.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (suite *KeeperTestSuite) TestAllPoolsLeavesPageRequestUntouched() {
	suite.f.AMM.AddPool(1, suite.controller(), uatomHash, "uosmo")
	_, err := suite.ms.AddPool(suite.f.Ctx, suite.addPoolMsg(1, types.StkTokenFirst))
	suite.Require().NoError(err)

	pageReq := &query.PageRequest{Limit: 5000}
	resp, err := suite.qs.AllPools(suite.f.Ctx, &types.QueryAllPoolsRequest{Pagination: pageReq})
	suite.Require().NoError(err)
	suite.Require().Len(resp.Pools, 1)
	suite.Require().Equal(uint64(5000), pageReq.Limit)
}

func (suite *KeeperTestSuite) TestOwnerCheckedBeforePayload() {
	suite.f.AMM.AddPool(1, suite.controller(), uatomHash, "uosmo")
	_, err := suite.ms.AddPool(suite.f.Ctx, suite.addPoolMsg(1, types.StkTokenFirst))
	suite.Require().NoError(err)

	badPool := suite.addPoolMsg(2, types.AssetOrdering("first"))
	badPool.Sender = stranger.String()
	_, err = suite.ms.AddPool(suite.f.Ctx, badPool)
	suite.Require().ErrorIs(err, sdkerrors.ErrUnauthorized)

	_, err = suite.ms.SudoAdjustScalingFactors(suite.f.Ctx, &types.MsgSudoAdjustScalingFactors{
		Sender: stranger.String(), PoolID: 1, ScalingFactors: []uint64{0},
	})
	suite.Require().ErrorIs(err, sdkerrors.ErrUnauthorized)

	_, err = suite.ms.UpdateConfig(suite.f.Ctx, &types.MsgUpdateConfig{Sender: stranger.String(), Owner: "not-an-address"})
	suite.Require().ErrorIs(err, sdkerrors.ErrUnauthorized)

	_, err = suite.ms.RemovePool(suite.f.Ctx, &types.MsgRemovePool{Sender: stranger.String(), PoolID: 99})
	suite.Require().ErrorIs(err, sdkerrors.ErrUnauthorized)

	// the owner still sees the payload error
	badPool.Sender = owner.String()
	_, err = suite.ms.AddPool(suite.f.Ctx, badPool)
	suite.Require().ErrorIs(err, types.ErrInvalidAssetOrdering)

	_, err = suite.ms.UpdateConfig(suite.f.Ctx, &types.MsgUpdateConfig{Sender: owner.String(), Owner: "not-an-address"})
	suite.Require().ErrorIs(err, sdkerrors.ErrInvalidAddress)
}

func (suite *KeeperTestSuite) TestGenesisRoundTrip() {
	suite.f.AMM.AddPool(7, suite.controller(), uatomHash, "uosmo")
	_, err := suite.ms.AddPool(suite.f.Ctx, suite.addPoolMsg(7, types.StkTokenFirst))
	suite.Require().NoError(err)

	exported, err := suite.f.Keeper.ExportGenesis(suite.f.Ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(exported.Validate())
	suite.Require().Len(exported.Pools, 1)

	other := keepertest.PoolsyncKeeper(suite.T(), stranger)
	suite.Require().NoError(other.Keeper.InitGenesis(other.Ctx, *exported))

	cfg, err := other.Keeper.GetConfig(other.Ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(owner.String(), cfg.Owner)

	pool, err := other.Keeper.GetPool(other.Ctx, 7)
	suite.Require().NoError(err)
	suite.Require().Equal(uatomHash, pool.IBCHashStkDenom)
}

func TestSanitizePagination(t *testing.T) {
	require.Equal(t, uint64(100), keeper.SanitizePagination(nil).Limit)
	require.Equal(t, uint64(1000), keeper.SanitizePagination(&query.PageRequest{Limit: 5000}).Limit)
	require.Equal(t, uint64(7), keeper.SanitizePagination(&query.PageRequest{Limit: 7}).Limit)

	req := &query.PageRequest{Key: []byte{1}}
	got := keeper.SanitizePagination(req)
	require.Equal(t, uint64(100), got.Limit)
	require.Equal(t, []byte{1}, got.Key)
	require.Zero(t, req.Limit)
}
