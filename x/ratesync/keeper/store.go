package keeper

import (
	"strconv"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
)

func prefixIterator(store storetypes.KVStore, prefix []byte) storetypes.Iterator {
	return storetypes.KVStorePrefixIterator(store, prefix)
}

func fmtUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func boolString(b bool) string {
	return strconv.FormatBool(b)
}

func decToFloat(d math.LegacyDec) float64 {
	f, err := d.Float64()
	if err != nil {
		return 0
	}
	return f
}
