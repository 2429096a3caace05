package fixedstr

import (
	"hash/maphash"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/fixedstr/internal/common"
)

func TestHash(t *testing.T) {
	a := Lit("123")
	b := Lit("124")
	require.Equal(t, xxhash.Sum64String("123"), a.Hash())
	require.NotEqual(t, xxhash.Sum64String("123"), b.Hash())
	require.Equal(t, a.View().Hash(), a.Hash())
	require.Equal(t, ViewString("123").Hash(), a.Hash())
}

func TestHashWideUnits(t *testing.T) {
	units := []uint16{'1', '2', '3'}
	s := FromContainer[uint16](3, units)
	require.Equal(t, xxhash.Sum64(common.UnitBytes(units)), s.Hash())
	require.Equal(t, MakeView(units).Hash(), s.Hash())

	w := FromContainer[WChar](3, []rune("123"))
	require.Equal(t, w.View().Hash(), w.Hash())
	require.NotEqual(t, w.Hash(), Lit("123").Hash())
}

func TestMapHash(t *testing.T) {
	seed := maphash.MakeSeed()
	require.Equal(t, maphash.String(seed, "123"), Lit("123").MapHash(seed))
	require.NotEqual(t, maphash.String(seed, "123"), Lit("124").MapHash(seed))
}

func TestKey(t *testing.T) {
	seen := map[string]int{}
	for _, s := range []String{Lit("a"), Of[byte]('a'), Lit("b"), Lit("")} {
		seen[s.Key()]++
	}
	require.Equal(t, map[string]int{"a": 2, "b": 1, "": 1}, seen)

	x := FromContainer[uint16](1, []uint16{0x0102})
	y := FromContainer[uint16](1, []uint16{0x0201})
	require.NotEqual(t, x.Key(), y.Key())
}
