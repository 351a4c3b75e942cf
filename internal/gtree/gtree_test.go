package gtree_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo-core/internal/gtree"
)

func TestInsertGetInOrder(t *testing.T) {
	tr := gtree.New[int, string]()
	keys := []int{5, 3, 8, 1, 4, 7, 9, 2, 6, 0}
	for _, k := range keys {
		tr.Insert(k, "v")
	}
	require.Equal(t, len(keys), tr.Len())

	var got []int
	tr.InOrder(func(k int, _ string) bool {
		got = append(got, k)
		return true
	})
	sorted := append([]int(nil), keys...)
	sort.Ints(sorted)
	require.Equal(t, sorted, got)
}

func TestInsertReplaceDoesNotGrow(t *testing.T) {
	tr := gtree.New[int, int]()
	tr.Insert(1, 10)
	tr.Insert(1, 20)
	require.Equal(t, 1, tr.Len())
	v, ok := tr.Get(1)
	require.True(t, ok)
	require.Equal(t, 20, v)
}

func TestDelete(t *testing.T) {
	tr := gtree.New[int, int]()
	for i := 0; i < 20; i++ {
		tr.Insert(i, i*i)
	}
	for i := 0; i < 20; i += 2 {
		require.True(t, tr.Delete(i))
	}
	require.Equal(t, 10, tr.Len())
	for i := 0; i < 20; i++ {
		v, ok := tr.Get(i)
		if i%2 == 0 {
			require.False(t, ok)
		} else {
			require.True(t, ok)
			require.Equal(t, i*i, v)
		}
	}
	require.False(t, tr.Delete(1000))
}

// TestStaysOrderedUnderRandomOps is a randomized check that insert/delete
// never breaks in-order iteration, a stand-in for the AVL balance
// invariant since nothing here exposes subtree heights for direct
// assertion.
func TestStaysOrderedUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tr := gtree.New[int, struct{}]()
	present := map[int]bool{}
	for i := 0; i < 2000; i++ {
		k := rng.Intn(200)
		if rng.Intn(2) == 0 {
			tr.Insert(k, struct{}{})
			present[k] = true
		} else {
			tr.Delete(k)
			delete(present, k)
		}
	}
	var got []int
	tr.InOrder(func(k int, _ struct{}) bool {
		got = append(got, k)
		return true
	})
	require.True(t, sort.IntsAreSorted(got))
	require.Equal(t, len(present), len(got))
}
