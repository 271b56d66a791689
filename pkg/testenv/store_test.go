package testenv_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/getoutreach/testharness/pkg/testenv"
)

type storeSuite struct{}

func (storeSuite) TestParseEnviron(t *testing.T) {
	store := testenv.ParseEnviron([]string{"A=1", "B=x=y", "EMPTY=", "garbage", "=nokey"})
	assert.DeepEqual(t, store.Snapshot(), map[string]string{"A": "1", "B": "x=y", "EMPTY": ""})
}

func (storeSuite) TestEmptyValueCountsAsSet(t *testing.T) {
	store := testenv.NewMapStore(map[string]string{testenv.UseNetwork: ""})
	applied, err := testenv.Apply(store, []testenv.Default{{Key: testenv.UseNetwork, Value: "false"}})
	assert.NilError(t, err)
	assert.Equal(t, len(applied), 0)

	v, ok := store.Lookup(testenv.UseNetwork)
	assert.Assert(t, ok)
	assert.Equal(t, v, "")
}

func (storeSuite) TestMapStoreCopiesSeed(t *testing.T) {
	seed := map[string]string{"A": "1"}
	store := testenv.NewMapStore(seed)
	assert.NilError(t, store.Set("A", "2"))
	assert.Equal(t, seed["A"], "1")

	snap := store.Snapshot()
	snap["A"] = "3"
	v, _ := store.Lookup("A")
	assert.Equal(t, v, "2")
}

func (storeSuite) TestSetRejectsEmptyKey(t *testing.T) {
	assert.ErrorContains(t, testenv.NewMapStore(nil).Set("", "v"), "empty key")
}

func (storeSuite) TestEnviron(t *testing.T) {
	t.Setenv("TESTHARNESS_STORE_PROBE", "")
	store := testenv.Environ()
	assert.NilError(t, store.Set("TESTHARNESS_STORE_PROBE", "on"))

	v, ok := store.Lookup("TESTHARNESS_STORE_PROBE")
	assert.Assert(t, ok)
	assert.Equal(t, v, "on")
}
