package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Genuine(t *testing.T) {
	in, ok := Lookup("genuine")
	require.True(t, ok)
	assert.Equal(t, 25.50, in.Amount)
	assert.Equal(t, 1000.0, in.Time)
	assert.Equal(t, 0.1, in.Features[0])
	assert.Equal(t, -0.2, in.Features[1])
	for i := 2; i < len(in.Features); i++ {
		assert.Zerof(t, in.Features[i], "F%d", i+1)
	}
}

func TestLookup_Suspicious(t *testing.T) {
	in, ok := Lookup("suspicious")
	require.True(t, ok)
	assert.Equal(t, 2500.0, in.Amount)
	assert.Equal(t, 5000.0, in.Time)
	assert.Equal(t, 2.5, in.Features[0])
	assert.Equal(t, 3.1, in.Features[1])
}

func TestLookup_Unknown(t *testing.T) {
	in, ok := Lookup("doesnotexist")
	assert.False(t, ok)
	assert.Zero(t, in)
}

func TestNames_AtLeastThree(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{"genuine", "suspicious", "medium"}, names)
	for _, n := range names {
		_, ok := Lookup(n)
		assert.Truef(t, ok, "preset %q listed but not found", n)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Input.Amount = -1

	in, _ := Lookup(all[0].Name)
	assert.Equal(t, 25.50, in.Amount)
}
