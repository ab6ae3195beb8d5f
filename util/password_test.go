package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hashed)

	assert.True(t, ComparePassword(hashed, "s3cret"))
	assert.False(t, ComparePassword(hashed, "wrong"))
	assert.False(t, ComparePassword("not-a-hash", "s3cret"))
}

func TestRandomProfilePicIsFromStockSet(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.True(t, strings.HasPrefix(RandomProfilePic(), "/uploads/defaults/"))
	}
}

func TestRandomDisplayNameKeepsUsername(t *testing.T) {
	name := RandomDisplayName("gopher")
	assert.True(t, strings.HasPrefix(name, "gopher-"))
	assert.Len(t, name, len("gopher-")+4)
}
