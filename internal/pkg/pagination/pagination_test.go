package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromRequestDefaultsAndClamps(t *testing.T) {
	page := FromRequest("", "")
	require.Equal(t, 1, page.Page)
	require.Equal(t, 10, page.Limit)

	page = FromRequest("0", "-5")
	require.Equal(t, 1, page.Page)
	require.Equal(t, 10, page.Limit)

	page = FromRequest("3", "500")
	require.Equal(t, 3, page.Page)
	require.Equal(t, 100, page.Limit)

	page = FromRequest("garbage", "garbage")
	require.Equal(t, 1, page.Page)
	require.Equal(t, 10, page.Limit)
}

func TestOffset(t *testing.T) {
	require.Equal(t, 0, FromRequest("1", "10").Offset())
	require.Equal(t, 40, FromRequest("3", "20").Offset())
}
