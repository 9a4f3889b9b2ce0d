package searcher

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToDot(t *testing.T) {
	root := NewNode("root")
	root.Add("left").Add("leaf")
	root.Add("right")

	dot, err := ToDot(root, func(s string) string { return s })

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(dot, "digraph G"))
	for _, label := range []string{"root", "left", "right", "leaf"} {
		require.Contains(t, dot, label)
	}
	for i := 0; i < 4; i++ {
		require.Contains(t, dot, fmt.Sprintf("n%d", i))
	}
}
