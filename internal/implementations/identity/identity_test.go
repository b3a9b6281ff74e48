package identity

import (
	"billmind/internal/core/domain/user"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUserID(t *testing.T) {
	cases := []struct {
		id       string
		raw      string
		expected user.ID
	}{
		{id: "explicit", raw: "user-123", expected: user.ID("user-123")},
		{id: "empty-falls-back-to-guest", raw: "", expected: user.Guest},
		{id: "whitespace-falls-back-to-guest", raw: "   ", expected: user.Guest},
		{id: "surrounding-spaces-trimmed", raw: " user-123 ", expected: user.ID("user-123")},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			resolved, err := NewStaticResolver().ResolveUserID(context.Background(), testcase.raw)
			require.NoError(t, err)
			assert.Equal(t, testcase.expected, resolved)
		})
	}
}
