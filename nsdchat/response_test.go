package nsdchat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingleValue(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{name: "empty", tokens: nil, want: ""},
		{name: "one token", tokens: []string{"x"}, want: "x"},
		{name: "joined with spaces", tokens: []string{"x", "y"}, want: "x y"},
		{name: "label with spaces", tokens: []string{"Archive", "No", "0001"}, want: "Archive No 0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SingleValue(tt.tokens))
		})
	}
}

func TestIsSentinel(t *testing.T) {
	assert.True(t, IsSentinel("<empty>"))
	assert.True(t, IsSentinel("unknown"))
	assert.False(t, IsSentinel("vol001"))
	assert.False(t, IsSentinel(""))
}

func TestResources(t *testing.T) {
	conn, _ := testConn(&mockRunner{})

	t.Run("empty sentinel yields no handles", func(t *testing.T) {
		assert.Empty(t, Resources([]string{"<empty>"}, conn))
	})

	t.Run("unknown sentinel yields no handles", func(t *testing.T) {
		assert.Empty(t, Resources([]string{"unknown"}, conn))
	})

	t.Run("names bound to connection", func(t *testing.T) {
		got := Resources([]string{"r1", "r2"}, conn)
		assert.Len(t, got, 2)
		assert.Equal(t, "r1", got[0].Name())
		assert.Equal(t, "r2", got[1].Name())
		assert.Same(t, conn, got[0].Connection())
		assert.Same(t, conn, got[1].Connection())
	})

	t.Run("sentinels mixed with names are skipped", func(t *testing.T) {
		got := Resources([]string{"r1", "<empty>", "r2", "unknown"}, conn)
		assert.Len(t, got, 2)
	})
}

func TestResourceEquality(t *testing.T) {
	connA, _ := testConn(&mockRunner{})
	connB, _ := testConn(&mockRunner{})

	a := NewResource("vol001", connA)
	assert.True(t, a.Equal(NewResource("vol001", connA)))
	assert.False(t, a.Equal(NewResource("vol002", connA)))
	assert.False(t, a.Equal(NewResource("vol001", connB)))

	assert.True(t, a.Is("vol001"))
	assert.False(t, a.Is("vol002"))
	assert.Equal(t, "vol001", a.String())
}
