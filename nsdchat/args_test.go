package nsdchat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want []string
	}{
		{
			name: "plain strings",
			args: []any{"Job", "names"},
			want: []string{"Job", "names"},
		},
		{
			name: "nil dropped",
			args: []any{"Job", "completed", nil},
			want: []string{"Job", "completed"},
		},
		{
			name: "empty string dropped",
			args: []any{"Device", "dev1", "cleaning", ""},
			want: []string{"Device", "dev1", "cleaning"},
		},
		{
			name: "nested list flattened in order",
			args: []any{"a", []any{"b", "c"}, nil, "d"},
			want: []string{"a", "b", "c", "d"},
		},
		{
			name: "deeply nested",
			args: []any{"Pool", "create", "p1", []any{"usage", []any{"Archive"}, "mediatype", "TAPE"}},
			want: []string{"Pool", "create", "p1", "usage", "Archive", "mediatype", "TAPE"},
		},
		{
			name: "string slice",
			args: []any{"Volume", "v1", "inventory", "out.txt", []string{"size:", "btime:"}},
			want: []string{"Volume", "v1", "inventory", "out.txt", "size:", "btime:"},
		},
		{
			name: "integers formatted, zero dropped",
			args: []any{"Job", "completed", 7, 0},
			want: []string{"Job", "completed", "7"},
		},
		{
			name: "bools",
			args: []any{"flag", true, false},
			want: []string{"flag", "1"},
		},
		{
			name: "string zero kept",
			args: []any{"cleaning", "0"},
			want: []string{"cleaning", "0"},
		},
		{
			name: "empty input",
			args: nil,
			want: []string{},
		},
		{
			name: "only droppable entries",
			args: []any{nil, "", 0, []any{}},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Flatten(tt.args...))
		})
	}
}

func TestFlattenStringer(t *testing.T) {
	res := NewResource("job.42", nil)
	got := Flatten("Job", res, "status")
	assert.Equal(t, []string{"Job", "job.42", "status"}, got)

	// A resource with an empty name contributes nothing.
	got = Flatten("Job", NewResource("", nil), "status")
	assert.Equal(t, []string{"Job", "status"}, got)
}
