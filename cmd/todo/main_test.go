package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectDoneArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"todo"},
			want: []string{"todo"},
		},
		{
			name: "number first token",
			in:   []string{"todo", "9"},
			want: []string{"todo", "done", "9"},
		},
		{
			name: "several numbers",
			in:   []string{"todo", "9", "11"},
			want: []string{"todo", "done", "9", "11"},
		},
		{
			name: "number after value flag",
			in:   []string{"todo", "--list", "work", "9"},
			want: []string{"todo", "--list", "work", "done", "9"},
		},
		{
			name: "number after equals flag",
			in:   []string{"todo", "--list=work", "9"},
			want: []string{"todo", "--list=work", "done", "9"},
		},
		{
			name: "number after bool flag",
			in:   []string{"todo", "--pretty", "9"},
			want: []string{"todo", "--pretty", "done", "9"},
		},
		{
			name: "number after double dash",
			in:   []string{"todo", "--list", "work", "--", "9"},
			want: []string{"todo", "--list", "work", "--", "done", "9"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"todo", "done", "9"},
			want: []string{"todo", "done", "9"},
		},
		{
			name: "text not rewritten",
			in:   []string{"todo", "add", "call plumber"},
			want: []string{"todo", "add", "call plumber"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectDoneArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}
