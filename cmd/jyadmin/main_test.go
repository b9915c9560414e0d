package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectCustomerArgs(t *testing.T) {
	t.Parallel()

	const id = "64b1f0aa9cde1234567890ab"

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"jyadmin"},
			want: []string{"jyadmin"},
		},
		{
			name: "direct id first token",
			in:   []string{"jyadmin", id},
			want: []string{"jyadmin", "customers", "show", id},
		},
		{
			name: "direct id after value flag",
			in:   []string{"jyadmin", "--format", "json", id},
			want: []string{"jyadmin", "--format", "json", "customers", "show", id},
		},
		{
			name: "direct id after equals flag",
			in:   []string{"jyadmin", "--format=json", id},
			want: []string{"jyadmin", "--format=json", "customers", "show", id},
		},
		{
			name: "direct id after bool flag",
			in:   []string{"jyadmin", "--pretty", id},
			want: []string{"jyadmin", "--pretty", "customers", "show", id},
		},
		{
			name: "direct id after double dash",
			in:   []string{"jyadmin", "--format", "json", "--", id},
			want: []string{"jyadmin", "--format", "json", "--", "customers", "show", id},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"jyadmin", "customers", "show", id},
			want: []string{"jyadmin", "customers", "show", id},
		},
		{
			name: "short token not rewritten",
			in:   []string{"jyadmin", "login"},
			want: []string{"jyadmin", "login"},
		},
		{
			name: "non-hex token of right length not rewritten",
			in:   []string{"jyadmin", "zzzzzzzzzzzzzzzzzzzzzzzz"},
			want: []string{"jyadmin", "zzzzzzzzzzzzzzzzzzzzzzzz"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectCustomerArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectCustomerArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
