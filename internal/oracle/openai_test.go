// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package oracle

import (
	"reflect"
	"testing"
)

func TestParseSynonyms(t *testing.T) {
	tests := []struct {
		name string
		resp string
		want []string
	}{
		{name: "three entries", resp: "thịt lợn, heo, lợn", want: []string{"thịt lợn", "heo", "lợn"}},
		{name: "extras truncated", resp: "a, b, c, d, e", want: []string{"a", "b", "c"}},
		{name: "fewer than three", resp: "ngô", want: []string{"ngô"}},
		{name: "blank entries dropped", resp: "cà, , quả cà chua", want: []string{"cà", "quả cà chua"}},
		{name: "empty response", resp: "", want: nil},
		{name: "whitespace trimmed", resp: "  cà ,tomato ", want: []string{"cà", "tomato"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseSynonyms(tt.resp); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseSynonyms(%q) = %v, want %v", tt.resp, got, tt.want)
			}
		})
	}
}
