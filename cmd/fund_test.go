package cmd

import (
	"reflect"
	"testing"
)

func TestSplitInvestors(t *testing.T) {
	testCases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"Acme Ventures", []string{"Acme Ventures"}},
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ", []string{"a", "b"}},
		{",,a,", []string{"a"}},
	}
	for _, tc := range testCases {
		if got := splitInvestors(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitInvestors(%q) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}
