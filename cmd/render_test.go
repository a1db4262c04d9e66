package cmd

import (
	"testing"

	"github.com/calderov/miniray/types"
)

func TestParseVec3(t *testing.T) {
	type spec struct {
		arg    string
		exp    types.Vec3
		expErr bool
	}
	specs := []spec{
		{"0,0,0", types.XYZ(0, 0, 0), false},
		{"1,-2,3.5", types.XYZ(1, -2, 3.5), false},
		{" 1 , 2 , 3 ", types.XYZ(1, 2, 3), false},
		{"1,2", types.Vec3{}, true},
		{"1,2,3,4", types.Vec3{}, true},
		{"a,b,c", types.Vec3{}, true},
		{"", types.Vec3{}, true},
	}

	for index, s := range specs {
		got, err := parseVec3(s.arg)
		if s.expErr {
			if err == nil {
				t.Fatalf("[spec %d] expected parse error for %q", index, s.arg)
			}
			continue
		}
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", index, err)
		}
		if got != s.exp {
			t.Fatalf("[spec %d] expected %v; got %v", index, s.exp, got)
		}
	}
}
