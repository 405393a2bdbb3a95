package elbow

import (
	"encoding/json"
	"testing"

	errs "github.com/matzehuels/elbow/pkg/errors"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		want    Direction
		wantErr bool
	}{
		{"", None, false},
		{"none", None, false},
		{"x+", XPos, false},
		{"x-", XNeg, false},
		{"Y+", YPos, false},
		{" y- ", YNeg, false},
		{"z+", None, true},
		{"x", None, true},
		{"+x", None, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirection(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errs.Is(err, errs.ErrCodeInvalidDirection) {
				t.Errorf("ParseDirection(%q) code = %s, want %s", tt.input, errs.GetCode(err), errs.ErrCodeInvalidDirection)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, got)
		}
		if d != None && d.Opposite() == d {
			t.Errorf("%v.Opposite() = %v", d, d)
		}
		if u, o := d.unit(), d.Opposite().unit(); u.X != -o.X || u.Y != -o.Y {
			t.Errorf("%v unit %v is not the negation of %v", d, u, o)
		}
	}
}

func TestAnchorJSON(t *testing.T) {
	tests := []struct {
		name string
		a    Anchor
		want string
	}{
		{"facing", NewAnchor(1, 2.5, XNeg), `{"x":1,"y":2.5,"facingDirection":"x-"}`},
		{"unconstrained", NewAnchor(-3, 0, None), `{"x":-3,"y":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.a)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.want {
				t.Errorf("json.Marshal(%v) = %s, want %s", tt.a, data, tt.want)
			}

			var back Anchor
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatal(err)
			}
			if back != tt.a {
				t.Errorf("json.Unmarshal(%s) = %v, want %v", data, back, tt.a)
			}
		})
	}
}

func TestAnchorJSONInvalidDirection(t *testing.T) {
	var a Anchor
	err := json.Unmarshal([]byte(`{"x":0,"y":0,"facingDirection":"up"}`), &a)
	if err == nil {
		t.Fatal("json.Unmarshal() error = nil, want invalid direction")
	}
	if !errs.Is(err, errs.ErrCodeInvalidDirection) {
		t.Errorf("json.Unmarshal() code = %s, want %s", errs.GetCode(err), errs.ErrCodeInvalidDirection)
	}
}

func TestAnchorApproach(t *testing.T) {
	tests := []struct {
		a    Anchor
		c    float64
		want Point
	}{
		{NewAnchor(300, 200, YPos), 50, Pt(300, 250)},
		{NewAnchor(200, 300, YNeg), 50, Pt(200, 250)},
		{NewAnchor(3, 2, XNeg), 0.3, Pt(2.7, 2)},
		{NewAnchor(3, 2, None), 10, Pt(3, 2)},
	}
	for _, tt := range tests {
		if got := tt.a.approach(tt.c); got != tt.want {
			t.Errorf("%v.approach(%g) = %v, want %v", tt.a, tt.c, got, tt.want)
		}
	}
}
