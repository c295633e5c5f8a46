package clip

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "curve", want: KindCurve},
		{in: "", want: KindCurve},
		{in: "reference", want: KindReference},
		{in: "sprite", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestKindStringRoundTrip(t *testing.T) {
	for _, k := range []Kind{KindCurve, KindReference} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, err, k)
		}
	}
	if got := Kind(7).String(); got != "kind(7)" {
		t.Errorf("Kind(7).String() = %q, want %q", got, "kind(7)")
	}
}

func TestPropertyKeyString(t *testing.T) {
	if got := (PropertyKey{Component: "Transform", Property: "m_LocalPosition.x"}).String(); got != "Transform.m_LocalPosition.x" {
		t.Errorf("String() = %q", got)
	}
	if got := (PropertyKey{Property: "weight"}).String(); got != "weight" {
		t.Errorf("String() = %q, want %q", got, "weight")
	}
}

func TestCollectionTracksIsCopy(t *testing.T) {
	c := NewCollection("walk",
		NewCurveTrack("Root/Arm", PropertyKey{Component: "Transform", Property: "x"}),
		NewReferenceTrack("Root/Leg", PropertyKey{Component: "SpriteRenderer", Property: "m_Sprite"}),
	)

	tracks := c.Tracks()
	tracks[0].Path = "changed"

	if diff := cmp.Diff([]string{"Root/Arm", "Root/Leg"}, c.Paths()); diff != "" {
		t.Errorf("Paths() mismatch after mutating copy (-want +got):\n%s", diff)
	}
}

func TestCollectionRewrite(t *testing.T) {
	c := NewCollection("walk", NewCurveTrack("A", PropertyKey{Property: "x"}))
	replacement := []Track{
		NewCurveTrack("B", PropertyKey{Property: "x"}),
		NewCurveTrack("C", PropertyKey{Property: "y"}),
	}
	if err := c.Rewrite(replacement); err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	replacement[0].Path = "Z"

	if diff := cmp.Diff([]string{"B", "C"}, c.Paths()); diff != "" {
		t.Errorf("Paths() mismatch (-want +got):\n%s", diff)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}
