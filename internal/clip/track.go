package clip

import "fmt"

// Kind tells which animation payload a track carries. It is decided once when
// the track is created and never probed again.
type Kind int

const (
	// KindCurve tracks animate a float property with a continuous curve.
	KindCurve Kind = iota
	// KindReference tracks swap object references at discrete keyframes.
	KindReference
)

// String returns the lower-case name used in clip documents.
func (k Kind) String() string {
	switch k {
	case KindCurve:
		return "curve"
	case KindReference:
		return "reference"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts a clip document kind name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "curve", "":
		return KindCurve, nil
	case "reference":
		return KindReference, nil
	default:
		return 0, fmt.Errorf("unknown track kind %q", s)
	}
}

// PropertyKey identifies which component property a track animates.
type PropertyKey struct {
	Component string
	Property  string
}

func (p PropertyKey) String() string {
	if p.Component == "" {
		return p.Property
	}
	return p.Component + "." + p.Property
}

// Keyframe is a single sample on a curve.
type Keyframe struct {
	Time       float64
	Value      float64
	InTangent  float64
	OutTangent float64
}

// Curve is the payload of a KindCurve track.
type Curve struct {
	Keys []Keyframe
}

// ReferenceKeyframe points the bound property at an object from Time onwards.
type ReferenceKeyframe struct {
	Time float64
	Ref  string
}

// Payload is the animation data of a track. Only the field matching the
// track's Kind is populated. The remapping engine relocates payloads without
// reading them.
type Payload struct {
	Curve      *Curve
	References []ReferenceKeyframe
}

// Track binds one animated property at Path to its payload. Path is slash
// separated and relative to the animated root; the root itself is "".
type Track struct {
	Path     string
	Property PropertyKey
	Kind     Kind
	Payload  Payload
}

// NewCurveTrack creates a curve track at path.
func NewCurveTrack(path string, key PropertyKey, keys ...Keyframe) Track {
	return Track{
		Path:     path,
		Property: key,
		Kind:     KindCurve,
		Payload:  Payload{Curve: &Curve{Keys: keys}},
	}
}

// NewReferenceTrack creates an object reference track at path.
func NewReferenceTrack(path string, key PropertyKey, keys ...ReferenceKeyframe) Track {
	return Track{
		Path:     path,
		Property: key,
		Kind:     KindReference,
		Payload:  Payload{References: keys},
	}
}
