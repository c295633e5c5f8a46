package clipfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Digital-Shane/anim-tidy/internal/clip"
	"github.com/Digital-Shane/anim-tidy/internal/core"
	"github.com/Digital-Shane/anim-tidy/internal/hierarchy"
	"github.com/google/go-cmp/cmp"
)

const walkYAML = `name: walk
tracks:
  - path: Root/Arm
    component: Transform
    property: m_LocalPosition.x
    kind: curve
    keys:
      - {time: 0, value: 1}
      - {time: 0.5, value: 2, in: 0.1, out: -0.1}
  - path: ""
    component: SpriteRenderer
    property: m_Sprite
    kind: reference
    references:
      - {time: 0, ref: idle_01}
  - path: Root/Leg
    property: weight
    keys:
      - {time: 1, value: 0}
`

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader(walkYAML))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := []clip.Track{
		clip.NewCurveTrack("Root/Arm", clip.PropertyKey{Component: "Transform", Property: "m_LocalPosition.x"},
			clip.Keyframe{Time: 0, Value: 1},
			clip.Keyframe{Time: 0.5, Value: 2, InTangent: 0.1, OutTangent: -0.1}),
		clip.NewReferenceTrack("", clip.PropertyKey{Component: "SpriteRenderer", Property: "m_Sprite"},
			clip.ReferenceKeyframe{Time: 0, Ref: "idle_01"}),
		clip.NewCurveTrack("Root/Leg", clip.PropertyKey{Property: "weight"}, clip.Keyframe{Time: 1, Value: 0}),
	}
	if c.Name != "walk" {
		t.Errorf("Name = %q, want walk", c.Name)
	}
	if diff := cmp.Diff(want, c.Tracks()); diff != "" {
		t.Errorf("Tracks() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "empty", doc: "", want: "empty clip document"},
		{name: "bad_yaml", doc: "tracks: [", want: "failed to parse clip"},
		{name: "bad_kind", doc: "tracks:\n  - {path: A, property: x, kind: blend}", want: "unknown track kind"},
		{name: "no_property", doc: "tracks:\n  - {path: A}", want: "missing property"},
		{name: "curve_with_refs", doc: "tracks:\n  - {path: A, property: x, references: [{time: 0, ref: a}]}", want: "has reference keys"},
		{name: "ref_with_keys", doc: "tracks:\n  - {path: A, property: x, kind: reference, keys: [{time: 0, value: 1}]}", want: "has curve keys"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Decode() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestEncodeDecodeKeepsOrder(t *testing.T) {
	c, err := Decode(strings.NewReader(walkYAML))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, c); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	again, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() of encoded clip error = %v", err)
	}
	if diff := cmp.Diff(c.Tracks(), again.Tracks()); diff != "" {
		t.Errorf("Tracks() mismatch (-want +got):\n%s", diff)
	}
}

func TestFileRenameAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walk_cycle.yaml")
	if err := os.WriteFile(path, []byte(strings.Replace(walkYAML, "name: walk\n", "", 1)), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if f.ClipName() != "walk_cycle" {
		t.Errorf("ClipName() = %q, want name from file", f.ClipName())
	}

	if _, err := core.Rename("Root/Arm", "Root/Hand", core.Batch{f}, core.DefaultOptions()); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if err := f.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() after save error = %v", err)
	}
	if diff := cmp.Diff([]string{"Root/Hand", "Root/Leg", ""}, reloaded.Paths()); diff != "" {
		t.Errorf("Paths() after save mismatch (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries after save, want only the clip", len(entries))
	}
}

func TestSaveKeepsFileMode(t *testing.T) {
	for _, mode := range []os.FileMode{0644, 0640, 0600} {
		t.Run(mode.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "walk.yaml")
			if err := os.WriteFile(path, []byte(walkYAML), 0644); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
			// Chmod so the umask does not decide the starting mode
			if err := os.Chmod(path, mode); err != nil {
				t.Fatalf("Chmod() error = %v", err)
			}

			f, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if err := f.Save(); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("Stat() error = %v", err)
			}
			if got := info.Mode().Perm(); got != mode {
				t.Errorf("mode after Save = %v, want %v", got, mode)
			}
		})
	}
}

func TestSaveNewFileIsReadable(t *testing.T) {
	c, err := Decode(strings.NewReader(walkYAML))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "fresh.yaml")
	if err := (&File{Collection: c, Path: path}).Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if got := info.Mode().Perm(); got != 0644 {
		t.Errorf("mode of new clip = %v, want %v", got, os.FileMode(0644))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() of missing file succeeded")
	}
}

const sceneYAML = `name: level
objects:
  - id: char
    name: Character
    components: [Animator]
    children:
      - name: Root
        children:
          - name: Arm
          - name: Leg
  - name: Prop
`

func TestDecodeScene(t *testing.T) {
	scene, err := DecodeScene(strings.NewReader(sceneYAML))
	if err != nil {
		t.Fatalf("DecodeScene() error = %v", err)
	}
	if scene.Name != "level" || scene.Len() != 5 {
		t.Errorf("scene = %q with %d objects, want level with 5", scene.Name, scene.Len())
	}

	anchor, ok := scene.Lookup("char")
	if !ok {
		t.Fatal("Lookup(char) missing")
	}
	if components := anchor.Data().Components; len(components) != 1 || components[0] != "Animator" {
		t.Errorf("Components = %v, want [Animator]", components)
	}
	leg, ok := scene.Lookup("char/Root/Leg")
	if !ok {
		t.Fatal("Lookup(char/Root/Leg) missing")
	}
	path, err := hierarchy.ResolvePath(anchor, leg)
	if err != nil || path != "Root/Leg" {
		t.Errorf("ResolvePath(leg) = %q, %v; want Root/Leg", path, err)
	}
	if found, ok := scene.Find(anchor, "Root/Arm"); !ok || found.ID() != "char/Root/Arm" {
		t.Errorf("Find(Root/Arm) = %v, %v", found, ok)
	}
	if _, ok := scene.Lookup("Prop"); !ok {
		t.Error("Lookup(Prop) missing")
	}
}

func TestDecodeSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty", doc: ""},
		{name: "unnamed", doc: "objects:\n  - id: x"},
		{name: "duplicate", doc: "objects:\n  - {id: a, name: A}\n  - {id: a, name: B}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeScene(strings.NewReader(tt.doc)); err == nil {
				t.Error("DecodeScene() error = nil")
			}
		})
	}
}
