// Package clipfile reads and writes the YAML clip and scene documents the
// command line tool edits. The remapping engine itself never touches files.
package clipfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Digital-Shane/anim-tidy/internal/clip"
	"gopkg.in/yaml.v3"
)

type clipDoc struct {
	Name   string     `yaml:"name"`
	Tracks []trackDoc `yaml:"tracks"`
}

type trackDoc struct {
	Path       string   `yaml:"path"`
	Component  string   `yaml:"component,omitempty"`
	Property   string   `yaml:"property"`
	Kind       string   `yaml:"kind"`
	Keys       []keyDoc `yaml:"keys,omitempty"`
	References []refDoc `yaml:"references,omitempty"`
}

type keyDoc struct {
	Time  float64 `yaml:"time"`
	Value float64 `yaml:"value"`
	In    float64 `yaml:"in,omitempty"`
	Out   float64 `yaml:"out,omitempty"`
}

type refDoc struct {
	Time float64 `yaml:"time"`
	Ref  string  `yaml:"ref"`
}

// Decode reads one clip document.
func Decode(r io.Reader) (*clip.Collection, error) {
	var doc clipDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty clip document")
		}
		return nil, fmt.Errorf("failed to parse clip: %w", err)
	}

	c := clip.NewCollection(doc.Name)
	for i, td := range doc.Tracks {
		t, err := td.track()
		if err != nil {
			return nil, fmt.Errorf("track %d of clip %q: %w", i, doc.Name, err)
		}
		c.Append(t)
	}
	return c, nil
}

func (td trackDoc) track() (clip.Track, error) {
	kind, err := clip.ParseKind(td.Kind)
	if err != nil {
		return clip.Track{}, err
	}
	if td.Property == "" {
		return clip.Track{}, fmt.Errorf("missing property")
	}
	key := clip.PropertyKey{Component: td.Component, Property: td.Property}

	if kind == clip.KindReference {
		if len(td.Keys) > 0 {
			return clip.Track{}, fmt.Errorf("reference track %q has curve keys", td.Path)
		}
		refs := make([]clip.ReferenceKeyframe, len(td.References))
		for i, r := range td.References {
			refs[i] = clip.ReferenceKeyframe{Time: r.Time, Ref: r.Ref}
		}
		return clip.NewReferenceTrack(td.Path, key, refs...), nil
	}

	if len(td.References) > 0 {
		return clip.Track{}, fmt.Errorf("curve track %q has reference keys", td.Path)
	}
	keys := make([]clip.Keyframe, len(td.Keys))
	for i, k := range td.Keys {
		keys[i] = clip.Keyframe{Time: k.Time, Value: k.Value, InTangent: k.In, OutTangent: k.Out}
	}
	return clip.NewCurveTrack(td.Path, key, keys...), nil
}

// Encode writes c as a clip document, tracks in storage order.
func Encode(w io.Writer, c *clip.Collection) error {
	doc := clipDoc{Name: c.Name}
	for _, t := range c.Tracks() {
		td := trackDoc{
			Path:      t.Path,
			Component: t.Property.Component,
			Property:  t.Property.Property,
			Kind:      t.Kind.String(),
		}
		if t.Payload.Curve != nil {
			for _, k := range t.Payload.Curve.Keys {
				td.Keys = append(td.Keys, keyDoc{Time: k.Time, Value: k.Value, In: k.InTangent, Out: k.OutTangent})
			}
		}
		for _, r := range t.Payload.References {
			td.References = append(td.References, refDoc{Time: r.Time, Ref: r.Ref})
		}
		doc.Tracks = append(doc.Tracks, td)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode clip %q: %w", c.Name, err)
	}
	return enc.Close()
}

// File is a clip loaded from disk. It satisfies the engine's track store, so
// edits land in memory until Save is called.
type File struct {
	*clip.Collection
	Path string
}

// Load reads the clip document at path. Clips without a name are named after
// the file.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open clip: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if c.Name == "" {
		base := filepath.Base(path)
		c.Name = base[:len(base)-len(filepath.Ext(base))]
	}
	return &File{Collection: c, Path: path}, nil
}

// Save writes the clip back to its file, replacing it atomically.
func (f *File) Save() error {
	var buf bytes.Buffer
	if err := Encode(&buf, f.Collection); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.Path), ".clip-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	// Keep the permissions of the file being replaced
	mode := os.FileMode(0644)
	if info, err := os.Stat(f.Path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set clip permissions: %w", err)
	}

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write clip: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write clip: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", f.Path, err)
	}
	return nil
}
