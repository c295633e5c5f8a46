package clipfile

import (
	"fmt"
	"io"
	"os"

	"github.com/Digital-Shane/anim-tidy/internal/hierarchy"
	"gopkg.in/yaml.v3"
)

type sceneDoc struct {
	Name    string      `yaml:"name"`
	Objects []objectDoc `yaml:"objects"`
}

type objectDoc struct {
	ID         string      `yaml:"id,omitempty"`
	Name       string      `yaml:"name"`
	Components []string    `yaml:"components,omitempty"`
	Children   []objectDoc `yaml:"children,omitempty"`
}

// DecodeScene reads a scene document. Objects without an id get one built
// from their position in the document, such as "Character/Root".
func DecodeScene(r io.Reader) (*hierarchy.Scene, error) {
	var doc sceneDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty scene document")
		}
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	roots := make([]*hierarchy.Node, 0, len(doc.Objects))
	for _, od := range doc.Objects {
		n, err := od.node("")
		if err != nil {
			return nil, err
		}
		roots = append(roots, n)
	}
	return hierarchy.NewScene(doc.Name, roots...)
}

func (od objectDoc) node(parentID string) (*hierarchy.Node, error) {
	if od.Name == "" {
		return nil, fmt.Errorf("object under %q has no name", parentID)
	}
	id := od.ID
	if id == "" {
		id = od.Name
		if parentID != "" {
			id = parentID + "/" + od.Name
		}
	}

	n := hierarchy.NewObject(id, od.Name, od.Components...)
	for _, cd := range od.Children {
		child, err := cd.node(id)
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

// LoadScene reads the scene document at path.
func LoadScene(path string) (*hierarchy.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene: %w", err)
	}
	defer f.Close()

	scene, err := DecodeScene(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scene, nil
}
