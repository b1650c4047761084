package planfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/depsort/devicetree"
	"github.com/katalvlaran/depsort/tsort"
)

var (
	// ErrDecode indicates input that is not a well-formed document.
	ErrDecode = errors.New("planfile: decode")

	// ErrInvalid indicates a well-formed document with invalid content.
	ErrInvalid = errors.New("planfile: invalid document")
)

// GraphDoc is the YAML form of a dependency graph.
type GraphDoc struct {
	Items []string    `yaml:"items"`
	Edges [][2]string `yaml:"edges"`
}

// DeviceDoc is the YAML form of a devicetree.Device.
type DeviceDoc struct {
	Name    string   `yaml:"name"`
	Kind    string   `yaml:"kind"`
	Parents []string `yaml:"parents,omitempty"`
	Size    int64    `yaml:"size,omitempty"`
}

// ActionDoc is the YAML form of a devicetree.Action.
type ActionDoc struct {
	ID     int    `yaml:"id,omitempty"`
	Type   string `yaml:"type"`
	Object string `yaml:"object"`
	Device string `yaml:"device"`
	Format string `yaml:"format,omitempty"`
	Size   int64  `yaml:"size,omitempty"`
	After  []int  `yaml:"after,omitempty"`
}

// PlanDoc is the YAML form of a storage plan.
type PlanDoc struct {
	Devices []DeviceDoc `yaml:"devices"`
	Actions []ActionDoc `yaml:"actions"`
}

// Plan is a decoded storage plan.
type Plan struct {
	Tree    *devicetree.Tree
	Actions []*devicetree.Action
}

func decode(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty document", ErrDecode)
		}
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return nil
}

// LoadGraph reads a graph document and builds the graph.
func LoadGraph(r io.Reader) (*tsort.Graph[string], error) {
	var doc GraphDoc
	if err := decode(r, &doc); err != nil {
		return nil, err
	}

	return doc.Graph()
}

// Graph builds the graph described by doc.
func (doc GraphDoc) Graph() (*tsort.Graph[string], error) {
	g, err := tsort.NewFromPairs(doc.Items, doc.Edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return g, nil
}

// LoadGraphFile is LoadGraph on the named file.
func LoadGraphFile(path string) (*tsort.Graph[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := LoadGraph(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// LoadPlan reads a plan document and builds its tree and actions.
func LoadPlan(r io.Reader) (*Plan, error) {
	var doc PlanDoc
	if err := decode(r, &doc); err != nil {
		return nil, err
	}

	return doc.Plan()
}

// Plan converts doc into a device tree and actions. Devices must be listed
// after their parents.
func (doc PlanDoc) Plan() (*Plan, error) {
	tree := devicetree.NewTree()
	for i, d := range doc.Devices {
		kind := devicetree.Kind(strings.ToLower(d.Kind))
		dev := &devicetree.Device{Name: d.Name, Kind: kind, Parents: d.Parents, Size: d.Size}
		if err := tree.AddDevice(dev); err != nil {
			return nil, fmt.Errorf("%w: device #%d: %w", ErrInvalid, i, err)
		}
	}

	actions := make([]*devicetree.Action, len(doc.Actions))
	for i, a := range doc.Actions {
		typ, err := devicetree.ParseActionType(a.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: action #%d: %w", ErrInvalid, i, err)
		}
		obj, err := devicetree.ParseObjectType(a.Object)
		if err != nil {
			return nil, fmt.Errorf("%w: action #%d: %w", ErrInvalid, i, err)
		}
		id := a.ID
		if id == 0 {
			id = i + 1
		}
		actions[i] = &devicetree.Action{
			ID:     id,
			Type:   typ,
			Object: obj,
			Device: a.Device,
			Format: a.Format,
			Size:   a.Size,
			After:  a.After,
		}
	}

	return &Plan{Tree: tree, Actions: actions}, nil
}

// LoadPlanFile is LoadPlan on the named file.
func LoadPlanFile(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := LoadPlan(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}
