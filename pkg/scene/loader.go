package scene

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/fixtrace/pkg/fixed"
	"github.com/taigrr/fixtrace/pkg/geom"
)

// Node names with a special meaning in scene files.
const (
	LightNode = "light"
	FloorNode = "floor"
)

// extras is the custom data read from glTF "extras" objects.
type extras struct {
	Ambient []float64 `json:"ambient"`
	Color   []float64 `json:"color"`
	Normal  []float64 `json:"normal"`
}

// Load reads a scene from a glTF or GLB file.
//
// Every node with a mesh becomes a sphere centered on the node translation
// with the node's x scale as radius, in document order. The sphere color is
// the base color factor of the first primitive's material and its
// reflectivity the metallic factor. A node named "light" places the light
// (extras "color" sets its color) and a node named "floor" places the floor
// (extras "normal" sets its normal). Document extras "ambient" sets the
// ambient color. Node hierarchies are flattened: only local translations
// and scales are read.
func Load(path string) (*Scene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	s, err := FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// FromDocument converts a decoded glTF document into a validated scene.
func FromDocument(doc *gltf.Document) (*Scene, error) {
	s := &Scene{Floor: DefaultFloor, Light: DefaultLight}

	var ex extras
	err := decodeExtras(doc.Extras, &ex)
	if err != nil {
		return nil, fmt.Errorf("document extras: %w", err)
	}
	if ex.Ambient != nil {
		if s.Ambient, err = color16(ex.Ambient); err != nil {
			return nil, fmt.Errorf("ambient: %w", err)
		}
	}

	for _, n := range doc.Nodes {
		if err := applyNode(doc, n, s); err != nil {
			return nil, fmt.Errorf("node %q: %w", n.Name, err)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func applyNode(doc *gltf.Document, n *gltf.Node, s *Scene) error {
	pos, err := position(n.TranslationOrDefault())
	if err != nil {
		return err
	}
	var ex extras
	if err := decodeExtras(n.Extras, &ex); err != nil {
		return fmt.Errorf("extras: %w", err)
	}

	switch {
	case strings.EqualFold(n.Name, LightNode):
		s.Light.Position = pos
		if ex.Color != nil {
			if s.Light.Color, err = color16(ex.Color); err != nil {
				return fmt.Errorf("light color: %w", err)
			}
		}
	case strings.EqualFold(n.Name, FloorNode):
		s.Floor.Point = pos
		if ex.Normal != nil {
			if s.Floor.Normal, err = normal16(ex.Normal); err != nil {
				return fmt.Errorf("floor normal: %w", err)
			}
		}
	case n.Mesh != nil:
		sp, err := sphere(doc, n, pos)
		if err != nil {
			return err
		}
		s.Spheres = append(s.Spheres, sp)
	}
	return nil
}

func sphere(doc *gltf.Document, n *gltf.Node, center fixed.Vec32) (geom.Sphere, error) {
	r := n.ScaleOrDefault()[0]
	if !(r > 0 && r < geom.MaxCoord) {
		return geom.Sphere{}, fmt.Errorf("radius %v out of range", r)
	}
	sp := geom.Sphere{
		Center: center,
		Radius: fixed.FromFloat32(r),
		Color:  fixed.V16(fixed.One16, fixed.One16, fixed.One16),
	}
	if *n.Mesh < 0 || *n.Mesh >= len(doc.Meshes) {
		return sp, fmt.Errorf("mesh index %d out of range", *n.Mesh)
	}
	m := doc.Meshes[*n.Mesh]
	if len(m.Primitives) == 0 || m.Primitives[0].Material == nil {
		return sp, nil
	}
	idx := *m.Primitives[0].Material
	if idx < 0 || idx >= len(doc.Materials) {
		return sp, fmt.Errorf("material index %d out of range", idx)
	}
	pbr := doc.Materials[idx].PBRMetallicRoughness
	if pbr == nil {
		return sp, nil
	}

	base := pbr.BaseColorFactorOrDefault()
	c, err := color16(base[:3])
	if err != nil {
		return sp, fmt.Errorf("base color: %w", err)
	}
	sp.Color = c
	if pbr.MetallicFactor != nil {
		m := *pbr.MetallicFactor
		if !(m >= 0 && m <= 1) {
			return sp, fmt.Errorf("metallic factor %v out of range", m)
		}
		sp.Reflectivity = fixed.FromFloat16(m)
	}
	return sp, nil
}

// decodeExtras round-trips a glTF extras value through JSON so both decoded
// maps and raw messages are accepted.
func decodeExtras(v any, dst *extras) error {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if string(b) == "null" {
		return nil
	}
	return json.Unmarshal(b, dst)
}

func position(t [3]float64) (fixed.Vec32, error) {
	for _, c := range t {
		if math.IsNaN(c) || math.Abs(c) >= geom.MaxCoord {
			return fixed.Vec32{}, fmt.Errorf("coordinate %v out of range", c)
		}
	}
	return fixed.V32F(t[0], t[1], t[2]), nil
}

func color16(c []float64) (fixed.Vec16, error) {
	if len(c) < 3 {
		return fixed.Vec16{}, fmt.Errorf("need 3 components, got %d", len(c))
	}
	for _, v := range c[:3] {
		if !(v >= 0 && v <= 1) {
			return fixed.Vec16{}, fmt.Errorf("component %v outside [0, 1]", v)
		}
	}
	return fixed.V16F(c[0], c[1], c[2]), nil
}

func normal16(c []float64) (fixed.Vec16, error) {
	if len(c) < 3 {
		return fixed.Vec16{}, fmt.Errorf("need 3 components, got %d", len(c))
	}
	l := math.Sqrt(c[0]*c[0] + c[1]*c[1] + c[2]*c[2])
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return fixed.Vec16{}, fmt.Errorf("degenerate normal %v", c)
	}
	return fixed.V16F(c[0]/l, c[1]/l, c[2]/l), nil
}
