package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// File is a scene description: the bodies to register, the probe rays to
// cast and the query options.
type File struct {
	Workers  int         `json:"workers,omitempty" yaml:"workers,omitempty"`
	CellSize float32     `json:"cellSize,omitempty" yaml:"cellSize,omitempty"`
	Bodies2D []BodyDef2D `json:"bodies2d,omitempty" yaml:"bodies2d,omitempty"`
	Bodies3D []BodyDef3D `json:"bodies3d,omitempty" yaml:"bodies3d,omitempty"`
	Rays2D   []RayDef    `json:"rays2d,omitempty" yaml:"rays2d,omitempty"`
	Rays3D   []RayDef    `json:"rays3d,omitempty" yaml:"rays3d,omitempty"`
}

// BodyDef2D declares one 2D body. Which fields apply depends on Type.
type BodyDef2D struct {
	ID       string      `json:"id,omitempty" yaml:"id,omitempty"`
	Type     string      `json:"type" yaml:"type"`
	Color    string      `json:"color,omitempty" yaml:"color,omitempty"`
	Center   []float32   `json:"center,omitempty" yaml:"center,omitempty"`
	Radius   float32     `json:"radius,omitempty" yaml:"radius,omitempty"`
	Min      []float32   `json:"min,omitempty" yaml:"min,omitempty"`
	Max      []float32   `json:"max,omitempty" yaml:"max,omitempty"`
	HalfSize []float32   `json:"halfSize,omitempty" yaml:"halfSize,omitempty"`
	Rotation float32     `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Start    []float32   `json:"start,omitempty" yaml:"start,omitempty"`
	End      []float32   `json:"end,omitempty" yaml:"end,omitempty"`
	Points   [][]float32 `json:"points,omitempty" yaml:"points,omitempty"`
	Normal   []float32   `json:"normal,omitempty" yaml:"normal,omitempty"`
	Distance float32     `json:"distance,omitempty" yaml:"distance,omitempty"`
}

// BodyDef3D declares one 3D body. Rotation holds Euler angles in degrees for
// obb bodies.
type BodyDef3D struct {
	ID          string      `json:"id,omitempty" yaml:"id,omitempty"`
	Type        string      `json:"type" yaml:"type"`
	Color       string      `json:"color,omitempty" yaml:"color,omitempty"`
	Center      []float32   `json:"center,omitempty" yaml:"center,omitempty"`
	Radius      float32     `json:"radius,omitempty" yaml:"radius,omitempty"`
	Min         []float32   `json:"min,omitempty" yaml:"min,omitempty"`
	Max         []float32   `json:"max,omitempty" yaml:"max,omitempty"`
	Size        []float32   `json:"size,omitempty" yaml:"size,omitempty"`
	Rotation    []float32   `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Start       []float32   `json:"start,omitempty" yaml:"start,omitempty"`
	End         []float32   `json:"end,omitempty" yaml:"end,omitempty"`
	MinZ        float32     `json:"minZ,omitempty" yaml:"minZ,omitempty"`
	MaxZ        float32     `json:"maxZ,omitempty" yaml:"maxZ,omitempty"`
	Normal      []float32   `json:"normal,omitempty" yaml:"normal,omitempty"`
	Distance    float32     `json:"distance,omitempty" yaml:"distance,omitempty"`
	Points      [][]float32 `json:"points,omitempty" yaml:"points,omitempty"`
	DoubleSided bool        `json:"doubleSided,omitempty" yaml:"doubleSided,omitempty"`
}

// RayDef is a probe ray. Forward must be unit length.
type RayDef struct {
	Name    string    `json:"name,omitempty" yaml:"name,omitempty"`
	Start   []float32 `json:"start" yaml:"start"`
	Forward []float32 `json:"forward" yaml:"forward"`
	MaxDist float32   `json:"maxDist" yaml:"maxDist"`
}

type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "yaml"
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return FormatYAML, fmt.Errorf("unknown scene extension %q", filepath.Ext(path))
	}
}

// Load reads a scene file, choosing the decoder by extension.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	defer f.Close()

	file, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Decode parses a scene and gives every body without an id a random one.
// Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*File, error) {
	var file File
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("parse scene: %w", err)
		}
	default:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && err != io.EOF {
			return nil, fmt.Errorf("parse scene: %w", err)
		}
	}
	file.AssignIDs()
	return &file, nil
}

// Encode writes the scene in the given format.
func (f *File) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("marshal scene: %w", err)
		}
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("marshal scene: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("marshal scene: %w", err)
		}
	}
	return nil
}

// Save writes the scene to path, choosing the encoder by extension.
func (f *File) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	if err := f.Encode(out, format); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

// AssignIDs fills empty body ids with random UUIDs.
func (f *File) AssignIDs() {
	for i := range f.Bodies2D {
		if f.Bodies2D[i].ID == "" {
			f.Bodies2D[i].ID = uuid.NewString()
		}
	}
	for i := range f.Bodies3D {
		if f.Bodies3D[i].ID == "" {
			f.Bodies3D[i].ID = uuid.NewString()
		}
	}
}

// Digest is a short hash of the scene's JSON form. Two scenes with the same
// bodies, ids and probes share a digest.
func (f *File) Digest() (string, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("marshal scene: %w", err)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}
