// Package config loads and saves fractal generation job files.
// The format is chosen by file extension: .yaml/.yml, .toml or .json.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File is the top level of a job file.
type File struct {
	Preferences Preferences `yaml:"preferences" toml:"preferences" json:"preferences"`
	Jobs        []Job       `yaml:"jobs" toml:"jobs" json:"jobs"`
}

// Preferences toggle which generators are offered.
type Preferences struct {
	EnableSierpinski bool `yaml:"enable_sierpinski" toml:"enable_sierpinski" json:"enable_sierpinski"`
}

// Job is a single generation run. Unset Depth and zero Scale take the operator defaults.
type Job struct {
	// Operator ID, i.e. "mesh.sierpinski_generator". Empty selects the combined operator.
	Operator string `yaml:"operator,omitempty" toml:"operator,omitempty" json:"operator,omitempty"`
	// Mode is "2D" or "3D".
	Mode        string `yaml:"mode,omitempty" toml:"mode,omitempty" json:"mode,omitempty"`
	Orientation string `yaml:"orientation,omitempty" toml:"orientation,omitempty" json:"orientation,omitempty"`
	// Depth is a pointer so an explicit depth of 0 can be told apart from an unset depth.
	Depth *int    `yaml:"depth,omitempty" toml:"depth,omitempty" json:"depth,omitempty"`
	Scale float64 `yaml:"scale,omitempty" toml:"scale,omitempty" json:"scale,omitempty"`
	// Output paths. Empty paths are not written.
	STL  string `yaml:"stl,omitempty" toml:"stl,omitempty" json:"stl,omitempty"`
	OBJ  string `yaml:"obj,omitempty" toml:"obj,omitempty" json:"obj,omitempty"`
	PNG  string `yaml:"png,omitempty" toml:"png,omitempty" json:"png,omitempty"`
	Weld bool   `yaml:"weld,omitempty" toml:"weld,omitempty" json:"weld,omitempty"`
}

// Default returns a File with every generator enabled and no jobs.
func Default() File {
	return File{Preferences: Preferences{EnableSierpinski: true}}
}

type format int

const (
	formatYAML format = iota
	formatTOML
	formatJSON
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".toml":
		return formatTOML, nil
	case ".json":
		return formatJSON, nil
	}
	return 0, fmt.Errorf("unsupported config file extension %q", filepath.Ext(path))
}

// Load reads a job file. Preferences missing from the file keep their defaults.
func Load(path string) (File, error) {
	ff, err := formatOf(path)
	if err != nil {
		return File{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading config: %w", err)
	}
	f := Default()
	switch ff {
	case formatYAML:
		err = yaml.Unmarshal(data, &f)
	case formatTOML:
		err = toml.Unmarshal(data, &f)
	case formatJSON:
		err = json.Unmarshal(data, &f)
	}
	if err != nil {
		return File{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// Save writes f to path in the format given by its extension,
// creating parent directories as needed.
func Save(path string, f File) error {
	ff, err := formatOf(path)
	if err != nil {
		return err
	}
	var data []byte
	switch ff {
	case formatYAML:
		var b bytes.Buffer
		enc := yaml.NewEncoder(&b)
		enc.SetIndent(2)
		if err = enc.Encode(f); err == nil {
			err = enc.Close()
		}
		data = b.Bytes()
	case formatTOML:
		data, err = toml.Marshal(f)
	case formatJSON:
		data, err = json.MarshalIndent(f, "", "\t")
	}
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// ErrNoJobs is returned by Validate for a file without jobs.
var ErrNoJobs = errors.New("config has no jobs")

// Validate checks that the file lists jobs with at least one output each.
func (f File) Validate() error {
	if len(f.Jobs) == 0 {
		return ErrNoJobs
	}
	for i, job := range f.Jobs {
		if job.STL == "" && job.OBJ == "" && job.PNG == "" {
			return fmt.Errorf("job %d has no output path", i)
		}
		if job.Depth != nil && *job.Depth < 0 {
			return fmt.Errorf("job %d has negative depth %d", i, *job.Depth)
		}
		if job.Scale < 0 {
			return fmt.Errorf("job %d has negative scale %g", i, job.Scale)
		}
	}
	return nil
}
