// Package config reads the TOML settings for labeling, graph building, and logging.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/janelia-flyem/objgraph/dvid"
	"github.com/janelia-flyem/objgraph/labels"
	"github.com/janelia-flyem/objgraph/neighborgraph"
	"github.com/janelia-flyem/objgraph/neighborhood"
	"github.com/janelia-flyem/objgraph/voxels"
)

// LabelingConfig is the [labeling] section.
type LabelingConfig struct {
	Connectivity int    `toml:"connectivity"`
	MinVoxels    int    `toml:"min_voxels"`
	OnValue      uint64 `toml:"on_value"`
	OffValue     uint64 `toml:"off_value"`
}

// GraphConfig is the [graph] section.
type GraphConfig struct {
	Neighborhood        string `toml:"neighborhood"`
	BothDirections      bool   `toml:"both_directions"`
	PreventIntersection bool   `toml:"prevent_intersection"`
	Use3D               bool   `toml:"use_3d"`
}

// Config is the full TOML configuration.
type Config struct {
	Labeling LabelingConfig
	Graph    GraphConfig
	Logging  dvid.LogConfig
}

// Default returns the settings used for anything a TOML file leaves out.
func Default() Config {
	return Config{
		Labeling: LabelingConfig{
			Connectivity: 26,
			OnValue:      voxels.DefaultBinaryValues.On,
			OffValue:     voxels.DefaultBinaryValues.Off,
		},
		Graph: GraphConfig{
			Neighborhood:        "big",
			PreventIntersection: true,
			Use3D:               true,
		},
		Logging: dvid.LogConfig{
			MaxSize: 100,
			MaxAge:  30,
		},
	}
}

// Load decodes a TOML file on top of the defaults.  A relative log file path is
// taken as relative to the TOML file's directory.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return nil, fmt.Errorf("no TOML configuration file provided")
	}
	c := Default()
	if _, err := toml.DecodeFile(filename, &c); err != nil {
		return nil, fmt.Errorf("could not decode TOML config %q: %v", filename, err)
	}
	if c.Logging.Logfile != "" {
		abs, err := dvid.ConvertToAbsolute(c.Logging.Logfile, filepath.Dir(filename))
		if err != nil {
			return nil, fmt.Errorf("error converting logfile setting to absolute path: %v", err)
		}
		c.Logging.Logfile = abs
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Decode parses TOML text on top of the defaults.
func Decode(data string) (*Config, error) {
	c := Default()
	if _, err := toml.Decode(data, &c); err != nil {
		return nil, fmt.Errorf("could not decode TOML config: %v", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks settings that can be checked without a volume.
func (c *Config) Validate() error {
	if _, _, err := neighborhood.FromConnectivity(c.Labeling.Connectivity); err != nil {
		return fmt.Errorf("bad [labeling] connectivity: %v", err)
	}
	if c.Labeling.MinVoxels < 0 {
		return fmt.Errorf("bad [labeling] min_voxels %d: must be non-negative", c.Labeling.MinVoxels)
	}
	if err := c.BinaryValues().Validate(); err != nil {
		return fmt.Errorf("bad [labeling] values: %v", err)
	}
	if _, err := neighborhood.ParseKind(c.Graph.Neighborhood); err != nil {
		return fmt.Errorf("bad [graph] neighborhood: %v", err)
	}
	return nil
}

// BinaryValues returns the on/off encoding for input volumes.
func (c *Config) BinaryValues() voxels.BinaryValues {
	return voxels.BinaryValues{On: c.Labeling.OnValue, Off: c.Labeling.OffValue}
}

// Labeler returns a labeler with the configured settings.
func (c *Config) Labeler() *labels.Labeler {
	return &labels.Labeler{
		Connectivity: c.Labeling.Connectivity,
		MinVoxels:    c.Labeling.MinVoxels,
	}
}

// Builder returns a graph builder with the configured settings.
func (c *Config) Builder() (neighborgraph.Builder, error) {
	kind, err := neighborhood.ParseKind(c.Graph.Neighborhood)
	if err != nil {
		return neighborgraph.Builder{}, err
	}
	return neighborgraph.Builder{Kind: kind, BothDirections: c.Graph.BothDirections}, nil
}
