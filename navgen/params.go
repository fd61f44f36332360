package navgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/splatwalk/navbake/voxbuild"
)

// DefaultParams returns the stock solo-mesh build parameters.
func DefaultParams() voxbuild.Params {
	return voxbuild.Params{
		Cs:                     0.3,
		Ch:                     0.2,
		WalkableSlopeAngle:     45,
		WalkableHeight:         2.0,
		WalkableClimb:          0.9,
		WalkableRadius:         0.6,
		MaxEdgeLen:             12,
		MaxSimplificationError: 1.3,
		MinRegionArea:          64,
		MergeRegionArea:        400,
		MaxVertsPerPoly:        6,
		DetailSampleDist:       6,
		DetailSampleMaxError:   1,
	}
}

// LoadParams reads a YAML preset and applies it over the defaults, so a
// preset only needs to name the fields it changes.
func LoadParams(path string) (voxbuild.Params, error) {
	p := DefaultParams()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse params %s: %w", path, err)
	}
	return p, nil
}
