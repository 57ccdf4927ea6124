package main

import (
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
)

// InputVersion is the version of the PlayerInput format stored in a
// Playthrough. If PlayerInput changes such that older recordings can't be
// replayed anymore, InputVersion must change as well.
const InputVersion = 1

// Playthrough is everything needed to replay a ritual: the seed that drives
// the World's randomness, the initial canvas size and every input, frame by
// frame. Given the same Playthrough, the World always ends up in the same
// state.
type Playthrough struct {
	InputVersion   int64         `yaml:"InputVersion"`
	ReleaseVersion int64         `yaml:"ReleaseVersion"`
	Id             uuid.UUID     `yaml:"Id"`
	Seed           int64         `yaml:"Seed"`
	Width          float64       `yaml:"Width"`
	Height         float64       `yaml:"Height"`
	History        []PlayerInput `yaml:"History"`
}

func (p *Playthrough) Serialize() []byte {
	data, err := yaml.Marshal(p)
	Check(err)
	return data
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.History = slices.Clone(p.History)
	return &clone
}

func DeserializePlaythrough(data []byte) (p Playthrough) {
	Check(yaml.Unmarshal(data, &p))
	if p.InputVersion != InputVersion {
		Check(fmt.Errorf("can't deserialize this playthrough - we are at "+
			"InputVersion %d and playthrough was generated with InputVersion "+
			"%d", InputVersion, p.InputVersion))
	}
	return
}

// NewWorldFromPlaythrough creates the World the playthrough was recorded
// with. The image sizes and text measurement come from the caller because
// they depend on the assets, not on the recording.
func NewWorldFromPlaythrough(p *Playthrough, sizes Sizes,
	measure TextMeasurer, nFonts int) World {
	return NewWorld(p.Seed, p.Width, p.Height, sizes, measure, nFonts)
}
