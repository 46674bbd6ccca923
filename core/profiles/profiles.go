// Package profiles loads named sweep presets from an HCL file.
//
// A profiles file holds any number of labeled blocks:
//
//	profile "aggressive" {
//	  variation = 0.30
//	  steps     = 3
//	}
//
// Each block resolves to a SweepConfig that the run command can select
// by name instead of spelling out variation and steps.
package profiles

import (
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"oresweep/core/types"
	"oresweep/internal/errors"
)

// Profile is one named sweep preset
type Profile struct {
	// Name is the block label selecting this preset
	Name string `hcl:"name,label"`

	// Variation is the perturbation range as a fraction
	Variation float64 `hcl:"variation"`

	// Steps is the step count per direction
	Steps int `hcl:"steps"`
}

// Config returns the sweep parameters of this profile
func (p Profile) Config() types.SweepConfig {
	return types.SweepConfig{
		Variation: p.Variation,
		Steps:     p.Steps,
	}
}

// profilesFile is the top-level HCL structure of a profiles file
type profilesFile struct {
	Profiles []Profile `hcl:"profile,block"`
}

// Set is a collection of sweep profiles keyed by name
type Set struct {
	profiles map[string]Profile
	names    []string
}

// Loader parses profiles files
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a profile loader
func NewLoader() *Loader {
	return &Loader{
		parser: hclparse.NewParser(),
	}
}

// Load reads and validates a profiles file
func (l *Loader) Load(path string) (*Set, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeProfile, err, "reading profiles file %s", path)
	}

	hclFile, diags := l.parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, errors.Wrapf(errors.TypeProfile, diags, "parsing profiles file %s", path)
	}

	var parsed profilesFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
		return nil, errors.Wrapf(errors.TypeProfile, diags, "decoding profiles file %s", path)
	}

	set := &Set{
		profiles: make(map[string]Profile, len(parsed.Profiles)),
	}
	for _, p := range parsed.Profiles {
		if _, exists := set.profiles[p.Name]; exists {
			return nil, errors.Newf(errors.TypeProfile, "duplicate profile %q in %s", p.Name, path)
		}
		if err := p.Config().Validate(); err != nil {
			return nil, errors.Wrapf(errors.TypeProfile, err, "profile %q", p.Name)
		}
		set.profiles[p.Name] = p
		set.names = append(set.names, p.Name)
	}

	return set, nil
}

// Names returns the profile names in declaration order
func (s *Set) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Len returns the number of profiles
func (s *Set) Len() int {
	return len(s.names)
}

// Lookup resolves a profile by name
func (s *Set) Lookup(name string) (Profile, error) {
	p, ok := s.profiles[name]
	if !ok {
		if len(s.names) == 0 {
			return Profile{}, errors.Newf(errors.TypeProfile, "unknown profile %q (no profiles defined)", name)
		}
		available := s.Names()
		sort.Strings(available)
		return Profile{}, errors.Newf(errors.TypeProfile, "unknown profile %q (available: %s)", name, strings.Join(available, ", "))
	}
	return p, nil
}
