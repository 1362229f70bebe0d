package rowclean

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a declarative cleaning setup, usually kept in a YAML file:
//
//	global: [trim]
//	raw_first_row: false
//	fields:
//	  title: [compact, entities]
//	  price: [price]
//	  zip:   [zipcode]
//	memo: 4096
type Profile struct {
	Global      []string            `yaml:"global"`
	Fields      map[string][]string `yaml:"fields"`
	RawFirstRow bool                `yaml:"raw_first_row"`
	// Memo, when positive, caches up to Memo results per resolved chain.
	Memo int `yaml:"memo"`
}

// ParseProfile decodes a YAML profile. Unknown keys are rejected.
// An empty document yields an empty profile.
func ParseProfile(data []byte) (*Profile, error) {
	p := &Profile{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidProfile, err)
	}

	return p, nil
}

// LoadProfile reads and parses the profile at path.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrProfileRead, err)
	}
	return ParseProfile(data)
}

// Build resolves the profile's cleaner names against reg and returns a
// Reformatter. Extra options are applied after the profile, so they can add
// or override field cleaners.
func (p *Profile) Build(reg *Registry, opts ...Option) (*Reformatter, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}

	var (
		base []Option
		errs []error
	)

	if len(p.Global) > 0 {
		global, err := reg.Resolve(p.Global...)
		if err != nil {
			errs = append(errs, fmt.Errorf("global: %w", err))
		} else {
			base = append(base, WithGlobal(Memoize(global, p.Memo)))
		}
	}

	for name, names := range p.Fields {
		c, err := reg.Resolve(names...)
		if err != nil {
			errs = append(errs, fmt.Errorf("field %q: %w", name, err))
			continue
		}
		base = append(base, WithField(name, Memoize(c, p.Memo)))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return New(append(base, opts...)...), nil
}
