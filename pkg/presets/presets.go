package presets

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/textmask"
	"github.com/dmitrymomot/textmask/pkg/emailmask"
	"github.com/dmitrymomot/textmask/pkg/mask"
)

//go:embed presets.yaml
var builtin []byte

// EmailPreset is the name of the e-mail preset in Default.
const EmailPreset = "email"

// Preset is a named mask with its preferred field settings.
type Preset struct {
	Name              string `yaml:"name"`
	Description       string `yaml:"description"`
	Pattern           string `yaml:"pattern"`
	Guide             *bool  `yaml:"guide,omitempty"`
	PlaceholderChar   string `yaml:"placeholder_char,omitempty"`
	KeepCharPositions *bool  `yaml:"keep_char_positions,omitempty"`

	mask mask.Mask
	pipe textmask.Pipe
}

// Mask returns the compiled mask.
func (p Preset) Mask() mask.Mask { return p.mask }

// Options turns the preset into binding options. Settings the preset leaves
// unset keep whatever earlier options configured.
func (p Preset) Options() []textmask.Option {
	opts := []textmask.Option{
		textmask.WithMask(p.mask),
		textmask.WithPipe(p.pipe),
	}
	if p.KeepCharPositions != nil {
		opts = append(opts, textmask.WithKeepCharPositions(*p.KeepCharPositions))
	}
	if p.Guide != nil {
		opts = append(opts, textmask.WithGuide(*p.Guide))
	}
	if r, _ := utf8.DecodeRuneInString(p.PlaceholderChar); r != utf8.RuneError {
		opts = append(opts, textmask.WithPlaceholderChar(r))
	}
	return opts
}

func (p *Preset) compile() error {
	if p.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidPreset)
	}
	if p.PlaceholderChar != "" && utf8.RuneCountInString(p.PlaceholderChar) != 1 {
		return fmt.Errorf("%w: %s: placeholder_char must be one character", ErrInvalidPreset, p.Name)
	}
	m, err := mask.Parse(p.Pattern)
	if err != nil {
		return errors.Join(fmt.Errorf("%w: %s", ErrInvalidPreset, p.Name), err)
	}
	pc := mask.DefaultPlaceholderChar
	if p.PlaceholderChar != "" {
		pc, _ = utf8.DecodeRuneInString(p.PlaceholderChar)
	}
	if err := mask.Validate(m, pc); err != nil {
		return errors.Join(fmt.Errorf("%w: %s", ErrInvalidPreset, p.Name), err)
	}
	p.mask = m
	return nil
}

type file struct {
	Presets []Preset `yaml:"presets"`
}

// Registry holds presets in registration order.
type Registry struct {
	byName map[string]Preset
	names  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Preset)}
}

// Register adds p, compiling its pattern unless it already carries a mask.
func (r *Registry) Register(p Preset) error {
	if !p.mask.IsValid() {
		if err := p.compile(); err != nil {
			return err
		}
	}
	if _, ok := r.byName[p.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePreset, p.Name)
	}
	r.byName[p.Name] = p
	r.names = append(r.names, p.Name)
	return nil
}

// RegisterBundle adds a preset backed by a mask and pipe instead of a pattern.
func (r *Registry) RegisterBundle(name, description string, b textmask.Bundle) error {
	if name == "" || !b.Mask.IsValid() {
		return fmt.Errorf("%w: bundle needs a name and a valid mask", ErrInvalidPreset)
	}
	return r.Register(Preset{Name: name, Description: description, mask: b.Mask, pipe: b.Pipe})
}

// Get looks a preset up by name.
func (r *Registry) Get(name string) (Preset, error) {
	p, ok := r.byName[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return p, nil
}

// Names lists preset names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Load reads a preset file.
func Load(rd io.Reader) (*Registry, error) {
	var f file
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidPreset, err)
	}

	reg := NewRegistry()
	for _, p := range f.Presets {
		if err := reg.Register(p); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// LoadFile reads a preset file from disk.
func LoadFile(path string) (*Registry, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Load(fh)
}

// Default returns a fresh registry with the built-in presets and email.
func Default() *Registry {
	reg, err := Load(bytes.NewReader(builtin))
	if err != nil {
		panic(fmt.Sprintf("presets: built-in file is invalid: %v", err))
	}
	if err := reg.RegisterBundle(EmailPreset, "E-mail address", emailmask.Bundle()); err != nil {
		panic(fmt.Sprintf("presets: %v", err))
	}
	return reg
}

// Merge registers every preset of other into r.
func (r *Registry) Merge(other *Registry) error {
	for _, name := range other.names {
		if err := r.Register(other.byName[name]); err != nil {
			return err
		}
	}
	return nil
}
