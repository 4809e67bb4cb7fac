package scenario

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/vk-validation/errors"
	"github.com/wippyai/vk-validation/vk"
)

// Script is a named sequence of calls made through the layer against a
// null driver.
type Script struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Physical    Physical `yaml:"physical"`
	Instance    Instance `yaml:"instance"`
	Settings    Settings `yaml:"settings"`
	Steps       []Step   `yaml:"steps"`
}

// Physical adjusts the null driver's default physical device.
type Physical struct {
	// QueueFamilies replaces the default queue families when not empty.
	QueueFamilies []QueueFamily `yaml:"queue_families"`
	// Unsupported lists features the device does not support.
	Unsupported []string `yaml:"unsupported_features"`
}

// QueueFamily is one queue family of the physical device.
type QueueFamily struct {
	Flags vk.QueueFlags `yaml:"flags"`
	Count uint32        `yaml:"count"`
}

// Instance is the create info of the instance every script starts with.
type Instance struct {
	Application string   `yaml:"application"`
	Extensions  []string `yaml:"extensions"`
}

// Settings override the layer settings for the script.
type Settings struct {
	BlockOn     *errors.Severity `yaml:"block_on"`
	ReportFlags *errors.Severity `yaml:"report_flags"`
}

// Step is one call.
type Step struct {
	Op string `yaml:"op"`
	// As names the handle the call creates so later steps can use it as $name.
	As   string    `yaml:"as"`
	Args yaml.Node `yaml:"args"`
	// Expect is "ok", "blocked" or a result name. Empty means ok.
	Expect string `yaml:"expect"`
	// Reports lists codes that must be reported by the call.
	Reports []errors.Code `yaml:"reports"`
	Note    string        `yaml:"note"`
}

// String renders the step for listings.
func (s Step) String() string {
	var b strings.Builder
	b.WriteString(s.Op)
	if s.As != "" {
		b.WriteString(" as $")
		b.WriteString(s.As)
	}
	if exp := s.expect(); exp != "ok" {
		b.WriteString(" -> ")
		b.WriteString(exp)
	}
	return b.String()
}

func (s Step) expect() string {
	if s.Expect == "" {
		return "ok"
	}
	return s.Expect
}

// Parse decodes a script. Unknown fields are rejected.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Validate checks that every step names a known operation and a well-formed
// expectation, and that every $name is defined before it is used.
func (s *Script) Validate() error {
	defined := map[string]bool{"instance": true, "physical": true}
	for i, st := range s.Steps {
		if _, ok := ops[st.Op]; !ok {
			return fmt.Errorf("step %d: unknown op %q", i+1, st.Op)
		}
		if _, _, err := parseExpect(st.expect()); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		for _, c := range st.Reports {
			if c.Number() == 0 {
				return fmt.Errorf("step %d: unknown report code %q", i+1, c)
			}
		}
		for _, ref := range refs(&st.Args) {
			if !defined[ref] {
				return fmt.Errorf("step %d: $%s is used before it is defined", i+1, ref)
			}
		}
		if st.As != "" {
			defined[st.As] = true
		}
	}
	return nil
}

// refs returns the $names used in a node, in document order.
func refs(n *yaml.Node) []string {
	var out []string
	var walk func(*yaml.Node)
	walk = func(n *yaml.Node) {
		if n.Kind == yaml.ScalarNode && strings.HasPrefix(n.Value, "$") {
			out = append(out, n.Value[1:])
		}
		for _, c := range n.Content {
			walk(c)
		}
	}
	walk(n)
	return out
}

// parseExpect returns whether the step must be blocked, or else the result
// it must return.
func parseExpect(text string) (blocked bool, want vk.Result, err error) {
	switch strings.ToLower(text) {
	case "ok":
		return false, vk.Success, nil
	case "blocked":
		return true, vk.ErrorValidationFailedEXT, nil
	}
	if err := want.UnmarshalText([]byte(text)); err != nil {
		return false, 0, fmt.Errorf("expect: %w", err)
	}
	return want == vk.ErrorValidationFailedEXT, want, nil
}
