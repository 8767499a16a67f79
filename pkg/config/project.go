package config

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// StringList accepts either a single string or a list of strings.
type StringList []string

func (s *StringList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*s = StringList{single}
		return nil
	}
	var list []string
	if err := unmarshal(&list); err != nil {
		return err
	}
	*s = list
	return nil
}

// Project is the content of a codegen.yml file.
//
//	schema: ./schema.graphql
//	documents: ./src/**/*.graphql
//	config:
//	  importBaseApiFrom: '@/lib/baseApi'
//	generates:
//	  src/auth.generated.ts:
//	    documents: ./src/auth/*.graphql
//	    config:
//	      exportHooks: true
type Project struct {
	Schema    StringList               `yaml:"schema"`
	Documents StringList               `yaml:"documents"`
	Config    RawConfig                `yaml:"config"`
	Generates map[string]ProjectTarget `yaml:"generates"`
}

type ProjectTarget struct {
	Schema    StringList `yaml:"schema"`
	Documents StringList `yaml:"documents"`
	Config    RawConfig  `yaml:"config"`
}

// Target is one output file with everything needed to generate it.
type Target struct {
	Output    string
	Schema    []string
	Documents []string
	Config    RawConfig
}

// LoadProject reads and strictly decodes a project file.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: reading project file %s", path)
	}
	return ParseProject(data)
}

func ParseProject(data []byte) (*Project, error) {
	project := &Project{}
	if err := yaml.UnmarshalStrict(data, project); err != nil {
		return nil, errors.Wrap(err, "config: decoding project file")
	}
	if len(project.Generates) == 0 {
		return nil, errors.New("config: project file has no generates section")
	}
	return project, nil
}

// Targets returns the generation targets sorted by output path.
// Target level schema, documents and config override the project level ones.
func (p *Project) Targets() []Target {
	outputs := make([]string, 0, len(p.Generates))
	for output := range p.Generates {
		outputs = append(outputs, output)
	}
	sort.Strings(outputs)

	targets := make([]Target, 0, len(outputs))
	for _, output := range outputs {
		generate := p.Generates[output]
		target := Target{
			Output:    output,
			Schema:    p.Schema,
			Documents: p.Documents,
			Config:    p.Config.Merge(generate.Config),
		}
		if len(generate.Schema) != 0 {
			target.Schema = generate.Schema
		}
		if len(generate.Documents) != 0 {
			target.Documents = generate.Documents
		}
		targets = append(targets, target)
	}
	return targets
}
