package mockserver

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Employee is one seeded employee of the mock tenant.
type Employee struct {
	Code      string `yaml:"code"`
	LastName  string `yaml:"lastName"`
	FirstName string `yaml:"firstName"`
	Key       string `yaml:"key"`
}

type Fixtures struct {
	Employees []Employee `yaml:"employees"`
}

// LoadFixtures reads a YAML seed file. Employees without an explicit key
// get a generated one, mirroring how the real service hands out opaque keys.
func LoadFixtures(path string) (*Fixtures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}

	var f Fixtures
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	fillKeys(&f)
	return &f, nil
}

// DefaultFixtures seeds a single-employee tenant, enough to run the tc CLI
// against the mock out of the box.
func DefaultFixtures() *Fixtures {
	f := &Fixtures{
		Employees: []Employee{
			{Code: "1000", LastName: "勤怠", FirstName: "太郎"},
		},
	}
	fillKeys(f)
	return f
}

func fillKeys(f *Fixtures) {
	for i := range f.Employees {
		if f.Employees[i].Key == "" {
			f.Employees[i].Key = uuid.New().String()
		}
	}
}
