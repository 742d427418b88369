package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Defaults applied by Load when the file leaves them out.
const (
	DefaultDuration     = 5 * time.Second
	DefaultReportTarget = time.Second
)

// Load reads a workload file (JSON, or YAML by .yaml/.yml extension),
// validates it against the embedded schema, and applies defaults.
func Load(path string) (*Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading workload file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if data, err = yamlToJSON(data); err != nil {
			return nil, fmt.Errorf("error parsing YAML workload: %w", err)
		}
	}

	return Parse(data)
}

// Parse validates and decodes a JSON workload document.
func Parse(data []byte) (*Workload, error) {
	body := string(data)
	if !gjson.Valid(body) {
		return nil, fmt.Errorf("workload is not valid JSON")
	}

	// Cheap version peek before full schema validation, so an old or
	// future file fails with a pointed message instead of a schema
	// error dump.
	if v := gjson.Get(body, "schemaVersion"); v.Exists() && v.Int() != SchemaVersion {
		return nil, fmt.Errorf("unsupported schemaVersion %d (this build understands %d)", v.Int(), SchemaVersion)
	}

	if err := validateSchema(body); err != nil {
		return nil, err
	}

	var w Workload
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("error parsing workload: %w", err)
	}

	applyDefaults(&w)

	if errs := ValidateWorkload(&w); len(errs) > 0 {
		return nil, fmt.Errorf("invalid workload: %s", joinErrors(errs))
	}
	return &w, nil
}

func applyDefaults(w *Workload) {
	if w.Duration == 0 {
		w.Duration = Duration(DefaultDuration)
	}
	if w.ReportTarget == 0 {
		w.ReportTarget = Duration(DefaultReportTarget)
	}
	for i := range w.Regions {
		if w.Regions[i].Workers == 0 {
			w.Regions[i].Workers = 1
		}
	}
}

func validateSchema(body string) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("workload.json", strings.NewReader(workloadSchema)); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	schema, err := compiler.Compile("workload.json")
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("workload does not match schema: %w", err)
	}
	return nil
}

// yamlToJSON normalizes a YAML document to JSON so one schema covers
// both formats.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
