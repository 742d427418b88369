// Package config loads and validates workload files for the demo
// binary: which regions to hammer, with how many workers, for how
// long.
package config

import (
	"encoding/json"
	"fmt"
	"time"
)

// SchemaVersion is the workload file version this build understands.
const SchemaVersion = 1

// Workload describes a synthetic profiling run.
//
// Example YAML:
//
//	schemaVersion: 1
//	name: "checkout hot paths"
//	duration: 10s
//	reportTarget: 1s
//	regions:
//	  - name: db
//	    workers: 4
//	    busy: 2ms
//	    idle: 500us
type Workload struct {
	// SchemaVersion identifies the file format (currently 1).
	SchemaVersion int `json:"schemaVersion" yaml:"schemaVersion"`

	// Name of the run (for reporting, optional).
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Duration is how long to run the workers (default: 5s).
	Duration Duration `json:"duration,omitempty" yaml:"duration,omitempty"`

	// ReportTarget is the profiler's reporting interval (default: 1s).
	ReportTarget Duration `json:"reportTarget,omitempty" yaml:"reportTarget,omitempty"`

	// Regions are the named regions to exercise.
	Regions []RegionSpec `json:"regions" yaml:"regions"`
}

// RegionSpec describes one region and the workers that enter it.
type RegionSpec struct {
	// Name is the region label, used verbatim in flush lines.
	Name string `json:"name" yaml:"name"`

	// Workers is the number of goroutines entering the region, each
	// owning its own record (default: 1).
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`

	// Busy is how long each entry stays inside the region.
	Busy Duration `json:"busy" yaml:"busy"`

	// Idle is the gap between entries (default: none).
	Idle Duration `json:"idle,omitempty" yaml:"idle,omitempty"`
}

// Duration is a time.Duration that unmarshals from "1s"/"500us"
// strings in both JSON and YAML.
type Duration time.Duration

// Value returns the wrapped time.Duration.
func (d Duration) Value() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

// MarshalJSON writes the duration in time.Duration string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a duration string.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"1s\": %w", err)
	}
	return d.parse(s)
}

// UnmarshalYAML accepts a duration string.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"1s\": %w", err)
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// workloadSchema is the JSON Schema every workload file must satisfy
// before it is unmarshaled. Durations are validated as Go duration
// strings.
const workloadSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["schemaVersion", "regions"],
  "properties": {
    "schemaVersion": {"type": "integer", "minimum": 1},
    "name": {"type": "string"},
    "duration": {"$ref": "#/definitions/duration"},
    "reportTarget": {"$ref": "#/definitions/duration"},
    "regions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "busy"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "workers": {"type": "integer", "minimum": 1},
          "busy": {"$ref": "#/definitions/duration"},
          "idle": {"$ref": "#/definitions/duration"}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false,
  "definitions": {
    "duration": {
      "type": "string",
      "pattern": "^([0-9]+(\\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$"
    }
  }
}`
