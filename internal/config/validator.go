package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a workload validation error.
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidateWorkload checks the semantic constraints the JSON schema
// cannot express: positive durations, distinct region names, a sane
// relationship between busy time and the reporting target.
func ValidateWorkload(w *Workload) []ValidationError {
	var errors []ValidationError

	if len(w.Regions) == 0 {
		errors = append(errors, ValidationError{
			Path:    "regions",
			Message: "at least one region is required",
		})
	}

	if w.Duration <= 0 {
		errors = append(errors, ValidationError{
			Path:    "duration",
			Message: "duration must be positive",
		})
	}
	if w.ReportTarget <= 0 {
		errors = append(errors, ValidationError{
			Path:    "reportTarget",
			Message: "reportTarget must be positive",
		})
	}

	seen := make(map[string]bool)
	for i, region := range w.Regions {
		if region.Name == "" {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("regions[%d].name", i),
				Message: "name is required",
			})
		} else if seen[region.Name] {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("regions[%d].name", i),
				Message: fmt.Sprintf("duplicate region name: %s", region.Name),
			})
		}
		seen[region.Name] = true

		if region.Workers < 1 {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("regions[%d].workers", i),
				Message: "workers must be at least 1",
			})
		}
		if region.Busy <= 0 {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("regions[%d].busy", i),
				Message: "busy must be positive",
			})
		}
		if region.Idle < 0 {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("regions[%d].idle", i),
				Message: "idle cannot be negative",
			})
		}
		if w.ReportTarget > 0 && region.Busy.Value() > w.Duration.Value() {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("regions[%d].busy", i),
				Message: "busy exceeds the run duration; the region would never flush",
			})
		}
	}

	return errors
}

func joinErrors(errs []ValidationError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}
