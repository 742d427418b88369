package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validWorkload() *Workload {
	return &Workload{
		SchemaVersion: SchemaVersion,
		Duration:      Duration(5 * time.Second),
		ReportTarget:  Duration(time.Second),
		Regions: []RegionSpec{
			{Name: "db", Workers: 2, Busy: Duration(time.Millisecond)},
		},
	}
}

func TestValidateWorkloadOK(t *testing.T) {
	assert.Empty(t, ValidateWorkload(validWorkload()))
}

func TestValidateWorkloadDuplicateRegion(t *testing.T) {
	w := validWorkload()
	w.Regions = append(w.Regions, RegionSpec{Name: "db", Workers: 1, Busy: Duration(time.Millisecond)})

	errs := ValidateWorkload(w)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate region name")
}

func TestValidateWorkloadBusyLongerThanRun(t *testing.T) {
	w := validWorkload()
	w.Regions[0].Busy = Duration(time.Minute)

	errs := ValidateWorkload(w)
	assert.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "never flush")
}

func TestValidateWorkloadFieldErrors(t *testing.T) {
	w := &Workload{
		Duration:     Duration(-time.Second),
		ReportTarget: 0,
		Regions: []RegionSpec{
			{Name: "", Workers: 0, Busy: 0, Idle: Duration(-time.Millisecond)},
		},
	}

	errs := ValidateWorkload(w)
	paths := make(map[string]bool)
	for _, e := range errs {
		paths[e.Path] = true
	}

	for _, want := range []string{
		"duration",
		"reportTarget",
		"regions[0].name",
		"regions[0].workers",
		"regions[0].busy",
		"regions[0].idle",
	} {
		assert.True(t, paths[want], "missing validation error for %s (got %v)", want, errs)
	}
}
