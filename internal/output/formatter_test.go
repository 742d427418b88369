package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/wesleyorama2/regionprof/internal/report"
)

func TestWriteSummaryTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	WriteSummaryTable(&buf, nil, NoColorScheme())

	if !strings.Contains(buf.String(), "no regions flushed") {
		t.Errorf("empty table output = %q", buf.String())
	}
}

func TestWriteSummaryTable(t *testing.T) {
	regions := []report.RegionSummary{
		{
			Region:        "db",
			Flushes:       12,
			Hits:          4813,
			TotalMeasured: 1200 * time.Millisecond,
			PerHitP50:     230,
			PerHitP95:     410,
			PerHitMax:     1820,
			BusyP50:       23.5,
			BusyP95:       41.0,
			BusyMax:       67.2,
		},
		{
			Region:        "render",
			Flushes:       3,
			Hits:          9,
			TotalMeasured: 40 * time.Millisecond,
			BusyMax:       99.9,
		},
	}

	var buf bytes.Buffer
	WriteSummaryTable(&buf, regions, NoColorScheme())

	got := buf.String()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want header + 2 rows:\n%s", len(lines), got)
	}

	if !strings.HasPrefix(lines[0], "REGION") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "db") {
		t.Errorf("first row = %q, want busiest region first", lines[1])
	}
	if !strings.Contains(lines[1], "230/410/1820 microsec") {
		t.Errorf("db row missing per-hit stats: %q", lines[1])
	}
	if !strings.Contains(lines[1], "23.5%/41.0%/67.2%") {
		t.Errorf("db row missing busy stats: %q", lines[1])
	}
	if !strings.Contains(lines[2], "render") {
		t.Errorf("second row = %q", lines[2])
	}
}

func TestSchemeForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	if IsTerminal(&buf) {
		t.Error("a bytes.Buffer is not a terminal")
	}

	scheme := SchemeFor(&buf, false)

	var out bytes.Buffer
	scheme.Hot.Fprintf(&out, "hot")
	if out.String() != "hot" {
		t.Errorf("non-terminal output carries escape codes: %q", out.String())
	}
}
