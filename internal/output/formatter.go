package output

import (
	"fmt"
	"io"

	"github.com/wesleyorama2/regionprof/internal/report"
)

// WriteSummaryTable renders the per-region summary, busiest region
// first, one row per region:
//
//	REGION   FLUSHES  HITS    TOTAL      PER-HIT P50/P95/MAX     BUSY P50/P95/MAX
//	db       12       4813    1.20s      230/410/1820 microsec   23.5%/41.0%/67.2%
func WriteSummaryTable(w io.Writer, regions []report.RegionSummary, scheme *ColorScheme) {
	if len(regions) == 0 {
		scheme.Dim.Fprintln(w, "no regions flushed")
		return
	}

	nameWidth := len("REGION")
	for _, r := range regions {
		if len(r.Region) > nameWidth {
			nameWidth = len(r.Region)
		}
	}

	scheme.Header.Fprintf(w, "%-*s  %8s  %8s  %10s  %-22s  %s\n",
		nameWidth, "REGION", "FLUSHES", "HITS", "TOTAL",
		"PER-HIT P50/P95/MAX", "BUSY P50/P95/MAX")

	for _, r := range regions {
		busyColor := scheme.Busy
		if r.BusyMax >= HotBusyPercent {
			busyColor = scheme.Hot
		}

		scheme.Region.Fprintf(w, "%-*s", nameWidth, r.Region)
		scheme.Value.Fprintf(w, "  %8d  %8d  %10s",
			r.Flushes, r.Hits, r.TotalMeasured.String())
		scheme.Value.Fprintf(w, "  %-22s",
			fmt.Sprintf("%d/%d/%d microsec", r.PerHitP50, r.PerHitP95, r.PerHitMax))
		busyColor.Fprintf(w, "  %.1f%%/%.1f%%/%.1f%%",
			r.BusyP50, r.BusyP95, r.BusyMax)
		fmt.Fprintln(w)
	}
}
