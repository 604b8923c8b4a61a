// Package standings ranks driver results and renders the classification.
package standings

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/samber/lo"

	"github.com/mpapenbr/laplog/pkg/laptime"
	"github.com/mpapenbr/laplog/pkg/model"
	"github.com/mpapenbr/laplog/pkg/processing/race"
)

// Rank orders results by laps (more first), then total time (less first).
// The sort is stable, equal keys keep their input order.
func Rank(results []model.DriverResult) []model.DriverResult {
	ret := slices.Clone(results)
	slices.SortStableFunc(ret, compareResults)
	return ret
}

func compareResults(a, b model.DriverResult) int {
	if a.TotalLaps != b.TotalLaps {
		return b.TotalLaps - a.TotalLaps
	}
	switch {
	case a.TotalTime < b.TotalTime:
		return -1
	case a.TotalTime > b.TotalTime:
		return 1
	default:
		return 0
	}
}

// Build creates the report for the aggregated data
func Build(agg *race.Result) model.Report {
	ranked := Rank(agg.Results)
	standings := lo.Map(ranked, func(r model.DriverResult, i int) model.Standing {
		s := model.Standing{Position: i + 1, Result: r}
		if best, ok := agg.BestLaps[r.Driver.Code]; ok {
			s.BestLap = &best.Lap
		}
		return s
	})
	ret := model.Report{
		Standings: standings,
		Lines:     lo.Map(standings, func(s model.Standing, _ int) string { return FormatLine(s) }),
		BestLap:   agg.Overall,
	}
	if agg.Overall != nil {
		ret.Summary = FormatSummary(agg.Overall)
	}
	return ret
}

// FormatLine renders one classification line
//
//	1. 038 - F.MASSA - 4 laps - total time: 4:11.578 - best lap: 1:02.769
func FormatLine(s model.Standing) string {
	line := fmt.Sprintf("%d. %s - %s - %d %s - total time: %s",
		s.Position,
		s.Result.Driver.Code,
		s.Result.Driver.Name,
		s.Result.TotalLaps,
		lo.Ternary(s.Result.TotalLaps == 1, "lap", "laps"),
		laptime.Format(s.Result.TotalTime))
	if s.BestLap != nil {
		line += " - best lap: " + s.BestLap.Time
	}
	return line
}

// FormatSummary renders the overall best lap line
func FormatSummary(best *model.BestLap) string {
	return fmt.Sprintf("best lap overall: %s (%s - %s) - avg speed %s",
		best.Lap.Time,
		best.Driver.Code,
		best.Driver.Name,
		strconv.FormatFloat(best.Lap.AvgSpeed, 'f', -1, 64))
}
