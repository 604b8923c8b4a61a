package race

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/mpapenbr/laplog/pkg/laptime"
	"github.com/mpapenbr/laplog/pkg/model"
)

// Result holds the aggregated data of a session
type Result struct {
	Order    []string                 // driver codes in first-seen order
	Results  []model.DriverResult     // same order as Order
	BestLaps map[string]model.BestLap // key: driver code
	Overall  *model.BestLap           // nil if there are no laps
}

// driverLaps is the group of records of one driver code.
// The first record defines the driver identity.
type driverLaps struct {
	driver  model.Driver
	records []model.LapRecord
}

// Aggregate computes totals and best laps.
// records are expected to be produced by lap.ParseLine, lap times that
// cannot be parsed count as zero.
func Aggregate(records []model.LapRecord) *Result {
	order, groups := groupByDriver(records)
	ret := &Result{
		Order:    order,
		Results:  make([]model.DriverResult, 0, len(order)),
		BestLaps: make(map[string]model.BestLap, len(order)),
	}
	for _, code := range order {
		g := groups[code]
		ret.Results = append(ret.Results, totals(g))
		ret.BestLaps[code] = bestLap(g)
	}
	ret.Overall = OverallBest(ret.BestLaps, order)
	return ret
}

// Totals computes per driver lap count and summed lap time in first-seen
// order of driver codes.
func Totals(records []model.LapRecord) []model.DriverResult {
	order, groups := groupByDriver(records)
	return lo.Map(order, func(code string, _ int) model.DriverResult {
		return totals(groups[code])
	})
}

// BestLaps returns the fastest lap per driver code. On equal times the
// first one wins.
func BestLaps(records []model.LapRecord) map[string]model.BestLap {
	_, groups := groupByDriver(records)
	return lo.MapValues(groups, func(g *driverLaps, _ string) model.BestLap {
		return bestLap(g)
	})
}

// OverallBest returns the fastest of the per driver best laps, visiting
// drivers in the given order. On equal times the first one wins.
func OverallBest(best map[string]model.BestLap, order []string) *model.BestLap {
	var ret *model.BestLap
	for _, code := range order {
		candidate, ok := best[code]
		if !ok {
			continue
		}
		if ret == nil || candidate.Seconds < ret.Seconds {
			ret = &candidate
		}
	}
	return ret
}

func groupByDriver(records []model.LapRecord) (order []string, groups map[string]*driverLaps) {
	groups = make(map[string]*driverLaps)
	for i := range records {
		code := records[i].Driver.Code
		g, ok := groups[code]
		if !ok {
			g = &driverLaps{driver: records[i].Driver}
			groups[code] = g
			order = append(order, code)
		}
		g.records = append(g.records, records[i])
	}
	return order, groups
}

func totals(g *driverLaps) model.DriverResult {
	sum := lo.Reduce(g.records, func(agg decimal.Decimal, r model.LapRecord, _ int) decimal.Decimal {
		return agg.Add(lapSeconds(r.Lap))
	}, decimal.Zero)
	return model.DriverResult{
		Driver:    g.driver,
		TotalLaps: len(g.records),
		TotalTime: sum.InexactFloat64(),
	}
}

func bestLap(g *driverLaps) model.BestLap {
	best := g.records[0].Lap
	bestSecs := lapSeconds(best)
	for _, r := range g.records[1:] {
		if secs := lapSeconds(r.Lap); secs.LessThan(bestSecs) {
			best, bestSecs = r.Lap, secs
		}
	}
	return model.BestLap{
		Driver:  g.driver,
		Lap:     best,
		Seconds: bestSecs.InexactFloat64(),
	}
}

func lapSeconds(l model.Lap) decimal.Decimal {
	d, err := laptime.ParseDecimal(l.Time)
	if err != nil {
		return decimal.Zero
	}
	return d
}
