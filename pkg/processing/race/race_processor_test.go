//nolint:funlen,lll // ok for tests
package race

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/mpapenbr/laplog/pkg/model"
)

var (
	massa   = model.Driver{Code: "038", Name: "F.MASSA"}
	raikkon = model.Driver{Code: "002", Name: "K.RAIKKONEN"}
)

func rec(d model.Driver, lapNo int, lapTime string, speed float64) model.LapRecord {
	return model.LapRecord{
		Timestamp: "23:49:08.277",
		Driver:    d,
		Lap:       model.Lap{Number: lapNo, Time: lapTime, AvgSpeed: speed},
	}
}

func massaLaps() []model.LapRecord {
	return []model.LapRecord{
		rec(massa, 1, "1:02.852", 44.275),
		rec(massa, 2, "1:03.170", 44.053),
		rec(massa, 3, "1:02.769", 44.334),
	}
}

func TestTotals(t *testing.T) {
	got := Totals(massaLaps())
	assert.Len(t, got, 1)
	assert.Equal(t, massa, got[0].Driver)
	assert.Equal(t, 3, got[0].TotalLaps)
	assert.InDelta(t, 188.791, got[0].TotalTime, 1e-9)
}

func TestTotals_FirstSeenIdentity(t *testing.T) {
	records := append(massaLaps(),
		rec(raikkon, 1, "1:04.108", 43.408),
		rec(model.Driver{Code: "038", Name: "F.MASS"}, 4, "1:02.787", 44.321),
	)
	got := Totals(records)
	want := []model.DriverResult{
		{Driver: massa, TotalLaps: 4, TotalTime: 251.578},
		{Driver: raikkon, TotalLaps: 1, TotalTime: 64.108},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Totals() mismatch (-want +got):\n%s", diff)
	}
}

func TestBestLaps(t *testing.T) {
	records := append(massaLaps(),
		rec(raikkon, 1, "1:04.108", 43.408),
		rec(raikkon, 2, "1:03.982", 43.493),
	)
	got := BestLaps(records)
	want := map[string]model.BestLap{
		"038": {Driver: massa, Lap: model.Lap{Number: 3, Time: "1:02.769", AvgSpeed: 44.334}, Seconds: 62.769},
		"002": {Driver: raikkon, Lap: model.Lap{Number: 2, Time: "1:03.982", AvgSpeed: 43.493}, Seconds: 63.982},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BestLaps() mismatch (-want +got):\n%s", diff)
	}
}

func TestBestLaps_TieFirstSeenWins(t *testing.T) {
	got := BestLaps([]model.LapRecord{
		rec(massa, 1, "1:02.000", 40),
		rec(massa, 2, "1:02.000", 41),
	})
	assert.Equal(t, 1, got["038"].Lap.Number)
}

func TestOverallBest(t *testing.T) {
	best := map[string]model.BestLap{
		"002": {Driver: raikkon, Lap: model.Lap{Number: 4, Time: "1:03.076"}, Seconds: 63.076},
		"038": {Driver: massa, Lap: model.Lap{Number: 3, Time: "1:02.769"}, Seconds: 62.769},
		"099": {Driver: model.Driver{Code: "099"}, Lap: model.Lap{Number: 1, Time: "1:02.769"}, Seconds: 62.769},
	}
	tests := []struct {
		name  string
		order []string
		want  string
	}{
		// the candidate must be compared against the running best,
		// the slower driver coming first must not win
		{name: "slower first", order: []string{"002", "038"}, want: "038"},
		{name: "faster first", order: []string{"038", "002"}, want: "038"},
		{name: "tie first seen", order: []string{"002", "099", "038"}, want: "099"},
		{name: "unknown code skipped", order: []string{"xxx", "002"}, want: "002"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverallBest(best, tt.order)
			if assert.NotNil(t, got) {
				assert.Equal(t, tt.want, got.Driver.Code)
			}
		})
	}
	assert.Nil(t, OverallBest(best, nil))
}

func TestAggregate(t *testing.T) {
	records := append(massaLaps(),
		rec(raikkon, 1, "1:04.108", 43.408),
		rec(model.Driver{Code: "038", Name: "F.MASS"}, 4, "1:02.787", 44.321),
	)
	got := Aggregate(records)
	assert.Equal(t, []string{"038", "002"}, got.Order)
	assert.Len(t, got.Results, 2)
	assert.Equal(t, 4, got.Results[0].TotalLaps)
	assert.Equal(t, massa, got.BestLaps["038"].Driver)
	assert.Equal(t, "1:02.769", got.BestLaps["038"].Lap.Time)
	if assert.NotNil(t, got.Overall) {
		assert.Equal(t, "1:02.769", got.Overall.Lap.Time)
		assert.Equal(t, 44.334, got.Overall.Lap.AvgSpeed)
	}
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil)
	assert.Empty(t, got.Results)
	assert.Empty(t, got.BestLaps)
	assert.Nil(t, got.Overall)
}
