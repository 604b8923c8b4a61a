// Package lapdata contains expected values for the bundled sample session.
package lapdata

import "github.com/mpapenbr/laplog/pkg/model"

// SampleReportLines is the classification of sample.Session()
func SampleReportLines() []string {
	return []string{
		"1. 038 - F.MASSA - 4 laps - total time: 4:11.578 - best lap: 1:02.769",
		"2. 002 - K.RAIKKONEN - 4 laps - total time: 4:15.153 - best lap: 1:03.076",
		"3. 033 - R.BARRICHELLO - 4 laps - total time: 4:16.080 - best lap: 1:03.716",
		"4. 023 - M.WEBBER - 4 laps - total time: 4:17.722 - best lap: 1:04.216",
		"5. 015 - F.ALONSO - 4 laps - total time: 4:54.221 - best lap: 1:07.011",
		"6. 011 - S.VETTEL - 3 laps - total time: 6:27.276 - best lap: 1:18.097",
	}
}

func SampleSummary() string {
	return "best lap overall: 1:02.769 (038 - F.MASSA) - avg speed 44.334"
}

// SampleReport is a small report used by encoder tests
func SampleReport() *model.Report {
	massa := model.Driver{Code: "038", Name: "F.MASSA"}
	best := model.Lap{Number: 3, Time: "1:02.769", AvgSpeed: 44.334}
	return &model.Report{
		RunID: "run-1",
		Standings: []model.Standing{
			{
				Position: 1,
				Result:   model.DriverResult{Driver: massa, TotalLaps: 3, TotalTime: 188.791},
				BestLap:  &best,
			},
		},
		Lines:   []string{"1. 038 - F.MASSA - 3 laps - total time: 3:08.791 - best lap: 1:02.769"},
		BestLap: &model.BestLap{Driver: massa, Lap: best, Seconds: 62.769},
		Summary: "best lap overall: 1:02.769 (038 - F.MASSA) - avg speed 44.334",
	}
}
