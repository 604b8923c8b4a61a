package model

// Driver is identified by Code. Name is informational only.
type Driver struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Lap struct {
	Number   int     `json:"number"`
	Time     string  `json:"time"` // canonical lap time text (M:SS.mmm)
	AvgSpeed float64 `json:"avgSpeed"`
}

// LapRecord is one decoded log line
type LapRecord struct {
	Timestamp string `json:"timestamp"`
	Driver    Driver `json:"driver"`
	Lap       Lap    `json:"lap"`
}

type DriverResult struct {
	Driver    Driver  `json:"driver"`
	TotalLaps int     `json:"totalLaps"`
	TotalTime float64 `json:"totalTime"` // seconds
}

// BestLap is a lap together with the driver who did it.
// Seconds is derived from Lap.Time.
type BestLap struct {
	Driver  Driver  `json:"driver"`
	Lap     Lap     `json:"lap"`
	Seconds float64 `json:"seconds"`
}

type Standing struct {
	Position int          `json:"position"`
	Result   DriverResult `json:"result"`
	BestLap  *Lap         `json:"bestLap,omitempty"`
}

type Report struct {
	RunID     string     `json:"runId"`
	Standings []Standing `json:"standings"`
	Lines     []string   `json:"lines"`
	BestLap   *BestLap   `json:"bestLap,omitempty"`
	Summary   string     `json:"summary,omitempty"`
}
