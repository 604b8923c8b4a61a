package lap

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mpapenbr/laplog/pkg/laptime"
	"github.com/mpapenbr/laplog/pkg/model"
)

// positions of the fields within a log line
//
//	23:49:08.277 038 – F.MASSA 1 1:02.852 44,275
const (
	idxTimestamp = iota
	idxDriverCode
	idxSeparator
	idxDriverName
	idxLapNumber
	idxLapTime
	idxAvgSpeed
	numFields
)

// ParseLine decodes a single log line into a LapRecord.
// Tokens beyond the average speed are ignored.
func ParseLine(line string) (model.LapRecord, error) {
	parts := strings.Split(line, " ")
	if len(parts) < numFields {
		return model.LapRecord{}, fmt.Errorf("%w: expected %d fields, got %d",
			model.ErrMalformedLine, numFields, len(parts))
	}
	lapNo, err := strconv.Atoi(parts[idxLapNumber])
	if err != nil || lapNo < 1 {
		return model.LapRecord{}, fmt.Errorf("%w: lap number %q is not a positive integer",
			model.ErrFormat, parts[idxLapNumber])
	}
	lapTime := parts[idxLapTime]
	if _, err = laptime.Parse(lapTime); err != nil {
		return model.LapRecord{}, err
	}
	speed, err := strconv.ParseFloat(normalizeDecimal(parts[idxAvgSpeed]), 64)
	if err != nil || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return model.LapRecord{}, fmt.Errorf("%w: average speed %q is not a number",
			model.ErrFormat, parts[idxAvgSpeed])
	}
	return model.LapRecord{
		Timestamp: parts[idxTimestamp],
		Driver: model.Driver{
			Code: parts[idxDriverCode],
			Name: parts[idxDriverName],
		},
		Lap: model.Lap{
			Number:   lapNo,
			Time:     lapTime,
			AvgSpeed: speed,
		},
	}, nil
}

// the log uses a comma as decimal separator
func normalizeDecimal(s string) string {
	return strings.Replace(s, ",", ".", 1)
}
