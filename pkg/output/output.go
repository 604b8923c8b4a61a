// Package output renders a report as text, json or yaml.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/mpapenbr/laplog/pkg/laptime"
	"github.com/mpapenbr/laplog/pkg/model"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func Write(w io.Writer, f Format, r *model.Report) error {
	switch f {
	case FormatText:
		return writeText(w, r)
	case FormatJSON:
		_, err := io.WriteString(w, oj.JSON(document(r), &ojg.Options{Indent: 2, Sort: true})+"\n")
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document(r)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// writeText writes the classification lines followed by the summary
func writeText(w io.Writer, r *model.Report) error {
	var sb strings.Builder
	for _, line := range r.Lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if r.Summary != "" {
		sb.WriteString("\n")
		sb.WriteString(r.Summary)
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// document converts the report into generic data shared by the json and
// yaml encoders.
func document(r *model.Report) map[string]any {
	doc := map[string]any{
		"runId": r.RunID,
		"standings": lo.Map(r.Standings, func(s model.Standing, _ int) any {
			entry := map[string]any{
				"position":     s.Position,
				"code":         s.Result.Driver.Code,
				"name":         s.Result.Driver.Name,
				"laps":         s.Result.TotalLaps,
				"totalTime":    laptime.Format(s.Result.TotalTime),
				"totalSeconds": s.Result.TotalTime,
			}
			if s.BestLap != nil {
				entry["bestLap"] = s.BestLap.Time
			}
			return entry
		}),
	}
	if r.BestLap != nil {
		doc["bestLap"] = map[string]any{
			"code":     r.BestLap.Driver.Code,
			"name":     r.BestLap.Driver.Name,
			"lap":      r.BestLap.Lap.Number,
			"time":     r.BestLap.Lap.Time,
			"avgSpeed": r.BestLap.Lap.AvgSpeed,
		}
	}
	return doc
}
