//nolint:funlen,lll // ok for tests
package output

import (
	"bytes"
	"testing"

	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mpapenbr/laplog/pkg/model"
	"github.com/mpapenbr/laplog/testsupport/lapdata"
)

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "JSON", "yaml"} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWrite_Text(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, FormatText, lapdata.SampleReport()))
	assert.Equal(t,
		"1. 038 - F.MASSA - 3 laps - total time: 3:08.791 - best lap: 1:02.769\n"+
			"\n"+
			"best lap overall: 1:02.769 (038 - F.MASSA) - avg speed 44.334\n",
		buf.String())
}

func TestWrite_TextEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, FormatText, &model.Report{}))
	assert.Equal(t, "", buf.String())
}

func TestWrite_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, FormatJSON, lapdata.SampleReport()))

	parsed, err := oj.ParseString(buf.String())
	require.NoError(t, err)
	doc, ok := parsed.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "run-1", doc["runId"])

	standings, ok := doc["standings"].([]any)
	require.True(t, ok)
	require.Len(t, standings, 1)
	first, ok := standings[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "038", first["code"])
	assert.Equal(t, "3:08.791", first["totalTime"])
	assert.Equal(t, "1:02.769", first["bestLap"])
	assert.EqualValues(t, 3, first["laps"])

	best, ok := doc["bestLap"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1:02.769", best["time"])
	assert.Equal(t, 44.334, best["avgSpeed"])
}

func TestWrite_JSONWithoutBestLap(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, FormatJSON, &model.Report{RunID: "x"}))
	parsed, err := oj.ParseString(buf.String())
	require.NoError(t, err)
	doc, ok := parsed.(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, doc, "bestLap")
}

func TestWrite_YAML(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, FormatYAML, lapdata.SampleReport()))

	var doc struct {
		RunID     string `yaml:"runId"`
		Standings []struct {
			Position  int    `yaml:"position"`
			Code      string `yaml:"code"`
			TotalTime string `yaml:"totalTime"`
		} `yaml:"standings"`
		BestLap struct {
			Time     string  `yaml:"time"`
			AvgSpeed float64 `yaml:"avgSpeed"`
		} `yaml:"bestLap"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "run-1", doc.RunID)
	require.Len(t, doc.Standings, 1)
	assert.Equal(t, 1, doc.Standings[0].Position)
	assert.Equal(t, "3:08.791", doc.Standings[0].TotalTime)
	assert.Equal(t, 44.334, doc.BestLap.AvgSpeed)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, Format("xml"), &model.Report{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
