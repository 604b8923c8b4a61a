package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpapenbr/laplog/version"
)

func TestNewVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})
	assert.NoError(t, cmd.Execute())
	assert.Equal(t, version.FullVersion+"\n", buf.String())
}
