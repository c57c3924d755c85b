package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewyi/pyparser/src/entity"
	"github.com/andrewyi/pyparser/src/enum"
	"github.com/andrewyi/pyparser/src/filestorage"
)

var results = entity.Table{
	{"link", "version", "status"},
	{"https://docs.python.org/3.12/", "3.12", "stable"},
	{"https://docs.python.org/2.0/", "Python 2.0", ""},
}

func TestControl_Plain(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := test.NewNullLogger()
	o := NewOutput(&buf, nil, "2006-01-02_15-04-05", logger)

	require.NoError(t, o.Control(results, enum.OutputDefault, enum.ModeLatestVersions))
	assert.Equal(t,
		"link version status\n"+
			"https://docs.python.org/3.12/ 3.12 stable\n"+
			"https://docs.python.org/2.0/ Python 2.0 \n",
		buf.String())
}

func TestControl_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := test.NewNullLogger()
	o := NewOutput(&buf, nil, "2006-01-02_15-04-05", logger)

	require.NoError(t, o.Control(results, enum.OutputPretty, enum.ModeLatestVersions))
	out := buf.String()
	assert.Contains(t, out, "LINK")
	assert.Contains(t, out, "VERSION")
	assert.Contains(t, out, "| https://docs.python.org/3.12/ | 3.12       | stable |")
	assert.Contains(t, out, "+-")
}

func TestControl_File(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")
	logger, hook := test.NewNullLogger()
	o := NewOutput(nil, filestorage.NewSimpleFileStorage(dir), "2006-01-02_15-04-05", logger)
	o.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) }

	table := entity.Table{
		{"status", "count"},
		{"Standards Track, Final", "1"},
		{"TOTAL", "1"},
	}
	require.NoError(t, o.Control(table, enum.OutputFile, enum.ModePep))

	fp := filepath.Join(dir, "pep_2024-05-06_07-08-09.csv")
	content, err := os.ReadFile(fp)
	require.NoError(t, err)
	assert.Equal(t, "status,count\n\"Standards Track, Final\",1\nTOTAL,1\n", string(content))

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, fp, hook.LastEntry().Data["path"])
}
