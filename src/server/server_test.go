package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewyi/pyparser/src/config"
	"github.com/andrewyi/pyparser/src/enum"
	"github.com/andrewyi/pyparser/src/util"
)

const indexPage = `<html><body><div class="sphinxsidebarwrapper"><ul>
<li><a href="https://docs.python.org/3.12/">Python 3.12 (stable)</a></li>
<li><a href="https://www.python.org/doc/versions/">All versions</a></li>
</ul></div></body></html>`

func newTestServer(t *testing.T) (*Server, *bytes.Buffer, *int32) {
	t.Helper()
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(indexPage))
	}))
	t.Cleanup(ts.Close)

	cfg := &config.Config{}
	require.NoError(t, util.ReadConfig("", config.Defaults(), cfg))
	dir := t.TempDir()
	cfg.Site.MainDocURL = ts.URL + "/3/"
	cfg.Cache.URL = filepath.Join(dir, "cache.sqlite")
	cfg.Storage.ResultsDir = filepath.Join(dir, "results")
	cfg.Storage.DownloadsDir = filepath.Join(dir, "downloads")
	cfg.Progress.Enabled = false

	logger, _ := test.NewNullLogger()
	var stdout bytes.Buffer
	s := NewServer()
	s.config = cfg
	s.logger = logger
	s.stdout = &stdout
	return s, &stdout, &calls
}

func TestRun_LatestVersionsPlain(t *testing.T) {
	s, stdout, _ := newTestServer(t)
	defer s.Stop()

	require.NoError(t, s.Run(enum.ModeLatestVersions, enum.OutputDefault, false))
	assert.Equal(t,
		"link version status\n"+
			"https://docs.python.org/3.12/ 3.12 stable\n"+
			"https://www.python.org/doc/versions/ All versions \n",
		stdout.String())
}

func TestRun_UsesAndClearsCache(t *testing.T) {
	s, _, calls := newTestServer(t)
	require.NoError(t, s.Run(enum.ModeLatestVersions, enum.OutputDefault, false))
	s.Stop()

	s2 := NewServer()
	s2.config, s2.logger, s2.stdout = s.config, s.logger, &bytes.Buffer{}
	require.NoError(t, s2.Run(enum.ModeLatestVersions, enum.OutputDefault, false))
	s2.Stop()
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))

	s3 := NewServer()
	s3.config, s3.logger, s3.stdout = s.config, s.logger, &bytes.Buffer{}
	require.NoError(t, s3.Run(enum.ModeLatestVersions, enum.OutputDefault, true))
	s3.Stop()
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func TestRun_FileOutput(t *testing.T) {
	s, stdout, _ := newTestServer(t)
	defer s.Stop()

	require.NoError(t, s.Run(enum.ModeLatestVersions, enum.OutputFile, false))
	assert.Empty(t, stdout.String())

	files, err := filepath.Glob(filepath.Join(s.config.Storage.ResultsDir, "latest-versions_*.csv"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestRun_UnknownCacheDriver(t *testing.T) {
	s, _, _ := newTestServer(t)
	defer s.Stop()
	s.config.Cache.Driver = "redis"

	assert.Error(t, s.Run(enum.ModeLatestVersions, enum.OutputDefault, false))
}
