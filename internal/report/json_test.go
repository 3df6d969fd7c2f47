package report_test

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/andres-erbsen/clock"
	"github.com/robgonnella/vlanscan/internal/config"
	"github.com/robgonnella/vlanscan/internal/discovery"
	"github.com/robgonnella/vlanscan/internal/exception"
	"github.com/robgonnella/vlanscan/internal/report"
	"github.com/stretchr/testify/assert"
)

var fileNameRegexp = regexp.MustCompile(`^vlan_ips_\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}\.json$`)

func TestJSONFileSink(t *testing.T) {
	t.Run("writes timestamped pretty-printed report", func(st *testing.T) {
		dir := st.TempDir()
		mockClock := clock.NewMock()
		mockClock.Add(24 * time.Hour)

		sink := report.NewJSONFileSink(dir, report.WithClock(mockClock))

		results := []discovery.Result{*discovery.NewResult(200, "10.0.0.5/24")}

		reportFile, err := sink.Write(results)

		assert.NoError(st, err)
		assert.Equal(st, dir, filepath.Dir(reportFile))
		assert.Equal(st, report.FileName(mockClock), filepath.Base(reportFile))
		assert.Regexp(st, fileNameRegexp, filepath.Base(reportFile))

		data, err := os.ReadFile(reportFile)

		assert.NoError(st, err)
		assert.Equal(
			st,
			"[\n  {\n    \"vlan_id\": 200,\n    \"ip_address\": \"10.0.0.5/24\"\n  }\n]",
			string(data),
		)
	})

	t.Run("round trips results", func(st *testing.T) {
		sink := report.NewJSONFileSink(st.TempDir())

		results := []discovery.Result{
			*discovery.NewResult(10, "192.168.10.20/24"),
			*discovery.NewResult(200, "10.0.0.5/24"),
			{VLANID: 300, IPAddress: nil},
		}

		reportFile, err := sink.Write(results)

		assert.NoError(st, err)

		entries, err := report.Load(reportFile)

		assert.NoError(st, err)
		assert.Equal(st, len(results), len(entries))

		for i, r := range results {
			assert.Equal(st, r.VLANID, entries[i].VLANID)
			assert.Equal(st, r.IPAddress, entries[i].IPAddress)
			assert.Empty(st, entries[i].SubnetMask)
			assert.Nil(st, entries[i].PossibleHosts)
		}
	})

	t.Run("writes empty array when nothing was found", func(st *testing.T) {
		sink := report.NewJSONFileSink(st.TempDir())

		reportFile, err := sink.Write(nil)

		assert.NoError(st, err)

		data, err := os.ReadFile(reportFile)

		assert.NoError(st, err)
		assert.Equal(st, "[]", string(data))
	})

	t.Run("enriches entries when configured", func(st *testing.T) {
		sink := report.NewJSONFileSink(
			st.TempDir(),
			report.WithEnrichment(config.Report{
				SubnetMask:    true,
				PossibleHosts: true,
			}),
		)

		reportFile, err := sink.Write([]discovery.Result{
			*discovery.NewResult(200, "10.0.0.5/24"),
		})

		assert.NoError(st, err)

		entries, err := report.Load(reportFile)

		assert.NoError(st, err)
		assert.Equal(st, 1, len(entries))
		assert.Equal(st, "255.255.255.0", entries[0].SubnetMask)
		assert.NotNil(st, entries[0].PossibleHosts)
		assert.Equal(st, uint64(254), *entries[0].PossibleHosts)
	})

	t.Run("creates missing output directory", func(st *testing.T) {
		dir := path.Join(st.TempDir(), "reports", "nested")
		sink := report.NewJSONFileSink(dir)

		reportFile, err := sink.Write(nil)

		assert.NoError(st, err)
		assert.FileExists(st, reportFile)
	})

	t.Run("returns report write error when file cannot be created", func(st *testing.T) {
		notADir := path.Join(st.TempDir(), "file")

		err := os.WriteFile(notADir, []byte{}, 0644)

		assert.NoError(st, err)

		sink := report.NewJSONFileSink(notADir)

		_, err = sink.Write([]discovery.Result{*discovery.NewResult(1, "10.0.0.1/8")})

		assert.Error(st, err)
		assert.True(st, errors.Is(err, exception.ErrReportWrite))
	})
}

func TestLoad(t *testing.T) {
	t.Run("returns error for missing file", func(st *testing.T) {
		_, err := report.Load(path.Join(st.TempDir(), "missing.json"))

		assert.True(st, errors.Is(err, os.ErrNotExist))
	})

	t.Run("decodes null ip address", func(st *testing.T) {
		reportFile := path.Join(st.TempDir(), "vlan_ips_2024-01-02_03-04-05.json")

		err := os.WriteFile(
			reportFile,
			[]byte(`[{"vlan_id": 5, "ip_address": null}]`),
			0644,
		)

		assert.NoError(st, err)

		entries, err := report.Load(reportFile)

		assert.NoError(st, err)
		assert.Equal(st, []report.Entry{{VLANID: 5}}, entries)
	})
}
