package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/robgonnella/vlanscan/cli/commands"
	"github.com/robgonnella/vlanscan/internal/command"
	"github.com/robgonnella/vlanscan/internal/config"
	"github.com/robgonnella/vlanscan/internal/core"
	"github.com/robgonnella/vlanscan/internal/discovery"
	"github.com/robgonnella/vlanscan/internal/exception"
	mock_command "github.com/robgonnella/vlanscan/internal/mock/command"
	mock_discovery "github.com/robgonnella/vlanscan/internal/mock/discovery"
	mock_report "github.com/robgonnella/vlanscan/internal/mock/report"
	"github.com/stretchr/testify/assert"
)

var errStop = errors.New("stop")

func execute(props *commands.CommandProps, args ...string) (string, error) {
	cmd := commands.Root(props)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func captureConfig(captured *config.Config) *commands.CommandProps {
	return &commands.CommandProps{
		CreateCore: func(conf config.Config) (*core.Core, error) {
			*captured = conf
			return nil, errStop
		},
	}
}

func TestRoot(t *testing.T) {
	t.Run("uses defaults when nothing is set", func(st *testing.T) {
		var conf config.Config

		_, err := execute(
			captureConfig(&conf),
			"--silent",
			"--config", path.Join(st.TempDir(), "missing.yml"),
		)

		assert.ErrorIs(st, err, errStop)
		assert.Equal(st, config.Default(), conf)
	})

	t.Run("flags override config file", func(st *testing.T) {
		confPath := path.Join(st.TempDir(), "vlanscan.yml")

		err := os.WriteFile(confPath, []byte("interface: eth2\nwait: 9\nrangeStart: 5\nrangeEnd: 6\n"), 0644)

		assert.NoError(st, err)

		var conf config.Config

		_, err = execute(
			captureConfig(&conf),
			"--silent",
			"--config", confPath,
			"-i", "eth1",
			"-r", "200-202",
			"--subnet-mask",
		)

		assert.ErrorIs(st, err, errStop)
		assert.Equal(st, "eth1", conf.Interface)
		assert.Equal(st, 9, conf.Wait)
		assert.Equal(st, 200, conf.RangeStart)
		assert.Equal(st, 202, conf.RangeEnd)
		assert.True(st, conf.Report.SubnetMask)
		assert.False(st, conf.Report.PossibleHosts)
	})

	t.Run("false bool flags override true values from config file", func(st *testing.T) {
		confPath := path.Join(st.TempDir(), "vlanscan.yml")

		err := os.WriteFile(confPath, []byte("report:\n  subnetMask: true\n  possibleHosts: true\n"), 0644)

		assert.NoError(st, err)

		var conf config.Config

		_, err = execute(
			captureConfig(&conf),
			"--silent",
			"--config", confPath,
			"--subnet-mask=false",
		)

		assert.ErrorIs(st, err, errStop)
		assert.False(st, conf.Report.SubnetMask)
		assert.True(st, conf.Report.PossibleHosts)
	})

	t.Run("rejects explicitly empty output dir", func(st *testing.T) {
		var conf config.Config

		_, err := execute(
			captureConfig(&conf),
			"--silent",
			"--config", path.Join(st.TempDir(), "missing.yml"),
			"-o", "",
		)

		assert.ErrorIs(st, err, exception.ErrInvalidConfig)
		assert.Equal(st, config.Config{}, conf)
	})

	t.Run("rejects invalid range before creating core", func(st *testing.T) {
		var conf config.Config

		_, err := execute(
			captureConfig(&conf),
			"--silent",
			"--config", path.Join(st.TempDir(), "missing.yml"),
			"-r", "0-5000",
		)

		assert.ErrorIs(st, err, exception.ErrInvalidConfig)
		assert.Equal(st, config.Config{}, conf)
	})

	t.Run("rejects zero wait", func(st *testing.T) {
		var conf config.Config

		_, err := execute(
			captureConfig(&conf),
			"--silent",
			"--config", path.Join(st.TempDir(), "missing.yml"),
			"-w", "0",
		)

		assert.ErrorIs(st, err, exception.ErrInvalidConfig)
	})

	t.Run("runs scan and writes report", func(st *testing.T) {
		ctrl := gomock.NewController(st)

		defer ctrl.Finish()

		mockProber := mock_discovery.NewMockProber(ctrl)
		mockSink := mock_report.NewMockSink(ctrl)

		props := &commands.CommandProps{
			CreateCore: func(conf config.Config) (*core.Core, error) {
				return core.New(conf, mockProber, mockSink), nil
			},
		}

		found := discovery.NewResult(201, "10.20.1.4/24")

		mockProber.EXPECT().Probe(gomock.Any(), "eth1", 200, gomock.Any()).Return(nil, nil)
		mockProber.EXPECT().Probe(gomock.Any(), "eth1", 201, gomock.Any()).Return(found, nil)
		mockSink.EXPECT().Write([]discovery.Result{*found}).Return("report.json", nil)

		_, err := execute(
			props,
			"--silent",
			"--config", path.Join(st.TempDir(), "missing.yml"),
			"-i", "eth1",
			"-r", "200-201",
			"-w", "1",
		)

		assert.NoError(st, err)
	})
}

func TestVersion(t *testing.T) {
	out, err := execute(&commands.CommandProps{}, "version")

	assert.NoError(t, err)
	assert.Equal(t, "vlanscan: v1.0.0\n", out)
}

func TestInfo(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	t.Run("prints ip version through executor", func(st *testing.T) {
		mockExecutor := mock_command.NewMockExecutor(ctrl)

		mockExecutor.EXPECT().
			Run(gomock.Any(), "ip -V").
			Return("ip utility, iproute2-6.1.0\n", nil)

		out, err := execute(&commands.CommandProps{Executor: mockExecutor}, "info", "--silent")

		assert.NoError(st, err)
		assert.Contains(st, out, "vlanscan: v1.0.0")
		assert.Contains(st, out, "ip utility, iproute2-6.1.0")
	})

	t.Run("reports missing ip command", func(st *testing.T) {
		mockExecutor := mock_command.NewMockExecutor(ctrl)

		mockExecutor.EXPECT().
			Run(gomock.Any(), "ip -V").
			Return("", &command.ExecutionError{Command: "ip -V", ExitCode: 127, Stderr: "ip: not found"})

		out, err := execute(&commands.CommandProps{Executor: mockExecutor}, "info", "--silent")

		assert.NoError(st, err)
		assert.Contains(st, out, "ip command not available")
	})
}
