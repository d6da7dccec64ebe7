package cmd

import (
	"context"
	"testing"

	"github.com/jfmyers9/tidalbar/internal/automation/mocks"
	"github.com/jfmyers9/tidalbar/internal/config"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(_ context.Context, message string) error {
	n.messages = append(n.messages, message)
	return nil
}

// expectations registers runner calls that must happen in order
type expectations struct {
	runner *mocks.MockRunner
	last   *gomock.Call
}

func (x *expectations) expect(script, out string, err error) {
	call := x.runner.EXPECT().Run(gomock.Any(), script).Return(out, err)
	if x.last != nil {
		call.After(x.last)
	}
	x.last = call
}

func testConfig() *config.Config {
	return &config.Config{
		AppPath:       "/Applications/TIDAL.app",
		ProcessName:   "TIDAL",
		SentinelTitle: "TIDAL",
		PlaybackMenu:  "Playback",
		PollInterval:  10,
		ScriptTimeout: 5,
		OutputFormat:  "{{.Short}}",
	}
}

func newTestEngine(t *testing.T) (*engine, *mocks.MockRunner, *recordingNotifier) {
	t.Helper()
	runner := mocks.NewMockRunner(gomock.NewController(t))
	notifier := &recordingNotifier{}
	return newEngineWithRunner(testConfig(), zerolog.Nop(), runner, notifier), runner, notifier
}

func TestSetupLogger_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "info", want: zerolog.InfoLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "bogus", want: zerolog.InfoLevel},
		{level: "", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := setupLogger("", tt.level)
			if got := logger.GetLevel(); got != tt.want {
				t.Errorf("GetLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"config", "menu", "next", "now", "open", "pause", "prev", "shuffle", "status", "watch"}

	have := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}
