package logger

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/seqparser/internal/browse"
	"github.com/harrison/seqparser/internal/sequence"
)

var timestampPattern = regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] `)

func fixtureResult(t *testing.T) *browse.Result {
	t.Helper()
	lister := browse.MapLister{
		"/shots": {
			{Name: "plates", IsDir: true},
			{Name: "notes.txt"},
			{Name: "img.001.exr"},
			{Name: "img.002.exr"},
			{Name: "img.004.exr"},
		},
	}
	b, err := browse.NewBrowser(lister)
	require.NoError(t, err)
	result, err := b.Browse("/shots")
	require.NoError(t, err)
	return result
}

func TestLogLevelFiltering(t *testing.T) {
	levels := []string{"trace", "debug", "info", "warn", "error"}

	for i, configured := range levels {
		for j, message := range levels {
			configured, message := configured, message
			shouldAppear := j >= i
			t.Run(configured+"/"+message, func(t *testing.T) {
				buf := &bytes.Buffer{}
				logger := NewConsoleLogger(buf, configured)

				switch message {
				case "trace":
					logger.LogTrace("msg")
				case "debug":
					logger.LogDebug("msg")
				case "info":
					logger.LogInfo("msg")
				case "warn":
					logger.LogWarn("msg")
				case "error":
					logger.LogError("msg")
				}

				if shouldAppear {
					assert.Contains(t, buf.String(), "["+strings.ToUpper(message)+"] msg")
				} else {
					assert.Empty(t, buf.String())
				}
			})
		}
	}
}

func TestNormalizeLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "debug"},
		{"  WARN ", "warn"},
		{"Trace", "trace"},
		{"", "info"},
		{"verbose", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeLogLevel(tt.in))
		})
	}
}

func TestIsValidLevel(t *testing.T) {
	assert.True(t, IsValidLevel("error"))
	assert.False(t, IsValidLevel("ERROR"))
	assert.False(t, IsValidLevel("fatal"))
}

func TestConsoleLoggerFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	logger.LogInfo("scanning /shots")

	line := buf.String()
	assert.Regexp(t, timestampPattern, line)
	assert.True(t, strings.HasSuffix(line, "[INFO] scanning /shots\n"))
}

func TestConsoleLoggerNilWriter(t *testing.T) {
	logger := NewConsoleLogger(nil, "trace")

	assert.NotPanics(t, func() {
		logger.LogInfo("x")
		logger.LogSequence(nil)
		logger.LogSummary(nil, time.Second)
	})
}

func TestConsoleLoggerNoColorForBuffers(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")
	assert.False(t, logger.colorOutput)

	logger.SetColor(true)
	logger.LogWarn("careful")
	assert.Contains(t, buf.String(), "careful")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(nil))
	assert.False(t, isTerminal(&bytes.Buffer{}))
	// os.Stdout follows fatih/color's detection, which is off under go test
	_ = isTerminal(os.Stdout)
}

func TestLogSequence(t *testing.T) {
	result := fixtureResult(t)
	seqs := result.Sequences()
	require.Len(t, seqs, 1)

	t.Run("debug level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "debug")
		logger.LogSequence(seqs[0])

		out := buf.String()
		assert.Regexp(t, timestampPattern, out)
		assert.Contains(t, out, "Sequence img.%03d.exr 1-4 (3 frames, 1 missing)")
	})

	t.Run("filtered at info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "info")
		logger.LogSequence(seqs[0])
		assert.Empty(t, buf.String())
	})
}

func TestLogSummary(t *testing.T) {
	result := fixtureResult(t)

	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")
	logger.LogSummary(result, 1500*time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, "=== Scan Summary ===")
	assert.Contains(t, out, "Directory: /shots")
	assert.Contains(t, out, "Folders: 1, Files: 1, Sequences: 1, Frames: 3, Missing: 1")
	assert.Contains(t, out, "Duration: 1s")

	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		assert.Regexp(t, timestampPattern, line)
	}
}

func TestLogSummaryFilteredAtWarn(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "warn")
	logger.LogSummary(fixtureResult(t), time.Second)
	assert.Empty(t, buf.String())
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0ms"},
		{12 * time.Millisecond, "12ms"},
		{5 * time.Second, "5s"},
		{5*time.Second + 900*time.Millisecond, "5s"},
		{time.Minute, "1m"},
		{90 * time.Second, "1m30s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.d))
		})
	}
}

func TestConsoleLoggerSatisfiesBrowseLogger(t *testing.T) {
	var _ browse.Logger = NewConsoleLogger(nil, "info")
	var _ browse.Logger = NewNoOpLogger()

	buf := &bytes.Buffer{}
	b, err := browse.NewBrowser(browse.MapLister{"/d": {{Name: "a.1"}, {Name: "a.2"}}},
		browse.WithLogger(NewConsoleLogger(buf, "debug")))
	require.NoError(t, err)

	_, err = b.Browse("/d")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[DEBUG] scan ")
	assert.Contains(t, buf.String(), "[INFO] scan ")
}

func TestConsoleLoggerConcurrent(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.LogInfo("line")
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, strings.Count(buf.String(), "[INFO] line\n"))
}

func TestNoOpLogger(t *testing.T) {
	n := NewNoOpLogger()
	assert.NotPanics(t, func() {
		n.LogDebug("a")
		n.LogInfo("b")
		n.LogWarn("c")
		n.LogError("d")
	})
}

func TestLogSequenceUnpadded(t *testing.T) {
	seqs, _ := sequence.Build([]sequence.Token{
		sequence.Tokenize("a.1"),
		sequence.Tokenize("a.2"),
		sequence.Tokenize("a.3"),
	})
	require.Len(t, seqs, 1)

	buf := &bytes.Buffer{}
	NewConsoleLogger(buf, "trace").LogSequence(seqs[0])
	assert.Contains(t, buf.String(), "Sequence a.%d 1-3 (3 frames, 0 missing)")
}
