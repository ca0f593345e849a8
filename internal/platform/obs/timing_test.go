package obs

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestTimeLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "debug", Format: "json", Output: &buf})
	ctx := WithRequestID(logger.WithContext(context.Background()), "abc")

	func() (err error) {
		defer Time(ctx, "distance.compute")(&err)
		return errors.New("boom")
	}()

	out := buf.String()
	assert.Contains(t, out, `"op":"distance.compute"`)
	assert.Contains(t, out, `"req_id":"abc"`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestTimeSkipsDebugAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "info", Output: &buf})
	ctx := logger.WithContext(context.Background())

	func() (err error) {
		defer Time(ctx, "distance.compute")(&err)
		return nil
	}()

	assert.Empty(t, buf.String())
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	logger := NewLogger(LoggerConfig{Level: "loud", Output: &bytes.Buffer{}})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}
