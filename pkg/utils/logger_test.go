// pkg/utils/logger_test.go

package utils

import (
	"bytes"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoggerIsCached(t *testing.T) {
	assert.Same(t, GetLogger("test"), GetLogger("test"))
	assert.NotSame(t, GetLogger("test"), GetLogger("other"))
}

func TestLogFormat(t *testing.T) {
	l := GetLogger("fmt-test")
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Infof("hello %d", 42)
	line := buf.String()
	require.True(t, strings.HasSuffix(line, "\n"))
	assert.Contains(t, line, "fmt-test")
	assert.Contains(t, line, "<INFO>: hello 42")
	assert.Contains(t, line, "["+strconv.Itoa(os.Getpid())+"]")
}

func TestSetLogLevel(t *testing.T) {
	l := GetLogger("lvl-test")
	var buf bytes.Buffer
	l.SetOutput(&buf)

	SetLogLevel(logrus.WarnLevel)
	l.Infof("dropped")
	assert.Empty(t, buf.String())

	SetLogLevel(logrus.InfoLevel)
	l.Infof("kept")
	assert.Contains(t, buf.String(), "kept")
}
