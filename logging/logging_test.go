package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/logging"
)

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New("warn", "text", &buf)
	require.NoError(t, err)

	l.Info("hidden")
	l.WithField("n", 5).Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=warning msg=shown n=5")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New("debug", "JSON", &buf)
	require.NoError(t, err)

	l.WithField("variant", "sparse").Debug("run")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "run", entry["msg"])
	assert.Equal(t, "sparse", entry["variant"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New("loud", "text", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = logging.New("info", "xml", &bytes.Buffer{})
	assert.ErrorIs(t, err, logging.ErrUnknownFormat)
}

func TestContext(t *testing.T) {
	assert.Equal(t, logrus.StandardLogger(), logging.FromContext(context.Background()))

	l, err := logging.New("info", "", &bytes.Buffer{})
	require.NoError(t, err)
	ctx := logging.WithLogger(context.Background(), l)
	assert.Same(t, l, logging.FromContext(ctx))
}
