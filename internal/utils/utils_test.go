package utils

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogLevel(t *testing.T) {
	defer Log.SetLevel(logrus.InfoLevel)

	require.NoError(t, SetLogLevel("DEBUG"))
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	require.NoError(t, SetLogLevel("warn"))
	assert.Equal(t, logrus.WarnLevel, Log.GetLevel())
	assert.Error(t, SetLogLevel("chatty"))
	assert.Equal(t, logrus.WarnLevel, Log.GetLevel())
}

func TestDBLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "nutrimind.sqlite")

	l, err := NewDBLock(path)
	require.NoError(t, err)
	require.NoError(t, l.Lock())
	assert.FileExists(t, path+lockFileSuffix)
	require.NoError(t, l.Unlock())

	again, err := NewDBLock(path)
	require.NoError(t, err)
	require.NoError(t, again.Lock())
	require.NoError(t, again.Unlock())
}

func TestGetAbsDBPathDefault(t *testing.T) {
	p, err := GetAbsDBPath("")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(p, filepath.Join(".config", "nutrimind", "nutrimind.sqlite")), p)
}
