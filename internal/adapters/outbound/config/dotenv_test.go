package config

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDotEnv_Initialize(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, ".env")
	local := filepath.Join(dir, ".env.local")
	require.NoError(t, os.WriteFile(base, []byte("TEAMGO_TEST_A=base\nTEAMGO_TEST_B=base\n"), 0o600))
	require.NoError(t, os.WriteFile(local, []byte("TEAMGO_TEST_B=local\nTEAMGO_TEST_C=local\n"), 0o600))

	// registered with t.Setenv so the values loaded from the files are reset after the test
	t.Setenv("TEAMGO_TEST_A", "env")
	t.Setenv("TEAMGO_TEST_B", "")
	t.Setenv("TEAMGO_TEST_C", "")
	require.NoError(t, os.Unsetenv("TEAMGO_TEST_B"))
	require.NoError(t, os.Unsetenv("TEAMGO_TEST_C"))

	init := InitDotEnv{
		Logger: log.New(io.Discard, "", 0),
		Files:  base + ", " + filepath.Join(dir, "missing.env") + "," + local,
	}
	_, err := init.Initialize(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "env", os.Getenv("TEAMGO_TEST_A"))
	assert.Equal(t, "base", os.Getenv("TEAMGO_TEST_B"))
	assert.Equal(t, "local", os.Getenv("TEAMGO_TEST_C"))
}

func TestInitDotEnv_Initialize_InvalidFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("TEAMGO_TEST_D='unterminated\n"), 0o600))
	t.Setenv("TEAMGO_TEST_D", "")

	_, err := InitDotEnv{Logger: log.New(io.Discard, "", 0), Files: file}.Initialize(context.Background())
	assert.Error(t, err)
}
