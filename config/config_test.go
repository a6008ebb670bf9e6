package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dbVars = []string{EnvHost, EnvPort, EnvName, EnvUser, EnvPassword}

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestNewDBConfigDefaults(t *testing.T) {
	for _, k := range dbVars {
		unsetenv(t, k)
	}

	c := NewDBConfig()

	assert.Equal(t, DBConfig{
		Host:     "localhost",
		Port:     "5432",
		DBName:   "music_db",
		User:     "postgres",
		Password: "postgres",
	}, c)
	assert.Equal(t, "host=localhost port=5432 dbname=music_db user=postgres password=postgres", c.ConnString())
}

func TestNewDBConfigFromEnv(t *testing.T) {
	t.Setenv(EnvHost, "db.internal")
	t.Setenv(EnvPort, "6543")
	t.Setenv(EnvName, "records")
	t.Setenv(EnvUser, " admin ")
	t.Setenv(EnvPassword, "")

	c := NewDBConfig()

	assert.Equal(t, "db.internal", c.Host)
	assert.Equal(t, "6543", c.Port)
	assert.Equal(t, "records", c.DBName)
	assert.Equal(t, " admin ", c.User, "values are not trimmed")
	assert.Equal(t, "", c.Password, "empty but set is not replaced by the default")
}

func TestNewDBConfigPerField(t *testing.T) {
	defaults := map[string]string{
		EnvHost:     DefaultDBConfig.Host,
		EnvPort:     DefaultDBConfig.Port,
		EnvName:     DefaultDBConfig.DBName,
		EnvUser:     DefaultDBConfig.User,
		EnvPassword: DefaultDBConfig.Password,
	}
	field := func(c DBConfig, key string) string {
		switch key {
		case EnvHost:
			return c.Host
		case EnvPort:
			return c.Port
		case EnvName:
			return c.DBName
		case EnvUser:
			return c.User
		}
		return c.Password
	}

	for _, key := range dbVars {
		t.Run(key, func(t *testing.T) {
			for _, k := range dbVars {
				unsetenv(t, k)
			}
			t.Setenv(key, "custom")

			c := NewDBConfig()
			for _, other := range dbVars {
				if other == key {
					assert.Equal(t, "custom", field(c, other))
				} else {
					assert.Equal(t, defaults[other], field(c, other))
				}
			}
		})
	}
}

func TestConnString(t *testing.T) {
	c := DBConfig{Host: "h", Port: "p", DBName: "d", User: "u", Password: "pw"}
	assert.Equal(t, "host=h port=p dbname=d user=u password=pw", c.ConnString())
}

func TestLoadFileMissing(t *testing.T) {
	prefs, err := LoadFile(filepath.Join(t.TempDir(), "nope", "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPrefs, prefs)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("Debug = true\nWindowWidth = 1024.0\n"), 0o644))

	prefs, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, prefs.Debug)
	assert.Equal(t, float32(1024), prefs.WindowWidth)
	assert.Equal(t, DefaultPrefs.WindowHeight, prefs.WindowHeight)
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("Debug = [oops"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	unsetenv(t, EnvName)
	t.Setenv(EnvHost, "from-process")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_HOST=from-file\nDB_NAME=from-file\n"), 0o644))

	require.NoError(t, LoadEnvFile(path))
	t.Cleanup(func() { os.Unsetenv(EnvName) })

	c := NewDBConfig()
	assert.Equal(t, "from-process", c.Host)
	assert.Equal(t, "from-file", c.DBName)
}

func TestLoadEnvFileMissing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
}
