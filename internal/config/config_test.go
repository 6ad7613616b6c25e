package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pageid/internal/config"
	"github.com/macropower/pageid/pkg/log"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err      error
		want     *config.Config
		content  string
		missing  bool
		required bool
	}{
		"missing optional file": {
			missing: true,
			want:    config.Default(),
		},
		"missing required file": {
			missing:  true,
			required: true,
			err:      config.ErrReadConfig,
		},
		"empty file": {
			content: "\n",
			want:    config.Default(),
		},
		"partial overlay": {
			content: "root: /project\noutput: json\n",
			want: &config.Config{
				Root:      "/project",
				LogLevel:  "warn",
				LogFormat: log.TextFormat,
				Output:    "json",
			},
		},
		"unknown key": {
			content: "rootDir: /project\n",
			err:     config.ErrReadConfig,
		},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), config.DefaultFile)
			if !tc.missing {
				require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o600))
			}

			got, err := config.Load(path, tc.required)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		config.EnvRoot:     "/srv/app",
		config.EnvLogLevel: "debug",
		config.EnvOutput:   "",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]

		return v, ok
	}

	c := config.Default()
	c.Output = "yaml"
	c.ApplyEnv(lookup)

	assert.Equal(t, "/srv/app", c.Root)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, log.TextFormat, c.LogFormat)
	assert.Equal(t, "yaml", c.Output)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, config.Default().Validate())

	c := &config.Config{LogLevel: "loud", LogFormat: "xml", Output: "toml"}
	err := c.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.ErrorIs(t, err, log.ErrInvalidLevel)
	require.ErrorIs(t, err, log.ErrInvalidFormat)
	assert.Contains(t, err.Error(), "output")
}

func TestLoadDotEnv(t *testing.T) {
	t.Parallel()

	require.NoError(t, config.LoadDotEnv(filepath.Join(t.TempDir(), config.DotEnvFile)))
}
