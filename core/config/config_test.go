package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViperDefaults(t *testing.T) {
	cfg, err := fromViper(newViper(nil))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "redis", cfg.Schedule.PresetStore)
	assert.Equal(t, "UTC", cfg.Schedule.DefaultTimezone)
	assert.Equal(t, 10, cfg.Schedule.SuggestLimit)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestFromViperValidation(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		wantErr bool
	}{
		{name: "postgres store", values: map[string]any{"PRESET_STORE": "Postgres"}},
		{name: "unknown store", values: map[string]any{"PRESET_STORE": "sqlite"}, wantErr: true},
		{name: "bad port", values: map[string]any{"SERVER_PORT": 70000}, wantErr: true},
		{name: "bad timezone", values: map[string]any{"DEFAULT_TIMEZONE": "Mars/Olympus"}, wantErr: true},
		{name: "non-positive limit falls back", values: map[string]any{"SUGGEST_LIMIT": 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := fromViper(newViper(tt.values))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Positive(t, cfg.Schedule.SuggestLimit)
		})
	}
}

func TestGetSafe(t *testing.T) {
	Set(nil)
	_, ok := GetSafe()
	assert.False(t, ok)

	Set(&Config{AppEnv: "test"})
	cfg, ok := GetSafe()
	require.True(t, ok)
	assert.Equal(t, "test", cfg.AppEnv)
}
