package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"social-planner/core/config"
	"social-planner/core/constants"
	"social-planner/core/utils"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.json")
	slots := `[
		{"start": "2024-06-03T07:00:00Z", "end": "2024-06-03T08:00:00Z", "available_count": 4, "total_members": 4},
		{"start": "2024-06-03T18:00:00Z", "end": "2024-06-03T19:00:00Z", "available_count": 4, "total_members": 4},
		{"start": "2024-06-03T02:00:00Z", "end": "2024-06-03T03:00:00Z", "available_count": 4, "total_members": 4}
	]`
	require.NoError(t, os.WriteFile(path, []byte(slots), 0o600))

	var out bytes.Buffer
	cmd := &RankCmd{File: path, Preset: "default", Timezone: "UTC"}
	require.NoError(t, cmd.Run(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "18:00 - 19:00")
	assert.Contains(t, lines[2], "07:00 - 08:00")
	assert.NotContains(t, out.String(), "02:00")
}

func TestRankCmdRejectsBadSlots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.json")
	bad := `[{"start": "2024-06-03T08:00:00Z", "end": "2024-06-03T07:00:00Z", "available_count": 1, "total_members": 1}]`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o600))

	err := (&RankCmd{File: path, Timezone: "UTC"}).Run(&bytes.Buffer{})
	assert.Error(t, err)
}

func TestCopyCmd(t *testing.T) {
	mClock := quartz.NewMock(t)
	mClock.Set(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))

	var out bytes.Buffer
	cmd := &CopyCmd{Timezone: "UTC", Archetype: "reconnect", Friend: "Sam", Event: "Board game night", Accepts: 4}
	require.NoError(t, cmd.Run(mClock, &out))

	got := out.String()
	assert.Contains(t, got, "date:     2024-06-01 (seed 1279870326)")
	assert.Contains(t, got, "title:    Good to reconnect")
	assert.Contains(t, got, "accept 1: Love that. Old friends are the best friends.")
	assert.Contains(t, got, "accept 2: -")
	assert.Contains(t, got, "accept 4: Love that. Old friends are the best friends.")
	assert.Contains(t, got, "  - Yo Sam! We need to do Board game night, it's been ages.")
}

func TestCountdownCmd(t *testing.T) {
	mClock := quartz.NewMock(t)
	mClock.Set(time.Date(2024, 6, 1, 22, 28, 0, 0, time.UTC))

	var out bytes.Buffer
	require.NoError(t, (&CountdownCmd{Timezone: "UTC"}).Run(mClock, &out))
	assert.Equal(t, "New ideas in 1h 30m\n", out.String())

	assert.Error(t, (&CountdownCmd{Timezone: "Nowhere/Land"}).Run(mClock, &bytes.Buffer{}))
}

func TestTokenCmd(t *testing.T) {
	config.Set(&config.Config{JWT: config.JWTConfig{Secret: "cli-secret"}})
	t.Cleanup(func() { config.Set(nil) })

	userID := uuid.MustParse("6f1c0c4e-3f7a-4d55-9a1e-2d4f8f0b9c11")

	t.Run("default ttl", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, (&TokenCmd{UserID: userID.String()}).Run(&out))

		claims, err := utils.ValidateAndParseToken(strings.TrimSpace(out.String()))
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, constants.AccessTokenTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	})

	t.Run("explicit ttl", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, (&TokenCmd{UserID: userID.String(), TTL: time.Hour}).Run(&out))

		claims, err := utils.ValidateAndParseToken(strings.TrimSpace(out.String()))
		require.NoError(t, err)
		assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	})

	t.Run("bad user id", func(t *testing.T) {
		assert.Error(t, (&TokenCmd{UserID: "nope"}).Run(&bytes.Buffer{}))
	})
}
