package systems

import (
	"testing"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordKillMarksTallyDirty(t *testing.T) {
	a := newTestArena(t)
	entry, ok := components.KillTally.First(a.w)
	require.True(t, ok)
	tally := components.KillTally.Get(entry)

	recordKill(a.w, "Grunt")
	recordKill(a.w, "Grunt")
	recordKill(a.w, "Brute")

	assert.Equal(t, map[string]int{"Grunt": 2, "Brute": 1}, tally.Kills)
	assert.True(t, tally.Dirty)

	UpdatePersistence(a.ecs)
	assert.False(t, tally.Dirty)
}

func TestKillTallyWithoutStoreIsNoop(t *testing.T) {
	require.Nil(t, gdataManager)

	assert.NoError(t, SaveKillTally(map[string]int{"Grunt": 3}))
	kills, err := LoadKillTally()
	require.NoError(t, err)
	assert.Empty(t, kills)
}

func TestAudioQueueDrainsHeadless(t *testing.T) {
	a := newTestArena(t)
	PlaySFX(a.w, cfg.SoundHit)
	PlaySFX(a.w, cfg.SoundNone)
	assert.Equal(t, []cfg.SoundID{cfg.SoundHit}, a.pendingSFX())

	UpdateAudio(a.ecs)
	assert.Empty(t, a.pendingSFX())

	SetSFXVolume(a.w, 0.25)
	assert.Equal(t, 0.25, GetOrCreateAudio(a.w).SFXVolume)
}
