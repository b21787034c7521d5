package systems

import (
	"testing"

	cfg "github.com/automoto/dungeonblades/config"
	"github.com/stretchr/testify/assert"
)

func TestPauseFreezesWrappedSystems(t *testing.T) {
	a := newArena(t)
	tick := WithPauseCheck(UpdateClock)

	tick(a.ecs)
	press(a.ecs, cfg.ActionPause)
	UpdatePause(a.ecs)
	assert.True(t, GetOrCreatePause(a.ecs).IsPaused)

	tick(a.ecs)
	tick(a.ecs)
	assert.Equal(t, 1, Now(a.ecs))

	release(a.ecs)
	press(a.ecs, cfg.ActionPause)
	UpdatePause(a.ecs)
	tick(a.ecs)
	assert.Equal(t, 2, Now(a.ecs))
}
