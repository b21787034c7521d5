package components

import (
	"math"

	"github.com/yohamta/donburi"
)

// Never is the timestamp of something that has not happened yet.
const Never = math.MinInt32

// ClockData counts simulation frames (singleton component). Every hurt and
// cooldown timestamp in combat is a frame tick from this clock.
type ClockData struct {
	Tick int
}

var Clock = donburi.NewComponentType[ClockData]()
