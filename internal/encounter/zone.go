package encounter

import "github.com/samdwyer/fieldquest/internal/gamedata"

// ZoneAdvanceSteps is how many steps are taken in a zone before the next one.
const ZoneAdvanceSteps = 10

// ZoneCycle walks the zones cyclically, advancing every ZoneAdvanceSteps steps.
// Its counter is session state and is not persisted with the player.
type ZoneCycle struct {
	zones []gamedata.ZoneDef
	steps int
	index int
}

// NewZoneCycle starts a cycle at the first zone. zones must not be empty.
func NewZoneCycle(zones []gamedata.ZoneDef) *ZoneCycle {
	return &ZoneCycle{zones: zones}
}

// Step counts one step and reports whether the current zone changed.
func (c *ZoneCycle) Step() bool {
	c.steps++
	if c.steps%ZoneAdvanceSteps != 0 {
		return false
	}
	prev := c.index
	c.index = (c.index + 1) % len(c.zones)
	return c.index != prev
}

// Current returns the zone the player is in.
func (c *ZoneCycle) Current() gamedata.ZoneDef {
	return c.zones[c.index]
}

// Reset returns the cycle to the first zone.
func (c *ZoneCycle) Reset() {
	c.steps = 0
	c.index = 0
}
