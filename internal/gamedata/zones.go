package gamedata

import (
	"fmt"

	"github.com/samdwyer/fieldquest/internal/domain"
)

// ZoneDef defines a field zone loaded from JSON. Zones are visited cyclically
// in the order they appear in zones.json.
type ZoneDef struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	EncounterRate int    `json:"encounterRate"` // Chance per step, 0-100
}

// Validate checks the zone's invariants.
func (z *ZoneDef) Validate() error {
	if z.ID == "" {
		return fmt.Errorf("%w: zone id is required", domain.ErrInvalidInput)
	}
	return checkProbability("zone "+z.ID+" encounterRate", z.EncounterRate)
}

// ZonesFile represents the structure of zones.json.
type ZonesFile struct {
	Zones []ZoneDef `json:"zones"`
}

// Validate checks every zone.
func (f *ZonesFile) Validate() error {
	for i := range f.Zones {
		if err := f.Zones[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// LoadZones loads zone definitions from the embedded zones.json file.
func LoadZones() ([]ZoneDef, error) {
	file, err := Load[ZonesFile]("zones.json")
	if err != nil {
		return nil, err
	}
	return file.Zones, nil
}
