package models

// Mode is one of the location modes driving lighting behaviour.
// The set of valid modes is closed: one mode per configured zone,
// plus the two implicit modes Home and Away.
type Mode string

const (
	ModeHome Mode = "HOME"
	ModeAway Mode = "AWAY"
)

// Zone is a named area whose occupancy is derived from one or more
// presence signals. A zone is occupied only when all of its signals
// are active.
type Zone struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Signals []string `json:"signals"`
	// higher priority wins when several zones are occupied at once
	Priority int `json:"priority"`
}

// Mode returns the location mode a zone maps to.
func (z Zone) Mode() Mode {
	return Mode(z.ID)
}

// DwellPolicy is the debounce applied to every mode transition.
// Zero seconds disables debouncing entirely.
type DwellPolicy struct {
	Seconds int `json:"seconds"`
}

// Override is the manual pin that suspends automatic mode computation.
type Override struct {
	Enabled    bool `json:"enabled"`
	PinnedMode Mode `json:"pinnedMode"`
}

// Reaction is the steady-state light action applied when a mode commits.
type Reaction struct {
	RGB               [3]int `json:"rgb"`
	Brightness        int    `json:"brightness"`
	TransitionSeconds int    `json:"transitionSeconds"`
	// NoChange marks the neutral fallback: the light is left alone
	NoChange bool `json:"noChange"`
}

// LightTarget is a light entity plus its per-mode reactions. Modes
// without an explicit reaction fall back to the profile default.
type LightTarget struct {
	EntityID  string            `json:"entityId"`
	Reactions map[Mode]Reaction `json:"reactions"`
}

// Flourish is the transient effect fired once on arrival into Home
// mode, after which the target reverts to the steady Home reaction.
type Flourish struct {
	Enabled         bool   `json:"enabled"`
	Effect          string `json:"effect"`
	DurationSeconds int    `json:"durationSeconds"`
}

// QuietHours suppresses the arrival flourish inside a time window.
// When Auto is set the window is sunset to sunrise for the configured
// location, computed at generation time.
type QuietHours struct {
	Enabled bool   `json:"enabled"`
	Auto    bool   `json:"auto"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// Profile is the validated form input a single generation runs from.
type Profile struct {
	Zones []Zone `json:"zones"`
	// aggregate "someone is home" signal, e.g. a device_tracker
	HomePresenceEntity string        `json:"homePresenceEntity"`
	Dwell              DwellPolicy   `json:"dwell"`
	Override           Override      `json:"override"`
	Lights             []LightTarget `json:"lights"`
	DefaultReaction    *Reaction     `json:"defaultReaction"`
	Flourish           Flourish      `json:"flourish"`
	QuietHours         QuietHours    `json:"quietHours"`
	PackagePath        string        `json:"packagePath"`
}

// Modes returns the closed mode enumeration for the profile:
// one per zone in declaration order, then Home, then Away.
func (p Profile) Modes() []Mode {
	modes := make([]Mode, 0, len(p.Zones)+2)
	for _, z := range p.Zones {
		modes = append(modes, z.Mode())
	}
	return append(modes, ModeHome, ModeAway)
}

// Snapshot is one observation of every raw signal the machine reads.
type Snapshot struct {
	// zone id -> all of the zone's signals are currently active
	ZonesActive map[string]bool `json:"zonesActive"`
	HomePresent bool            `json:"homePresent"`
	Override    Override        `json:"override"`
}
