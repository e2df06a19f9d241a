package modes

import (
	"sort"
	"time"

	"github.com/lumeaddon/lume/internal/models"
)

// State is the full debounce state of the mode machine. PendingSince
// is zero when no transition is pending.
type State struct {
	Current      models.Mode
	Candidate    models.Mode
	PendingSince time.Time
}

// Machine computes the committed location mode from raw signal
// snapshots. It is a pure value: Step never touches a clock or timer,
// the caller supplies "now".
type Machine struct {
	zones []models.Zone
	dwell time.Duration
}

func NewMachine(p models.Profile) *Machine {
	zones := make([]models.Zone, len(p.Zones))
	copy(zones, p.Zones)
	// highest priority first; priorities are distinct after validation
	sort.Slice(zones, func(i, j int) bool { return zones[i].Priority > zones[j].Priority })

	return &Machine{
		zones: zones,
		dwell: time.Duration(p.Dwell.Seconds) * time.Second,
	}
}

// Candidate evaluates the zones in descending priority order and
// returns the mode the snapshot points at: the first occupied zone
// wins, then Home if the aggregate presence signal is true, else Away.
func (m *Machine) Candidate(snap models.Snapshot) models.Mode {
	for _, z := range m.zones {
		if snap.ZonesActive[z.ID] {
			return z.Mode()
		}
	}
	if snap.HomePresent {
		return models.ModeHome
	}
	return models.ModeAway
}

// Step transitions the machine for one snapshot observed at now.
//
// Override precedence comes first: while the override is active the
// committed mode is forced to the pinned mode (or left alone when no
// mode is pinned) and any pending transition is dropped. The candidate
// is still computed so callers can display it.
//
// Otherwise a candidate equal to the current mode is a no-op, a dwell
// of zero commits immediately, a changed candidate restarts the dwell
// window, and a candidate that has stayed stable for the full dwell
// duration commits.
func (m *Machine) Step(s State, snap models.Snapshot, now time.Time) State {
	next := s
	next.Candidate = m.Candidate(snap)

	if snap.Override.Enabled {
		if snap.Override.PinnedMode != "" {
			next.Current = snap.Override.PinnedMode
		}
		next.PendingSince = time.Time{}
		return next
	}

	if next.Candidate == next.Current {
		next.PendingSince = time.Time{}
		return next
	}

	if m.dwell == 0 {
		next.Current = next.Candidate
		next.PendingSince = time.Time{}
		return next
	}

	if s.Candidate != next.Candidate || s.PendingSince.IsZero() {
		next.PendingSince = now
		return next
	}

	if now.Sub(s.PendingSince) >= m.dwell {
		next.Current = next.Candidate
		next.PendingSince = time.Time{}
	}
	return next
}

// Dwell returns the configured debounce duration.
func (m *Machine) Dwell() time.Duration {
	return m.dwell
}
