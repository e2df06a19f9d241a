package modes

import (
	"time"

	"github.com/lumeaddon/lume/internal/models"
)

// TimedSnapshot is one signal observation in a simulated timeline.
type TimedSnapshot struct {
	At       time.Time       `json:"at"`
	Snapshot models.Snapshot `json:"snapshot"`
}

// Commit records a committed mode change during a simulation.
type Commit struct {
	At   time.Time   `json:"at"`
	Mode models.Mode `json:"mode"`
}

// Simulate replays a timeline of snapshots through the machine and
// returns every committed mode change. Between snapshots the dwell
// timer fires on its own, so a pending transition whose window elapses
// before the next observation commits at exactly pendingSince + dwell.
func (m *Machine) Simulate(initial models.Mode, timeline []TimedSnapshot) []Commit {
	s := State{Current: initial}
	commits := []Commit{}

	for i, step := range timeline {
		before := s.Current
		s = m.Step(s, step.Snapshot, step.At)
		if s.Current != before {
			commits = append(commits, Commit{At: step.At, Mode: s.Current})
		}

		if s.PendingSince.IsZero() {
			continue
		}

		fire := s.PendingSince.Add(m.dwell)
		if i+1 < len(timeline) && fire.After(timeline[i+1].At) {
			// next observation arrives first and restarts or cancels the window
			continue
		}

		before = s.Current
		s = m.Step(s, step.Snapshot, fire)
		if s.Current != before {
			commits = append(commits, Commit{At: fire, Mode: s.Current})
		}
	}

	return commits
}
