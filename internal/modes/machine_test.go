package modes_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lumeaddon/lume/internal/models"
	"github.com/lumeaddon/lume/internal/modes"
)

func testProfile(dwellSeconds int) models.Profile {
	return models.Profile{
		Zones: []models.Zone{
			{ID: "kitchen", Name: "Kitchen", Signals: []string{"binary_sensor.presence_kitchen"}, Priority: 1},
		},
		HomePresenceEntity: "device_tracker.phone",
		Dwell:              models.DwellPolicy{Seconds: dwellSeconds},
	}
}

func at(seconds int) time.Time {
	return time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(seconds) * time.Second)
}

func Test_Candidate(t *testing.T) {

	machine := modes.NewMachine(models.Profile{
		Zones: []models.Zone{
			{ID: "kitchen", Signals: []string{"binary_sensor.presence_kitchen"}, Priority: 1},
			{ID: "office", Signals: []string{"binary_sensor.presence_office"}, Priority: 5},
		},
		HomePresenceEntity: "device_tracker.phone",
	})

	tests := []struct {
		name     string
		snap     models.Snapshot
		expected models.Mode
	}{
		{
			name:     "no signals active: candidate is Away",
			snap:     models.Snapshot{},
			expected: models.ModeAway,
		},
		{
			name:     "home presence only: candidate is Home",
			snap:     models.Snapshot{HomePresent: true},
			expected: models.ModeHome,
		},
		{
			name:     "one zone active: candidate is that zone",
			snap:     models.Snapshot{ZonesActive: map[string]bool{"kitchen": true}},
			expected: "kitchen",
		},
		{
			name:     "two zones active: highest priority wins",
			snap:     models.Snapshot{ZonesActive: map[string]bool{"kitchen": true, "office": true}},
			expected: "office",
		},
		{
			name:     "zone and home presence both active: zone wins",
			snap:     models.Snapshot{ZonesActive: map[string]bool{"kitchen": true}, HomePresent: true},
			expected: "kitchen",
		},
	}

	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, machine.Candidate(c.snap))
		})
	}
}

func Test_Step_DwellDebounce(t *testing.T) {

	machine := modes.NewMachine(testProfile(30))
	kitchenOn := models.Snapshot{ZonesActive: map[string]bool{"kitchen": true}}
	kitchenOff := models.Snapshot{}

	t.Run("candidate change starts the dwell window without committing", func(t *testing.T) {
		s := machine.Step(modes.State{Current: models.ModeAway}, kitchenOn, at(0))
		assert.Equal(t, models.ModeAway, s.Current)
		assert.Equal(t, models.Mode("kitchen"), s.Candidate)
		assert.Equal(t, at(0), s.PendingSince)
	})

	t.Run("candidate equal to current cancels the pending window", func(t *testing.T) {
		s := modes.State{Current: models.ModeAway, Candidate: "kitchen", PendingSince: at(0)}
		s = machine.Step(s, kitchenOff, at(10))
		assert.Equal(t, models.ModeAway, s.Current)
		assert.True(t, s.PendingSince.IsZero())
	})

	t.Run("candidate held for less than the dwell never commits", func(t *testing.T) {
		s := machine.Step(modes.State{Current: models.ModeAway}, kitchenOn, at(0))
		s = machine.Step(s, kitchenOn, at(29))
		assert.Equal(t, models.ModeAway, s.Current)
	})

	t.Run("candidate held for the full dwell commits", func(t *testing.T) {
		s := machine.Step(modes.State{Current: models.ModeAway}, kitchenOn, at(0))
		s = machine.Step(s, kitchenOn, at(30))
		assert.Equal(t, models.Mode("kitchen"), s.Current)
		assert.True(t, s.PendingSince.IsZero())
	})

	t.Run("changed candidate restarts the window", func(t *testing.T) {
		home := models.Snapshot{HomePresent: true}
		s := machine.Step(modes.State{Current: models.ModeAway}, kitchenOn, at(0))
		s = machine.Step(s, home, at(10))
		assert.Equal(t, at(10), s.PendingSince)
		// only 20s since the restart, nothing commits
		s = machine.Step(s, home, at(30))
		assert.Equal(t, models.ModeAway, s.Current)
		// 30s since the restart
		s = machine.Step(s, home, at(40))
		assert.Equal(t, models.ModeHome, s.Current)
	})
}

func Test_Step_ZeroDwellCommitsImmediately(t *testing.T) {

	machine := modes.NewMachine(testProfile(0))

	s := machine.Step(modes.State{Current: models.ModeAway}, models.Snapshot{ZonesActive: map[string]bool{"kitchen": true}}, at(0))
	assert.Equal(t, models.Mode("kitchen"), s.Current)
	assert.True(t, s.PendingSince.IsZero())

	s = machine.Step(s, models.Snapshot{HomePresent: true}, at(1))
	assert.Equal(t, models.ModeHome, s.Current)
}

func Test_Step_OverridePrecedence(t *testing.T) {

	machine := modes.NewMachine(testProfile(30))
	pinnedAway := models.Override{Enabled: true, PinnedMode: models.ModeAway}

	t.Run("active override pins the mode regardless of the candidate", func(t *testing.T) {
		snap := models.Snapshot{ZonesActive: map[string]bool{"kitchen": true}, Override: pinnedAway}
		s := machine.Step(modes.State{Current: models.ModeHome}, snap, at(0))
		assert.Equal(t, models.ModeAway, s.Current)
		// candidate is still computed for display
		assert.Equal(t, models.Mode("kitchen"), s.Candidate)
		assert.True(t, s.PendingSince.IsZero())
	})

	t.Run("override without a pinned mode leaves the current mode alone", func(t *testing.T) {
		snap := models.Snapshot{ZonesActive: map[string]bool{"kitchen": true}, Override: models.Override{Enabled: true}}
		s := machine.Step(modes.State{Current: models.ModeHome}, snap, at(0))
		assert.Equal(t, models.ModeHome, s.Current)
	})

	t.Run("override drops a pending transition", func(t *testing.T) {
		snap := models.Snapshot{ZonesActive: map[string]bool{"kitchen": true}, Override: pinnedAway}
		s := modes.State{Current: models.ModeHome, Candidate: "kitchen", PendingSince: at(0)}
		s = machine.Step(s, snap, at(10))
		assert.True(t, s.PendingSince.IsZero())
		assert.Equal(t, models.ModeAway, s.Current)
	})

	t.Run("clearing the override resumes automatic computation", func(t *testing.T) {
		snap := models.Snapshot{ZonesActive: map[string]bool{"kitchen": true}}
		s := modes.State{Current: models.ModeAway}
		s = machine.Step(s, snap, at(0))
		s = machine.Step(s, snap, at(30))
		assert.Equal(t, models.Mode("kitchen"), s.Current)
	})
}

func Test_Simulate(t *testing.T) {

	t.Run("oscillating signal never commits until stable for the dwell", func(t *testing.T) {
		// scenario: kitchen true at t=0, false at t=10, true at t=15, dwell 30s
		machine := modes.NewMachine(testProfile(30))
		kitchenOn := models.Snapshot{ZonesActive: map[string]bool{"kitchen": true}}
		kitchenOff := models.Snapshot{}

		commits := machine.Simulate(models.ModeAway, []modes.TimedSnapshot{
			{At: at(0), Snapshot: kitchenOn},
			{At: at(10), Snapshot: kitchenOff},
			{At: at(15), Snapshot: kitchenOn},
		})

		assert.Equal(t, []modes.Commit{{At: at(45), Mode: "kitchen"}}, commits)
	})

	t.Run("zero dwell commits on every candidate change", func(t *testing.T) {
		machine := modes.NewMachine(testProfile(0))

		commits := machine.Simulate(models.ModeAway, []modes.TimedSnapshot{
			{At: at(0), Snapshot: models.Snapshot{ZonesActive: map[string]bool{"kitchen": true}}},
			{At: at(5), Snapshot: models.Snapshot{HomePresent: true}},
			{At: at(9), Snapshot: models.Snapshot{}},
		})

		assert.Equal(t, []modes.Commit{
			{At: at(0), Mode: "kitchen"},
			{At: at(5), Mode: models.ModeHome},
			{At: at(9), Mode: models.ModeAway},
		}, commits)
	})

	t.Run("committed sequence is reproducible for a fixed timeline", func(t *testing.T) {
		machine := modes.NewMachine(testProfile(30))
		timeline := []modes.TimedSnapshot{
			{At: at(0), Snapshot: models.Snapshot{ZonesActive: map[string]bool{"kitchen": true}}},
			{At: at(40), Snapshot: models.Snapshot{}},
			{At: at(90), Snapshot: models.Snapshot{HomePresent: true}},
		}

		first := machine.Simulate(models.ModeAway, timeline)
		second := machine.Simulate(models.ModeAway, timeline)
		assert.Equal(t, first, second)
	})

	t.Run("override pins the committed mode for the whole timeline", func(t *testing.T) {
		machine := modes.NewMachine(testProfile(30))
		pinned := models.Override{Enabled: true, PinnedMode: models.ModeAway}

		commits := machine.Simulate(models.ModeHome, []modes.TimedSnapshot{
			{At: at(0), Snapshot: models.Snapshot{ZonesActive: map[string]bool{"kitchen": true}, Override: pinned}},
			{At: at(60), Snapshot: models.Snapshot{ZonesActive: map[string]bool{"kitchen": true}, Override: pinned}},
		})

		assert.Equal(t, []modes.Commit{{At: at(0), Mode: models.ModeAway}}, commits)
	})
}
