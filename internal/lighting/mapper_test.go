package lighting_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lumeaddon/lume/internal/hass"
	"github.com/lumeaddon/lume/internal/lighting"
	"github.com/lumeaddon/lume/internal/models"
)

var names = hass.NewNames("lume")

func lightingProfile() models.Profile {
	return models.Profile{
		Zones: []models.Zone{
			{ID: "kitchen", Name: "Kitchen", Signals: []string{"binary_sensor.presence_kitchen"}, Priority: 1},
		},
		HomePresenceEntity: "device_tracker.phone",
		Dwell:              models.DwellPolicy{Seconds: 30},
		Lights: []models.LightTarget{
			{
				EntityID: "light.lounge",
				Reactions: map[models.Mode]models.Reaction{
					models.ModeHome: {RGB: [3]int{255, 200, 120}, Brightness: 200, TransitionSeconds: 2},
					models.ModeAway: {RGB: [3]int{0, 0, 64}, Brightness: 30},
				},
			},
			{
				EntityID: "light.hall",
				Reactions: map[models.Mode]models.Reaction{
					models.ModeHome: {RGB: [3]int{255, 255, 255}, Brightness: 255},
				},
			},
		},
	}
}

func Test_Actions_Completeness(t *testing.T) {

	t.Run("every light gets exactly one action for every mode", func(t *testing.T) {
		p := lightingProfile()
		for _, mode := range p.Modes() {
			actions := lighting.Actions(p, mode)
			assert.Len(t, actions, len(p.Lights), fmt.Sprintf("mode %s", mode))
		}
	})

	t.Run("actions are ordered by entity id", func(t *testing.T) {
		actions := lighting.Actions(lightingProfile(), models.ModeHome)
		assert.Equal(t, "light.hall", actions[0].EntityID)
		assert.Equal(t, "light.lounge", actions[1].EntityID)
	})

	t.Run("missing reaction falls back to the profile default", func(t *testing.T) {
		p := lightingProfile()
		p.DefaultReaction = &models.Reaction{RGB: [3]int{10, 10, 10}, Brightness: 50}

		actions := lighting.Actions(p, "kitchen")
		for _, a := range actions {
			assert.Equal(t, *p.DefaultReaction, a.Reaction)
		}
	})

	t.Run("missing reaction without a default is a neutral no-change action", func(t *testing.T) {
		actions := lighting.Actions(lightingProfile(), "kitchen")
		for _, a := range actions {
			assert.True(t, a.Reaction.NoChange)
		}
	})
}

func Test_Ruleset_ApplyLightingOnModeChange(t *testing.T) {

	p := lightingProfile()
	automations, err := lighting.Ruleset(p, names, baseDate())
	assert.NoError(t, err)
	assert.Len(t, automations, 1)

	apply := automations[0]
	assert.Equal(t, "lume_apply_lighting_on_mode_change", apply.ID)
	assert.Equal(t, "input_select.lume_location_mode", apply.Trigger[0].EntityID)
	assert.Equal(t, "restart", apply.Mode)

	choices := apply.Action[0].Choose

	t.Run("modes with no resolvable action get no branch", func(t *testing.T) {
		// kitchen has no explicit reactions and there is no default
		for _, c := range choices {
			assert.NotEqual(t, "kitchen", c.Conditions[0].State)
		}
		assert.Len(t, choices, 2)
	})

	t.Run("each branch checks the override before touching lights", func(t *testing.T) {
		for _, c := range choices {
			first := c.Sequence[0]
			assert.Equal(t, "state", first.Condition)
			assert.Equal(t, "input_boolean.lume_manual_override", first.EntityID)
			assert.Equal(t, "off", first.State)
		}
	})

	t.Run("branch actions carry colour, brightness and transition", func(t *testing.T) {
		home := choices[0]
		assert.Equal(t, "HOME", home.Conditions[0].State)

		// hall first, lounge second
		hall := home.Sequence[1]
		assert.Equal(t, "light.turn_on", hall.Service)
		assert.Equal(t, "light.hall", hall.Target.EntityID)
		assert.Equal(t, []int{255, 255, 255}, hall.Data.RGBColor)
		assert.Equal(t, 255, *hall.Data.Brightness)

		lounge := home.Sequence[2]
		assert.Equal(t, "light.lounge", lounge.Target.EntityID)
		assert.Equal(t, 2, lounge.Data.Transition)
	})
}

func baseDate() time.Time {
	return time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
}
