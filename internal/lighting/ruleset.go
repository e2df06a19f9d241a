package lighting

import (
	"time"

	"github.com/lumeaddon/lume/internal/hass"
	"github.com/lumeaddon/lume/internal/models"
)

// Ruleset derives the lighting-reaction automations: apply the steady
// per-mode reaction whenever the committed mode changes, and, when
// configured, the one-shot arrival flourish on the transition into
// Home. baseDate anchors the auto quiet-hours window.
func Ruleset(p models.Profile, names hass.Names, baseDate time.Time) ([]hass.Automation, error) {
	automations := []hass.Automation{}

	if choices := modeChoices(p, names); len(choices) > 0 {
		automations = append(automations, hass.Automation{
			ID:      names.AutomationID("apply_lighting_on_mode_change"),
			Alias:   "Location Lighting Mode - Apply lighting on mode change",
			Trigger: []hass.Trigger{{Platform: "state", EntityID: names.ModeSelectEntity()}},
			Action:  []hass.Step{{Choose: choices}},
			Mode:    "restart",
		})
	}

	if p.Flourish.Enabled && len(p.Lights) > 0 {
		flourish, err := flourishAutomation(p, names, baseDate)
		if err != nil {
			return nil, err
		}
		automations = append(automations, flourish, flourishResetAutomation(names))
	}

	return automations, nil
}

// modeChoices builds one branch per mode that has at least one
// non-neutral action. Every branch re-checks the override so a pinned
// mode's lighting is never overwritten mid-sequence.
func modeChoices(p models.Profile, names hass.Names) []hass.Choice {
	choices := []hass.Choice{}

	for _, mode := range p.Modes() {
		steps := serviceSteps(Actions(p, mode))
		if len(steps) == 0 {
			continue
		}

		sequence := append([]hass.Step{
			{Condition: "state", EntityID: names.OverrideEntity(), State: "off"},
		}, steps...)

		choices = append(choices, hass.Choice{
			Conditions: []hass.Condition{
				{Condition: "state", EntityID: names.ModeSelectEntity(), State: string(mode)},
			},
			Sequence: sequence,
		})
	}

	return choices
}

// flourishAutomation fires once per day on the transition into Home:
// the transient effect first, then after the flourish duration the
// steady Home reaction, modelled as ordered steps with an explicit
// delay because the engine has no delayed-action primitive here.
func flourishAutomation(p models.Profile, names hass.Names, baseDate time.Time) (hass.Automation, error) {
	conditions := []hass.Condition{
		{Condition: "state", EntityID: names.OverrideEntity(), State: "off"},
		{Condition: "state", EntityID: names.FlourishFlagEntity(), State: "off"},
	}
	from, to, err := quietWindow(p, baseDate)
	if err != nil {
		return hass.Automation{}, err
	}
	if from != "" {
		// outside the quiet window means after it ends and before it starts
		conditions = append(conditions, hass.Condition{Condition: "time", After: to, Before: from})
	}

	action := []hass.Step{}
	for _, a := range Actions(p, models.ModeHome) {
		data := &hass.ServiceData{Flash: "short"}
		if p.Flourish.Effect != "" {
			data = &hass.ServiceData{Effect: p.Flourish.Effect}
		}
		action = append(action, hass.Step{
			Service: "light.turn_on",
			Target:  &hass.Target{EntityID: a.EntityID},
			Data:    data,
		})
	}

	action = append(action, hass.Step{Delay: hass.Duration(p.Flourish.DurationSeconds)})
	action = append(action, serviceSteps(Actions(p, models.ModeHome))...)
	action = append(action, hass.Step{
		Service: "input_boolean.turn_on",
		Target:  &hass.Target{EntityID: names.FlourishFlagEntity()},
	})

	return hass.Automation{
		ID:        names.AutomationID("home_arrival_flourish"),
		Alias:     "Location Lighting Mode - Home arrival flourish",
		Trigger:   []hass.Trigger{{Platform: "state", EntityID: names.ModeSelectEntity(), To: string(models.ModeHome)}},
		Condition: conditions,
		Action:    action,
		Mode:      "single",
	}, nil
}

func flourishResetAutomation(names hass.Names) hass.Automation {
	return hass.Automation{
		ID:      names.AutomationID("reset_flourish_daily"),
		Alias:   "Location Lighting Mode - Reset flourish daily",
		Trigger: []hass.Trigger{{Platform: "time", At: "00:00:05"}},
		Action: []hass.Step{{
			Service: "input_boolean.turn_off",
			Target:  &hass.Target{EntityID: names.FlourishFlagEntity()},
		}},
		Mode: "single",
	}
}
