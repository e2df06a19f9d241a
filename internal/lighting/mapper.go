package lighting

import (
	"sort"

	"github.com/samber/lo"

	"github.com/lumeaddon/lume/internal/hass"
	"github.com/lumeaddon/lume/internal/models"
)

// EntityAction is the resolved light action for one entity in one mode.
type EntityAction struct {
	EntityID string
	Mode     models.Mode
	Reaction models.Reaction
}

// Actions resolves exactly one action per configured light for the
// given mode. A light without an explicit reaction falls back to the
// profile default, or to a neutral no-change action when there is no
// default. Output is ordered by entity id so generation is stable.
func Actions(p models.Profile, mode models.Mode) []EntityAction {
	targets := make([]models.LightTarget, len(p.Lights))
	copy(targets, p.Lights)
	sort.Slice(targets, func(i, j int) bool { return targets[i].EntityID < targets[j].EntityID })

	return lo.Map(targets, func(lt models.LightTarget, _ int) EntityAction {
		reaction, ok := lt.Reactions[mode]
		if !ok {
			if p.DefaultReaction != nil {
				reaction = *p.DefaultReaction
			} else {
				reaction = models.Reaction{NoChange: true}
			}
		}
		return EntityAction{EntityID: lt.EntityID, Mode: mode, Reaction: reaction}
	})
}

// serviceSteps renders the actions as light.turn_on calls, dropping
// neutral no-change actions (the entity is deliberately left alone).
func serviceSteps(actions []EntityAction) []hass.Step {
	steps := []hass.Step{}
	for _, a := range actions {
		if a.Reaction.NoChange {
			continue
		}

		data := &hass.ServiceData{
			RGBColor:   []int{a.Reaction.RGB[0], a.Reaction.RGB[1], a.Reaction.RGB[2]},
			Transition: a.Reaction.TransitionSeconds,
		}
		if a.Reaction.Brightness > 0 {
			brightness := a.Reaction.Brightness
			data.Brightness = &brightness
		}

		steps = append(steps, hass.Step{
			Service: "light.turn_on",
			Target:  &hass.Target{EntityID: a.EntityID},
			Data:    data,
		})
	}
	return steps
}
