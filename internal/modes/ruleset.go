package modes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/lumeaddon/lume/internal/hass"
	"github.com/lumeaddon/lume/internal/models"
)

// CandidateTemplate renders the candidate-mode expression the external
// engine evaluates on every signal change: zones in descending priority
// order, then the home presence aggregate, then Away.
func CandidateTemplate(p models.Profile) string {
	zones := zonesByPriority(p.Zones)

	var b strings.Builder
	keyword := "{% if "

	for _, z := range zones {
		conds := lo.Map(z.Signals, func(sig string, _ int) string {
			return fmt.Sprintf("is_state('%s', 'on')", sig)
		})
		b.WriteString(keyword + strings.Join(conds, " and ") + " %}" + string(z.Mode()))
		keyword = "{% elif "
	}

	if p.HomePresenceEntity != "" {
		b.WriteString(keyword + fmt.Sprintf("is_state('%s', 'home')", p.HomePresenceEntity) + " %}" + string(models.ModeHome))
		keyword = "{% elif "
	}

	if keyword == "{% if " {
		return string(models.ModeAway)
	}

	b.WriteString("{% else %}" + string(models.ModeAway) + "{% endif %}")
	return b.String()
}

// Ruleset derives the mode-computation automations: start/restart the
// dwell timer on any signal change, commit the candidate when the
// timer finishes, and pin the mode while the manual override is on.
// A dwell of zero collapses the first two into an immediate commit.
func Ruleset(p models.Profile, names hass.Names) []hass.Automation {
	candidate := CandidateTemplate(p)
	candidateChanged := fmt.Sprintf("{{ candidate != states('%s') }}", names.ModeSelectEntity())
	overrideOff := hass.Condition{Condition: "state", EntityID: names.OverrideEntity(), State: "off"}

	automations := []hass.Automation{}

	if p.Dwell.Seconds > 0 {
		automations = append(automations,
			hass.Automation{
				ID:        names.AutomationID("start_dwell_on_signal_change"),
				Alias:     "Location Lighting Mode - Start dwell on signal change",
				Trigger:   signalTriggers(p),
				Condition: []hass.Condition{overrideOff},
				Action: []hass.Step{
					{Variables: map[string]string{"candidate": candidate}},
					{
						Choose: []hass.Choice{{
							Conditions: []hass.Condition{{Condition: "template", ValueTemplate: candidateChanged}},
							Sequence: []hass.Step{
								{Service: "timer.start", Target: &hass.Target{EntityID: names.DwellTimerEntity()}},
							},
						}},
						// candidate settled back on the current mode: drop the pending transition
						Default: []hass.Step{
							{Service: "timer.cancel", Target: &hass.Target{EntityID: names.DwellTimerEntity()}},
						},
					},
				},
				Mode: "restart",
			},
			hass.Automation{
				ID:    names.AutomationID("commit_mode_after_dwell"),
				Alias: "Location Lighting Mode - Commit mode after dwell",
				Trigger: []hass.Trigger{{
					Platform:  "event",
					EventType: "timer.finished",
					EventData: map[string]string{"entity_id": names.DwellTimerEntity()},
				}},
				Condition: []hass.Condition{overrideOff},
				Action: []hass.Step{
					{Variables: map[string]string{"candidate": candidate}},
					{Condition: "template", ValueTemplate: candidateChanged},
					{
						Service: "input_select.select_option",
						Target:  &hass.Target{EntityID: names.ModeSelectEntity()},
						Data:    &hass.ServiceData{Option: "{{ candidate }}"},
					},
				},
				Mode: "single",
			},
		)
	} else {
		automations = append(automations, hass.Automation{
			ID:        names.AutomationID("commit_mode_immediately"),
			Alias:     "Location Lighting Mode - Commit mode on signal change",
			Trigger:   signalTriggers(p),
			Condition: []hass.Condition{overrideOff},
			Action: []hass.Step{
				{Variables: map[string]string{"candidate": candidate}},
				{Condition: "template", ValueTemplate: candidateChanged},
				{
					Service: "input_select.select_option",
					Target:  &hass.Target{EntityID: names.ModeSelectEntity()},
					Data:    &hass.ServiceData{Option: "{{ candidate }}"},
				},
			},
			Mode: "restart",
		})
	}

	if p.Override.Enabled && p.Override.PinnedMode != "" {
		action := []hass.Step{}
		if p.Dwell.Seconds > 0 {
			action = append(action, hass.Step{
				Service: "timer.cancel", Target: &hass.Target{EntityID: names.DwellTimerEntity()},
			})
		}
		action = append(action, hass.Step{
			Service: "input_select.select_option",
			Target:  &hass.Target{EntityID: names.ModeSelectEntity()},
			Data:    &hass.ServiceData{Option: string(p.Override.PinnedMode)},
		})

		automations = append(automations, hass.Automation{
			ID:      names.AutomationID("pin_mode_on_override"),
			Alias:   "Location Lighting Mode - Pin mode while override is on",
			Trigger: []hass.Trigger{{Platform: "state", EntityID: names.OverrideEntity(), To: "on"}},
			Action:  action,
			Mode:    "single",
		})
	}

	return automations
}

// signalTriggers returns one state trigger per distinct raw signal,
// sorted for stable output.
func signalTriggers(p models.Profile) []hass.Trigger {
	entities := []string{}
	for _, z := range p.Zones {
		entities = append(entities, z.Signals...)
	}
	if p.HomePresenceEntity != "" {
		entities = append(entities, p.HomePresenceEntity)
	}

	entities = lo.Uniq(entities)
	sort.Strings(entities)

	return lo.Map(entities, func(entity string, _ int) hass.Trigger {
		return hass.Trigger{Platform: "state", EntityID: entity}
	})
}

func zonesByPriority(zones []models.Zone) []models.Zone {
	sorted := make([]models.Zone, len(zones))
	copy(sorted, zones)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Priority > sorted[j].Priority })
	return sorted
}
