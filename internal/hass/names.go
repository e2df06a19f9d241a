package hass

import "fmt"

// Names derives every generated entity and automation id from one
// stable prefix, so regenerating the package replaces entities instead
// of duplicating or orphaning them.
type Names struct {
	prefix string
}

func NewNames(prefix string) Names {
	return Names{prefix: prefix}
}

func (n Names) ModeSelectObject() string   { return n.prefix + "_location_mode" }
func (n Names) ModeSelectEntity() string   { return "input_select." + n.ModeSelectObject() }
func (n Names) OverrideObject() string     { return n.prefix + "_manual_override" }
func (n Names) OverrideEntity() string     { return "input_boolean." + n.OverrideObject() }
func (n Names) FlourishFlagObject() string { return n.prefix + "_flourish_done_today" }
func (n Names) FlourishFlagEntity() string { return "input_boolean." + n.FlourishFlagObject() }
func (n Names) DwellTimerObject() string   { return n.prefix + "_mode_dwell" }
func (n Names) DwellTimerEntity() string   { return "timer." + n.DwellTimerObject() }

func (n Names) AutomationID(slug string) string { return n.prefix + "_" + slug }

// Duration renders seconds as the HH:MM:SS duration string timers and
// delays expect.
func Duration(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}
