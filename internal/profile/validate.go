package profile

import (
	"fmt"
	"regexp"

	"github.com/lumeaddon/lume/internal/models"
)

var zoneIDPattern = regexp.MustCompile(`^[a-z0-9]+(?:_[a-z0-9]+)*$`)

// Validate checks every profile invariant and returns the first
// violation as a *ValidationError. A nil return means the profile is
// safe to hand to the assembler.
func Validate(p models.Profile) error {
	if len(p.Zones) == 0 && p.HomePresenceEntity == "" {
		return &ValidationError{Field: "zones", Reason: "at least one zone or a home presence entity is required"}
	}

	seenIDs := map[string]int{}
	seenPriorities := map[int]string{}

	for i, z := range p.Zones {
		field := func(name string) string { return fmt.Sprintf("zones[%d].%s", i, name) }

		if z.ID == "" {
			return &ValidationError{Field: field("id"), Reason: "zone id is required"}
		}
		if !zoneIDPattern.MatchString(z.ID) {
			return &ValidationError{Field: field("id"), Reason: "zone id must be lower_snake_case"}
		}
		if prev, dup := seenIDs[z.ID]; dup {
			return &ValidationError{
				Field:  field("id"),
				Reason: fmt.Sprintf("duplicate zone id %q (already used by zones[%d])", z.ID, prev),
			}
		}
		seenIDs[z.ID] = i

		if len(z.Signals) == 0 {
			return &ValidationError{Field: field("signals"), Reason: "zone must have at least one presence signal"}
		}
		for j, sig := range z.Signals {
			if sig == "" {
				return &ValidationError{Field: fmt.Sprintf("zones[%d].signals[%d]", i, j), Reason: "signal entity id is empty"}
			}
		}

		if other, collides := seenPriorities[z.Priority]; collides {
			return &ValidationError{
				Field:  field("priority"),
				Reason: fmt.Sprintf("priority %d collides with zone %q", z.Priority, other),
			}
		}
		seenPriorities[z.Priority] = z.ID
	}

	if p.Dwell.Seconds < 0 {
		return &ValidationError{Field: "dwell.seconds", Reason: "dwell duration must not be negative"}
	}

	if p.Override.Enabled && p.Override.PinnedMode != "" {
		if !isConfiguredMode(p, p.Override.PinnedMode) {
			return &ValidationError{
				Field:  "override.pinnedMode",
				Reason: fmt.Sprintf("%q is not a configured mode", p.Override.PinnedMode),
			}
		}
	}

	for i, lt := range p.Lights {
		if lt.EntityID == "" {
			return &ValidationError{Field: fmt.Sprintf("lights[%d].entityId", i), Reason: "light entity id is required"}
		}
		for mode, r := range lt.Reactions {
			if !isConfiguredMode(p, mode) {
				return &ValidationError{
					Field:  fmt.Sprintf("lights[%d].reactions", i),
					Reason: fmt.Sprintf("reaction configured for unknown mode %q", mode),
				}
			}
			if err := validateReaction(fmt.Sprintf("lights[%d].reactions[%s]", i, mode), r); err != nil {
				return err
			}
		}
	}

	if p.DefaultReaction != nil {
		if err := validateReaction("defaultReaction", *p.DefaultReaction); err != nil {
			return err
		}
	}

	if p.Flourish.Enabled {
		if p.Flourish.DurationSeconds <= 0 {
			return &ValidationError{Field: "flourish.durationSeconds", Reason: "flourish duration must be positive"}
		}
		if len(p.Lights) == 0 {
			return &ValidationError{Field: "flourish.enabled", Reason: "flourish requires at least one light"}
		}
	}

	if p.QuietHours.Enabled && !p.QuietHours.Auto {
		if p.QuietHours.From == "" || p.QuietHours.To == "" {
			return &ValidationError{Field: "quietHours", Reason: "quiet hours need a from and to time unless auto is set"}
		}
	}

	return nil
}

func validateReaction(field string, r models.Reaction) error {
	if r.NoChange {
		return nil
	}
	for _, c := range r.RGB {
		if c < 0 || c > 255 {
			return &ValidationError{Field: field + ".rgb", Reason: "rgb components must be 0-255"}
		}
	}
	if r.Brightness < 0 || r.Brightness > 255 {
		return &ValidationError{Field: field + ".brightness", Reason: "brightness must be 0-255"}
	}
	if r.TransitionSeconds < 0 {
		return &ValidationError{Field: field + ".transitionSeconds", Reason: "transition must not be negative"}
	}
	return nil
}

func isConfiguredMode(p models.Profile, mode models.Mode) bool {
	for _, m := range p.Modes() {
		if m == mode {
			return true
		}
	}
	return false
}
