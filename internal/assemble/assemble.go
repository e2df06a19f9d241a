package assemble

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/lumeaddon/lume/internal/hass"
	"github.com/lumeaddon/lume/internal/lighting"
	"github.com/lumeaddon/lume/internal/models"
	"github.com/lumeaddon/lume/internal/modes"
	"github.com/lumeaddon/lume/internal/profile"
)

// InternalError is a defensive-check failure: validated input still
// produced an inconsistent document. Fatal for the request, never
// written out.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return "internal invariant violated: " + e.Reason
}

// Assembler composes helper declarations, the mode-computation ruleset
// and the lighting-reaction ruleset into one replacement package
// document. Assembly is a pure function of the profile: identical
// input yields byte-identical output.
type Assembler struct {
	logger *log.Logger
	names  hass.Names
	// injected so tests can pin the auto quiet-hours date
	baseDate func() time.Time
}

func NewAssembler(logger *log.Logger, names hass.Names) *Assembler {
	return &Assembler{logger: logger, names: names, baseDate: time.Now}
}

// NewAssemblerAt pins the generation date, for reproducible output.
func NewAssemblerAt(logger *log.Logger, names hass.Names, baseDate time.Time) *Assembler {
	return &Assembler{logger: logger, names: names, baseDate: func() time.Time { return baseDate }}
}

// Assemble validates the profile and renders the package document.
// The validation gate runs first: on any invariant violation nothing
// is rendered.
func (a *Assembler) Assemble(p models.Profile) ([]byte, error) {
	if err := profile.Validate(p); err != nil {
		return nil, err
	}

	doc := hass.Document{
		InputSelect:  map[string]hass.InputSelect{a.names.ModeSelectObject(): a.modeSelect(p)},
		InputBoolean: a.booleans(p),
	}

	if p.Dwell.Seconds > 0 {
		doc.Timer = map[string]hass.Timer{
			a.names.DwellTimerObject(): {
				Name:     "Mode Dwell Timer",
				Duration: hass.Duration(p.Dwell.Seconds),
			},
		}
	}

	doc.Automation = append(doc.Automation, modes.Ruleset(p, a.names)...)

	lightingAutomations, err := lighting.Ruleset(p, a.names, a.baseDate())
	if err != nil {
		return nil, err
	}
	doc.Automation = append(doc.Automation, lightingAutomations...)

	if err := a.check(doc); err != nil {
		return nil, err
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("error rendering package document: %w", err)
	}

	a.logger.Info("assembled package document",
		"modes", len(p.Modes()),
		"automations", len(doc.Automation),
		"bytes", len(out),
	)
	return out, nil
}

func (a *Assembler) modeSelect(p models.Profile) hass.InputSelect {
	options := make([]string, 0, len(p.Modes()))
	for _, m := range p.Modes() {
		options = append(options, string(m))
	}
	return hass.InputSelect{
		Name:    "Location Mode",
		Options: options,
		Initial: string(models.ModeAway),
	}
}

func (a *Assembler) booleans(p models.Profile) map[string]hass.InputBoolean {
	booleans := map[string]hass.InputBoolean{
		a.names.OverrideObject(): {Name: "Light Manual Override"},
	}
	if p.Flourish.Enabled {
		booleans[a.names.FlourishFlagObject()] = hass.InputBoolean{Name: "Home Arrival Flourish Done Today"}
	}
	return booleans
}

// check guards invariants the renderer relies on. Validation should
// make these unreachable.
func (a *Assembler) check(doc hass.Document) error {
	seen := map[string]bool{}
	for _, auto := range doc.Automation {
		if auto.ID == "" || len(auto.Trigger) == 0 || len(auto.Action) == 0 {
			return &InternalError{Reason: fmt.Sprintf("automation %q is incomplete", auto.Alias)}
		}
		if seen[auto.ID] {
			return &InternalError{Reason: fmt.Sprintf("duplicate automation id %q", auto.ID)}
		}
		seen[auto.ID] = true
	}
	if len(doc.InputSelect) != 1 {
		return &InternalError{Reason: "expected exactly one mode selector"}
	}
	return nil
}
