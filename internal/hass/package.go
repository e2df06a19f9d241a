package hass

// Types modelling the subset of a Home Assistant package document that
// the generator emits. Field order in the structs fixes the YAML field
// order, which keeps generation byte-identical for identical input.

type Document struct {
	InputSelect  map[string]InputSelect  `yaml:"input_select,omitempty"`
	InputBoolean map[string]InputBoolean `yaml:"input_boolean,omitempty"`
	Timer        map[string]Timer        `yaml:"timer,omitempty"`
	Automation   []Automation            `yaml:"automation,omitempty"`
}

type InputSelect struct {
	Name    string   `yaml:"name"`
	Options []string `yaml:"options"`
	Initial string   `yaml:"initial,omitempty"`
}

type InputBoolean struct {
	Name string `yaml:"name"`
}

type Timer struct {
	Name     string `yaml:"name"`
	Duration string `yaml:"duration"`
}

type Automation struct {
	ID        string      `yaml:"id"`
	Alias     string      `yaml:"alias"`
	Trigger   []Trigger   `yaml:"trigger"`
	Condition []Condition `yaml:"condition,omitempty"`
	Action    []Step      `yaml:"action"`
	Mode      string      `yaml:"mode"`
}

type Trigger struct {
	Platform  string            `yaml:"platform"`
	EntityID  string            `yaml:"entity_id,omitempty"`
	To        string            `yaml:"to,omitempty"`
	EventType string            `yaml:"event_type,omitempty"`
	EventData map[string]string `yaml:"event_data,omitempty"`
	At        string            `yaml:"at,omitempty"`
}

type Condition struct {
	Condition     string `yaml:"condition"`
	EntityID      string `yaml:"entity_id,omitempty"`
	State         string `yaml:"state,omitempty"`
	ValueTemplate string `yaml:"value_template,omitempty"`
	After         string `yaml:"after,omitempty"`
	Before        string `yaml:"before,omitempty"`
}

// Step is one entry in an automation action sequence. Exactly one of
// the groups below is populated per step.
type Step struct {
	// variable assignment
	Variables map[string]string `yaml:"variables,omitempty"`

	// inline condition (aborts the sequence when false)
	Condition     string `yaml:"condition,omitempty"`
	EntityID      string `yaml:"entity_id,omitempty"`
	State         string `yaml:"state,omitempty"`
	ValueTemplate string `yaml:"value_template,omitempty"`

	// service call
	Service string       `yaml:"service,omitempty"`
	Target  *Target      `yaml:"target,omitempty"`
	Data    *ServiceData `yaml:"data,omitempty"`

	// wait
	Delay string `yaml:"delay,omitempty"`

	// branching
	Choose  []Choice `yaml:"choose,omitempty"`
	Default []Step   `yaml:"default,omitempty"`
}

type Target struct {
	EntityID string `yaml:"entity_id"`
}

type Choice struct {
	Conditions []Condition `yaml:"conditions"`
	Sequence   []Step      `yaml:"sequence"`
}

type ServiceData struct {
	Option     string `yaml:"option,omitempty"`
	RGBColor   []int  `yaml:"rgb_color,omitempty,flow"`
	Brightness *int   `yaml:"brightness,omitempty"`
	Transition int    `yaml:"transition,omitempty"`
	Flash      string `yaml:"flash,omitempty"`
	Effect     string `yaml:"effect,omitempty"`
}
