package content

import (
	"time"

	"github.com/lixenwraith/mind-palace/audio"
	"github.com/lixenwraith/mind-palace/render"
)

// Content is every static string, tone and color the rooms display
type Content struct {
	Owner    string   `yaml:"owner"`
	Host     string   `yaml:"host"`
	Loading  Loading  `yaml:"loading"`
	Boot     Boot     `yaml:"boot"`
	Terminal Terminal `yaml:"terminal"`
	Welcome  Welcome  `yaml:"welcome"`
	Projects Projects `yaml:"projects"`
	Memory   Memory   `yaml:"memory"`
	Chaos    Chaos    `yaml:"chaos"`
	Skills   Skills   `yaml:"skills"`
	Synapse  Synapse  `yaml:"synapse"`
}

// Header is a room title with its comment-style subtitle
type Header struct {
	Title    string     `yaml:"title"`
	Subtitle string     `yaml:"subtitle"`
	Color    render.RGB `yaml:"color"`
}

// Script is one loading screen command list
type Script struct {
	Prompt    string        `yaml:"prompt"`
	TypeEvery time.Duration `yaml:"type_every"`
	Pause     time.Duration `yaml:"pause"`
	Lines     []string      `yaml:"lines"`
}

// Loading holds the scripted loading screen
type Loading struct {
	Title   string            `yaml:"title"`
	Script  string            `yaml:"script"`
	Scripts map[string]Script `yaml:"scripts"`
}

// Active returns the selected script
func (l Loading) Active() Script {
	return l.Scripts[l.Script]
}

// Boot holds the boot screen labels
type Boot struct {
	Title    string `yaml:"title"`
	Progress string `yaml:"progress"`
	Status   string `yaml:"status"`
}

// Terminal holds the faux shell chrome
type Terminal struct {
	Prompt      string `yaml:"prompt"`
	Placeholder string `yaml:"placeholder"`
}

// Typed is a line revealed by a typewriter after Delay
type Typed struct {
	Text  string        `yaml:"text"`
	Delay time.Duration `yaml:"delay"`
	Color render.RGB    `yaml:"color"`
}

// Stat is a clickable value card
type Stat struct {
	Label string     `yaml:"label"`
	Value string     `yaml:"value"`
	Color render.RGB `yaml:"color"`
	Tone  audio.Tone `yaml:"tone"`
}

// Welcome is the landing room
type Welcome struct {
	Title  string     `yaml:"title"`
	Color  render.RGB `yaml:"color"`
	Lines  []Typed    `yaml:"lines"`
	Stats  []Stat     `yaml:"stats"`
	Footer string     `yaml:"footer"`
}

// Project is one card in the projects room
type Project struct {
	File        string     `yaml:"file"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Tech        []string   `yaml:"tech"`
	Status      string     `yaml:"status"`
	Kind        string     `yaml:"kind"`
	Color       render.RGB `yaml:"color"`
	Tone        audio.Tone `yaml:"tone"`
}

// Projects is the prefrontal cortex room
type Projects struct {
	Header       Header                `yaml:"header"`
	Items        []Project             `yaml:"items"`
	StatusColors map[string]render.RGB `yaml:"status_colors"`
	Actions      []string              `yaml:"actions"`
}

// Entry is one period in the memory timeline
type Entry struct {
	Period string     `yaml:"period"`
	Role   string     `yaml:"role"`
	Detail string     `yaml:"detail"`
	Color  render.RGB `yaml:"color"`
}

// Panel is a clickable card with a title
type Panel struct {
	Title string     `yaml:"title"`
	Tone  audio.Tone `yaml:"tone"`
}

// Philosophy is the memory room's essay card
type Philosophy struct {
	Panel      `yaml:",inline"`
	Quote      string   `yaml:"quote"`
	Paragraphs []string `yaml:"paragraphs"`
	Obsessions struct {
		Title string   `yaml:"title"`
		Items []string `yaml:"items"`
	} `yaml:"obsessions"`
}

// Memory is the temporal lobe room
type Memory struct {
	Header Header `yaml:"header"`
	Core   struct {
		Panel   `yaml:",inline"`
		Entries []Entry `yaml:"entries"`
	} `yaml:"core"`
	Philosophy Philosophy `yaml:"philosophy"`
}

// Card is one chaos room stat card; Meter cards show the live chaos level
type Card struct {
	Glyph   string     `yaml:"glyph"`
	Title   string     `yaml:"title"`
	Caption string     `yaml:"caption"`
	Code    string     `yaml:"code"`
	Meter   bool       `yaml:"meter"`
	Color   render.RGB `yaml:"color"`
	Tone    audio.Tone `yaml:"tone"`
}

// Chaos is the limbic system room
type Chaos struct {
	Header    Header     `yaml:"header"`
	Tone      audio.Tone `yaml:"tone"`
	Cards     []Card     `yaml:"cards"`
	Quote     string     `yaml:"quote"`
	Paragraph string     `yaml:"paragraph"`
	Generator struct {
		Title    string   `yaml:"title"`
		Thoughts []string `yaml:"thoughts"`
		Hint     string   `yaml:"hint"`
	} `yaml:"generator"`
}

// Skill is one labelled level bar
type Skill struct {
	Name  string     `yaml:"name"`
	Level int        `yaml:"level"`
	Color render.RGB `yaml:"color"`
}

// SkillPanel groups skills under a clickable card
type SkillPanel struct {
	Panel  `yaml:",inline"`
	Skills []Skill `yaml:"skills"`
}

// Skills is the motor cortex room
type Skills struct {
	Header Header       `yaml:"header"`
	Panels []SkillPanel `yaml:"panels"`
	Stats  struct {
		Title string `yaml:"title"`
		Items []Stat `yaml:"items"`
	} `yaml:"stats"`
}

// Synapse is the contact room chrome around the form
type Synapse struct {
	Header  Header   `yaml:"header"`
	Title   string   `yaml:"title"`
	Banner  []string `yaml:"banner"`
	Channel string   `yaml:"channel"`
	Prompts []string `yaml:"prompts"`
	Footer  []string `yaml:"footer"`
}
