package model

// Persona is a synthetic audience profile fed to the reaction prompt.
type Persona struct {
	Name       string   `json:"name"`
	Segment    string   `json:"segment,omitempty"`
	Age        int      `json:"age"`
	Occupation string   `json:"occupation"`
	Location   string   `json:"location"`
	Income     int      `json:"income"`
	Goals      []string `json:"goals,omitempty"`
	Fears      []string `json:"fears,omitempty"`
}

// PersonaGroup is how the personas file organises seed profiles: one
// segment with a male and a female seed.
type PersonaGroup struct {
	Segment string   `json:"segment"`
	Male    *Persona `json:"male,omitempty"`
	Female  *Persona `json:"female,omitempty"`
}
