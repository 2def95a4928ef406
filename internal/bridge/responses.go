package bridge

// BridgeLightState is the wire-level colour state of one light. The
// bridge reports every field the device has ever set; colormode names the
// authoritative one.
type BridgeLightState struct {
	On        bool        `json:"on"`
	Bri       int         `json:"bri"`
	Hue       *int        `json:"hue,omitempty"`
	Sat       *int        `json:"sat,omitempty"`
	XY        *[2]float64 `json:"xy,omitempty"`
	CT        *int        `json:"ct,omitempty"`
	ColorMode string      `json:"colormode,omitempty"`
	Reachable bool        `json:"reachable"`
}

type BridgeLight struct {
	State        BridgeLightState `json:"state"`
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	ModelID      string           `json:"modelid"`
	UniqueID     string           `json:"uniqueid"`
	Capabilities struct {
		Control struct {
			ColorGamutType string `json:"colorgamuttype"`
			CT             *struct {
				Min int `json:"min"`
				Max int `json:"max"`
			} `json:"ct"`
		} `json:"control"`
	} `json:"capabilities"`
}

type BridgeGroup struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Lights []string `json:"lights"`
}

type BridgeScene struct {
	Name        string                      `json:"name"`
	Group       string                      `json:"group"`
	Lights      []string                    `json:"lights"`
	LightStates map[string]BridgeLightState `json:"lightstates"`
}

// wirePayload is the body of a light/group state PUT. Only the fields a
// device supports are ever populated.
type wirePayload struct {
	On  *bool       `json:"on,omitempty"`
	Bri *int        `json:"bri,omitempty"`
	Hue *int        `json:"hue,omitempty"`
	Sat *int        `json:"sat,omitempty"`
	XY  *[2]float64 `json:"xy,omitempty"`
	CT  *int        `json:"ct,omitempty"`
}
