package models

import "time"

// RGB is the canonical device-independent colour, each channel in [0,255].
type RGB struct {
	R int
	G int
	B int
}

// XY is a CIE 1931 chromaticity coordinate, each component in [0,1].
// It carries no brightness information.
type XY struct {
	X float64
	Y float64
}

// HueSat is a device-scaled hue/saturation pair: hue in [0,65535]
// (a full turn mapped to 16 bits), saturation in [0,254].
type HueSat struct {
	Hue int
	Sat int
}

// LightColourState is the colour a light last reported. At most one of
// XY, HueSat or Mirek is set for a given device; Brightness is always
// present and independent, in [0,254].
type LightColourState struct {
	XY         *XY
	HueSat     *HueSat
	Mirek      *int
	Brightness int
}

// ColourCapability describes which colour fields a device accepts.
type ColourCapability struct {
	XY      bool
	HueSat  bool
	Mirek   bool
	Dimming bool
}

// ColourPayload holds the device-native fields produced for a light update.
// Only fields the target device supports are set.
type ColourPayload struct {
	XY    *XY  `json:"xy,omitempty"`
	Hue   *int `json:"hue,omitempty"`
	Sat   *int `json:"sat,omitempty"`
	Mirek *int `json:"mirek,omitempty"`
	Bri   *int `json:"bri,omitempty"`
}

// ScenePalette is the derived summary of a captured set of light states.
// Colours keeps insertion order and is capped for display; Brightness and
// LightCount are computed over the full set.
type ScenePalette struct {
	Colours    []string
	Brightness float64
	LightCount int
}

type PrismLight struct {
	Id             string
	Name           string
	LightServiceId string
	On             bool
	Reachable      bool

	Capability ColourCapability
	State      LightColourState

	MinMirek int
	MaxMirek int
}

// represents a named group of lights (i.e a room or zone)
type PrismGroup struct {
	Id   string
	Name string
	// light service ids in the group
	LightServiceIds []string
}

type PrismScene struct {
	ID        string
	Name      string
	GroupName string
	// light service ids in scene action order
	LightServiceIds []string
}

// SceneSnapshot is a captured set of per-light colour states, taken at a
// point in time so previews can be derived without re-polling the bridge.
type SceneSnapshot struct {
	ID      string
	SceneID string
	TakenAt time.Time
	States  []LightColourState
}

// an event received from the event stream
type Event struct {
	CreationTime time.Time   `json:"creationtime"`
	Data         []EventData `json:"data"`
	Type         string      `json:"type"`
}
type EventData struct {
	Id string `json:"id"`
	On *struct {
		On bool `json:"on"`
	} `json:"on"`
	Dimming *struct {
		Brightness float64 `json:"brightness"`
	} `json:"dimming"`
	ColorTemperature *struct {
		Mirek int `json:"mirek"`
	} `json:"color_temperature"`
	Color *struct {
		XY struct {
			X float64 `json:"x"`
			Y float64 `json:"y"`
		} `json:"xy"`
	} `json:"color"`
	Type   string `json:"type"`
	Status string `json:"status"`
}
