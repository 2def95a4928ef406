package constants

import "time"

const MainUpdateInterval = time.Minute

// device colour scales
const BrightnessMax = 254
const SaturationMax = 254
const HueMax = 65535

// mired colour temperature
const MirekMin = 153
const MirekMax = 500
const MirekScale = 1000000

// the Tanner-Helland approximation switches curves at this temperature
const KelvinBranchPoint = 6600

// scene previews
const PaletteColourCap = 5
const ThumbnailWidth = 240
const ThumbnailHeight = 32

// bridge events
const EventBatchTypeUpdate = "update"

const EventTypeZigbeeConnectivity = "zigbee_connectivity"
const EventStatusConnectivityIssue = "connectivity_issue"
const EventStatusConnected = "connected"

const EventTypeLight = "light"
