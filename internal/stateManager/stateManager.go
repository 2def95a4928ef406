package statemanager

import (
	"encoding/json"
	"math"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"

	"github.com/prism-home/prism/internal/constants"
	"github.com/prism-home/prism/internal/lightstate"
	"github.com/prism-home/prism/internal/models"
)

type dbAccess interface {
	SetLightOnState(lsID string, on bool) error
	SetLightBrightness(lsID string, bri int) error
	SetLightXY(lsID string, xy models.XY) error
	SetLightMirek(lsID string, mirek int) error
	SetLightReachable(lsID string, reachable bool) error
}

// StateManager keeps the light-state cache in step with the bridge by
// folding event-stream updates into the repo.
type StateManager struct {
	dbAccess dbAccess
	logger   *log.Logger
}

func NewStateManager(logger *log.Logger, dbAccess dbAccess) *StateManager {
	return &StateManager{logger: logger, dbAccess: dbAccess}
}

func (m *StateManager) HandleBridgeEvent(event *sse.Event) {
	events := []models.Event{}
	if err := json.Unmarshal(event.Data, &events); err != nil {
		m.logger.Error(err)
		return
	}

	for _, evt := range events {
		if evt.Type != constants.EventBatchTypeUpdate {
			continue
		}

		for _, eventData := range evt.Data {

			switch eventData.Type {

			case constants.EventTypeZigbeeConnectivity:
				switch eventData.Status {

				case constants.EventStatusConnectivityIssue:
					m.logger.Debugf("light (%s) became unreachable", eventData.Id)
					if err := m.dbAccess.SetLightReachable(eventData.Id, false); err != nil {
						m.logger.Error(err)
					}

				case constants.EventStatusConnected:
					m.logger.Debugf("light (%s) was just powered on", eventData.Id)
					if err := m.dbAccess.SetLightReachable(eventData.Id, true); err != nil {
						m.logger.Error(err)
					}
				}

			case constants.EventTypeLight:

				if eventData.On != nil {
					if err := m.dbAccess.SetLightOnState(eventData.Id, eventData.On.On); err != nil {
						m.logger.Error(err)
					}
				}

				// brightness arrives as a UI-scale percentage
				if eventData.Dimming != nil {
					bri := lightstate.PercentToBri(int(math.Round(eventData.Dimming.Brightness)))
					if err := m.dbAccess.SetLightBrightness(eventData.Id, bri); err != nil {
						m.logger.Error(err)
					}
				}

				if eventData.Color != nil {
					xy := models.XY{X: eventData.Color.XY.X, Y: eventData.Color.XY.Y}
					if err := m.dbAccess.SetLightXY(eventData.Id, xy); err != nil {
						m.logger.Error(err)
					}
				}

				if eventData.ColorTemperature != nil {
					if err := m.dbAccess.SetLightMirek(eventData.Id, eventData.ColorTemperature.Mirek); err != nil {
						m.logger.Error(err)
					}
				}
			}

		}

	}
}
