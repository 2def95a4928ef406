package bridge

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/prism-home/prism/internal/models"
)

type BridgeAPIService struct {
	logger *log.Logger
}

func NewBridgeAPIService(logger *log.Logger) *BridgeAPIService {
	return &BridgeAPIService{logger}
}

func (b *BridgeAPIService) GET(url string) ([]byte, error) {
	return b.makeRequest("GET", url, nil)
}

func (b *BridgeAPIService) PUT(url string, body []byte) ([]byte, error) {
	return b.makeRequest("PUT", url, body)
}

// GetAllLights reads every light known to the bridge, in stable id order.
func (b *BridgeAPIService) GetAllLights() ([]models.PrismLight, error) {

	body, err := b.GET("/lights")
	if err != nil {
		return nil, fmt.Errorf("error reading lights from bridge: %w", err)
	}

	lightsByID := map[string]BridgeLight{}
	if err := json.Unmarshal(body, &lightsByID); err != nil {
		return nil, fmt.Errorf("error parsing lights response: %w", err)
	}

	ids := lo.Keys(lightsByID)
	sort.Strings(ids)

	lights := lo.Map(ids, func(id string, _ int) models.PrismLight {
		return toPrismLight(id, lightsByID[id])
	})

	return lights, nil
}

func (b *BridgeAPIService) GetLight(id string) (*models.PrismLight, error) {

	body, err := b.GET(fmt.Sprintf("/lights/%s", id))
	if err != nil {
		return nil, err
	}

	light := BridgeLight{}
	if err := json.Unmarshal(body, &light); err != nil {
		b.logger.Error(err)
		return nil, err
	}

	pl := toPrismLight(id, light)
	return &pl, nil
}

// GetAllGroups reads the rooms and zones defined on the bridge.
func (b *BridgeAPIService) GetAllGroups() ([]models.PrismGroup, error) {

	body, err := b.GET("/groups")
	if err != nil {
		return nil, fmt.Errorf("error reading groups from bridge: %w", err)
	}

	groupsByID := map[string]BridgeGroup{}
	if err := json.Unmarshal(body, &groupsByID); err != nil {
		return nil, fmt.Errorf("error parsing groups response: %w", err)
	}

	ids := lo.Keys(groupsByID)
	sort.Strings(ids)

	groups := lo.Map(ids, func(id string, _ int) models.PrismGroup {
		return models.PrismGroup{
			Id:              id,
			Name:            groupsByID[id].Name,
			LightServiceIds: groupsByID[id].Lights,
		}
	})

	return groups, nil
}

func (b *BridgeAPIService) GetScenes() ([]models.PrismScene, error) {

	body, err := b.GET("/scenes")
	if err != nil {
		return nil, fmt.Errorf("error reading scenes from bridge: %w", err)
	}

	scenesByID := map[string]BridgeScene{}
	if err := json.Unmarshal(body, &scenesByID); err != nil {
		return nil, fmt.Errorf("error parsing scenes response: %w", err)
	}

	ids := lo.Keys(scenesByID)
	sort.Strings(ids)

	scenes := lo.Map(ids, func(id string, _ int) models.PrismScene {
		return models.PrismScene{
			ID:              id,
			Name:            scenesByID[id].Name,
			GroupName:       scenesByID[id].Group,
			LightServiceIds: scenesByID[id].Lights,
		}
	})

	return scenes, nil
}

// CaptureSceneStates reads the per-light colour states a scene applies,
// in the scene's own light order.
func (b *BridgeAPIService) CaptureSceneStates(sceneID string) ([]models.LightColourState, error) {

	body, err := b.GET(fmt.Sprintf("/scenes/%s", sceneID))
	if err != nil {
		return nil, fmt.Errorf("error reading scene (%s) from bridge: %w", sceneID, err)
	}

	scene := BridgeScene{}
	if err := json.Unmarshal(body, &scene); err != nil {
		return nil, fmt.Errorf("error parsing scene response: %w", err)
	}

	states := []models.LightColourState{}
	for _, lightID := range scene.Lights {
		wireState, found := scene.LightStates[lightID]
		if !found {
			b.logger.Warnf("scene (%s) has no state for light (%s)", sceneID, lightID)
			continue
		}
		states = append(states, toColourState(wireState))
	}

	return states, nil
}

// ApplyLightColour pushes a colour payload to a single light. The payload
// is expected to already be shaped to the light's capability set.
func (b *BridgeAPIService) ApplyLightColour(lightID string, payload models.ColourPayload) error {

	data, err := json.Marshal(toWirePayload(payload))
	if err != nil {
		return err
	}

	_, err = b.PUT(fmt.Sprintf("/lights/%s/state", lightID), data)
	if err != nil {
		return fmt.Errorf("error updating light (%s): %w", lightID, err)
	}
	return nil
}

// ApplyGroupColour pushes a colour payload to every light in a group via
// the group action endpoint.
func (b *BridgeAPIService) ApplyGroupColour(groupID string, payload models.ColourPayload) error {

	data, err := json.Marshal(toWirePayload(payload))
	if err != nil {
		return err
	}

	_, err = b.PUT(fmt.Sprintf("/groups/%s/action", groupID), data)
	if err != nil {
		return fmt.Errorf("error updating group (%s): %w", groupID, err)
	}
	return nil
}

func (b *BridgeAPIService) makeRequest(verb string, url string, body []byte) ([]byte, error) {

	bodyReader := bytes.NewReader(body)
	req, err := http.NewRequest(verb, fmt.Sprintf("https://%s/api/%s%s", viper.GetString("bridgeIp"), viper.GetString("bridgeApplicationKey"), url), bodyReader)
	if err != nil {
		return nil, err
	}

	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	client := &http.Client{Transport: tr}

	// make the request
	resp, err := client.Do(req)
	if err != nil {
		b.logger.Error(err)
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case 200:
		// all good
		responseBody, _ := io.ReadAll(resp.Body)
		return responseBody, nil
	case 207:
		// the bridge answers for a light it can no longer reach
		return nil, errors.New("unreachable")
	default:
		b.logger.Error("Error making bridge API call", "url", url, "status", resp.Status)
		return nil, fmt.Errorf("bridge returned %s", resp.Status)
	}

}

// toColourState lifts a wire state into the canonical discriminated
// record, keeping only the authoritative colour field.
func toColourState(state BridgeLightState) models.LightColourState {
	cs := models.LightColourState{Brightness: state.Bri}

	switch state.ColorMode {
	case "xy":
		if state.XY != nil {
			cs.XY = &models.XY{X: state.XY[0], Y: state.XY[1]}
		}
	case "hs":
		if state.Hue != nil && state.Sat != nil {
			cs.HueSat = &models.HueSat{Hue: *state.Hue, Sat: *state.Sat}
		}
	case "ct":
		if state.CT != nil {
			mirek := *state.CT
			cs.Mirek = &mirek
		}
	default:
		// older firmwares omit colormode; take whichever field is present
		switch {
		case state.XY != nil:
			cs.XY = &models.XY{X: state.XY[0], Y: state.XY[1]}
		case state.Hue != nil && state.Sat != nil:
			cs.HueSat = &models.HueSat{Hue: *state.Hue, Sat: *state.Sat}
		case state.CT != nil:
			mirek := *state.CT
			cs.Mirek = &mirek
		}
	}

	return cs
}

func toPrismLight(id string, light BridgeLight) models.PrismLight {

	caps := models.ColourCapability{
		XY:      light.Capabilities.Control.ColorGamutType != "" || light.State.XY != nil,
		HueSat:  light.State.Hue != nil && light.State.Sat != nil,
		Mirek:   light.Capabilities.Control.CT != nil || light.State.CT != nil,
		Dimming: light.Type != "On/Off light",
	}

	pl := models.PrismLight{
		Id:             light.UniqueID,
		Name:           light.Name,
		LightServiceId: id,
		On:             light.State.On,
		Reachable:      light.State.Reachable,
		Capability:     caps,
		State:          toColourState(light.State),
	}

	if light.Capabilities.Control.CT != nil {
		pl.MinMirek = light.Capabilities.Control.CT.Min
		pl.MaxMirek = light.Capabilities.Control.CT.Max
	}

	return pl
}

func toWirePayload(payload models.ColourPayload) wirePayload {
	wire := wirePayload{
		Bri: payload.Bri,
		Hue: payload.Hue,
		Sat: payload.Sat,
		CT:  payload.Mirek,
	}
	if payload.XY != nil {
		wire.XY = &[2]float64{payload.XY.X, payload.XY.Y}
	}
	return wire
}
