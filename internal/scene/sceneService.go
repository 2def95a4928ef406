package scene

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/prism-home/prism/internal/lightstate"
	"github.com/prism-home/prism/internal/models"
	"github.com/prism-home/prism/internal/preview"
)

type dbAccess interface {
	GetSceneLightStates(sceneID string) ([]models.LightColourState, error)
	GetSceneLightIds(sceneID string) ([]string, error)
	GetAllScenes() ([]models.PrismScene, error)
	SaveSnapshot(snapshot models.SceneSnapshot) error
	GetSnapshot(id string) (models.SceneSnapshot, error)
	SetLightXY(lsID string, xy models.XY) error
	SetLightHueSat(lsID string, hs models.HueSat) error
	SetLightBrightness(lsID string, bri int) error
}

type bridgeAccess interface {
	CaptureSceneStates(sceneID string) ([]models.LightColourState, error)
	GetLight(id string) (*models.PrismLight, error)
	ApplyLightColour(lightID string, payload models.ColourPayload) error
}

// ScenePreview is the embeddable summary served for a scene: the palette
// plus a rendered gradient thumbnail.
type ScenePreview struct {
	Palette   models.ScenePalette
	Thumbnail string
}

type SceneService struct {
	logger   *log.Logger
	dbAccess dbAccess
	bridge   bridgeAccess
}

func NewSceneService(logger *log.Logger, dbAccess dbAccess, bridge bridgeAccess) *SceneService {
	return &SceneService{logger: logger, dbAccess: dbAccess, bridge: bridge}
}

func (s *SceneService) ListScenes() ([]models.PrismScene, error) {
	return s.dbAccess.GetAllScenes()
}

// GetScenePreview derives a palette and thumbnail from the cached light
// states of a scene. The preview is recomputed on every call and never
// persisted.
func (s *SceneService) GetScenePreview(sceneID string, format preview.Format) (ScenePreview, error) {
	states, err := s.dbAccess.GetSceneLightStates(sceneID)
	if err != nil {
		return ScenePreview{}, fmt.Errorf("error reading light states for scene (%s): %w", sceneID, err)
	}

	return s.buildPreview(states, format)
}

// CaptureSnapshot reads the scene's current per-light states from the
// bridge and stores them so previews can be derived later without
// re-polling.
func (s *SceneService) CaptureSnapshot(sceneID string) (models.SceneSnapshot, error) {
	states, err := s.bridge.CaptureSceneStates(sceneID)
	if err != nil {
		return models.SceneSnapshot{}, fmt.Errorf("error capturing states for scene (%s): %w", sceneID, err)
	}

	snapshot := models.SceneSnapshot{
		ID:      uuid.NewString(),
		SceneID: sceneID,
		TakenAt: time.Now(),
		States:  states,
	}

	if err := s.dbAccess.SaveSnapshot(snapshot); err != nil {
		return models.SceneSnapshot{}, fmt.Errorf("error saving snapshot for scene (%s): %w", sceneID, err)
	}

	s.logger.Debug("captured scene snapshot", "scene", sceneID, "snapshot", snapshot.ID, "lights", len(states))
	return snapshot, nil
}

// GetSnapshotPreview derives a palette and thumbnail from a previously
// captured snapshot.
func (s *SceneService) GetSnapshotPreview(snapshotID string, format preview.Format) (ScenePreview, error) {
	snapshot, err := s.dbAccess.GetSnapshot(snapshotID)
	if err != nil {
		return ScenePreview{}, fmt.Errorf("error reading snapshot (%s): %w", snapshotID, err)
	}

	return s.buildPreview(snapshot.States, format)
}

// ApplyUIColour pushes a UI-chosen colour to every light in a scene,
// shaping each payload to the light's declared capability set. The pushed
// state is folded straight into the cache, since the bridge does not echo
// state PUTs on the event stream.
func (s *SceneService) ApplyUIColour(sceneID string, rgb models.RGB, briPct int) error {
	lightIds, err := s.dbAccess.GetSceneLightIds(sceneID)
	if err != nil {
		return fmt.Errorf("error reading lights for scene (%s): %w", sceneID, err)
	}

	for _, id := range lightIds {
		light, err := s.bridge.GetLight(id)
		if err != nil {
			return fmt.Errorf("error reading light (%s): %w", id, err)
		}

		payload := lightstate.FromUIColour(rgb, briPct, light.Capability)
		if err := s.bridge.ApplyLightColour(id, payload); err != nil {
			return fmt.Errorf("error applying colour to light (%s): %w", id, err)
		}

		s.cachePushedState(id, payload)
	}

	s.logger.Debug("applied colour to scene", "scene", sceneID, "lights", len(lightIds), "brightness", briPct)
	return nil
}

func (s *SceneService) cachePushedState(id string, payload models.ColourPayload) {
	switch {
	case payload.XY != nil:
		if err := s.dbAccess.SetLightXY(id, *payload.XY); err != nil {
			s.logger.Error(err)
		}
	case payload.Hue != nil && payload.Sat != nil:
		if err := s.dbAccess.SetLightHueSat(id, models.HueSat{Hue: *payload.Hue, Sat: *payload.Sat}); err != nil {
			s.logger.Error(err)
		}
	}
	if payload.Bri != nil {
		if err := s.dbAccess.SetLightBrightness(id, *payload.Bri); err != nil {
			s.logger.Error(err)
		}
	}
}

func (s *SceneService) buildPreview(states []models.LightColourState, format preview.Format) (ScenePreview, error) {
	palette := ExtractPalette(states)

	thumbnail, err := preview.Synthesize(palette, format)
	if err != nil {
		return ScenePreview{}, err
	}

	return ScenePreview{Palette: palette, Thumbnail: thumbnail}, nil
}
