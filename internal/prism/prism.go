package prism

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"github.com/samber/lo"

	"github.com/prism-home/prism/internal/concurrency"
	"github.com/prism-home/prism/internal/config"
	"github.com/prism-home/prism/internal/constants"
	"github.com/prism-home/prism/internal/models"
)

type stateManager interface {
	HandleBridgeEvent(event *sse.Event)
}

type bridgeAccess interface {
	GetAllLights() ([]models.PrismLight, error)
	GetScenes() ([]models.PrismScene, error)
	ApplyGroupColour(groupID string, payload models.ColourPayload) error
}

type eventConsumer interface {
	Subscribe(chan *sse.Event)
	Unsubscribe()
}

type dbAccess interface {
	AddLights(lights []models.PrismLight) error
	AddScenes(scenes []models.PrismScene) error
}

type circadianService interface {
	SuggestMirek(t time.Time) int
}

// the bridge drops rapid-fire group writes, pace them out
const groupWriteInterval = 100 * time.Millisecond

// Prism wires the bridge, the state cache and the circadian service into
// the daemon's main loop.
type Prism struct {
	logger       *log.Logger
	stateManager stateManager
	bridge       bridgeAccess
	events       eventConsumer
	dbAccess     dbAccess
	circadian    circadianService
	followGroups []config.FollowGroup
}

func NewPrism(
	logger *log.Logger,
	followGroups []config.FollowGroup,
	stateManager stateManager,
	bridge bridgeAccess,
	events eventConsumer,
	dbAccess dbAccess,
	circadian circadianService,
) *Prism {
	return &Prism{
		logger:       logger,
		followGroups: followGroups,
		stateManager: stateManager,
		bridge:       bridge,
		events:       events,
		dbAccess:     dbAccess,
		circadian:    circadian,
	}
}

// Initialise reads the lights and scenes from the bridge and seeds the
// state cache.
func (p *Prism) Initialise() error {
	p.logger.Debug("Prism.Initialise")

	lights, err := p.bridge.GetAllLights()
	if err != nil {
		return err
	}
	if err := p.dbAccess.AddLights(lights); err != nil {
		return err
	}
	p.logger.Info("Read lights from bridge", "total", len(lights))

	scenes, err := p.bridge.GetScenes()
	if err != nil {
		return err
	}
	if err := p.dbAccess.AddScenes(scenes); err != nil {
		return err
	}
	p.logger.Info("Read scenes from bridge", "total", len(scenes))

	return nil
}

func (p *Prism) Run(ctx context.Context) {
	p.logger.Debug("Prism.Run")

	// start listening to bridge events
	eventChannel := make(chan *sse.Event)
	p.events.Subscribe(eventChannel)
	defer p.events.Unsubscribe()

	updateTimer := time.NewTicker(constants.MainUpdateInterval)
	defer updateTimer.Stop()

	// align the followed groups straight away
	go p.applyCircadian(time.Now())

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Prism.Run: stop signal received")
			return

		case event := <-eventChannel:
			p.logger.Debug("Prism.Run: received bridge event")
			p.stateManager.HandleBridgeEvent(event)

		case t := <-updateTimer.C:
			go p.applyCircadian(t)
		}
	}
}

// applyCircadian sets every followed group to the suggested colour
// temperature for the given moment.
func (p *Prism) applyCircadian(t time.Time) {
	if len(p.followGroups) == 0 {
		return
	}

	mirek := p.circadian.SuggestMirek(t)
	p.logger.Debug("Prism: applying circadian temperature", "mirek", mirek)

	groupByID := lo.KeyBy(p.followGroups, func(fg config.FollowGroup) string { return fg.GroupID })

	tw := concurrency.NewThrottledWorker(groupWriteInterval, func(groupID string) error {
		fg := groupByID[groupID]
		payload := models.ColourPayload{Mirek: &mirek}
		if fg.Brightness > 0 {
			bri := fg.Brightness
			payload.Bri = &bri
		}
		err := p.bridge.ApplyGroupColour(groupID, payload)
		if err != nil {
			p.logger.Error(err)
		}
		return err
	})
	tw.Run(lo.Keys(groupByID))
}
