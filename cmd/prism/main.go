package main

import (
	"database/sql"
	"os"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/prism-home/prism/internal/bridge"
	"github.com/prism-home/prism/internal/config"
	"github.com/prism-home/prism/internal/models"
	"github.com/prism-home/prism/internal/preview"
	"github.com/prism-home/prism/internal/repos"
	"github.com/prism-home/prism/internal/scene"
	"github.com/prism-home/prism/internal/tui"
)

func main() {

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: log.WarnLevel,
	})

	// read the config file
	config.InitialiseConfig()
	config.ReadConfig()

	db, err := sql.Open("sqlite3", viper.GetString("databasePath"))
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()

	stateRepo, err := repos.NewStateRepo(logger, db)
	if err != nil {
		logger.Fatal(err)
	}

	bridgeService := bridge.NewBridgeAPIService(logger)
	sceneService := scene.NewSceneService(logger, stateRepo, bridgeService)

	// seed the cache directly, the browser runs without the daemon
	lights, err := bridgeService.GetAllLights()
	if err != nil {
		logger.Fatal(err)
	}
	if err := stateRepo.AddLights(lights); err != nil {
		logger.Fatal(err)
	}
	bridgeScenes, err := bridgeService.GetScenes()
	if err != nil {
		logger.Fatal(err)
	}
	if err := stateRepo.AddScenes(bridgeScenes); err != nil {
		logger.Fatal(err)
	}

	scenes, err := sceneService.ListScenes()
	if err != nil {
		logger.Fatal(err)
	}

	// scenes reference groups by id, show their names instead
	groups, err := bridgeService.GetAllGroups()
	if err != nil {
		logger.Fatal(err)
	}
	groupNamesById := lo.SliceToMap(groups, func(g models.PrismGroup) (string, string) {
		return g.Id, g.Name
	})

	rows := make([]tui.ScenePreviewRow, 0, len(scenes))
	for _, s := range scenes {
		p, err := sceneService.GetScenePreview(s.ID, preview.FormatSVG)
		if err != nil {
			logger.Warnf("error building preview for scene (%s): %s", s.ID, err)
			continue
		}
		if name, found := groupNamesById[s.GroupName]; found {
			s.GroupName = name
		}
		rows = append(rows, tui.ScenePreviewRow{
			Scene:     s,
			Palette:   p.Palette,
			Thumbnail: p.Thumbnail,
		})
	}

	if err := tui.NewPrismTUI(rows, sceneService).Run(); err != nil {
		logger.Fatal(err)
	}
}
