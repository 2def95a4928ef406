package repos

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/prism-home/prism/internal/models"
)

const initSchema = `
  CREATE TABLE IF NOT EXISTS light_state (
    serviceid_light VARCHAR(36) PRIMARY KEY,
    name TEXT,
    on_state INTEGER,
    reachable INTEGER,
    bri INTEGER,
    colour_mode TEXT,
    xy_x REAL,
    xy_y REAL,
    hue INTEGER,
    sat INTEGER,
    mirek INTEGER,
    min_mirek INTEGER,
    max_mirek INTEGER,
    updated_at TIMESTAMP
  );

  CREATE TABLE IF NOT EXISTS scene (
    id VARCHAR(36) PRIMARY KEY,
    name TEXT,
    group_name TEXT
  );

  CREATE TABLE IF NOT EXISTS scene_light (
    scene_id VARCHAR(36),
    serviceid_light VARCHAR(36),
    position INTEGER,
    PRIMARY KEY (scene_id, serviceid_light)
  );

  CREATE TABLE IF NOT EXISTS snapshot (
    id VARCHAR(36) PRIMARY KEY,
    scene_id VARCHAR(36),
    taken_at TIMESTAMP
  );

  CREATE TABLE IF NOT EXISTS snapshot_light (
    snapshot_id VARCHAR(36),
    position INTEGER,
    bri INTEGER,
    colour_mode TEXT,
    xy_x REAL,
    xy_y REAL,
    hue INTEGER,
    sat INTEGER,
    mirek INTEGER,
    PRIMARY KEY (snapshot_id, position)
  );

  -- the live cache is rebuilt from the bridge on startup; snapshots persist
  DELETE FROM light_state;
  DELETE FROM scene;
  DELETE FROM scene_light;
`

// StateRepo caches the last-reported native colour state of every light,
// together with the scene index, so previews can be derived without
// polling the bridge. Only wire-level fields are stored; conversions are
// always recomputed on read.
type StateRepo struct {
	logger *log.Logger
	db     *sql.DB
}

func NewStateRepo(logger *log.Logger, db *sql.DB) (*StateRepo, error) {

	_, err := db.Exec(initSchema)
	if err != nil {
		return nil, fmt.Errorf("error initialising state schema: %w", err)
	}

	return &StateRepo{logger: logger, db: db}, nil
}

func (r *StateRepo) AddLights(lights []models.PrismLight) error {
	tx, _ := r.db.Begin()
	for _, light := range lights {
		mode, x, y, hue, sat, mirek := colourColumns(light.State)
		_, err := tx.Exec(
			`INSERT OR REPLACE INTO light_state
      (serviceid_light, name, on_state, reachable, bri, colour_mode, xy_x, xy_y, hue, sat, mirek, min_mirek, max_mirek, updated_at)
     VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
			light.LightServiceId,
			light.Name,
			light.On,
			light.Reachable,
			light.State.Brightness,
			mode, x, y, hue, sat, mirek,
			light.MinMirek,
			light.MaxMirek,
			time.Now(),
		)
		if err != nil {
			return fmt.Errorf("error adding light (%s): %w", light.Name, err)
		}
	}
	err := tx.Commit()
	if err != nil {
		return fmt.Errorf("error adding lights: %w", err)
	}

	return nil
}

func (r *StateRepo) AddScenes(scenes []models.PrismScene) error {
	tx, _ := r.db.Begin()
	for _, scene := range scenes {
		_, err := tx.Exec(
			`INSERT OR REPLACE INTO scene (id, name, group_name) VALUES ($1, $2, $3);`,
			scene.ID,
			scene.Name,
			scene.GroupName,
		)
		if err != nil {
			return fmt.Errorf("error adding scene (%s): %w", scene.ID, err)
		}
		for position, lightID := range scene.LightServiceIds {
			_, err := tx.Exec(
				`INSERT OR REPLACE INTO scene_light (scene_id, serviceid_light, position) VALUES ($1, $2, $3);`,
				scene.ID,
				lightID,
				position,
			)
			if err != nil {
				return fmt.Errorf("error adding scene light (%s/%s): %w", scene.ID, lightID, err)
			}
		}
	}
	err := tx.Commit()
	if err != nil {
		return fmt.Errorf("error adding scenes: %w", err)
	}

	return nil
}

func (r *StateRepo) GetAllScenes() ([]models.PrismScene, error) {
	rows, err := r.db.Query(`SELECT id, name, group_name FROM scene ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error reading scenes: %w", err)
	}
	defer rows.Close()

	scenes := []models.PrismScene{}
	for rows.Next() {
		var s models.PrismScene
		if err := rows.Scan(&s.ID, &s.Name, &s.GroupName); err != nil {
			return nil, fmt.Errorf("error reading scene row: %w", err)
		}
		scenes = append(scenes, s)
	}

	return scenes, rows.Err()
}

// GetSceneLightStates returns the cached colour state of every light in a
// scene, in the scene's light order.
func (r *StateRepo) GetSceneLightStates(sceneID string) ([]models.LightColourState, error) {
	rows, err := r.db.Query(`
    SELECT ls.bri, ls.colour_mode, ls.xy_x, ls.xy_y, ls.hue, ls.sat, ls.mirek
    FROM scene_light sl
    JOIN light_state ls ON ls.serviceid_light = sl.serviceid_light
    WHERE sl.scene_id = $1
    ORDER BY sl.position`, sceneID)
	if err != nil {
		return nil, fmt.Errorf("error reading light states for scene (%s): %w", sceneID, err)
	}
	defer rows.Close()

	return scanColourStates(rows)
}

// GetSceneLightIds returns the light service ids of a scene, in the
// scene's light order.
func (r *StateRepo) GetSceneLightIds(sceneID string) ([]string, error) {
	rows, err := r.db.Query(`SELECT serviceid_light FROM scene_light WHERE scene_id = $1 ORDER BY position`, sceneID)
	if err != nil {
		return nil, fmt.Errorf("error reading lights for scene (%s): %w", sceneID, err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error reading scene light row: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *StateRepo) SetLightOnState(lsID string, on bool) error {
	_, err := r.db.Exec("UPDATE light_state SET on_state = $1, updated_at = $2 WHERE serviceid_light = $3", on, time.Now(), lsID)
	if err != nil {
		return fmt.Errorf("error setting light (%s) on state to %t: %w", lsID, on, err)
	}
	return nil
}

func (r *StateRepo) SetLightBrightness(lsID string, bri int) error {
	_, err := r.db.Exec("UPDATE light_state SET bri = $1, updated_at = $2 WHERE serviceid_light = $3", bri, time.Now(), lsID)
	if err != nil {
		return fmt.Errorf("error setting light (%s) brightness to %v: %w", lsID, bri, err)
	}
	return nil
}

func (r *StateRepo) SetLightXY(lsID string, xy models.XY) error {
	_, err := r.db.Exec("UPDATE light_state SET colour_mode = 'xy', xy_x = $1, xy_y = $2, updated_at = $3 WHERE serviceid_light = $4", xy.X, xy.Y, time.Now(), lsID)
	if err != nil {
		return fmt.Errorf("error setting light (%s) xy to %v: %w", lsID, xy, err)
	}
	return nil
}

func (r *StateRepo) SetLightHueSat(lsID string, hs models.HueSat) error {
	_, err := r.db.Exec("UPDATE light_state SET colour_mode = 'hs', hue = $1, sat = $2, updated_at = $3 WHERE serviceid_light = $4", hs.Hue, hs.Sat, time.Now(), lsID)
	if err != nil {
		return fmt.Errorf("error setting light (%s) hue/sat to %v: %w", lsID, hs, err)
	}
	return nil
}

func (r *StateRepo) SetLightMirek(lsID string, mirek int) error {
	_, err := r.db.Exec("UPDATE light_state SET colour_mode = 'ct', mirek = $1, updated_at = $2 WHERE serviceid_light = $3", mirek, time.Now(), lsID)
	if err != nil {
		return fmt.Errorf("error setting light (%s) colour temp to %v: %w", lsID, mirek, err)
	}
	return nil
}

func (r *StateRepo) SetLightReachable(lsID string, reachable bool) error {
	_, err := r.db.Exec("UPDATE light_state SET reachable = $1, updated_at = $2 WHERE serviceid_light = $3", reachable, time.Now(), lsID)
	if err != nil {
		return fmt.Errorf("error setting light (%s) reachable to %t: %w", lsID, reachable, err)
	}
	return nil
}

func (r *StateRepo) SaveSnapshot(snapshot models.SceneSnapshot) error {
	tx, _ := r.db.Begin()
	_, err := tx.Exec(
		`INSERT INTO snapshot (id, scene_id, taken_at) VALUES ($1, $2, $3);`,
		snapshot.ID,
		snapshot.SceneID,
		snapshot.TakenAt,
	)
	if err != nil {
		return fmt.Errorf("error adding snapshot (%s): %w", snapshot.ID, err)
	}
	for position, state := range snapshot.States {
		mode, x, y, hue, sat, mirek := colourColumns(state)
		_, err := tx.Exec(
			`INSERT INTO snapshot_light (snapshot_id, position, bri, colour_mode, xy_x, xy_y, hue, sat, mirek)
       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			snapshot.ID,
			position,
			state.Brightness,
			mode, x, y, hue, sat, mirek,
		)
		if err != nil {
			return fmt.Errorf("error adding snapshot light (%s/%d): %w", snapshot.ID, position, err)
		}
	}
	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("error saving snapshot (%s): %w", snapshot.ID, err)
	}

	return nil
}

func (r *StateRepo) GetSnapshot(id string) (models.SceneSnapshot, error) {
	row := r.db.QueryRow(`SELECT id, scene_id, taken_at FROM snapshot WHERE id = $1`, id)

	snapshot := models.SceneSnapshot{}
	if err := row.Scan(&snapshot.ID, &snapshot.SceneID, &snapshot.TakenAt); err != nil {
		return models.SceneSnapshot{}, fmt.Errorf("error reading snapshot (%s): %w", id, err)
	}

	rows, err := r.db.Query(`
    SELECT bri, colour_mode, xy_x, xy_y, hue, sat, mirek
    FROM snapshot_light
    WHERE snapshot_id = $1
    ORDER BY position`, id)
	if err != nil {
		return models.SceneSnapshot{}, fmt.Errorf("error reading snapshot lights (%s): %w", id, err)
	}
	defer rows.Close()

	snapshot.States, err = scanColourStates(rows)
	if err != nil {
		return models.SceneSnapshot{}, err
	}

	return snapshot, nil
}

// colourColumns flattens the discriminated colour state into nullable
// columns plus a mode tag.
func colourColumns(state models.LightColourState) (mode string, x, y sql.NullFloat64, hue, sat, mirek sql.NullInt64) {
	switch {
	case state.XY != nil:
		mode = "xy"
		x = sql.NullFloat64{Float64: state.XY.X, Valid: true}
		y = sql.NullFloat64{Float64: state.XY.Y, Valid: true}
	case state.HueSat != nil:
		mode = "hs"
		hue = sql.NullInt64{Int64: int64(state.HueSat.Hue), Valid: true}
		sat = sql.NullInt64{Int64: int64(state.HueSat.Sat), Valid: true}
	case state.Mirek != nil:
		mode = "ct"
		mirek = sql.NullInt64{Int64: int64(*state.Mirek), Valid: true}
	}
	return mode, x, y, hue, sat, mirek
}

func scanColourStates(rows *sql.Rows) ([]models.LightColourState, error) {
	states := []models.LightColourState{}
	for rows.Next() {
		var (
			bri           int
			mode          sql.NullString
			x, y          sql.NullFloat64
			hue, sat, mrk sql.NullInt64
		)
		if err := rows.Scan(&bri, &mode, &x, &y, &hue, &sat, &mrk); err != nil {
			return nil, fmt.Errorf("error reading light state row: %w", err)
		}

		state := models.LightColourState{Brightness: bri}
		switch mode.String {
		case "xy":
			if x.Valid && y.Valid {
				state.XY = &models.XY{X: x.Float64, Y: y.Float64}
			}
		case "hs":
			if hue.Valid && sat.Valid {
				state.HueSat = &models.HueSat{Hue: int(hue.Int64), Sat: int(sat.Int64)}
			}
		case "ct":
			if mrk.Valid {
				mirek := int(mrk.Int64)
				state.Mirek = &mirek
			}
		}
		states = append(states, state)
	}

	return states, rows.Err()
}
