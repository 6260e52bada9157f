package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/resourcerun/pkg/components"
	"github.com/decker502/resourcerun/pkg/config"
	"github.com/decker502/resourcerun/pkg/ecs"
	"github.com/decker502/resourcerun/pkg/entities"
	"github.com/decker502/resourcerun/pkg/systems"
	"github.com/decker502/resourcerun/pkg/types"
	"github.com/decker502/resourcerun/pkg/world"
	"github.com/gdamore/tcell/v2"
)

// tickSink 删除瓦片时的提示音
type tickSink interface {
	Tick(layer int)
}

// viewer 持有一个季节的世界和消退系统，并把它画到终端
type viewer struct {
	screen tcell.Screen
	data   *config.GameData
	seed   int64

	em    *ecs.EntityManager
	gen   *world.Generator
	fade  *systems.WorldFadeSystem
	sound tickSink

	status string
}

func newViewer(screen tcell.Screen, data *config.GameData, seed int64, season int) (*viewer, error) {
	v := &viewer{screen: screen, data: data, seed: seed}
	if err := v.build(season); err != nil {
		return nil, err
	}
	return v, nil
}

// build 用当前种子重新生成指定季节
func (v *viewer) build(season int) error {
	rng := rand.New(rand.NewSource(v.seed))
	v.em = ecs.NewEntityManager()

	gen, err := world.NewGenerator(v.data.Game.World, v.data.Seasons, v.em, entities.NewWorldObjectFactory(v.em, nil), rng)
	if err != nil {
		return fmt.Errorf("create generator: %w", err)
	}
	if err := gen.SetSeason(season); err != nil {
		return err
	}
	if err := gen.Generate(); err != nil {
		return fmt.Errorf("generate world: %w", err)
	}

	v.gen = gen
	v.fade = systems.NewWorldFadeSystem(gen.Tiles(), gen.Registry(), gen.Borders(), gen, v.data.Game.World, rng)
	v.fade.OnTileRemoved = func(types.GridPosition) {
		if v.sound != nil {
			v.sound.Tick(v.fade.Layer())
		}
	}
	v.fade.OnExhausted = func() {
		v.status = "world exhausted, press n for the next season"
	}
	v.status = ""
	log.Printf("[FadeView] Built season %s (seed %d)", gen.Season().Name, v.seed)
	return nil
}

func (v *viewer) setSound(t tickSink) {
	v.sound = t
}

// nextSeason 推进到下一个季节，最后一个季节之后回到第一个
func (v *viewer) nextSeason() error {
	err := v.gen.GenerateNextSeason()
	if errors.Is(err, world.ErrSeasonsExhausted) {
		return v.rebuild(0)
	}
	if err != nil {
		return err
	}
	v.fade.StopFade()
	v.fade.StartFade()
	v.status = ""
	return nil
}

// rebuild 换一个种子重新生成，并立即开始消退
func (v *viewer) rebuild(season int) error {
	v.seed++
	if err := v.build(season); err != nil {
		return err
	}
	v.fade.StartFade()
	return nil
}

// handleEvent 返回 false 表示退出
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	var err error
	switch r {
	case 'q', 'Q':
		return false
	case ' ':
		if v.fade.IsFading() {
			v.fade.StopFade()
		} else {
			v.fade.StartFade()
		}
	case 'n', 'N':
		err = v.nextSeason()
	case 'r', 'R':
		err = v.rebuild(v.gen.SeasonIndex())
	}
	if err != nil {
		v.status = err.Error()
		log.Printf("[FadeView] %v", err)
	}
	return true
}

func (v *viewer) update(dt float64) {
	v.fade.Update(dt)
	v.em.RemoveMarkedEntities()
}

func (v *viewer) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	rows := renderWorld(v.gen.Tiles(), v.gen.Season().Tiles, v.objectGlyphAt)
	for row, line := range rows {
		if row >= height-1 {
			break
		}
		col := 0
		for _, cell := range line {
			if col+1 >= width {
				break
			}
			v.screen.SetContent(col, row, cell.glyph, nil, cell.style)
			v.screen.SetContent(col+1, row, cell.glyph, nil, cell.style)
			col += 2
		}
	}

	line := statusLine(v.gen.Season().Name, v.gen.SeasonIndex(), v.gen.SeasonCount(), v.fade, v.gen.Tiles().Count(), v.status)
	for i, r := range []rune(line) {
		if i >= width {
			break
		}
		v.screen.SetContent(i, height-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	v.screen.Show()
}

// objectGlyphAt 返回格子上物体的字符，没有物体时返回 0
func (v *viewer) objectGlyphAt(x, y int) rune {
	id, ok := v.gen.Registry().At(x, y)
	if !ok || v.em.IsPendingDestroy(id) {
		return 0
	}
	obj, ok := ecs.GetComponent[*components.WorldObjectComponent](v.em, id)
	if !ok {
		return 0
	}
	return prefabGlyph(obj.Prefab)
}
