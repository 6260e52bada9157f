package scenes

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/resourcerun/pkg/components"
	"github.com/decker502/resourcerun/pkg/config"
	"github.com/decker502/resourcerun/pkg/ecs"
	"github.com/decker502/resourcerun/pkg/entities"
	"github.com/decker502/resourcerun/pkg/game"
	"github.com/decker502/resourcerun/pkg/systems"
	"github.com/decker502/resourcerun/pkg/types"
	"github.com/decker502/resourcerun/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// 季节横幅显示时间（秒）
	bannerDuration = 3.0
)

// SceneDeps 局内场景依赖的共享对象
// 除 Data 外都可以为 nil
type SceneDeps struct {
	Data      *config.GameData
	Resources *game.ResourceManager
	Progress  *game.ProgressManager
	Audio     *game.AudioManager
	Scenes    *game.SceneManager
	Keys      systems.KeyReader // nil 时读取 ebiten 键盘

	ScreenWidth  int
	ScreenHeight int
}

// RunOptions 一局游戏的启动参数
type RunOptions struct {
	Seed        int64
	StartSeason int  // 从第几个季节开始（从 0 开始）
	ManualFade  bool // 为 true 时消退不会自动开始，按空格开始
}

// GameScene 一局游戏
//
// 持有本局的 ECS 世界、世界生成器和全部系统。
// 玩家在逐层消退的地面上采集资源，掉出世界后进入下一个季节，
// 最后一个季节之后掉落即本局结束。
type GameScene struct {
	deps  SceneDeps
	opts  RunOptions
	state *game.GameState
	keys  systems.KeyReader

	entityManager *ecs.EntityManager
	generator     *world.Generator
	objectFactory *entities.WorldObjectFactory
	inventory     *game.Inventory
	playerID      ecs.EntityID

	inputSystem     *systems.InputSystem
	movementSystem  *systems.PlayerMovementSystem
	gatheringSystem *systems.GatheringSystem
	droppedSystem   *systems.DroppedItemSystem
	lifetimeSystem  *systems.LifetimeSystem
	fadeSystem      *systems.WorldFadeSystem
	cameraSystem    *systems.CameraSystem
	renderSystem    *systems.RenderSystem

	banner      string
	bannerTimer float64
}

// NewGameScene 创建并生成一局新游戏
func NewGameScene(deps SceneDeps, opts RunOptions) (*GameScene, error) {
	if deps.Data == nil || deps.Data.Game == nil {
		return nil, fmt.Errorf("game data is required")
	}
	if deps.Keys == nil {
		deps.Keys = systems.EbitenKeys{}
	}

	s := &GameScene{
		deps:          deps,
		opts:          opts,
		state:         game.NewGameState(opts.Seed),
		keys:          deps.Keys,
		entityManager: ecs.NewEntityManager(),
	}

	if err := s.initWorld(); err != nil {
		return nil, err
	}
	s.initSystems()

	if deps.Progress != nil {
		deps.Progress.RecordRunStart(opts.Seed)
		deps.Progress.RecordSeasonReached(s.generator.SeasonIndex(), s.generator.Season().Name)
	}
	s.showSeasonBanner()

	if !opts.ManualFade {
		s.fadeSystem.StartFade()
	}

	log.Printf("[GameScene] Run started (seed %d, season %s)", opts.Seed, s.generator.Season().Name)
	return s, nil
}

// initWorld 创建生成器、生成第一个季节并放置玩家
func (s *GameScene) initWorld() error {
	cfg := s.deps.Data.Game
	rng := rand.New(rand.NewSource(s.opts.Seed))

	// 显式判断 nil，避免把类型化的 nil 指针放进接口
	var loader entities.ImageLoader
	if s.deps.Resources != nil {
		loader = s.deps.Resources
	}
	s.objectFactory = entities.NewWorldObjectFactory(s.entityManager, loader)

	generator, err := world.NewGenerator(cfg.World, s.deps.Data.Seasons, s.entityManager, s.objectFactory, rng)
	if err != nil {
		return fmt.Errorf("failed to create world generator: %w", err)
	}
	if err := generator.SetSeason(s.opts.StartSeason); err != nil {
		return err
	}
	if err := generator.Generate(); err != nil {
		return fmt.Errorf("failed to generate world: %w", err)
	}
	s.generator = generator

	spawnX, spawnY := generator.SpawnPoint()
	s.playerID = entities.NewPlayerEntity(s.entityManager, spawnX, spawnY, cfg.Player)
	s.inventory = game.NewInventory(cfg.Inventory.Slots, cfg.Inventory.MaxStack)
	return nil
}

// initSystems 创建所有系统并连接回调
func (s *GameScene) initSystems() {
	cfg := s.deps.Data.Game
	gen := s.generator
	em := s.entityManager

	// 各系统使用独立的随机数源，互不影响生成结果
	seedRng := rand.New(rand.NewSource(s.opts.Seed + 1))

	s.inputSystem = systems.NewInputSystem(em, s.keys)

	s.movementSystem = systems.NewPlayerMovementSystem(em, cfg.Player, gen.Tiles(), gen.Borders(), gen)
	s.movementSystem.OnFall = s.onPlayerFall
	s.movementSystem.OnSeasonAdvanced = s.onSeasonAdvanced
	s.movementSystem.OnGameOver = s.onGameOver

	s.gatheringSystem = systems.NewGatheringSystem(em, gen.Registry(), s.deps.Data.Loot, cfg.DroppedItem, rand.New(rand.NewSource(seedRng.Int63())))
	s.gatheringSystem.OnGathered = func(group string, drops []types.ItemStack) {
		s.state.RecordGathered()
		s.playSound(game.SoundGather)
	}

	s.droppedSystem = systems.NewDroppedItemSystem(em, s.inventory, cfg.DroppedItem.PickupRadius)
	s.droppedSystem.OnPickup = func(stack types.ItemStack) {
		s.state.RecordPickup(stack.Count)
		if s.deps.Progress != nil {
			s.deps.Progress.RecordItems(stack)
		}
		s.playSound(game.SoundPickup)
	}

	s.lifetimeSystem = systems.NewLifetimeSystem(em)

	s.fadeSystem = systems.NewWorldFadeSystem(gen.Tiles(), gen.Registry(), gen.Borders(), gen, cfg.World, rand.New(rand.NewSource(seedRng.Int63())))
	s.fadeSystem.OnTileRemoved = func(pos types.GridPosition) {
		s.state.RecordTileRemoved()
		s.playSound(game.SoundTileCrumble)
	}
	s.fadeSystem.OnLayerComplete = func(layer int) {
		log.Printf("[GameScene] Fade layer %d complete", layer)
	}

	spawnX, spawnY := gen.SpawnPoint()
	s.cameraSystem = systems.NewCameraSystem(em, spawnX, spawnY)

	var loader entities.ImageLoader
	if s.deps.Resources != nil {
		loader = s.deps.Resources
	}
	s.renderSystem = systems.NewRenderSystem(em, gen.Tiles(), gen, loader, s.deps.ScreenWidth, s.deps.ScreenHeight)
}

// Update 更新一帧
func (s *GameScene) Update(deltaTime float64) {
	if s.state.IsGameOver {
		if s.keys.IsKeyJustPressed(ebiten.KeyR) {
			s.restart()
		}
		return
	}

	if s.keys.IsKeyJustPressed(ebiten.KeyEscape) {
		s.state.TogglePause()
		log.Printf("[GameScene] Paused: %v", s.state.IsPaused)
	}
	if s.state.IsPaused {
		return
	}

	if s.keys.IsKeyJustPressed(ebiten.KeySpace) {
		s.toggleFade()
	}

	s.state.Tick(deltaTime)

	s.inputSystem.Update(deltaTime)
	s.movementSystem.Update(deltaTime)
	s.gatheringSystem.Update(deltaTime)
	s.droppedSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.fadeSystem.Update(deltaTime)
	s.cameraSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()

	if s.bannerTimer > 0 {
		s.bannerTimer -= deltaTime
	}
}

// toggleFade 手动开始或停止消退
func (s *GameScene) toggleFade() {
	if s.fadeSystem.IsFading() {
		s.fadeSystem.StopFade()
	} else {
		s.fadeSystem.StartFade()
	}
	log.Printf("[GameScene] Fade %s", s.fadeSystem.State())
}

// onPlayerFall 玩家掉出地面，消退暂停直到新季节生成
func (s *GameScene) onPlayerFall(id ecs.EntityID) {
	s.fadeSystem.StopFade()
	s.playSound(game.SoundFall)
}

// onSeasonAdvanced 新季节已生成，清理旧掉落物并重新开始消退
func (s *GameScene) onSeasonAdvanced() {
	for _, id := range ecs.GetEntitiesWith1[*components.DroppedItemComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}

	season := s.generator.Season()
	if s.deps.Progress != nil && s.deps.Progress.RecordSeasonReached(s.generator.SeasonIndex(), season.Name) {
		log.Printf("[GameScene] New best season: %s", season.Name)
	}

	spawnX, spawnY := s.generator.SpawnPoint()
	s.cameraSystem.SnapTo(spawnX, spawnY)
	s.showSeasonBanner()

	if !s.opts.ManualFade {
		s.fadeSystem.StartFade()
	}
}

// onGameOver 最后一个季节之后掉落，本局结束
func (s *GameScene) onGameOver() {
	s.state.EndRun()
	s.fadeSystem.StopFade()

	if s.deps.Progress != nil {
		s.deps.Progress.RecordRunFinished()
		if err := s.deps.Progress.Save(); err != nil {
			log.Printf("[GameScene] Failed to save progress: %v", err)
		}
	}
	log.Printf("[GameScene] Run over after %.1fs: %d objects gathered, %d items picked up",
		s.state.Elapsed, s.state.ObjectsGathered, s.state.ItemsPicked)
}

// restart 用新种子开始下一局
func (s *GameScene) restart() {
	if s.deps.Scenes == nil {
		return
	}
	s.deps.Scenes.StartRun(s.opts.Seed + 1)
}

// showSeasonBanner 显示当前季节横幅
func (s *GameScene) showSeasonBanner() {
	s.banner = fmt.Sprintf("Season %d/%d: %s",
		s.generator.SeasonIndex()+1, s.generator.SeasonCount(), s.generator.Season().Name)
	s.bannerTimer = bannerDuration
}

// playSound 播放音效（没有音效管理器时忽略）
func (s *GameScene) playSound(id string) {
	if s.deps.Audio != nil {
		s.deps.Audio.PlaySound(id)
	}
}

// SaveOnExit 程序退出时保存进度
func (s *GameScene) SaveOnExit() bool {
	if s.deps.Progress == nil {
		return true
	}
	if err := s.deps.Progress.Save(); err != nil {
		log.Printf("[GameScene] Failed to save progress on exit: %v", err)
		return false
	}
	return true
}

// State 返回本局状态
func (s *GameScene) State() *game.GameState { return s.state }

// Generator 返回世界生成器
func (s *GameScene) Generator() *world.Generator { return s.generator }

// Inventory 返回背包
func (s *GameScene) Inventory() *game.Inventory { return s.inventory }

// PlayerID 返回玩家实体ID
func (s *GameScene) PlayerID() ecs.EntityID { return s.playerID }

// FadeSystem 返回世界消退系统
func (s *GameScene) FadeSystem() *systems.WorldFadeSystem { return s.fadeSystem }

// GatheringSystem 返回采集系统
func (s *GameScene) GatheringSystem() *systems.GatheringSystem { return s.gatheringSystem }
