// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载配置、创建共享管理器、
// 注册局内场景工厂，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/resourcerun/pkg/config"
	"github.com/decker502/resourcerun/pkg/embedded"
	"github.com/decker502/resourcerun/pkg/game"
	"github.com/decker502/resourcerun/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 第一局的随机种子，0 表示使用当前时间
	Seed int64
	// Season 第一局从第几个季节开始（从 0 开始）
	Season int
	// ManualFade 消退不自动开始，按空格切换
	ManualFade bool
	// Mute 关闭音效
	Mute bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	progress                 *game.ProgressManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if !embedded.IsInitialized() {
		return nil, fmt.Errorf("embedded resources not initialized")
	}

	data, err := config.LoadGameData(embedded.FS(), "data")
	if err != nil {
		return nil, fmt.Errorf("failed to load game data: %w", err)
	}
	if cfg.Season < 0 || cfg.Season >= len(data.Seasons) {
		return nil, fmt.Errorf("season %d out of range [0, %d)", cfg.Season, len(data.Seasons))
	}

	resourceManager := game.NewResourceManager(embedded.FS(), "data/sprites")

	audioManager := game.NewAudioManager(audio.NewContext(game.SampleRate))
	if cfg.Mute {
		audioManager.SetEnabled(false)
	}

	progress := newProgressManager()

	sceneManager := game.NewSceneManager()
	startSeason := cfg.Season
	sceneManager.SetSceneFactory(func(seed int64) game.Scene {
		scene, err := scenes.NewGameScene(scenes.SceneDeps{
			Data:         data,
			Resources:    resourceManager,
			Progress:     progress,
			Audio:        audioManager,
			Scenes:       sceneManager,
			ScreenWidth:  config.GameWindowWidth,
			ScreenHeight: config.GameWindowHeight,
		}, scenes.RunOptions{
			Seed:        seed,
			StartSeason: startSeason,
			ManualFade:  cfg.ManualFade,
		})
		if err != nil {
			log.Printf("[App] Failed to create run: %v", err)
			return nil
		}
		// 只有第一局使用 --season，之后总是从第一个季节开始
		startSeason = 0
		return scene
	})

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if !sceneManager.StartRun(seed) {
		return nil, fmt.Errorf("failed to start run with seed %d", seed)
	}

	return &App{
		sceneManager: sceneManager,
		progress:     progress,
		verbose:      cfg.Verbose,
	}, nil
}

// newProgressManager 打开 gdata 存储并加载进度
// 存储不可用时进度只保存在内存中
func newProgressManager() *game.ProgressManager {
	manager, err := gdata.Open(gdata.Config{AppName: "resourcerun"})
	if err != nil {
		log.Printf("[App] Warning: failed to open save storage: %v", err)
		manager = nil
	}
	return game.NewProgressManager(manager)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 关闭窗口时先保存进度（需要 main 调用 ebiten.SetWindowClosingHandled(true)）
	if ebiten.IsWindowBeingClosed() {
		if !a.SaveOnExit() {
			log.Printf("[App] Progress was not saved")
		}
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	// 像素风格使用最近邻滤波
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存进度
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// SaveOnExit 保存当前场景和进度
func (a *App) SaveOnExit() bool {
	if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		return saveable.SaveOnExit()
	}
	if err := a.progress.Save(); err != nil {
		log.Printf("[App] Failed to save progress: %v", err)
		return false
	}
	return true
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
