// Resource Run: 在逐层消退的世界里采集资源，掉出世界后进入下一个季节。
//
// 用法：
//
//	go run . [--verbose] [--seed N] [--season N] [--manual-fade] [--mute]
//
// 操作：
//
//	WASD / 方向键  移动
//	Shift          慢走
//	Ctrl           冲刺（消耗体力）
//	E              采集面前的物体
//	Space          开始/停止消退（--manual-fade 时使用）
//	Esc            暂停
//	F11            全屏
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/decker502/resourcerun/pkg/app"
	"github.com/decker502/resourcerun/pkg/config"
	"github.com/decker502/resourcerun/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	season     = flag.Int("season", 0, "从第几个季节开始（从 0 开始）")
	manualFade = flag.Bool("manual-fade", false, "消退不自动开始，按空格切换")
	mute       = flag.Bool("mute", false, "关闭音效")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Seed:       *seed,
		Season:     *season,
		ManualFade: *manualFade,
		Mute:       *mute,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "游戏异常退出: %v\n", err)
		os.Exit(1)
	}
}
