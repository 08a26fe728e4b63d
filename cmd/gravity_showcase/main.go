// cmd/gravity_showcase/main.go
// 重力动作演示程序
//
// 用法：
//   go run ./cmd/gravity_showcase --presets=data/gravity_presets.yaml --preset=superball

package main

import (
	"flag"
	"log"

	"github.com/gonewx/gravity/pkg/app"
	"github.com/gonewx/gravity/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	presetsPath = flag.String("presets", "data/gravity_presets.yaml", "重力预设文件路径")
	preset      = flag.String("preset", "", "启动时使用的预设（为空时使用上次的选择）")
	verbose     = flag.Bool("verbose", false, "详细日志")
)

func main() {
	flag.Parse()

	if *verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	showcase, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		PresetsPath: *presetsPath,
		Preset:      *preset,
	})
	if err != nil {
		log.Fatalf("启动失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Gravity Showcase")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(showcase); err != nil {
		log.Fatal(err)
	}

	if err := showcase.GetSettingsManager().Save(); err != nil {
		log.Printf("[Main] Warning: failed to save settings: %v", err)
	}
}
