// Package app 提供重力演示程序的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：加载重力预设与用户设置，
// 创建场景管理器，并处理全局按键（切换预设、调整倍速与额外等待、全屏）。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"slices"

	"github.com/gonewx/gravity/pkg/config"
	"github.com/gonewx/gravity/pkg/game"
	"github.com/gonewx/gravity/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "gravity_showcase"

const (
	timeScaleStep  = 0.25
	extraDelayStep = 0.1
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// PresetsPath 重力预设文件路径（如 "data/gravity_presets.yaml"）
	PresetsPath string
	// Preset 指定启动时的预设，为空则使用上次保存的选择或配置中的默认预设
	Preset string
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	presets                  *config.GravityConfig
	presetNames              []string
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化演示程序
//
// 参数:
//   - cfg: 启动配置
//
// 返回:
//   - *App: 已加载第一个场景的应用
//   - error: 预设文件加载失败时返回错误
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	presets, err := config.LoadGravityConfig(cfg.PresetsPath)
	if err != nil {
		return nil, fmt.Errorf("重力预设加载失败: %w", err)
	}
	log.Printf("[Config] 加载重力预设: %s (%d 个)", cfg.PresetsPath, len(presets.Presets))

	// gdata 打开失败时降级为仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager)

	a := &App{
		sceneManager: game.NewSceneManager(),
		settings:     settings,
		presets:      presets,
		presetNames:  presets.Names(),
		verbose:      cfg.Verbose,
	}
	a.sceneManager.SetSceneFactory(a.newScene)

	presetToLoad := a.resolvePreset(cfg.Preset)
	log.Printf("[App] Starting preset: %s", presetToLoad)
	if !a.sceneManager.LoadPreset(presetToLoad) {
		return nil, fmt.Errorf("无法加载预设: %s", presetToLoad)
	}
	return a, nil
}

// newScene 场景工厂：按预设名称创建演示场景
func (a *App) newScene(presetName string) game.Scene {
	preset, ok := a.presets.GetPreset(presetName)
	if !ok {
		return nil
	}
	scene := scenes.NewDropScene(presetName, preset, a.settings)
	scene.SetVerbose(a.verbose)
	return scene
}

// resolvePreset 依次尝试命令行指定、已保存的选择和配置默认值
func (a *App) resolvePreset(requested string) string {
	for _, name := range []string{requested, a.settings.GetSettings().Preset, a.presets.Default} {
		if name == "" {
			continue
		}
		if _, ok := a.presets.GetPreset(name); ok {
			return name
		}
		log.Printf("[App] Warning: unknown preset %q", name)
	}
	return a.presetNames[0]
}

// switchPreset 按 offset 循环切换预设并保存选择
func (a *App) switchPreset(offset int) {
	n := len(a.presetNames)
	i := slices.Index(a.presetNames, a.sceneManager.CurrentPreset())
	next := a.presetNames[((i+offset)%n+n)%n]
	if a.sceneManager.LoadPreset(next) {
		a.settings.SetPreset(next)
		a.saveSettings()
	}
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Update 更新演示逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
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
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.handleInput()

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// handleInput 处理预设切换与设置调整
func (a *App) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		a.switchPreset(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		a.switchPreset(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		a.sceneManager.LoadPreset(a.sceneManager.CurrentPreset())
	}

	s := a.settings.GetSettings()
	changed := true
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		a.settings.SetTimeScale(s.TimeScale + timeScaleStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		a.settings.SetTimeScale(s.TimeScale - timeScaleStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		a.settings.SetExtraDelay(s.ExtraDelay + extraDelayStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		a.settings.SetExtraDelay(s.ExtraDelay - extraDelayStep)
	default:
		changed = false
	}
	if changed {
		log.Printf("[App] Settings: timeScale=%.2f extraDelay=%.2f", s.TimeScale, s.ExtraDelay)
		a.saveSettings()
	}
}

// Draw 绘制画面
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
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSettingsManager 返回设置管理器
// 用于在程序退出时保存设置
func (a *App) GetSettingsManager() *game.SettingsManager {
	return a.settings
}
