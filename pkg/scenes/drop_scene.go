package scenes

import (
	"fmt"
	"image/color"
	"log"
	"reflect"

	"github.com/gonewx/gravity/pkg/action"
	"github.com/gonewx/gravity/pkg/config"
	"github.com/gonewx/gravity/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
)

const (
	// RestHoldDuration 方块落地静止后停留的时间（秒）
	RestHoldDuration = 0.4

	// LiftDuration 方块被提回起点的补间时长（秒）
	// 弹簧提回没有可知的时长，同样按这个时长计入本轮
	LiftDuration = 0.6

	// 弹簧提回的角频率与阻尼比（欠阻尼，越过起点后回弹）
	liftSpringFrequency = 12.0
	liftSpringDamping   = 0.6
)

var (
	groundColor = color.RGBA{R: 90, G: 70, B: 50, A: 255}
	dustColor   = color.RGBA{R: 200, G: 180, B: 140, A: 255}

	columnColors = [config.DropColumns]color.RGBA{
		{R: 230, G: 80, B: 70, A: 255},
		{R: 240, G: 170, B: 60, A: 255},
		{R: 110, G: 200, B: 90, A: 255},
		{R: 70, G: 150, B: 230, A: 255},
		{R: 170, G: 100, B: 220, A: 255},
	}
)

// dropColumn 一列下落方块的运行状态
type dropColumn struct {
	actor    *game.ActorRef
	fromY    float64
	gravity  *action.GravityAction // 本轮的重力动作，落地全部完成后置 nil
	landings int                   // 已经生成尘土的触地次数
}

// DropScene 重力演示场景
//
// 每一轮把所有方块从各自的高度同时抛下，动作序列为：
//
//	Gravity(落地并弹跳) -> Delay(停留) -> Tween(提回起点)
//
// 所有方块的序列通过同一个 ActionList 挂载，最慢的方块回到起点后
// 再等待 extraDelay 秒开始下一轮。每次触地在地面生成一个短暂存在的尘土方块。
type DropScene struct {
	stage      *game.Stage
	list       *action.ActionList
	settings   *game.SettingsManager
	presetName string
	preset     config.GravityPreset
	columns    []*dropColumn

	round         int     // 已开始的轮数
	nextRoundAt   float64 // 下一轮开始的舞台时间
	totalLandings int     // 累计触地次数

	// OnLanding 每次方块触地时调用（参数为列号），可为 nil
	OnLanding func(column int)
}

// NewDropScene 创建指定预设的演示场景并立即开始第一轮
//
// 参数:
//   - presetName: 预设名称（仅用于显示和日志）
//   - preset: 重力预设参数
//   - settings: 用户设置，提供额外等待时间与播放倍速；可为 nil
//
// 返回:
//   - *DropScene: 已开始第一轮的场景
func NewDropScene(presetName string, preset config.GravityPreset, settings *game.SettingsManager) *DropScene {
	stage := game.NewStage()
	s := &DropScene{
		stage:      stage,
		list:       action.NewActionList(stage),
		settings:   settings,
		presetName: presetName,
		preset:     preset,
		columns:    make([]*dropColumn, 0, config.DropColumns),
	}

	for i := 0; i < config.DropColumns; i++ {
		fromY := config.GetDropY(i, preset.Height)
		actor := stage.CreateBoxActor(config.GetColumnX(i), fromY, config.BoxSize, columnColors[i])
		s.columns = append(s.columns, &dropColumn{actor: actor, fromY: fromY})
	}

	s.startRound()
	return s
}

// startRound 为每一列挂载新一轮的动作序列，并安排下一轮
func (s *DropScene) startRound() {
	s.round++
	restY := config.GetRestY()

	for i, col := range s.columns {
		// 上一轮的提回补间可能还差一两帧，直接停止
		col.actor.ClearActions()
		col.actor.SetY(col.fromY)
		col.landings = 0

		g, err := action.Gravity(s.preset.Gravity, col.fromY, restY, s.preset.Bounces, s.preset.Bounciness)
		if err != nil {
			log.Printf("[DropScene] Warning: column %d skipped: %v", i, err)
			col.gravity = nil
			continue
		}
		col.gravity = g

		s.list.Add(action.Sequence(
			g,
			action.Delay(RestHoldDuration, nil),
			s.liftAction(restY, col.fromY),
		), col.actor)
	}

	delay := s.preset.ExtraDelay
	if s.settings != nil {
		delay += s.settings.GetSettings().ExtraDelay
	}
	total := s.list.Process(s.startRound, delay)
	s.nextRoundAt = s.stage.Time() + total

	log.Printf("[DropScene] 预设 %s 第 %d 轮开始，%.3fs 后开始下一轮", s.presetName, s.round, total)
	if p := action.DefaultPools().Get(reflect.TypeFor[action.GravityAction]()); p != nil {
		log.Printf("[DropScene] 重力动作对象池: 空闲 %d, 峰值 %d", p.Len(), p.Peak())
	}
}

// liftAction 返回把方块从 restY 提回 fromY 的动作
//
// 弹簧的时长为 0，因此与 LiftDuration 的 Delay 并行，让 ActionList 为提回阶段留出时间。
func (s *DropScene) liftAction(restY, fromY float64) action.Action {
	if s.preset.Lift == config.LiftSpring {
		return action.Parallel(
			action.Delay(LiftDuration, nil),
			action.Spring(fromY, liftSpringFrequency, liftSpringDamping),
		)
	}
	return action.Tween(restY, fromY, LiftDuration, ease.OutCubic)
}

// SetVerbose 打开后舞台的动作系统为每个完成的动作输出日志
func (s *DropScene) SetVerbose(verbose bool) {
	s.stage.ActionSystem().SetVerbose(verbose)
}

// Update 推进场景，时间按用户设置的播放倍速缩放
func (s *DropScene) Update(deltaTime float64) {
	scale := 1.0
	if s.settings != nil {
		scale = s.settings.GetSettings().TimeScale
	}
	s.stage.Update(deltaTime * scale)
	s.checkLandings()
}

// checkLandings 为新的触地生成尘土方块
//
// 重力动作完成后仍留在序列中直到提回补间结束，
// 因此在它被归还对象池之前就能观察到最后一次触地。
func (s *DropScene) checkLandings() {
	for i, col := range s.columns {
		if col.gravity == nil {
			continue
		}
		landings := col.gravity.Landings()
		for ; col.landings < landings; col.landings++ {
			s.totalLandings++
			x := config.GetColumnX(i) - 4
			s.stage.SpawnBox(x, config.GroundY, config.BoxSize+8, 4, config.DustLifetime, dustColor)
			if s.OnLanding != nil {
				s.OnLanding(i)
			}
		}
		if col.landings > col.gravity.Bounces() {
			col.gravity = nil
		}
	}
}

// Draw 绘制地面、方块与信息栏
//
// 信息栏使用 ebitenutil 的调试字体，只能显示 ASCII。
func (s *DropScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 30, G: 30, B: 40, A: 255})
	vector.DrawFilledRect(screen, 0, float32(config.GroundY),
		float32(config.GameWindowWidth), float32(config.GameWindowHeight-config.GroundY),
		groundColor, false)

	s.stage.Draw(screen)

	ebitenutil.DebugPrintAt(screen, s.statusLine(), 10, 10)
	ebitenutil.DebugPrintAt(screen, "Left/Right: preset  Up/Down: speed  +/-: extra delay  Space: restart  F11: fullscreen", 10, 28)
}

// statusLine 返回信息栏文本
func (s *DropScene) statusLine() string {
	scale := 1.0
	extra := 0.0
	if s.settings != nil {
		scale = s.settings.GetSettings().TimeScale
		extra = s.settings.GetSettings().ExtraDelay
	}
	return fmt.Sprintf("preset: %s | round %d | landings %d | next round in %.2fs | speed x%.1f | extra delay %.2fs",
		s.presetName, s.round, s.totalLandings,
		max(s.nextRoundAt-s.stage.Time(), 0), scale, extra)
}

// PresetName 返回场景使用的预设名称
func (s *DropScene) PresetName() string {
	return s.presetName
}

// Round 返回已开始的轮数
func (s *DropScene) Round() int {
	return s.round
}

// TotalLandings 返回累计触地次数
func (s *DropScene) TotalLandings() int {
	return s.totalLandings
}

// Stage 返回场景的舞台
func (s *DropScene) Stage() *game.Stage {
	return s.stage
}

var _ game.Scene = (*DropScene)(nil)
