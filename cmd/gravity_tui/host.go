package main

import (
	"log"

	"github.com/gonewx/gravity/pkg/action"
	"github.com/gonewx/gravity/pkg/config"
	"github.com/tanema/gween/ease"
)

const (
	restHold     = 0.3 // 落地静止后停留的时间（秒）
	liftDuration = 0.5 // 提回起点的补间时长（秒）
)

// column 终端中的一列：一个预设驱动的一个小球
//
// 实现 action.Actor 与 action.Positioner，动作直接挂在列上。
type column struct {
	name    string
	preset  config.GravityPreset
	fromY   float64
	y       float64
	actions []action.Action

	gravity  *action.GravityAction
	landings int
}

func (c *column) AddAction(a action.Action) {
	a.SetActor(c)
	c.actions = append(c.actions, a)
}

func (c *column) Y() float64     { return c.y }
func (c *column) SetY(y float64) { c.y = y }

// clear 停止并释放列上的全部动作
func (c *column) clear() {
	releaseAll(&c.actions)
}

// releaseAll 断开并释放 list 中的全部动作，然后清空 list
func releaseAll(list *[]action.Action) {
	for _, a := range *list {
		a.SetActor(nil)
		action.Release(a)
	}
	*list = (*list)[:0]
}

// host 终端演示的宿主：逐帧驱动各列的动作，并以自身动作实现延迟回调
type host struct {
	columns    []*column
	groundY    float64
	timers     []action.Action
	list       *action.ActionList
	extraDelay float64
	time       float64
	round      int

	onLanding func(i int)
}

// newHost 为 cfg 中的每个预设创建一列，所有列共用同一地面
func newHost(cfg *config.GravityConfig, extraDelay float64) *host {
	h := &host{extraDelay: max(extraDelay, 0)}
	h.list = action.NewActionList(h)

	for _, name := range cfg.Names() {
		h.groundY = max(h.groundY, cfg.Presets[name].Height)
	}
	for _, name := range cfg.Names() {
		p := cfg.Presets[name]
		fromY := h.groundY - p.Height
		h.columns = append(h.columns, &column{name: name, preset: p, fromY: fromY, y: fromY})
	}
	return h
}

// AddAction 挂载一个宿主级动作（计时器）
func (h *host) AddAction(a action.Action) {
	a.SetActor(h)
	h.timers = append(h.timers, a)
}

// Schedule 在 delay 秒后执行一次 fn
func (h *host) Schedule(delay float64, fn func()) {
	h.AddAction(action.Delay(delay, action.Run(fn)))
}

// startRound 让所有小球同时下落，最慢的一列回到起点后开始下一轮
func (h *host) startRound() {
	h.round++
	slowestExtra := 0.0
	for i, c := range h.columns {
		c.clear()
		c.y = c.fromY
		c.landings = 0
		c.gravity = nil

		g, err := c.preset.NewAction(h.groundY)
		if err != nil {
			log.Printf("[TUI] Warning: preset %s skipped: %v", c.name, err)
			continue
		}
		c.gravity = g
		slowestExtra = max(slowestExtra, c.preset.ExtraDelay)

		h.list.Add(action.Sequence(
			g,
			action.Delay(restHold, nil),
			action.Tween(h.groundY, c.fromY, liftDuration, ease.OutQuad),
		), c)
		log.Printf("[TUI] column %d (%s): %.3fs", i, c.name, g.Duration())
	}
	h.list.Process(h.startRound, h.extraDelay+slowestExtra)
}

// restart 放弃当前轮次以及尚未触发的回调，立即开始新一轮
//
// 只能在帧之间调用：计时器内的回调应使用 startRound。
func (h *host) restart() {
	releaseAll(&h.timers)
	h.startRound()
}

// update 推进 dt 秒：先驱动各列，再驱动计时器，最后检测触地
func (h *host) update(dt float64) {
	h.time += dt
	for _, c := range h.columns {
		action.ActAll(&c.actions, dt, nil)
	}
	action.ActAll(&h.timers, dt, nil)

	for i, c := range h.columns {
		if c.gravity == nil {
			continue
		}
		for n := c.gravity.Landings(); c.landings < n; c.landings++ {
			if h.onLanding != nil {
				h.onLanding(i)
			}
		}
		if c.landings > c.gravity.Bounces() {
			c.gravity = nil
		}
	}
}

var (
	_ action.Actor      = (*column)(nil)
	_ action.Positioner = (*column)(nil)
	_ action.Scheduler  = (*host)(nil)
)
