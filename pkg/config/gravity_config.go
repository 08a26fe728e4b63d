package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/gonewx/gravity/pkg/action"
	"gopkg.in/yaml.v3"
)

// GravityConfig 重力预设配置
//
// 配置文件位置: data/gravity_presets.yaml
type GravityConfig struct {
	// Default 未指定预设时使用的预设名称
	Default string `yaml:"default"`

	// Presets 预设表
	// key: 预设名称（如 "ball", "anvil"）
	Presets map[string]GravityPreset `yaml:"presets"`
}

// 提回方式
const (
	// LiftTween 按固定时长的缓动补间提回（默认）
	LiftTween = "tween"
	// LiftSpring 用弹簧拉回起点，带少量回弹
	LiftSpring = "spring"
)

// GravityPreset 一组重力动作参数
//
// 预设不包含具体坐标：落点由演员决定，起点 = 落点 - Height。
type GravityPreset struct {
	// Gravity 重力加速度（像素/秒²）
	Gravity float64 `yaml:"gravity"`

	// Height 初始下落高度（像素）
	Height float64 `yaml:"height"`

	// Bounces 首次落地后的弹跳次数（0 ~ 20）
	Bounces int `yaml:"bounces"`

	// Bounciness 弹跳高度衰减系数（0 ~ 1）
	Bounciness float64 `yaml:"bounciness"`

	// ExtraDelay 一批动作全部结束后到回调之间的额外等待（秒）
	ExtraDelay float64 `yaml:"extraDelay"`

	// Lift 落地停留后提回起点的方式（"tween" 或 "spring"，为空时为 "tween"）
	Lift string `yaml:"lift"`
}

// LoadGravityConfig 加载重力预设配置
//
// 参数:
//   - path: 配置文件路径（如 "data/gravity_presets.yaml"）
//
// 返回:
//   - *GravityConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadGravityConfig(path string) (*GravityConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gravity config: %w", err)
	}
	return ParseGravityConfig(data)
}

// ParseGravityConfig 从 YAML 数据解析并校验重力预设配置
func ParseGravityConfig(data []byte) (*GravityConfig, error) {
	var config GravityConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse gravity config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gravity config: %w", err)
	}

	return &config, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 至少有一个预设
//   - 默认预设存在（未设置时不检查）
//   - 每个预设的参数都能通过 action.ValidateGravity
//   - 高度与额外等待时间不能为负
//   - 提回方式为空、tween 或 spring
func (c *GravityConfig) Validate() error {
	if len(c.Presets) == 0 {
		return fmt.Errorf("no gravity presets defined")
	}
	if c.Default != "" {
		if _, ok := c.Presets[c.Default]; !ok {
			return fmt.Errorf("default preset '%s' not found", c.Default)
		}
	}
	for _, name := range c.Names() {
		if err := c.Presets[name].Validate(); err != nil {
			return fmt.Errorf("preset '%s': %w", name, err)
		}
	}
	return nil
}

// Validate 验证单个预设
func (p GravityPreset) Validate() error {
	if p.Height < 0 {
		return fmt.Errorf("height should be >= 0, got %.1f", p.Height)
	}
	if p.ExtraDelay < 0 {
		return fmt.Errorf("extraDelay should be >= 0, got %.2f", p.ExtraDelay)
	}
	switch p.Lift {
	case "", LiftTween, LiftSpring:
	default:
		return fmt.Errorf("lift should be '%s' or '%s', got '%s'", LiftTween, LiftSpring, p.Lift)
	}
	return action.ValidateGravity(p.Gravity, 0, p.Height, p.Bounces, p.Bounciness)
}

// Names 返回按字母排序的预设名称
func (c *GravityConfig) Names() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPreset 获取指定名称的预设
//
// 名称为空时返回默认预设。
//
// 返回:
//   - GravityPreset: 预设参数
//   - bool: 预设是否存在
func (c *GravityConfig) GetPreset(name string) (GravityPreset, bool) {
	if name == "" {
		name = c.Default
	}
	p, ok := c.Presets[name]
	return p, ok
}

// NewAction 按预设创建一个落到 toY 的重力动作
func (p GravityPreset) NewAction(toY float64) (*action.GravityAction, error) {
	return action.Gravity(p.Gravity, toY-p.Height, toY, p.Bounces, p.Bounciness)
}

// Duration 返回按该预设创建的重力动作的总时长（秒）
func (p GravityPreset) Duration() float64 {
	g := action.NewGravityAction()
	if err := g.Init(p.Gravity, 0, p.Height, p.Bounces, p.Bounciness); err != nil {
		return 0
	}
	return g.Duration()
}
