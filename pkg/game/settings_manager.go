package game

import (
	"fmt"
	"log"
	"math"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ShowcaseSettings 演示程序的用户偏好
//
// 只保存用户选择，不保存任何动作的运行状态。
type ShowcaseSettings struct {
	Preset     string  `yaml:"preset"`     // 选中的重力预设名称
	ExtraDelay float64 `yaml:"extraDelay"` // 全部动作结束后到回调之间的额外等待（秒）
	TimeScale  float64 `yaml:"timeScale"`  // 播放倍速 0.1 ~ 4.0
	SoundOn    bool    `yaml:"soundOn"`    // 触地音效开关
}

// DefaultSettings 返回默认设置
func DefaultSettings() *ShowcaseSettings {
	return &ShowcaseSettings{
		Preset:     "ball",
		ExtraDelay: 0.2,
		TimeScale:  1.0,
		SoundOn:    true,
	}
}

// SettingsManager 设置管理器
// 负责演示设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager    // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ShowcaseSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "showcase"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例（加载失败时使用默认设置）
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或数据不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.ExtraDelay = max(loaded.ExtraDelay, 0)
	loaded.TimeScale = clampTimeScale(loaded.TimeScale)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded (preset=%s)", loaded.Preset)
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ShowcaseSettings {
	return sm.settings
}

// SetPreset 设置选中的重力预设
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetPreset(name string) {
	sm.settings.Preset = name
}

// SetExtraDelay 设置回调的额外等待时间，负值按 0 处理
func (sm *SettingsManager) SetExtraDelay(delay float64) {
	sm.settings.ExtraDelay = max(delay, 0)
}

// SetTimeScale 设置播放倍速，限制在 0.1 ~ 4.0
func (sm *SettingsManager) SetTimeScale(scale float64) {
	sm.settings.TimeScale = clampTimeScale(scale)
}

// SetSoundOn 设置触地音效开关
func (sm *SettingsManager) SetSoundOn(on bool) {
	sm.settings.SoundOn = on
}

// clampTimeScale 将倍速限制在 0.1 ~ 4.0，非法值回退为 1.0
func clampTimeScale(scale float64) float64 {
	switch {
	case math.IsNaN(scale) || scale == 0:
		return 1.0
	case scale < 0.1:
		return 0.1
	case scale > 4.0:
		return 4.0
	}
	return scale
}
