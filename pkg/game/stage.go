package game

import (
	"image/color"

	"github.com/gonewx/gravity/pkg/action"
	"github.com/gonewx/gravity/pkg/components"
	"github.com/gonewx/gravity/pkg/ecs"
	"github.com/gonewx/gravity/pkg/entities"
	"github.com/gonewx/gravity/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Stage 舞台：持有演员（ECS 实体）并逐帧驱动它们的动作
//
// 舞台本身也是一个演员，可以挂载与任何实体无关的舞台级动作，
// Schedule 就是用舞台级的 Delay+Run 动作实现的。
//
// 每帧 Update 的顺序:
//  1. 累加场景时间
//  2. ActionSystem 驱动所有实体上的动作
//  3. 驱动舞台级动作（此时实体已处于本帧的最终位置）
//  4. LifetimeSystem 标记过期的实体
//  5. 清理标记删除的实体
type Stage struct {
	entityManager  *ecs.EntityManager
	actionSystem   *systems.ActionSystem
	lifetimeSystem *systems.LifetimeSystem
	renderSystem   *systems.RenderSystem
	actions        []action.Action
	time           float64
}

// NewStage 创建一个空舞台
func NewStage() *Stage {
	em := ecs.NewEntityManager()
	return &Stage{
		entityManager:  em,
		actionSystem:   systems.NewActionSystem(em),
		lifetimeSystem: systems.NewLifetimeSystem(em),
		renderSystem:   systems.NewRenderSystem(em),
	}
}

// EntityManager 返回舞台的实体管理器
func (s *Stage) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// ActionSystem 返回舞台的动作系统
func (s *Stage) ActionSystem() *systems.ActionSystem {
	return s.actionSystem
}

// Time 返回舞台累计的场景时间（秒）
func (s *Stage) Time() float64 {
	return s.time
}

// CreateActor 在 (x, y) 创建一个带位置组件的演员
func (s *Stage) CreateActor(x, y float64) *ActorRef {
	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.PositionComponent{X: x, Y: y})
	return NewActorRef(s.entityManager, id)
}

// SpawnBox 在 (x, y) 创建一个 lifetime 秒后自动删除的纯色方块
func (s *Stage) SpawnBox(x, y, width, height, lifetime float64, clr color.RGBA) ecs.EntityID {
	return entities.NewDustEntity(s.entityManager, x, y, width, height, lifetime, clr)
}

// CreateBoxActor 在 (x, y) 创建一个边长为 size 的方块演员
func (s *Stage) CreateBoxActor(x, y, size float64, clr color.RGBA) *ActorRef {
	return NewActorRef(s.entityManager, entities.NewDropBoxEntity(s.entityManager, x, y, size, clr))
}

// Actor 返回实体 id 对应的演员
func (s *Stage) Actor(id ecs.EntityID) *ActorRef {
	return NewActorRef(s.entityManager, id)
}

// AddAction 挂载一个舞台级动作
func (s *Stage) AddAction(a action.Action) {
	if a == nil {
		return
	}
	a.SetActor(s)
	s.actions = append(s.actions, a)
}

// Actions 返回舞台级动作
func (s *Stage) Actions() []action.Action {
	return s.actions
}

// Schedule 在场景时间 delay 秒后执行一次 fn
func (s *Stage) Schedule(delay float64, fn func()) {
	s.AddAction(action.Delay(delay, action.Run(fn)))
}

// Update 推进舞台 deltaTime 秒
func (s *Stage) Update(deltaTime float64) {
	s.time += deltaTime
	s.actionSystem.Update(deltaTime)
	if len(s.actions) > 0 {
		action.ActAll(&s.actions, deltaTime, nil)
	}
	s.lifetimeSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制舞台上的方块演员
func (s *Stage) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

var (
	_ Scene            = (*Stage)(nil)
	_ action.Actor     = (*Stage)(nil)
	_ action.Scheduler = (*Stage)(nil)
)
