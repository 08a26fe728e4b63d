package action

import "reflect"

// DefaultPoolCapacity 每种动作类型最多保留的空闲实例数
const DefaultPoolCapacity = 100

// Pool 单一动作类型的空闲实例列表
type Pool struct {
	newFn func() Action
	free  []Action
	max   int
	peak  int
}

func newPool(newFn func() Action, max int) *Pool {
	return &Pool{
		newFn: newFn,
		free:  make([]Action, 0, 16),
		max:   max,
	}
}

// Obtain 取出一个空闲实例，没有空闲实例时新建
//
// 返回的实例已经 Reset，并记录了来源对象池。
func (p *Pool) Obtain() Action {
	var a Action
	if n := len(p.free); n > 0 {
		a = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
	} else {
		a = p.newFn()
		a.Reset()
	}
	if pa, ok := a.(pooled); ok {
		pa.SetPool(p)
	}
	return a
}

// Free 重置实例并放回空闲列表
//
// 只接受从本池取出且尚未归还的实例，重复归还会被忽略。
// 空闲列表已满时实例被丢弃。
func (p *Pool) Free(a Action) {
	if a == nil {
		return
	}
	if pa, ok := a.(pooled); ok && pa.Pool() != p {
		return
	}
	a.Reset()
	if len(p.free) >= p.max {
		return
	}
	p.free = append(p.free, a)
	if len(p.free) > p.peak {
		p.peak = len(p.free)
	}
}

// Len 返回当前空闲实例数
func (p *Pool) Len() int {
	return len(p.free)
}

// Peak 返回空闲列表曾达到的最大长度
func (p *Pool) Peak() int {
	return p.peak
}

// Pools 按动作类型索引的对象池集合
type Pools struct {
	pools    map[reflect.Type]*Pool
	capacity int
}

// NewPools 创建对象池集合，capacity <= 0 时使用 DefaultPoolCapacity
func NewPools(capacity int) *Pools {
	if capacity <= 0 {
		capacity = DefaultPoolCapacity
	}
	return &Pools{
		pools:    make(map[reflect.Type]*Pool),
		capacity: capacity,
	}
}

// Get 返回指定类型的对象池（不存在时返回 nil）
func (ps *Pools) Get(t reflect.Type) *Pool {
	return ps.pools[t]
}

func (ps *Pools) poolFor(t reflect.Type, newFn func() Action) *Pool {
	p, ok := ps.pools[t]
	if !ok {
		p = newPool(newFn, ps.capacity)
		ps.pools[t] = p
	}
	return p
}

// Obtain 从 ps 中取出类型为 *T 的动作实例
//
// 示例:
//
//	g := action.Obtain[action.GravityAction](pools)
func Obtain[T any, P interface {
	*T
	Action
}](ps *Pools) P {
	return PoolOf[T, P](ps).Obtain().(P)
}

// PoolOf 返回类型为 *T 的对象池，不存在时创建
func PoolOf[T any, P interface {
	*T
	Action
}](ps *Pools) *Pool {
	return ps.poolFor(reflect.TypeFor[T](), func() Action { return P(new(T)) })
}
