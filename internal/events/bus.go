// Package events 进程内同步事件总线
// TUI 和终端解释器发布事件，analytics 订阅事件
package events

import (
	"reflect"
	"sort"
	"sync"
	"time"
)

// 事件类型
const (
	TypeCommandExecuted = "terminal.command"
	TypePageView        = "ui.page_view"
	TypeProjectViewed   = "project.viewed"
	TypeProjectsLoaded  = "projects.loaded"
)

// 上述事件类型携带的数据
type (
	CommandData struct {
		Name  string
		Known bool
	}
	PageViewData struct {
		Route string
	}
	ProjectViewedData struct {
		ID   string
		Name string
	}
	ProjectsLoadedData struct {
		Count    int
		Fallback bool
	}
)

// Event 事件接口
type Event interface {
	Type() string
	Data() interface{}
	Timestamp() time.Time
}

// Handler 事件处理器接口
type Handler interface {
	CanHandle(event Event) bool
	Handle(event Event) error
	// Priority 处理优先级，数值越小优先级越高
	Priority() int
}

// Bus 事件总线接口
type Bus interface {
	Subscribe(eventType string, handler Handler)
	Unsubscribe(eventType string, handler Handler)
	Publish(event Event)
	Clear()
}

// BaseEvent 基础事件实现
type BaseEvent struct {
	eventType string
	data      interface{}
	timestamp time.Time
}

func NewEvent(eventType string, data interface{}) *BaseEvent {
	return NewEventAt(eventType, data, time.Now())
}

func NewEventAt(eventType string, data interface{}, at time.Time) *BaseEvent {
	return &BaseEvent{
		eventType: eventType,
		data:      data,
		timestamp: at,
	}
}

func (e *BaseEvent) Type() string         { return e.eventType }
func (e *BaseEvent) Data() interface{}    { return e.data }
func (e *BaseEvent) Timestamp() time.Time { return e.timestamp }

// HandlerFunc 将函数适配为优先级为 0 的处理器
type HandlerFunc func(Event) error

func (f HandlerFunc) CanHandle(Event) bool     { return true }
func (f HandlerFunc) Handle(event Event) error { return f(event) }
func (f HandlerFunc) Priority() int            { return 0 }

// MemoryBus 内存事件总线实现，在发布者的 goroutine 上同步分发
type MemoryBus struct {
	handlers map[string][]Handler
	mutex    sync.RWMutex
	onError  func(Event, error)
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[string][]Handler),
	}
}

// OnError 注册处理器错误回调，未注册时错误被忽略
func (bus *MemoryBus) OnError(fn func(Event, error)) {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()
	bus.onError = fn
}

func (bus *MemoryBus) Subscribe(eventType string, handler Handler) {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()

	handlers := append(bus.handlers[eventType], handler)
	sort.SliceStable(handlers, func(i, j int) bool {
		return handlers[i].Priority() < handlers[j].Priority()
	})
	bus.handlers[eventType] = handlers
}

// Unsubscribe 取消订阅事件
// 只能移除可比较的处理器（如指针），HandlerFunc 等不可比较的值会被跳过
func (bus *MemoryBus) Unsubscribe(eventType string, handler Handler) {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()

	handlers := bus.handlers[eventType]
	if !isComparable(handler) {
		return
	}
	for i, h := range handlers {
		if isComparable(h) && h == handler {
			bus.handlers[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}
}

func isComparable(h Handler) bool {
	t := reflect.TypeOf(h)
	return t != nil && t.Comparable()
}

func (bus *MemoryBus) Publish(event Event) {
	bus.mutex.RLock()
	handlers := bus.handlers[event.Type()]
	onError := bus.onError
	bus.mutex.RUnlock()

	for _, handler := range handlers {
		if !handler.CanHandle(event) {
			continue
		}
		if err := handler.Handle(event); err != nil && onError != nil {
			onError(event, err)
		}
	}
}

func (bus *MemoryBus) Clear() {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()

	bus.handlers = make(map[string][]Handler)
}
