// internal/event/event.go
package event

import "reflect"

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
// Такой слушатель нельзя отписать, функции несравнимы.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher — синхронный диспетчер событий. Все вызовы идут в том же
// потоке, что и игровой цикл.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll — подписка одного слушателя на несколько событий
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe — отписка от события. Отписать можно только сравнимого
// слушателя (указатель, простое значение); остальные остаются подписанными.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if !isComparable(listener) {
		return
	}
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if !isComparable(l) {
			continue
		}
		if l == listener {
			next := make([]Listener, 0, len(listeners)-1)
			next = append(next, listeners[:i]...)
			d.listeners[eventType] = append(next, listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам. Подписки, изменённые
// внутри обработчика, вступают в силу со следующего события.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// isComparable защищает от паники при == на интерфейсах с несравнимым
// динамическим типом (функции, структуры со срезами).
func isComparable(l Listener) bool {
	return l != nil && reflect.TypeOf(l).Comparable()
}
