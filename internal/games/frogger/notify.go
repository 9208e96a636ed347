package frogger

import "github.com/charmbracelet/log"

// Notifier receives a notification for every detected collision.
type Notifier interface {
	Notify(ev CollisionEvent)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ev CollisionEvent)

// Notify calls f(ev).
func (f NotifierFunc) Notify(ev CollisionEvent) { f(ev) }

// LogNotifier writes collisions to a structured logger.
type LogNotifier struct {
	Logger *log.Logger
}

// Notify logs the event at info level.
func (n LogNotifier) Notify(ev CollisionEvent) {
	if n.Logger == nil {
		return
	}
	n.Logger.Info(CollisionMessage,
		"tick", ev.Tick,
		"set", ev.Set,
		"obstacle", ev.Obstacle,
		"x", ev.X,
		"y", ev.Y,
	)
}

type multiNotifier []Notifier

func (m multiNotifier) Notify(ev CollisionEvent) {
	for _, n := range m {
		n.Notify(ev)
	}
}

// MultiNotifier fans one event out to several sinks; nil sinks are skipped.
func MultiNotifier(sinks ...Notifier) Notifier {
	var m multiNotifier
	for _, n := range sinks {
		if n != nil {
			m = append(m, n)
		}
	}
	return m
}
