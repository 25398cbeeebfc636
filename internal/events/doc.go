// Package events provides an in-process event bus.
//
// Session state machines publish events without knowing who consumes them;
// the scoreboard subscribes to score.recorded events to keep the dashboard
// current. Handlers run synchronously in registration order.
package events
