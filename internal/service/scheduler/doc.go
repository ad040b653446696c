// Package scheduler wires the alarm-scheduler binary together: it loads
// configuration, guards against a second running instance, starts the
// concurrent core and serves the interactive "alarm> " prompt that feeds it.
package scheduler
