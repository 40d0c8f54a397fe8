// Package notify abstracts the presentation layer's transient feedback:
// toasts become a sink interface, route changes become a Navigator.
package notify

import "log"

// Notifier receives user-visible outcome messages. Remote failures are
// surfaced here instead of crashing the calling component.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator performs route changes requested by the coordinator, e.g. to the
// storefront root after logout or to the order history after a placed order.
type Navigator interface {
	Navigate(route string)
}

// LogNotifier writes notifications to a standard logger.
type LogNotifier struct {
	Logger *log.Logger
}

func (n *LogNotifier) Success(message string) {
	n.Logger.Printf("success: %s", message)
}

func (n *LogNotifier) Error(message string) {
	n.Logger.Printf("error: %s", message)
}

// LogNavigator records navigation requests on a standard logger; the CLI has
// no real router.
type LogNavigator struct {
	Logger *log.Logger
}

func (n *LogNavigator) Navigate(route string) {
	n.Logger.Printf("navigate: %s", route)
}

// Nop discards everything; handy default for tests and headless use.
type Nop struct{}

func (Nop) Success(string)  {}
func (Nop) Error(string)    {}
func (Nop) Navigate(string) {}
