package app

import (
	"errors"
	"fmt"
	"strings"
)

// Tab names a top-level screen.
type Tab string

const (
	TabDiscover Tab = "discover"
	TabSaved    Tab = "saved"
	TabProfile  Tab = "profile"
	TabSettings Tab = "settings"
)

var tabLabels = map[Tab]string{
	TabDiscover: "Discover",
	TabSaved:    "Journey",
	TabProfile:  "Profile",
	TabSettings: "Settings",
}

// ErrInvalidRoute is returned when either end of a route is blank.
var ErrInvalidRoute = errors.New("app: route needs both a start and a destination")

// Tabs returns the tabs in navigation order.
func Tabs() []Tab {
	return []Tab{TabDiscover, TabSaved, TabProfile, TabSettings}
}

// Label returns the navigation label for t.
func (t Tab) Label() string {
	if l, ok := tabLabels[t]; ok {
		return l
	}
	return string(t)
}

// Valid reports whether t is a known tab.
func (t Tab) Valid() bool {
	_, ok := tabLabels[t]
	return ok
}

// Route is the trip the user entered. It only decorates the header.
type Route struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// NewRoute trims both ends and rejects blank ones.
func NewRoute(from, to string) (Route, error) {
	r := Route{From: strings.TrimSpace(from), To: strings.TrimSpace(to)}
	if r.From == "" || r.To == "" {
		return Route{}, ErrInvalidRoute
	}
	return r, nil
}

// IsSet reports whether a route was entered.
func (r Route) IsSet() bool {
	return r.From != "" && r.To != ""
}

// String renders "from → to".
func (r Route) String() string {
	if !r.IsSet() {
		return ""
	}
	return fmt.Sprintf("%s → %s", r.From, r.To)
}
