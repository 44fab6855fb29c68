package core

import "strings"

// Action represents a semantic player intent, abstracted from the key or
// text that produced it. Strategies and key maps both speak in actions.
type Action int

const (
	ActionNone    Action = iota
	ActionSwing          // s - swing at the pitch
	ActionWatch          // w - let the pitch go by
	ActionHelp           // h - show help
	ActionQuit           // q - ask to quit
	ActionConfirm        // y - answer yes
	ActionDeny           // n - answer no
	ActionScroll         // Up/Down - scroll the play-by-play
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSwing:
		return "Swing"
	case ActionWatch:
		return "Watch"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionDeny:
		return "Deny"
	case ActionScroll:
		return "Scroll"
	default:
		return "Unknown"
	}
}

// Answer returns the text a player would type for the action, or "" for
// actions that have no typed form.
func (a Action) Answer() string {
	switch a {
	case ActionSwing:
		return "s"
	case ActionWatch:
		return "w"
	case ActionHelp:
		return "h"
	case ActionQuit:
		return "q"
	case ActionConfirm:
		return "y"
	case ActionDeny:
		return "n"
	default:
		return ""
	}
}

// ParseAction maps a typed answer back to an action. Case and surrounding
// space are ignored; anything unrecognised is ActionNone.
func ParseAction(text string) Action {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "s":
		return ActionSwing
	case "w":
		return ActionWatch
	case "h":
		return ActionHelp
	case "q":
		return ActionQuit
	case "y":
		return ActionConfirm
	case "n":
		return ActionDeny
	default:
		return ActionNone
	}
}
