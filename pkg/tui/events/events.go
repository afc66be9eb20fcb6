// Package events defines the messages exchanged between TUI components.
package events

import (
	"tableflip.dev/beyond/pkg/entry"
)

// OpenDetailMsg asks the app to show one entry in full.
type OpenDetailMsg struct {
	Entry entry.Entry
}

// CloseDetailMsg is the detail view's back action.
type CloseDetailMsg struct{}

// DeleteRequestMsg is emitted by the revealed delete action. Nothing is
// removed until the user confirms.
type DeleteRequestMsg struct {
	Entry entry.Entry
}

// ConfirmMsg carries the answer to a delete confirmation.
type ConfirmMsg struct {
	Entry     entry.Entry
	Confirmed bool
}

// SubmitMsg carries the raw text of the input panel's save action.
type SubmitMsg struct {
	Text string
}

// StoreChangedMsg is emitted when the slot changed outside this process.
type StoreChangedMsg struct{}
