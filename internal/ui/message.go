package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgStoreChanged MsgKind = iota
	MsgWatchFailed
	MsgStatusExpired
)

// storeChangedMsg is the constructor for [MsgStoreChanged]
func storeChangedMsg() Msg {
	return Msg{kind: MsgStoreChanged}
}

// watchFailedMsg is the constructor for [MsgWatchFailed]
func watchFailedMsg(err error) Msg {
	return Msg{kind: MsgWatchFailed, data: err}
}

// statusExpiredMsg is the constructor for [MsgStatusExpired]. seq identifies the
// status line it clears so a newer one is left alone.
func statusExpiredMsg(seq int) Msg {
	return Msg{kind: MsgStatusExpired, data: seq}
}
