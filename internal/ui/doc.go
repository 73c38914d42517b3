// Package ui implements the interactive concert log using bubbletea's Elm architecture.
//
// The TUI is a single screen with four modes:
//  1. [BrowseMode] : Scroll the filtered table, cycle filters and sort order
//  2. [SearchMode] : Edit the free-text search, applied as you type
//  3. [FormMode] : Add or edit a concert; validation errors are shown inline
//  4. [ConfirmMode] : Confirm deletion of the selected concert
//
// Every store change or filter change recomputes the view through [view.Compute].
// When a [Watcher] is attached, writes to the database by other processes reload the store.
//
// Keyboard navigation uses vim-style bindings (j/k) with contextual help displayed via charmbracelet/bubbles/help.
package ui
