package main

// -------------------- TEA MESSAGES --------------------
// All custom message types for The Elm Architecture

// logInitMsg signals that log viewport should be initialized
type logInitMsg struct{}

// clipboardCopiedMsg indicates clipboard copy completed
type clipboardCopiedMsg struct {
	what string
	err  error
}

// clearCopiedMsg hides the clipboard feedback
type clearCopiedMsg struct{}

// shakeTickMsg advances the shake animation started with the same id
type shakeTickMsg struct {
	id int
}

// flashTickMsg redraws the fading rejection color
type flashTickMsg struct {
	id int
}

// requestBuiltMsg carries the payment request for a confirmed amount
type requestBuiltMsg struct {
	uri string
	qr  string
	err error
}
