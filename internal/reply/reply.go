// Package reply defines the reply envelope returned by intent handlers
// and the empathetic response synthesizer behind the wellbeing handler.
package reply

// Type distinguishes the reply payload shapes the HTTP layer renders.
type Type string

const (
	TypeText         Type = "text"
	TypeNotesResults Type = "notes_results"
	TypeSubjectsList Type = "subjects_list"
	TypePYQResults   Type = "pyq_results"
	TypePYQList      Type = "pyq_list"
	TypeError        Type = "error"
)

// Reply is the envelope every handler returns. Results carries the
// intent-specific structured payload when Type is not plain text.
type Reply struct {
	Type     Type           `json:"type"`
	Message  string         `json:"message"`
	Intent   string         `json:"intent,omitempty"`
	Results  any            `json:"results,omitempty"`
	Subjects map[string]int `json:"subjects,omitempty"`
	Types    map[string]int `json:"types,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// NewText builds a plain text reply.
func NewText(message string) *Reply {
	return &Reply{Type: TypeText, Message: message}
}

// NewError builds an error reply with a user-facing message.
func NewError(message, detail string) *Reply {
	return &Reply{Type: TypeError, Message: message, Error: detail}
}

// WithIntent tags the reply with the classified intent label.
func (r *Reply) WithIntent(intent string) *Reply {
	r.Intent = intent
	return r
}
