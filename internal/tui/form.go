package tui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/turgho/aluguei-cli/internal/mask"
)

// maxInputLen is the maximum number of runes allowed in form inputs.
const maxInputLen = 255

// errorStatusTTL is how long an error banner stays on screen.
const errorStatusTTL = 3 * time.Second

// navigateDelay is how long a success banner is shown before the scheduled
// navigation fires.
const navigateDelay = 2 * time.Second

// statusExpireMsg clears a form status banner. The generation counter makes
// stale timers harmless: a banner replaced or cleared in the meantime bumped
// the generation and the old timer's message is ignored.
type statusExpireMsg struct {
	gen int
}

// navigateMsg asks the root model to switch screens.
type navigateMsg struct {
	to view
}

// navigateCmd schedules a screen switch after the success banner has been
// visible for navigateDelay.
func navigateCmd(to view) tea.Cmd {
	return tea.Tick(navigateDelay, func(time.Time) tea.Msg {
		return navigateMsg{to: to}
	})
}

// navigateNow switches screens without delay.
func navigateNow(to view) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{to: to}
	}
}

type statusKind int

const (
	statusNone statusKind = iota
	statusError
	statusSuccess
)

// formStatus is the transient banner under a form: success or error plus a
// message. Errors self-clear after errorStatusTTL; success stays until the
// scheduled navigation replaces the screen.
type formStatus struct {
	kind    statusKind
	message string
	gen     int
}

// setError shows an error banner and returns the timer that clears it.
func (s *formStatus) setError(msg string) tea.Cmd {
	s.kind = statusError
	s.message = msg
	s.gen++
	gen := s.gen
	return tea.Tick(errorStatusTTL, func(time.Time) tea.Msg {
		return statusExpireMsg{gen: gen}
	})
}

// setSuccess shows a success banner. No expiry timer: navigation replaces it.
func (s *formStatus) setSuccess(msg string) {
	s.kind = statusSuccess
	s.message = msg
	s.gen++
}

// clear resets the banner and cancels any pending expiry by bumping the
// generation.
func (s *formStatus) clear() {
	s.kind = statusNone
	s.message = ""
	s.gen++
}

// expire handles a timer message, ignoring timers from older generations.
func (s *formStatus) expire(msg statusExpireMsg) {
	if msg.gen == s.gen {
		s.kind = statusNone
		s.message = ""
	}
}

// render returns the styled banner line, or "" when there is nothing to show.
func (s formStatus) render() string {
	if s.kind == statusNone || s.message == "" {
		return ""
	}
	return statusStyle(s.kind).Render(s.message)
}

// formField is one labelled input of a form, optionally masked.
type formField struct {
	label       string
	placeholder string
	value       string
	mask        mask.Kind
	secret      bool
}

// edit applies a keystroke to the field, re-masking the result. Masks are
// idempotent, so re-applying after every edit keeps the display canonical.
func (f *formField) edit(key string) {
	v := editRune(f.value, key)
	if f.mask != mask.None {
		v = mask.Apply(v, f.mask)
	}
	f.value = v
}

// editRune processes a keystroke for inline text editing.
// Handles backspace (rune-aware) and single printable characters.
// Returns the text unchanged for non-printable keys (enter, esc, etc.).
// Input is clamped to maxInputLen runes.
func editRune(text string, key string) string {
	switch key {
	case "backspace":
		if len(text) > 0 {
			runes := []rune(text)
			return string(runes[:len(runes)-1])
		}
		return text
	default:
		if utf8.RuneCountInString(key) == 1 {
			if utf8.RuneCountInString(text) >= maxInputLen {
				return text
			}
			return text + key
		}
		return text
	}
}

// renderFormField renders "> Label: value█" in the shared form layout.
func renderFormField(f formField, focused bool) string {
	cursor := " "
	labelStyle := metaStyle
	if focused {
		cursor = ">"
		labelStyle = selectedStyle
	}

	display := f.value
	if f.secret {
		display = strings.Repeat("*", utf8.RuneCountInString(f.value))
	}
	if display == "" && !focused {
		display = inputPlaceholderStyle.Render(f.placeholder)
	}
	if focused {
		display += accentStyle.Render("█")
	}
	return cursor + " " + labelStyle.Render(f.label) + ": " + display
}

// truncateToHeight limits output to maxLines newline-delimited lines.
// Returns the original string if it fits or maxLines is <= 0.
func truncateToHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return s
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
			if n >= maxLines {
				return s[:i+1]
			}
		}
	}
	return s
}
