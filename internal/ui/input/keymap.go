package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Action is a logical command decoded from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionForceQuit
	ActionShowHelp
	ActionMoveUp
	ActionMoveDown
	ActionNextPage
	ActionPrevPage
	ActionJumpToLine
	ActionSearch
	ActionRename
	ActionDelete
	ActionMkdir
	ActionTouch
	ActionReload
	ActionRunCommand
	ActionGoUp
	ActionOpen
	ActionOpenTerminal
	ActionOpenLocation
	ActionCopyPath
	ActionGotoPath
	ActionGoHome
	ActionSuspend

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:         "none",
	ActionQuit:         "quit",
	ActionForceQuit:    "force-quit",
	ActionShowHelp:     "help",
	ActionMoveUp:       "up",
	ActionMoveDown:     "down",
	ActionNextPage:     "next-page",
	ActionPrevPage:     "prev-page",
	ActionJumpToLine:   "jump",
	ActionSearch:       "search",
	ActionRename:       "rename",
	ActionDelete:       "delete",
	ActionMkdir:        "mkdir",
	ActionTouch:        "touch",
	ActionReload:       "reload",
	ActionRunCommand:   "run",
	ActionGoUp:         "go-up",
	ActionOpen:         "open",
	ActionOpenTerminal: "term-open",
	ActionOpenLocation: "open-location",
	ActionCopyPath:     "copy-path",
	ActionGotoPath:     "goto",
	ActionGoHome:       "home",
	ActionSuspend:      "suspend",
}

var actionDescriptions = [actionCount]string{
	ActionQuit:         "Quit (asks first)",
	ActionForceQuit:    "Quit immediately",
	ActionShowHelp:     "Toggle this help",
	ActionMoveUp:       "Select previous entry",
	ActionMoveDown:     "Select next entry",
	ActionNextPage:     "Next page",
	ActionPrevPage:     "Previous page",
	ActionJumpToLine:   "Jump to entry number",
	ActionSearch:       "Search names",
	ActionRename:       "Rename entry",
	ActionDelete:       "Delete file or empty directory",
	ActionMkdir:        "Create directory",
	ActionTouch:        "Create empty file",
	ActionReload:       "Reload listing",
	ActionRunCommand:   "Run shell command",
	ActionGoUp:         "Parent directory",
	ActionOpen:         "Enter directory or open file",
	ActionOpenTerminal: "Run entry in a terminal",
	ActionOpenLocation: "Open a terminal here",
	ActionCopyPath:     "Copy path to clipboard",
	ActionGotoPath:     "Go to path",
	ActionGoHome:       "Go to home directory",
	ActionSuspend:      "Suspend to shell",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// Description is the help text for a.
func (a Action) Description() string {
	if a < 0 || a >= actionCount {
		return ""
	}
	return actionDescriptions[a]
}

// ParseAction looks up an action by its configuration name.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a := ActionQuit; a < actionCount; a++ {
		if actionNames[a] == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
	ErrBadBinding    = errors.New("binding must look like action=key")
)

// Key identifies a key press. Rune is only set when Code is tcell.KeyRune.
type Key struct {
	Code tcell.Key
	Rune rune
}

// RuneKey is a printable key.
func RuneKey(r rune) Key { return Key{Code: tcell.KeyRune, Rune: r} }

// SpecialKey is a non-printable key such as F5 or Ctrl-A.
func SpecialKey(code tcell.Key) Key { return Key{Code: code} }

// String renders the key the way ParseKey reads it.
func (k Key) String() string {
	if k.Code == tcell.KeyRune {
		if k.Rune == ' ' {
			return "Space"
		}
		return string(k.Rune)
	}
	if name, ok := tcell.KeyNames[k.Code]; ok {
		return name
	}
	return fmt.Sprintf("Key[%d]", int(k.Code))
}

var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for code, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = code
	}
	m["del"] = tcell.KeyDelete
	m["esc"] = tcell.KeyEscape
	m["return"] = tcell.KeyEnter
	return m
}()

// ParseKey reads a key name: a single character ("q", "~"), a tcell key
// name ("F5", "Enter", "PgDn", "Delete") or a control chord ("Ctrl-A").
func ParseKey(name string) (Key, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return RuneKey(r), nil
	}
	lower := strings.ToLower(name)
	if lower == "space" {
		return RuneKey(' '), nil
	}
	if code, ok := keysByName[lower]; ok {
		return SpecialKey(code), nil
	}
	return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// Keymap decodes key presses into actions.
type Keymap struct {
	actions map[Key]Action
	keys    [actionCount][]Key
}

// DefaultKeymap returns the stock bindings.
func DefaultKeymap() *Keymap {
	km := &Keymap{actions: make(map[Key]Action)}
	for _, d := range defaultBindings {
		for _, k := range d.keys {
			km.add(d.action, k)
		}
	}
	return km
}

var defaultBindings = []struct {
	action Action
	keys   []Key
}{
	{ActionQuit, []Key{RuneKey('q')}},
	{ActionForceQuit, []Key{SpecialKey(tcell.KeyCtrlC)}},
	{ActionShowHelp, []Key{RuneKey('h'), RuneKey('?')}},
	{ActionMoveUp, []Key{SpecialKey(tcell.KeyUp), RuneKey('k')}},
	{ActionMoveDown, []Key{SpecialKey(tcell.KeyDown), RuneKey('j')}},
	{ActionNextPage, []Key{RuneKey('n'), SpecialKey(tcell.KeyPgDn)}},
	{ActionPrevPage, []Key{RuneKey('p'), SpecialKey(tcell.KeyPgUp)}},
	{ActionJumpToLine, []Key{RuneKey('g')}},
	{ActionSearch, []Key{RuneKey('/'), RuneKey('f')}},
	{ActionRename, []Key{SpecialKey(tcell.KeyF2), RuneKey('r')}},
	{ActionDelete, []Key{SpecialKey(tcell.KeyDelete), RuneKey('d')}},
	{ActionMkdir, []Key{RuneKey('m')}},
	{ActionTouch, []Key{RuneKey('t')}},
	{ActionReload, []Key{SpecialKey(tcell.KeyF5)}},
	{ActionRunCommand, []Key{RuneKey('x')}},
	{ActionGoUp, []Key{SpecialKey(tcell.KeyBackspace2), SpecialKey(tcell.KeyBackspace), SpecialKey(tcell.KeyLeft)}},
	{ActionOpen, []Key{SpecialKey(tcell.KeyEnter), SpecialKey(tcell.KeyRight)}},
	{ActionOpenTerminal, []Key{RuneKey('z')}},
	{ActionOpenLocation, []Key{RuneKey('l')}},
	{ActionCopyPath, []Key{SpecialKey(tcell.KeyCtrlA)}},
	{ActionGotoPath, []Key{SpecialKey(tcell.KeyCtrlG)}},
	{ActionGoHome, []Key{RuneKey('~')}},
	{ActionSuspend, []Key{SpecialKey(tcell.KeyCtrlZ)}},
}

func (km *Keymap) add(a Action, k Key) {
	if prev, ok := km.actions[k]; ok {
		km.keys[prev] = removeKey(km.keys[prev], k)
	}
	km.actions[k] = a
	km.keys[a] = append(km.keys[a], k)
}

func removeKey(keys []Key, k Key) []Key {
	out := keys[:0]
	for _, existing := range keys {
		if existing != k {
			out = append(out, existing)
		}
	}
	return out
}

// Bind applies an "action=key" override. Several keys may be given
// separated by '|'; they replace every key previously bound to the action.
func (km *Keymap) Bind(binding string) error {
	name, keyList, ok := strings.Cut(binding, "=")
	if !ok || strings.TrimSpace(keyList) == "" {
		return fmt.Errorf("%w: %q", ErrBadBinding, binding)
	}
	action, err := ParseAction(name)
	if err != nil {
		return err
	}

	var keys []Key
	for _, part := range strings.Split(keyList, "|") {
		k, err := ParseKey(part)
		if err != nil {
			return err
		}
		keys = append(keys, k)
	}

	for _, old := range km.keys[action] {
		delete(km.actions, old)
	}
	km.keys[action] = nil
	for _, k := range keys {
		km.add(action, k)
	}
	return nil
}

// Decode maps a key event to its action. Unbound keys give ActionNone.
func (km *Keymap) Decode(ev *tcell.EventKey) Action {
	if ev == nil {
		return ActionNone
	}
	k := SpecialKey(ev.Key())
	if ev.Key() == tcell.KeyRune {
		k = RuneKey(ev.Rune())
	}
	return km.actions[k]
}

// Binding lists the keys of one action.
type Binding struct {
	Action Action
	Keys   []string
}

// Bindings returns every bound action in declaration order.
func (km *Keymap) Bindings() []Binding {
	var out []Binding
	for a := ActionQuit; a < actionCount; a++ {
		if len(km.keys[a]) == 0 {
			continue
		}
		labels := make([]string, len(km.keys[a]))
		for i, k := range km.keys[a] {
			labels[i] = k.String()
		}
		out = append(out, Binding{Action: a, Keys: labels})
	}
	return out
}

// KeysFor returns the labels of the keys bound to a.
func (km *Keymap) KeysFor(a Action) []string {
	if a < 0 || a >= actionCount {
		return nil
	}
	labels := make([]string, len(km.keys[a]))
	for i, k := range km.keys[a] {
		labels[i] = k.String()
	}
	return labels
}
