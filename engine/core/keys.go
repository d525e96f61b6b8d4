package core

// Key identifies a physical key, independent of the platform's keycode space.
type Key int

const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeySpace
	KeyMinus
	KeyEquals
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Modifier keys encode to no token on their own.
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
)

// Modifiers is the set of modifier keys held during a key press.
type Modifiers int

const (
	ModNone  Modifiers = 0
	ModShift Modifiers = 1 << 0
	ModCtrl  Modifiers = 1 << 1
	ModAlt   Modifiers = 1 << 2
	ModSuper Modifiers = 1 << 3
)

// keyNames maps each key to its token name and whether the name is the
// printable character the key produces on its own. Named (non-printable)
// keys always render in bracket notation.
var keyNames = map[Key]struct {
	name      string
	printable bool
}{
	KeyA: {"a", true}, KeyB: {"b", true}, KeyC: {"c", true}, KeyD: {"d", true},
	KeyE: {"e", true}, KeyF: {"f", true}, KeyG: {"g", true}, KeyH: {"h", true},
	KeyI: {"i", true}, KeyJ: {"j", true}, KeyK: {"k", true}, KeyL: {"l", true},
	KeyM: {"m", true}, KeyN: {"n", true}, KeyO: {"o", true}, KeyP: {"p", true},
	KeyQ: {"q", true}, KeyR: {"r", true}, KeyS: {"s", true}, KeyT: {"t", true},
	KeyU: {"u", true}, KeyV: {"v", true}, KeyW: {"w", true}, KeyX: {"x", true},
	KeyY: {"y", true}, KeyZ: {"z", true},

	Key0: {"0", true}, Key1: {"1", true}, Key2: {"2", true}, Key3: {"3", true},
	Key4: {"4", true}, Key5: {"5", true}, Key6: {"6", true}, Key7: {"7", true},
	Key8: {"8", true}, Key9: {"9", true},

	KeyMinus: {"-", true}, KeyEquals: {"=", true},
	KeyLeftBracket: {"[", true}, KeyRightBracket: {"]", true},
	KeyBackslash: {"\\", true}, KeySemicolon: {";", true},
	KeyApostrophe: {"'", true}, KeyGrave: {"`", true},
	KeyComma: {",", true}, KeyPeriod: {".", true}, KeySlash: {"/", true},

	KeySpace:     {"Space", false},
	KeyEscape:    {"Esc", false},
	KeyEnter:     {"Enter", false},
	KeyTab:       {"Tab", false},
	KeyBackspace: {"BS", false},
	KeyDelete:    {"Del", false},
	KeyInsert:    {"Insert", false},

	KeyUp: {"Up", false}, KeyDown: {"Down", false},
	KeyLeft: {"Left", false}, KeyRight: {"Right", false},
	KeyHome: {"Home", false}, KeyEnd: {"End", false},
	KeyPageUp: {"PageUp", false}, KeyPageDown: {"PageDown", false},

	KeyF1: {"F1", false}, KeyF2: {"F2", false}, KeyF3: {"F3", false},
	KeyF4: {"F4", false}, KeyF5: {"F5", false}, KeyF6: {"F6", false},
	KeyF7: {"F7", false}, KeyF8: {"F8", false}, KeyF9: {"F9", false},
	KeyF10: {"F10", false}, KeyF11: {"F11", false}, KeyF12: {"F12", false},
}

// keyName returns the token name for a key. Modifier keys and unknown keys
// have no name of their own.
func keyName(k Key) (name string, printable bool) {
	e, ok := keyNames[k]
	if !ok {
		return "", false
	}
	return e.name, e.printable
}
