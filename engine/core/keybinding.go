package core

import "strings"

// chordMods are the modifiers that turn a printable press into a chord.
// Shift alone never does; its effect is already present in the text the
// platform delivers.
const chordMods = ModCtrl | ModAlt | ModSuper

// EncodeKeybinding turns one key press into a canonical token.
//
// Literal text with no chord modifier passes through untouched, so normal
// typing is never mangled into bracket notation. Everything else renders as
// <Mods-Name> with modifiers in the fixed order S, C, A, D. The platform may
// report the same press as both a key code and a text event in one frame;
// text wins, so exactly one token comes out.
//
// The second return is false when the press produces no token (no key and no
// text, or a modifier key pressed on its own).
func EncodeKeybinding(key Key, text string, mods Modifiers) (string, bool) {
	if key == KeyUnknown && text == "" {
		return "", false
	}

	if text != "" && mods&chordMods == 0 {
		if text == "<" {
			return "<lt>", true
		}
		return text, true
	}

	name, printable := keyName(key)
	if name == "" {
		if text == "" {
			// A modifier key by itself, or a key we have no name for.
			return "", false
		}
		// Chord modifier held, key code unnamed: the text is the key name.
		name, printable = text, true
	}

	if printable && mods&chordMods == 0 {
		// Printable key with no text event that frame (e.g. delivered only
		// as a key-down). Emit the plain character.
		if mods&ModShift != 0 {
			name = strings.ToUpper(name)
		}
		return name, true
	}

	var b strings.Builder
	b.WriteByte('<')
	if mods&ModShift != 0 && !printable {
		b.WriteString("S-")
	}
	if mods&ModCtrl != 0 {
		b.WriteString("C-")
	}
	if mods&ModAlt != 0 {
		b.WriteString("A-")
	}
	if mods&ModSuper != 0 {
		b.WriteString("D-")
	}
	if name == "<" {
		name = "lt"
	}
	b.WriteString(name)
	b.WriteByte('>')
	return b.String(), true
}
