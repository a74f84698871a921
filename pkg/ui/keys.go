package ui

// IsPrintableKey returns true if the key is a printable ASCII character.
// Selectors use it to decide which keys extend the filter query.
func IsPrintableKey(key string) bool {
	return len(key) == 1 && key[0] >= 32 && key[0] < 127
}

// Keys handled by the converter screen regardless of focus.
const (
	keyQuit      = "ctrl+c"
	keyNext      = "tab"
	keyPrev      = "shift+tab"
	keySwap      = "ctrl+x"
	keyCopy      = "ctrl+y"
	keyHelp      = "f1"
	keyEscape    = "esc"
	keyEnter     = "enter"
	keySpace     = " "
	keyUp        = "up"
	keyDown      = "down"
	keyBackspace = "backspace"
)
