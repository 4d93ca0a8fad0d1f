package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "es-qwerty":
		return esQwertyTemplate, nil
	default:
		return "", fmt.Errorf("unknown layout template: %s", name)
	}
}

func WriteTemplate(path, name string, overwrite bool) error {
	template, err := Template(name)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("layout file already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o644)
}

// Spanish (Spain) QWERTY. Map slots are either a character or a raw
// byte code; 96 is the grave accent, control keys use their codes.
const esQwertyTemplate = `name = "ES-QWERTY"

normal = [
    27, "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", " ", "¡", 8,      # 0x00-0x0D
    9, "q", "w", "e", "r", "t", "y", "u", "i", "o", "p", 96, "+", 10,       # 0x0E-0x1B
    0, "a", "s", "d", "f", "g", "h", "j", "k", "l", "ñ", "´", "ç",          # 0x1C-0x28
    0, "<", "z", "x", "c", "v", "b", "n", "m", ",", ".", "-", 0,            # 0x29-0x35
    "*", 0, " ", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, "7",                   # 0x36-0x45
    "8", "9", "-", "4", "5", "6", "+", "1", "2", "3", "0", ".", 0, 0, 0, 0, # 0x46-0x55 keypad
]

shift = [
    27, "!", "\"", "·", "$", "%", "&", "/", "(", ")", "=", "?", "¿", 8,     # 0x00-0x0D
    9, "Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "^", "*", 10,      # 0x0E-0x1B
    0, "A", "S", "D", "F", "G", "H", "J", "K", "L", "Ñ", "¨", "Ç",          # 0x1C-0x28
    0, ">", "Z", "X", "C", "V", "B", "N", "M", ";", ":", "_", 0,            # 0x29-0x35
    "*", 0, " ", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, "7",                   # 0x36-0x45
    "8", "9", "-", "4", "5", "6", "+", "1", "2", "3", "0", ".", 0, 0, 0, 0, # 0x46-0x55 keypad
]

altgr = [
    0, 27, "|", "@", "#", "~", 0, 0, "{", "[", "]", "}", "\\", "|", 8,      # 0x00-0x0E
    9, 0, 0, "€", 0, 0, 0, 0, 0, 0, 0, "[", "]", 10,                        # 0x0F-0x1C
    0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, "{", "}",                              # 0x1D-0x29
    0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,                                  # 0x2A-0x36
    "*", 0, " ", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, "7",                   # 0x37-0x46
    "8", "9", "-", "4", "5", "6", "+", "1", "2", "3", "0", ".", 0, 0, 0, 0, # 0x47-0x56 keypad
]
`
