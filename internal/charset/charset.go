// Package charset converts SIE file bytes to UTF-8.
//
// SIE files declared with #FORMAT PC8 are encoded in IBM code page 437.
package charset

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Names accepted by Decode.
const (
	CP437 = "cp437"
	UTF8  = "utf-8"
)

// Decode converts data from the named charset to UTF-8.
func Decode(data []byte, name string) ([]byte, error) {
	switch strings.ToLower(name) {
	case CP437, "pc8", "ibm437":
		out, err := charmap.CodePage437.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decoding cp437: %w", err)
		}
		return out, nil
	case UTF8, "utf8", "":
		return data, nil
	}
	return nil, fmt.Errorf("unsupported charset %q", name)
}

// Encode converts UTF-8 text to the named charset.
func Encode(text string, name string) ([]byte, error) {
	switch strings.ToLower(name) {
	case CP437, "pc8", "ibm437":
		out, err := charmap.CodePage437.NewEncoder().String(text)
		if err != nil {
			return nil, fmt.Errorf("encoding cp437: %w", err)
		}
		return []byte(out), nil
	case UTF8, "utf8", "":
		return []byte(text), nil
	}
	return nil, fmt.Errorf("unsupported charset %q", name)
}
