package normalize

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// RepairEncoding undoes the mojibake produced when UTF-8 bytes are
// decoded as Latin-1: every rune is folded back to its Latin-1 byte and
// the byte sequence is re-read as UTF-8. Residue that still isn't valid
// UTF-8 is dropped rather than failing the whole string. Text containing
// runes outside Latin-1 was never mangled and is returned unchanged.
func RepairEncoding(s string) string {
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return s
	}
	return strings.ToValidUTF8(string(b), "")
}
