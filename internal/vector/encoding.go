package vector

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/woozymasta/shp2geojson/internal/geo"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
)

// textDecoder picks the attribute decoder for a dataset from its .cpg companion.
// Without a code page file, valid UTF-8 is kept and anything else is read as Latin-1.
func textDecoder(base string) geo.TextDecoder {
	codePage, ok := readCodePage(base)
	if !ok {
		return fallbackDecoder(charmap.ISO8859_1)
	}

	enc, err := lookupEncoding(codePage)
	if err != nil {
		log.Warn().
			Err(err).
			Str("code_page", codePage).
			Str("dataset", base).
			Msg("Unknown code page, attribute text kept as is")

		return nil
	}

	if enc == encoding.Nop {
		return nil
	}

	return decoderFor(enc)
}

func readCodePage(base string) (string, bool) {
	for _, ext := range []string{".cpg", ".CPG"} {
		data, err := os.ReadFile(base + ext)
		if err != nil {
			continue
		}
		if cp := strings.TrimSpace(string(data)); cp != "" {
			return cp, true
		}
	}

	return "", false
}

// lookupEncoding resolves WHATWG labels plus the ESRI forms
// "1252", "ANSI 1252" and "88591".
func lookupEncoding(codePage string) (encoding.Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(codePage))
	name = strings.TrimSpace(strings.TrimPrefix(name, "ansi "))

	switch {
	case name == "utf8" || name == "65001":
		name = "utf-8"
	case strings.HasPrefix(name, "8859") && isDigits(name):
		name = "iso-8859-" + strings.TrimPrefix(name, "8859")
	case strings.HasPrefix(name, "iso8859") && isDigits(strings.TrimPrefix(name, "iso8859")):
		name = "iso-8859-" + strings.TrimPrefix(name, "iso8859")
	case isDigits(name):
		name = "windows-" + name
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("code page %q: %w", codePage, err)
	}

	if n, _ := htmlindex.Name(enc); n == "utf-8" {
		return encoding.Nop, nil
	}

	return enc, nil
}

func decoderFor(enc encoding.Encoding) geo.TextDecoder {
	return func(raw string) string {
		s, err := enc.NewDecoder().String(raw)
		if err != nil {
			return raw
		}
		return s
	}
}

func fallbackDecoder(enc encoding.Encoding) geo.TextDecoder {
	decode := decoderFor(enc)
	return func(raw string) string {
		if utf8.ValidString(raw) {
			return raw
		}
		return decode(raw)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
