package envimage_test

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/bootenv-tools/mkenv/pkg/envimage"
)

// Property: pack(text) -> unpack() == text for well-formed variable text.
func TestProperty_RoundTrip(t *testing.T) {
	property := func(raw []byte, redundant bool) bool {
		text := variableText(raw)
		if len(text) == 0 {
			// An empty environment has no exact round trip: the sentinel
			// itself decodes as one blank line. Covered separately.
			return true
		}

		opts := envimage.EncodeOptions{}
		flagsSize := 0
		if redundant {
			opts.Flag = envimage.FlagActive
			flagsSize = 1
		}

		img, err := envimage.Encode(text, opts)
		if err != nil {
			t.Logf("encode failed: %v", err)
			return false
		}

		res, err := envimage.Decode(img, flagsSize)
		if err != nil {
			t.Logf("decode failed: %v", err)
			return false
		}

		return res.ChecksumOK && res.TerminatorFound && bytes.Equal(res.Text, text)
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// variableText maps arbitrary bytes onto printable newline-terminated
// lines. Blank lines are avoided: an empty variable is indistinguishable
// from the end-of-list sentinel, a limitation of the image format itself.
func variableText(raw []byte) []byte {
	text := make([]byte, 0, len(raw)+1)
	for _, b := range raw {
		if b%16 == 0 {
			if len(text) > 0 && text[len(text)-1] != '\n' {
				text = append(text, '\n')
			}
			continue
		}
		text = append(text, ' '+b%95)
	}
	if len(text) > 0 && text[len(text)-1] != '\n' {
		text = append(text, '\n')
	}
	return text
}
