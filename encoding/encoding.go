// Package encoding maps XML encoding declarations to the
// golang.org/x/text encodings that implement them. Part of the reason
// this exists is that package names such as "unicode" clash with the
// stdlib, and it's rather easier if we just hide all of that from the
// rest of the module.
package encoding

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

var encodings = map[string]enc.Encoding{
	"utf8":         unicode.UTF8,
	"utf-8":        unicode.UTF8,
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"euc-jp":       japanese.EUCJP,
	"shift_jis":    japanese.ShiftJIS,
	"shift-jis":    japanese.ShiftJIS,
	"cp932":        japanese.ShiftJIS,
	"iso-2022-jp":  japanese.ISO2022JP,
	"euc-kr":       korean.EUCKR,
	"big5":         traditionalchinese.Big5,
	"gbk":          simplifiedchinese.GBK,
	"gb18030":      simplifiedchinese.GB18030,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-2":   charmap.ISO8859_2,
	"iso-8859-3":   charmap.ISO8859_3,
	"iso-8859-4":   charmap.ISO8859_4,
	"iso-8859-5":   charmap.ISO8859_5,
	"iso-8859-6":   charmap.ISO8859_6,
	"iso-8859-7":   charmap.ISO8859_7,
	"iso-8859-8":   charmap.ISO8859_8,
	"iso-8859-15":  charmap.ISO8859_15,
	"koi8-r":       charmap.KOI8R,
	"koi8-u":       charmap.KOI8U,
	"windows-1250": charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"windows-1253": charmap.Windows1253,
	"windows-1254": charmap.Windows1254,
	"windows-1255": charmap.Windows1255,
	"windows-1256": charmap.Windows1256,
	"windows-1257": charmap.Windows1257,
	"windows-1258": charmap.Windows1258,
	"windows-874":  charmap.Windows874,
}

// Load returns the Encoding registered under name, or nil if name is
// unknown. Lookup is case-insensitive.
func Load(name string) enc.Encoding {
	return encodings[strings.ToLower(name)]
}

// NewReader wraps r so that text in the named encoding comes out as
// UTF-8. Its signature matches what encoding/xml expects for a
// Decoder's CharsetReader.
func NewReader(name string, r io.Reader) (io.Reader, error) {
	e := Load(name)
	if e == nil {
		return nil, errors.Errorf("unsupported charset %q", name)
	}
	return e.NewDecoder().Reader(r), nil
}
