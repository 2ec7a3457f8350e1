package fetch

import (
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// DetectAndDecode converts data to a UTF-8 string, preferring the
// Content-Type header's charset parameter, then chardet's best guess, and
// finally falling back to treating data as already UTF-8.
func DetectAndDecode(data []byte, contentType string) string {
	if enc := encodingFromContentType(contentType); enc != nil {
		if decoded, err := enc.NewDecoder().Bytes(data); err == nil {
			return string(decoded)
		}
	}

	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result.Confidence < 80 {
		return string(data)
	}

	enc := encodingByName(result.Charset)
	if enc == nil {
		return string(data)
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}

func encodingFromContentType(contentType string) encoding.Encoding {
	if contentType == "" {
		return nil
	}
	for _, part := range strings.Split(contentType, ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(strings.ToLower(part), "charset=") {
			charset := strings.Trim(strings.TrimPrefix(strings.ToLower(part), "charset="), `"'`)
			return encodingByName(charset)
		}
	}
	return nil
}

func encodingByName(charset string) encoding.Encoding {
	charset = strings.ReplaceAll(strings.ToLower(charset), "_", "-")
	switch charset {
	case "utf-8", "utf8":
		return unicode.UTF8
	case "utf-16", "utf16", "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1
	case "iso-8859-2", "latin2":
		return charmap.ISO8859_2
	case "iso-8859-15", "latin9":
		return charmap.ISO8859_15
	case "windows-1250", "cp1250":
		return charmap.Windows1250
	case "windows-1251", "cp1251":
		return charmap.Windows1251
	case "windows-1252", "cp1252":
		return charmap.Windows1252
	case "shift-jis", "shift_jis", "sjis":
		return japanese.ShiftJIS
	case "euc-jp", "eucjp":
		return japanese.EUCJP
	case "euc-kr", "euckr":
		return korean.EUCKR
	case "gb2312", "gb-2312", "gbk":
		return simplifiedchinese.GBK
	default:
		return nil
	}
}
