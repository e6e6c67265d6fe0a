// Package metadata 从音频文件内嵌标签中尽力提取元数据.
// 提取失败不视为致命错误，调用方应降级处理.
package metadata

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhowden/tag"
)

// TrackMeta 探测结果，字段缺失时为零值.
type TrackMeta struct {
	Year     int
	Language string // 规范化后的英文语言名，未知时为空
	Picture  *Picture
}

// Picture 内嵌封面图.
type Picture struct {
	Ext      string // 不带点的扩展名，如 "jpg"
	MIMEType string
	Data     []byte
}

// languageNames ISO-639-2 代码到英文语言名的映射，覆盖常见语言.
var languageNames = map[string]string{
	"eng": "English",
	"zho": "Chinese",
	"chi": "Chinese",
	"jpn": "Japanese",
	"kor": "Korean",
	"fra": "French",
	"fre": "French",
	"deu": "German",
	"ger": "German",
	"spa": "Spanish",
	"ita": "Italian",
	"por": "Portuguese",
	"rus": "Russian",
	"ara": "Arabic",
	"hin": "Hindi",
	"nld": "Dutch",
	"dut": "Dutch",
	"swe": "Swedish",
	"nor": "Norwegian",
	"dan": "Danish",
	"fin": "Finnish",
	"pol": "Polish",
	"tur": "Turkish",
	"tha": "Thai",
	"vie": "Vietnamese",
	"ind": "Indonesian",
	"ukr": "Ukrainian",
	"ces": "Czech",
	"cze": "Czech",
	"ell": "Greek",
	"gre": "Greek",
	"heb": "Hebrew",
}

// LanguageName 将 ISO-639-2 语言代码规范化为英文语言名.
// 未知代码原样返回，空或占位值返回空串.
func LanguageName(code string) string {
	c := strings.ToLower(strings.TrimSpace(code))
	if c == "" || c == "und" || c == "xxx" {
		return ""
	}

	if name, ok := languageNames[c]; ok {
		return name
	}

	return code
}

// Probe 读取内嵌标签，提取年份、语言与封面.
// 不支持的格式或损坏的标签返回错误，由调用方决定降级策略.
func Probe(r io.ReadSeeker) (*TrackMeta, error) {
	m, err := tag.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("read tags: %w", err)
	}

	meta := &TrackMeta{
		Year:     m.Year(),
		Language: probeLanguage(m),
	}

	if pic := m.Picture(); pic != nil && len(pic.Data) > 0 {
		ext := strings.TrimPrefix(pic.Ext, ".")
		if ext == "" {
			ext = "jpg"
		}

		meta.Picture = &Picture{
			Ext:      ext,
			MIMEType: pic.MIMEType,
			Data:     pic.Data,
		}
	}

	return meta, nil
}

// probeLanguage 从原始帧中取语言标签（ID3v2 TLAN 帧）.
func probeLanguage(m tag.Metadata) string {
	raw := m.Raw()
	for _, key := range []string{"TLAN", "TLA", "language", "LANGUAGE"} {
		if v, ok := raw[key]; ok {
			if s, ok := v.(string); ok {
				return LanguageName(s)
			}
		}
	}

	return ""
}
