package canvasrenderer

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/chartbox/fonts"
	"github.com/ByLCY/chartbox/layout"
)

type fontFamilyEntry struct {
	family *canvas.FontFamily
	style  canvas.FontStyle
}

// fontCache 按 name|src|style 缓存已加载的字体族，可在多个 Layer 间共享。
type fontCache struct {
	baseDir string
	blobs   map[string][]byte

	mu       sync.Mutex
	families map[string]*fontFamilyEntry
	fallback *canvas.FontFamily
}

func newFontCache(baseDir string, blobs map[string][]byte) *fontCache {
	return &fontCache{
		baseDir:  baseDir,
		blobs:    blobs,
		families: map[string]*fontFamilyEntry{},
	}
}

// face 返回字号为 sizePt（pt）的字体面。
func (fc *fontCache) face(font layout.FontResource, sizePt float64, col layout.Color) (*canvas.FontFace, error) {
	family, style, err := fc.family(font)
	if err != nil {
		return nil, err
	}
	return family.Face(sizePt, colorFromLayout(col), style, canvas.FontNormal), nil
}

func (fc *fontCache) family(font layout.FontResource) (*canvas.FontFamily, canvas.FontStyle, error) {
	key := fontCacheKey(font)
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if entry, ok := fc.families[key]; ok {
		return entry.family, entry.style, nil
	}

	style := parseFontStyle(font.Style)
	name := font.Name
	if name == "" {
		name = "Body"
	}
	family := canvas.NewFontFamily(name)
	data, err := fc.load(font, style)
	if err == nil {
		err = family.LoadFont(data, 0, style)
	}
	if err != nil {
		fallback, fbErr := fc.fallbackFamily()
		if fbErr != nil {
			return nil, canvas.FontRegular, err
		}
		fc.families[key] = &fontFamilyEntry{family: fallback, style: canvas.FontRegular}
		return fallback, canvas.FontRegular, nil
	}

	fc.families[key] = &fontFamilyEntry{family: family, style: style}
	return family, style, nil
}

// load 解析字体来源：空 src 按样式选择内置字体，embed: 读取内置字体，
// builtin: 读取注入的字体，其余视为文件路径。
func (fc *fontCache) load(font layout.FontResource, style canvas.FontStyle) ([]byte, error) {
	src := font.Src
	switch {
	case src == "":
		return fonts.Load(builtinFor(style))
	case strings.HasPrefix(src, "embed:"):
		return fonts.Load(src)
	case strings.HasPrefix(src, "built-in:"), strings.HasPrefix(src, "builtin:"):
		name := strings.TrimPrefix(strings.TrimPrefix(src, "built-in:"), "builtin:")
		if blob, ok := fc.blobs[name]; ok {
			return blob, nil
		}
		return nil, fmt.Errorf("找不到内置字体资源 builtin:%s", name)
	}
	path := src
	if !filepath.IsAbs(path) {
		if fc.baseDir == "" {
			return nil, fmt.Errorf("未指定资源目录时不允许使用相对字体路径：%s", src)
		}
		path = filepath.Join(fc.baseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", src, err)
	}
	return data, nil
}

// 调用方持有 fc.mu。
func (fc *fontCache) fallbackFamily() (*canvas.FontFamily, error) {
	if fc.fallback != nil {
		return fc.fallback, nil
	}
	data, err := fonts.Load(fonts.Default)
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily("chartbox-fallback")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, err
	}
	fc.fallback = family
	return family, nil
}

func builtinFor(style canvas.FontStyle) string {
	switch {
	case style&canvas.FontItalic != 0:
		return "sans-italic"
	case style&^canvas.FontItalic >= canvas.FontSemiBold:
		return "sans-bold"
	default:
		return fonts.Default
	}
}

func parseFontStyle(style string) canvas.FontStyle {
	if style == "" {
		return canvas.FontRegular
	}
	s := strings.ToLower(style)
	var result canvas.FontStyle
	switch {
	case strings.Contains(s, "black"):
		result = canvas.FontBlack
	case strings.Contains(s, "extrabold"):
		result = canvas.FontExtraBold
	case strings.Contains(s, "semibold"), strings.Contains(s, "demibold"):
		result = canvas.FontSemiBold
	case strings.Contains(s, "bold"):
		result = canvas.FontBold
	case strings.Contains(s, "medium"):
		result = canvas.FontMedium
	case strings.Contains(s, "light"):
		result = canvas.FontLight
	default:
		result = canvas.FontRegular
	}
	if strings.Contains(s, "italic") || strings.Contains(s, "oblique") {
		result |= canvas.FontItalic
	}
	return result
}

func fontCacheKey(font layout.FontResource) string {
	return fmt.Sprintf("%s|%s|%s", font.Name, font.Src, font.Style)
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, float64(c.A)/255.0)
}
