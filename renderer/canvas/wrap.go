package canvasrenderer

import (
	"math"
	"strings"
	"unicode"
)

// textLine 为折行后的一行，Width 与 advance 的单位一致。
type textLine struct {
	Content string
	Width   float64
}

// advanceFunc 返回一段文本的宽度。
type advanceFunc func(s string) float64

// wrapText 按 wrap 模式把 content 切分为行，width <= 0 表示不限宽。
//   - nowrap：只在显式换行处断行
//   - break-word：忽略空白，逐字符按宽度切分
//   - 其他：优先在空白处断行，单词超宽时在词内拆分
func wrapText(content string, width float64, advance advanceFunc, wrap string) []textLine {
	limit := width
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	if wrap == "nowrap" {
		parts := strings.Split(strings.ReplaceAll(content, "\r", ""), "\n")
		lines := make([]textLine, 0, len(parts))
		for _, p := range parts {
			lines = append(lines, textLine{Content: p, Width: advance(p)})
		}
		return lines
	}

	var lines []textLine
	var builder strings.Builder
	current := 0.0
	emit := func(force bool) {
		if builder.Len() == 0 {
			if force {
				lines = append(lines, textLine{})
			}
			return
		}
		lines = append(lines, textLine{Content: builder.String(), Width: current})
		builder.Reset()
		current = 0
	}
	push := func(s string, w float64) {
		if current > 0 && current+w > limit {
			emit(false)
		}
		builder.WriteString(s)
		current += w
		if current > limit {
			emit(false)
		}
	}

	if wrap == "break-word" {
		for _, r := range content {
			switch r {
			case '\r':
				continue
			case '\n':
				emit(true)
				continue
			}
			s := string(r)
			push(s, advance(s))
		}
		emit(true)
		return lines
	}

	for _, token := range tokenize(content) {
		if token == "\n" {
			emit(true)
			continue
		}
		w := advance(token)
		if w <= limit {
			push(token, w)
			continue
		}
		for _, chunk := range splitByWidth(token, limit, advance) {
			push(chunk, advance(chunk))
		}
	}
	emit(true)
	return lines
}

// tokenize 把文本切分为空白段与非空白段，显式换行单独成为 "\n"。
func tokenize(s string) []string {
	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}

	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			flush()
			tokens = append(tokens, "\n")
			lastWasSpace = false
			continue
		}
		isSpace := unicode.IsSpace(r)
		if builder.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

func splitByWidth(token string, limit float64, advance advanceFunc) []string {
	if limit <= 0 || limit == math.MaxFloat64 {
		return []string{token}
	}
	var parts []string
	var runes []rune
	for _, r := range token {
		runes = append(runes, r)
		if len(runes) > 1 && advance(string(runes)) > limit {
			parts = append(parts, string(runes[:len(runes)-1]))
			runes = runes[len(runes)-1:]
		}
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}
