package summary

import (
	"sort"
	"strings"

	"event-awards/internal/dto"
)

// DefaultColor 未知或缺失颜色标记的回退色
const DefaultColor = "gray"

// palette 类别颜色标记到展示色的固定映射
var palette = map[string]string{
	"gray":   "#6B7280",
	"red":    "#EF4444",
	"orange": "#F97316",
	"amber":  "#F59E0B",
	"yellow": "#EAB308",
	"green":  "#22C55E",
	"blue":   "#3B82F6",
	"indigo": "#6366F1",
	"purple": "#A855F7",
	"pink":   "#EC4899",
}

// Swatch 调色板中的一种颜色
type Swatch struct {
	Name string
	Hex  string
}

// ResolveColor 把任意颜色标记映射到调色板，未知标记回退为 gray
func ResolveColor(token string) Swatch {
	name := strings.ToLower(strings.TrimSpace(token))
	if hex, ok := palette[name]; ok {
		return Swatch{Name: name, Hex: hex}
	}
	return Swatch{Name: DefaultColor, Hex: palette[DefaultColor]}
}

// colorCounts 以颜色标记为键累计，输出按数量降序、标记升序
type colorCounts map[string]int

func (cc colorCounts) add(color string) { cc[color]++ }

func (cc colorCounts) list() []dto.ColorCount {
	out := make([]dto.ColorCount, 0, len(cc))
	for color, n := range cc {
		out = append(out, dto.ColorCount{Color: color, Hex: ResolveColor(color).Hex, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Color < out[j].Color
	})
	return out
}
