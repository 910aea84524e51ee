package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"event-awards/internal/dto"
	"event-awards/internal/model"
	"event-awards/internal/summary"
)

// 调色板名称到终端颜色
var terminalColors = map[string]color.Attribute{
	"gray":   color.FgHiBlack,
	"red":    color.FgRed,
	"orange": color.FgHiRed,
	"amber":  color.FgYellow,
	"yellow": color.FgHiYellow,
	"green":  color.FgGreen,
	"blue":   color.FgBlue,
	"indigo": color.FgHiBlue,
	"purple": color.FgMagenta,
	"pink":   color.FgHiMagenta,
}

func setNoColor(disabled bool) {
	if disabled {
		color.NoColor = true
	}
}

// swatch 按类别颜色标记着色，未知标记与 gray 相同
func swatch(token, text string) string {
	attr := terminalColors[summary.ResolveColor(token).Name]
	return color.New(attr).Sprint(text)
}

func colorizeStatus(status string) string {
	upper := strings.ToUpper(status)
	switch status {
	case model.AwardStatusApproved:
		return color.New(color.FgHiGreen).Sprintf("✓ %s", upper)
	case model.AwardStatusPending:
		return color.New(color.FgYellow).Sprint(upper)
	case model.AwardStatusRejected:
		return color.New(color.FgRed).Sprint(upper)
	default:
		return upper
	}
}

func heading(text string) string {
	return color.New(color.Bold).Sprint(text)
}

func dim(text string) string {
	return color.New(color.FgHiBlack).Sprint(text)
}

// colorBar 形如 "●●● blue ● red"
func colorBar(colors []dto.ColorCount) string {
	parts := make([]string, 0, len(colors))
	for _, c := range colors {
		parts = append(parts, swatch(c.Color, strings.Repeat("●", c.Count))+" "+c.Color)
	}
	return strings.Join(parts, "  ")
}

func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
