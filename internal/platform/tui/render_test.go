package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

func TestRenderScreenKeepsGeometry(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "plain")
	s.SetCell(2, 1, core.Cell{Rune: '◆', Color: core.ColorYellow, Attr: core.AttrReverse})
	s.SetCell(3, 1, core.Cell{Rune: '♥', Color: core.ColorPink, Attr: core.AttrBold | core.AttrBlink})
	s.DrawTextColored(0, 2, "gray", core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d has width %d, expected 12", i, w)
		}
	}
	if !strings.Contains(lines[1], "◆") || !strings.Contains(lines[1], "♥") {
		t.Errorf("styled runes missing from %q", lines[1])
	}
}

func TestCellStyleAttributes(t *testing.T) {
	style := cellStyle(core.ColorRed, core.AttrBold|core.AttrReverse)
	if !style.GetBold() || !style.GetReverse() || style.GetBlink() {
		t.Error("attributes not mapped onto the style")
	}

	plain := cellStyle(core.Color(200), core.AttrNone)
	if plain.GetBold() {
		t.Error("unknown color should fall back to the default style")
	}
}
