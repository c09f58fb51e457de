// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"errors"
	"io"

	"github.com/danielhkuo/quickly-rank/models"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Layout in pixels
const (
	margin    = 12
	boxWidth  = 150
	boxHeight = 18
	columnGap = 30
	rowStep   = 22
	charWidth = 7 // basicfont.Face7x13
)

// Box fills
const (
	colorBackground = "#ffffff"
	colorEligible   = "#b7e4c7"
	colorConsumed   = "#e9ecef"
	colorEmpty      = "#ffffff"
	colorChampion   = "#ffd166"
	colorBorder     = "#495057"
	colorText       = "#212529"
)

var ErrEmptyBracket = errors.New("bracket has no slots")

// BracketPNG draws the bracket as a PNG. Each round depth is a column and
// each slot sits on the row of its index, so a match slot lands halfway
// between the two slots that feed it.
func BracketPNG(w io.Writer, state models.TournamentState) error {
	if len(state.Slots) == 0 {
		return ErrEmptyBracket
	}

	width := 2*margin + (state.Depth+1)*boxWidth + state.Depth*columnGap
	height := 2*margin + (len(state.Slots)-1)*rowStep + boxHeight

	dc := gg.NewContext(width, height)
	dc.SetHexColor(colorBackground)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetLineWidth(1)

	for i, slot := range state.Slots {
		if slot.Blank || slot.Sibling < 0 {
			continue
		}
		// Connector into the parent match slot
		parent := state.Slots[(i+slot.Sibling)/2]
		x1, y1 := slotOrigin(slot)
		x2, y2 := slotOrigin(parent)
		midX := x1 + boxWidth + columnGap/2
		dc.SetHexColor(colorBorder)
		dc.DrawLine(x1+boxWidth, y1+boxHeight/2, midX, y1+boxHeight/2)
		dc.DrawLine(midX, y1+boxHeight/2, midX, y2+boxHeight/2)
		dc.DrawLine(midX, y2+boxHeight/2, x2, y2+boxHeight/2)
		dc.Stroke()
	}

	for _, slot := range state.Slots {
		if slot.Blank {
			continue
		}
		drawSlot(dc, slot, slot.Sibling < 0)
	}

	return dc.EncodePNG(w)
}

func drawSlot(dc *gg.Context, slot models.SlotView, root bool) {
	x, y := slotOrigin(slot)

	dc.DrawRectangle(x, y, boxWidth, boxHeight)
	dc.SetHexColor(fillFor(slot, root))
	dc.FillPreserve()
	dc.SetHexColor(colorBorder)
	dc.Stroke()

	if slot.Name == "" {
		return
	}
	dc.SetHexColor(colorText)
	dc.DrawStringAnchored(truncate(slot.Name, (boxWidth-8)/charWidth), x+4, y+boxHeight/2, 0, 0.35)
}

func fillFor(slot models.SlotView, root bool) string {
	switch {
	case root && slot.Eligible:
		return colorChampion
	case slot.Eligible:
		return colorEligible
	case slot.ItemID != "":
		return colorConsumed
	default:
		return colorEmpty
	}
}

func slotOrigin(slot models.SlotView) (x, y float64) {
	x = float64(margin + slot.Depth*(boxWidth+columnGap))
	y = float64(margin + slot.Index*rowStep)
	return x, y
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
