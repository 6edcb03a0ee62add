package tui

import (
	"fmt"
	"strings"

	"github.com/1broseidon/termgrid/internal/platform"
)

// previewHeight picks a canvas height matching the screen aspect ratio.
// Terminal cells are roughly twice as tall as they are wide.
func previewHeight(canvasW int, screen platform.ScreenSize) int {
	if screen.Width <= 0 {
		return 3
	}
	h := canvasW * screen.Height / screen.Width / 2
	if h < 3 {
		h = 3
	}
	return h
}

func summarizeRects(rects []platform.Rect) string {
	if len(rects) == 0 {
		return "no tiles"
	}

	minW, minH := rects[0].Width, rects[0].Height
	maxW, maxH := rects[0].Width, rects[0].Height
	for _, r := range rects[1:] {
		minW = min(minW, r.Width)
		minH = min(minH, r.Height)
		maxW = max(maxW, r.Width)
		maxH = max(maxH, r.Height)
	}

	if minW == maxW && minH == maxH {
		return fmt.Sprintf("%d tiles • %d×%d px each", len(rects), minW, minH)
	}
	return fmt.Sprintf("%d tiles • min %d×%d • max %d×%d", len(rects), minW, minH, maxW, maxH)
}

// renderASCIIPreview draws rects, given in screen pixels, onto a width×height
// character canvas framed by a double border.
func renderASCIIPreview(rects []platform.Rect, screen platform.ScreenSize, width, height int) []string {
	if width < 5 || height < 3 || screen.Width <= 0 || screen.Height <= 0 {
		return emptyCanvas(width, height)
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i, rect := range rects {
		drawTile(canvas, rect, i+1, screen.Width, screen.Height, width, height)
	}
	drawBorder(canvas, width, height)

	lines := make([]string, height)
	for i, row := range canvas {
		lines[i] = string(row)
	}
	return lines
}

func drawTile(canvas [][]rune, rect platform.Rect, num int, screenW, screenH, canvasW, canvasH int) {
	x1 := rect.X * canvasW / screenW
	y1 := rect.Y * canvasH / screenH
	x2 := (rect.X + rect.Width) * canvasW / screenW
	y2 := (rect.Y + rect.Height) * canvasH / screenH

	// Keep tiles inside the frame.
	x1 = max(x1, 1)
	y1 = max(y1, 1)
	x2 = min(x2, canvasW-2)
	y2 = min(y2, canvasH-2)

	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x <= x2; x++ {
		canvas[y1][x] = '─'
		canvas[y2][x] = '─'
	}
	for y := y1; y <= y2; y++ {
		canvas[y][x1] = '│'
		canvas[y][x2] = '│'
	}
	canvas[y1][x1] = '┌'
	canvas[y1][x2] = '┐'
	canvas[y2][x1] = '└'
	canvas[y2][x2] = '┘'

	centerY := (y1 + y2) / 2
	centerX := (x1 + x2) / 2
	if centerY > y1 && centerY < y2 {
		label := fmt.Sprintf("%d", num)
		startX := centerX - len(label)/2
		for i, r := range label {
			if startX+i > x1 && startX+i < x2 {
				canvas[centerY][startX+i] = r
			}
		}
	}
}

func drawBorder(canvas [][]rune, width, height int) {
	for x := 0; x < width; x++ {
		canvas[0][x] = '═'
		canvas[height-1][x] = '═'
	}
	for y := 0; y < height; y++ {
		canvas[y][0] = '║'
		canvas[y][width-1] = '║'
	}
	canvas[0][0] = '╔'
	canvas[0][width-1] = '╗'
	canvas[height-1][0] = '╚'
	canvas[height-1][width-1] = '╝'
}

func emptyCanvas(width, height int) []string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	lines := make([]string, height)
	empty := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = empty
	}
	return lines
}
