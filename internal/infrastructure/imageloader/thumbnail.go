package imageloader

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const upperHalfBlock = "▀"

// Thumbnail renders img into width x height terminal cells. Each cell
// shows two vertical pixels. The image is center-cropped to fill the box.
func Thumbnail(img image.Image, width, height int) string {
	if img == nil || width <= 0 || height <= 0 {
		return ""
	}
	src := cropToAspect(img.Bounds(), width, height*2)
	if src.Empty() {
		return ""
	}

	rows := make([]string, height)
	var b strings.Builder
	for row := range height {
		b.Reset()
		for col := range width {
			top := sample(img, src, col, row*2, width, height*2)
			bottom := sample(img, src, col, row*2+1, width, height*2)
			b.WriteString(lipgloss.NewStyle().
				Foreground(top).
				Background(bottom).
				Render(upperHalfBlock))
		}
		rows[row] = b.String()
	}
	return strings.Join(rows, "\n")
}

// Placeholder renders a neutral block used while an image is missing,
// loading or failed.
func Placeholder(width, height int, color lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(color)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = style.Render(strings.Repeat("░", width))
	}
	mid := height / 2
	if width >= 3 {
		pad := (width - 1) / 2
		rows[mid] = style.Render(strings.Repeat("░", pad) + "▣" + strings.Repeat("░", width-pad-1))
	}
	return strings.Join(rows, "\n")
}

func cropToAspect(b image.Rectangle, w, h int) image.Rectangle {
	bw, bh := b.Dx(), b.Dy()
	if bw <= 0 || bh <= 0 {
		return image.Rectangle{}
	}
	// Compare bw/bh with w/h without floats.
	if bw*h > bh*w {
		newW := bh * w / h
		if newW < 1 {
			newW = 1
		}
		x0 := b.Min.X + (bw-newW)/2
		return image.Rect(x0, b.Min.Y, x0+newW, b.Max.Y)
	}
	newH := bw * h / w
	if newH < 1 {
		newH = 1
	}
	y0 := b.Min.Y + (bh-newH)/2
	return image.Rect(b.Min.X, y0, b.Max.X, y0+newH)
}

func sample(img image.Image, src image.Rectangle, x, y, w, h int) lipgloss.Color {
	sx := src.Min.X + x*src.Dx()/w
	sy := src.Min.Y + y*src.Dy()/h
	r, g, b, _ := img.At(sx, sy).RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
