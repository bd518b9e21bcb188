package utils

import (
	"bytes"
	"fmt"
	"math/rand"

	svg "github.com/ajstarks/svgo"
)

func randomColor() string {
	// avoid colors too dark to read
	return fmt.Sprintf("#%02x%02x%02x",
		rand.Intn(156)+100,
		rand.Intn(156)+100,
		rand.Intn(156)+100)
}

// GenerateSVG renders a 4-digit SVG captcha and returns the image with the
// expected code.
func GenerateSVG(width, height int) ([]byte, string) {
	code := RandomDigits(4)

	var svgContent bytes.Buffer
	canvas := svg.New(&svgContent)
	canvas.Start(width, height)

	canvas.Rect(0, 0, width, height, "fill:white")

	// noise lines
	for i := 0; i < 6; i++ {
		x1 := rand.Intn(width)
		y1 := rand.Intn(height)
		x2 := rand.Intn(width)
		y2 := rand.Intn(height)
		canvas.Line(x1, y1, x2, y2,
			fmt.Sprintf("stroke:%s;stroke-width:1", randomColor()))
	}

	// noise dots
	for i := 0; i < 30; i++ {
		x := rand.Intn(width)
		y := rand.Intn(height)
		canvas.Circle(x, y, 1, fmt.Sprintf("fill:%s", randomColor()))
	}

	charWidth := width / 5
	for i, char := range code {
		x := charWidth * (i + 1)
		y := height/2 + rand.Intn(10) - 5
		rotate := rand.Intn(30) - 15
		canvas.Text(x, y, string(char),
			fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:%s;transform:rotate(%d,%d,%d)",
				height/2, randomColor(), rotate, x, y))
	}

	canvas.End()
	return svgContent.Bytes(), code
}
