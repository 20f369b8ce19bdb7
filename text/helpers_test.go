package text

import (
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// bitmapFromRows builds a coverage bitmap from ASCII art: '#' is covered,
// anything else is empty. All rows must have equal length.
func bitmapFromRows(rows ...string) Bitmap {
	if len(rows) == 0 {
		return Bitmap{}
	}
	w, h := len(rows[0]), len(rows)
	pix := make([]byte, w*h)
	for y, row := range rows {
		for x := 0; x < w; x++ {
			if row[x] == '#' {
				pix[y*w+x] = 0xff
			}
		}
	}
	return Bitmap{Width: w, Height: h, Pix: pix}
}

// stubRasterizer serves canned bitmaps and counts Rasterize calls, so cache
// tests can observe whether a lookup did vectorization work.
type stubRasterizer struct {
	bitmaps map[rune]Bitmap
	advance float64
	calls   int
}

func (s *stubRasterizer) Rasterize(ch rune, resolution int) (Metrics, Bitmap) {
	s.calls++
	b := s.bitmaps[ch]
	return Metrics{
		Width:   b.Width,
		Height:  b.Height,
		Advance: s.advance + float64(b.Width),
	}, b
}

// solidSquare returns an n x n fully covered bitmap.
func solidSquare(n int) Bitmap {
	pix := make([]byte, n*n)
	for i := range pix {
		pix[i] = 0xff
	}
	return Bitmap{Width: n, Height: n, Pix: pix}
}

var (
	regularOnce   sync.Once
	regularSource *FontSource
	regularErr    error
)

// regularFont returns a shared FontSource for the embedded Go Regular face.
func regularFont(t *testing.T) *FontSource {
	t.Helper()
	regularOnce.Do(func() {
		regularSource, regularErr = NewFontSource(goregular.TTF)
	})
	if regularErr != nil {
		t.Fatalf("failed to load Go Regular: %v", regularErr)
	}
	return regularSource
}
