package draw

import (
	"errors"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestRootVisualType(t *testing.T) {
	tests := []struct {
		name    string
		screen  xproto.ScreenInfo
		wantErr bool
	}{
		{
			name: "true color match",
			screen: xproto.ScreenInfo{
				RootVisual: 0x21,
				AllowedDepths: []xproto.DepthInfo{{
					Depth: 24,
					Visuals: []xproto.VisualInfo{
						{VisualId: 0x20, Class: xproto.VisualClassStaticGray},
						{VisualId: 0x21, Class: xproto.VisualClassTrueColor},
					},
				}},
			},
		},
		{
			name: "direct color match",
			screen: xproto.ScreenInfo{
				RootVisual: 0x40,
				AllowedDepths: []xproto.DepthInfo{{
					Depth: 24,
					Visuals: []xproto.VisualInfo{
						{VisualId: 0x40, Class: xproto.VisualClassDirectColor},
					},
				}},
			},
		},
		{
			name: "unsupported class",
			screen: xproto.ScreenInfo{
				RootVisual: 0x21,
				AllowedDepths: []xproto.DepthInfo{{
					Depth: 8,
					Visuals: []xproto.VisualInfo{
						{VisualId: 0x21, Class: xproto.VisualClassPseudoColor},
					},
				}},
			},
			wantErr: true,
		},
		{
			name: "no matching visual",
			screen: xproto.ScreenInfo{
				RootVisual: 0x99,
				AllowedDepths: []xproto.DepthInfo{{
					Depth: 24,
					Visuals: []xproto.VisualInfo{
						{VisualId: 0x21, Class: xproto.VisualClassTrueColor},
					},
				}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := rootVisualType(&tt.screen)
			if tt.wantErr {
				if !errors.Is(err, ErrWindow) {
					t.Errorf("rootVisualType() = %v, want ErrWindow", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("rootVisualType() = %v", err)
			}
			if v.VisualId != tt.screen.RootVisual {
				t.Errorf("rootVisualType() picked visual %#x, want %#x", v.VisualId, tt.screen.RootVisual)
			}
		})
	}
}

func TestPutImageRows(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{name: "typical bar", width: 1920, want: putImageBudget / (1920 * 4)},
		{name: "tiny", width: 10, want: putImageBudget / 40},
		{name: "wider than budget", width: putImageBudget, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := putImageRows(tt.width)
			if got != tt.want {
				t.Errorf("putImageRows(%d) = %d, want %d", tt.width, got, tt.want)
			}
			if got*tt.width*4 > putImageBudget && got != 1 {
				t.Errorf("putImageRows(%d) = %d exceeds the request budget", tt.width, got)
			}
		})
	}
}

func TestBgrxRows(t *testing.T) {
	pm := NewPixmap(2, 3)
	pm.SetPixel(0, 1, ColorFromHex(0xFF0000))
	pm.SetPixel(1, 1, ColorFromHex(0x0000FF))

	// Rows 1..2 of a 2-wide pixmap: 2 rows of 8 bytes.
	out := bgrxRows(pm, 1, 2)
	if len(out) != 16 {
		t.Fatalf("len = %d, want 16", len(out))
	}

	// Red pixel becomes B=0, G=0, R=255, X=0.
	if out[0] != 0 || out[1] != 0 || out[2] != 255 || out[3] != 0 {
		t.Errorf("red pixel encoded as (%d, %d, %d, %d), want (0, 0, 255, 0)",
			out[0], out[1], out[2], out[3])
	}
	// Blue pixel becomes B=255, G=0, R=0, X=0.
	if out[4] != 255 || out[5] != 0 || out[6] != 0 || out[7] != 0 {
		t.Errorf("blue pixel encoded as (%d, %d, %d, %d), want (255, 0, 0, 0)",
			out[4], out[5], out[6], out[7])
	}
}
