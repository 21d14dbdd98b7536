package draw

import "testing"

func TestWindowType_EWMHString(t *testing.T) {
	tests := []struct {
		name string
		wt   WindowType
		want string
	}{
		{name: "dock", wt: WindowTypeDock, want: "_NET_WM_WINDOW_TYPE_DOCK"},
		{name: "menu", wt: WindowTypeMenu, want: "_NET_WM_WINDOW_TYPE_MENU"},
		{name: "normal", wt: WindowTypeNormal, want: "_NET_WM_WINDOW_TYPE_NORMAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.wt.EWMHString(); got != tt.want {
				t.Errorf("EWMHString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWindowType_EWMHStringBijective(t *testing.T) {
	seen := make(map[string]WindowType)
	for _, wt := range []WindowType{WindowTypeDock, WindowTypeMenu, WindowTypeNormal} {
		s := wt.EWMHString()
		if prev, ok := seen[s]; ok {
			t.Errorf("types %v and %v map to the same string %q", prev, wt, s)
		}
		seen[s] = wt
	}
}

func TestWindowType_String(t *testing.T) {
	tests := []struct {
		wt   WindowType
		want string
	}{
		{wt: WindowTypeDock, want: "dock"},
		{wt: WindowTypeMenu, want: "menu"},
		{wt: WindowTypeNormal, want: "normal"},
		{wt: WindowType(42), want: "unknown"},
	}

	for _, tt := range tests {
		if got := tt.wt.String(); got != tt.want {
			t.Errorf("WindowType(%d).String() = %q, want %q", int(tt.wt), got, tt.want)
		}
	}
}
