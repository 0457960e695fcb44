package gui

import "testing"

func TestUISizeTable(t *testing.T) {
	tests := []struct {
		size     UISize
		text     float32
		icon     float32
		checkbox float32
		button   float32
	}{
		{SizeSmall, 12, 14, 15, 25},
		{SizeMedium, 16, 20, 17, 35},
		{SizeLarge, 20, 30, 19, 45},
	}

	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			if got := tt.size.Text(); got != tt.text {
				t.Errorf("Text() = %v, want %v", got, tt.text)
			}
			if got := tt.size.Icon(); got != tt.icon {
				t.Errorf("Icon() = %v, want %v", got, tt.icon)
			}
			if got := tt.size.Checkbox(); got != tt.checkbox {
				t.Errorf("Checkbox() = %v, want %v", got, tt.checkbox)
			}
			if got := tt.size.Button(); got != tt.button {
				t.Errorf("Button() = %v, want %v", got, tt.button)
			}
			if got := tt.size.TopBar(); got != tt.button {
				t.Errorf("TopBar() = %v, want %v (same as button)", got, tt.button)
			}
		})
	}
}

func TestParseUISize(t *testing.T) {
	for _, s := range Sizes {
		got, err := ParseUISize(s.String())
		if err != nil {
			t.Fatalf("ParseUISize(%q): %v", s.String(), err)
		}
		if got != s {
			t.Errorf("ParseUISize(%q) = %v, want %v", s.String(), got, s)
		}
	}
	if _, err := ParseUISize("enormous"); err == nil {
		t.Error("expected error for unknown size")
	}
	got, err := ParseUISize("")
	if err != nil || got != SizeMedium {
		t.Errorf("empty size should default to medium, got %v, %v", got, err)
	}
}

func TestTurnSliderConstants(t *testing.T) {
	if TurnSliderMin != -5.0 || TurnSliderMax != 5.0 {
		t.Errorf("slider range = [%v, %v], want [-5, 5]", TurnSliderMin, TurnSliderMax)
	}
	if TurnSliderStep != 0.05 {
		t.Errorf("slider step = %v, want 0.05", TurnSliderStep)
	}
	if TurnSliderSpacing != 3 {
		t.Errorf("slider spacing = %v, want 3", TurnSliderSpacing)
	}
}

func TestInactiveColor(t *testing.T) {
	want := Color{0.6, 0.6, 0.6, 1}
	if InactiveColor != want {
		t.Errorf("InactiveColor = %v, want %v", InactiveColor, want)
	}
}

func TestSequenceInputFiltering(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		dropped int
	}{
		{"clean", "ATGC", "ATGC", 0},
		{"lowercase kept", "atgc", "atgc", 0},
		{"whitespace stripped", "AT GC\nAT", "ATGCAT", 3},
		{"non-bases stripped", "AXTZGQC", "ATGC", 3},
		{"empty", "", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q SequenceInput
			dropped := q.Set(tt.in)
			if q.Text() != tt.want {
				t.Errorf("Text() = %q, want %q", q.Text(), tt.want)
			}
			if dropped != tt.dropped {
				t.Errorf("dropped = %d, want %d", dropped, tt.dropped)
			}
		})
	}
}

func TestSequenceInputEmpty(t *testing.T) {
	var q SequenceInput
	if !q.IsEmpty() || q.Len() != 0 {
		t.Error("fresh input should be empty")
	}
	q.Set("ATG")
	if q.IsEmpty() || q.Len() != 3 {
		t.Errorf("after Set: IsEmpty=%v Len=%d", q.IsEmpty(), q.Len())
	}
}
