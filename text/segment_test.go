package text

import "testing"

func TestSegmentTextEmpty(t *testing.T) {
	if got := SegmentText(""); got != nil {
		t.Errorf("SegmentText(\"\") = %v, want nil", got)
	}
}

func TestSegmentTextLTR(t *testing.T) {
	segments := SegmentText("hello world")
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1: %v", len(segments), segments)
	}
	s := segments[0]
	if s.Text != "hello world" || s.Start != 0 || s.End != len("hello world") {
		t.Errorf("segment = %+v, want full string", s)
	}
	if s.Direction != DirectionLTR || s.Level%2 != 0 {
		t.Errorf("direction = %v level %d, want LTR with even level", s.Direction, s.Level)
	}
}

func TestSegmentTextRTL(t *testing.T) {
	hebrew := "שלום"
	segments := SegmentText(hebrew)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1: %v", len(segments), segments)
	}
	if segments[0].Direction != DirectionRTL {
		t.Errorf("direction = %v, want RTL", segments[0].Direction)
	}
	if segments[0].Text != hebrew {
		t.Errorf("Text = %q, want %q", segments[0].Text, hebrew)
	}
}

func TestSegmentTextMixed(t *testing.T) {
	mixed := "abc שלום def"
	segments := SegmentText(mixed)
	if len(segments) < 3 {
		t.Fatalf("got %d segments, want at least 3: %v", len(segments), segments)
	}

	// Segments tile the string in order.
	pos := 0
	for i, s := range segments {
		if s.Start != pos {
			t.Errorf("segment %d starts at %d, want %d", i, s.Start, pos)
		}
		if s.Text != mixed[s.Start:s.End] {
			t.Errorf("segment %d Text %q does not match offsets [%d:%d]", i, s.Text, s.Start, s.End)
		}
		pos = s.End
	}
	if pos != len(mixed) {
		t.Errorf("segments end at %d, want %d", pos, len(mixed))
	}

	if segments[0].Direction != DirectionLTR {
		t.Errorf("first segment direction = %v, want LTR", segments[0].Direction)
	}
	sawRTL := false
	for _, s := range segments {
		if s.Direction == DirectionRTL {
			sawRTL = true
			if s.Level%2 != 1 {
				t.Errorf("RTL segment has even level %d", s.Level)
			}
		}
	}
	if !sawRTL {
		t.Error("no RTL segment found in mixed text")
	}
}

func TestParagraphDirection(t *testing.T) {
	tests := []struct {
		text string
		want Direction
	}{
		{"hello", DirectionLTR},
		{"שלום", DirectionRTL},
		{"", DirectionLTR},
		{"123 456", DirectionLTR},
	}
	for _, tt := range tests {
		if got := paragraphDirection(tt.text); got != tt.want {
			t.Errorf("paragraphDirection(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
