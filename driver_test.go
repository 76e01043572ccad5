package linebreak_test

import (
	"reflect"
	"testing"

	"github.com/lineforge/linebreak"
)

func TestLinebreakLocationsScenarios(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []linebreak.BreakEvent
	}{
		{
			"comma then newline",
			"hello,\ncruel world",
			[]linebreak.BreakEvent{
				{Kind: linebreak.BreakRequired, Index: 7},
				{Kind: linebreak.BreakAllowed, Index: 13},
			},
		},
		{
			"combining diaeresis has no internal boundary",
			"äb",
			nil,
		},
		{
			"CRLF is atomic",
			"\r\n",
			nil,
		},
		{
			"ZWJ anchors to a following watch emoji",
			"‍⌚",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := linebreak.LinebreakLocations(tt.text, nil)
			if err != nil {
				t.Fatalf("LinebreakLocations(%q) error: %v", tt.text, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LinebreakLocations(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestLinebreakLocationsEdgeCases(t *testing.T) {
	if got, err := linebreak.LinebreakLocations("", nil); err != nil || len(got) != 0 {
		t.Errorf("LinebreakLocations(\"\") = %v, %v, want empty, nil", got, err)
	}
	if got, err := linebreak.LinebreakLocations("x", nil); err != nil || len(got) != 0 {
		t.Errorf("LinebreakLocations(single rune) = %v, %v, want empty, nil", got, err)
	}
}

func TestLinebreakLocationsInvalidEncoding(t *testing.T) {
	_, err := linebreak.LinebreakLocations("ok\xff", nil)
	if err == nil {
		t.Fatal("expected an error for malformed UTF-8")
	}
	encErr, ok := err.(*linebreak.InvalidEncodingError)
	if !ok {
		t.Fatalf("error is not *InvalidEncodingError: %v", err)
	}
	if encErr.Offset != 2 {
		t.Errorf("Offset = %d, want 2", encErr.Offset)
	}
}

func TestApplyRequiredLinebreaks(t *testing.T) {
	got, err := linebreak.ApplyRequiredLinebreaks("hello,\nyou cruel, cruel world", nil)
	if err != nil {
		t.Fatalf("ApplyRequiredLinebreaks error: %v", err)
	}
	want := []string{"hello,", "you cruel, cruel world"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ApplyRequiredLinebreaks = %v, want %v", got, want)
	}
}

func TestApplyRequiredLinebreaksSuppressesTrailingEmptySegment(t *testing.T) {
	got, err := linebreak.ApplyRequiredLinebreaks("abc\n", nil)
	if err != nil {
		t.Fatalf("ApplyRequiredLinebreaks error: %v", err)
	}
	want := []string{"abc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ApplyRequiredLinebreaks(%q) = %v, want %v", "abc\n", got, want)
	}
}

func TestApplyRequiredLinebreaksEmptyText(t *testing.T) {
	got, err := linebreak.ApplyRequiredLinebreaks("", nil)
	if err != nil || len(got) != 0 {
		t.Errorf("ApplyRequiredLinebreaks(\"\") = %v, %v, want empty, nil", got, err)
	}
}

func TestIdentifyLinebreakPositions(t *testing.T) {
	got, err := linebreak.IdentifyLinebreakPositions("hello,\nyou cruel, cruel world", nil)
	if err != nil {
		t.Fatalf("IdentifyLinebreakPositions error: %v", err)
	}
	want := []linebreak.LineOffsets{
		{Line: "hello,", Offsets: nil},
		{Line: "you cruel, cruel world", Offsets: []int{4, 11, 17}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IdentifyLinebreakPositions = %+v, want %+v", got, want)
	}
}

func TestNumericTailoringKeepsExclamationAfterDigitRun(t *testing.T) {
	opts := &linebreak.Options{Rules: linebreak.NumericTailoring(linebreak.DefaultRuleSet())}

	// Under the numeric-aware tailoring, NumericLB13 prohibits a break
	// between a digit (NU) and a following "!" (EX), so "12!" has no
	// boundary between "2" and "!".
	events, err := linebreak.LinebreakLocations("12!", opts)
	if err != nil {
		t.Fatalf("LinebreakLocations error: %v", err)
	}
	for _, ev := range events {
		if ev.Index == 2 {
			t.Errorf("unexpected boundary inside the numeric-aware atomic run: %v", ev)
		}
	}
}

func TestRoundTripApplyRequiredLinebreaks(t *testing.T) {
	text := "hello,\nyou cruel, cruel world"
	lines, err := linebreak.ApplyRequiredLinebreaks(text, nil)
	if err != nil {
		t.Fatalf("ApplyRequiredLinebreaks error: %v", err)
	}
	rebuilt := ""
	for i, line := range lines {
		if i > 0 {
			rebuilt += "\n"
		}
		rebuilt += line
	}
	if rebuilt != text {
		t.Errorf("round-trip = %q, want %q", rebuilt, text)
	}
}
