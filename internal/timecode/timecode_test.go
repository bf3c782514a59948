package timecode

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Timecode
	}{
		{"zero", "00:00:00", Timecode{0, 0, 0}},
		{"typical", "05:12:55", Timecode{5, 12, 55}},
		{"last frame", "00:00:74", Timecode{0, 0, 74}},
		{"minutes beyond two digits", "123:45:10", Timecode{123, 45, 10}},
		{"overflow frames roll into seconds", "00:00:80", Timecode{0, 1, 5}},
		{"overflow seconds roll into minutes", "00:61:00", Timecode{1, 1, 0}},
		{"overflow cascades", "00:59:99", Timecode{1, 0, 24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{
		"",
		"00:00",
		"1:2:3",
		"00:00:00:00",
		"aa:bb:cc",
		"-1:00:00",
		"00:00:07.5",
		"00 00 00",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", input)
			}
			if _, ok := err.(*Error); !ok {
				t.Errorf("Parse(%q) error type = %T, want *Error", input, err)
			}
		})
	}
}

func TestMilliseconds(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"00:00:00", 0},
		{"00:00:01", 13},    // 1/75 s = 13.33 ms
		{"00:00:74", 987},   // 74/75 s = 986.67 ms, rounds up
		{"00:01:00", 1000},  // exactly one second
		{"01:00:00", 60000}, // exactly one minute
		{"05:12:55", 312733},
		{"12:34:56", 754747},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tc, err := Parse(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if got := tc.Milliseconds(); got != tt.want {
				t.Errorf("Milliseconds() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Every canonical timecode must survive a trip through milliseconds.
	// Sweep the first few seconds frame by frame, plus coarse minute steps.
	for minutes := 0; minutes <= 130; minutes += 13 {
		for seconds := 0; seconds < 60; seconds += 7 {
			for frames := 0; frames < FramesPerSecond; frames++ {
				tc := Timecode{Minutes: minutes, Seconds: seconds, Frames: frames}
				got := FromMilliseconds(tc.Milliseconds())
				if got != tc {
					t.Fatalf("round trip %v -> %d ms -> %v", tc, tc.Milliseconds(), got)
				}
			}
		}
	}
}

func TestFromMilliseconds(t *testing.T) {
	tests := []struct {
		ms   int64
		want Timecode
	}{
		{0, Timecode{0, 0, 0}},
		{987, Timecode{0, 0, 74}},
		{1000, Timecode{0, 1, 0}},
		{7205200, Timecode{120, 5, 15}},
		{-5, Timecode{0, 0, 0}},
	}

	for _, tt := range tests {
		if got := FromMilliseconds(tt.ms); got != tt.want {
			t.Errorf("FromMilliseconds(%d) = %v, want %v", tt.ms, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		tc   Timecode
		want string
	}{
		{Timecode{0, 0, 0}, "00:00:00"},
		{Timecode{5, 12, 55}, "05:12:55"},
		{Timecode{123, 4, 5}, "123:04:05"},
	}

	for _, tt := range tests {
		if got := tt.tc.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestClockString(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "00:00:00.000"},
		{312550, "00:05:12.550"},
		{7205200, "02:00:05.200"},
		{3600000, "01:00:00.000"},
		{86399999, "23:59:59.999"},
	}

	for _, tt := range tests {
		if got := ClockString(tt.ms); got != tt.want {
			t.Errorf("ClockString(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestError_Error(t *testing.T) {
	err := &Error{Text: "00-00-00", Reason: "must be MM:SS:FF"}
	want := `invalid timecode "00-00-00": must be MM:SS:FF`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
