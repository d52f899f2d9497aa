package cli

import (
	"errors"
	"testing"
)

func TestParseSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		count     int
		wantIndex int
		wantSkip  bool
		wantErr   error
	}{
		{name: "empty line skips", line: "", count: 3, wantSkip: true},
		{name: "whitespace only skips", line: "  \t", count: 3, wantSkip: true},
		{name: "first row", line: "1", count: 3, wantIndex: 1},
		{name: "last row", line: "3", count: 3, wantIndex: 3},
		{name: "surrounding whitespace accepted", line: " 2 ", count: 3, wantIndex: 2},
		{name: "not a number", line: "abc", count: 3, wantErr: ErrNotANumber},
		{name: "float rejected", line: "1.5", count: 3, wantErr: ErrNotANumber},
		{name: "zero out of range", line: "0", count: 3, wantErr: &OutOfRangeError{Count: 3}},
		{name: "past end out of range", line: "4", count: 3, wantErr: &OutOfRangeError{Count: 3}},
		{name: "negative out of range", line: "-1", count: 3, wantErr: &OutOfRangeError{Count: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			index, skip, err := ParseSelection(tt.line, tt.count)

			if skip != tt.wantSkip {
				t.Errorf("skip = %v, want %v", skip, tt.wantSkip)
			}

			if index != tt.wantIndex {
				t.Errorf("index = %d, want %d", index, tt.wantIndex)
			}

			switch want := tt.wantErr.(type) {
			case nil:
				if err != nil {
					t.Errorf("err = %v, want nil", err)
				}
			case *OutOfRangeError:
				var oor *OutOfRangeError
				if !errors.As(err, &oor) {
					t.Fatalf("err = %v, want OutOfRangeError", err)
				}

				if oor.Count != want.Count {
					t.Errorf("Count = %d, want %d", oor.Count, want.Count)
				}
			default:
				if !errors.Is(err, want) {
					t.Errorf("err = %v, want %v", err, want)
				}
			}
		})
	}
}
