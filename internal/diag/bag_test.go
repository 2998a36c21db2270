package diag_test

import (
	"testing"

	"graphite/internal/diag"
	"graphite/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	bag := diag.NewBag(2)
	if !bag.Add(diag.NewError(diag.SynInvalidSyntax, sp(0, 1), "one")) {
		t.Fatal("first add must succeed")
	}
	if !bag.Add(diag.NewError(diag.SynInvalidSyntax, sp(1, 2), "two")) {
		t.Fatal("second add must succeed")
	}
	if bag.Add(diag.NewError(diag.SynInvalidSyntax, sp(2, 3), "three")) {
		t.Fatal("third add must be rejected by the limit")
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", bag.Len())
	}
}

func TestBagSortAndSeverity(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevWarning, diag.LexUnterminatedString, sp(5, 6), "later warning"))
	bag.Add(diag.NewError(diag.SynExpectExpression, sp(0, 1), "early error"))

	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Fatal("expected both errors and warnings present")
	}

	bag.Sort()
	items := bag.Items()
	if items[0].Message != "early error" {
		t.Fatalf("expected span order after sort, got %q first", items[0].Message)
	}
}

func TestBagDedup(t *testing.T) {
	bag := diag.NewBag(10)
	d := diag.NewError(diag.EvalNameError, sp(3, 4), "variable \"q\" not defined")
	bag.Add(d)
	bag.Add(d)
	bag.Dedup()
	if bag.Len() != 1 {
		t.Fatalf("expected 1 item after dedup, got %d", bag.Len())
	}
}

func TestCodeID(t *testing.T) {
	cases := []struct {
		code diag.Code
		want string
	}{
		{diag.LexUnterminatedString, "LEX1001"},
		{diag.SynUnexpectedToken, "SYN2001"},
		{diag.EvalNameError, "EVL3001"},
		{diag.IOReadFailed, "IO4001"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Errorf("ID(%d): expected %q, got %q", tc.code, tc.want, got)
		}
	}
}
