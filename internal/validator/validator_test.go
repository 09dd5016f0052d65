package validator

import (
	"context"
	"strings"
	"testing"

	"svw.info/sudokuweb/internal/domain"
)

func TestCheckGridRejectsOutOfRangeDigit(t *testing.T) {
	var b domain.Board
	b.Values[4][6] = 12
	err := New().CheckGrid(&b)
	if err == nil {
		t.Fatal("digit 12 must be rejected")
	}
	if !strings.Contains(err.Error(), "(4,6)") {
		t.Fatalf("error should name the offending cell: %v", err)
	}
}

func TestCheckGridAcceptsValidRange(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 9
	b.Values[8][8] = 1
	if err := New().CheckGrid(&b); err != nil {
		t.Fatalf("valid grid rejected: %v", err)
	}
}

func TestValidateFindsConflicts(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 7
	b.Values[0][5] = 7 // row conflict
	b.Values[3][2] = 4
	b.Values[7][2] = 4 // column conflict

	ok, conf, err := New().Validate(context.Background(), &b)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok {
		t.Fatal("conflicting board reported valid")
	}
	if len(conf) == 0 {
		t.Fatal("no conflicts reported")
	}
}

func TestValidateEmptyBoardIsClean(t *testing.T) {
	var b domain.Board
	ok, conf, err := New().Validate(context.Background(), &b)
	if err != nil || !ok || len(conf) != 0 {
		t.Fatalf("empty board should validate cleanly: ok=%v conf=%v err=%v", ok, conf, err)
	}
}

func TestValidateBlockConflict(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 2
	b.Values[1][1] = 2 // same block, different row and column

	ok, conf, err := New().Validate(context.Background(), &b)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok || len(conf) == 0 {
		t.Fatal("block duplicate not detected")
	}
}
