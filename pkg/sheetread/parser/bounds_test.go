package parser

import (
	"testing"

	"github.com/ukaji3/sheetdump-go/pkg/sheetread/models"
)

func TestBoundsTracker(t *testing.T) {
	var bt BoundsTracker
	if bt.Range() != nil {
		t.Fatalf("Expected nil range before any data, got %+v", bt.Range())
	}

	bt.Add(1, nil)
	bt.Add(2, []string{"", "x"})
	bt.Add(3, []string{"", "", ""})
	bt.Add(4, []string{"", "", "", "y"})

	expected := models.Range{R1: 2, C1: 2, R2: 4, C2: 4}
	if r := bt.Range(); r == nil || *r != expected {
		t.Errorf("Expected %+v, got %+v", expected, r)
	}
}

func TestBoundsTrackerBlankRows(t *testing.T) {
	var bt BoundsTracker
	bt.Add(1, []string{"", ""})
	bt.Add(2, nil)
	if r := bt.Range(); r != nil {
		t.Errorf("Expected nil range for blank rows, got %+v", r)
	}
}
