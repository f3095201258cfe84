package breakdancer

import (
	"testing"

	"github.com/robrollback/metasv/internal/sv"
)

const delLine = "1 59257 5+1- 1 60164 0+5- DEL 862 99 5 nA|2:tB|1 0.56 BreakDancerMax-0.0.1 c4"

func TestParseRecord_Deletion(t *testing.T) {
	r, err := ParseRecord(delLine)
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}

	if r.Chrom1 != "1" {
		t.Errorf("Expected chr1 1, got %s", r.Chrom1)
	}
	if r.Pos1 != 59257 {
		t.Errorf("Expected pos1 59257, got %d", r.Pos1)
	}
	if r.Ori1 != "5+1-" {
		t.Errorf("Expected ori1 5+1-, got %s", r.Ori1)
	}
	if r.Chrom2 != "1" || r.Pos2 != 60164 {
		t.Errorf("Expected breakpoint 2 at 1:60164, got %s:%d", r.Chrom2, r.Pos2)
	}
	if r.SVType != "DEL" {
		t.Errorf("Expected sv_type DEL, got %s", r.SVType)
	}
	if r.SVLen != 862 {
		t.Errorf("Expected sv_len 862, got %d", r.SVLen)
	}
	if r.Score != 99.0 {
		t.Errorf("Expected score 99.0, got %f", r.Score)
	}
	if r.SupportingReadPairs != 5 {
		t.Errorf("Expected 5 supporting read pairs, got %d", r.SupportingReadPairs)
	}
	if len(r.ReadPairsPerLib) != 2 || r.ReadPairsPerLib["nA"] != 2 || r.ReadPairsPerLib["tB"] != 1 {
		t.Errorf("Expected library map {nA:2 tB:1}, got %v", r.ReadPairsPerLib)
	}
}

func TestParseLibCounts(t *testing.T) {
	tests := []struct {
		field string
		want  map[string]int64
	}{
		{"tB|10", map[string]int64{"tB": 10}},
		{"nA|2:tB|1", map[string]int64{"nA": 2, "tB": 1}},
		// A repeated library tag keeps the last count.
		{"nA|2:nA|7", map[string]int64{"nA": 7}},
	}

	for _, tt := range tests {
		got, err := parseLibCounts(tt.field)
		if err != nil {
			t.Fatalf("parseLibCounts(%q) failed: %v", tt.field, err)
		}
		if len(got) != len(tt.want) {
			t.Errorf("parseLibCounts(%q) = %v, want %v", tt.field, got, tt.want)
		}
		for lib, count := range tt.want {
			if got[lib] != count {
				t.Errorf("parseLibCounts(%q)[%s] = %d, want %d", tt.field, lib, got[lib], count)
			}
		}
	}
}

func TestParseRecord_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few fields", "1 59257 5+1- 1 60164 0+5- DEL 862 99 5"},
		{"non-numeric position", "1 abc 5+1- 1 60164 0+5- DEL 862 99 5 tB|1"},
		{"non-numeric score", "1 59257 5+1- 1 60164 0+5- DEL 862 xx 5 tB|1"},
		{"library group missing pipe", "1 59257 5+1- 1 60164 0+5- DEL 862 99 5 tB"},
		{"library count non-numeric", "1 59257 5+1- 1 60164 0+5- DEL 862 99 5 tB|x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRecord(tt.line); err == nil {
				t.Errorf("Expected parse error for %q", tt.line)
			}
		})
	}
}

func TestToSVInterval_Deletion(t *testing.T) {
	r, err := ParseRecord(delLine)
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}

	iv := r.ToSVInterval()
	if iv == nil {
		t.Fatal("Expected an interval for a DEL record")
	}
	if iv.Chrom != "1" {
		t.Errorf("Expected chrom 1, got %s", iv.Chrom)
	}
	if iv.Start != 59257 {
		t.Errorf("Expected start 59257, got %d", iv.Start)
	}
	if iv.End != 59257+862 {
		t.Errorf("Expected end %d, got %d", 59257+862, iv.End)
	}
	if iv.End-iv.Start != 862 {
		t.Errorf("Expected span == |sv_len| == 862, got %d", iv.End-iv.Start)
	}
	if iv.Type != sv.Del {
		t.Errorf("Expected type DEL, got %s", iv.Type)
	}
	if iv.CIPos == nil || iv.CIPos.Lower != 0 {
		t.Errorf("Expected cipos lower bound 0, got %+v", iv.CIPos)
	}
	if iv.CIPos.Upper != 60164-59257-862 {
		t.Errorf("Expected cipos upper %d, got %d", 60164-59257-862, iv.CIPos.Upper)
	}
	if iv.Native != r {
		t.Error("Expected the interval to reference its native record")
	}
}

func TestToSVInterval_Insertion(t *testing.T) {
	// BreakDancer reports insertion sizes as negative values.
	line := "1 62767 10+0- 1 63126 0+10- INS -13 36 10 NA|10 1.00 BreakDancerMini-0.0.1 q10"
	r, err := ParseRecord(line)
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}

	iv := r.ToSVInterval()
	if iv == nil {
		t.Fatal("Expected an interval for an INS record")
	}
	if !iv.IsPoint() || iv.Start != 62767 {
		t.Errorf("Expected point interval at 62767, got [%d, %d]", iv.Start, iv.End)
	}
	if iv.Type != sv.Ins {
		t.Errorf("Expected type INS, got %s", iv.Type)
	}
	if iv.Length != -13 {
		t.Errorf("Expected signed length -13, got %d", iv.Length)
	}
	if iv.CIPos == nil || iv.CIPos.Lower != 0 || iv.CIPos.Upper != 63126-62767 {
		t.Errorf("Expected cipos (0, %d), got %+v", 63126-62767, iv.CIPos)
	}
}

func TestToSVInterval_UnsupportedTypes(t *testing.T) {
	for _, svType := range []string{"CTX", "ITX", "INV", "Unknown"} {
		line := "1 10000 10+0- 2 20000 7+10- " + svType + " -296 99 10 tB|10 1.00 BreakDancerMax-0.0.1 t1"
		r, err := ParseRecord(line)
		if err != nil {
			t.Fatalf("ParseRecord failed for %s: %v", svType, err)
		}
		if iv := r.ToSVInterval(); iv != nil {
			t.Errorf("Expected no interval for %s record, got %+v", svType, iv)
		}
	}
}
