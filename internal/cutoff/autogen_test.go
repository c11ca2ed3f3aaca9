package cutoff

import "testing"

func TestAutoGenerateOrdersByDistance(t *testing.T) {
	t.Parallel()
	d := NewDataset([]Record{
		{Year: "2024", Round: "1", Institute: "A College", InstituteCode: "E001", Course: "CS", Category: "GM", CutoffRank: 12000},
		{Year: "2024", Round: "1", Institute: "B College", InstituteCode: "E002", Course: "CS", Category: "GM", CutoffRank: 10500},
		{Year: "2024", Round: "1", Institute: "C College", InstituteCode: "E003", Course: "EC", Category: "GM", CutoffRank: 11000},
		// Below the candidate's rank, unreachable.
		{Year: "2024", Round: "1", Institute: "D College", InstituteCode: "E004", Course: "CS", Category: "GM", CutoffRank: 5000},
		// Wrong category.
		{Year: "2024", Round: "1", Institute: "E College", InstituteCode: "E005", Course: "CS", Category: "2AG", CutoffRank: 10200},
	}, Metadata{})

	got := AutoGenerate(d, 10000, "GM", []string{"CS", "EC"})
	want := []struct {
		code   string
		course string
		cutoff int
	}{
		{"E002", "CS", 10500},
		{"E003", "EC", 11000},
		{"E001", "CS", 12000},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d seeds, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].InstituteCode != w.code || got[i].Course != w.course || got[i].CutoffRank != w.cutoff {
			t.Errorf("seed[%d] = %+v, want %+v", i, got[i], w)
		}
	}
}

func TestAutoGenerateKeepsMinPerPair(t *testing.T) {
	t.Parallel()
	d := NewDataset([]Record{
		{Year: "2023", Round: "1", InstituteCode: "E001", Course: "CS", Category: "GM", CutoffRank: 15000},
		{Year: "2024", Round: "2", InstituteCode: "E001", Course: "CS", Category: "GM", CutoffRank: 11000},
	}, Metadata{})

	got := AutoGenerate(d, 10000, "GM", []string{"CS"})
	if len(got) != 1 {
		t.Fatalf("got %d seeds, want 1: %+v", len(got), got)
	}
	if got[0].CutoffRank != 11000 {
		t.Errorf("cutoff = %d, want 11000", got[0].CutoffRank)
	}
}

func TestAutoGenerateNoBranches(t *testing.T) {
	t.Parallel()
	d := testDataset()
	if got := AutoGenerate(d, 1, "GM", nil); len(got) != 0 {
		t.Errorf("got %+v, want empty", got)
	}
}
