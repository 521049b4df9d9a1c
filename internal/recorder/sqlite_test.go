package recorder

import (
	"path/filepath"
	"testing"
)

func TestSQLiteRecorder_RecordCycle(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	yoy, mom := 3.2, 0.4
	if err := r.RecordCycle(&CycleRecord{
		Epoch:             1,
		StartYear:         2023,
		Status:            "READY",
		HeadlineNSAPoints: 26,
		HeadlineSAPoints:  26,
		CoreSAPoints:      26,
		HeadlineYoY:       &yoy,
		HeadlineMoM:       &mom,
		LastObserved:      "2025-02",
	}); err != nil {
		t.Fatalf("record ready cycle: %v", err)
	}

	// Absent metrics land as NULLs.
	if err := r.RecordCycle(&CycleRecord{
		Epoch:   2,
		Status:  "ERROR",
		Message: "series SA: status 500",
	}); err != nil {
		t.Fatalf("record error cycle: %v", err)
	}

	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM load_cycles").Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 recorded cycles, got %d", count)
	}
}
