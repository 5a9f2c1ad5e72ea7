package enums

import "testing"

func TestToolModelValidation(t *testing.T) {
	for _, m := range AllToolModels() {
		if !m.IsValid() {
			t.Fatalf("model %q should be valid", m)
		}
	}
	if ToolModel("T60").IsValid() {
		t.Fatal("T60 should not be a valid model")
	}
	if _, err := ParseToolModel("T45"); err != nil {
		t.Fatalf("parse T45: %v", err)
	}
	if _, err := ParseToolModel("t45"); err == nil {
		t.Fatal("parsing is case sensitive; t45 should fail")
	}
}

func TestCategoryValidation(t *testing.T) {
	for _, c := range []Category{CategoryPunho, CategoryHaste, CategoryBit} {
		if !c.IsValid() {
			t.Fatalf("category %q should be valid", c)
		}
	}
	if _, err := ParseCategory("Broca"); err == nil {
		t.Fatal("unknown category should fail to parse")
	}
}

func TestWithdrawalReasonVocabulary(t *testing.T) {
	reasons := AllWithdrawalReasons()
	if len(reasons) != 5 {
		t.Fatalf("expected 5 reasons, got %d", len(reasons))
	}
	if _, err := ParseWithdrawalReason("Desgaste Natural"); err != nil {
		t.Fatalf("parse reason: %v", err)
	}
	if WithdrawalReason("Outro").IsValid() {
		t.Fatal("free text outside the vocabulary must be rejected")
	}
}

func TestSupervisorRoster(t *testing.T) {
	roster := AllSupervisors()
	if len(roster) != 5 {
		t.Fatalf("expected 5 supervisors, got %d", len(roster))
	}
	if !SupervisorAnaSilva.IsValid() {
		t.Fatal("Ana Silva should be on the roster")
	}
	if _, err := ParseSupervisor("José Ninguém"); err == nil {
		t.Fatal("unknown supervisor should fail to parse")
	}
}
