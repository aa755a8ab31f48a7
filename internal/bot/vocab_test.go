package bot

import "testing"

func TestAcademicScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		min  int
	}{
		{"notes request", "I need notes for dbms", 2},
		{"phrase plus keyword", "show me notes for java", 2},
		{"question paper request", "previous year question papers for physics", 2},
		{"plain emotional text", "everything went wrong today", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := AcademicScore(tt.text)
			if got < tt.min {
				t.Errorf("AcademicScore(%q) = %d, want >= %d", tt.text, got, tt.min)
			}
			if tt.min == 0 && got >= academicThreshold {
				t.Errorf("AcademicScore(%q) = %d, should stay below threshold", tt.text, got)
			}
		})
	}
}

func TestTriggers(t *testing.T) {
	t.Parallel()

	if !HasPYQTrigger("show me pyq for java") {
		t.Error("expected pyq trigger for explicit pyq request")
	}
	if HasPYQTrigger("I need dbms notes") {
		t.Error("notes request should not carry a pyq trigger")
	}
	if !HasNotesTrigger("I need dbms notes") {
		t.Error("expected notes trigger")
	}
	if HasNotesTrigger("when does the canteen open") {
		t.Error("canteen query should not carry a notes trigger")
	}
}

func TestIsAcademicRequest(t *testing.T) {
	t.Parallel()

	// Academic requests keep priority over incidental emotional wording.
	if !IsAcademicRequest("I need notes, I'm so stressed about my exams") {
		t.Error("notes request with emotional wording should stay academic")
	}
	if IsAcademicRequest("I'm so stressed about my exams") {
		t.Error("emotional message without a material trigger is not an academic request")
	}
	if !IsAcademicRequest("previous year question papers for physics") {
		t.Error("expected pyq request to be academic")
	}
}

func TestContainsAny(t *testing.T) {
	t.Parallel()

	terms := []string{"fees", "hostel"}
	if !ContainsAny("what are the fees", terms) {
		t.Error("expected substring hit")
	}
	if ContainsAny("library timings", terms) {
		t.Error("unexpected hit")
	}
}

func TestWordCount(t *testing.T) {
	t.Parallel()

	if got := WordCount("  hello   there "); got != 2 {
		t.Errorf("WordCount = %d, want 2", got)
	}
	if got := WordCount(""); got != 0 {
		t.Errorf("WordCount empty = %d, want 0", got)
	}
}
