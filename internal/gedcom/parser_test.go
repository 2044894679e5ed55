package gedcom

import (
	"strings"
	"testing"
)

const sampleGedcom = `0 HEAD
1 SOUR FamilyAtlas
0 @I1@ INDI
1 NAME John /Smith/
1 BIRT
2 DATE 12 MAR 1900
2 PLAC Boston, Massachusetts
1 DEAT
2 DATE 1950
2 PLAC Chicago, Illinois
1 NOTE Ran the family store.
0 @I2@ INDI
1 NAME Jane /Smith/
1 BIRT
2 PLAC Salem
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
1 CHIL @I4@
1 MARR
2 DATE 1925
2 PLAC Boston
0 TRLR
`

func TestParseIndividualCount(t *testing.T) {
	res := Parse(strings.NewReader(sampleGedcom))

	if len(res.Individuals) != 2 {
		t.Fatalf("expected 2 individuals, got %d", len(res.Individuals))
	}
	if len(res.Families) != 1 {
		t.Fatalf("expected 1 family, got %d", len(res.Families))
	}
	if len(res.Skipped) != 0 {
		t.Errorf("expected no skipped lines, got %v", res.Skipped)
	}
}

func TestParseNameSlashesStripped(t *testing.T) {
	res := Parse(strings.NewReader(sampleGedcom))

	if got := res.Individuals[0].Name; got != "John Smith" {
		t.Errorf("expected %q, got %q", "John Smith", got)
	}
}

func TestParseBirthDeathCopiedToTopLevel(t *testing.T) {
	res := Parse(strings.NewReader(sampleGedcom))

	john := res.Individuals[0]
	if john.BirthDate != "12 MAR 1900" {
		t.Errorf("birth date: got %q", john.BirthDate)
	}
	if john.BirthPlace != "Boston, Massachusetts" {
		t.Errorf("birth place: got %q", john.BirthPlace)
	}
	if john.DeathDate != "1950" || john.DeathPlace != "Chicago, Illinois" {
		t.Errorf("death fields: got %q / %q", john.DeathDate, john.DeathPlace)
	}
	if john.Notes != "Ran the family store." {
		t.Errorf("notes: got %q", john.Notes)
	}

	// A DATE followed by a PLAC yields one event carrying both.
	if len(john.Events) != 2 {
		t.Fatalf("expected 2 events for John, got %d", len(john.Events))
	}
	if john.Events[0].Type != EventBirth || john.Events[0].Place != "Boston, Massachusetts" {
		t.Errorf("first event: got %+v", john.Events[0])
	}
}

func TestParsePlaceOnlyEvent(t *testing.T) {
	res := Parse(strings.NewReader(sampleGedcom))

	jane := res.Individuals[1]
	if jane.BirthPlace != "Salem" {
		t.Errorf("expected birth place Salem, got %q", jane.BirthPlace)
	}
	if jane.BirthDate != "" {
		t.Errorf("expected empty birth date, got %q", jane.BirthDate)
	}
}

func TestParseFamily(t *testing.T) {
	res := Parse(strings.NewReader(sampleGedcom))

	fam := res.Families[0]
	if fam.ID != "F1" || fam.HusbandID != "I1" || fam.WifeID != "I2" {
		t.Errorf("family refs: got %+v", fam)
	}
	if len(fam.ChildIDs) != 2 || fam.ChildIDs[0] != "I3" || fam.ChildIDs[1] != "I4" {
		t.Errorf("children: got %v", fam.ChildIDs)
	}
	if fam.MarriageDate != "1925" || fam.MarriagePlace != "Boston" {
		t.Errorf("marriage: got %q / %q", fam.MarriageDate, fam.MarriagePlace)
	}
}

func TestParseFlatEventList(t *testing.T) {
	res := Parse(strings.NewReader(sampleGedcom))

	// John's birth + death, Jane's birth, the marriage.
	if len(res.Events) != 4 {
		t.Fatalf("expected 4 flat events, got %d", len(res.Events))
	}
	if res.Events[3].Type != EventMarriage || res.Events[3].OwnerID != "F1" {
		t.Errorf("last flat event: got %+v", res.Events[3])
	}
}

func TestParseMalformedLinesSkippedAndReported(t *testing.T) {
	input := `0 @I1@ INDI
garbage line without a level
x 2 NOPE
1 NAME Ada /Lovelace/
1
`
	res := Parse(strings.NewReader(input))

	if len(res.Individuals) != 1 {
		t.Fatalf("expected 1 individual despite garbage, got %d", len(res.Individuals))
	}
	if res.Individuals[0].Name != "Ada Lovelace" {
		t.Errorf("name: got %q", res.Individuals[0].Name)
	}
	if len(res.Skipped) != 3 {
		t.Fatalf("expected 3 skipped lines, got %d: %v", len(res.Skipped), res.Skipped)
	}
	if res.Skipped[0].Number != 2 || res.Skipped[0].Reason != "unparseable level" {
		t.Errorf("first skip: got %+v", res.Skipped[0])
	}
	if res.Skipped[2].Reason != "missing tag" {
		t.Errorf("last skip: got %+v", res.Skipped[2])
	}
}

func TestParseRecordWithoutIDDiscarded(t *testing.T) {
	input := `0 INDI
1 NAME Ghost /Person/
0 @I1@ INDI
1 NAME Real /Person/
`
	res := Parse(strings.NewReader(input))

	if len(res.Individuals) != 1 {
		t.Fatalf("expected only the identified record, got %d", len(res.Individuals))
	}
	if res.Individuals[0].ID != "I1" {
		t.Errorf("id: got %q", res.Individuals[0].ID)
	}
}

func TestParseFlushAtEOF(t *testing.T) {
	input := `0 @I9@ INDI
1 NAME Last /One/
1 BIRT
2 DATE 1888`
	res := Parse(strings.NewReader(input))

	if len(res.Individuals) != 1 {
		t.Fatalf("expected EOF flush to emit the open individual, got %d", len(res.Individuals))
	}
	if res.Individuals[0].BirthDate != "1888" {
		t.Errorf("birth date: got %q", res.Individuals[0].BirthDate)
	}
}

func TestParseNoteOverwrites(t *testing.T) {
	input := `0 @I1@ INDI
1 NOTE first note
1 NOTE second note
`
	res := Parse(strings.NewReader(input))

	if res.Individuals[0].Notes != "second note" {
		t.Errorf("expected last NOTE to win, got %q", res.Individuals[0].Notes)
	}
}

func TestParseOtherLevelZeroClosesContext(t *testing.T) {
	input := `0 @I1@ INDI
1 NAME A /B/
0 SUBM
1 NAME Should /NotApply/
`
	res := Parse(strings.NewReader(input))

	if len(res.Individuals) != 1 {
		t.Fatalf("expected 1 individual, got %d", len(res.Individuals))
	}
	if res.Individuals[0].Name != "A B" {
		t.Errorf("name mutated after context closed: %q", res.Individuals[0].Name)
	}
}
