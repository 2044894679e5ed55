// Package gedcom parses the line-oriented GEDCOM interchange format:
// each line is `LEVEL TAG [VALUE]` with nesting expressed only through the
// level integer. Parsing is best-effort: malformed lines are skipped and
// reported, never fatal.
package gedcom

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

type context int

const (
	ctxNone context = iota
	ctxIndividual
	ctxFamily
)

type parser struct {
	ctx      context
	indi     *Individual
	fam      *Family
	pending  *Event
	attached bool
	out      Result
}

// Parse walks r line by line and reconstructs individuals, families and a
// flat event list. It never returns an error; lines it cannot use end up in
// Result.Skipped.
func Parse(r io.Reader) Result {
	p := &parser{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for sc.Scan() {
		n++
		p.line(n, sc.Text())
	}
	p.closeContext()
	return p.out
}

func (p *parser) line(number int, raw string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return
	}

	fields := strings.Fields(trimmed)
	level, err := strconv.Atoi(fields[0])
	if err != nil || level < 0 {
		p.skip(number, trimmed, "unparseable level")
		return
	}
	if len(fields) < 2 {
		p.skip(number, trimmed, "missing tag")
		return
	}

	tag := strings.ToUpper(fields[1])
	value := strings.Join(fields[2:], " ")

	switch level {
	case 0:
		p.level0(tag, value)
	case 1:
		p.level1(tag, value)
	case 2:
		p.level2(tag, value)
	}
	// Deeper levels carry sub-structure (sources, citations) we don't model.
}

func (p *parser) skip(number int, text, reason string) {
	p.out.Skipped = append(p.out.Skipped, SkippedLine{Number: number, Text: text, Reason: reason})
}

// level0 flushes any open record, then opens a new context when the line
// mentions INDI or FAM. Any other level-0 tag (HEAD, TRLR, SUBM, ...)
// just closes the current context.
func (p *parser) level0(tag, value string) {
	p.closeContext()

	rest := tag + " " + value
	switch {
	case strings.Contains(rest, "INDI"):
		p.openIndividual(recordID(tag))
	case strings.Contains(rest, "FAM"):
		p.openFamily(recordID(tag))
	}
}

func (p *parser) level1(tag, value string) {
	switch p.ctx {
	case ctxIndividual:
		switch tag {
		case "NAME":
			p.indi.Name = displayName(value)
		case "BIRT":
			p.openEvent(EventBirth, p.indi.ID)
		case "DEAT":
			p.openEvent(EventDeath, p.indi.ID)
		case "RESI":
			p.openEvent(EventResidence, p.indi.ID)
		case "NOTE":
			// Overwrites; multiple NOTE tags keep only the last one.
			p.indi.Notes = value
		}
	case ctxFamily:
		switch tag {
		case "HUSB":
			p.fam.HusbandID = xref(value)
		case "WIFE":
			p.fam.WifeID = xref(value)
		case "CHIL":
			p.fam.ChildIDs = append(p.fam.ChildIDs, xref(value))
		case "MARR":
			p.openEvent(EventMarriage, p.fam.ID)
		}
	}
}

// level2 assigns DATE/PLAC to the pending event. Each assignment closes the
// event: it is attached on the first assignment and mutated in place by any
// later one, so a DATE followed by a PLAC yields one event carrying both.
func (p *parser) level2(tag, value string) {
	if p.pending == nil {
		return
	}
	switch tag {
	case "DATE":
		p.pending.Date = value
	case "PLAC":
		p.pending.Place = value
	default:
		return
	}
	p.attachEvent()
}

func (p *parser) openIndividual(id string) {
	p.ctx = ctxIndividual
	p.indi = &Individual{ID: id}
}

func (p *parser) openFamily(id string) {
	p.ctx = ctxFamily
	p.fam = &Family{ID: id}
}

// openEvent replaces any pending event that never received a DATE/PLAC.
func (p *parser) openEvent(t EventType, ownerID string) {
	p.pending = &Event{Type: t, OwnerID: ownerID}
	p.attached = false
}

func (p *parser) attachEvent() {
	ev := p.pending

	if !p.attached {
		if p.ctx == ctxIndividual {
			p.indi.Events = append(p.indi.Events, ev)
		}
		p.out.Events = append(p.out.Events, ev)
		p.attached = true
	}

	switch ev.Type {
	case EventBirth:
		p.indi.BirthDate = ev.Date
		p.indi.BirthPlace = ev.Place
	case EventDeath:
		p.indi.DeathDate = ev.Date
		p.indi.DeathPlace = ev.Place
	case EventMarriage:
		p.fam.MarriageDate = ev.Date
		p.fam.MarriagePlace = ev.Place
	}
}

// closeContext flushes the open individual or family. Records without a
// cross-reference id are discarded.
func (p *parser) closeContext() {
	if p.indi != nil && p.indi.ID != "" {
		p.out.Individuals = append(p.out.Individuals, *p.indi)
	}
	if p.fam != nil && p.fam.ID != "" {
		p.out.Families = append(p.out.Families, *p.fam)
	}
	p.indi = nil
	p.fam = nil
	p.pending = nil
	p.attached = false
	p.ctx = ctxNone
}

// xref strips the @ delimiters from a cross-reference id: "@I1@" -> "I1".
func xref(s string) string {
	return strings.Trim(s, "@")
}

// recordID extracts the cross-reference id from a level-0 tag position.
// "0 INDI" with no id yields "", and the record is later discarded.
func recordID(tag string) string {
	if strings.HasPrefix(tag, "@") && strings.HasSuffix(tag, "@") && len(tag) > 1 {
		return strings.Trim(tag, "@")
	}
	return ""
}

// displayName strips GEDCOM's /Surname/ delimiters and collapses runs of
// whitespace: "John /Smith/" -> "John Smith".
func displayName(value string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(value, "/", " ")), " ")
}
