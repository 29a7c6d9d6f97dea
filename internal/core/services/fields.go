package services

import (
	"regexp"
	"strings"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
)

// specialConditionsLimit bounds the captured conditions block.
const specialConditionsLimit = 500

// valueDenylist rejects label-anchored candidates that are themselves a
// sub-label or continuation phrase rather than a value.
var valueDenylist = map[string]bool{
	"address":   true,
	"name":      true,
	"location":  true,
	"tel":       true,
	"phone":     true,
	"email":     true,
	"country":   true,
	"see below": true,
	"n/a":       true,
}

func (p *ParserService) compileFieldRules() {
	// Marking-scoped fields (whole-text fallback handled by findScoped).
	p.gasGroupRe = regexp.MustCompile(`\b(?:III[ABC]|II[ABC]|I)\b`)
	p.tempClassRe = regexp.MustCompile(`\bT[1-6]\b`)
	p.eplRe = regexp.MustCompile(`\b[GDM][abc]\b`)

	p.zoneRules = []labelRule{
		{re: regexp.MustCompile(`(?i)\bzones?\s*:?\s*(2[0-2]|[012])\b`), group: 1, format: "Zone %s"},
	}

	p.ipRe = regexp.MustCompile(`\bIP\s*[0-6X][0-9X]\b`)

	// Ambient temperature, most explicit form first. The matched literal is
	// stored as written; no numeric parsing.
	p.ambientRules = []labelRule{
		// "-20°C ≤ Ta ≤ +60°C"
		{re: regexp.MustCompile(`[-+−]?\s*\d{1,3}\s*[°º]C\s*(?:≤|<=)\s*Ta(?:mb)?\.?\s*(?:≤|<=)\s*[-+−]?\s*\d{1,3}\s*[°º]C`)},
		// "Ta = -20°C to +40°C"
		{re: regexp.MustCompile(`Ta(?:mb)?\.?\s*[:=]\s*[-+−]?\d{1,3}\s*[°º]C\s*(?:to|[-–—…])\s*[-+−]?\d{1,3}\s*[°º]C`)},
		// "Ambient temperature range: -20°C to +40°C"
		{re: regexp.MustCompile(`(?i)ambient\s+temperature(?:\s+range)?\s*:?\s*([-+−]?\d{1,3}\s*[°º]C\s*(?:to|[-–—…])\s*[-+−]?\d{1,3}\s*[°º]C)`), group: 1},
	}

	// Label-anchored extractors tolerate the value on the same line or the
	// following one. A value ends at a line break or a run of two or more
	// spaces, which flattened PDF text uses as a column separator.
	const sameLine = `[ \t]*([^\n]+?)(?:\s{2,}|\n|$)`
	const nextLine = `[ \t]*\n[ \t]*([^\n]+?)(?:\s{2,}|\n|$)`

	p.manufacturerRules = []labelRule{
		{re: regexp.MustCompile(`(?i)\bmanufacturer\s*:` + sameLine), group: 1},
		{re: regexp.MustCompile(`(?i)\bmanufactured\s+by\s*:?` + sameLine), group: 1},
		{re: regexp.MustCompile(`(?i)\bmanufacturer\s*:?` + nextLine), group: 1},
		{re: regexp.MustCompile(`(?i)\bapplicant\s*:` + sameLine), group: 1},
	}

	p.equipmentRules = []labelRule{
		{re: regexp.MustCompile(`(?i)\bequipment\s*:` + sameLine), group: 1},
		{re: regexp.MustCompile(`(?i)\bproduct\s*:` + sameLine), group: 1},
		{re: regexp.MustCompile(`(?i)\bapparatus\s*:` + sameLine), group: 1},
		{re: regexp.MustCompile(`(?i)\btype\s+of\s+(?:equipment|protection\s+device)\s*:` + sameLine), group: 1},
		{re: regexp.MustCompile(`(?i)\bequipment\s*:?` + nextLine), group: 1},
	}

	// Date rule lists try an ISO-like numeric form before the written "day
	// month-name year" form. The matched literal is stored unvalidated.
	const isoDate = `(\d{4}[-/.]\d{1,2}[-/.]\d{1,2}|\d{1,2}[-/.]\d{1,2}[-/.]\d{4})`
	const wordDate = `(\d{1,2}(?:st|nd|rd|th)?\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4})`
	const issueLabel = `(?i)(?:date\s+of\s+issue|issue\s+date|issued(?:\s+on)?)\s*:?\s*`
	const expiryLabel = `(?i)(?:date\s+of\s+expiry|expiry\s+date|expiration\s+date|valid\s+until|expires(?:\s+on)?)\s*:?\s*`

	p.issueRules = []labelRule{
		{re: regexp.MustCompile(issueLabel + isoDate), group: 1},
		{re: regexp.MustCompile(issueLabel + wordDate), group: 1},
	}
	p.expiryRules = []labelRule{
		{re: regexp.MustCompile(expiryLabel + isoDate), group: 1},
		{re: regexp.MustCompile(expiryLabel + wordDate), group: 1},
	}

	// Special-conditions block: starts after the label, ends at a blank
	// line, an all-caps section header or a numbered list item.
	p.condLabel = regexp.MustCompile(`(?i)(?:special\s+conditions(?:\s+for\s+safe\s+use)?|specific\s+conditions?\s+of\s+use)\s*:?`)
	p.condNumber = regexp.MustCompile(`^\d+[.)]\s`)
	p.condHeader = regexp.MustCompile(`^[A-Z][A-Z0-9 &/-]{3,}$`)

	// Standard references: optional EN/IEC prefix, the 60079 series, part
	// number, optional year and amendment suffixes.
	p.standardRe = regexp.MustCompile(`\b(?:(?:EN|IEC)\s*)?60079-\d{1,2}(?:\s*:\s*\d{4})?(?:\s*\+\s*A\d+(?:\s*:\s*\d{4})?)?`)

	// ATEX category: "II 2 G" positional form, then a "Category 2" label.
	p.categoryRules = []labelRule{
		{re: regexp.MustCompile(`\b(?:III|II|I)\s*([123])\s*([GDM])\b`), group: 0},
		{re: regexp.MustCompile(`(?i)\bcategory\s*:?\s*([123])\b`), group: 1},
	}

	// ATEX equipment group: explicit label first, positional form second.
	p.groupRules = []labelRule{
		{re: regexp.MustCompile(`(?i)\bequipment\s+group\s*:?\s*(III|II|I)\b`), group: 1},
		{re: regexp.MustCompile(`\b(III|II|I)\s*[123]\s*[GDM]\b`), group: 1},
	}
}

// extractSecondaryFields fills every field that is neither marking-scoped
// nor derived. Each extractor is independent; a failed one leaves its field
// absent without affecting the others.
func (p *ParserService) extractSecondaryFields(rec *domain.CertificateRecord, text string) {
	rec.Zone = firstRuleMatch(p.zoneRules, text)
	rec.IPRating = strings.Join(strings.Fields(p.ipRe.FindString(text)), "")
	rec.AmbientTemp = firstRuleMatch(p.ambientRules, text)

	rec.Manufacturer = p.labelValue(p.manufacturerRules, text)
	rec.Equipment = p.labelValue(p.equipmentRules, text)
	rec.NotifiedBody = p.findNotifiedBody(text)

	rec.IssueDate = firstRuleMatch(p.issueRules, text)
	rec.ExpiryDate = firstRuleMatch(p.expiryRules, text)

	rec.SpecialConditions = p.extractSpecialConditions(text)
	rec.Standard = p.extractStandards(text)

	rec.Category = p.extractCategory(text)
	rec.Group = firstRuleMatch(p.groupRules, text)
}

// labelValue runs a label-anchored rule list, rejecting candidates from the
// denylist so a sub-label on the following line ("Address:") never wins as a
// value; rejection moves on to the next rule rather than aborting.
func (p *ParserService) labelValue(rules []labelRule, text string) string {
	for _, rule := range rules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		val := cleanLabelValue(m[rule.group])
		if val == "" {
			continue
		}
		key := strings.ToLower(strings.TrimSuffix(val, ":"))
		if valueDenylist[key] {
			continue
		}
		return val
	}
	return ""
}

// cleanLabelValue normalises a captured label value and strips trailing
// separators left behind by column layouts.
func cleanLabelValue(s string) string {
	s = normaliseSpace(s)
	s = strings.Trim(s, " ,;|")
	if len(s) < 2 {
		return ""
	}
	return s
}

// findNotifiedBody scans the known-body list, longest name first, so a body
// whose name contains another body's name as a substring always wins.
func (p *ParserService) findNotifiedBody(text string) string {
	lower := strings.ToLower(text)
	for _, body := range p.bodiesByLength {
		if strings.Contains(lower, strings.ToLower(body)) {
			return body
		}
	}
	return ""
}

// extractSpecialConditions captures the bounded free-text block after a
// conditions label and truncates it to specialConditionsLimit characters.
func (p *ParserService) extractSpecialConditions(text string) string {
	loc := p.condLabel.FindStringIndex(text)
	if loc == nil {
		return ""
	}

	var parts []string
	for _, line := range strings.Split(text[loc[1]:], "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" && len(parts) > 0 {
			break
		}
		if trimmed == "" {
			continue
		}
		if p.condHeader.MatchString(trimmed) || p.condNumber.MatchString(trimmed) {
			break
		}
		parts = append(parts, trimmed)
	}

	block := normaliseSpace(strings.Join(parts, " "))
	if block == "" {
		return ""
	}
	if runes := []rune(block); len(runes) > specialConditionsLimit {
		block = string(runes[:specialConditionsLimit])
	}
	return block
}

// extractStandards collects all distinct 60079-series references in document
// order and joins them as a comma-separated list.
func (p *ParserService) extractStandards(text string) string {
	seen := make(map[string]bool)
	var refs []string
	for _, m := range p.standardRe.FindAllString(text, -1) {
		m = normaliseSpace(m)
		m = strings.ReplaceAll(m, " :", ":")
		m = strings.ReplaceAll(m, ": ", ":")
		if seen[m] {
			continue
		}
		seen[m] = true
		refs = append(refs, m)
	}
	return strings.Join(refs, ", ")
}

// extractCategory resolves the ATEX category to a compact "2G"-style token
// from the positional form, or the bare digit from a Category label.
func (p *ParserService) extractCategory(text string) string {
	if m := p.categoryRules[0].re.FindStringSubmatch(text); m != nil {
		return m[1] + m[2]
	}
	return firstRuleMatch(p.categoryRules[1:], text)
}
