package services

import (
	"regexp"
	"sort"
	"strings"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/logger"
)

// codeRun matches the run of protection-code tokens after the "Ex" prefix,
// e.g. "db ia " or "nA ". Tokens are one or two lower-case letters with an
// optional trailing capital (nA, nC, nR, pxb-style variants stay two-token).
const codeRun = `(?:[a-z]{1,2}[A-Z]?\s+)+`

func (p *ParserService) compileMarkingRules() {
	// Ordered from most to least specific. All shapes are evaluated against
	// the whole text; the longest distinct candidate wins overall, so order
	// here only determines discovery, not selection.
	p.markingShapes = []*regexp.Regexp{
		// (1) Full marking with temperature class and explicit EPL suffix:
		// "Ex db IIC T4 Gb".
		regexp.MustCompile(`\bEx\s+` + codeRun + `I{1,3}[ABC]?\s+T[1-6]\s+[GDM][abc]\b`),

		// (2) Mining marking: group I with an M-class EPL, "Ex db I Mb".
		regexp.MustCompile(`\bEx\s+` + codeRun + `I\s+M[ab]\b`),

		// (3) Dust marking with absolute surface temperature instead of a
		// temperature class: "Ex tb IIIC T85°C Db".
		regexp.MustCompile(`\bEx\s+` + codeRun + `III[ABC]\s+T\s*\d{2,3}\s*[°º]?\s*C(?:\s+D[abc])?\b`),

		// (4) Marking with temperature class but no EPL: "Ex d IIC T6".
		regexp.MustCompile(`\bEx\s+` + codeRun + `I{1,3}[ABC]?\s+T[1-6]\b`),

		// (5) Minimal marking, protection codes and group only: "Ex d IIC".
		regexp.MustCompile(`\bEx\s+` + codeRun + `I{1,3}[ABC]?\b`),
	}

	// protToken validates one decomposed code: a base letter (or the special
	// two-character "op") with an optional a/b/c level suffix.
	p.protToken = regexp.MustCompile(`^(op|[a-z])([abc]?)$`)

	// gasToken ends the protection-code run inside a marking.
	p.gasToken = regexp.MustCompile(`^I{1,3}[ABC]?$`)
}

// extractMarkings collects every candidate from every shape across the whole
// text, normalises whitespace, deduplicates by exact string equality and
// sorts the survivors longest first. Documents tend to repeat a partial
// marking in running text and the complete one in a title block; the longest
// distinct string is the best completeness proxy without layout awareness.
func (p *ParserService) extractMarkings(rec *domain.CertificateRecord, text string) {
	seen := make(map[string]bool)
	var candidates []string

	for _, shape := range p.markingShapes {
		for _, m := range shape.FindAllString(text, -1) {
			m = normaliseSpace(m)
			if m == "" || seen[m] {
				continue
			}
			seen[m] = true
			candidates = append(candidates, m)
		}
	}

	if len(candidates) == 0 {
		return
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i]) > len(candidates[j])
	})

	rec.Markings = candidates
	rec.Marking = candidates[0]
	logger.Debug("Markings: %d candidate(s), selected %q", len(candidates), rec.Marking)
}

// decomposeProtection decodes the protection-code run at the front of the
// selected marking. It deliberately never looks at the full document text,
// which is littered with protection-type letters in other roles.
func (p *ParserService) decomposeProtection(rec *domain.CertificateRecord) {
	if rec.Marking == "" {
		return
	}

	fields := strings.Fields(rec.Marking)
	if len(fields) == 0 || fields[0] != "Ex" {
		return
	}

	for _, tok := range fields[1:] {
		if p.gasToken.MatchString(tok) {
			break
		}
		m := p.protToken.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		desc, ok := domain.ProtectionDescriptions[m[1]]
		if !ok {
			desc = "Unknown"
		}
		rec.ProtectionTypes = append(rec.ProtectionTypes, domain.ProtectionType{
			Code:        tok,
			BaseType:    m[1],
			Level:       m[2],
			Description: desc,
		})
	}
}
