package services

import (
	"regexp"
	"sort"
	"strings"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/ports/driving"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/logger"
)

// Ensure ParserService implements the interface.
var _ driving.Parser = (*ParserService)(nil)

// labelRule is one prioritised pattern in a field's rule list. The first
// rule whose pattern matches (and survives the optional reject check) wins.
type labelRule struct {
	re *regexp.Regexp

	// group is the capture group holding the value; 0 means the whole match.
	group int

	// format, when non-empty, wraps the captured value (e.g. "Zone %s").
	format string
}

// ParserService extracts structured certificate data from document text.
// All patterns are compiled once in NewParser; the service carries no
// per-call state.
type ParserService struct {
	certRules    []certNumberRule
	atexEmbedded *regexp.Regexp

	markingShapes []*regexp.Regexp
	protToken     *regexp.Regexp
	gasToken      *regexp.Regexp

	gasGroupRe  *regexp.Regexp
	tempClassRe *regexp.Regexp
	eplRe       *regexp.Regexp

	zoneRules         []labelRule
	ipRe              *regexp.Regexp
	ambientRules      []labelRule
	manufacturerRules []labelRule
	equipmentRules    []labelRule
	issueRules        []labelRule
	expiryRules       []labelRule

	condLabel  *regexp.Regexp
	condNumber *regexp.Regexp
	condHeader *regexp.Regexp

	standardRe    *regexp.Regexp
	categoryRules []labelRule
	groupRules    []labelRule

	// bodiesByLength is the notified-body list sorted longest name first so
	// a longer name is never shadowed by a substring of itself.
	bodiesByLength []string
}

// NewParser creates a parser with all pattern rules compiled.
func NewParser() *ParserService {
	p := &ParserService{}
	p.compileCertNumberRules()
	p.compileMarkingRules()
	p.compileFieldRules()

	p.bodiesByLength = append([]string(nil), domain.NotifiedBodies...)
	sort.SliceStable(p.bodiesByLength, func(i, j int) bool {
		return len(p.bodiesByLength[i]) > len(p.bodiesByLength[j])
	})

	return p
}

// Parse extracts a certificate record from the document text. It never
// fails: fields with no matching rule stay absent and the pipeline keeps
// going. Repeated calls with the same text yield identical records.
func (p *ParserService) Parse(text string) domain.CertificateRecord {
	rec := domain.CertificateRecord{Raw: text}
	if strings.TrimSpace(text) == "" {
		return rec
	}

	logger.Section("Certificate Extraction")

	p.extractCertNumber(&rec, text)
	p.extractMarkings(&rec, text)
	p.decomposeProtection(&rec)

	// Marking-scoped fields: prefer a match inside the chosen marking, fall
	// back to the whole text only when the marking yields none.
	rec.GasGroup = p.findScoped(p.gasGroupRe, rec.Marking, text)
	if rec.GasGroup != "" {
		rec.GasGroupInfo = domain.GasGroupDescriptions[rec.GasGroup]
	}
	rec.TempClass = p.findScoped(p.tempClassRe, rec.Marking, text)
	if rec.TempClass != "" {
		rec.TempClassMax = domain.TempClassMaxima[rec.TempClass]
	}
	rec.EPL = p.findScoped(p.eplRe, rec.Marking, text)

	p.extractSecondaryFields(&rec, text)
	p.deriveZone(&rec)

	logger.Debug("Parsed record: number=%q type=%q marking=%q", rec.CertNumber, rec.CertType, rec.Marking)

	return rec
}

// findScoped applies re to the marking first and to the whole text second,
// returning the first match or the empty string.
func (p *ParserService) findScoped(re *regexp.Regexp, marking, text string) string {
	if marking != "" {
		if m := re.FindString(marking); m != "" {
			return m
		}
	}
	return re.FindString(text)
}

// firstRuleMatch walks an ordered rule list and returns the first captured
// value, cleaned and whitespace-normalised. Returns "" when nothing matches.
func firstRuleMatch(rules []labelRule, text string) string {
	for _, rule := range rules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		val := m[rule.group]
		val = normaliseSpace(val)
		if val == "" {
			continue
		}
		if rule.format != "" {
			return strings.Replace(rule.format, "%s", val, 1)
		}
		return val
	}
	return ""
}

// normaliseSpace collapses all whitespace runs to single spaces and trims.
func normaliseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
