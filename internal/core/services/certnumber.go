package services

import (
	"regexp"
	"strings"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/logger"
)

// certNumberRule binds a certificate-number shape to the scheme it implies.
// Rules are tried in order; the first match fixes both number and type.
type certNumberRule struct {
	certType domain.CertType
	re       *regexp.Regexp
}

func (p *ParserService) compileCertNumberRules() {
	p.certRules = []certNumberRule{
		// IECEx: scheme prefix, 2-5 letter body code, two-digit year, dot,
		// 3-5 digit serial, optional X/U suffix, optional revision.
		// Example: "IECEx DEK 19.0042X", "IECEx SIR 07.0113X Issue 4".
		{domain.CertTypeIECEx, regexp.MustCompile(
			`\bIECEx\s+[A-Z]{2,5}\s*\d{2}\.\d{3,5}\s*[XU]?(?:\s*(?:Issue|Rev\.?|/)\s*\d+)?`)},

		// ATEX: optional issuer prefix, 2-digit year, literal ATEX, 3-5
		// digit serial, optional X/U suffix, optional revision.
		// Example: "Baseefa03ATEX0079X", "Sira 01 ATEX 1234 X".
		{domain.CertTypeATEX, regexp.MustCompile(
			`\b(?:[A-Z][A-Za-z]{1,11}\s*)?\d{2}\s*ATEX\s*\d{3,5}\s*[XU]?(?:\s*(?:Issue|Rev\.?|/)\s*\d+)?`)},

		// UKCA: issuer prefix, 2-digit year, literal UKEX, serial.
		// Example: "CSAE 21UKEX1234X".
		{domain.CertTypeUKCA, regexp.MustCompile(
			`\b(?:[A-Z][A-Za-z]{1,11}\s*)?\d{2}\s*UKEX\s*\d{3,5}\s*[XU]?(?:\s*(?:Issue|Rev\.?|/)\s*\d+)?`)},
	}

	// Used only for dual-certification detection once an IECEx number won.
	p.atexEmbedded = regexp.MustCompile(`\d{2}\s*ATEX\s*\d{3,5}\s*[XU]?`)
}

// extractCertNumber tries each scheme shape in order. A match fixes both
// CertNumber and CertType; an IECEx match is afterwards upgraded to the
// dual-certification type when an ATEX-shaped substring appears anywhere in
// the text, without altering the stored number.
func (p *ParserService) extractCertNumber(rec *domain.CertificateRecord, text string) {
	for _, rule := range p.certRules {
		m := rule.re.FindString(text)
		if m == "" {
			continue
		}
		rec.CertNumber = normaliseCertNumber(rule.certType, m)
		rec.CertType = rule.certType
		logger.Debug("Certificate number: %q (%s)", rec.CertNumber, rec.CertType)
		break
	}

	if rec.CertType == domain.CertTypeIECEx && p.atexEmbedded.MatchString(text) {
		rec.CertType = domain.CertTypeIECExATEX
		logger.Debug("Embedded ATEX number found, certType upgraded to %s", rec.CertType)
	}
}

// normaliseCertNumber canonicalises whitespace inside a matched number.
// IECEx numbers keep single spaces between their parts; ATEX and UKEX
// numbers additionally drop the spaces around the scheme literal, which
// documents print inconsistently ("03 ATEX 0079X" vs "03ATEX0079X").
func normaliseCertNumber(certType domain.CertType, s string) string {
	s = normaliseSpace(s)
	switch certType {
	case domain.CertTypeATEX:
		s = strings.ReplaceAll(s, " ATEX ", "ATEX")
		s = strings.ReplaceAll(s, " ATEX", "ATEX")
		s = strings.ReplaceAll(s, "ATEX ", "ATEX")
	case domain.CertTypeUKCA:
		s = strings.ReplaceAll(s, " UKEX ", "UKEX")
		s = strings.ReplaceAll(s, " UKEX", "UKEX")
		s = strings.ReplaceAll(s, "UKEX ", "UKEX")
	}
	if certType == domain.CertTypeATEX || certType == domain.CertTypeUKCA {
		// A detached suffix letter ("... 1234 X") joins the serial.
		for _, suf := range []string{" X", " U"} {
			if strings.HasSuffix(s, suf) {
				s = strings.TrimSuffix(s, suf) + strings.TrimSpace(suf)
			}
		}
	}
	return s
}
