package services

import (
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/logger"
)

// derivedZoneSuffix marks a zone inferred from the EPL rather than read
// from the document. The suffix is part of the output contract: downstream
// consumers rely on it to tell observed zones from inferred ones.
const derivedZoneSuffix = " (derived from EPL)"

// deriveZone runs after all explicit extraction and fills Zone from the EPL
// table only when no explicit zone was found.
func (p *ParserService) deriveZone(rec *domain.CertificateRecord) {
	if rec.Zone != "" || rec.EPL == "" {
		return
	}
	zone, ok := domain.EPLZones[rec.EPL]
	if !ok {
		return
	}
	rec.Zone = zone + derivedZoneSuffix
	logger.Debug("Zone derived from EPL %s: %q", rec.EPL, rec.Zone)
}
