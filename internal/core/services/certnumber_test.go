package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
)

func TestExtractCertNumber(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name       string
		text       string
		wantNumber string
		wantType   domain.CertType
	}{
		{
			name:       "iecex",
			text:       "Certificate No.: IECEx DEK 19.0042X",
			wantNumber: "IECEx DEK 19.0042X",
			wantType:   domain.CertTypeIECEx,
		},
		{
			name:       "iecex with issue revision",
			text:       "IECEx SIR 07.0113X Issue 4",
			wantNumber: "IECEx SIR 07.0113X Issue 4",
			wantType:   domain.CertTypeIECEx,
		},
		{
			name:       "atex glued to issuer",
			text:       "covered by Baseefa03ATEX0079X",
			wantNumber: "Baseefa03ATEX0079X",
			wantType:   domain.CertTypeATEX,
		},
		{
			name:       "atex with spaced parts and detached suffix",
			text:       "Certificate: Sira 01 ATEX 1234 X",
			wantNumber: "Sira 01ATEX1234X",
			wantType:   domain.CertTypeATEX,
		},
		{
			name:       "ukex",
			text:       "Certificate CSAE 21UKEX1234X",
			wantNumber: "CSAE 21UKEX1234X",
			wantType:   domain.CertTypeUKCA,
		},
		{
			name:       "ukex spaced",
			text:       "CSAE 21 UKEX 5678",
			wantNumber: "CSAE 21UKEX5678",
			wantType:   domain.CertTypeUKCA,
		},
		{
			name:       "no number",
			text:       "maintenance manual for rotating equipment",
			wantNumber: "",
			wantType:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec domain.CertificateRecord
			p.extractCertNumber(&rec, tt.text)

			assert.Equal(t, tt.wantNumber, rec.CertNumber)
			assert.Equal(t, tt.wantType, rec.CertType)
		})
	}
}

func TestExtractCertNumberDualCertification(t *testing.T) {
	p := NewParser()

	var rec domain.CertificateRecord
	p.extractCertNumber(&rec, "IECEx DEK 19.0042X corresponding to DEK 19ATEX0042X")

	// The IECEx number wins; the embedded ATEX number only upgrades the type.
	assert.Equal(t, "IECEx DEK 19.0042X", rec.CertNumber)
	assert.Equal(t, domain.CertTypeIECExATEX, rec.CertType)
}

func TestExtractCertNumberIECExBeatsATEX(t *testing.T) {
	p := NewParser()

	// Scheme priority, not document position, decides the winner.
	var rec domain.CertificateRecord
	p.extractCertNumber(&rec, "DEK 19ATEX0042X is the ATEX twin of IECEx DEK 19.0042X")

	assert.Equal(t, "IECEx DEK 19.0042X", rec.CertNumber)
	assert.Equal(t, domain.CertTypeIECExATEX, rec.CertType)
}

func TestNormaliseCertNumber(t *testing.T) {
	tests := []struct {
		name     string
		certType domain.CertType
		in       string
		want     string
	}{
		{"iecex keeps internal spaces", domain.CertTypeIECEx, "IECEx  DEK  19.0042X", "IECEx DEK 19.0042X"},
		{"atex drops scheme spacing", domain.CertTypeATEX, "Sira 01 ATEX 1234", "Sira 01ATEX1234"},
		{"atex joins detached U suffix", domain.CertTypeATEX, "Sira 01 ATEX 1234 U", "Sira 01ATEX1234U"},
		{"ukex drops scheme spacing", domain.CertTypeUKCA, "CSAE 21 UKEX 1234 X", "CSAE 21UKEX1234X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normaliseCertNumber(tt.certType, tt.in))
		})
	}
}
