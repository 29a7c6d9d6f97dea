package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
)

const fullCertificateText = `IECEx Certificate of Conformity

Certificate No.:   IECEx DEK 19.0042X
Date of issue:     2019-05-23

Manufacturer:      Acme Explosion Proof Ltd
Equipment:         Flameproof Induction Motor Type FLP-90

Ex marking:        Ex db eb IIC T4 Gb

Ambient temperature range: -20°C to +40°C
Ingress protection: IP66

Issued by DEKRA Certification B.V.

Standards: IEC 60079-0:2017, IEC 60079-1:2014
`

func TestParseFullCertificate(t *testing.T) {
	p := NewParser()
	rec := p.Parse(fullCertificateText)

	assert.Equal(t, "IECEx DEK 19.0042X", rec.CertNumber)
	assert.Equal(t, domain.CertTypeIECEx, rec.CertType)

	assert.Equal(t, "Ex db eb IIC T4 Gb", rec.Marking)
	require.Len(t, rec.ProtectionTypes, 2)
	assert.Equal(t, "db", rec.ProtectionTypes[0].Code)
	assert.Equal(t, "Flameproof enclosure", rec.ProtectionTypes[0].Description)
	assert.Equal(t, "eb", rec.ProtectionTypes[1].Code)
	assert.Equal(t, "Increased safety", rec.ProtectionTypes[1].Description)

	assert.Equal(t, "IIC", rec.GasGroup)
	assert.Equal(t, "Gas group IIC (hydrogen, acetylene)", rec.GasGroupInfo)
	assert.Equal(t, "T4", rec.TempClass)
	assert.Equal(t, "135°C", rec.TempClassMax)
	assert.Equal(t, "Gb", rec.EPL)
	assert.Equal(t, "Zone 1 (derived from EPL)", rec.Zone)

	assert.Equal(t, "IP66", rec.IPRating)
	assert.Equal(t, "-20°C to +40°C", rec.AmbientTemp)
	assert.Equal(t, "Acme Explosion Proof Ltd", rec.Manufacturer)
	assert.Equal(t, "Flameproof Induction Motor Type FLP-90", rec.Equipment)
	assert.Equal(t, "DEKRA Certification B.V.", rec.NotifiedBody)
	assert.Equal(t, "2019-05-23", rec.IssueDate)
	assert.Equal(t, "IEC 60079-0:2017, IEC 60079-1:2014", rec.Standard)

	assert.Equal(t, fullCertificateText, rec.Raw)

	score := p.Confidence(rec)
	assert.Equal(t, 98, score)
	assert.GreaterOrEqual(t, score, 70)
}

func TestParseIsDeterministic(t *testing.T) {
	p := NewParser()

	first := p.Parse(fullCertificateText)
	for i := 0; i < 3; i++ {
		require.Equal(t, first, p.Parse(fullCertificateText))
	}
}

func TestParseSparseText(t *testing.T) {
	p := NewParser()
	rec := p.Parse("The unit is rated T4 only.")

	assert.Equal(t, "T4", rec.TempClass)
	assert.Equal(t, "135°C", rec.TempClassMax)

	assert.Empty(t, rec.CertNumber)
	assert.Empty(t, rec.Marking)
	assert.Empty(t, rec.GasGroup)
	assert.Empty(t, rec.EPL)
	assert.Empty(t, rec.Zone)

	assert.Equal(t, 10, p.Confidence(rec))
}

func TestParseEmptyText(t *testing.T) {
	p := NewParser()

	for _, text := range []string{"", "   \n\t"} {
		rec := p.Parse(text)
		assert.Equal(t, domain.CertificateRecord{Raw: text}, rec)
		assert.Equal(t, 0, p.Confidence(rec))
	}
}

func TestParseExplicitZoneWins(t *testing.T) {
	p := NewParser()
	rec := p.Parse("Installed in Zone 2. Marking: Ex d IIC T6 Gb")

	assert.Equal(t, "Gb", rec.EPL)
	assert.Equal(t, "Zone 2", rec.Zone)
	assert.NotContains(t, rec.Zone, "derived")
}

func TestParseDerivedZoneOnlyFromEPL(t *testing.T) {
	p := NewParser()
	rec := p.Parse("Marking: Ex tb IIIC T85°C Db")

	assert.Equal(t, "Db", rec.EPL)
	assert.Equal(t, "Zone 21 (derived from EPL)", rec.Zone)
	assert.Equal(t, "IIIC", rec.GasGroup)
	assert.True(t, rec.IsDustRated())
	assert.Empty(t, rec.TempClass)
}

func TestParseDualCertification(t *testing.T) {
	p := NewParser()
	rec := p.Parse("IECEx DEK 19.0042X\nDEK 19ATEX0042X\nEx db IIC T4 Gb")

	assert.Equal(t, "IECEx DEK 19.0042X", rec.CertNumber)
	assert.Equal(t, domain.CertTypeIECExATEX, rec.CertType)
}

func TestParseScopesMarkingFieldsToMarking(t *testing.T) {
	p := NewParser()

	// "T1" appears in the running text but the marking carries T4; the
	// marking must win.
	rec := p.Parse("see table T1 for details\nMarking: Ex db IIC T4 Gb")

	assert.Equal(t, "T4", rec.TempClass)
	assert.Equal(t, "IIC", rec.GasGroup)
}

func TestNormaliseSpace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  a  b\tc \n d ", "a b c d"},
		{"single", "single"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normaliseSpace(tt.in))
	}
}

func TestParseVeryLongText(t *testing.T) {
	p := NewParser()

	// A certificate buried in a large document is still found.
	text := strings.Repeat("filler line with no certificate content\n", 2000) +
		"Certificate No.: IECEx DEK 19.0042X\nMarking: Ex db IIC T4 Gb\n"

	rec := p.Parse(text)
	assert.Equal(t, "IECEx DEK 19.0042X", rec.CertNumber)
	assert.Equal(t, "Ex db IIC T4 Gb", rec.Marking)
}
