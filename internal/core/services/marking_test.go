package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
)

func TestExtractMarkings(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name        string
		text        string
		wantMarking string
	}{
		{
			name:        "full gas marking",
			text:        "Marking: Ex db IIC T4 Gb",
			wantMarking: "Ex db IIC T4 Gb",
		},
		{
			name:        "multiple protection codes",
			text:        "Ex db eb IIC T4 Gb",
			wantMarking: "Ex db eb IIC T4 Gb",
		},
		{
			name:        "dust marking with surface temperature",
			text:        "rated Ex tb IIIC T85°C Db for dust",
			wantMarking: "Ex tb IIIC T85°C Db",
		},
		{
			name:        "mining marking",
			text:        "Ex db I Mb",
			wantMarking: "Ex db I Mb",
		},
		{
			name:        "marking without epl",
			text:        "Ex d IIC T6",
			wantMarking: "Ex d IIC T6",
		},
		{
			name:        "whitespace collapsed",
			text:        "Ex  db   IIC   T4  Gb",
			wantMarking: "Ex db IIC T4 Gb",
		},
		{
			name:        "no marking",
			text:        "routine maintenance report",
			wantMarking: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec domain.CertificateRecord
			p.extractMarkings(&rec, tt.text)

			assert.Equal(t, tt.wantMarking, rec.Marking)
		})
	}
}

func TestExtractMarkingsLongestCandidateWins(t *testing.T) {
	p := NewParser()

	// A partial marking in running text must lose to the complete one in
	// the title block.
	text := "suitable for Ex d IIC atmospheres\nMarking: Ex d IIC T6 Gb\n"

	var rec domain.CertificateRecord
	p.extractMarkings(&rec, text)

	assert.Equal(t, "Ex d IIC T6 Gb", rec.Marking)
	assert.Equal(t, []string{"Ex d IIC T6 Gb", "Ex d IIC T6", "Ex d IIC"}, rec.Markings)
}

func TestExtractMarkingsDeduplicates(t *testing.T) {
	p := NewParser()

	var rec domain.CertificateRecord
	p.extractMarkings(&rec, "Ex db IIC T4 Gb and again Ex db IIC T4 Gb")

	require.NotEmpty(t, rec.Markings)
	assert.Equal(t, "Ex db IIC T4 Gb", rec.Marking)

	seen := make(map[string]int)
	for _, m := range rec.Markings {
		seen[m]++
	}
	for m, n := range seen {
		assert.Equal(t, 1, n, "candidate %q repeated", m)
	}
}

func TestDecomposeProtection(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name    string
		marking string
		want    []domain.ProtectionType
	}{
		{
			name:    "two codes with levels",
			marking: "Ex db ia IIC T4 Gb",
			want: []domain.ProtectionType{
				{Code: "db", BaseType: "d", Level: "b", Description: "Flameproof enclosure"},
				{Code: "ia", BaseType: "i", Level: "a", Description: "Intrinsic safety"},
			},
		},
		{
			name:    "single letter code",
			marking: "Ex d IIC T6",
			want: []domain.ProtectionType{
				{Code: "d", BaseType: "d", Level: "", Description: "Flameproof enclosure"},
			},
		},
		{
			name:    "optical radiation code",
			marking: "Ex op IIC T4 Gb",
			want: []domain.ProtectionType{
				{Code: "op", BaseType: "op", Level: "", Description: "Optical radiation"},
			},
		},
		{
			name:    "dust protection",
			marking: "Ex tb IIIC T85°C Db",
			want: []domain.ProtectionType{
				{Code: "tb", BaseType: "t", Level: "b", Description: "Protection by enclosure (dust)"},
			},
		},
		{
			name:    "unparseable token skipped",
			marking: "Ex nA IIC T4 Gc",
			want:    nil,
		},
		{
			name:    "empty marking",
			marking: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := domain.CertificateRecord{Marking: tt.marking}
			p.decomposeProtection(&rec)

			assert.Equal(t, tt.want, rec.ProtectionTypes)
		})
	}
}

func TestDecomposeProtectionStopsAtGasGroup(t *testing.T) {
	p := NewParser()

	// Tokens after the group ("T4", "Gb") must never be read as codes.
	rec := domain.CertificateRecord{Marking: "Ex db IIC T4 Gb"}
	p.decomposeProtection(&rec)

	require.Len(t, rec.ProtectionTypes, 1)
	assert.Equal(t, "db", rec.ProtectionTypes[0].Code)
}
