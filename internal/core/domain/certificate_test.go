package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDustRated(t *testing.T) {
	tests := []struct {
		name   string
		record CertificateRecord
		want   bool
	}{
		{"gas group IIC", CertificateRecord{GasGroup: "IIC"}, false},
		{"dust group IIIC", CertificateRecord{GasGroup: "IIIC"}, true},
		{"dust EPL", CertificateRecord{EPL: "Db"}, true},
		{"gas EPL", CertificateRecord{EPL: "Gb"}, false},
		{"empty record", CertificateRecord{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.IsDustRated())
		})
	}
}

func TestScanRecordForHistory(t *testing.T) {
	rec := ScanRecord{
		ID:       "scan-1",
		FileName: "cert.pdf",
		Certificate: CertificateRecord{
			CertNumber: "IECEx ABC 12.0001X",
			Raw:        "full document text",
		},
	}

	stored := rec.ForHistory()
	assert.Empty(t, stored.Certificate.Raw)
	assert.Equal(t, "IECEx ABC 12.0001X", stored.Certificate.CertNumber)

	// The original is untouched.
	assert.Equal(t, "full document text", rec.Certificate.Raw)
}

func TestTableConsistency(t *testing.T) {
	// Every EPL maps to a non-empty zone.
	for epl, zone := range EPLZones {
		assert.NotEmpty(t, zone, "EPL %s", epl)
	}

	// Temperature classes cover T1..T6.
	assert.Len(t, TempClassMaxima, 6)

	// Notified-body matching relies on longer names appearing before their
	// substrings once sorted; the list itself must not contain duplicates.
	seen := make(map[string]bool)
	for _, body := range NotifiedBodies {
		assert.False(t, seen[body], "duplicate body %q", body)
		seen[body] = true
	}
}
