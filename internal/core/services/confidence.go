package services

import "github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"

// fieldWeight pairs a record field with its contribution to the confidence
// score. The weights sum to exactly 100.
type fieldWeight struct {
	name    string
	weight  int
	present func(domain.CertificateRecord) bool
}

var confidenceWeights = []fieldWeight{
	{"certNumber", 20, func(r domain.CertificateRecord) bool { return r.CertNumber != "" }},
	{"marking", 20, func(r domain.CertificateRecord) bool { return r.Marking != "" }},
	{"gasGroup", 10, func(r domain.CertificateRecord) bool { return r.GasGroup != "" }},
	{"tempClass", 10, func(r domain.CertificateRecord) bool { return r.TempClass != "" }},
	{"protectionTypes", 10, func(r domain.CertificateRecord) bool { return len(r.ProtectionTypes) > 0 }},
	{"epl", 5, func(r domain.CertificateRecord) bool { return r.EPL != "" }},
	{"manufacturer", 5, func(r domain.CertificateRecord) bool { return r.Manufacturer != "" }},
	{"equipment", 5, func(r domain.CertificateRecord) bool { return r.Equipment != "" }},
	{"notifiedBody", 5, func(r domain.CertificateRecord) bool { return r.NotifiedBody != "" }},
	{"ipRating", 3, func(r domain.CertificateRecord) bool { return r.IPRating != "" }},
	{"ambientTemp", 3, func(r domain.CertificateRecord) bool { return r.AmbientTemp != "" }},
	{"issueDate", 2, func(r domain.CertificateRecord) bool { return r.IssueDate != "" }},
	{"expiryDate", 2, func(r domain.CertificateRecord) bool { return r.ExpiryDate != "" }},
}

// Confidence computes the weighted-sum extraction score for a finished
// record. The result is clamped to [0, 100]; the upper cap is an invariant
// of the contract even though the weights already sum to 100.
func (p *ParserService) Confidence(rec domain.CertificateRecord) int {
	score := 0
	for _, fw := range confidenceWeights {
		if fw.present(rec) {
			score += fw.weight
		}
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
