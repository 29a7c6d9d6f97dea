package domain

import "strings"

// CertType identifies the certification scheme a certificate number belongs to.
type CertType string

const (
	// CertTypeIECEx is the international IECEx scheme.
	CertTypeIECEx CertType = "IECEx"

	// CertTypeATEX is the European ATEX directive scheme.
	CertTypeATEX CertType = "ATEX"

	// CertTypeUKCA is the UK conformity scheme (UKEX numbers).
	CertTypeUKCA CertType = "UKCA"

	// CertTypeIECExATEX marks dual certification: an IECEx number with an
	// embedded ATEX number elsewhere in the document.
	CertTypeIECExATEX CertType = "IECEx+ATEX"
)

// ProtectionType is a single protection concept decoded from the Ex marking,
// e.g. "db" decomposes to base type "d" at level "b".
type ProtectionType struct {
	// Code is the token as it appears in the marking (e.g. "db", "ia", "op").
	Code string `json:"code"`

	// BaseType is the protection concept letter(s) (e.g. "d", "i", "op").
	BaseType string `json:"baseType"`

	// Level is the optional protection level suffix ("a", "b" or "c").
	Level string `json:"level,omitempty"`

	// Description is the human-readable concept name, or "Unknown" when the
	// base type is not in the lookup table.
	Description string `json:"description"`
}

// CertificateRecord is the structured result of parsing one certificate
// document. It is built once per Parse call and never mutated afterwards.
//
// Every scalar field uses the empty string for absence; a present field is
// always non-empty. Sequences use nil/empty for absence.
type CertificateRecord struct {
	// CertNumber is the certificate number as matched, whitespace-normalised.
	CertNumber string `json:"certNumber,omitempty"`

	// CertType is the scheme the certificate number belongs to.
	CertType CertType `json:"certType,omitempty"`

	// Marking is the best (longest distinct) Ex marking candidate.
	Marking string `json:"marking,omitempty"`

	// Markings holds all distinct marking candidates, longest first.
	Markings []string `json:"markings,omitempty"`

	// ProtectionTypes is decoded from the prefix of Marking only, never from
	// the surrounding document text.
	ProtectionTypes []ProtectionType `json:"protectionTypes,omitempty"`

	// GasGroup is the explosion group (I, IIA..IIC, IIIA..IIIC).
	GasGroup string `json:"gasGroup,omitempty"`

	// GasGroupInfo is the lookup-table description for GasGroup.
	GasGroupInfo string `json:"gasGroupInfo,omitempty"`

	// TempClass is the temperature class (T1..T6).
	TempClass string `json:"tempClass,omitempty"`

	// TempClassMax is the maximum surface temperature for TempClass.
	TempClassMax string `json:"tempClassMax,omitempty"`

	// EPL is the equipment protection level (Ga/Gb/Gc, Da/Db/Dc, Ma/Mb).
	EPL string `json:"epl,omitempty"`

	// Zone is the hazardous-area zone, either matched explicitly or derived
	// from EPL. A derived value carries the "(derived from EPL)" suffix so
	// consumers can tell the two apart.
	Zone string `json:"zone,omitempty"`

	// IPRating is the ingress protection rating (e.g. "IP66").
	IPRating string `json:"ipRating,omitempty"`

	// AmbientTemp is the ambient temperature range as written, not parsed.
	AmbientTemp string `json:"ambientTemp,omitempty"`

	// Manufacturer is the manufacturer name from a label-anchored match.
	Manufacturer string `json:"manufacturer,omitempty"`

	// Equipment is the certified product or apparatus designation.
	Equipment string `json:"equipment,omitempty"`

	// NotifiedBody is the issuing certification body, resolved against the
	// known-body list with longest names checked first.
	NotifiedBody string `json:"notifiedBody,omitempty"`

	// IssueDate is the issue date as matched in the document, not normalised.
	IssueDate string `json:"issueDate,omitempty"`

	// ExpiryDate is the expiry date as matched in the document, not normalised.
	ExpiryDate string `json:"expiryDate,omitempty"`

	// SpecialConditions is the conditions-of-use block, truncated to 500
	// characters.
	SpecialConditions string `json:"specialConditions,omitempty"`

	// Standard is the comma-joined list of distinct 60079-series references.
	Standard string `json:"standard,omitempty"`

	// Category is the ATEX equipment category (e.g. "2G").
	Category string `json:"category,omitempty"`

	// Group is the ATEX equipment group (I, II or III).
	Group string `json:"group,omitempty"`

	// Raw is the full input text, kept for display and audit. It is not
	// persisted in scan history.
	Raw string `json:"raw,omitempty"`
}

// HasMarking reports whether a marking was found.
func (r *CertificateRecord) HasMarking() bool {
	return r.Marking != ""
}

// ProtectionCodes flattens the protection-type sequence by joining the
// element codes with "; ", the canonical form for display and export of
// sequence-valued fields.
func (r *CertificateRecord) ProtectionCodes() string {
	codes := make([]string, len(r.ProtectionTypes))
	for i, pt := range r.ProtectionTypes {
		codes[i] = pt.Code
	}
	return strings.Join(codes, "; ")
}

// IsDustRated reports whether the record is rated for dust atmospheres,
// either via a group III gas group or a D-series EPL.
func (r *CertificateRecord) IsDustRated() bool {
	if len(r.GasGroup) == 4 && r.GasGroup[:3] == "III" {
		return true
	}
	return len(r.EPL) == 2 && r.EPL[0] == 'D'
}
