// Package domain defines the core domain models for certificate rendering:
// the certificate request, the style enumeration, and the per-style layout
// tables (fonts, vertical offsets, background assets).
package domain

// CertificateRequest carries the buyer-submitted fields for one certificate.
// All fields except CertificationDate are required non-empty strings; an empty
// CertificationDate suppresses the date line in the rendered output.
type CertificateRequest struct {
	FirstName         string
	LastName          string
	CertificationDate string
	DegreeLevel       string
	Faculty           string
	Achievement       string
	Style             Style
}

// RenderedCertificate is the output of one render call: a complete single-page
// document plus its content type. The renderer never returns partial output.
type RenderedCertificate struct {
	Bytes       []byte
	ContentType string
}
