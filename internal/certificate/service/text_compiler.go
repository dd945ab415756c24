package service

import (
	"strings"

	"github.com/allisson/certmaker/internal/certificate/domain"
)

// CompiledText holds the exact display strings derived from a request.
// An empty DateLine means the date line is omitted from the rendered output.
type CompiledText struct {
	FullName        string
	DateLine        string
	DegreeLine      string
	AchievementLine string
}

// CompileText derives the display strings from the structured request,
// applying the style's name transform. User-supplied substrings are rendered
// byte-for-byte as submitted; the compact transform is the only casing rule.
func CompileText(req *domain.CertificateRequest, transform domain.NameTransform) CompiledText {
	text := CompiledText{
		FullName:        req.FirstName + " " + req.LastName,
		DegreeLine:      req.DegreeLevel + " of " + req.Faculty,
		AchievementLine: "For outstanding achievement in " + req.Achievement,
	}

	if transform == domain.TransformCompact {
		text.FullName = strings.ToUpper(req.FirstName + "_" + req.LastName)
		text.DegreeLine = strings.ToUpper(text.DegreeLine)
	}

	if req.CertificationDate != "" {
		text.DateLine = "On this " + req.CertificationDate + ", do bestow the degree of:"
	}

	return text
}
