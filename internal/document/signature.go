package document

import (
	"strings"

	"github.com/siperdin/siperdin_api/internal/models"
)

// SignatureLayout is the signature-block variant of a document. Exactly one
// of the three Indonesian signing conventions applies, each carrying only
// the titles it needs.
type SignatureLayout interface {
	signatureLayout()
}

// DirectSignature prints the role label straight above the signer.
type DirectSignature struct{}

// ANSignature prints "a.n." (atas nama) with the delegating office.
type ANSignature struct {
	UpperTitle string
}

// UBSignature prints "a.n." plus "u.b." (untuk beliau) with both the
// delegating office and the intermediate office.
type UBSignature struct {
	UpperTitle        string
	IntermediateTitle string
}

func (DirectSignature) signatureLayout() {}
func (ANSignature) signatureLayout()     {}
func (UBSignature) signatureLayout()     {}

// LayoutFromLetter selects the layout variant for a letter, defaulting to
// the direct form when the stored type is unknown.
func LayoutFromLetter(l *models.AssignmentLetter) SignatureLayout {
	switch l.SignatureType {
	case models.SignatureAN:
		return ANSignature{UpperTitle: l.UpperTitle}
	case models.SignatureUB:
		return UBSignature{UpperTitle: l.UpperTitle, IntermediateTitle: l.IntermediateTitle}
	default:
		return DirectSignature{}
	}
}

// SignatureLine is one rendered line of the signature block.
type SignatureLine struct {
	Text      string
	Bold      bool
	Underline bool
}

// Signer is the resolved person signing a document.
type Signer struct {
	Name     string
	Rank     string
	NIP      string
	RoleName string
}

// SignatureLines renders a layout into its ordered lines: the variant's
// title lines, the role label in bold uppercase, four blank lines of
// signing space, then the signer's name, rank and NIP.
func SignatureLines(layout SignatureLayout, signer Signer) []SignatureLine {
	var lines []SignatureLine

	switch v := layout.(type) {
	case DirectSignature:
	case ANSignature:
		lines = append(lines, SignatureLine{Text: "a.n. " + v.UpperTitle})
	case UBSignature:
		lines = append(lines,
			SignatureLine{Text: "a.n. " + v.UpperTitle},
			SignatureLine{Text: v.IntermediateTitle + ","},
			SignatureLine{Text: "u.b."},
		)
	}

	lines = append(lines, SignatureLine{Text: strings.ToUpper(signer.RoleName), Bold: true})
	for i := 0; i < 4; i++ {
		lines = append(lines, SignatureLine{})
	}
	lines = append(lines,
		SignatureLine{Text: signer.Name, Bold: true, Underline: true},
		SignatureLine{Text: TitleCase(signer.Rank)},
		SignatureLine{Text: "NIP. " + FormatNIP(signer.NIP)},
	)
	return lines
}
