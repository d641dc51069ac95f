package document

import (
	"context"
	"encoding/base64"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/siperdin/siperdin_api/internal/models"
)

// Letterhead is the resolved document header: either a fetched kop surat
// image or the agency identity lines rendered as text.
type Letterhead struct {
	Image    []byte
	ImageExt string
	Lines    []string
}

// FetchLetterhead downloads the configured kop surat image. A missing URL,
// fetch failure or unsupported format falls back to a text header built
// from the agency settings. Document generation never fails on this.
func FetchLetterhead(ctx context.Context, client *http.Client, settings *models.AgencySettings, timeout time.Duration) Letterhead {
	fallback := textLetterhead(settings)

	url := ""
	if settings != nil {
		url = strings.TrimSpace(settings.KopSuratURL)
	}
	if url == "" {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("Invalid letterhead URL, using text header")
		return fallback
	}
	resp, err := client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("Failed to fetch letterhead, using text header")
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("url", url).Msg("Letterhead fetch returned non-200, using text header")
		return fallback
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 5<<20))
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("Failed to read letterhead body, using text header")
		return fallback
	}

	ext := imageExt(resp.Header.Get("Content-Type"), url)
	if ext == "" {
		log.Warn().Str("url", url).Msg("Unsupported letterhead image format, using text header")
		return fallback
	}
	return Letterhead{Image: data, ImageExt: ext}
}

func imageExt(contentType, url string) string {
	switch {
	case strings.Contains(contentType, "png"):
		return "png"
	case strings.Contains(contentType, "jpeg"), strings.Contains(contentType, "jpg"):
		return "jpeg"
	}
	lower := strings.ToLower(url)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return "png"
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "jpeg"
	}
	return ""
}

func textLetterhead(settings *models.AgencySettings) Letterhead {
	if settings == nil {
		return Letterhead{Lines: []string{"PEMERINTAH DAERAH"}}
	}
	var lines []string
	for _, l := range []string{settings.Name, settings.Department} {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, strings.ToUpper(l))
		}
	}
	var contact []string
	if settings.Address != "" {
		contact = append(contact, settings.Address)
	}
	if settings.ContactInfo != "" {
		contact = append(contact, settings.ContactInfo)
	}
	if len(contact) > 0 {
		lines = append(lines, strings.Join(contact, " "))
	}
	if len(lines) == 0 {
		lines = []string{"PEMERINTAH DAERAH"}
	}
	return Letterhead{Lines: lines}
}

// letterheadDataURI inlines the fetched image for the HTML print view so
// the page has no external references. Empty when there is no image.
// Returned as template.URL because data URIs are otherwise sanitized away.
func letterheadDataURI(l Letterhead) template.URL {
	if l.Image == nil {
		return ""
	}
	return template.URL("data:image/" + l.ImageExt + ";base64," + base64.StdEncoding.EncodeToString(l.Image))
}

// apply renders the letterhead into a docx document.
func (l Letterhead) apply(doc *Doc) {
	if l.Image != nil {
		doc.SetHeaderImage(l.Image, l.ImageExt)
		return
	}
	for i, line := range l.Lines {
		p := Paragraph{Align: AlignCenter, Runs: []Run{{Text: line, Bold: i < len(l.Lines)-1 || len(l.Lines) == 1}}}
		doc.AddParagraph(p)
	}
}
