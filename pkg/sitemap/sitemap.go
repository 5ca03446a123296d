// Package sitemap renders sitemaps.org documents with Google image
// extensions and publishes them atomically.
package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"kamenpro-backend/internal/domain"
)

const (
	NamespaceSitemap = "http://www.sitemaps.org/schemas/sitemap/0.9"
	NamespaceXSI     = "http://www.w3.org/2001/XMLSchema-instance"
	NamespaceImage   = "http://www.google.com/schemas/sitemap-image/1.1"

	schemaLocation = NamespaceSitemap + " " + NamespaceSitemap + "/sitemap.xsd " +
		NamespaceImage + " " + NamespaceImage + "/sitemap-image.xsd"
)

type urlSet struct {
	XMLName        xml.Name  `xml:"urlset"`
	Xmlns          string    `xml:"xmlns,attr"`
	XmlnsXSI       string    `xml:"xmlns:xsi,attr"`
	XmlnsImage     string    `xml:"xmlns:image,attr"`
	SchemaLocation string    `xml:"xsi:schemaLocation,attr"`
	URLs           []urlNode `xml:"url"`
}

type urlNode struct {
	Loc        string      `xml:"loc"`
	LastMod    string      `xml:"lastmod,omitempty"`
	ChangeFreq string      `xml:"changefreq,omitempty"`
	Priority   string      `xml:"priority"`
	Images     []imageNode `xml:"image:image"`
}

type imageNode struct {
	Loc     string `xml:"image:loc"`
	Title   string `xml:"image:title,omitempty"`
	Caption string `xml:"image:caption,omitempty"`
}

// Render produces the sitemap document. The output depends only on entries.
func Render(entries []domain.SitemapEntry) ([]byte, error) {
	doc := urlSet{
		Xmlns:          NamespaceSitemap,
		XmlnsXSI:       NamespaceXSI,
		XmlnsImage:     NamespaceImage,
		SchemaLocation: schemaLocation,
		URLs:           make([]urlNode, 0, len(entries)),
	}

	for _, e := range entries {
		if e.Loc == "" {
			return nil, fmt.Errorf("sitemap entry without loc")
		}
		n := urlNode{
			Loc:        e.Loc,
			LastMod:    e.LastMod,
			ChangeFreq: string(e.ChangeFreq),
			Priority:   formatPriority(e.Priority),
		}
		for _, img := range e.Images {
			n.Images = append(n.Images, imageNode{Loc: img.Loc, Title: img.Title, Caption: img.Caption})
		}
		doc.URLs = append(doc.URLs, n)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// formatPriority clamps to 0..1 and keeps one decimal ("1.0", "0.8").
func formatPriority(p float64) string {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return strconv.FormatFloat(p, 'f', 1, 64)
}
