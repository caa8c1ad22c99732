// Package eaf builds ELAN annotation documents (EAF 3.0) from parsed
// subtitle tiers.
//
// Documents are modelled as encoding/xml structs and rendered with
// xml.MarshalIndent; escaping of text and attributes is left to the
// encoder after control characters have been removed with CleanText.
package eaf

import (
	"encoding/xml"
	"fmt"
)

const (
	FormatVersion     = "3.0"
	SchemaLocation    = "http://www.mpi.nl/tools/elan/EAFv3.0.xsd"
	xsiNamespace      = "http://www.w3.org/2001/XMLSchema-instance"
	TimeUnits         = "milliseconds"
	LinguisticTypeID  = "default-lt"
	URNPrefix         = "urn:nl-mpi-tools-elan-eaf:"
	DefaultProvenance = "srt2eaf"
)

// Document is the root ANNOTATION_DOCUMENT element.
type Document struct {
	XMLName                   xml.Name       `xml:"ANNOTATION_DOCUMENT"`
	XSI                       string         `xml:"xmlns:xsi,attr"`
	NoNamespaceSchemaLocation string         `xml:"xsi:noNamespaceSchemaLocation,attr"`
	Author                    string         `xml:"AUTHOR,attr"`
	Date                      string         `xml:"DATE,attr"`
	Format                    string         `xml:"FORMAT,attr"`
	Version                   string         `xml:"VERSION,attr"`
	Header                    Header         `xml:"HEADER"`
	TimeOrder                 TimeOrder      `xml:"TIME_ORDER"`
	Tiers                     []TierElement  `xml:"TIER"`
	LinguisticType            LinguisticType `xml:"LINGUISTIC_TYPE"`
}

type Header struct {
	MediaFile       string           `xml:"MEDIA_FILE,attr"`
	TimeUnits       string           `xml:"TIME_UNITS,attr"`
	MediaDescriptor *MediaDescriptor `xml:"MEDIA_DESCRIPTOR,omitempty"`
	Properties      []Property       `xml:"PROPERTY"`
}

type MediaDescriptor struct {
	MediaURL         string `xml:"MEDIA_URL,attr"`
	MimeType         string `xml:"MIME_TYPE,attr"`
	RelativeMediaURL string `xml:"RELATIVE_MEDIA_URL,attr,omitempty"`
}

type Property struct {
	Name  string `xml:"NAME,attr"`
	Value string `xml:",chardata"`
}

type TimeOrder struct {
	Slots []TimeSlotElement `xml:"TIME_SLOT"`
}

type TimeSlotElement struct {
	ID    string `xml:"TIME_SLOT_ID,attr"`
	Value int64  `xml:"TIME_VALUE,attr"`
}

type TierElement struct {
	LinguisticTypeRef string       `xml:"LINGUISTIC_TYPE_REF,attr"`
	Participant       string       `xml:"PARTICIPANT,attr"`
	ID                string       `xml:"TIER_ID,attr"`
	Annotations       []Annotation `xml:"ANNOTATION"`
}

type Annotation struct {
	Alignable AlignableAnnotation `xml:"ALIGNABLE_ANNOTATION"`
}

type AlignableAnnotation struct {
	ID       string `xml:"ANNOTATION_ID,attr"`
	SlotRef1 string `xml:"TIME_SLOT_REF1,attr"`
	SlotRef2 string `xml:"TIME_SLOT_REF2,attr"`
	Value    string `xml:"ANNOTATION_VALUE"`
}

type LinguisticType struct {
	GraphicReferences string `xml:"GRAPHIC_REFERENCES,attr"`
	ID                string `xml:"LINGUISTIC_TYPE_ID,attr"`
	TimeAlignable     string `xml:"TIME_ALIGNABLE,attr"`
}

// renders the document with an XML declaration
func (d *Document) Marshal() ([]byte, error) {
	out, err := xml.MarshalIndent(d, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal EAF document: %w", err)
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}

// returns the value of a HEADER property, if present
func (d *Document) Property(name string) (string, bool) {
	for _, p := range d.Header.Properties {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// number of annotations across all tiers
func (d *Document) AnnotationCount() int {
	n := 0
	for _, t := range d.Tiers {
		n += len(t.Annotations)
	}
	return n
}
