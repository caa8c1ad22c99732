package eaf

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoTiers         = errors.New("no tiers to assemble")
	ErrDuplicateTier   = errors.New("duplicate tier id")
	ErrMissingTimeSlot = errors.New("time value missing from time slot table")
)

// document level metadata
type Metadata struct {
	Author        string
	Date          time.Time // generation time, defaults to now
	MediaPath     string    // optional media reference
	MediaDuration int64     // ms, zero when unknown
	URN           string    // defaults to a random UUID URN
	Provenance    string    // defaults to DefaultProvenance
}

// NewURN returns a fresh document URN.
func NewURN() string {
	return URNPrefix + uuid.NewString()
}

// Assemble renders tiers against the shared time slot table. Tiers keep
// their order; annotation ids a1..aN follow tier order, then cue order.
func Assemble(table *TimeSlotTable, tiers []*Tier, meta Metadata) (*Document, error) {
	if len(tiers) == 0 {
		return nil, ErrNoTiers
	}

	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}
	if meta.URN == "" {
		meta.URN = NewURN()
	}
	if meta.Provenance == "" {
		meta.Provenance = DefaultProvenance
	}
	if meta.Author == "" {
		meta.Author = DefaultProvenance
	}

	doc := &Document{
		XSI:                       xsiNamespace,
		NoNamespaceSchemaLocation: SchemaLocation,
		Author:                    CleanText(meta.Author),
		Date:                      meta.Date.Format(time.RFC3339),
		Format:                    FormatVersion,
		Version:                   FormatVersion,
		Header: Header{
			TimeUnits: TimeUnits,
		},
		LinguisticType: LinguisticType{
			GraphicReferences: "false",
			ID:                LinguisticTypeID,
			TimeAlignable:     "true",
		},
	}

	if meta.MediaPath != "" {
		doc.Header.MediaDescriptor = NewMediaDescriptor(CleanText(meta.MediaPath))
	}

	for _, slot := range table.Slots() {
		doc.TimeOrder.Slots = append(doc.TimeOrder.Slots, TimeSlotElement{
			ID:    slot.ID,
			Value: slot.Value,
		})
	}

	seen := make(map[string]bool, len(tiers))
	annotationID := 0
	for _, tier := range tiers {
		if seen[tier.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTier, tier.Name)
		}
		seen[tier.Name] = true

		el := TierElement{
			LinguisticTypeRef: LinguisticTypeID,
			Participant:       CleanText(tier.DisplayName),
			ID:                tier.Name,
			Annotations:       make([]Annotation, 0, len(tier.Cues)),
		}

		for _, cue := range tier.Cues {
			ref1, ok := table.ID(cue.StartTime)
			if !ok {
				return nil, fmt.Errorf("%w: tier %s start %d", ErrMissingTimeSlot, tier.Name, cue.StartTime)
			}
			ref2, ok := table.ID(cue.EndTime)
			if !ok {
				return nil, fmt.Errorf("%w: tier %s end %d", ErrMissingTimeSlot, tier.Name, cue.EndTime)
			}

			annotationID++
			el.Annotations = append(el.Annotations, Annotation{
				Alignable: AlignableAnnotation{
					ID:       "a" + strconv.Itoa(annotationID),
					SlotRef1: ref1,
					SlotRef2: ref2,
					Value:    CleanText(cue.Text),
				},
			})
		}

		doc.Tiers = append(doc.Tiers, el)
	}

	doc.Header.Properties = []Property{
		{Name: "URN", Value: meta.URN},
		{Name: "lastUsedAnnotationId", Value: strconv.Itoa(annotationID)},
		{Name: "generator", Value: CleanText(meta.Provenance)},
	}
	if meta.MediaDuration > 0 {
		doc.Header.Properties = append(doc.Header.Properties, Property{
			Name:  "mediaDuration",
			Value: strconv.FormatInt(meta.MediaDuration, 10),
		})
	}

	return doc, nil
}
