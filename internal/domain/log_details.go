package domain

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// FeedType distinguishes breast from bottle feeds.
type FeedType string

const (
	FeedTypeNursing FeedType = "nursing"
	FeedTypeBottle  FeedType = "bottle"
)

// DiaperType classifies a diaper change.
type DiaperType string

const (
	DiaperWet   DiaperType = "wet"
	DiaperDirty DiaperType = "dirty"
	DiaperBoth  DiaperType = "both"
)

// PooType is the closed set of stool appearances a caregiver can pick.
type PooType string

const (
	PooSeedyYellow PooType = "seedy_yellow"
	PooTanBrown    PooType = "tan_brown"
	PooOrange      PooType = "orange"
	PooGreen       PooType = "green"
	PooBlack       PooType = "black"
	PooRed         PooType = "red"
	PooWhite       PooType = "white"
	PooClay        PooType = "clay"
)

var pooTypes = map[PooType]struct{}{
	PooSeedyYellow: {}, PooTanBrown: {}, PooOrange: {}, PooGreen: {},
	PooBlack: {}, PooRed: {}, PooWhite: {}, PooClay: {},
}

// Typical reports whether the stool colour is in the usual range for infants.
func (p PooType) Typical() bool {
	switch p {
	case PooSeedyYellow, PooTanBrown, PooOrange:
		return true
	}
	return false
}

// LogDetails is the decoded, type-specific view of Log.Metadata.
// Exactly one concrete type exists per LogType.
type LogDetails interface {
	logType() LogType
}

type FeedDetails struct {
	FeedType FeedType `json:"feed_type,omitempty"`
	AmountML *float64 `json:"amount_ml,omitempty"`
	MilkType string   `json:"milk_type,omitempty"`
}

type SleepDetails struct{}

type DiaperDetails struct {
	DiaperType DiaperType `json:"diaper_type,omitempty"`
	PooType    PooType    `json:"poo_type,omitempty"`
}

type HealthDetails struct {
	Temperature *float64 `json:"temperature_c,omitempty"`
	Symptom     string   `json:"symptom,omitempty"`
}

type MilestoneDetails struct {
	Title string `json:"title,omitempty"`
}

func (FeedDetails) logType() LogType      { return LogTypeFeed }
func (SleepDetails) logType() LogType     { return LogTypeSleep }
func (DiaperDetails) logType() LogType    { return LogTypeDiaper }
func (HealthDetails) logType() LogType    { return LogTypeHealth }
func (MilestoneDetails) logType() LogType { return LogTypeMilestone }

// Details decodes the metadata bag for the log's type. Unknown keys are
// ignored and malformed JSON yields the zero details for the type.
func (l *Log) Details() LogDetails {
	switch l.Type {
	case LogTypeFeed:
		var d FeedDetails
		decodeInto(l.Metadata, &d)
		if d.FeedType != FeedTypeNursing && d.FeedType != FeedTypeBottle {
			d.FeedType = ""
		}
		return d
	case LogTypeDiaper:
		var d DiaperDetails
		decodeInto(l.Metadata, &d)
		switch d.DiaperType {
		case DiaperWet, DiaperDirty, DiaperBoth:
		default:
			d.DiaperType = ""
		}
		if _, ok := pooTypes[d.PooType]; !ok {
			d.PooType = ""
		}
		return d
	case LogTypeHealth:
		var d HealthDetails
		decodeInto(l.Metadata, &d)
		return d
	case LogTypeMilestone:
		var d MilestoneDetails
		decodeInto(l.Metadata, &d)
		return d
	default:
		return SleepDetails{}
	}
}

// FeedDetails is a shortcut for feed logs; other types yield zero details.
func (l *Log) FeedDetails() FeedDetails {
	if d, ok := l.Details().(FeedDetails); ok {
		return d
	}
	return FeedDetails{}
}

// DiaperDetails is a shortcut for diaper logs; other types yield zero details.
func (l *Log) DiaperDetails() DiaperDetails {
	if d, ok := l.Details().(DiaperDetails); ok {
		return d
	}
	return DiaperDetails{}
}

func decodeInto(raw datatypes.JSON, v any) {
	if len(raw) == 0 {
		return
	}
	// Type mismatches on individual keys leave the rest decoded.
	_ = json.Unmarshal(raw, v)
}

// EncodeMetadata validates the recognized keys for t and returns the jsonb
// payload to store. Unrecognized keys are dropped.
func EncodeMetadata(t LogType, raw map[string]any) (datatypes.JSON, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var details LogDetails
	switch t {
	case LogTypeFeed:
		d := FeedDetails{}
		if v, ok := raw["feed_type"]; ok {
			s, _ := v.(string)
			if s != string(FeedTypeNursing) && s != string(FeedTypeBottle) {
				return nil, fmt.Errorf("%w: feed_type must be nursing or bottle", ErrInvalidMetadata)
			}
			d.FeedType = FeedType(s)
		}
		if v, ok := raw["amount_ml"]; ok {
			n, ok := v.(float64)
			if !ok || n < 0 {
				return nil, fmt.Errorf("%w: amount_ml must be a non-negative number", ErrInvalidMetadata)
			}
			d.AmountML = &n
		}
		if v, ok := raw["milk_type"].(string); ok {
			d.MilkType = v
		}
		details = d
	case LogTypeDiaper:
		d := DiaperDetails{}
		if v, ok := raw["diaper_type"]; ok {
			s, _ := v.(string)
			switch DiaperType(s) {
			case DiaperWet, DiaperDirty, DiaperBoth:
				d.DiaperType = DiaperType(s)
			default:
				return nil, fmt.Errorf("%w: diaper_type must be wet, dirty or both", ErrInvalidMetadata)
			}
		}
		if v, ok := raw["poo_type"]; ok {
			s, _ := v.(string)
			if _, known := pooTypes[PooType(s)]; !known {
				return nil, fmt.Errorf("%w: unknown poo_type %q", ErrInvalidMetadata, s)
			}
			d.PooType = PooType(s)
		}
		details = d
	case LogTypeHealth:
		d := HealthDetails{}
		if v, ok := raw["temperature_c"].(float64); ok {
			d.Temperature = &v
		}
		if v, ok := raw["symptom"].(string); ok {
			d.Symptom = v
		}
		details = d
	case LogTypeMilestone:
		d := MilestoneDetails{}
		if v, ok := raw["title"].(string); ok {
			d.Title = v
		}
		details = d
	default:
		return nil, nil
	}

	data, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	if string(data) == "{}" {
		return nil, nil
	}
	return datatypes.JSON(data), nil
}
