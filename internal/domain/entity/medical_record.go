package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// MedicalRecord is a clinical entry. AppointmentID, PatientID and DoctorID are
// loose links and are not validated.
type MedicalRecord struct {
	ID            string `json:"id"`
	PatientID     string `json:"patientId"`
	DoctorID      string `json:"doctorId"`
	AppointmentID string `json:"appointmentId,omitempty"`
	Date          string `json:"date"` // YYYY-MM-DD
	Diagnosis     string `json:"diagnosis"`
	Treatment     string `json:"treatment"`
	Notes         string `json:"notes"`
	Vitals        Vitals `json:"vitals,omitempty"`
}

func (r MedicalRecord) EntityID() string {
	return r.ID
}

// VitalName names a reading. The set is open: unknown names are kept as-is.
type VitalName string

const (
	VitalBloodPressure VitalName = "bloodPressure"
	VitalHeartRate     VitalName = "heartRate"
	VitalTemperature   VitalName = "temperature"
	VitalWeight        VitalName = "weight"
)

// KnownVitals lists the readings the clinical forms know how to label, in display order
var KnownVitals = []VitalName{VitalBloodPressure, VitalHeartRate, VitalTemperature, VitalWeight}

// Vitals is an open map of named readings; every key is optional
type Vitals map[VitalName]VitalReading

// Names returns the keys present in v: known vitals in display order first,
// then any others alphabetically.
func (v Vitals) Names() []VitalName {
	names := make([]VitalName, 0, len(v))
	known := make(map[VitalName]bool, len(KnownVitals))
	for _, name := range KnownVitals {
		known[name] = true
		if _, ok := v[name]; ok {
			names = append(names, name)
		}
	}
	extra := make([]VitalName, 0)
	for name := range v {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(names, extra...)
}

// VitalReading is either free text ("130/85", "72 bpm") or an exact number.
// It encodes to a JSON string or a JSON number respectively.
type VitalReading struct {
	Text  string
	Value *decimal.Decimal
}

// TextReading builds a free-text reading
func TextReading(s string) VitalReading {
	return VitalReading{Text: s}
}

// NumericReading builds a numeric reading
func NumericReading(d decimal.Decimal) VitalReading {
	return VitalReading{Value: &d}
}

// ParseVitalReading keeps plain numbers exact and everything else as text
func ParseVitalReading(s string) VitalReading {
	s = strings.TrimSpace(s)
	if d, err := decimal.NewFromString(s); err == nil {
		return NumericReading(d)
	}
	return TextReading(s)
}

// IsNumeric reports whether the reading holds a number
func (r VitalReading) IsNumeric() bool {
	return r.Value != nil
}

func (r VitalReading) String() string {
	if r.Value != nil {
		return r.Value.String()
	}
	return r.Text
}

func (r VitalReading) MarshalJSON() ([]byte, error) {
	if r.Value != nil {
		return []byte(r.Value.String()), nil
	}
	return json.Marshal(r.Text)
}

func (r *VitalReading) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*r = VitalReading{}
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*r = VitalReading{Text: text}
		return nil
	}
	value, err := decimal.NewFromString(string(trimmed))
	if err != nil {
		return fmt.Errorf("vital reading %s: %w", trimmed, err)
	}
	*r = VitalReading{Value: &value}
	return nil
}

// MedicalRecordFilter is a domain-level filter for a patient's records
type MedicalRecordFilter struct {
	Search   string // case-insensitive match on diagnosis, treatment or doctor name
	DoctorID string
}
