package schema

// Entry pairs a field name with its rule and its applicability condition.
type Entry struct {
	Field     string
	Rule      Rule
	Condition Condition
}

// Schema is an ordered rule table. Order is the evaluation (and reporting)
// order; a field name is unique within one table.
type Schema []Entry

// Lookup returns the entry for field, if present.
func (s Schema) Lookup(field string) (Entry, bool) {
	for _, e := range s {
		if e.Field == field {
			return e, true
		}
	}
	return Entry{}, false
}

// Fields returns the field names in table order.
func (s Schema) Fields() []string {
	fields := make([]string, len(s))
	for i, e := range s {
		fields[i] = e.Field
	}
	return fields
}

// Required returns the built-in required-parameter table.
//
// LabelingDuration and PostLabelingDelay apply only to (P)CASL labeling;
// InversionTime and the bolus cut-off parameters apply only to PASL.
func Required() Schema {
	return Schema{
		{
			Field:     "ArterialSpinLabelingType",
			Rule:      StringRule{Allowed: []string{"PASL", "(P)CASL", "PCASL"}},
			Condition: Always(),
		},
		{
			Field:     "BackgroundSuppression",
			Rule:      BoolRule{},
			Condition: Always(),
		},
		{
			Field:     "M0Type",
			Rule:      StringRule{},
			Condition: Always(),
		},
		{
			Field:     "TotalAcquiredPairs",
			Rule:      NumberRule{MinError: &Bound{Value: 0}},
			Condition: Always(),
		},
		{
			Field:     "AcquisitionVoxelSize",
			Rule:      NumberArrayRule{Size: 3},
			Condition: Always(),
		},
		{
			Field:     "LabelingDuration",
			Rule:      NumberRule{},
			Condition: WhenOneOf("ArterialSpinLabelingType", "PCASL", "CASL"),
		},
		{
			Field:     "PostLabelingDelay",
			Rule:      NumberOrArrayRule{},
			Condition: WhenOneOf("ArterialSpinLabelingType", "PCASL", "CASL"),
		},
		{
			Field:     "InversionTime",
			Rule:      NumberRule{MinError: &Bound{Value: 0}},
			Condition: WhenEquals("ArterialSpinLabelingType", "PASL"),
		},
		{
			Field:     "BolusCutOffTechnique",
			Rule:      StringRule{},
			Condition: WhenEquals("ArterialSpinLabelingType", "PASL"),
		},
		{
			Field:     "BolusCutOffDelayTime",
			Rule:      NumberOrArrayRule{},
			Condition: WhenEquals("ArterialSpinLabelingType", "PASL"),
		},
	}
}

// Recommended returns the built-in recommended-parameter table.
//
// Background-suppression sub-fields apply only when BackgroundSuppression is
// true; the vascular-crushing VENC applies only when VascularCrushing is
// true; labeling-pulse parameters apply only to (P)CASL labeling.
func Recommended() Schema {
	return Schema{
		{
			Field:     "BackgroundSuppressionNumberPulses",
			Rule:      NumberRule{MinError: &Bound{Value: 0, Exclusive: true}},
			Condition: WhenEquals("BackgroundSuppression", true),
		},
		{
			Field:     "BackgroundSuppressionPulseTime",
			Rule:      NumberArrayRule{MinError: &Bound{Value: 0}},
			Condition: WhenEquals("BackgroundSuppression", true),
		},
		{
			Field:     "LabelingLocationDescription",
			Rule:      StringRule{},
			Condition: Always(),
		},
		{
			Field:     "VascularCrushingVENC",
			Rule:      NumberOrArrayRule{MinError: &Bound{Value: 0, Exclusive: true}},
			Condition: WhenEquals("VascularCrushing", true),
		},
		{
			Field:     "PCASLType",
			Rule:      StringRule{Allowed: []string{"balanced", "unbalanced"}},
			Condition: WhenEquals("ArterialSpinLabelingType", "PCASL"),
		},
		{
			Field:     "CASLType",
			Rule:      StringRule{Allowed: []string{"single-coil", "double-coil"}},
			Condition: WhenEquals("ArterialSpinLabelingType", "CASL"),
		},
		{
			Field:     "LabelingDistance",
			Rule:      NumberRule{},
			Condition: Always(),
		},
		{
			Field:     "LabelingPulseAverageGradient",
			Rule:      NumberRule{MinError: &Bound{Value: 0}},
			Condition: WhenOneOf("ArterialSpinLabelingType", "PCASL", "CASL"),
		},
		{
			Field:     "LabelingPulseMaximumGradient",
			Rule:      NumberRule{MinError: &Bound{Value: 0}},
			Condition: WhenOneOf("ArterialSpinLabelingType", "PCASL", "CASL"),
		},
		{
			Field:     "LabelingPulseAverageB1",
			Rule:      NumberRule{MinError: &Bound{Value: 0}},
			Condition: WhenOneOf("ArterialSpinLabelingType", "PCASL", "CASL"),
		},
		{
			Field: "LabelingPulseFlipAngle",
			Rule: NumberRule{
				MinError: &Bound{Value: 0},
				MaxError: &Bound{Value: 360, Exclusive: true},
			},
			Condition: WhenOneOf("ArterialSpinLabelingType", "PCASL", "CASL"),
		},
		{
			Field:     "LabelingPulseInterval",
			Rule:      NumberRule{MinError: &Bound{Value: 0}},
			Condition: WhenOneOf("ArterialSpinLabelingType", "PCASL", "CASL"),
		},
		{
			Field:     "LabelingPulseDuration",
			Rule:      NumberRule{MinError: &Bound{Value: 0}},
			Condition: WhenOneOf("ArterialSpinLabelingType", "PCASL", "CASL"),
		},
		{
			Field:     "PASLType",
			Rule:      StringRule{},
			Condition: WhenEquals("ArterialSpinLabelingType", "PASL"),
		},
		{
			Field:     "LabelingSlabThickness",
			Rule:      NumberRule{MinError: &Bound{Value: 0, Exclusive: true}},
			Condition: WhenEquals("ArterialSpinLabelingType", "PASL"),
		},
	}
}
