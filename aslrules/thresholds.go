package aslrules

// Sentinel values recorded in place of real parameter values.
const (
	// NotApplicable marks a parameter whose gating condition does not hold
	NotApplicable = "Not applicable"
	// NotProvided marks an applicable parameter missing from the record
	NotProvided = "Not provided"
	// RecommendedToSpecify marks a recommended parameter worth adding
	RecommendedToSpecify = "Recommended to be specified"
)

// Thresholds for total acquired pairs.
const (
	MinPairsWarning = 0
	MaxPairsWarning = 10
	MinPairsError   = -1
	MaxPairsError   = 100
)

// Thresholds for each acquisition voxel size element, in millimeters.
const (
	VoxelSizeMinWarning = 1
	VoxelSizeMaxWarning = 10
	VoxelSizeMinError   = 0
	VoxelSizeMaxError   = 100
)

// Thresholds for labeling duration and post labeling delay, in seconds.
const (
	MinLabelingDurationWarning = 1
	MaxLabelingDurationWarning = 10
	MinLabelingDurationError   = 0
	MaxLabelingDurationError   = 100

	MinPostLabelingDelayWarning = 1
	MaxPostLabelingDelayWarning = 10
	MinPostLabelingDelayError   = 0
	MaxPostLabelingDelayError   = 100
)

// MinInversionTimeError is the exclusive lower bound for inversion time.
const MinInversionTimeError = 0

// VoxelSizeLength is the required element count of AcquisitionVoxelSize.
const VoxelSizeLength = 3

// ValidASLTypes enumerates the accepted labeling strategies.
var ValidASLTypes = []string{"PASL", "PCASL", "(P)CASL", "Velocity-selective"}
