package aslrules

import (
	"fmt"
	"strings"

	"github.com/Hanliang-Xu/asltools/sidecar"
)

// CheckASLType checks the arterial spin labeling type against the
// accepted strategies. The value is returned unchanged.
func CheckASLType(aslType string) (errors, warnings []string, value string) {
	found := false
	for _, valid := range ValidASLTypes {
		if aslType == valid {
			found = true
			break
		}
	}
	if !found {
		errors = append(errors, fmt.Sprintf(
			"Invalid 'ArterialSpinLabelingType': %s. Expected one of [%s]",
			aslType, strings.Join(ValidASLTypes, ", ")))
	}
	return errors, warnings, aslType
}

// CheckBackgroundSuppression checks that background suppression is an
// actual boolean. The value is normalized to the display string "Yes" or
// "No" from truthiness, so false, missing, and non-bool all read "No".
func CheckBackgroundSuppression(bs any) (errors, warnings []string, value string) {
	value = "No"
	if sidecar.ValueOf(bs).Truthy() {
		value = "Yes"
	}
	if _, ok := bs.(bool); !ok {
		errors = append(errors, "Missing or invalid 'BackgroundSuppression' (should be true or false)")
	}
	return errors, warnings, value
}

// CheckM0Method checks the method used for M0b estimation.
func CheckM0Method(method string) (errors, warnings []string, value string) {
	if method == "" {
		errors = append(errors, "Missing or invalid 'Method for M0b estimation'")
	}
	return errors, warnings, method
}

// CheckTotalPairs checks the total number of acquired control-label pairs.
// Zero pairs is inside the hard bounds but always worth a warning.
func CheckTotalPairs(pairs float64) (errors, warnings []string, value float64) {
	if pairs < MinPairsError || pairs > MaxPairsError {
		errors = append(errors, fmt.Sprintf(
			"'TotalAcquiredPairs' out of valid range (%d-%d)", MinPairsError, MaxPairsError))
	} else if pairs == 0 || pairs > MaxPairsWarning {
		warnings = append(warnings, fmt.Sprintf(
			"'TotalAcquiredPairs' is 0 or greater than %d, which may be unusual", MaxPairsWarning))
	}
	return errors, warnings, pairs
}

// CheckVoxelSize checks the acquisition voxel size: exactly three
// elements, each within the hard bounds, with a narrower usual band.
func CheckVoxelSize(voxelSize []float64) (errors, warnings []string, value []float64) {
	if len(voxelSize) != VoxelSizeLength {
		errors = append(errors, fmt.Sprintf(
			"Invalid 'AcquisitionVoxelSize' (should be a list of %d numbers)", VoxelSizeLength))
		return errors, warnings, voxelSize
	}
	for _, size := range voxelSize {
		if size < VoxelSizeMinError || size > VoxelSizeMaxError {
			errors = append(errors, fmt.Sprintf(
				"'AcquisitionVoxelSize' out of valid range (%d-%d)", VoxelSizeMinError, VoxelSizeMaxError))
		} else if size < VoxelSizeMinWarning || size > VoxelSizeMaxWarning {
			warnings = append(warnings, fmt.Sprintf(
				"'AcquisitionVoxelSize' is in a warning range (%d-%d or %d-%d)",
				VoxelSizeMinError, VoxelSizeMinWarning, VoxelSizeMaxWarning, VoxelSizeMaxError))
		}
	}
	return errors, warnings, voxelSize
}

// CheckLabelingDuration checks labeling duration in seconds.
func CheckLabelingDuration(duration float64) (errors, warnings []string, value float64) {
	if duration < MinLabelingDurationError || duration > MaxLabelingDurationError {
		errors = append(errors, fmt.Sprintf(
			"'LabelingDuration' out of valid range (%d-%d)",
			MinLabelingDurationError, MaxLabelingDurationError))
	} else if duration < MinLabelingDurationWarning || duration > MaxLabelingDurationWarning {
		warnings = append(warnings, fmt.Sprintf(
			"'LabelingDuration' is less than %d or greater than %d, which may be unusual",
			MinLabelingDurationWarning, MaxLabelingDurationWarning))
	}
	return errors, warnings, duration
}

// CheckPostLabelingDelay checks post labeling delay in seconds.
func CheckPostLabelingDelay(delay float64) (errors, warnings []string, value float64) {
	if delay < MinPostLabelingDelayError || delay > MaxPostLabelingDelayError {
		errors = append(errors, fmt.Sprintf(
			"'PostLabelingDelay' out of valid range (%d-%d)",
			MinPostLabelingDelayError, MaxPostLabelingDelayError))
	} else if delay < MinPostLabelingDelayWarning || delay > MaxPostLabelingDelayWarning {
		warnings = append(warnings, fmt.Sprintf(
			"'PostLabelingDelay' is less than %d or greater than %d, which may be unusual",
			MinPostLabelingDelayWarning, MaxPostLabelingDelayWarning))
	}
	return errors, warnings, delay
}

// CheckInversionTime checks the PASL inversion time. There is no agreed
// usual band for inversion time, so no warning is ever produced.
func CheckInversionTime(inversionTime float64) (errors, warnings []string, value float64) {
	if inversionTime <= MinInversionTimeError {
		errors = append(errors, fmt.Sprintf(
			"'InversionTime' not greater than %d", MinInversionTimeError))
	}
	return errors, warnings, inversionTime
}
