package gtk

import "testing"

// checkAllTables runs the table checks over every enumeration in the package.
func checkAllTables(t *testing.T) {
	checkEnum(t, windowTypeTable, 2)
	checkEnum(t, windowPositionTable, 5)
	checkEnum(t, messageTypeTable, 5)
	checkFlags(t, dialogFlagsTable, 3)
	checkEnum(t, responseTypeTable, 11)
	checkEnum(t, licenseTable, 13)
	checkEnum(t, orientationTable, 2)
	checkEnum(t, buttonBoxStyleTable, 6)
	checkEnum(t, packTypeTable, 2)
	checkEnum(t, positionTypeTable, 4)
	checkEnum(t, justificationTable, 4)
	checkEnum(t, cornerTypeTable, 4)
	checkEnum(t, resizeModeTable, 3)
	checkFlags(t, attachOptionsTable, 3)
	checkEnum(t, policyTypeTable, 4)
	checkEnum(t, shadowTypeTable, 5)
	checkEnum(t, borderStyleTable, 10)
	checkFlags(t, junctionSidesTable, 9)
	checkFlags(t, regionFlagsTable, 6)
	checkEnum(t, arrowPlacementTable, 3)
	checkEnum(t, arrowTypeTable, 5)
	checkEnum(t, reliefStyleTable, 3)
	checkEnum(t, toolbarStyleTable, 4)
	checkEnum(t, iconSizeTable, 7)
	checkEnum(t, imageTypeTable, 8)
	checkEnum(t, expanderStyleTable, 4)
	checkEnum(t, levelBarModeTable, 2)
	checkFlags(t, stateFlagsTable, 10)
	checkEnum(t, stateTypeTable, 7)
	checkEnum(t, textDirectionTable, 3)
	checkEnum(t, selectionModeTable, 4)
	checkEnum(t, sortTypeTable, 2)
	checkEnum(t, dragResultTable, 6)
	checkFlags(t, accelFlagsTable, 3)
	checkEnum(t, pathPriorityTypeTable, 6)
	checkEnum(t, pathTypeTable, 3)
	checkFlags(t, calendarDisplayOptionsTable, 5)
	checkEnum(t, directionTypeTable, 6)
	checkEnum(t, movementStepTable, 10)
	checkEnum(t, deleteTypeTable, 8)
	checkEnum(t, scrollStepTable, 6)
	checkEnum(t, scrollTypeTable, 16)
	checkEnum(t, imPreeditStyleTable, 3)
	checkEnum(t, imStatusStyleTable, 3)
	checkEnum(t, entryIconPositionTable, 2)
	checkFlags(t, inputHintsTable, 9)
	checkEnum(t, inputPurposeTable, 10)
	checkEnum(t, spinTypeTable, 7)
	checkEnum(t, spinButtonUpdatePolicyTable, 2)
}
