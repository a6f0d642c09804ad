package models

// EntryState defines the attendance state of a single schedule day.
// "planned" and "off" are produced by the monthly generator; every other
// state is only reachable through an explicit attendance action.
type EntryState string

const (
	EntryStatePlanned      EntryState = "planned"
	EntryStateWorked       EntryState = "worked"
	EntryStateOff          EntryState = "off"
	EntryStateLeave        EntryState = "leave"
	EntryStateVacation     EntryState = "vacation"
	EntryStateMedicalLeave EntryState = "medical_leave"
	EntryStateReplacement  EntryState = "replacement"
	EntryStateUncovered    EntryState = "uncovered"
	EntryStateAbsent       EntryState = "absent"
)

// IsValid checks if the EntryState is valid
func (s EntryState) IsValid() bool {
	switch s {
	case EntryStatePlanned, EntryStateWorked, EntryStateOff, EntryStateLeave,
		EntryStateVacation, EntryStateMedicalLeave, EntryStateReplacement,
		EntryStateUncovered, EntryStateAbsent:
		return true
	}
	return false
}

// IsActionable reports whether an attendance action may target an entry in
// this state. All states are last-write-wins at the row level.
func (s EntryState) IsActionable() bool {
	return s.IsValid()
}

// CoverageState defines the lifecycle of a pending-coverage record
type CoverageState string

const (
	CoverageStatePending   CoverageState = "pending"
	CoverageStateAssigned  CoverageState = "assigned"
	CoverageStateCancelled CoverageState = "cancelled"
	CoverageStateCompleted CoverageState = "completed"
)

// IsValid checks if the CoverageState is valid
func (s CoverageState) IsValid() bool {
	switch s {
	case CoverageStatePending, CoverageStateAssigned, CoverageStateCancelled, CoverageStateCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed
func (s CoverageState) IsTerminal() bool {
	return s == CoverageStateCancelled || s == CoverageStateCompleted
}

// CoveragePriority defines how urgently a pending coverage must be filled
type CoveragePriority string

const (
	CoveragePriorityNormal CoveragePriority = "normal"
	CoveragePriorityHigh   CoveragePriority = "high"
)

// IsValid checks if the CoveragePriority is valid
func (p CoveragePriority) IsValid() bool {
	return p == CoveragePriorityNormal || p == CoveragePriorityHigh
}

// CoverageReason defines why a coverage gap was detected
type CoverageReason string

const (
	CoverageReasonUncovered    CoverageReason = "uncovered"
	CoverageReasonNoShow       CoverageReason = "no_show"
	CoverageReasonMedicalLeave CoverageReason = "medical_leave"
	CoverageReasonUnassigned   CoverageReason = "unassigned_post"
)

// AssignmentType defines how an assignment came to be
type AssignmentType string

const (
	AssignmentTypeStanding     AssignmentType = "standing"
	AssignmentTypePPCFill      AssignmentType = "ppc_fill"
	AssignmentTypeReassignment AssignmentType = "reassignment"
)

// IsValid checks if the AssignmentType is valid
func (t AssignmentType) IsValid() bool {
	switch t {
	case AssignmentTypeStanding, AssignmentTypePPCFill, AssignmentTypeReassignment:
		return true
	}
	return false
}

// AssignmentState defines the lifecycle of an assignment
type AssignmentState string

const (
	AssignmentStateActive    AssignmentState = "active"
	AssignmentStateFinished  AssignmentState = "finished"
	AssignmentStateCancelled AssignmentState = "cancelled"
)

// IsValid checks if the AssignmentState is valid
func (s AssignmentState) IsValid() bool {
	switch s {
	case AssignmentStateActive, AssignmentStateFinished, AssignmentStateCancelled:
		return true
	}
	return false
}
